//go:build windows

package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
	"golang.org/x/sys/windows/registry"
)

// uninstallPaths are the registry hives listing installed software,
// including the WOW6432Node view for 32-bit applications.
var uninstallPaths = []struct {
	root registry.Key
	path string
}{
	{registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`},
	{registry.LOCAL_MACHINE, `SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`},
	{registry.CURRENT_USER, `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`},
}

func querySoftware(logger *zap.Logger) (report.List, error) {
	list := report.List{}
	seen := make(map[string]bool)

	for _, hive := range uninstallPaths {
		entries, err := queryUninstallHive(hive.root, hive.path)
		if err != nil {
			logger.Warn("failed to read uninstall hive",
				zap.String("path", hive.path),
				zap.Error(err))
			continue
		}
		for _, entry := range entries {
			name, _ := entry.Get("Name")
			version, _ := entry.Get("Version")
			key := report.Display(name) + "|" + report.Display(version)
			if seen[key] {
				continue
			}
			seen[key] = true
			list = append(list, entry)
		}
	}
	return list, nil
}

func queryUninstallHive(root registry.Key, path string) ([]report.Object, error) {
	key, err := registry.OpenKey(root, path, registry.READ)
	if err != nil {
		return nil, err
	}
	defer key.Close()

	subkeys, err := key.ReadSubKeyNames(-1)
	if err != nil {
		return nil, err
	}

	var entries []report.Object
	for _, name := range subkeys {
		sub, err := registry.OpenKey(root, path+`\`+name, registry.QUERY_VALUE)
		if err != nil {
			continue
		}

		displayName, _, err := sub.GetStringValue("DisplayName")
		if err != nil || displayName == "" {
			sub.Close()
			continue
		}

		var entry report.Object
		entry.Set("Name", report.String(displayName))
		if v, _, err := sub.GetStringValue("DisplayVersion"); err == nil {
			entry.Set("Version", report.String(v))
		}
		if v, _, err := sub.GetStringValue("Publisher"); err == nil {
			entry.Set("Vendor", report.String(v))
		}
		if v, _, err := sub.GetStringValue("InstallDate"); err == nil {
			entry.Set("Install Date", report.String(v))
		}
		sub.Close()
		entries = append(entries, entry)
	}
	return entries, nil
}
