//go:build darwin

package collector

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
)

// querySoftware scans /Applications for app bundles and reads each bundle's
// version from its Info.plist.
func querySoftware(logger *zap.Logger) (report.List, error) {
	entries, err := os.ReadDir("/Applications")
	if err != nil {
		return nil, fmt.Errorf("failed to read /Applications: %w", err)
	}

	list := report.List{}
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasSuffix(entry.Name(), ".app") {
			continue
		}

		var app report.Object
		app.Set("Name", report.String(strings.TrimSuffix(entry.Name(), ".app")))

		plist := filepath.Join("/Applications", entry.Name(), "Contents", "Info.plist")
		if version := plistVersion(plist); version != "" {
			app.Set("Version", report.String(version))
		}
		list = append(list, app)
	}
	return list, nil
}

func plistVersion(plist string) string {
	for _, key := range []string{"CFBundleShortVersionString", "CFBundleVersion"} {
		out, err := exec.Command("defaults", "read", plist, key).Output()
		if err == nil {
			return strings.TrimSpace(string(out))
		}
	}
	return ""
}
