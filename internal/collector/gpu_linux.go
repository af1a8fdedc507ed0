//go:build linux

package collector

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
)

// queryGPUs enumerates DRM cards from sysfs. Entries like card0-HDMI-A-1
// are connectors, not adapters, and are skipped.
func queryGPUs(logger *zap.Logger) (report.List, error) {
	cards, err := filepath.Glob("/sys/class/drm/card*")
	if err != nil {
		return nil, err
	}

	list := report.List{}
	for _, card := range cards {
		if strings.Contains(filepath.Base(card), "-") {
			continue
		}

		var gpu report.Object
		gpu.Set("Name", report.String(filepath.Base(card)))

		if driver := ueventValue(filepath.Join(card, "device", "uevent"), "DRIVER"); driver != "" {
			gpu.Set("Driver", report.String(driver))
		}
		if vendor, err := readSysFile(filepath.Join(card, "device", "vendor")); err == nil {
			gpu.Set("Vendor ID", report.String(vendor))
		}
		if device, err := readSysFile(filepath.Join(card, "device", "device")); err == nil {
			gpu.Set("Device ID", report.String(device))
		}

		list = append(list, gpu)
	}
	return list, nil
}

// ueventValue extracts one KEY=value entry from a sysfs uevent file.
func ueventValue(path, key string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		if v, ok := strings.CutPrefix(line, key+"="); ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
