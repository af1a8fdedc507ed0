//go:build linux

package collector

import (
	"path/filepath"
	"strings"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
)

// queryUSBDevices lists devices under /sys/bus/usb/devices that expose a
// product name. Interface entries (names containing a colon) are skipped.
func queryUSBDevices() (report.List, error) {
	entries, err := filepath.Glob("/sys/bus/usb/devices/*")
	if err != nil {
		return nil, err
	}

	list := report.List{}
	for _, entry := range entries {
		if strings.Contains(filepath.Base(entry), ":") {
			continue
		}
		product, err := readSysFile(filepath.Join(entry, "product"))
		if err != nil || product == "" {
			continue
		}
		if manufacturer, err := readSysFile(filepath.Join(entry, "manufacturer")); err == nil && manufacturer != "" {
			product = manufacturer + " " + product
		}
		list = append(list, report.String(product))
	}
	return list, nil
}
