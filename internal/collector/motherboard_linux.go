//go:build linux

package collector

import "github.com/hackintoshhouse/hardwarehouse/pkg/report"

func queryMotherboard() (report.Object, error) {
	var obj report.Object
	fields := []struct {
		label string
		path  string
	}{
		{"Manufacturer", "/sys/class/dmi/id/board_vendor"},
		{"Product", "/sys/class/dmi/id/board_name"},
		{"Serial Number", "/sys/class/dmi/id/board_serial"},
		{"Version", "/sys/class/dmi/id/board_version"},
	}
	for _, f := range fields {
		if v, err := readSysFile(f.path); err == nil {
			obj.Set(f.label, report.String(v))
		}
	}
	if len(obj) == 0 {
		obj.Set("Info", report.String("No DMI baseboard data available"))
	}
	return obj, nil
}
