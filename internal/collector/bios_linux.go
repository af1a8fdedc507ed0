//go:build linux

package collector

import "github.com/hackintoshhouse/hardwarehouse/pkg/report"

// queryBIOS reads firmware identity from the DMI sysfs tree. Entries may be
// missing or unreadable without root; those fields are simply omitted.
func queryBIOS() (report.Object, error) {
	var obj report.Object
	fields := []struct {
		label string
		path  string
	}{
		{"Manufacturer", "/sys/class/dmi/id/bios_vendor"},
		{"Version", "/sys/class/dmi/id/bios_version"},
		{"Release Date", "/sys/class/dmi/id/bios_date"},
	}
	for _, f := range fields {
		if v, err := readSysFile(f.path); err == nil {
			obj.Set(f.label, report.String(v))
		}
	}
	if len(obj) == 0 {
		obj.Set("Info", report.String("No DMI firmware data available"))
	}
	return obj, nil
}
