//go:build linux

package collector

import (
	"os"
	"strings"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
)

// querySoundDevices parses /proc/asound/cards. Card lines look like
// " 0 [PCH            ]: HDA-Intel - HDA Intel PCH"; the indented line
// below each is a detail string.
func querySoundDevices() (report.List, error) {
	data, err := os.ReadFile("/proc/asound/cards")
	if err != nil {
		return nil, err
	}

	list := report.List{}
	for _, line := range strings.Split(string(data), "\n") {
		open := strings.Index(line, "[")
		end := strings.Index(line, "]:")
		if open < 0 || end < open {
			continue
		}

		var dev report.Object
		name := line[end+2:]
		if i := strings.Index(name, " - "); i >= 0 {
			dev.Set("Name", report.String(strings.TrimSpace(name[i+3:])))
			dev.Set("Driver", report.String(strings.TrimSpace(name[:i])))
		} else {
			dev.Set("Name", report.String(strings.TrimSpace(name)))
		}
		dev.Set("ID", report.String(strings.TrimSpace(line[open+1:end])))
		list = append(list, dev)
	}
	return list, nil
}
