//go:build linux

package collector

import (
	"path/filepath"
	"strings"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
)

// queryMonitors lists connected DRM connectors. The first mode line of a
// connector is its current resolution.
func queryMonitors() (report.List, error) {
	connectors, err := filepath.Glob("/sys/class/drm/card*-*")
	if err != nil {
		return nil, err
	}

	list := report.List{}
	for _, conn := range connectors {
		status, err := readSysFile(filepath.Join(conn, "status"))
		if err != nil || status != "connected" {
			continue
		}

		var mon report.Object
		name := filepath.Base(conn)
		if _, rest, ok := strings.Cut(name, "-"); ok {
			name = rest
		}
		mon.Set("Name", report.String(name))

		if modes, err := readSysFile(filepath.Join(conn, "modes")); err == nil && modes != "" {
			first, _, _ := strings.Cut(modes, "\n")
			if w, h, ok := strings.Cut(first, "x"); ok {
				mon.Set("Screen Width", report.String(w))
				mon.Set("Screen Height", report.String(h))
			}
		}
		mon.Set("Status", report.String(status))
		list = append(list, mon)
	}
	return list, nil
}
