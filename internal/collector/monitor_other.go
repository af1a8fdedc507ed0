//go:build !windows && !linux

package collector

import (
	"fmt"
	"runtime"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
)

func queryMonitors() (report.List, error) {
	return nil, fmt.Errorf("monitor enumeration not supported on %s", runtime.GOOS)
}
