//go:build !windows && !linux

package collector

import (
	"fmt"
	"runtime"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
)

func queryUSBDevices() (report.List, error) {
	return nil, fmt.Errorf("USB enumeration not supported on %s", runtime.GOOS)
}
