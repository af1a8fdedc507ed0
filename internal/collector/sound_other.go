//go:build !windows && !linux

package collector

import (
	"fmt"
	"runtime"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
)

func querySoundDevices() (report.List, error) {
	return nil, fmt.Errorf("sound device enumeration not supported on %s", runtime.GOOS)
}
