//go:build !windows && !linux

package collector

import (
	"fmt"
	"runtime"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
)

func queryMotherboard() (report.Object, error) {
	return nil, fmt.Errorf("baseboard query not supported on %s", runtime.GOOS)
}
