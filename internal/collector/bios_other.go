//go:build !windows && !linux

package collector

import (
	"fmt"
	"runtime"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
)

func queryBIOS() (report.Object, error) {
	return nil, fmt.Errorf("firmware query not supported on %s", runtime.GOOS)
}
