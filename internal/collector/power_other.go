//go:build !windows && !linux

package collector

import (
	"fmt"
	"runtime"
)

func queryPowerPlan() (string, error) {
	return "", fmt.Errorf("power plan query not supported on %s", runtime.GOOS)
}
