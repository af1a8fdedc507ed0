//go:build windows

package collector

import (
	"fmt"
	"os/exec"
	"strings"
)

// queryPowerPlan reports the active power scheme, e.g.
// "Power Scheme GUID: 381b4222-... (Balanced)".
func queryPowerPlan() (string, error) {
	output, err := exec.Command("powercfg", "/getactivescheme").Output()
	if err != nil {
		return "", fmt.Errorf("powercfg failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}
