//go:build linux

package collector

import "fmt"

// queryPowerPlan reports the cpufreq scaling governor, the closest Linux
// analogue of a power plan.
func queryPowerPlan() (string, error) {
	governor, err := readSysFile("/sys/devices/system/cpu/cpu0/cpufreq/scaling_governor")
	if err != nil {
		return "", fmt.Errorf("no cpufreq governor available: %w", err)
	}
	return "CPU frequency governor: " + governor, nil
}
