//go:build linux

package collector

import (
	"path/filepath"
	"strconv"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
)

// queryBattery reads the first battery under /sys/class/power_supply.
func queryBattery() (report.Object, bool, error) {
	batteries, err := filepath.Glob("/sys/class/power_supply/BAT*")
	if err != nil {
		return nil, false, err
	}
	if len(batteries) == 0 {
		return nil, false, nil
	}

	dir := batteries[0]
	var obj report.Object

	if capacity, err := readSysFile(filepath.Join(dir, "capacity")); err == nil {
		obj.Set("Percent", report.String(capacity+"%"))
	}

	status, _ := readSysFile(filepath.Join(dir, "status"))
	if status != "" {
		obj.Set("Status", report.String(status))
	}
	obj.Set("Plugged In", report.Bool(status == "Charging" || status == "Full"))

	// charge_now/current_now give a rough seconds-remaining figure while
	// discharging.
	if status == "Discharging" {
		charge, err1 := readSysFile(filepath.Join(dir, "charge_now"))
		current, err2 := readSysFile(filepath.Join(dir, "current_now"))
		if err1 == nil && err2 == nil {
			chargeUAh, _ := strconv.ParseFloat(charge, 64)
			currentUA, _ := strconv.ParseFloat(current, 64)
			if currentUA > 0 {
				obj.Set("Secs Left", report.Int(int64(chargeUAh/currentUA*3600)))
			}
		}
	}

	if len(obj) == 0 {
		return nil, false, nil
	}
	return obj, true, nil
}
