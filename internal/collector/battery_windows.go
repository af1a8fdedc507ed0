//go:build windows

package collector

import (
	"fmt"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"github.com/yusufpapurcu/wmi"
)

type win32Battery struct {
	EstimatedChargeRemaining uint16
	BatteryStatus            uint16
	EstimatedRunTime         uint32
}

func queryBattery() (report.Object, bool, error) {
	var batteries []win32Battery
	q := "SELECT EstimatedChargeRemaining, BatteryStatus, EstimatedRunTime FROM Win32_Battery"
	if err := wmi.Query(q, &batteries); err != nil {
		return nil, false, err
	}
	if len(batteries) == 0 {
		return nil, false, nil
	}

	b := batteries[0]
	var obj report.Object
	obj.Set("Percent", report.String(fmt.Sprintf("%d%%", b.EstimatedChargeRemaining)))
	// BatteryStatus 2 is "on AC power" per the Win32_Battery docs.
	obj.Set("Plugged In", report.Bool(b.BatteryStatus == 2))
	obj.Set("Secs Left", report.Int(int64(b.EstimatedRunTime)*60))
	return obj, true, nil
}
