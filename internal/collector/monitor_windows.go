//go:build windows

package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"github.com/yusufpapurcu/wmi"
)

type win32DesktopMonitor struct {
	Name         string
	ScreenHeight uint32
	ScreenWidth  uint32
	Status       string
}

func queryMonitors() (report.List, error) {
	var monitors []win32DesktopMonitor
	q := "SELECT Name, ScreenHeight, ScreenWidth, Status FROM Win32_DesktopMonitor"
	if err := wmi.Query(q, &monitors); err != nil {
		return nil, err
	}

	list := report.List{}
	for _, m := range monitors {
		var mon report.Object
		mon.Set("Name", report.String(m.Name))
		mon.Set("Screen Height", report.Int(int64(m.ScreenHeight)))
		mon.Set("Screen Width", report.Int(int64(m.ScreenWidth)))
		mon.Set("Status", report.String(m.Status))
		list = append(list, mon)
	}
	return list, nil
}
