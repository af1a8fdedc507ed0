//go:build windows

package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"github.com/yusufpapurcu/wmi"
)

type win32SoundDevice struct {
	Name         string
	Status       string
	Manufacturer string
}

func querySoundDevices() (report.List, error) {
	var devices []win32SoundDevice
	q := "SELECT Name, Status, Manufacturer FROM Win32_SoundDevice"
	if err := wmi.Query(q, &devices); err != nil {
		return nil, err
	}

	list := report.List{}
	for _, d := range devices {
		var dev report.Object
		dev.Set("Name", report.String(d.Name))
		dev.Set("Status", report.String(d.Status))
		dev.Set("Manufacturer", report.String(d.Manufacturer))
		list = append(list, dev)
	}
	return list, nil
}
