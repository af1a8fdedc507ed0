//go:build windows

package collector

import (
	"strings"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"github.com/yusufpapurcu/wmi"
)

type win32USBControllerDevice struct {
	Dependent string
}

// queryUSBDevices lists device IDs attached to USB controllers. Dependent
// is a WMI object path like
// `\\HOST\root\cimv2:Win32_PnPEntity.DeviceID="USB\\VID_..."`; the quoted
// device ID is the part worth reporting.
func queryUSBDevices() (report.List, error) {
	var entries []win32USBControllerDevice
	q := "SELECT Dependent FROM Win32_USBControllerDevice"
	if err := wmi.Query(q, &entries); err != nil {
		return nil, err
	}

	list := report.List{}
	for _, e := range entries {
		_, id, ok := strings.Cut(e.Dependent, "=")
		if !ok {
			continue
		}
		list = append(list, report.String(strings.Trim(id, `"`)))
	}
	return list, nil
}
