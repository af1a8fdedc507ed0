//go:build windows

package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"github.com/yusufpapurcu/wmi"
)

type win32BIOS struct {
	Manufacturer      string
	SMBIOSBIOSVersion string
	ReleaseDate       string
	SerialNumber      string
}

func queryBIOS() (report.Object, error) {
	var entries []win32BIOS
	q := "SELECT Manufacturer, SMBIOSBIOSVersion, ReleaseDate, SerialNumber FROM Win32_BIOS"
	if err := wmi.Query(q, &entries); err != nil {
		return nil, err
	}

	var obj report.Object
	if len(entries) > 0 {
		b := entries[0]
		obj.Set("Manufacturer", report.String(b.Manufacturer))
		obj.Set("Version", report.String(b.SMBIOSBIOSVersion))
		obj.Set("Release Date", report.String(b.ReleaseDate))
		obj.Set("Serial Number", report.String(b.SerialNumber))
	}
	return obj, nil
}
