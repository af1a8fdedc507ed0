//go:build windows

package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"github.com/yusufpapurcu/wmi"
)

type win32BaseBoard struct {
	Manufacturer string
	Product      string
	SerialNumber string
	Version      string
}

func queryMotherboard() (report.Object, error) {
	var boards []win32BaseBoard
	q := "SELECT Manufacturer, Product, SerialNumber, Version FROM Win32_BaseBoard"
	if err := wmi.Query(q, &boards); err != nil {
		return nil, err
	}

	var obj report.Object
	if len(boards) > 0 {
		b := boards[0]
		obj.Set("Manufacturer", report.String(b.Manufacturer))
		obj.Set("Product", report.String(b.Product))
		obj.Set("Serial Number", report.String(b.SerialNumber))
		obj.Set("Version", report.String(b.Version))
	}
	return obj, nil
}
