//go:build windows

package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"github.com/yusufpapurcu/wmi"
)

type win32Printer struct {
	Name    string
	Status  string
	Default bool
	Network bool
	Shared  bool
}

func queryPrinters() (report.List, error) {
	var printers []win32Printer
	q := "SELECT Name, Status, Default, Network, Shared FROM Win32_Printer"
	if err := wmi.Query(q, &printers); err != nil {
		return nil, err
	}

	list := report.List{}
	for _, p := range printers {
		var prn report.Object
		prn.Set("Name", report.String(p.Name))
		prn.Set("Status", report.String(p.Status))
		prn.Set("Default", report.Bool(p.Default))
		prn.Set("Network", report.Bool(p.Network))
		prn.Set("Shared", report.Bool(p.Shared))
		list = append(list, prn)
	}
	return list, nil
}
