//go:build windows

package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"github.com/yusufpapurcu/wmi"
	"go.uber.org/zap"
)

type win32VideoController struct {
	Name                 string
	DriverVersion        string
	VideoProcessor       string
	AdapterRAM           uint32
	VideoModeDescription string
	Status               string
}

func queryGPUs(logger *zap.Logger) (report.List, error) {
	var cards []win32VideoController
	q := "SELECT Name, DriverVersion, VideoProcessor, AdapterRAM, VideoModeDescription, Status FROM Win32_VideoController"
	if err := wmi.Query(q, &cards); err != nil {
		return nil, err
	}

	list := report.List{}
	for _, card := range cards {
		var gpu report.Object
		gpu.Set("Name", report.String(card.Name))
		gpu.Set("Driver Version", report.String(card.DriverVersion))
		gpu.Set("Video Processor", report.String(card.VideoProcessor))
		if card.AdapterRAM > 0 {
			gpu.Set("RAM (MB)", report.Int(int64(card.AdapterRAM)/(1024*1024)))
		} else {
			gpu.Set("RAM (MB)", report.String("Unknown"))
		}
		gpu.Set("Video Mode", report.String(card.VideoModeDescription))
		gpu.Set("Status", report.String(card.Status))
		list = append(list, gpu)
	}
	return list, nil
}
