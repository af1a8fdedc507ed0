//go:build windows

package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"github.com/yusufpapurcu/wmi"
	"go.uber.org/zap"
)

type win32Processor struct {
	CurrentClockSpeed uint32
	Architecture      uint16
	ProcessorId       string
	L2CacheSize       uint32
	L3CacheSize       uint32
}

// collectPlatformCPU adds the Win32_Processor fields gopsutil does not
// surface.
func collectPlatformCPU(obj *report.Object, logger *zap.Logger) {
	var procs []win32Processor
	q := "SELECT CurrentClockSpeed, Architecture, ProcessorId, L2CacheSize, L3CacheSize FROM Win32_Processor"
	if err := wmi.Query(q, &procs); err != nil {
		logger.Warn("Win32_Processor query failed", zap.Error(err))
		return
	}
	if len(procs) == 0 {
		return
	}

	p := procs[0]
	obj.Set("Current Clock Speed (MHz)", report.Int(int64(p.CurrentClockSpeed)))
	obj.Set("Architecture", report.Int(int64(p.Architecture)))
	obj.Set("Processor ID", report.String(p.ProcessorId))
	obj.Set("L2 Cache Size (KB)", report.Int(int64(p.L2CacheSize)))
	obj.Set("L3 Cache Size (KB)", report.Int(int64(p.L3CacheSize)))
}
