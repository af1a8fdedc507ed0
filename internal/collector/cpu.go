package collector

import (
	"strings"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"github.com/shirou/gopsutil/v3/cpu"
	"go.uber.org/zap"
)

// CPUCollector reports CPU identity and topology.
type CPUCollector struct {
	BaseCollector
}

// NewCPUCollector creates a new CPUCollector with the given logger.
func NewCPUCollector(logger *zap.Logger) *CPUCollector {
	return &CPUCollector{BaseCollector: NewBaseCollector(logger)}
}

// Name returns the collector's category label.
func (c *CPUCollector) Name() string { return "CPU Info" }

// Collect gathers CPU model, vendor, and core counts from gopsutil, then
// lets the platform add detail (cache sizes, processor ID) where the OS
// exposes it.
func (c *CPUCollector) Collect() report.Value {
	infos, err := cpu.Info()
	if err != nil {
		return report.Errorf("Failed to get CPU info: %v", err)
	}
	if len(infos) == 0 {
		return report.ErrorObject("Failed to get CPU info: no processors reported")
	}

	var obj report.Object
	obj.Set("Name", report.String(strings.TrimSpace(infos[0].ModelName)))
	obj.Set("Manufacturer", report.String(infos[0].VendorID))

	physical, err := cpu.Counts(false)
	if err != nil {
		c.LogWarning("failed to get physical core count", zap.Error(err))
	} else {
		obj.Set("Cores (Physical)", report.Int(int64(physical)))
	}

	logical, err := cpu.Counts(true)
	if err != nil {
		c.LogWarning("failed to get logical core count", zap.Error(err))
	} else {
		obj.Set("Threads (Logical)", report.Int(int64(logical)))
	}

	obj.Set("Max Clock Speed (MHz)", report.Int(int64(infos[0].Mhz)))

	collectPlatformCPU(&obj, c.Logger())
	return obj
}
