package collector

import (
	"runtime"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"github.com/shirou/gopsutil/v3/host"
	"go.uber.org/zap"
)

// SystemCollector reports basic OS and host identity.
type SystemCollector struct {
	BaseCollector
}

// NewSystemCollector creates a new SystemCollector with the given logger.
func NewSystemCollector(logger *zap.Logger) *SystemCollector {
	return &SystemCollector{BaseCollector: NewBaseCollector(logger)}
}

// Name returns the collector's category label.
func (c *SystemCollector) Name() string { return "System Info" }

// Collect gathers OS identity from gopsutil host info.
func (c *SystemCollector) Collect() report.Value {
	info, err := host.Info()
	if err != nil {
		return report.Errorf("Failed to get system info: %v", err)
	}

	var obj report.Object
	obj.Set("System", report.String(info.OS))
	obj.Set("Node Name", report.String(info.Hostname))
	obj.Set("Release", report.String(info.KernelVersion))
	obj.Set("Version", report.String(info.Platform+" "+info.PlatformVersion))
	obj.Set("Machine", report.String(info.KernelArch))
	obj.Set("Processor", report.String(runtime.GOARCH))
	obj.Set("Go Version", report.String(runtime.Version()))
	return obj
}
