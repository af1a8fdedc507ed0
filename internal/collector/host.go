package collector

import (
	"fmt"
	"time"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/process"
	"go.uber.org/zap"
)

// ProcessCountCollector reports the number of running processes.
type ProcessCountCollector struct {
	BaseCollector
}

// NewProcessCountCollector creates a new ProcessCountCollector with the given logger.
func NewProcessCountCollector(logger *zap.Logger) *ProcessCountCollector {
	return &ProcessCountCollector{BaseCollector: NewBaseCollector(logger)}
}

// Name returns the collector's category label.
func (c *ProcessCountCollector) Name() string { return "Process Count" }

// Collect counts PIDs via gopsutil.
func (c *ProcessCountCollector) Collect() report.Value {
	pids, err := process.Pids()
	if err != nil {
		return report.Errorf("Failed to get process count: %v", err)
	}
	var obj report.Object
	obj.Set("Running Processes", report.Int(int64(len(pids))))
	return obj
}

// BootTimeCollector reports when the system was started.
type BootTimeCollector struct {
	BaseCollector
}

// NewBootTimeCollector creates a new BootTimeCollector with the given logger.
func NewBootTimeCollector(logger *zap.Logger) *BootTimeCollector {
	return &BootTimeCollector{BaseCollector: NewBaseCollector(logger)}
}

// Name returns the collector's category label.
func (c *BootTimeCollector) Name() string { return "Boot Time" }

// Collect formats the boot timestamp in local time.
func (c *BootTimeCollector) Collect() report.Value {
	boot, err := host.BootTime()
	if err != nil {
		return report.Errorf("Failed to get boot time: %v", err)
	}
	var obj report.Object
	obj.Set("Boot Time", report.String(time.Unix(int64(boot), 0).Format("2006-01-02 15:04:05")))
	return obj
}

// UptimeCollector reports elapsed time since boot.
type UptimeCollector struct {
	BaseCollector
}

// NewUptimeCollector creates a new UptimeCollector with the given logger.
func NewUptimeCollector(logger *zap.Logger) *UptimeCollector {
	return &UptimeCollector{BaseCollector: NewBaseCollector(logger)}
}

// Name returns the collector's category label.
func (c *UptimeCollector) Name() string { return "System Uptime" }

// Collect renders uptime as "Xd Xh Xm Xs".
func (c *UptimeCollector) Collect() report.Value {
	seconds, err := host.Uptime()
	if err != nil {
		return report.Errorf("Failed to get uptime: %v", err)
	}
	var obj report.Object
	obj.Set("Uptime", report.String(formatUptime(seconds)))
	return obj
}

func formatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, secs)
}
