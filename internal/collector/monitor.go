package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
)

// MonitorCollector reports attached display monitors.
type MonitorCollector struct {
	BaseCollector
}

// NewMonitorCollector creates a new MonitorCollector with the given logger.
func NewMonitorCollector(logger *zap.Logger) *MonitorCollector {
	return &MonitorCollector{BaseCollector: NewBaseCollector(logger)}
}

// Name returns the collector's category label.
func (c *MonitorCollector) Name() string { return "Display Monitors" }

// Collect wraps the monitor list under a single "Display Monitors" field.
func (c *MonitorCollector) Collect() report.Value {
	monitors, err := queryMonitors()
	if err != nil {
		monitors = report.List{report.Errorf("Failed to get monitor info: %v", err)}
	}
	var obj report.Object
	obj.Set("Display Monitors", monitors)
	return obj
}
