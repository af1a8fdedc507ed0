package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
)

// PowerPlanCollector reports the active power policy.
type PowerPlanCollector struct {
	BaseCollector
}

// NewPowerPlanCollector creates a new PowerPlanCollector with the given logger.
func NewPowerPlanCollector(logger *zap.Logger) *PowerPlanCollector {
	return &PowerPlanCollector{BaseCollector: NewBaseCollector(logger)}
}

// Name returns the collector's category label.
func (c *PowerPlanCollector) Name() string { return "Power Plan" }

// Collect delegates to the platform power-policy query.
func (c *PowerPlanCollector) Collect() report.Value {
	plan, err := queryPowerPlan()
	if err != nil {
		return report.Errorf("Failed to get power plan: %v", err)
	}
	var obj report.Object
	obj.Set("Power Plan", report.String(plan))
	return obj
}
