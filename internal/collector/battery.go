package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
)

// BatteryCollector reports battery charge state. Desktop systems without a
// battery report an Info field instead of an error.
type BatteryCollector struct {
	BaseCollector
}

// NewBatteryCollector creates a new BatteryCollector with the given logger.
func NewBatteryCollector(logger *zap.Logger) *BatteryCollector {
	return &BatteryCollector{BaseCollector: NewBaseCollector(logger)}
}

// Name returns the collector's category label.
func (c *BatteryCollector) Name() string { return "Battery Info" }

// Collect delegates to the platform battery query.
func (c *BatteryCollector) Collect() report.Value {
	obj, found, err := queryBattery()
	if err != nil {
		return report.Errorf("Failed to get battery info: %v", err)
	}
	if !found {
		var none report.Object
		none.Set("Info", report.String("No battery detected"))
		return none
	}
	return obj
}
