package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
)

// MotherboardCollector reports baseboard identity.
type MotherboardCollector struct {
	BaseCollector
}

// NewMotherboardCollector creates a new MotherboardCollector with the given logger.
func NewMotherboardCollector(logger *zap.Logger) *MotherboardCollector {
	return &MotherboardCollector{BaseCollector: NewBaseCollector(logger)}
}

// Name returns the collector's category label.
func (c *MotherboardCollector) Name() string { return "Motherboard Info" }

// Collect delegates to the platform baseboard query.
func (c *MotherboardCollector) Collect() report.Value {
	obj, err := queryMotherboard()
	if err != nil {
		return report.Errorf("Failed to get Motherboard info: %v", err)
	}
	return obj
}
