package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
)

// BIOSCollector reports firmware identity.
type BIOSCollector struct {
	BaseCollector
}

// NewBIOSCollector creates a new BIOSCollector with the given logger.
func NewBIOSCollector(logger *zap.Logger) *BIOSCollector {
	return &BIOSCollector{BaseCollector: NewBaseCollector(logger)}
}

// Name returns the collector's category label.
func (c *BIOSCollector) Name() string { return "BIOS Info" }

// Collect delegates to the platform firmware query.
func (c *BIOSCollector) Collect() report.Value {
	obj, err := queryBIOS()
	if err != nil {
		return report.Errorf("Failed to get BIOS info: %v", err)
	}
	return obj
}
