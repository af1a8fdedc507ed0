package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
)

// USBCollector reports connected USB devices as a list of device names.
type USBCollector struct {
	BaseCollector
}

// NewUSBCollector creates a new USBCollector with the given logger.
func NewUSBCollector(logger *zap.Logger) *USBCollector {
	return &USBCollector{BaseCollector: NewBaseCollector(logger)}
}

// Name returns the collector's category label.
func (c *USBCollector) Name() string { return "USB Devices" }

// Collect wraps the device name list under a single "USB Devices" field.
func (c *USBCollector) Collect() report.Value {
	devices, err := queryUSBDevices()
	if err != nil {
		devices = report.List{report.Errorf("Failed to get USB devices: %v", err)}
	}
	var obj report.Object
	obj.Set("USB Devices", devices)
	return obj
}
