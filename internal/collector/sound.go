package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
)

// SoundCollector reports the audio devices present on the system.
type SoundCollector struct {
	BaseCollector
}

// NewSoundCollector creates a new SoundCollector with the given logger.
func NewSoundCollector(logger *zap.Logger) *SoundCollector {
	return &SoundCollector{BaseCollector: NewBaseCollector(logger)}
}

// Name returns the collector's category label.
func (c *SoundCollector) Name() string { return "Sound Devices" }

// Collect wraps the device list under a single "Sound Devices" field.
func (c *SoundCollector) Collect() report.Value {
	devices, err := querySoundDevices()
	if err != nil {
		devices = report.List{report.Errorf("Failed to get Sound Devices info: %v", err)}
	}
	var obj report.Object
	obj.Set("Sound Devices", devices)
	return obj
}
