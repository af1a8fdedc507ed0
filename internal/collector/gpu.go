package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
)

// GPUCollector reports the video adapters present on the system.
type GPUCollector struct {
	BaseCollector
}

// NewGPUCollector creates a new GPUCollector with the given logger.
func NewGPUCollector(logger *zap.Logger) *GPUCollector {
	return &GPUCollector{BaseCollector: NewBaseCollector(logger)}
}

// Name returns the collector's category label.
func (c *GPUCollector) Name() string { return "GPU Info" }

// Collect wraps the platform GPU list under a single "GPUs" field.
func (c *GPUCollector) Collect() report.Value {
	gpus, err := queryGPUs(c.Logger())
	if err != nil {
		gpus = report.List{report.Errorf("Failed to get GPU info: %v", err)}
	}
	var obj report.Object
	obj.Set("GPUs", gpus)
	return obj
}
