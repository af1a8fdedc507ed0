package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"github.com/shirou/gopsutil/v3/mem"
	"go.uber.org/zap"
)

const bytesPerGB = 1 << 30

// RAMCollector reports virtual and swap memory utilization.
type RAMCollector struct {
	BaseCollector
}

// NewRAMCollector creates a new RAMCollector with the given logger.
func NewRAMCollector(logger *zap.Logger) *RAMCollector {
	return &RAMCollector{BaseCollector: NewBaseCollector(logger)}
}

// Name returns the collector's category label.
func (c *RAMCollector) Name() string { return "RAM Info" }

// Collect gathers memory figures in GB rounded to two decimals.
func (c *RAMCollector) Collect() report.Value {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return report.Errorf("Failed to get RAM info: %v", err)
	}

	var obj report.Object
	obj.Set("Total RAM (GB)", report.Round2(float64(vm.Total)/bytesPerGB))
	obj.Set("Available RAM (GB)", report.Round2(float64(vm.Available)/bytesPerGB))
	obj.Set("Used RAM (GB)", report.Round2(float64(vm.Used)/bytesPerGB))
	obj.Set("RAM Usage (%)", report.Round2(vm.UsedPercent))

	swap, err := mem.SwapMemory()
	if err != nil {
		c.LogWarning("failed to get swap memory", zap.Error(err))
	} else {
		obj.Set("Total Swap (GB)", report.Round2(float64(swap.Total)/bytesPerGB))
		obj.Set("Used Swap (GB)", report.Round2(float64(swap.Used)/bytesPerGB))
		obj.Set("Swap Usage (%)", report.Round2(swap.UsedPercent))
	}

	return obj
}
