package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
)

// Benchmark categories appear in the catalog but are executed by the
// benchmark runner, not by a registered collector.
const (
	CategoryBenchmarks         = "Benchmarks"
	CategoryExtendedBenchmarks = "Extended Benchmarks"
)

// catalog is the fixed, ordered list of categories offered to the operator.
var catalog = []string{
	"System Info",
	"CPU Info",
	"GPU Info",
	"RAM Info",
	"Disk Info",
	"Network Info",
	"BIOS Info",
	"Motherboard Info",
	"Sound Devices",
	"Battery Info",
	"Process Count",
	"Boot Time",
	CategoryBenchmarks,
	"USB Devices",
	"Display Monitors",
	"Printers",
	"Installed Software",
	"Power Plan",
	"Locale & Timezone",
	"System Uptime",
	CategoryExtendedBenchmarks,
}

// Registry maps category names to their collectors. Both the baseline and
// the extended category sets live in the one flat map; there is no
// override chain.
type Registry struct {
	logger     *zap.Logger
	collectors map[string]Collector
}

// NewRegistry builds a registry with every category collector registered.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{
		logger:     logger.Named("collector"),
		collectors: make(map[string]Collector),
	}

	for _, c := range []Collector{
		NewSystemCollector(r.logger),
		NewCPUCollector(r.logger),
		NewGPUCollector(r.logger),
		NewRAMCollector(r.logger),
		NewDiskCollector(r.logger),
		NewNetworkCollector(r.logger),
		NewBIOSCollector(r.logger),
		NewMotherboardCollector(r.logger),
		NewSoundCollector(r.logger),
		NewBatteryCollector(r.logger),
		NewProcessCountCollector(r.logger),
		NewBootTimeCollector(r.logger),
		NewUSBCollector(r.logger),
		NewMonitorCollector(r.logger),
		NewPrinterCollector(r.logger),
		NewSoftwareCollector(r.logger),
		NewPowerPlanCollector(r.logger),
		NewLocaleCollector(r.logger),
		NewUptimeCollector(r.logger),
	} {
		r.register(c)
	}

	return r
}

func (r *Registry) register(c Collector) {
	r.collectors[c.Name()] = c
}

// Catalog returns the ordered category list, benchmark tiers included.
func (r *Registry) Catalog() []string {
	out := make([]string, len(catalog))
	copy(out, catalog)
	return out
}

// IsBenchmark reports whether a category is a benchmark tier rather than a
// collector.
func (r *Registry) IsBenchmark(category string) bool {
	return category == CategoryBenchmarks || category == CategoryExtendedBenchmarks
}

// Fetch runs the collector for a category and returns its record. Unknown
// categories and collector panics come back as Error records; Fetch never
// fails.
func (r *Registry) Fetch(category string) (v report.Value) {
	c, ok := r.collectors[category]
	if !ok {
		r.logger.Warn("unknown category requested", zap.String("category", category))
		return report.ErrorObject("Unknown category")
	}

	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("collector panicked",
				zap.String("category", category),
				zap.Any("panic", p))
			v = report.Errorf("Failed to collect %s: %v", category, p)
		}
	}()

	r.logger.Debug("fetching category", zap.String("category", category))
	v = c.Collect()
	r.logger.Debug("category collected",
		zap.String("category", category),
		zap.String("result", report.Summary(v)))
	return v
}
