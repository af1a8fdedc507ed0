package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
)

// PrinterCollector reports locally installed print queues.
type PrinterCollector struct {
	BaseCollector
}

// NewPrinterCollector creates a new PrinterCollector with the given logger.
func NewPrinterCollector(logger *zap.Logger) *PrinterCollector {
	return &PrinterCollector{BaseCollector: NewBaseCollector(logger)}
}

// Name returns the collector's category label.
func (c *PrinterCollector) Name() string { return "Printers" }

// Collect wraps the printer list under a single "Printers" field.
func (c *PrinterCollector) Collect() report.Value {
	printers, err := queryPrinters()
	if err != nil {
		printers = report.List{report.Errorf("Failed to get printers info: %v", err)}
	}
	var obj report.Object
	obj.Set("Printers", printers)
	return obj
}
