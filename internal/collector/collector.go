// Package collector provides the per-category system information collectors
// and the registry that dispatches to them. Each collector gathers one
// hardware or software category and returns it as a report record; platform
// query failures are embedded in the record as Error fields, never returned
// as faults.
package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
)

// Collector is the interface all category collectors implement.
// Collect never fails: implementations catch platform errors and embed an
// "Error" field in the returned record, so callers always receive a
// well-formed record.
type Collector interface {
	// Collect gathers the category's information. The result is always an
	// Object, or an Object wrapping a List for multi-instance hardware.
	Collect() report.Value

	// Name returns the collector's category label, used for dispatch,
	// display, and logging.
	Name() string
}

// BaseCollector provides common functionality for all collectors.
type BaseCollector struct {
	logger *zap.Logger
}

// NewBaseCollector creates a new BaseCollector with the given logger.
func NewBaseCollector(logger *zap.Logger) BaseCollector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return BaseCollector{logger: logger}
}

// Logger returns the collector's logger.
func (b *BaseCollector) Logger() *zap.Logger {
	return b.logger
}

// LogWarning logs a warning message for partial failures during collection.
func (b *BaseCollector) LogWarning(msg string, fields ...zap.Field) {
	b.logger.Warn(msg, fields...)
}

// LogDebug logs a debug message.
func (b *BaseCollector) LogDebug(msg string, fields ...zap.Field) {
	b.logger.Debug(msg, fields...)
}
