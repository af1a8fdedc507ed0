//go:build !windows

package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
)

// collectPlatformCPU is a no-op where WMI is unavailable; the gopsutil
// fields already cover what these platforms expose.
func collectPlatformCPU(obj *report.Object, logger *zap.Logger) {}
