//go:build !windows && !linux

package collector

import (
	"fmt"
	"runtime"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
)

func queryGPUs(logger *zap.Logger) (report.List, error) {
	return nil, fmt.Errorf("GPU enumeration not supported on %s", runtime.GOOS)
}
