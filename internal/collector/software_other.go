//go:build !windows && !linux && !darwin

package collector

import (
	"fmt"
	"runtime"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
)

func querySoftware(logger *zap.Logger) (report.List, error) {
	return nil, fmt.Errorf("software inventory not supported on %s", runtime.GOOS)
}
