//go:build !windows && !linux

package collector

import "github.com/hackintoshhouse/hardwarehouse/pkg/report"

func queryBattery() (report.Object, bool, error) {
	return nil, false, nil
}
