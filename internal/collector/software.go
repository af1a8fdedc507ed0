package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
)

// SoftwareCollector reports installed software. Detection is platform
// specific: the Windows registry Uninstall hives, the Linux package
// manager, or the macOS /Applications directory.
type SoftwareCollector struct {
	BaseCollector
}

// NewSoftwareCollector creates a new SoftwareCollector with the given logger.
func NewSoftwareCollector(logger *zap.Logger) *SoftwareCollector {
	return &SoftwareCollector{BaseCollector: NewBaseCollector(logger)}
}

// Name returns the collector's category label.
func (c *SoftwareCollector) Name() string { return "Installed Software" }

// Collect wraps the software list under a single "Installed Software" field.
func (c *SoftwareCollector) Collect() report.Value {
	software, err := querySoftware(c.Logger())
	if err != nil {
		software = report.List{report.Errorf("Failed to get software list: %v", err)}
	}
	var obj report.Object
	obj.Set("Installed Software", software)
	return obj
}
