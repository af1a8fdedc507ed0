package collector

import (
	"fmt"
	"os"
	"time"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
)

// LocaleCollector reports the process locale and the local timezone.
type LocaleCollector struct {
	BaseCollector
}

// NewLocaleCollector creates a new LocaleCollector with the given logger.
func NewLocaleCollector(logger *zap.Logger) *LocaleCollector {
	return &LocaleCollector{BaseCollector: NewBaseCollector(logger)}
}

// Name returns the collector's category label.
func (c *LocaleCollector) Name() string { return "Locale & Timezone" }

// Collect reads the locale from the environment and the timezone from the
// local clock.
func (c *LocaleCollector) Collect() report.Value {
	locale := "Unknown"
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			locale = v
			break
		}
	}

	name, offset := time.Now().Zone()

	var obj report.Object
	obj.Set("Locale", report.String(locale))
	obj.Set("Timezone", report.String(fmt.Sprintf("%s (UTC%+03d:%02d)", name, offset/3600, abs(offset%3600)/60)))
	return obj
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
