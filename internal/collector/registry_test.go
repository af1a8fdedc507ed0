package collector

import (
	"testing"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
)

func TestFetchUnknownCategory(t *testing.T) {
	r := NewRegistry(zap.NewNop())

	v := r.Fetch("nonexistent-category")
	obj, ok := v.(report.Object)
	if !ok {
		t.Fatalf("expected Object, got %T", v)
	}
	msg, ok := obj.Get("Error")
	if !ok {
		t.Fatal("expected Error field")
	}
	if msg != report.String("Unknown category") {
		t.Errorf("unexpected message: %v", msg)
	}
}

func TestFetchAllCategoriesWellFormed(t *testing.T) {
	r := NewRegistry(zap.NewNop())

	for _, category := range r.Catalog() {
		if r.IsBenchmark(category) {
			continue
		}
		v := r.Fetch(category)
		if v == nil {
			t.Errorf("%s: returned nil record", category)
			continue
		}
		if _, ok := v.(report.Object); !ok {
			t.Errorf("%s: expected Object, got %T", category, v)
		}
		t.Logf("%s: %s", category, report.Summary(v))
	}
}

func TestCatalogIncludesBenchmarkTiers(t *testing.T) {
	r := NewRegistry(zap.NewNop())

	found := 0
	for _, category := range r.Catalog() {
		if r.IsBenchmark(category) {
			found++
		}
	}
	if found != 2 {
		t.Errorf("expected 2 benchmark entries in catalog, got %d", found)
	}
	if !r.IsBenchmark(CategoryBenchmarks) || !r.IsBenchmark(CategoryExtendedBenchmarks) {
		t.Error("benchmark categories not recognized")
	}
}

func TestCatalogIsACopy(t *testing.T) {
	r := NewRegistry(zap.NewNop())

	c1 := r.Catalog()
	c1[0] = "mutated"
	c2 := r.Catalog()
	if c2[0] == "mutated" {
		t.Error("Catalog returned shared backing array")
	}
}

type panickyCollector struct {
	BaseCollector
}

func (p *panickyCollector) Name() string          { return "Panicky" }
func (p *panickyCollector) Collect() report.Value { panic("boom") }

func TestFetchContainsCollectorPanic(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	r.register(&panickyCollector{BaseCollector: NewBaseCollector(nil)})

	v := r.Fetch("Panicky")
	obj, ok := v.(report.Object)
	if !ok {
		t.Fatalf("expected Object, got %T", v)
	}
	msg, ok := obj.Get("Error")
	if !ok {
		t.Fatal("expected Error field after panic")
	}
	t.Logf("contained panic as: %v", msg)
}

func TestBatteryAbsentIsInfoNotError(t *testing.T) {
	c := NewBatteryCollector(zap.NewNop())
	v := c.Collect()
	obj, ok := v.(report.Object)
	if !ok {
		t.Fatalf("expected Object, got %T", v)
	}
	// Either real battery data, an Info field on battery-less systems, or
	// an Error field where the platform query failed. Empty is the one
	// invalid outcome.
	if len(obj) == 0 {
		t.Error("battery record is empty")
	}
}

func TestFormatUptime(t *testing.T) {
	cases := []struct {
		seconds uint64
		want    string
	}{
		{0, "0d 0h 0m 0s"},
		{90061, "1d 1h 1m 1s"},
		{3 * 86400, "3d 0h 0m 0s"},
	}
	for _, c := range cases {
		if got := formatUptime(c.seconds); got != c.want {
			t.Errorf("formatUptime(%d) = %q, want %q", c.seconds, got, c.want)
		}
	}
}
