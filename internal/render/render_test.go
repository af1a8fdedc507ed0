package render

import (
	"testing"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
)

func renderLines(v report.Value) []string {
	var lines []string
	Lines(v, func(line string) { lines = append(lines, line) })
	return lines
}

func TestFlatObject(t *testing.T) {
	rec := report.Object{
		{Name: "System", Value: report.String("linux")},
		{Name: "Cores", Value: report.Int(8)},
	}

	got := renderLines(rec)
	want := []string{"System: linux", "Cores: 8"}
	assertLines(t, got, want)
}

func TestNestedObjectAndList(t *testing.T) {
	rec := report.Object{
		{Name: "A", Value: report.Int(1)},
		{Name: "B", Value: report.Object{{Name: "C", Value: report.String("x")}}},
		{Name: "D", Value: report.List{
			report.Object{{Name: "E", Value: report.Int(2)}},
			report.String("scalar"),
		}},
	}

	got := renderLines(rec)
	want := []string{
		"A: 1",
		"B:",
		"    C: x",
		"D:",
		"    - Item 1:",
		"        E: 2",
		"    - Item 2:",
		"        scalar",
	}
	assertLines(t, got, want)
}

func TestEmptyComposites(t *testing.T) {
	rec := report.Object{
		{Name: "Empty", Value: report.Object{}},
		{Name: "None", Value: report.List{}},
	}

	got := renderLines(rec)
	want := []string{"Empty:", "None:"}
	assertLines(t, got, want)
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
