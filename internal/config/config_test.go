package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("expected info log level, got %q", cfg.LogLevel)
	}
	if cfg.JSONReportPath != "hardware_report.json" {
		t.Errorf("unexpected JSON path: %q", cfg.JSONReportPath)
	}
	if cfg.CSVReportPath != "hardware_report.csv" {
		t.Errorf("unexpected CSV path: %q", cfg.CSVReportPath)
	}
	if cfg.CPUBenchSeconds != 3 || cfg.ExtendedCPUBenchSeconds != 5 {
		t.Errorf("unexpected CPU bench durations: %d/%d",
			cfg.CPUBenchSeconds, cfg.ExtendedCPUBenchSeconds)
	}
	if cfg.MemoryBenchBytes != 100_000_000 {
		t.Errorf("unexpected memory bench size: %d", cfg.MemoryBenchBytes)
	}
	if cfg.DiskBenchBytes != 10_000_000 || cfg.ExtendedDiskBenchBytes != 50_000_000 {
		t.Errorf("unexpected disk bench sizes: %d/%d",
			cfg.DiskBenchBytes, cfg.ExtendedDiskBenchBytes)
	}
	if cfg.ExtendedDiskBenchCycles != 3 {
		t.Errorf("unexpected disk bench cycles: %d", cfg.ExtendedDiskBenchCycles)
	}
}
