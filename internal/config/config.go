// Package config loads the tool configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all tool configuration.
type Config struct {
	// Logging
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`

	// Default export destinations
	JSONReportPath string `mapstructure:"json_report_path"`
	CSVReportPath  string `mapstructure:"csv_report_path"`

	// Benchmark tuning
	CPUBenchSeconds           int    `mapstructure:"cpu_bench_seconds"`
	ExtendedCPUBenchSeconds   int    `mapstructure:"extended_cpu_bench_seconds"`
	MemoryBenchBytes          int    `mapstructure:"memory_bench_bytes"`
	ExtendedMemoryBenchFloats int    `mapstructure:"extended_memory_bench_floats"`
	DiskBenchBytes            int    `mapstructure:"disk_bench_bytes"`
	ExtendedDiskBenchBytes    int    `mapstructure:"extended_disk_bench_bytes"`
	ExtendedDiskBenchCycles   int    `mapstructure:"extended_disk_bench_cycles"`
	BenchTempDir              string `mapstructure:"bench_temp_dir"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:                  "info",
		JSONReportPath:            "hardware_report.json",
		CSVReportPath:             "hardware_report.csv",
		CPUBenchSeconds:           3,
		ExtendedCPUBenchSeconds:   5,
		MemoryBenchBytes:          100_000_000,
		ExtendedMemoryBenchFloats: 10_000_000,
		DiskBenchBytes:            10_000_000,
		ExtendedDiskBenchBytes:    50_000_000,
		ExtendedDiskBenchCycles:   3,
	}
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("hardwarehouse")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(getConfigDir())
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("HARDWAREHOUSE")
	viper.AutomaticEnv()

	// A missing config file is fine; defaults apply.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return cfg, nil
}

// getConfigDir returns the platform-specific config directory.
func getConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("ProgramData"), "HardwareHouse")
	case "darwin":
		return "/Library/Application Support/HardwareHouse"
	default: // Linux and others
		return "/etc/hardwarehouse"
	}
}
