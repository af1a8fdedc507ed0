package main

import (
	"fmt"
	"time"

	"github.com/hackintoshhouse/hardwarehouse/internal/bench"
	"github.com/hackintoshhouse/hardwarehouse/internal/collector"
	"github.com/hackintoshhouse/hardwarehouse/internal/config"
	"github.com/hackintoshhouse/hardwarehouse/internal/export"
	"github.com/hackintoshhouse/hardwarehouse/internal/logging"
	"github.com/hackintoshhouse/hardwarehouse/internal/render"
	"github.com/hackintoshhouse/hardwarehouse/internal/session"
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	benchBaseline = bench.Baseline
	benchExtended = bench.Extended
)

// app wires the core components together for one CLI invocation.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	registry *collector.Registry
	session  *session.Store
	runner   *bench.Runner
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, err
	}

	benchCfg := bench.Config{
		CPUDuration:          time.Duration(cfg.CPUBenchSeconds) * time.Second,
		ExtendedCPUDuration:  time.Duration(cfg.ExtendedCPUBenchSeconds) * time.Second,
		MemoryBytes:          cfg.MemoryBenchBytes,
		ExtendedMemoryFloats: cfg.ExtendedMemoryBenchFloats,
		DiskBytes:            cfg.DiskBenchBytes,
		ExtendedDiskBytes:    cfg.ExtendedDiskBenchBytes,
		ExtendedDiskCycles:   cfg.ExtendedDiskBenchCycles,
		TempDir:              cfg.BenchTempDir,
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		registry: collector.NewRegistry(logger),
		session:  session.NewStore(),
		runner:   bench.NewRunner(benchCfg, logger),
	}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}

// show collects one category (running the probe tier for benchmark
// categories), stores it in the session, and renders it to stdout.
func (a *app) show(category string) error {
	var rec report.Value
	if a.registry.IsBenchmark(category) {
		ch, err := a.runner.Start(bench.Tier(category))
		if err != nil {
			return err
		}
		fmt.Println("Running benchmarks...")
		rec = <-ch
	} else {
		rec = a.registry.Fetch(category)
	}

	a.session.Set(rec)
	render.Lines(rec, func(line string) { fmt.Println(line) })
	return nil
}

// fullReport collects every non-benchmark category into one record, one
// field per category, and stores it in the session.
func (a *app) fullReport() error {
	var combined report.Object
	for _, category := range a.registry.Catalog() {
		if a.registry.IsBenchmark(category) {
			continue
		}
		combined.Set(category, a.registry.Fetch(category))
	}
	a.session.Set(combined)
	fmt.Printf("Collected %d categories\n", len(combined))
	return nil
}

// exportFlags runs the exports requested by --json/--csv. The report
// command always writes JSON even without flags.
func (a *app) exportFlags(cmd *cobra.Command) error {
	jsonRequested := cmd.Flags().Changed("json")
	csvRequested := cmd.Flags().Changed("csv")
	if cmd == reportCmd && !jsonRequested && !csvRequested {
		jsonRequested = true
	}

	if jsonRequested {
		path, _ := cmd.Flags().GetString("json")
		if path == "" || path == "default" {
			path = a.cfg.JSONReportPath
		}
		if err := a.exportJSON(path); err != nil {
			return err
		}
	}
	if csvRequested {
		path, _ := cmd.Flags().GetString("csv")
		if path == "" || path == "default" {
			path = a.cfg.CSVReportPath
		}
		if err := a.exportCSV(path); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) exportJSON(path string) error {
	rec, ok := a.session.Get()
	if !ok {
		fmt.Println("No data to export")
		return nil
	}
	if err := export.JSON(rec, path); err != nil {
		return fmt.Errorf("error exporting JSON: %w", err)
	}
	fmt.Printf("Exported data to %s\n", path)
	return nil
}

func (a *app) exportCSV(path string) error {
	rec, ok := a.session.Get()
	if !ok {
		fmt.Println("No data to export")
		return nil
	}
	if err := export.CSV(rec, path); err != nil {
		return fmt.Errorf("error exporting CSV: %w", err)
	}
	fmt.Printf("Exported data to %s\n", path)
	return nil
}
