package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
)

// tinyConfig keeps probe runtime in the milliseconds for tests.
func tinyConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		CPUDuration:          10 * time.Millisecond,
		ExtendedCPUDuration:  10 * time.Millisecond,
		MemoryBytes:          10_000,
		ExtendedMemoryFloats: 10_000,
		DiskBytes:            10_000,
		ExtendedDiskBytes:    10_000,
		ExtendedDiskCycles:   2,
		TempDir:              t.TempDir(),
	}
}

func TestBaselineTierHasThreeFields(t *testing.T) {
	cfg := tinyConfig(t)
	r := NewRunner(cfg, zap.NewNop())

	ch, err := r.Start(Baseline)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	result := <-ch

	if len(result) != 3 {
		t.Fatalf("expected 3 fields, got %d: %s", len(result), report.Summary(result))
	}

	cpuKey := fmt.Sprintf("CPU Benchmark (loops in %ds)", int(cfg.CPUDuration.Seconds()))
	for _, key := range []string{cpuKey, "Memory Benchmark (sum bytes)", fmt.Sprintf("Disk Benchmark (write/read %dMB)", cfg.DiskBytes/1_000_000)} {
		if _, ok := result.Get(key); !ok {
			t.Errorf("missing field %q in %s", key, report.Summary(result))
		}
	}

	count, _ := result.Get(cpuKey)
	if c, ok := count.(report.Int); !ok || c <= 0 {
		t.Errorf("expected positive loop count, got %v", count)
	}
}

func TestExtendedTierHasThreeFields(t *testing.T) {
	cfg := tinyConfig(t)
	r := NewRunner(cfg, zap.NewNop())

	ch, err := r.Start(Extended)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	result := <-ch

	if len(result) != 3 {
		t.Fatalf("expected 3 fields, got %d: %s", len(result), report.Summary(result))
	}
	if _, ok := result.Get("Extended CPU Benchmark loops"); !ok {
		t.Errorf("missing extended CPU field in %s", report.Summary(result))
	}
}

func TestStartUnknownTier(t *testing.T) {
	r := NewRunner(tinyConfig(t), zap.NewNop())
	if _, err := r.Start(Tier("bogus")); err != ErrUnknownTier {
		t.Errorf("expected ErrUnknownTier, got %v", err)
	}
}

func TestStartWhileRunningIsRejected(t *testing.T) {
	cfg := tinyConfig(t)
	cfg.CPUDuration = 300 * time.Millisecond
	r := NewRunner(cfg, zap.NewNop())

	ch, err := r.Start(Baseline)
	if err != nil {
		t.Fatalf("first Start failed: %v", err)
	}

	// The busy flag is set before Start returns, so this is deterministic.
	if _, err := r.Start(Extended); err != ErrBusy {
		t.Errorf("expected ErrBusy for concurrent start, got %v", err)
	}

	<-ch

	// After completion a new tier may start.
	ch2, err := r.Start(Baseline)
	if err != nil {
		t.Fatalf("Start after completion failed: %v", err)
	}
	<-ch2
}

// The worker releases the busy slot before it sends on the buffered
// channel, so a caller that has drained the result can always start the
// next tier without a retry.
func TestRestartImmediatelyAfterDrain(t *testing.T) {
	r := NewRunner(tinyConfig(t), zap.NewNop())

	for i := 0; i < 25; i++ {
		ch, err := r.Start(Baseline)
		if err != nil {
			t.Fatalf("iteration %d: Start failed: %v", i, err)
		}
		<-ch
	}
}

func TestResultDeliveredExactlyOnce(t *testing.T) {
	r := NewRunner(tinyConfig(t), zap.NewNop())

	ch, err := r.Start(Baseline)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	first, ok := <-ch
	if !ok {
		t.Fatal("channel closed before delivering a result")
	}
	if len(first) == 0 {
		t.Error("delivered result is empty")
	}

	if _, ok := <-ch; ok {
		t.Error("channel delivered a second result")
	}
}

func TestDiskProbeRemovesScratchFile(t *testing.T) {
	cfg := tinyConfig(t)
	r := NewRunner(cfg, zap.NewNop())

	if _, err := r.diskCycles(cfg.DiskBytes, 2); err != nil {
		t.Fatalf("diskCycles failed: %v", err)
	}

	entries, err := os.ReadDir(cfg.TempDir)
	if err != nil {
		t.Fatalf("failed to read temp dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("scratch files left behind: %v", entries)
	}
}

func TestDiskProbeFailureBecomesErrorField(t *testing.T) {
	cfg := tinyConfig(t)
	cfg.TempDir = filepath.Join(cfg.TempDir, "does-not-exist")
	r := NewRunner(cfg, zap.NewNop())

	ch, err := r.Start(Baseline)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	result := <-ch

	if len(result) != 3 {
		t.Fatalf("expected 3 fields despite disk failure, got %d", len(result))
	}
	if _, ok := result.Get("Disk Benchmark Error"); !ok {
		t.Errorf("expected Disk Benchmark Error field, got %s", report.Summary(result))
	}
	// Sibling probes are unaffected.
	if _, ok := result.Get("Memory Benchmark (sum bytes)"); !ok {
		t.Error("memory probe result missing after disk failure")
	}
}

func TestCPUProbeHonorsWindow(t *testing.T) {
	cfg := tinyConfig(t)
	cfg.CPUDuration = 50 * time.Millisecond
	r := NewRunner(cfg, zap.NewNop())

	start := time.Now()
	obj, err := r.cpuProbe()
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("cpuProbe failed: %v", err)
	}
	if elapsed < cfg.CPUDuration {
		t.Errorf("probe finished before window elapsed: %v", elapsed)
	}
	if elapsed > 2*time.Second {
		t.Errorf("probe overran its window badly: %v", elapsed)
	}
	if len(obj) != 1 {
		t.Errorf("expected one field, got %d", len(obj))
	}
}

func TestRunProbeContainsPanic(t *testing.T) {
	_, err := runProbe(func() (report.Object, error) {
		panic("probe exploded")
	})
	if err == nil {
		t.Fatal("expected error from panicking probe")
	}
	if err.Error() != "probe exploded" {
		t.Errorf("unexpected message: %v", err)
	}
}
