package bench

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
)

// benchSink receives each probe's reduction result so the compiler cannot
// remove the work being timed.
var benchSink float64

// cpuProbe counts busy-loop work units completed inside the configured
// window. The deadline is checked between units, so the loop stops as soon
// as the window elapses but never mid-unit.
func (r *Runner) cpuProbe() (report.Object, error) {
	deadline := time.Now().Add(r.cfg.CPUDuration)
	var count int64
	for time.Now().Before(deadline) {
		benchSink = math.Sqrt(float64(count))
		count++
	}

	var obj report.Object
	obj.Set(fmt.Sprintf("CPU Benchmark (loops in %ds)", int(r.cfg.CPUDuration.Seconds())),
		report.Int(count))
	return obj, nil
}

// extendedCPUProbe runs a heavier unit: a hundred mixed float operations
// per loop.
func (r *Runner) extendedCPUProbe() (report.Object, error) {
	deadline := time.Now().Add(r.cfg.ExtendedCPUDuration)
	var count int64
	for time.Now().Before(deadline) {
		var acc float64
		for i := 1; i < 100; i++ {
			f := float64(i)
			acc += math.Sqrt(f*f+1)*math.Sin(f) + math.Log(f+1)
		}
		benchSink = acc
		count++
	}

	var obj report.Object
	obj.Set("Extended CPU Benchmark loops", report.Int(count))
	return obj, nil
}

// memoryProbe times one full reduction pass over a large byte buffer.
// Allocation happens before the clock starts; only the pass is measured.
func (r *Runner) memoryProbe() (report.Object, error) {
	data := make([]byte, r.cfg.MemoryBytes)

	start := time.Now()
	var sum uint64
	for _, b := range data {
		sum += uint64(b)
	}
	elapsed := time.Since(start)
	benchSink = float64(sum)

	var obj report.Object
	obj.Set("Memory Benchmark (sum bytes)", report.String(formatSeconds(elapsed)))
	return obj, nil
}

// extendedMemoryProbe times a summation over a large float slice.
func (r *Runner) extendedMemoryProbe() (report.Object, error) {
	data := make([]float64, r.cfg.ExtendedMemoryFloats)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range data {
		data[i] = rng.Float64()
	}

	start := time.Now()
	var sum float64
	for _, f := range data {
		sum += f
	}
	elapsed := time.Since(start)
	benchSink = sum

	var obj report.Object
	obj.Set(fmt.Sprintf("Extended Memory Benchmark (sum %dM floats)", r.cfg.ExtendedMemoryFloats/1_000_000),
		report.String(formatSeconds(elapsed)))
	return obj, nil
}

// diskProbe times one write-then-read cycle of a scratch file.
func (r *Runner) diskProbe() (report.Object, error) {
	elapsed, err := r.diskCycles(r.cfg.DiskBytes, 1)
	if err != nil {
		return nil, err
	}

	var obj report.Object
	obj.Set(fmt.Sprintf("Disk Benchmark (write/read %dMB)", r.cfg.DiskBytes/1_000_000),
		report.String(formatSeconds(elapsed)))
	return obj, nil
}

// extendedDiskProbe times repeated write/read cycles of a larger file.
func (r *Runner) extendedDiskProbe() (report.Object, error) {
	elapsed, err := r.diskCycles(r.cfg.ExtendedDiskBytes, r.cfg.ExtendedDiskCycles)
	if err != nil {
		return nil, err
	}

	var obj report.Object
	obj.Set(fmt.Sprintf("Extended Disk Benchmark (%dx %dMB write/read)",
		r.cfg.ExtendedDiskCycles, r.cfg.ExtendedDiskBytes/1_000_000),
		report.String(formatSeconds(elapsed)))
	return obj, nil
}

// diskCycles writes and reads back a scratch file the given number of
// times. The file is removed on every exit path, including errors.
func (r *Runner) diskCycles(size, cycles int) (time.Duration, error) {
	f, err := os.CreateTemp(r.cfg.TempDir, "hardwarehouse-bench-*")
	if err != nil {
		return 0, fmt.Errorf("failed to create scratch file: %w", err)
	}
	name := f.Name()
	f.Close()
	defer os.Remove(name)

	data := bytes.Repeat([]byte{'x'}, size)

	start := time.Now()
	for i := 0; i < cycles; i++ {
		if err := os.WriteFile(name, data, 0o600); err != nil {
			return 0, fmt.Errorf("write failed: %w", err)
		}
		readBack, err := os.ReadFile(name)
		if err != nil {
			return 0, fmt.Errorf("read failed: %w", err)
		}
		benchSink = float64(len(readBack))
	}
	return time.Since(start), nil
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.4f seconds", d.Seconds())
}
