// Package bench executes the timed CPU, memory, and disk probes. A tier
// groups the three probes; the runner executes them strictly in order on a
// dedicated goroutine and delivers the merged result exactly once over a
// completion channel.
package bench

import (
	"errors"
	"sync"
	"time"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
)

// Tier names a probe group. The values double as the benchmark categories
// in the catalog.
type Tier string

// The two probe tiers.
const (
	Baseline Tier = "Benchmarks"
	Extended Tier = "Extended Benchmarks"
)

// ErrBusy is returned by Start while a tier is already in flight. Runs are
// rejected rather than queued: the session holds a single record and a
// queued run would silently overwrite the one the operator just watched.
var ErrBusy = errors.New("a benchmark tier is already running")

// ErrUnknownTier is returned by Start for a tier name outside the catalog.
var ErrUnknownTier = errors.New("unknown benchmark tier")

// Config holds the probe tunables. The defaults match the published
// methodology; tests shrink them.
type Config struct {
	CPUDuration         time.Duration
	ExtendedCPUDuration time.Duration

	MemoryBytes          int
	ExtendedMemoryFloats int

	DiskBytes          int
	ExtendedDiskBytes  int
	ExtendedDiskCycles int

	// TempDir is where the disk probe creates its scratch file. Empty
	// means the OS default.
	TempDir string
}

// DefaultConfig returns the standard probe sizes and durations.
func DefaultConfig() Config {
	return Config{
		CPUDuration:          3 * time.Second,
		ExtendedCPUDuration:  5 * time.Second,
		MemoryBytes:          100_000_000,
		ExtendedMemoryFloats: 10_000_000,
		DiskBytes:            10_000_000,
		ExtendedDiskBytes:    50_000_000,
		ExtendedDiskCycles:   3,
	}
}

// Runner executes benchmark tiers off the caller's goroutine.
type Runner struct {
	cfg    Config
	logger *zap.Logger

	mu   sync.Mutex
	busy bool
}

// NewRunner creates a Runner with the given probe configuration.
func NewRunner(cfg Config, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{cfg: cfg, logger: logger.Named("bench")}
}

// Start launches a tier on a dedicated goroutine and returns a one-shot
// channel carrying the merged result. The channel is buffered, so the
// worker never blocks on a slow consumer, and it is closed after the single
// send. While any tier is in flight Start returns ErrBusy.
func (r *Runner) Start(tier Tier) (<-chan report.Object, error) {
	switch tier {
	case Baseline, Extended:
	default:
		return nil, ErrUnknownTier
	}

	r.mu.Lock()
	if r.busy {
		r.mu.Unlock()
		return nil, ErrBusy
	}
	r.busy = true
	r.mu.Unlock()

	ch := make(chan report.Object, 1)
	go func() {
		start := time.Now()
		r.logger.Info("benchmark tier starting", zap.String("tier", string(tier)))
		result := r.runTier(tier)
		r.logger.Info("benchmark tier finished",
			zap.String("tier", string(tier)),
			zap.Duration("elapsed", time.Since(start)))

		// Release the slot before delivering: once a caller has drained
		// the result, the next Start must succeed.
		r.mu.Lock()
		r.busy = false
		r.mu.Unlock()

		ch <- result
		close(ch)
	}()
	return ch, nil
}

// Running reports whether a tier is currently in flight.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.busy
}

type probe struct {
	name string
	fn   func() (report.Object, error)
}

// runTier executes the tier's probes strictly in order: CPU, then memory,
// then disk. A failed probe contributes a named Error field and does not
// abort its siblings.
func (r *Runner) runTier(tier Tier) report.Object {
	var probes []probe
	switch tier {
	case Extended:
		probes = []probe{
			{"Extended CPU Benchmark", r.extendedCPUProbe},
			{"Extended Memory Benchmark", r.extendedMemoryProbe},
			{"Extended Disk Benchmark", r.extendedDiskProbe},
		}
	default:
		probes = []probe{
			{"CPU Benchmark", r.cpuProbe},
			{"Memory Benchmark", r.memoryProbe},
			{"Disk Benchmark", r.diskProbe},
		}
	}

	var result report.Object
	for _, p := range probes {
		fields, err := runProbe(p.fn)
		if err != nil {
			r.logger.Warn("probe failed",
				zap.String("probe", p.name),
				zap.Error(err))
			result.Set(p.name+" Error", report.String(err.Error()))
			continue
		}
		result.Merge(fields)
	}
	return result
}

// runProbe converts a probe panic into an error so one probe can never take
// down the tier.
func runProbe(fn func() (report.Object, error)) (obj report.Object, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.New(panicMessage(p))
		}
	}()
	return fn()
}

func panicMessage(p any) string {
	if err, ok := p.(error); ok {
		return err.Error()
	}
	if s, ok := p.(string); ok {
		return s
	}
	return "probe panicked"
}
