package sweep

import (
	"runtime"
	"time"

	"go.uber.org/zap"
)

// Options configures a sweep over start cells.
type Options struct {
	// Workers bounds how many boards are solved concurrently.
	// Zero or negative means one worker per CPU.
	Workers int

	// Timeout limits the search from each individual start cell.
	Timeout time.Duration

	// Seed makes the sweep reproducible (0 = random). Each start cell
	// derives its own seed from it.
	Seed int64

	// Logger receives per-start progress. nil is replaced by a no-op logger.
	Logger *zap.Logger
}

// DefaultOptions returns standard sweep options.
func DefaultOptions() *Options {
	return &Options{
		Workers: runtime.NumCPU(),
		Timeout: 10 * time.Second,
		Logger:  zap.NewNop(),
	}
}

// withDefaults fills unset option fields.
func (o *Options) withDefaults() *Options {
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
