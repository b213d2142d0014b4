package solver

import (
	"time"

	"go.uber.org/zap"

	"github.com/rybkr/knightstour/internal/board"
)

// Options configures tour search behavior.
type Options struct {
	// Start fixes the first cell of the tour. nil means a uniformly random
	// interior cell.
	Start *board.Pos

	// Seed drives start-cell selection for reproducible runs (0 = random).
	Seed int64

	// Timeout limits search time. Zero means no limit; the search is bounded
	// either way.
	Timeout time.Duration

	// Logger receives search diagnostics. nil is replaced by a no-op logger.
	Logger *zap.Logger
}

// DefaultOptions returns standard solver options.
func DefaultOptions() *Options {
	return &Options{
		Timeout: 10 * time.Second,
		Logger:  zap.NewNop(),
	}
}

// withDefaults fills unset option fields.
func (o *Options) withDefaults() *Options {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
