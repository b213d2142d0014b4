// Package sweep drives the solver once per interior start cell, in parallel,
// to map which starts of a given board size admit a tour. Each worker owns
// its own board, so no solver state is shared.
package sweep

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rybkr/knightstour/internal/board"
	"github.com/rybkr/knightstour/internal/solver"
)

// Result is the outcome of one start cell.
type Result struct {
	Start   board.Pos
	Board   *board.Board // nil unless Solved
	Stats   solver.Stats
	Elapsed time.Duration
	Err     error // nil, solver.ErrNoTour or solver.ErrTimeout
}

// Solved reports whether this start produced a full tour.
func (r Result) Solved() bool {
	return r.Err == nil
}

// Run solves one board per interior start cell of a size×size grid.
// Results come back in row-major start order regardless of scheduling.
// The returned error reflects setup problems only; per-start failures are
// reported in the results.
func Run(ctx context.Context, size int, opts *Options) ([]Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	opts = opts.withDefaults()

	base, err := board.New(size)
	if err != nil {
		return nil, err
	}
	starts := base.Geometry().InteriorCells()
	results := make([]Result, len(starts))

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Workers)

	for i, start := range starts {
		i, start := i, start // per-iteration copies; module targets pre-1.22 loop semantics
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				results[i] = Result{Start: start, Err: err}
				return nil
			}

			s := solver.New(base, &solver.Options{
				Start:   &start,
				Seed:    seed + int64(i) + 1,
				Timeout: opts.Timeout,
				Logger:  opts.Logger,
			})

			began := time.Now()
			solved, err := s.Solve()
			res := Result{
				Start:   start,
				Stats:   s.Stats(),
				Elapsed: time.Since(began),
				Err:     err,
			}
			if err == nil {
				res.Board = solved
			} else if !errors.Is(err, solver.ErrNoTour) && !errors.Is(err, solver.ErrTimeout) {
				return err
			}
			results[i] = res

			opts.Logger.Debug("start swept",
				zap.Int("row", start.Row),
				zap.Int("col", start.Col),
				zap.Bool("solved", res.Solved()),
				zap.Duration("elapsed", res.Elapsed))
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
