package solver

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/rybkr/knightstour/internal/board"
)

var (
	ErrNoTour  = errors.New("no tour found from the chosen start")
	ErrTimeout = errors.New("solver timeout exceeded")
)

// moves holds the eight knight offsets as (dr, dc) pairs. Candidate
// enumeration walks this table in order and the candidate sort is stable, so
// the sequence doubles as the tie-break policy; reordering it changes which
// of two equal-degree candidates is tried first.
var moves = [8]board.Pos{
	{Row: -2, Col: 1},
	{Row: -1, Col: 2},
	{Row: 1, Col: 2},
	{Row: 2, Col: 1},
	{Row: 2, Col: -1},
	{Row: 1, Col: -2},
	{Row: -1, Col: -2},
	{Row: -2, Col: -1},
}

// candidate is an unvisited destination paired with its onward-degree,
// the number of unvisited cells reachable from it in one further move.
type candidate struct {
	pos    board.Pos
	degree int
}

// Solver finds knight's tours on a single exclusively owned board.
type Solver struct {
	Board   *board.Board
	options *Options
	rng     *rand.Rand
	stats   Stats
}

// New creates a solver for the given board. The board is cloned, so the
// caller's copy is never mutated.
func New(b *board.Board, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}
	options = options.withDefaults()

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Solver{
		Board:   b.Clone(),
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Solve attempts a full tour from the configured start cell (or a uniformly
// random interior cell when none is configured). On success the returned
// board holds the permutation 1..Total. On failure every cell except the
// start has been unwound to Unvisited and ErrNoTour (or ErrTimeout) is
// returned.
func (s *Solver) Solve() (*board.Board, error) {
	start, err := s.pickStart()
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.makeContext()
	defer cancel()

	s.options.Logger.Debug("starting search",
		zap.Int("size", s.Board.Size()),
		zap.Int("total", s.Board.Total()),
		zap.Int("startRow", start.Row),
		zap.Int("startCol", start.Col))

	s.Board.VisitForce(start.Row, start.Col, 1)
	if !s.solve(ctx, start.Row, start.Col, 2) {
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		return nil, ErrNoTour
	}
	return s.Board, nil
}

// Stats returns counters describing the effort of the last Solve call.
func (s *Solver) Stats() Stats {
	return s.stats
}

// pickStart resolves the starting cell from the options.
func (s *Solver) pickStart() (board.Pos, error) {
	g := s.Board.Geometry()
	if s.options.Start != nil {
		p := *s.options.Start
		if !g.Usable(p.Row, p.Col) {
			return board.Pos{}, fmt.Errorf("%w: start (%d,%d) on a size-%d board",
				board.ErrBlockedCell, p.Row, p.Col, g.Size)
		}
		return p, nil
	}
	return g.RandomInterior(s.rng), nil
}

// makeContext derives the search context from the configured timeout.
func (s *Solver) makeContext() (context.Context, context.CancelFunc) {
	if s.options.Timeout > 0 {
		return context.WithTimeout(context.Background(), s.options.Timeout)
	}
	return context.WithCancel(context.Background())
}

// solve implements Warnsdorff-ordered backtracking. count is the 1-based
// index of the move about to be placed; the search succeeds once it passes
// the number of usable cells.
func (s *Solver) solve(ctx context.Context, row, col, count int) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}

	total := s.Board.Total()
	if count > total {
		return true
	}
	s.stats.Expanded++

	cands := s.neighbors(row, col)
	if len(cands) == 0 && count != total {
		return false
	}

	// Fewest onward options first; the stable sort keeps equal-degree
	// candidates in move-table order.
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].degree < cands[j].degree
	})

	for _, cand := range cands {
		s.Board.VisitForce(cand.pos.Row, cand.pos.Col, count)
		if !s.orphaned(count, cand.pos.Row, cand.pos.Col) &&
			s.solve(ctx, cand.pos.Row, cand.pos.Col, count+1) {
			return true
		}
		s.Board.Clear(cand.pos.Row, cand.pos.Col)
		s.stats.Backtracks++
	}

	return false
}

// neighbors enumerates the unvisited cells one knight move from (row, col),
// each with its onward-degree. The blocked margin keeps every probe from a
// usable cell inside the grid, so the Unvisited check alone filters margin
// and out-of-range targets.
func (s *Solver) neighbors(row, col int) []candidate {
	cands := make([]candidate, 0, len(moves))
	for _, m := range moves {
		r, c := row+m.Row, col+m.Col
		if s.Board.At(r, c) == board.Unvisited {
			cands = append(cands, candidate{
				pos:    board.Pos{Row: r, Col: c},
				degree: s.degree(r, c),
			})
		}
	}
	return cands
}

// degree counts the unvisited cells one knight move from (row, col).
// Pure read of the current board state.
func (s *Solver) degree(row, col int) int {
	n := 0
	for _, m := range moves {
		if s.Board.At(row+m.Row, col+m.Col) == board.Unvisited {
			n++
		}
	}
	return n
}

// orphaned reports whether placing move count at (row, col) stranded one of
// the cell's neighbors with no onward moves. A zero-degree cell can never be
// reached later, so the placement is rejected before recursing. The check is
// skipped within one move of completion, where a zero-degree neighbor is the
// legitimate final cell.
func (s *Solver) orphaned(count, row, col int) bool {
	if count >= s.Board.Total()-1 {
		return false
	}
	for _, cand := range s.neighbors(row, col) {
		if cand.degree == 0 {
			s.stats.Pruned++
			return true
		}
	}
	return false
}
