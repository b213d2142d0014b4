package solver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rybkr/knightstour/internal/board"
)

// knightMove reports whether a and b differ by a legal knight offset.
func knightMove(a, b board.Pos) bool {
	for _, m := range moves {
		if a.Row+m.Row == b.Row && a.Col+m.Col == b.Col {
			return true
		}
	}
	return false
}

func TestSolve_EndToEnd(t *testing.T) {
	b, err := board.New(12)
	require.NoError(t, err)
	require.Equal(t, 64, b.Total())

	start := board.Pos{Row: 5, Col: 5}
	s := New(b, &Options{Start: &start})

	solved, err := s.Solve()
	require.NoError(t, err)
	require.True(t, solved.IsValid())

	steps, ok := solved.Tour()
	require.True(t, ok, "solved board must hold the full permutation 1..64")
	require.Len(t, steps, 64)
	assert.Equal(t, start, steps[0])
	for i := 1; i < len(steps); i++ {
		assert.True(t, knightMove(steps[i-1], steps[i]),
			"steps %d -> %d: %+v -> %+v is not a knight move", i, i+1, steps[i-1], steps[i])
	}

	assert.Equal(t, board.Unvisited, b.At(5, 5), "input board must stay untouched")
}

func TestSolve_SmallBoardFails(t *testing.T) {
	// A 6-side board leaves a 2×2 interior; a knight cannot move inside it.
	b, err := board.New(6)
	require.NoError(t, err)
	require.Equal(t, 4, b.Total())

	start := board.Pos{Row: 2, Col: 2}
	s := New(b, &Options{Start: &start})

	_, err = s.Solve()
	require.ErrorIs(t, err, ErrNoTour)

	// Unwind guarantee: only the start cell stays marked.
	assert.Equal(t, 1, s.Board.VisitedCount())
	assert.Equal(t, 1, s.Board.At(2, 2))
}

func TestSolve_RandomStartIsInterior(t *testing.T) {
	b, err := board.New(12)
	require.NoError(t, err)

	s := New(b, &Options{Seed: 7})
	solved, err := s.Solve()
	require.NoError(t, err)

	steps, ok := solved.Tour()
	require.True(t, ok)
	assert.True(t, b.Geometry().Usable(steps[0].Row, steps[0].Col))
}

func TestSolve_Deterministic(t *testing.T) {
	run := func() string {
		b, err := board.New(12)
		require.NoError(t, err)
		solved, err := New(b, &Options{Seed: 42}).Solve()
		require.NoError(t, err)
		return solved.Format()
	}
	assert.Equal(t, run(), run(), "same seed must reproduce the board bit for bit")
}

func TestSolve_InvalidStart(t *testing.T) {
	b, err := board.New(12)
	require.NoError(t, err)

	start := board.Pos{Row: 0, Col: 0}
	_, err = New(b, &Options{Start: &start}).Solve()
	assert.ErrorIs(t, err, board.ErrBlockedCell)
}

func TestDegree(t *testing.T) {
	b, err := board.New(12)
	require.NoError(t, err)
	s := New(b, nil)

	t.Run("center of empty interior", func(t *testing.T) {
		assert.Equal(t, 8, s.degree(5, 5))
	})

	t.Run("interior corner", func(t *testing.T) {
		// From (2,2) only (3,4) and (4,3) land inside the interior.
		assert.Equal(t, 2, s.degree(2, 2))
	})

	t.Run("visits reduce the count", func(t *testing.T) {
		s.Board.VisitForce(3, 4, 1)
		assert.Equal(t, 1, s.degree(2, 2))
		s.Board.Clear(3, 4)
		assert.Equal(t, 2, s.degree(2, 2))
	})
}

func TestNeighbors_Order(t *testing.T) {
	b, err := board.New(12)
	require.NoError(t, err)
	s := New(b, nil)

	// From the interior corner the move table yields (3,4) before (4,3);
	// the enumeration order is the documented tie-break.
	cands := s.neighbors(2, 2)
	require.Len(t, cands, 2)
	assert.Equal(t, board.Pos{Row: 3, Col: 4}, cands[0].pos)
	assert.Equal(t, board.Pos{Row: 4, Col: 3}, cands[1].pos)
	// Hand count: (3,4) reaches (2,6),(4,6),(5,5),(5,3),(4,2),(2,2);
	// (1,5) and (1,3) fall in the margin.
	assert.Equal(t, 6, cands[0].degree)
	assert.Equal(t, 6, cands[1].degree)
}

func TestOrphaned(t *testing.T) {
	b, err := board.New(12)
	require.NoError(t, err)

	// Strand (3,4): visit all of its onward targets. (5,5) is one of them
	// and plays the role of the just-placed cell.
	targets := []board.Pos{
		{Row: 1, Col: 5}, {Row: 2, Col: 6}, {Row: 4, Col: 6}, {Row: 5, Col: 5},
		{Row: 5, Col: 3}, {Row: 4, Col: 2}, {Row: 2, Col: 2}, {Row: 1, Col: 3},
	}
	for i, p := range targets {
		if b.Geometry().Usable(p.Row, p.Col) {
			b.VisitForce(p.Row, p.Col, i+1)
		}
	}

	s := New(b, nil)
	require.Equal(t, 0, s.degree(3, 4), "setup must leave (3,4) with no onward moves")
	require.Equal(t, board.Unvisited, s.Board.At(3, 4))

	t.Run("detected early in the search", func(t *testing.T) {
		before := s.stats.Pruned
		assert.True(t, s.orphaned(2, 5, 5))
		assert.Equal(t, before+1, s.stats.Pruned)
	})

	t.Run("skipped within one move of completion", func(t *testing.T) {
		total := s.Board.Total()
		assert.False(t, s.orphaned(total-1, 5, 5))
		assert.False(t, s.orphaned(total, 5, 5))
	})
}

func TestMakeContext(t *testing.T) {
	b, err := board.New(12)
	require.NoError(t, err)

	t.Run("timeout sets a deadline", func(t *testing.T) {
		s := New(b, &Options{Timeout: time.Second})
		ctx, cancel := s.makeContext()
		defer cancel()
		_, ok := ctx.Deadline()
		assert.True(t, ok)
	})

	t.Run("zero timeout means no deadline", func(t *testing.T) {
		s := New(b, &Options{})
		ctx, cancel := s.makeContext()
		defer cancel()
		_, ok := ctx.Deadline()
		assert.False(t, ok)
	})
}

func TestStats_Counted(t *testing.T) {
	b, err := board.New(12)
	require.NoError(t, err)

	start := board.Pos{Row: 2, Col: 2}
	s := New(b, &Options{Start: &start})
	_, err = s.Solve()
	require.NoError(t, err)

	stats := s.Stats()
	assert.GreaterOrEqual(t, stats.Expanded, int64(b.Total()-1),
		"every placed move expands at least one node")
}
