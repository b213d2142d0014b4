package sweep

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/rybkr/knightstour/internal/board"
	"github.com/rybkr/knightstour/internal/solver"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRun(t *testing.T) {
	results, err := Run(context.Background(), 12, &Options{
		Workers: 4,
		Seed:    1,
	})
	require.NoError(t, err)
	require.Len(t, results, 64)

	// Results keep row-major start order regardless of scheduling.
	assert.Equal(t, board.Pos{Row: 2, Col: 2}, results[0].Start)
	assert.Equal(t, board.Pos{Row: 9, Col: 9}, results[63].Start)

	solved := 0
	for _, res := range results {
		if res.Solved() {
			solved++
			require.NotNil(t, res.Board)
			steps, ok := res.Board.Tour()
			require.True(t, ok, "start %+v reported solved without a full tour", res.Start)
			assert.Equal(t, res.Start, steps[0])
		} else {
			assert.Nil(t, res.Board)
			assert.ErrorIs(t, res.Err, solver.ErrNoTour)
		}
	}
	assert.Greater(t, solved, 0, "at least some interior starts must admit a tour")
}

func TestRun_SmallInterior(t *testing.T) {
	// No knight move fits in a 2×2 interior, so every start fails.
	results, err := Run(context.Background(), 6, &Options{Workers: 2, Seed: 1})
	require.NoError(t, err)
	require.Len(t, results, 4)
	for _, res := range results {
		assert.ErrorIs(t, res.Err, solver.ErrNoTour, "start %+v", res.Start)
	}
}

func TestRun_BadSize(t *testing.T) {
	_, err := Run(context.Background(), 3, nil)
	assert.ErrorIs(t, err, board.ErrBoardTooSmall)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Run(ctx, 12, &Options{Workers: 2, Seed: 1})
	require.NoError(t, err)
	for _, res := range results {
		assert.False(t, res.Solved())
	}
}
