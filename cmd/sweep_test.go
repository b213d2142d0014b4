package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepCommand_SmallInterior(t *testing.T) {
	// Every start in a 2×2 interior fails, deterministically and fast.
	out, err := execute(t, "sweep", "--size", "6", "--workers", "2", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "- - \n- - \n")
	assert.Contains(t, out, "0/4 starts solved")
}

func TestIntSqrt(t *testing.T) {
	assert.Equal(t, 1, intSqrt(1))
	assert.Equal(t, 2, intSqrt(4))
	assert.Equal(t, 8, intSqrt(64))
}
