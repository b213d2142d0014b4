package board

import (
	"fmt"
	"math/rand"
)

// Margin is the width of the blocked border surrounding the playable
// interior. Two cells on every side means no knight offset from an interior
// cell can escape the underlying grid, so the Blocked sentinel doubles as an
// implicit bounds guard.
const Margin = 2

// DefaultSize is the grid side length used when no size is configured.
const DefaultSize = 12

// Geometry describes the fixed shape of a board: the full grid side length
// and the playable interior left after removing the margin.
//
// Geometry is immutable after construction — it is safe to share the same
// pointer across Board clones.
type Geometry struct {
	// Size is the full grid side length, margin included.
	Size int

	// Lo and Hi bound the playable interior: a cell (r, c) is usable when
	// both coordinates are in [Lo, Hi].
	Lo, Hi int

	// Total is the number of usable cells, (Size - 2*Margin)².
	Total int
}

// NewGeometry builds and validates the geometry for a grid of the given side
// length. The interior must contain at least one cell.
func NewGeometry(size int) (*Geometry, error) {
	interior := size - 2*Margin
	if interior < 1 {
		return nil, fmt.Errorf("%w: size %d leaves no interior inside a %d-cell margin",
			ErrBoardTooSmall, size, Margin)
	}
	return &Geometry{
		Size:  size,
		Lo:    Margin,
		Hi:    size - Margin - 1,
		Total: interior * interior,
	}, nil
}

// Contains reports whether (r, c) lies inside the full grid.
func (g *Geometry) Contains(r, c int) bool {
	return r >= 0 && r < g.Size && c >= 0 && c < g.Size
}

// Usable reports whether (r, c) lies inside the playable interior.
func (g *Geometry) Usable(r, c int) bool {
	return r >= g.Lo && r <= g.Hi && c >= g.Lo && c <= g.Hi
}

// RandomInterior returns a uniformly random usable position.
func (g *Geometry) RandomInterior(rng *rand.Rand) Pos {
	side := g.Hi - g.Lo + 1
	return Pos{
		Row: g.Lo + rng.Intn(side),
		Col: g.Lo + rng.Intn(side),
	}
}

// InteriorCells returns every usable position in row-major order.
func (g *Geometry) InteriorCells() []Pos {
	cells := make([]Pos, 0, g.Total)
	for r := g.Lo; r <= g.Hi; r++ {
		for c := g.Lo; c <= g.Hi; c++ {
			cells = append(cells, Pos{Row: r, Col: c})
		}
	}
	return cells
}
