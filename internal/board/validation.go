package board

import (
	"errors"
	"fmt"
)

var (
	ErrBoardTooSmall = errors.New("board too small for a playable interior")
	ErrBlockedCell   = errors.New("cell is blocked or out of bounds")
	ErrCellVisited   = errors.New("cell already visited")
	ErrInvalidStep   = errors.New("invalid move index")
)

// IsValid reports whether the board satisfies its structural invariants:
// every margin cell Blocked, no Blocked cell in the interior, and no move
// index outside [1, Total] or placed twice.
func (b *Board) IsValid() bool {
	return b.validate() == nil
}

// validate implements IsValid with a descriptive error for tests and debugging.
func (b *Board) validate() error {
	g := b.geometry
	seen := make([]bool, g.Total+1)

	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			v := b.cells[r*g.Size+c]
			if !g.Usable(r, c) {
				if v != Blocked {
					return fmt.Errorf("margin cell (%d,%d) holds %d, want Blocked", r, c, v)
				}
				continue
			}
			switch {
			case v == Blocked:
				return fmt.Errorf("interior cell (%d,%d) is Blocked", r, c)
			case v == Unvisited:
				// fine
			case v < 1 || v > g.Total:
				return fmt.Errorf("interior cell (%d,%d) holds out-of-range index %d", r, c, v)
			case seen[v]:
				return fmt.Errorf("move index %d placed twice", v)
			default:
				seen[v] = true
			}
		}
	}
	return nil
}
