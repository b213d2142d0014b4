package board

import (
	"fmt"
	"strings"
)

// Special cell values
const (
	// Unvisited marks a usable cell the knight has not landed on yet.
	Unvisited = 0

	// Blocked marks margin cells. The value is negative so it can never be
	// confused with Unvisited or with a positive move index.
	Blocked = -1
)

// Pos identifies a cell by row and column.
type Pos struct {
	Row, Col int
}

// Board represents a square knight's tour grid. Margin cells hold Blocked,
// interior cells hold Unvisited or the 1-based move index of the knight's
// landing on them.
type Board struct {
	cells []int

	// geometry describes the grid shape and interior bounds.
	// It is set at construction time and never mutated; clones share the pointer.
	geometry *Geometry

	// visited tracks placed move indices for quick completion checks.
	// Once initialized, visited should only be touched inside Visit,
	// VisitForce and Clear.
	visited int
}

// New creates a board of the given side length with its margin pre-marked
// Blocked and every interior cell Unvisited.
func New(size int) (*Board, error) {
	g, err := NewGeometry(size)
	if err != nil {
		return nil, err
	}
	b := &Board{
		cells:    make([]int, size*size),
		geometry: g,
	}
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if !g.Usable(r, c) {
				b.cells[r*size+c] = Blocked
			}
		}
	}
	return b, nil
}

// Clone creates an independent copy of the Board.
// The geometry pointer is shared — Geometry is immutable after construction.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := *b
	clone.cells = make([]int, len(b.cells))
	copy(clone.cells, b.cells)
	return &clone
}

// Geometry returns the board's Geometry.
func (b *Board) Geometry() *Geometry {
	return b.geometry
}

// Size returns the full grid side length.
func (b *Board) Size() int {
	return b.geometry.Size
}

// Total returns the number of usable cells.
func (b *Board) Total() int {
	return b.geometry.Total
}

// At returns the value at (r, c). Out-of-range coordinates read as Blocked,
// which gives knight-offset probes the same semantics the margin sentinel
// provides inside the grid. With Margin ≥ 2 no offset from a usable cell can
// land out of range anyway; the check covers arbitrary callers.
func (b *Board) At(r, c int) int {
	if !b.geometry.Contains(r, c) {
		return Blocked
	}
	return b.cells[r*b.geometry.Size+c]
}

// Visit places move index step at (r, c).
// Returns an error if the cell is not usable, already visited, or step is
// not a valid move index.
func (b *Board) Visit(r, c, step int) error {
	if !b.geometry.Usable(r, c) {
		return fmt.Errorf("%w: (%d,%d) is not a usable cell on a size-%d board",
			ErrBlockedCell, r, c, b.geometry.Size)
	}
	if step < 1 || step > b.geometry.Total {
		return fmt.Errorf("%w: step %d must be in range [1, %d]",
			ErrInvalidStep, step, b.geometry.Total)
	}
	if b.cells[r*b.geometry.Size+c] != Unvisited {
		return fmt.Errorf("%w: (%d,%d) already holds %d",
			ErrCellVisited, r, c, b.cells[r*b.geometry.Size+c])
	}
	b.VisitForce(r, c, step)
	return nil
}

// VisitForce places a move index without validation checks.
// Use only when certain the placement is valid.
func (b *Board) VisitForce(r, c, step int) {
	b.cells[r*b.geometry.Size+c] = step
	b.visited++
}

// Clear resets (r, c) to Unvisited.
// No harm is done calling Clear on an already unvisited cell.
func (b *Board) Clear(r, c int) {
	if !b.geometry.Contains(r, c) {
		return
	}
	i := r*b.geometry.Size + c
	if b.cells[i] == Blocked || b.cells[i] == Unvisited {
		return
	}
	b.cells[i] = Unvisited
	b.visited--
}

// VisitedCount returns the number of cells holding a move index.
func (b *Board) VisitedCount() int {
	return b.visited
}

// Solved reports whether every usable cell holds a move index.
func (b *Board) Solved() bool {
	return b.visited == b.geometry.Total
}

// Tour returns the visited positions ordered by move index. ok is false when
// the board does not hold a complete, gap-free tour.
func (b *Board) Tour() (steps []Pos, ok bool) {
	if !b.Solved() {
		return nil, false
	}
	steps = make([]Pos, b.geometry.Total)
	seen := make([]bool, b.geometry.Total)
	for r := b.geometry.Lo; r <= b.geometry.Hi; r++ {
		for c := b.geometry.Lo; c <= b.geometry.Hi; c++ {
			step := b.cells[r*b.geometry.Size+c]
			if step < 1 || step > b.geometry.Total || seen[step-1] {
				return nil, false
			}
			seen[step-1] = true
			steps[step-1] = Pos{Row: r, Col: c}
		}
	}
	return steps, true
}

// String returns a compact single-line form, rows separated by '/'.
// Blocked cells are rendered as '#', unvisited ones as '.'.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.geometry.Size; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := 0; c < b.geometry.Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			switch v := b.cells[r*b.geometry.Size+c]; v {
			case Blocked:
				sb.WriteByte('#')
			case Unvisited:
				sb.WriteByte('.')
			default:
				fmt.Fprintf(&sb, "%d", v)
			}
		}
	}
	return sb.String()
}

// Format returns the board row by row, each visited cell right-aligned in a
// 2-character field followed by a space. Blocked cells are skipped, so the
// fully blocked margin rows come out as blank lines.
func (b *Board) Format() string {
	var sb strings.Builder
	for r := 0; r < b.geometry.Size; r++ {
		for c := 0; c < b.geometry.Size; c++ {
			v := b.cells[r*b.geometry.Size+c]
			if v == Blocked {
				continue
			}
			fmt.Fprintf(&sb, "%2d ", v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
