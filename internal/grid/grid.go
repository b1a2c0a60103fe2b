package grid

import (
	"fmt"

	"github.com/mvikstrom/chromalife/internal/cell"
)

// Grid is a row-major 2D array of colored cells with configurable maximum
// dimensions. Neighbor queries wrap toroidally; direct access does not.
type Grid struct {
	w, h       int
	maxW, maxH int
	cells      []cell.State
}

// New allocates an all-dead grid. Dimensions must be positive and within the
// configured maxima.
func New(w, h, maxW, maxH int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, w, h)
	}
	if w > maxW || h > maxH {
		return nil, fmt.Errorf("%w: %dx%d exceeds max %dx%d", ErrBadDimensions, w, h, maxW, maxH)
	}
	return &Grid{w: w, h: h, maxW: maxW, maxH: maxH, cells: make([]cell.State, w*h)}, nil
}

// FromRows builds a grid from a row-major pattern. Every row must have the
// same length. Maxima default to the pattern dimensions.
func FromRows(rows [][]cell.State) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty pattern", ErrBadDimensions)
	}
	w, h := len(rows[0]), len(rows)
	g, err := New(w, h, w, h)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedPattern, y, len(row), w)
		}
		for x, c := range row {
			if !c.Valid() {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidColor, uint8(c), x, y)
			}
			g.cells[y*w+x] = c
		}
	}
	return g, nil
}

func (g *Grid) Width() int     { return g.w }
func (g *Grid) Height() int    { return g.h }
func (g *Grid) MaxWidth() int  { return g.maxW }
func (g *Grid) MaxHeight() int { return g.maxH }

// Cells exposes the backing slice in row-major order. Callers must treat it
// as invalidated after Expand reports growth.
func (g *Grid) Cells() []cell.State { return g.cells }

func (g *Grid) index(x, y int) int { return y*g.w + x }

func (g *Grid) inRange(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the cell at (x, y) with no wraparound.
func (g *Grid) At(x, y int) (cell.State, error) {
	if !g.inRange(x, y) {
		return cell.Dead, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, x, y, g.w, g.h)
	}
	return g.cells[g.index(x, y)], nil
}

// Set writes the cell at (x, y) with no wraparound. Writing outside the grid
// is a contract violation; callers must expand first.
func (g *Grid) Set(x, y int, c cell.State) error {
	if !g.inRange(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, x, y, g.w, g.h)
	}
	if !c.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidColor, uint8(c))
	}
	g.cells[g.index(x, y)] = c
	return nil
}

// NeighborTally counts the living Moore neighbors of (x, y) by color,
// wrapping coordinates toroidally.
func (g *Grid) NeighborTally(x, y int) cell.Tally {
	var t cell.Tally
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + g.w) % g.w
			ny := (y + dy + g.h) % g.h
			if c := g.cells[ny*g.w+nx]; c.Alive() {
				t[c]++
			}
		}
	}
	return t
}

// Clear resets every cell to dead without changing dimensions.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = cell.Dead
	}
}

// Population counts living cells per color across the whole grid.
func (g *Grid) Population() cell.Tally {
	var t cell.Tally
	for _, c := range g.cells {
		if c.Alive() {
			t[c]++
		}
	}
	return t
}

// Rows returns a deep row-major copy of the grid contents.
func (g *Grid) Rows() [][]cell.State {
	rows := make([][]cell.State, g.h)
	for y := 0; y < g.h; y++ {
		rows[y] = make([]cell.State, g.w)
		copy(rows[y], g.cells[y*g.w:(y+1)*g.w])
	}
	return rows
}

// SetMaxSize updates the configured maxima. Values below the current
// dimensions are clamped so the size invariant holds.
func (g *Grid) SetMaxSize(maxW, maxH int) {
	if maxW < g.w {
		maxW = g.w
	}
	if maxH < g.h {
		maxH = g.h
	}
	g.maxW, g.maxH = maxW, maxH
}

// Swap exchanges the backing slice with next, which must hold exactly
// width*height cells, and returns the previous slice for reuse.
func (g *Grid) Swap(next []cell.State) []cell.State {
	old := g.cells
	g.cells = next
	return old
}
