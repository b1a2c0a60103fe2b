package grid

import "github.com/mvikstrom/chromalife/internal/cell"

// DefaultMargin is the padding kept around the tight bounding box of living
// cells so activity can spread between refreshes.
const DefaultMargin = 5

// Bounds is an axis-aligned rectangle over grid coordinates. MaxX and MaxY
// are exclusive.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
}

func (b Bounds) Width() int  { return b.MaxX - b.MinX }
func (b Bounds) Height() int { return b.MaxY - b.MinY }

func (b Bounds) Empty() bool { return b.Width() <= 0 || b.Height() <= 0 }

func (b Bounds) Contains(x, y int) bool {
	return x >= b.MinX && x < b.MaxX && y >= b.MinY && y < b.MaxY
}

// Tracker maintains the active region of a grid: a margin-padded bounding
// rectangle of all living cells. Scans restricted to this rectangle skip the
// dead remainder of the grid.
//
// The rectangle is a bounded interval while neighbor lookups wrap toroidally,
// so a living cell hugging one grid edge can have a wrapped neighbor near the
// opposite edge that falls outside the rectangle and is never scanned. This
// mirrors the behavior the engine is modeled on; use the engine's full-scan
// mode when edge wraparound must be exact.
type Tracker struct {
	b      Bounds
	margin int
}

func NewTracker() *Tracker {
	return &Tracker{margin: DefaultMargin}
}

// Bounds returns the current active rectangle.
func (t *Tracker) Bounds() Bounds { return t.b }

// Refresh recomputes the rectangle from the grid: the tight bounding box of
// living cells padded by the margin and clamped to the grid extents. An
// all-dead grid collapses to a 2x2 box centered on the grid.
func (t *Tracker) Refresh(g *Grid) {
	w, h := g.Width(), g.Height()
	cells := g.Cells()

	minX, minY := w, h
	maxX, maxY := -1, -1
	for y := 0; y < h; y++ {
		row := cells[y*w : (y+1)*w]
		for x, c := range row {
			if c == cell.Dead {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}

	if maxX < 0 {
		cx, cy := w/2, h/2
		t.b = Bounds{
			MinX: max(0, cx-1),
			MaxX: min(w, cx+1),
			MinY: max(0, cy-1),
			MaxY: min(h, cy+1),
		}
		return
	}

	t.b = Bounds{
		MinX: max(0, minX-t.margin),
		MaxX: min(w, maxX+t.margin+1),
		MinY: max(0, minY-t.margin),
		MaxY: min(h, maxY+t.margin+1),
	}
}

// Shift translates the rectangle, keeping it valid after a centered grid
// expansion without a rescan.
func (t *Tracker) Shift(dx, dy int) {
	t.b.MinX += dx
	t.b.MaxX += dx
	t.b.MinY += dy
	t.b.MaxY += dy
}
