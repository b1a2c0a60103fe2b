package grid

import (
	"testing"

	"github.com/mvikstrom/chromalife/internal/cell"
)

func TestTrackerEmptyGrid(t *testing.T) {
	g, _ := New(20, 10, 20, 10)
	tr := NewTracker()

	tr.Refresh(g)

	want := Bounds{MinX: 9, MaxX: 11, MinY: 4, MaxY: 6}
	if tr.Bounds() != want {
		t.Errorf("empty-grid bounds = %+v, want %+v", tr.Bounds(), want)
	}
}

func TestTrackerMarginAndClamp(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want Bounds
	}{
		{"interior cell gets full margin", 10, 10, Bounds{5, 16, 5, 16}},
		{"corner cell clamps to grid", 0, 0, Bounds{0, 6, 0, 6}},
		{"far corner clamps high", 29, 29, Bounds{24, 30, 24, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := New(30, 30, 30, 30)
			g.Set(tt.x, tt.y, cell.Red)

			tr := NewTracker()
			tr.Refresh(g)

			if tr.Bounds() != tt.want {
				t.Errorf("bounds = %+v, want %+v", tr.Bounds(), tt.want)
			}
		})
	}
}

func TestTrackerTightBoxSpansAllLiveCells(t *testing.T) {
	g, _ := New(40, 40, 40, 40)
	g.Set(12, 15, cell.Red)
	g.Set(25, 20, cell.Blue)
	g.Set(18, 30, cell.Green)

	tr := NewTracker()
	tr.Refresh(g)

	b := tr.Bounds()
	want := Bounds{MinX: 7, MaxX: 31, MinY: 10, MaxY: 36}
	if b != want {
		t.Errorf("bounds = %+v, want %+v", b, want)
	}
	for _, p := range [][2]int{{12, 15}, {25, 20}, {18, 30}} {
		if !b.Contains(p[0], p[1]) {
			t.Errorf("bounds do not contain live cell (%d,%d)", p[0], p[1])
		}
	}
}

func TestTrackerShift(t *testing.T) {
	g, _ := New(30, 30, 30, 30)
	g.Set(15, 15, cell.Yellow)

	tr := NewTracker()
	tr.Refresh(g)
	before := tr.Bounds()

	tr.Shift(3, -2)

	want := Bounds{before.MinX + 3, before.MaxX + 3, before.MinY - 2, before.MaxY - 2}
	if tr.Bounds() != want {
		t.Errorf("shifted bounds = %+v, want %+v", tr.Bounds(), want)
	}
}

func TestBoundsHelpers(t *testing.T) {
	b := Bounds{MinX: 2, MaxX: 5, MinY: 1, MaxY: 3}
	if b.Width() != 3 || b.Height() != 2 {
		t.Errorf("unexpected size %dx%d", b.Width(), b.Height())
	}
	if b.Empty() {
		t.Error("non-degenerate bounds reported empty")
	}
	if !b.Contains(2, 1) || b.Contains(5, 1) || b.Contains(2, 3) {
		t.Error("Contains must include min edges and exclude max edges")
	}
}
