package census

import (
	"testing"

	"github.com/mvikstrom/chromalife/internal/cell"
	"github.com/mvikstrom/chromalife/internal/grid"
)

func buildGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(8, 8, 8, 8)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	g.Set(0, 0, cell.Red)
	g.Set(1, 0, cell.Red)
	g.Set(2, 0, cell.Blue)
	g.Set(3, 0, cell.Yellow)
	return g
}

func TestRecorder(t *testing.T) {
	g := buildGrid(t)
	r := NewRecorder()

	r.OnGeneration(0, g)
	g.Set(4, 4, cell.Green)
	r.OnGeneration(1, g)

	if r.Len() != 2 {
		t.Fatalf("expected 2 snapshots, got %d", r.Len())
	}

	first := r.History()[0]
	if first.Generation != 0 || first.Total() != 4 {
		t.Errorf("first snapshot = gen %d total %d", first.Generation, first.Total())
	}
	if first.Counts[cell.Red] != 2 || first.Counts[cell.Blue] != 1 {
		t.Errorf("unexpected counts %v", first.Counts)
	}

	last := r.Last()
	if last.Generation != 1 || last.Total() != 5 {
		t.Errorf("last snapshot = gen %d total %d", last.Generation, last.Total())
	}
	if last.Counts[cell.Green] != 1 {
		t.Errorf("green not counted: %v", last.Counts)
	}
}

func TestRecorderSeries(t *testing.T) {
	g := buildGrid(t)
	r := NewRecorder()

	r.OnGeneration(0, g)
	g.Clear()
	r.OnGeneration(1, g)

	total := r.TotalSeries()
	if len(total) != 2 || total[0] != 4 || total[1] != 0 {
		t.Errorf("total series = %v", total)
	}

	red := r.ColorSeries(cell.Red)
	if red[0] != 2 || red[1] != 0 {
		t.Errorf("red series = %v", red)
	}
}

func TestRecorderEmptyAndReset(t *testing.T) {
	r := NewRecorder()

	if last := r.Last(); last.Total() != 0 || last.Generation != 0 {
		t.Errorf("empty recorder Last() = %+v", last)
	}

	r.OnGeneration(0, buildGrid(t))
	r.Reset()
	if r.Len() != 0 {
		t.Errorf("expected empty history after reset, got %d", r.Len())
	}
}
