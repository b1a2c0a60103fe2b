package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/mvikstrom/chromalife/internal/cell"
	"github.com/mvikstrom/chromalife/internal/engine"
	"github.com/mvikstrom/chromalife/internal/grid"
)

type countingObserver struct {
	gens []int
}

func (o *countingObserver) OnGeneration(gen int, g *grid.Grid) {
	o.gens = append(o.gens, gen)
}

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng, err := engine.NewSeeded(20, 20, 100, 100, 1)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	// 2x2 block keeps the population stable across steps.
	for _, p := range [][2]int{{9, 9}, {10, 9}, {9, 10}, {10, 10}} {
		if err := eng.PaintCell(p[0], p[1], cell.Red); err != nil {
			t.Fatalf("paint: %v", err)
		}
	}
	return eng
}

func TestRunnerObservesEveryGeneration(t *testing.T) {
	eng := newEngine(t)
	obs := &countingObserver{}

	r := NewRunner(eng)
	r.AddObserver(obs)

	result, err := r.Run(context.Background(), 5)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if result.Generations != 5 {
		t.Errorf("generations = %d, want 5", result.Generations)
	}
	// Generation zero plus one notification per step.
	if len(obs.gens) != 6 {
		t.Fatalf("expected 6 notifications, got %d", len(obs.gens))
	}
	for i, gen := range obs.gens {
		if gen != i {
			t.Errorf("notification %d carries generation %d", i, gen)
		}
	}

	if got := eng.Grid().Population().Total(); got != 4 {
		t.Errorf("block should survive the run, got %d live cells", got)
	}
}

func TestRunnerInvalidGenerations(t *testing.T) {
	r := NewRunner(newEngine(t))

	for _, n := range []int{0, -3} {
		if _, err := r.Run(context.Background(), n); err == nil {
			t.Errorf("expected error for %d generations", n)
		}
	}
}

func TestRunnerContextCancel(t *testing.T) {
	eng := newEngine(t)
	r := NewRunner(eng)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := r.Run(ctx, 100)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result == nil {
		t.Fatal("expected partial result")
	}
	if result.Generations != 0 {
		t.Errorf("expected no generations on pre-canceled context, got %d", result.Generations)
	}
}
