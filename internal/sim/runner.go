// Package sim drives the engine for batch runs: a fixed number of
// generations under a context, with observers sampling the grid after every
// step. The engine itself never blocks or sleeps; cadence belongs to the
// caller.
package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/mvikstrom/chromalife/internal/engine"
	"github.com/mvikstrom/chromalife/internal/grid"
)

// Observer is notified after every generation, including generation zero
// before the first step.
type Observer interface {
	OnGeneration(gen int, g *grid.Grid)
}

type Result struct {
	Generations int
	Elapsed     time.Duration
}

type Runner struct {
	eng       *engine.Engine
	observers []Observer
}

func NewRunner(eng *engine.Engine) *Runner {
	return &Runner{eng: eng}
}

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run advances the engine by the requested number of generations. It stops
// early when the context is canceled, returning the context error alongside
// the progress made so far.
func (r *Runner) Run(ctx context.Context, generations int) (*Result, error) {
	if generations <= 0 {
		return nil, fmt.Errorf("generations must be positive, got %d", generations)
	}

	start := time.Now()
	result := &Result{}

	r.notify(0)

	for i := 1; i <= generations; i++ {
		select {
		case <-ctx.Done():
			result.Elapsed = time.Since(start)
			return result, ctx.Err()
		default:
		}

		r.eng.Step()
		result.Generations++
		r.notify(i)
	}

	result.Elapsed = time.Since(start)
	return result, nil
}

func (r *Runner) notify(gen int) {
	for _, o := range r.observers {
		o.OnGeneration(gen, r.eng.Grid())
	}
}
