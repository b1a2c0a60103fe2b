// Package engine drives the colored Game of Life: it owns the grid, the
// active-bounds tracker, the chaos configuration, and the random source, and
// advances the automaton one synchronous generation at a time.
//
// An Engine is not safe for concurrent use. Callers serialize Step, SetGrid,
// Expand, PaintCell, and Clear, typically from a single event loop.
package engine

import (
	"math/rand/v2"
	"time"

	"github.com/mvikstrom/chromalife/internal/cell"
	"github.com/mvikstrom/chromalife/internal/grid"
	"github.com/mvikstrom/chromalife/internal/rules"
)

// ScanMode selects how much of the grid a generation step visits.
type ScanMode int

const (
	// ScanActive restricts the step to the tracked active rectangle. Cells
	// outside it are assumed dead and left dead, which can miss toroidal
	// neighbors wrapping across grid edges.
	ScanActive ScanMode = iota

	// ScanFull visits every cell, trading speed for exact wraparound.
	ScanFull
)

type Engine struct {
	grid    *grid.Grid
	tracker *grid.Tracker
	chaos   rules.ChaosConfig
	rng     *rand.Rand
	scan    ScanMode
	scratch []cell.State
}

// New creates an engine with an all-dead w x h grid. A nil rng gets a
// time-seeded source; inject a seeded one for deterministic runs.
func New(w, h, maxW, maxH int, rng *rand.Rand) (*Engine, error) {
	g, err := grid.New(w, h, maxW, maxH)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	e := &Engine{
		grid:    g,
		tracker: grid.NewTracker(),
		rng:     rng,
		scratch: make([]cell.State, w*h),
	}
	e.tracker.Refresh(g)
	return e, nil
}

// NewSeeded creates an engine with a deterministic random source.
func NewSeeded(w, h, maxW, maxH int, seed int64) (*Engine, error) {
	return New(w, h, maxW, maxH, rand.New(rand.NewPCG(uint64(seed), 0)))
}

// Grid exposes the current grid. Treat it as read-only; use PaintCell and
// EraseCell for writes so the engine's invariants hold.
func (e *Engine) Grid() *grid.Grid { return e.grid }

// ActiveBounds returns the rectangle the next step would scan after refresh.
func (e *Engine) ActiveBounds() grid.Bounds { return e.tracker.Bounds() }

// Chaos returns the current chaos configuration.
func (e *Engine) Chaos() rules.ChaosConfig { return e.chaos }

// SetScanMode switches between active-rectangle and full-grid stepping.
func (e *Engine) SetScanMode(m ScanMode) { e.scan = m }

// SetChaosMode configures the probabilistic rule mixing. Probabilities
// outside [0,1] are rejected and leave the previous configuration in place.
func (e *Engine) SetChaosMode(enabled bool, customProb, randomProb float64) error {
	return e.SetChaos(rules.ChaosConfig{
		Enabled:           enabled,
		CustomRuleProb:    customProb,
		RandomOutcomeProb: randomProb,
	})
}

// SetChaos installs a chaos configuration after validating it.
func (e *Engine) SetChaos(c rules.ChaosConfig) error {
	if err := c.Validate(); err != nil {
		return err
	}
	e.chaos = c
	return nil
}

// Step advances one generation. The active bounds are refreshed from the
// current grid, then every cell in the scan rectangle transitions according
// to the chaos-selected rule variant. Cells outside the rectangle stay dead.
func (e *Engine) Step() {
	e.tracker.Refresh(e.grid)

	w, h := e.grid.Width(), e.grid.Height()
	b := e.tracker.Bounds()
	if e.scan == ScanFull {
		b = grid.Bounds{MinX: 0, MaxX: w, MinY: 0, MaxY: h}
	}

	next := e.scratch
	if len(next) != w*h {
		next = make([]cell.State, w*h)
	}
	for i := range next {
		next[i] = cell.Dead
	}

	cells := e.grid.Cells()
	for y := b.MinY; y < b.MaxY; y++ {
		for x := b.MinX; x < b.MaxX; x++ {
			cur := cells[y*w+x]
			tally := e.grid.NeighborTally(x, y)
			v := rules.PickVariant(e.chaos, e.rng)
			next[y*w+x] = rules.Apply(v, cur, tally, e.rng)
		}
	}

	e.scratch = e.grid.Swap(next)
}

// SetGrid replaces the grid contents and dimensions with a row-major
// pattern. Maxima grow if the pattern exceeds them; active bounds are
// recomputed.
func (e *Engine) SetGrid(rows [][]cell.State) error {
	g, err := grid.FromRows(rows)
	if err != nil {
		return err
	}
	maxW := max(e.grid.MaxWidth(), g.Width())
	maxH := max(e.grid.MaxHeight(), g.Height())
	g.SetMaxSize(maxW, maxH)

	e.grid = g
	e.scratch = make([]cell.State, g.Width()*g.Height())
	e.tracker.Refresh(e.grid)
	return nil
}

// PaintCell writes a single cell with no wraparound. Out-of-range writes are
// contract violations; callers expand first.
func (e *Engine) PaintCell(x, y int, c cell.State) error {
	return e.grid.Set(x, y, c)
}

// EraseCell kills a single cell.
func (e *Engine) EraseCell(x, y int) error {
	return e.grid.Set(x, y, cell.Dead)
}

// Expand grows the grid toward the target size, clamped to the maxima, with
// the old contents centered. The active bounds shift with the content so no
// rescan is needed. Reports whether a resize occurred.
func (e *Engine) Expand(targetW, targetH int) bool {
	dx, dy, grew := e.grid.Expand(targetW, targetH)
	if !grew {
		return false
	}
	e.tracker.Shift(dx, dy)
	e.scratch = make([]cell.State, e.grid.Width()*e.grid.Height())
	return true
}

// SetMaxSize updates the maximum grid dimensions, clamped to at least the
// current size.
func (e *Engine) SetMaxSize(maxW, maxH int) {
	e.grid.SetMaxSize(maxW, maxH)
}

// Clear kills every cell and collapses the active bounds to the centered
// default. Dimensions are unchanged.
func (e *Engine) Clear() {
	e.grid.Clear()
	e.tracker.Refresh(e.grid)
}
