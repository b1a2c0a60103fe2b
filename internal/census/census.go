// Package census tracks living-cell populations per color across
// generations.
package census

import (
	"github.com/mvikstrom/chromalife/internal/cell"
	"github.com/mvikstrom/chromalife/internal/grid"
)

// Snapshot is the per-color population at one generation.
type Snapshot struct {
	Generation int
	Counts     cell.Tally
}

func (s Snapshot) Total() int { return s.Counts.Total() }

// Recorder accumulates one Snapshot per observed generation. It implements
// the runner's Observer interface.
type Recorder struct {
	history []Snapshot
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) OnGeneration(gen int, g *grid.Grid) {
	r.history = append(r.history, Snapshot{Generation: gen, Counts: g.Population()})
}

func (r *Recorder) Len() int            { return len(r.history) }
func (r *Recorder) History() []Snapshot { return r.history }

// Last returns the most recent snapshot, or a zero Snapshot when empty.
func (r *Recorder) Last() Snapshot {
	if len(r.history) == 0 {
		return Snapshot{}
	}
	return r.history[len(r.history)-1]
}

// TotalSeries returns total population per generation, for charting and
// period analysis.
func (r *Recorder) TotalSeries() []float64 {
	out := make([]float64, len(r.history))
	for i, s := range r.history {
		out[i] = float64(s.Total())
	}
	return out
}

// ColorSeries returns the population of one color per generation.
func (r *Recorder) ColorSeries(c cell.State) []float64 {
	out := make([]float64, len(r.history))
	for i, s := range r.history {
		out[i] = float64(s.Counts[c])
	}
	return out
}

func (r *Recorder) Reset() { r.history = r.history[:0] }
