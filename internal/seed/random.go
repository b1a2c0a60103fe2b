package seed

import (
	"math/rand/v2"

	"github.com/mvikstrom/chromalife/internal/cell"
)

// DefaultDensity is the fill fraction for random colorful seeds.
const DefaultDensity = 0.3

// RandomColors fills a w x h grid where each cell is alive with the given
// probability, taking a uniformly random color.
func RandomColors(w, h int, density float64, rng *rand.Rand) [][]cell.State {
	rows := newRows(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Float64() < density {
				rows[y][x] = cell.Colors[rng.IntN(len(cell.Colors))]
			}
		}
	}
	return rows
}
