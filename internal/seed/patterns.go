package seed

import (
	"fmt"

	"github.com/mvikstrom/chromalife/internal/cell"
)

// Glider returns the classic 3x3 glider in the given color.
func Glider(c cell.State) [][]cell.State {
	return stamp(c, [][]int{
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	})
}

// Blinker returns the period-2 oscillator: a horizontal row of three cells.
func Blinker(c cell.State) [][]cell.State {
	return stamp(c, [][]int{
		{1, 1, 1},
	})
}

// Walker returns the experimental humanoid figure. It does not actually
// walk; it is kept for the emergent behavior it kicks off.
func Walker(c cell.State) [][]cell.State {
	return stamp(c, [][]int{
		{0, 1, 0, 0, 0},
		{1, 1, 1, 0, 0},
		{0, 1, 0, 0, 0},
		{1, 0, 1, 0, 0},
		{1, 0, 0, 1, 0},
	})
}

// Figure looks up a named canned figure.
func Figure(name string, c cell.State) ([][]cell.State, error) {
	switch name {
	case "glider":
		return Glider(c), nil
	case "blinker":
		return Blinker(c), nil
	case "walker":
		return Walker(c), nil
	}
	return nil, fmt.Errorf("unknown figure: %s", name)
}

// OnCanvas centers a figure on an otherwise-dead w x h grid. Parts of the
// figure that fall outside the canvas are dropped.
func OnCanvas(w, h int, figure [][]cell.State) [][]cell.State {
	rows := newRows(w, h)
	if len(figure) == 0 {
		return rows
	}
	offY := (h - len(figure)) / 2
	offX := (w - len(figure[0])) / 2
	for y, frow := range figure {
		for x, c := range frow {
			ty, tx := y+offY, x+offX
			if ty < 0 || ty >= h || tx < 0 || tx >= w {
				continue
			}
			rows[ty][tx] = c
		}
	}
	return rows
}

func stamp(c cell.State, bits [][]int) [][]cell.State {
	rows := make([][]cell.State, len(bits))
	for y, brow := range bits {
		rows[y] = make([]cell.State, len(brow))
		for x, b := range brow {
			if b != 0 {
				rows[y][x] = c
			}
		}
	}
	return rows
}
