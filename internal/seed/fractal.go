// Package seed generates initial patterns for the automaton: escape-time
// fractal grids, random colorful fills, and a few canned figures. Everything
// here is pure; patterns are handed to the engine via SetGrid.
package seed

import (
	"math/cmplx"

	"github.com/mvikstrom/chromalife/internal/cell"
)

// Generator defaults, matching the classic viewports.
const (
	DefaultMaxIter   = 50
	DefaultThreshold = 10

	DefaultMandelbrotXMin = -2.5
	DefaultMandelbrotXMax = 1.0
	DefaultMandelbrotYMin = -1.5
	DefaultMandelbrotYMax = 1.5

	DefaultJuliaCReal = -0.7
	DefaultJuliaCImag = 0.27015
	DefaultJuliaXMin  = -2.0
	DefaultJuliaXMax  = 2.0
	DefaultJuliaYMin  = -2.0
	DefaultJuliaYMax  = 2.0
)

// Mandelbrot renders a w x h binary seed grid from the Mandelbrot iteration
// z <- z^2 + c over the given viewport. A cell is alive when its point
// escapes in fewer than threshold iterations, so the fast-escaping exterior
// fringe is marked rather than the set interior. Alive cells are Red.
func Mandelbrot(w, h int, xMin, xMax, yMin, yMax float64, maxIter, threshold int) [][]cell.State {
	rows := newRows(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := planePoint(x, y, w, h, xMin, xMax, yMin, yMax)
			if escapeTime(0, c, maxIter) < threshold {
				rows[y][x] = cell.Red
			}
		}
	}
	return rows
}

// Julia renders a w x h binary seed grid from the Julia iteration with fixed
// parameter c = cReal + i*cImag; z starts at the mapped pixel point. The same
// fast-escape threshold convention as Mandelbrot applies.
func Julia(w, h int, cReal, cImag, xMin, xMax, yMin, yMax float64, maxIter, threshold int) [][]cell.State {
	c := complex(cReal, cImag)
	rows := newRows(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			z := planePoint(x, y, w, h, xMin, xMax, yMin, yMax)
			if escapeTime(z, c, maxIter) < threshold {
				rows[y][x] = cell.Red
			}
		}
	}
	return rows
}

// planePoint maps pixel (x, y) linearly into the complex viewport.
func planePoint(x, y, w, h int, xMin, xMax, yMin, yMax float64) complex128 {
	re := xMin + (float64(x)/float64(w))*(xMax-xMin)
	im := yMin + (float64(y)/float64(h))*(yMax-yMin)
	return complex(re, im)
}

// escapeTime counts iterations of z <- z^2 + c until |z| exceeds 2, capped
// at maxIter.
func escapeTime(z, c complex128, maxIter int) int {
	for n := 0; n < maxIter; n++ {
		if cmplx.Abs(z) > 2 {
			return n
		}
		z = z*z + c
	}
	return maxIter
}

func newRows(w, h int) [][]cell.State {
	rows := make([][]cell.State, h)
	for y := range rows {
		rows[y] = make([]cell.State, w)
	}
	return rows
}
