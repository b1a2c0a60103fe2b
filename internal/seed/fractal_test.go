package seed

import (
	"reflect"
	"testing"

	"github.com/mvikstrom/chromalife/internal/cell"
)

func countAlive(rows [][]cell.State) int {
	n := 0
	for _, row := range rows {
		for _, c := range row {
			if c.Alive() {
				n++
			}
		}
	}
	return n
}

func TestMandelbrotDeterministic(t *testing.T) {
	a := Mandelbrot(64, 64, -2.5, 1.0, -1.5, 1.5, 30, 8)
	b := Mandelbrot(64, 64, -2.5, 1.0, -1.5, 1.5, 30, 8)

	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical calls must produce identical grids")
	}
	if len(a) != 64 || len(a[0]) != 64 {
		t.Fatalf("unexpected dimensions %dx%d", len(a[0]), len(a))
	}

	alive := countAlive(a)
	if alive == 0 || alive == 64*64 {
		t.Fatalf("degenerate pattern: %d alive cells", alive)
	}
}

func TestMandelbrotEscapeConvention(t *testing.T) {
	rows := Mandelbrot(64, 64, -2.5, 1.0, -1.5, 1.5, 30, 8)

	// Top-left corner maps to -2.5-1.5i, far outside the set: it escapes
	// immediately, so the fast-escape convention marks it alive.
	if !rows[0][0].Alive() {
		t.Error("fast-escaping corner should be alive")
	}

	// Pixel (45,32) maps near the origin, deep inside the set: it never
	// escapes and stays dead.
	if rows[32][45].Alive() {
		t.Error("set interior should be dead")
	}
}

func TestMandelbrotAliveIsRed(t *testing.T) {
	rows := Mandelbrot(16, 16, -2.5, 1.0, -1.5, 1.5, 30, 8)
	for y, row := range rows {
		for x, c := range row {
			if c != cell.Dead && c != cell.Red {
				t.Fatalf("cell (%d,%d) = %v, want dead or red", x, y, c)
			}
		}
	}
}

func TestJuliaDeterministic(t *testing.T) {
	a := Julia(48, 48, -0.7, 0.27015, -2, 2, -2, 2, 30, 8)
	b := Julia(48, 48, -0.7, 0.27015, -2, 2, -2, 2, 30, 8)

	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical calls must produce identical grids")
	}

	alive := countAlive(a)
	if alive == 0 || alive == 48*48 {
		t.Fatalf("degenerate pattern: %d alive cells", alive)
	}
}

func TestJuliaParameterChangesPattern(t *testing.T) {
	a := Julia(32, 32, -0.7, 0.27015, -2, 2, -2, 2, 30, 8)
	b := Julia(32, 32, -0.8, 0.156, -2, 2, -2, 2, 30, 8)

	if reflect.DeepEqual(a, b) {
		t.Error("different julia constants should produce different grids")
	}
}

func TestThresholdMonotonic(t *testing.T) {
	// Raising the threshold can only add alive cells: every point escaping
	// under a low threshold also escapes under a higher one.
	low := Mandelbrot(32, 32, -2.5, 1.0, -1.5, 1.5, 30, 4)
	high := Mandelbrot(32, 32, -2.5, 1.0, -1.5, 1.5, 30, 12)

	for y := range low {
		for x := range low[y] {
			if low[y][x].Alive() && !high[y][x].Alive() {
				t.Fatalf("cell (%d,%d) alive at threshold 4 but dead at 12", x, y)
			}
		}
	}
	if countAlive(high) < countAlive(low) {
		t.Error("higher threshold must not shrink the pattern")
	}
}
