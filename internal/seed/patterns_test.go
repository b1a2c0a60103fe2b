package seed

import (
	"math/rand/v2"
	"testing"

	"github.com/mvikstrom/chromalife/internal/cell"
)

func TestFigures(t *testing.T) {
	tests := []struct {
		name      string
		wantAlive int
		wantW     int
		wantH     int
	}{
		{"glider", 5, 3, 3},
		{"blinker", 3, 3, 1},
		{"walker", 9, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			figure, err := Figure(tt.name, cell.Blue)
			if err != nil {
				t.Fatalf("figure: %v", err)
			}
			if len(figure) != tt.wantH || len(figure[0]) != tt.wantW {
				t.Errorf("size = %dx%d, want %dx%d", len(figure[0]), len(figure), tt.wantW, tt.wantH)
			}
			if got := countAlive(figure); got != tt.wantAlive {
				t.Errorf("alive = %d, want %d", got, tt.wantAlive)
			}
			for _, row := range figure {
				for _, c := range row {
					if c != cell.Dead && c != cell.Blue {
						t.Fatalf("figure cell %v, want blue", c)
					}
				}
			}
		})
	}

	if _, err := Figure("spaceship", cell.Red); err == nil {
		t.Error("expected error for unknown figure")
	}
}

func TestOnCanvasCenters(t *testing.T) {
	canvas := OnCanvas(9, 7, Blinker(cell.Green))

	if len(canvas) != 7 || len(canvas[0]) != 9 {
		t.Fatalf("canvas size = %dx%d", len(canvas[0]), len(canvas))
	}
	// Blinker is 3x1, so it lands at x 3..5, y 3.
	for x := 3; x <= 5; x++ {
		if canvas[3][x] != cell.Green {
			t.Errorf("expected green at (%d,3)", x)
		}
	}
	if got := countAlive(canvas); got != 3 {
		t.Errorf("alive = %d, want 3", got)
	}
}

func TestOnCanvasDropsOverflow(t *testing.T) {
	canvas := OnCanvas(3, 3, Walker(cell.Red))
	if len(canvas) != 3 || len(canvas[0]) != 3 {
		t.Fatalf("canvas size changed")
	}
	// The 5x5 walker cannot fit; whatever lands inside stays, the rest is
	// dropped without panicking.
	if got := countAlive(canvas); got == 0 || got > 9 {
		t.Errorf("unexpected alive count %d", got)
	}
}

func TestRandomColors(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	rows := RandomColors(50, 40, 0.3, rng)

	if len(rows) != 40 || len(rows[0]) != 50 {
		t.Fatalf("size = %dx%d, want 50x40", len(rows[0]), len(rows))
	}

	alive := countAlive(rows)
	total := 50 * 40
	ratio := float64(alive) / float64(total)
	if ratio < 0.2 || ratio > 0.4 {
		t.Errorf("fill ratio = %.3f, want around 0.3", ratio)
	}

	// All four colors should show up at this density.
	seen := map[cell.State]bool{}
	for _, row := range rows {
		for _, c := range row {
			if c.Alive() {
				seen[c] = true
			}
		}
	}
	if len(seen) != 4 {
		t.Errorf("expected all four colors, saw %d", len(seen))
	}
}

func TestRandomColorsDeterministicPerSeed(t *testing.T) {
	a := RandomColors(20, 20, 0.3, rand.New(rand.NewPCG(9, 0)))
	b := RandomColors(20, 20, 0.3, rand.New(rand.NewPCG(9, 0)))

	for y := range a {
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				t.Fatalf("same seed diverged at (%d,%d)", x, y)
			}
		}
	}
}
