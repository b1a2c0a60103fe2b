package analysis

import (
	"math"
	"testing"
)

func TestDominantPeriodAlternating(t *testing.T) {
	// A period-2 oscillation like a blinker's bounding population.
	series := make([]float64, 64)
	for i := range series {
		if i%2 == 0 {
			series[i] = 5
		} else {
			series[i] = 3
		}
	}

	period, ok := DominantPeriod(series)
	if !ok {
		t.Fatal("expected a dominant period")
	}
	if math.Abs(period-2) > 0.01 {
		t.Errorf("period = %.2f, want 2", period)
	}
}

func TestDominantPeriodSine(t *testing.T) {
	// 8 full cycles over 128 samples: period 16.
	series := make([]float64, 128)
	for i := range series {
		series[i] = 100 + 20*math.Sin(2*math.Pi*float64(i)/16)
	}

	period, ok := DominantPeriod(series)
	if !ok {
		t.Fatal("expected a dominant period")
	}
	if math.Abs(period-16) > 0.5 {
		t.Errorf("period = %.2f, want 16", period)
	}
}

func TestDominantPeriodFlat(t *testing.T) {
	series := []float64{7, 7, 7, 7, 7, 7, 7, 7}
	if _, ok := DominantPeriod(series); ok {
		t.Error("flat series must not report a period")
	}
}

func TestDominantPeriodTooShort(t *testing.T) {
	if _, ok := DominantPeriod([]float64{1, 2, 1}); ok {
		t.Error("short series must not report a period")
	}
	if _, ok := DominantPeriod(nil); ok {
		t.Error("nil series must not report a period")
	}
}

func TestSpectrum(t *testing.T) {
	series := make([]float64, 32)
	for i := range series {
		series[i] = math.Sin(2 * math.Pi * float64(i) / 8)
	}

	spec := Spectrum(series)
	if len(spec) != 17 {
		t.Fatalf("expected 17 bins, got %d", len(spec))
	}

	// Energy concentrates in bin 4 (32/8 cycles).
	peak := 0
	for k := 1; k < len(spec); k++ {
		if spec[k] > spec[peak] {
			peak = k
		}
	}
	if peak != 4 {
		t.Errorf("peak bin = %d, want 4", peak)
	}
}
