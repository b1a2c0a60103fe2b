// Package analysis inspects population series produced by simulation runs.
package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// DominantPeriod estimates the strongest oscillation period of a series, in
// generations, from the peak of its power spectrum. The DC component is
// excluded. It reports ok=false for series too short or effectively flat.
func DominantPeriod(series []float64) (period float64, ok bool) {
	n := len(series)
	if n < 4 {
		return 0, false
	}

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(n)

	detrended := make([]float64, n)
	flat := true
	for i, v := range series {
		detrended[i] = v - mean
		if math.Abs(detrended[i]) > 1e-9 {
			flat = false
		}
	}
	if flat {
		return 0, false
	}

	spectrum := fft.FFTReal(detrended)

	bestBin := 0
	bestPower := 0.0
	for k := 1; k <= n/2; k++ {
		if p := cmplx.Abs(spectrum[k]); p > bestPower {
			bestPower = p
			bestBin = k
		}
	}
	if bestBin == 0 {
		return 0, false
	}

	return float64(n) / float64(bestBin), true
}

// Spectrum returns the magnitude spectrum of a series up to the Nyquist bin,
// with the mean removed.
func Spectrum(series []float64) []float64 {
	n := len(series)
	if n == 0 {
		return nil
	}

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(n)

	detrended := make([]float64, n)
	for i, v := range series {
		detrended[i] = v - mean
	}

	spectrum := fft.FFTReal(detrended)
	out := make([]float64, n/2+1)
	for k := range out {
		out[k] = cmplx.Abs(spectrum[k])
	}
	return out
}
