package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/san-kum/mathviz/internal/surface"
)

// Spectrum returns |X[k]| for k in [0, len(data)/2).
func Spectrum(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}
	coeffs := fft.FFTReal(data)
	ps := make([]float64, len(coeffs)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return ps
}

// Peak returns the index of the strongest bin above DC, or 0 when there
// is none.
func Peak(ps []float64) int {
	best := 0
	for i := 1; i < len(ps); i++ {
		if best == 0 || ps[i] > ps[best] {
			best = i
		}
	}
	return best
}

// Ratio returns the dominant cycle count of xs and of ys.
func Ratio(xs, ys []float64) (int, int) {
	return Peak(Spectrum(xs)), Peak(Spectrum(ys))
}

// Split separates a curve into its coordinate series.
func Split(pts []surface.Point) (xs, ys []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}
