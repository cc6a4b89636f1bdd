// Package analysis inspects the sampled curves behind the animated
// visualizations.
//
//   - [Spectrum]: DFT magnitudes of a real series
//   - [Peak]: the dominant non-DC bin of a spectrum
//   - [Ratio]: dominant cycle counts of an (x, y) curve
//
// # Frequency ratio
//
// A Lissajous figure sampled over one period has as many cycles in x and
// y as its frequencies:
//
//	xs, ys := analysis.Split(visuals.LissajousPoints(0, 0, 1, 0))
//	a, b := analysis.Ratio(xs, ys) // 3, 2
package analysis
