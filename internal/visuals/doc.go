// Package visuals implements the gallery's eight visualizations.
//
// Each visualization owns its state and draws onto a [surface.Surface]:
//
//   - [Fractal], [Mandelbrot], [Ulam], [Goldbach]: drawn once per resize
//   - [Wave], [Lissajous], [FibonacciSpiral]: redrawn every frame ([Animated])
//   - [Sieve]: advanced on a fixed delay until done ([Stepper])
//
// The geometry behind each one is exposed as plain functions ([Triangles],
// [WavePoints], [EscapeField], [LissajousPoints], [Spiral], [Connectors],
// [Squares]) so it can be checked without a surface.
package visuals
