package visuals

import (
	"math"

	"github.com/san-kum/mathviz/internal/palette"
	"github.com/san-kum/mathviz/internal/surface"
)

const (
	FibonacciCount    = 20
	FibonacciTimeStep = 0.01
	// FibonacciLimit is the longest prefix that fits a 64-bit int; F[93]
	// overflows.
	FibonacciLimit = 93
)

// Fibonacci returns F[0..m-1] with F[0]=0 and F[1]=1. m is capped at
// FibonacciLimit.
func Fibonacci(m int) []int {
	if m <= 0 {
		return []int{}
	}
	m = min(m, FibonacciLimit)
	fib := make([]int, m)
	if m > 1 {
		fib[1] = 1
	}
	for i := 2; i < m; i++ {
		fib[i] = fib[i-1] + fib[i-2]
	}
	return fib
}

// Square is an outline centered on Center with side Side.
type Square struct {
	Center surface.Point
	Side   float64
	Index  int
}

func (q Square) Hue() float64 { return float64((q.Index * 30) % 360) }

// Squares lays the first m Fibonacci numbers out from the surface center,
// turning 90° after each square. The scale fits the largest number into
// half of the shorter side.
func Squares(width, height, m int) []Square {
	fib := Fibonacci(m)
	if width <= 0 || height <= 0 || len(fib) == 0 || fib[len(fib)-1] == 0 {
		return nil
	}
	scale := math.Min(float64(width), float64(height)) / (float64(fib[len(fib)-1]) * 2)

	x, y := float64(width)/2, float64(height)/2
	angle := 0.0
	out := make([]Square, len(fib))
	for i, f := range fib {
		side := float64(f) * scale
		out[i] = Square{Center: surface.Point{X: x, Y: y}, Side: side, Index: i}
		x += side * math.Cos(angle)
		y += side * math.Sin(angle)
		angle += math.Pi / 2
	}
	return out
}

// FibonacciSpiral redraws every frame. Time advances with each frame but
// does not feed into the layout.
type FibonacciSpiral struct {
	Count int
	Time  float64
}

func NewFibonacci() *FibonacciSpiral { return &FibonacciSpiral{Count: FibonacciCount} }

func (f *FibonacciSpiral) Name() string { return "fibonacci" }

func (f *FibonacciSpiral) Draw(s surface.Surface) {
	if !surface.Usable(s) {
		return
	}
	wipe(s)
	w, h := s.Size()
	s.SetLineWidth(2)
	for _, q := range Squares(w, h, f.Count) {
		s.SetStrokeColor(palette.HSL(q.Hue()))
		s.StrokeRect(q.Center.X-q.Side/2, q.Center.Y-q.Side/2, q.Side, q.Side)
	}
}

func (f *FibonacciSpiral) Advance() { f.Time += FibonacciTimeStep }

func (f *FibonacciSpiral) Reset() { f.Time = 0 }
