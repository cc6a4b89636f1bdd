package visuals

import (
	"iter"
	"math"

	"github.com/san-kum/mathviz/internal/palette"
	"github.com/san-kum/mathviz/internal/surface"
)

const (
	FractalX     = 50.0
	FractalY     = 250.0
	FractalSize  = 200.0
	FractalDepth = 5
)

var sqrt3 = math.Sqrt(3)

// Triangle is one stroked outline. Depth is the recursion depth left when
// it was emitted and picks its hue.
type Triangle struct {
	A, B, C surface.Point
	Depth   int
}

func (t Triangle) Hue() float64 { return float64(t.Depth) * 30 }

// Triangles yields the outlines of the subdivision anchored at (x, y),
// parent before children. Depth 0 yields nothing.
func Triangles(x, y, size float64, depth int) iter.Seq[Triangle] {
	return func(yield func(Triangle) bool) {
		walkTriangles(x, y, size, depth, yield)
	}
}

func walkTriangles(x, y, size float64, depth int, yield func(Triangle) bool) bool {
	if depth <= 0 {
		return true
	}
	h := size * sqrt3 / 2
	t := Triangle{
		A:     surface.Point{X: x, Y: y},
		B:     surface.Point{X: x + size, Y: y},
		C:     surface.Point{X: x + size/2, Y: y - h},
		Depth: depth,
	}
	if !yield(t) {
		return false
	}
	half := size / 2
	return walkTriangles(x, y, half, depth-1, yield) &&
		walkTriangles(x+half, y, half, depth-1, yield) &&
		walkTriangles(x+size/4, y-h/2, half, depth-1, yield)
}

// TriangleCount is the closed form of len(Triangles(..., depth)).
func TriangleCount(depth int) int {
	if depth <= 0 {
		return 0
	}
	p := 1
	for i := 0; i < depth; i++ {
		p *= 3
	}
	return (p - 1) / 2
}

type Fractal struct {
	X, Y, Size float64
	Depth      int
}

func NewFractal() *Fractal {
	return &Fractal{X: FractalX, Y: FractalY, Size: FractalSize, Depth: FractalDepth}
}

func (f *Fractal) Name() string { return "fractal" }

func (f *Fractal) Draw(s surface.Surface) {
	if !surface.Usable(s) {
		return
	}
	wipe(s)
	s.SetLineWidth(1)
	for t := range Triangles(f.X, f.Y, f.Size, f.Depth) {
		s.SetStrokeColor(palette.HSL(t.Hue()))
		s.BeginPath()
		s.MoveTo(t.A.X, t.A.Y)
		s.LineTo(t.B.X, t.B.Y)
		s.LineTo(t.C.X, t.C.Y)
		s.ClosePath()
		s.Stroke()
	}
}
