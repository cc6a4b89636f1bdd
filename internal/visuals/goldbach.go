package visuals

import (
	"github.com/san-kum/mathviz/internal/palette"
	"github.com/san-kum/mathviz/internal/primes"
	"github.com/san-kum/mathviz/internal/surface"
)

const (
	GoldbachMax       = 100
	GoldbachDotRadius = 3.0
)

// Connector is one drawn Goldbach pair of N, stacked at height Y.
type Connector struct {
	N      int
	Pair   primes.Pair
	Y      float64
	X1, X2 float64
}

func (c Connector) Hue() float64 { return float64((c.N * 3) % 360) }

// Connectors lays out every pair of every even n in [4, max]: pair i of k
// sits at height (i+1)/(k+1) of the surface, x scaled by width/max.
func Connectors(width, height, max int) []Connector {
	if width <= 0 || height <= 0 || max <= 0 {
		return nil
	}
	cell := float64(width) / float64(max)
	var out []Connector
	for n := 4; n <= max; n += 2 {
		pairs := primes.Pairs(n)
		for i, p := range pairs {
			out = append(out, Connector{
				N:    n,
				Pair: p,
				Y:    float64(height) * float64(i+1) / float64(len(pairs)+1),
				X1:   float64(p.P) * cell,
				X2:   float64(p.Q) * cell,
			})
		}
	}
	return out
}

type Goldbach struct {
	Max int
}

func NewGoldbach() *Goldbach { return &Goldbach{Max: GoldbachMax} }

func (g *Goldbach) Name() string { return "goldbach" }

func (g *Goldbach) Draw(s surface.Surface) {
	if !surface.Usable(s) || g.Max <= 0 {
		return
	}
	w, h := s.Size()
	cell := float64(w) / float64(g.Max)
	wipe(s)

	s.SetStrokeColor(palette.Charcoal)
	s.SetLineWidth(0.5)
	for i := 0; i <= g.Max; i += 2 {
		x := float64(i) * cell
		s.BeginPath()
		s.MoveTo(x, 0)
		s.LineTo(x, float64(h))
		s.Stroke()
	}

	for _, c := range Connectors(w, h, g.Max) {
		s.BeginPath()
		s.SetStrokeColor(palette.HSL(c.Hue()))
		s.SetLineWidth(2)
		s.MoveTo(c.X1, c.Y)
		s.LineTo(c.X2, c.Y)
		s.Stroke()

		s.SetFillColor(palette.White)
		s.BeginPath()
		s.Arc(c.X1, c.Y, GoldbachDotRadius)
		s.Arc(c.X2, c.Y, GoldbachDotRadius)
		s.Fill()
	}
}
