package visuals

import (
	"iter"
	"math"

	"github.com/san-kum/mathviz/internal/palette"
	"github.com/san-kum/mathviz/internal/primes"
	"github.com/san-kum/mathviz/internal/surface"
)

const (
	UlamMax       = 400
	UlamCellsWide = 20
)

// SpiralCell places integer N at grid position (X, Y), y growing downwards.
type SpiralCell struct {
	N, X, Y int
}

// Spiral walks 1..maxN outward from the origin, starting upwards and
// turning left on each ring corner.
func Spiral(maxN int) iter.Seq[SpiralCell] {
	return func(yield func(SpiralCell) bool) {
		x, y := 0, 0
		dx, dy := 0, -1
		for n := 1; n <= maxN; n++ {
			if !yield(SpiralCell{N: n, X: x, Y: y}) {
				return
			}
			if x == y || (x < 0 && x == -y) || (x > 0 && x == 1-y) {
				dx, dy = -dy, dx
			}
			x += dx
			y += dy
		}
	}
}

// SpiralAt returns the grid position of n.
func SpiralAt(n int) (x, y int) {
	for c := range Spiral(n) {
		x, y = c.X, c.Y
	}
	return x, y
}

type Ulam struct {
	MaxN int
}

func NewUlam() *Ulam { return &Ulam{MaxN: UlamMax} }

func (u *Ulam) Name() string { return "ulam" }

func (u *Ulam) Draw(s surface.Surface) {
	if !surface.Usable(s) {
		return
	}
	w, h := s.Size()
	cell := math.Min(float64(w), float64(h)) / UlamCellsWide
	cx, cy := float64(w)/2, float64(h)/2

	wipe(s)
	for c := range Spiral(u.MaxN) {
		if !primes.IsPrime(c.N) {
			continue
		}
		s.SetFillColor(palette.HSL(float64((c.N * 2) % 360)))
		s.FillRect(cx+float64(c.X)*cell, cy+float64(c.Y)*cell, cell, cell)
	}
}
