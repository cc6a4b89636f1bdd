package visuals

import (
	"math"

	"github.com/san-kum/mathviz/internal/palette"
	"github.com/san-kum/mathviz/internal/surface"
)

const (
	LissajousFreqX     = 3.0
	LissajousFreqY     = 2.0
	LissajousStep      = 0.01
	LissajousPhaseStep = 0.02
	LissajousScale     = 0.8
)

// LissajousPoints samples t over [0, 2π) in LissajousStep increments.
func LissajousPoints(cx, cy, r, phase float64) []surface.Point {
	n := int(math.Ceil(2 * math.Pi / LissajousStep))
	pts := make([]surface.Point, 0, n)
	for i := 0; ; i++ {
		t := float64(i) * LissajousStep
		if t >= 2*math.Pi {
			break
		}
		pts = append(pts, surface.Point{
			X: cx + r*math.Sin(LissajousFreqX*t+phase),
			Y: cy + r*math.Sin(LissajousFreqY*t),
		})
	}
	return pts
}

type Lissajous struct {
	Phase float64
}

func NewLissajous() *Lissajous { return &Lissajous{} }

func (l *Lissajous) Name() string { return "lissajous" }

func (l *Lissajous) Draw(s surface.Surface) {
	if !surface.Usable(s) {
		return
	}
	wipe(s)
	w, h := s.Size()
	cx, cy := float64(w)/2, float64(h)/2
	pts := LissajousPoints(cx, cy, math.Min(cx, cy)*LissajousScale, l.Phase)

	s.SetStrokeColor(palette.Pink)
	s.SetLineWidth(2)
	s.BeginPath()
	for i, p := range pts {
		if i == 0 {
			s.MoveTo(p.X, p.Y)
		} else {
			s.LineTo(p.X, p.Y)
		}
	}
	s.ClosePath()
	s.Stroke()
}

func (l *Lissajous) Advance() { l.Phase += LissajousPhaseStep }

func (l *Lissajous) Reset() { l.Phase = 0 }
