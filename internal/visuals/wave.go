package visuals

import (
	"math"

	"github.com/san-kum/mathviz/internal/palette"
	"github.com/san-kum/mathviz/internal/surface"
)

const (
	WaveAmplitude = 50.0
	WaveFrequency = 0.02
	WaveTimeStep  = 0.05
)

// WaveState is the travelling wave's clock.
type WaveState struct {
	Time float64
}

func (w WaveState) Next() WaveState {
	return WaveState{Time: w.Time + WaveTimeStep}
}

// WavePoints samples one point per pixel column around the vertical center.
func WavePoints(width, height int, t float64) []surface.Point {
	if width <= 0 || height <= 0 {
		return nil
	}
	centerY := float64(height) / 2
	pts := make([]surface.Point, width)
	for x := range pts {
		pts[x] = surface.Point{
			X: float64(x),
			Y: centerY + math.Sin(float64(x)*WaveFrequency+t)*WaveAmplitude,
		}
	}
	return pts
}

type Wave struct {
	State WaveState
}

func NewWave() *Wave { return &Wave{} }

func (w *Wave) Name() string { return "wave" }

func (w *Wave) Draw(s surface.Surface) {
	if !surface.Usable(s) {
		return
	}
	wipe(s)
	width, height := s.Size()
	pts := WavePoints(width, height, w.State.Time)

	s.SetStrokeColor(palette.Green)
	s.SetLineWidth(2)
	s.BeginPath()
	for i, p := range pts {
		if i == 0 {
			s.MoveTo(p.X, p.Y)
		} else {
			s.LineTo(p.X, p.Y)
		}
	}
	s.Stroke()
}

func (w *Wave) Advance() { w.State = w.State.Next() }

func (w *Wave) Reset() { w.State = WaveState{} }
