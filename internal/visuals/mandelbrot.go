package visuals

import (
	"image/color"

	"github.com/san-kum/mathviz/internal/compute"
	"github.com/san-kum/mathviz/internal/palette"
	"github.com/san-kum/mathviz/internal/surface"
)

const (
	MandelbrotZoom       = 200.0
	MandelbrotIterations = 100
)

// Escape iterates z = z*z + c from zero and returns how many iterations
// stayed within radius 2, capped at maxIter.
func Escape(cr, ci float64, maxIter int) int {
	zr, zi := 0.0, 0.0
	n := 0
	for n < maxIter {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		if zr*zr+zi*zi > 4 {
			break
		}
		n++
	}
	return n
}

// EscapeField evaluates every pixel of a width x height view centered on
// the origin. Counts are stored column-major: index x*height + y.
func EscapeField(width, height int, zoom float64, maxIter int, b compute.Backend) []int {
	if width <= 0 || height <= 0 || zoom == 0 {
		return nil
	}
	if b == nil {
		b = compute.Serial{}
	}
	counts := make([]int, width*height)
	offX, offY := float64(width)/2, float64(height)/2
	b.ParallelFor(width, 8, func(start, end int) {
		for x := start; x < end; x++ {
			cr := (float64(x) - offX) / zoom
			col := counts[x*height : (x+1)*height]
			for y := range col {
				col[y] = Escape(cr, (float64(y)-offY)/zoom, maxIter)
			}
		}
	})
	return counts
}

// EscapeColor is black for points that never escaped, else a hue
// proportional to the iteration count.
func EscapeColor(n, maxIter int) color.Color {
	if n >= maxIter {
		return palette.Black
	}
	return palette.HSL(float64(n) / float64(maxIter) * 360)
}

type Mandelbrot struct {
	Zoom    float64
	MaxIter int
	Backend compute.Backend
}

func NewMandelbrot() *Mandelbrot {
	return &Mandelbrot{Zoom: MandelbrotZoom, MaxIter: MandelbrotIterations}
}

func (m *Mandelbrot) Name() string { return "mandelbrot" }

func (m *Mandelbrot) Draw(s surface.Surface) {
	if !surface.Usable(s) || m.MaxIter <= 0 {
		return
	}
	b := m.Backend
	if b == nil {
		b = compute.GetBackend()
	}
	width, height := s.Size()
	counts := EscapeField(width, height, m.Zoom, m.MaxIter, b)
	if counts == nil {
		return
	}

	// hue lookup keeps the per-pixel loop free of color conversions
	colors := make([]color.Color, m.MaxIter+1)
	for n := range colors {
		colors[n] = EscapeColor(n, m.MaxIter)
	}
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			s.SetFillColor(colors[counts[x*height+y]])
			s.FillRect(float64(x), float64(y), 1, 1)
		}
	}
}
