package surface

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

var ErrUnknownSurface = errors.New("surface: unknown surface")

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Covers reports whether r contains the whole w x h area.
func (r Rect) Covers(w, h int) bool {
	return r.X <= 0 && r.Y <= 0 && r.X+r.W >= float64(w) && r.Y+r.H >= float64(h)
}

type TextAlign int

const (
	AlignStart TextAlign = iota
	AlignCenter
)

// Subpath is a polyline started by MoveTo. Closed subpaths stroke back
// to their first point.
type Subpath struct {
	Points []Point
	Closed bool
}

type Circle struct {
	Center Point
	Radius float64
}

// Path is the geometry accumulated between BeginPath and Stroke/Fill.
type Path struct {
	Subpaths []Subpath
	Circles  []Circle
}

func (p Path) Empty() bool { return len(p.Subpaths) == 0 && len(p.Circles) == 0 }

// Segments counts the straight segments a stroke of p draws.
func (p Path) Segments() int {
	n := 0
	for _, sp := range p.Subpaths {
		if len(sp.Points) < 2 {
			continue
		}
		n += len(sp.Points) - 1
		if sp.Closed {
			n++
		}
	}
	return n
}

// Surface is a 2D drawing target modelled on an immediate-mode canvas.
// Style setters apply to every following draw call. Text is drawn with its
// vertical middle at y.
type Surface interface {
	Size() (w, h int)
	SetSize(w, h int)

	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetLineWidth(w float64)
	SetFontSize(px float64)
	SetTextAlign(a TextAlign)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Arc(x, y, r float64)
	Stroke()
	Fill()

	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	FillText(text string, x, y float64)
}

// Provider hands out named surfaces.
type Provider interface {
	Surface(name string) (Surface, error)
}

// Usable reports whether s has a positive area to draw on.
func Usable(s Surface) bool {
	if s == nil {
		return false
	}
	w, h := s.Size()
	return w > 0 && h > 0
}

// pen holds the style and the path under construction. Every surface
// implementation embeds it.
type pen struct {
	stroke    color.Color
	fill      color.Color
	lineWidth float64
	fontSize  float64
	align     TextAlign
	path      Path
}

func newPen() pen {
	return pen{stroke: color.Black, fill: color.Black, lineWidth: 1, fontSize: 10}
}

func (p *pen) SetStrokeColor(c color.Color) { p.stroke = c }
func (p *pen) SetFillColor(c color.Color)   { p.fill = c }
func (p *pen) SetFontSize(px float64)       { p.fontSize = px }
func (p *pen) SetTextAlign(a TextAlign)     { p.align = a }

func (p *pen) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 0) {
		p.lineWidth = w
	}
}

func (p *pen) BeginPath() { p.path = Path{} }

func (p *pen) MoveTo(x, y float64) {
	p.path.Subpaths = append(p.path.Subpaths, Subpath{Points: []Point{{x, y}}})
}

func (p *pen) LineTo(x, y float64) {
	n := len(p.path.Subpaths)
	if n == 0 || p.path.Subpaths[n-1].Closed {
		p.MoveTo(x, y)
		return
	}
	sp := &p.path.Subpaths[n-1]
	sp.Points = append(sp.Points, Point{x, y})
}

func (p *pen) ClosePath() {
	if n := len(p.path.Subpaths); n > 0 {
		p.path.Subpaths[n-1].Closed = true
	}
}

func (p *pen) Arc(x, y, r float64) {
	if r > 0 {
		p.path.Circles = append(p.path.Circles, Circle{Point{x, y}, r})
	}
}

func rectPath(x, y, w, h float64) Path {
	return Path{Subpaths: []Subpath{{
		Points: []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}},
		Closed: true,
	}}}
}

// circlePoints approximates c as a polygon wound clockwise in screen space.
func circlePoints(c Circle, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		a := -2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{c.Center.X + c.Radius*math.Cos(a), c.Center.Y + c.Radius*math.Sin(a)}
	}
	return pts
}

// Registry is a Provider of same-sized surfaces created by a factory.
// It is not safe for concurrent use.
type Registry struct {
	factory       func(w, h int) Surface
	width, height int
	surfaces      map[string]Surface
	order         []string
}

func NewRegistry(w, h int, factory func(w, h int) Surface) *Registry {
	return &Registry{
		factory:  factory,
		width:    w,
		height:   h,
		surfaces: make(map[string]Surface),
	}
}

// Register creates a surface for every name not yet known.
func (r *Registry) Register(names ...string) {
	for _, name := range names {
		if _, ok := r.surfaces[name]; ok {
			continue
		}
		r.surfaces[name] = r.factory(r.width, r.height)
		r.order = append(r.order, name)
	}
}

func (r *Registry) Surface(name string) (Surface, error) {
	s, ok := r.surfaces[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSurface, name)
	}
	return s, nil
}

// Resize sets every surface to w x h, which also clears them.
func (r *Registry) Resize(w, h int) {
	r.width, r.height = w, h
	for _, name := range r.order {
		r.surfaces[name].SetSize(w, h)
	}
}

func (r *Registry) Size() (int, int) { return r.width, r.height }

func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
