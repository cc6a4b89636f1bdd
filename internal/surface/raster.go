package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const circleSegments = 32

var face = basicfont.Face7x13

// Raster is a Surface backed by an RGBA image. Paths are rasterized with
// anti-aliasing; strokes are built as per-segment quads with round joins.
type Raster struct {
	pen
	img *image.RGBA
}

func NewRaster(w, h int) *Raster {
	r := &Raster{pen: newPen()}
	r.SetSize(w, h)
	return r
}

func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// SetSize reallocates the backing image; previous content is lost.
func (r *Raster) SetSize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

func (r *Raster) Stroke() {
	if r.path.Empty() || !Usable(r) {
		return
	}
	w, h := r.Size()
	z := vector.NewRasterizer(w, h)
	hw := r.lineWidth / 2
	if hw < 0.5 {
		hw = 0.5
	}
	joins := r.lineWidth > 1.5

	for _, sp := range r.path.Subpaths {
		pts := sp.Points
		if sp.Closed && len(pts) > 1 {
			pts = append(append([]Point(nil), pts...), pts[0])
		}
		for i := 1; i < len(pts); i++ {
			addQuad(z, pts[i-1], pts[i], hw)
		}
		if joins {
			for _, p := range pts {
				addPolygon(z, circlePoints(Circle{p, hw}, 12))
			}
		}
	}
	for _, c := range r.path.Circles {
		ring := circlePoints(c, circleSegments)
		ring = append(ring, ring[0])
		for i := 1; i < len(ring); i++ {
			addQuad(z, ring[i-1], ring[i], hw)
		}
	}
	z.Draw(r.img, r.img.Bounds(), image.NewUniform(r.stroke), image.Point{})
}

func (r *Raster) Fill() {
	if r.path.Empty() || !Usable(r) {
		return
	}
	w, h := r.Size()
	z := vector.NewRasterizer(w, h)
	for _, sp := range r.path.Subpaths {
		if len(sp.Points) >= 3 {
			addPolygon(z, sp.Points)
		}
	}
	for _, c := range r.path.Circles {
		addPolygon(z, circlePoints(c, circleSegments))
	}
	z.Draw(r.img, r.img.Bounds(), image.NewUniform(r.fill), image.Point{})
}

func (r *Raster) ClearRect(x, y, w, h float64) {
	draw.Draw(r.img, pixelRect(x, y, w, h), image.Transparent, image.Point{}, draw.Src)
}

func (r *Raster) FillRect(x, y, w, h float64) {
	rect := pixelRect(x, y, w, h).Intersect(r.img.Bounds())
	if rect.Empty() {
		return
	}
	if rect.Dx() == 1 && rect.Dy() == 1 {
		if c, ok := r.fill.(color.RGBA); ok && c.A == 0xff {
			r.img.SetRGBA(rect.Min.X, rect.Min.Y, c)
			return
		}
	}
	draw.Draw(r.img, rect, image.NewUniform(r.fill), image.Point{}, draw.Over)
}

func (r *Raster) StrokeRect(x, y, w, h float64) {
	saved := r.path
	r.path = rectPath(x, y, w, h)
	r.Stroke()
	r.path = saved
}

// FillText renders with the 7x13 bitmap face scaled to the font size.
func (r *Raster) FillText(text string, x, y float64) {
	if text == "" || r.fontSize <= 0 || !Usable(r) {
		return
	}
	adv := font.MeasureString(face, text).Ceil()
	mask := image.NewAlpha(image.Rect(0, 0, adv, face.Height))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(text)

	k := r.fontSize / float64(face.Height)
	sw := int(math.Round(float64(adv) * k))
	sh := int(math.Round(r.fontSize))
	if sw <= 0 || sh <= 0 {
		return
	}
	scaled := image.NewAlpha(image.Rect(0, 0, sw, sh))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), mask, mask.Bounds(), xdraw.Src, nil)

	left := x
	if r.align == AlignCenter {
		left -= float64(sw) / 2
	}
	top := y - float64(sh)/2
	dst := image.Rect(0, 0, sw, sh).Add(image.Pt(int(math.Round(left)), int(math.Round(top))))
	draw.DrawMask(r.img, dst, image.NewUniform(r.fill), image.Point{}, scaled, image.Point{}, draw.Over)
}

func pixelRect(x, y, w, h float64) image.Rectangle {
	return image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	).Canon()
}

// addQuad adds the outline of segment a-b widened by hw on each side.
// All quads share one winding so overlaps saturate instead of cancelling.
func addQuad(z *vector.Rasterizer, a, b Point, hw float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw
	z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	z.LineTo(float32(b.X+nx), float32(b.Y+ny))
	z.LineTo(float32(b.X-nx), float32(b.Y-ny))
	z.LineTo(float32(a.X-nx), float32(a.Y-ny))
	z.ClosePath()
}

func addPolygon(z *vector.Rasterizer, pts []Point) {
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
}
