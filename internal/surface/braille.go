package surface

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/mathviz/internal/palette"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Braille is a terminal Surface. Each character cell holds 2x4 dots, so a
// Cols x Rows grid exposes (Cols*2) x (Rows*4) drawing units. A cell takes
// the color of the last dot drawn into it. Text is not rendered.
type Braille struct {
	pen
	Cols, Rows int
	Grid       [][]rune
	Colors     [][]color.Color
}

// NewBraille returns a grid large enough for w x h dots.
func NewBraille(w, h int) *Braille {
	b := &Braille{pen: newPen()}
	b.SetSize(w, h)
	return b
}

func (b *Braille) Size() (int, int) { return b.Cols * 2, b.Rows * 4 }

func (b *Braille) SetSize(w, h int) {
	b.Cols = max((w+1)/2, 0)
	b.Rows = max((h+3)/4, 0)
	b.Grid = make([][]rune, b.Rows)
	b.Colors = make([][]color.Color, b.Rows)
	for i := range b.Grid {
		b.Grid[i] = make([]rune, b.Cols)
		b.Colors[i] = make([]color.Color, b.Cols)
		for j := range b.Grid[i] {
			b.Grid[i][j] = blank
		}
	}
}

// Set lights the dot at (x, y) in dot coordinates.
func (b *Braille) Set(x, y int, c color.Color) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= b.Cols || row >= b.Rows {
		return
	}
	b.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	b.Colors[row][col] = c
}

// Unset clears a dot
func (b *Braille) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= b.Cols || row >= b.Rows {
		return
	}
	b.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
	if b.Grid[row][col] < blank {
		b.Grid[row][col] = blank
	}
	if b.Grid[row][col] == blank {
		b.Colors[row][col] = nil
	}
}

// Clear resets the canvas
func (b *Braille) Clear() {
	for i := range b.Grid {
		for j := range b.Grid[i] {
			b.Grid[i][j] = blank
			b.Colors[i][j] = nil
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (b *Braille) DrawLine(x0, y0, x1, y1 int, c color.Color) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		b.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *Braille) Stroke() {
	for _, sp := range b.path.Subpaths {
		pts := sp.Points
		if sp.Closed && len(pts) > 1 {
			pts = append(append([]Point(nil), pts...), pts[0])
		}
		for i := 1; i < len(pts); i++ {
			b.line(pts[i-1], pts[i], b.stroke)
		}
	}
	for _, c := range b.path.Circles {
		ring := circlePoints(c, circleSegments)
		for i := range ring {
			b.line(ring[i], ring[(i+1)%len(ring)], b.stroke)
		}
	}
}

func (b *Braille) Fill() {
	for _, sp := range b.path.Subpaths {
		if len(sp.Points) >= 3 {
			b.fillPolygon(sp.Points)
		}
	}
	for _, c := range b.path.Circles {
		b.fillDots(c.Center.X-c.Radius, c.Center.Y-c.Radius, 2*c.Radius, 2*c.Radius, func(x, y float64) bool {
			return math.Hypot(x-c.Center.X, y-c.Center.Y) <= c.Radius
		})
	}
}

func (b *Braille) ClearRect(x, y, w, h float64) {
	if (Rect{x, y, w, h}).Covers(b.Size()) {
		b.Clear()
		return
	}
	x0, y0, x1, y1 := dotSpan(x, y, w, h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			b.Unset(px, py)
		}
	}
}

func (b *Braille) FillRect(x, y, w, h float64) {
	x0, y0, x1, y1 := dotSpan(x, y, w, h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			b.Set(px, py, b.fill)
		}
	}
}

func (b *Braille) StrokeRect(x, y, w, h float64) {
	saved := b.path
	b.path = rectPath(x, y, w, h)
	b.Stroke()
	b.path = saved
}

func (b *Braille) FillText(string, float64, float64) {}

// String renders the grid with each run of same-colored cells styled once.
func (b *Braille) String() string {
	var sb strings.Builder
	for r, row := range b.Grid {
		start := 0
		for start < len(row) {
			c := b.Colors[r][start]
			end := start + 1
			for end < len(row) && sameColor(b.Colors[r][end], c) {
				end++
			}
			run := string(row[start:end])
			if c != nil {
				run = lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Hex(c))).Render(run)
			}
			sb.WriteString(run)
			start = end
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Plain renders the grid without color.
func (b *Braille) Plain() string {
	var sb strings.Builder
	for _, row := range b.Grid {
		sb.WriteString(string(row) + "\n")
	}
	return sb.String()
}

func (b *Braille) line(p, q Point, c color.Color) {
	if !finite(p) || !finite(q) {
		return
	}
	b.DrawLine(roundInt(p.X), roundInt(p.Y), roundInt(q.X), roundInt(q.Y), c)
}

func (b *Braille) fillPolygon(pts []Point) {
	minX, minY, maxX, maxY := pts[0].X, pts[0].Y, pts[0].X, pts[0].Y
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	b.fillDots(minX, minY, maxX-minX, maxY-minY, func(x, y float64) bool {
		return insidePolygon(pts, x, y)
	})
}

func (b *Braille) fillDots(x, y, w, h float64, inside func(x, y float64) bool) {
	x0, y0, x1, y1 := dotSpan(x, y, w, h)
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			if inside(float64(px)+0.5, float64(py)+0.5) {
				b.Set(px, py, b.fill)
			}
		}
	}
}

func dotSpan(x, y, w, h float64) (x0, y0, x1, y1 int) {
	return int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x + w)), int(math.Ceil(y + h))
}

// insidePolygon is the even-odd crossing test.
func insidePolygon(pts []Point, x, y float64) bool {
	in := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, c := pts[i], pts[j]
		if (a.Y > y) != (c.Y > y) && x < (c.X-a.X)*(y-a.Y)/(c.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func roundInt(v float64) int { return int(math.Round(v)) }

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
