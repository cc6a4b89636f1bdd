package export

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/san-kum/mathviz/internal/palette"
	"github.com/san-kum/mathviz/internal/surface"
)

// WriteSVG encodes a recorded SVG surface.
func WriteSVG(w io.Writer, s *surface.SVG) error {
	if err := s.Encode(w); err != nil {
		return fmt.Errorf("encode svg: %w", err)
	}
	return nil
}

// braille dot bits, row-major within a 2x4 cell
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// BrailleSVG draws every raised dot of b as a circle, scale units apart,
// in the color of its cell.
func BrailleSVG(w io.Writer, b *surface.Braille, scale float64) error {
	if b == nil || b.Cols == 0 || b.Rows == 0 {
		return fmt.Errorf("encode braille svg: empty canvas")
	}
	if scale <= 0 {
		scale = 4
	}
	width := int(float64(b.Cols) * scale * 2)
	height := int(float64(b.Rows) * scale * 4)
	r := max(int(scale*0.4), 1)

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:"+palette.Hex(palette.Backdrop))

	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			pattern := b.Grid[row][col] - 0x2800
			if pattern <= 0 {
				continue
			}
			fill := "fill:" + palette.Hex(palette.Green)
			if c := b.Colors[row][col]; c != nil {
				fill = "fill:" + palette.Hex(c)
			}
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&dotBits[dy][dx] == 0 {
						continue
					}
					cx := int(baseX + float64(dx)*scale + scale/2)
					cy := int(baseY + float64(dy)*scale + scale/2)
					canvas.Circle(cx, cy, r, fill)
				}
			}
		}
	}
	canvas.End()
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
