package surface

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/san-kum/mathviz/internal/palette"
)

// SVG records draw calls and encodes them as an SVG document on demand.
type SVG struct {
	*Recorder
	Title      string
	Background string
}

func NewSVG(w, h int) *SVG {
	return &SVG{Recorder: NewRecorder(w, h), Background: palette.Hex(palette.Backdrop)}
}

// Encode writes the current display list. Adjacent same-colored unit
// rectangles are merged so per-pixel renders stay compact.
func (s *SVG) Encode(w io.Writer) error {
	width, height := s.Size()
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	if s.Title != "" {
		canvas.Title(s.Title)
	}
	if s.Background != "" {
		canvas.Rect(0, 0, width, height, "fill:"+s.Background)
	}

	for _, op := range mergeRects(s.Ops()) {
		switch op.Kind {
		case OpStroke:
			canvas.Path(pathData(op.Path), fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g;stroke-linejoin:round", palette.Hex(op.Color), op.LineWidth))
		case OpFill:
			canvas.Path(pathData(op.Path), "fill:"+palette.Hex(op.Color))
		case OpFillRect:
			canvas.Path(rectData(op.Rect), "fill:"+palette.Hex(op.Color))
		case OpStrokeRect:
			canvas.Path(rectData(op.Rect), fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", palette.Hex(op.Color), op.LineWidth))
		case OpText:
			anchor := "start"
			if op.Align == AlignCenter {
				anchor = "middle"
			}
			canvas.Text(roundInt(op.At.X), roundInt(op.At.Y), op.Text,
				fmt.Sprintf("fill:%s;font-family:Arial,sans-serif;font-size:%.1fpx;text-anchor:%s;dominant-baseline:middle",
					palette.Hex(op.Color), op.FontSize, anchor))
		}
	}
	canvas.End()
	return ew.err
}

func mergeRects(ops []Op) []Op {
	out := make([]Op, 0, len(ops))
	for _, op := range ops {
		if n := len(out); n > 0 && op.Kind == OpFillRect && out[n-1].Kind == OpFillRect && sameColor(op.Color, out[n-1].Color) {
			prev := &out[n-1].Rect
			r := op.Rect
			if prev.X == r.X && prev.W == r.W && prev.Y+prev.H == r.Y {
				prev.H += r.H
				continue
			}
			if prev.Y == r.Y && prev.H == r.H && prev.X+prev.W == r.X {
				prev.W += r.W
				continue
			}
		}
		out = append(out, op)
	}
	return out
}

func pathData(p Path) string {
	var sb strings.Builder
	for _, sp := range p.Subpaths {
		for i, pt := range sp.Points {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			fmt.Fprintf(&sb, "%s%.2f %.2f ", cmd, pt.X, pt.Y)
		}
		if sp.Closed {
			sb.WriteString("Z ")
		}
	}
	for _, c := range p.Circles {
		r := c.Radius
		fmt.Fprintf(&sb, "M%.2f %.2f a%.2f %.2f 0 1 0 %.2f 0 a%.2f %.2f 0 1 0 %.2f 0 Z ",
			c.Center.X-r, c.Center.Y, r, r, 2*r, r, r, -2*r)
	}
	return strings.TrimSpace(sb.String())
}

func rectData(r Rect) string {
	return fmt.Sprintf("M%.2f %.2f h%.2f v%.2f h%.2f Z", r.X, r.Y, r.W, r.H, -r.W)
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
