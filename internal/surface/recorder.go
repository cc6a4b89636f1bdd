package surface

import "image/color"

type OpKind int

const (
	OpClear OpKind = iota
	OpStroke
	OpFill
	OpFillRect
	OpStrokeRect
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpStroke:
		return "stroke"
	case OpFill:
		return "fill"
	case OpFillRect:
		return "fillRect"
	case OpStrokeRect:
		return "strokeRect"
	case OpText:
		return "text"
	}
	return "unknown"
}

// Op is one recorded draw call with the style that was active for it.
type Op struct {
	Kind      OpKind
	Path      Path
	Rect      Rect
	Text      string
	At        Point
	Color     color.Color
	LineWidth float64
	FontSize  float64
	Align     TextAlign
}

// Recorder is a Surface that keeps a display list instead of pixels.
// Clearing the whole surface drops everything recorded before it.
type Recorder struct {
	pen
	width, height int
	ops           []Op
}

func NewRecorder(w, h int) *Recorder {
	return &Recorder{pen: newPen(), width: w, height: h}
}

func (r *Recorder) Size() (int, int) { return r.width, r.height }

func (r *Recorder) SetSize(w, h int) {
	r.width, r.height = w, h
	r.ops = r.ops[:0]
}

func (r *Recorder) Ops() []Op { return r.ops }

func (r *Recorder) Reset() { r.ops = r.ops[:0] }

// Count returns how many recorded ops have kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

func (r *Recorder) Stroke() {
	if r.path.Empty() {
		return
	}
	r.ops = append(r.ops, Op{Kind: OpStroke, Path: r.path, Color: r.stroke, LineWidth: r.lineWidth})
}

func (r *Recorder) Fill() {
	if r.path.Empty() {
		return
	}
	r.ops = append(r.ops, Op{Kind: OpFill, Path: r.path, Color: r.fill})
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	rect := Rect{x, y, w, h}
	if rect.Covers(r.width, r.height) {
		r.ops = r.ops[:0]
	}
	r.ops = append(r.ops, Op{Kind: OpClear, Rect: rect})
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.ops = append(r.ops, Op{Kind: OpFillRect, Rect: Rect{x, y, w, h}, Color: r.fill})
}

func (r *Recorder) StrokeRect(x, y, w, h float64) {
	r.ops = append(r.ops, Op{Kind: OpStrokeRect, Rect: Rect{x, y, w, h}, Color: r.stroke, LineWidth: r.lineWidth})
}

func (r *Recorder) FillText(text string, x, y float64) {
	r.ops = append(r.ops, Op{
		Kind:     OpText,
		Text:     text,
		At:       Point{x, y},
		Color:    r.fill,
		FontSize: r.fontSize,
		Align:    r.align,
	})
}
