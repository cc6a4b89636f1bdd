package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
)

var ErrNoFrames = errors.New("export: no frames captured")

// GIFRecorder collects frames for an animated GIF.
type GIFRecorder struct {
	// Delay per frame in hundredths of a second.
	Delay      int
	Background color.Color
	frames     []*image.Paletted
}

func NewGIFRecorder(delayCS int) *GIFRecorder {
	if delayCS <= 0 {
		delayCS = 2
	}
	return &GIFRecorder{Delay: delayCS}
}

// Capture flattens img and quantizes it to the Plan 9 palette.
func (g *GIFRecorder) Capture(img image.Image) {
	flat := Flatten(img, g.Background)
	frame := image.NewPaletted(flat.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(frame, frame.Bounds(), flat, flat.Bounds().Min)
	g.frames = append(g.frames, frame)
}

func (g *GIFRecorder) Len() int { return len(g.frames) }

func (g *GIFRecorder) Encode(w io.Writer) error {
	if len(g.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range g.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, g.Delay)
	}
	if err := gif.EncodeAll(w, &anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}
