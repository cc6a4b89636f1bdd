package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/san-kum/mathviz/internal/palette"
)

// Flatten composites img over an opaque background. Cleared regions of a
// raster are transparent and would otherwise export as holes.
func Flatten(img image.Image, bg color.Color) *image.RGBA {
	if bg == nil {
		bg = palette.Backdrop
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Over)
	return out
}

func WritePNG(w io.Writer, img image.Image, bg color.Color) error {
	if err := png.Encode(w, Flatten(img, bg)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
