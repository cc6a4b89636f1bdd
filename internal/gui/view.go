package gui

import (
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/mathviz/internal/export"
	"github.com/san-kum/mathviz/internal/gallery"
	"github.com/san-kum/mathviz/internal/palette"
	"github.com/san-kum/mathviz/internal/surface"
	"github.com/san-kum/mathviz/internal/visuals"
)

// view mirrors one pane's raster into a GPU texture.
type view struct {
	pane   *gallery.Pane
	raster *surface.Raster
	tex    rl.Texture2D
	size   image.Point
	loaded bool
	pixels []color.RGBA
}

func (v *view) title() string {
	info, err := visuals.Lookup(v.pane.Name())
	if err != nil {
		return v.pane.Name()
	}
	return info.Title
}

// sync uploads the raster, reallocating the texture when the raster was
// resized.
func (v *view) sync() {
	img := export.Flatten(v.raster.Image(), palette.Backdrop)
	size := img.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		v.unload()
		return
	}
	if !v.loaded || size != v.size {
		v.unload()
		rimg := rl.NewImageFromImage(img)
		v.tex = rl.LoadTextureFromImage(rimg)
		rl.UnloadImage(rimg)
		v.size, v.loaded = size, true
		return
	}
	v.pixels = toRGBA(img, v.pixels)
	rl.UpdateTexture(v.tex, v.pixels)
}

func (v *view) unload() {
	if v.loaded {
		rl.UnloadTexture(v.tex)
		v.loaded = false
	}
}

func toRGBA(img *image.RGBA, buf []color.RGBA) []color.RGBA {
	n := len(img.Pix) / 4
	if cap(buf) < n {
		buf = make([]color.RGBA, n)
	}
	buf = buf[:n]
	for i := range buf {
		p := img.Pix[i*4 : i*4+4 : i*4+4]
		buf[i] = color.RGBA{p[0], p[1], p[2], p[3]}
	}
	return buf
}
