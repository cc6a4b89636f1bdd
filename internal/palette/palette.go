package palette

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Fixed colors shared by the visualizations.
var (
	Green    = mustHex("#4CAF50")
	Pink     = mustHex("#FF4081")
	Charcoal = mustHex("#333333")
	White    = mustHex("#ffffff")
	Black    = mustHex("#000000")
	Backdrop = mustHex("#0a0a0a")
	Clear    = color.RGBA{}
)

// HSL returns the fully saturated, half-lightness color for hue h in degrees.
// Hues outside [0, 360) wrap around.
func HSL(h float64) color.Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return toRGBA(colorful.Hsl(h, 1, 0.5))
}

// Hex renders c as #rrggbb, dropping alpha.
func Hex(c color.Color) string {
	if c == nil {
		return "none"
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "none"
	}
	return cf.Hex()
}

// RGBA converts any color to a non-premultiplied 8-bit color.
func RGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func mustHex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("palette: bad hex color " + s)
	}
	return toRGBA(c)
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
