package palette

import (
	"image/color"
	"testing"
)

func TestHSLPrimaries(t *testing.T) {
	tests := []struct {
		hue  float64
		want color.RGBA
	}{
		{0, color.RGBA{255, 0, 0, 255}},
		{120, color.RGBA{0, 255, 0, 255}},
		{240, color.RGBA{0, 0, 255, 255}},
		{360, color.RGBA{255, 0, 0, 255}},
		{-120, color.RGBA{0, 0, 255, 255}},
	}
	for _, tt := range tests {
		if got := RGBA(HSL(tt.hue)); got != tt.want {
			t.Errorf("HSL(%v) = %v, want %v", tt.hue, got, tt.want)
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex(Green); got != "#4caf50" {
		t.Errorf("expected #4caf50, got %s", got)
	}
	if got := Hex(nil); got != "none" {
		t.Errorf("expected none for nil, got %s", got)
	}
	if got := Hex(color.RGBA{255, 64, 129, 255}); got != "#ff4081" {
		t.Errorf("expected #ff4081, got %s", got)
	}
}
