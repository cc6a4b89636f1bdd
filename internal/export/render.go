package export

import (
	"fmt"
	"io"
	"time"

	"github.com/san-kum/mathviz/internal/gallery"
	"github.com/san-kum/mathviz/internal/schedule"
	"github.com/san-kum/mathviz/internal/surface"
	"github.com/san-kum/mathviz/internal/visuals"
)

// Renderer draws a single visualization offscreen.
type Renderer struct {
	Width, Height int
	// FrameInterval is the simulated time between animation frames.
	FrameInterval time.Duration
	StepDelay     time.Duration
}

func (r Renderer) interval() time.Duration {
	if r.FrameInterval <= 0 {
		return time.Second / schedule.DefaultFPS
	}
	return r.FrameInterval
}

func (r Renderer) delay() time.Duration {
	if r.StepDelay <= 0 {
		return visuals.SieveDelay
	}
	return r.StepDelay
}

func (r Renderer) open(name string, factory func(w, h int) surface.Surface) (*gallery.Gallery, *gallery.Pane, *schedule.Manual, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, nil, nil, fmt.Errorf("render %s: empty surface %dx%d", name, r.Width, r.Height)
	}
	clock := schedule.NewManual()
	reg := surface.NewRegistry(r.Width, r.Height, factory)
	g, err := gallery.New(reg, clock, gallery.WithVisuals(name), gallery.WithStepDelay(r.delay()))
	if err != nil {
		return nil, nil, nil, err
	}
	p, err := g.Pane(name)
	if err != nil {
		return nil, nil, nil, err
	}
	return g, p, clock, nil
}

// Still writes the first frame of a visualization as PNG or SVG.
func (r Renderer) Still(w io.Writer, name, format string) error {
	switch format {
	case "png":
		g, p, _, err := r.open(name, func(w, h int) surface.Surface { return surface.NewRaster(w, h) })
		if err != nil {
			return err
		}
		defer g.Stop()
		if err := g.Start(); err != nil {
			return err
		}
		return WritePNG(w, p.Surface.(*surface.Raster).Image(), nil)
	case "svg":
		g, p, _, err := r.open(name, func(w, h int) surface.Surface { return surface.NewSVG(w, h) })
		if err != nil {
			return err
		}
		defer g.Stop()
		if err := g.Start(); err != nil {
			return err
		}
		s := p.Surface.(*surface.SVG)
		if info, err := visuals.Lookup(name); err == nil {
			s.Title = info.Title
		}
		return WriteSVG(w, s)
	}
	return fmt.Errorf("render %s: unsupported format %q", name, format)
}

// Animate captures up to frames frames into rec. Continuous visuals
// advance one frame interval per capture, stepped ones one step delay;
// a stepped visual that finishes ends the capture early. One-shot
// visuals yield a single frame. It returns the number of frames taken.
func (r Renderer) Animate(rec *GIFRecorder, name string, frames int) (int, error) {
	g, p, clock, err := r.open(name, func(w, h int) surface.Surface { return surface.NewRaster(w, h) })
	if err != nil {
		return 0, err
	}
	defer g.Stop()
	if err := g.Start(); err != nil {
		return 0, err
	}
	raster := p.Surface.(*surface.Raster)

	step := r.interval()
	if p.Kind == visuals.Stepped {
		step = r.delay()
	}
	for i := 0; i < frames; i++ {
		rec.Capture(raster.Image())
		if p.Kind == visuals.OneShot || (p.Kind == visuals.Stepped && !p.Active()) {
			return i + 1, nil
		}
		clock.Tick(step)
	}
	return frames, nil
}
