package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/mathviz/internal/gallery"
	"github.com/san-kum/mathviz/internal/schedule"
	"github.com/san-kum/mathviz/internal/surface"
	"github.com/san-kum/mathviz/internal/visuals"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// Player streams one visualization to a plain terminal in real time,
// without taking over input.
type Player struct {
	Out        io.Writer
	Cols, Rows int
	FPS        int
	// Frames stops playback after this many frames; zero plays until the
	// context ends.
	Frames int
	Color  bool
	Opts   []gallery.Option
}

func (p *Player) Play(ctx context.Context, name string) error {
	if p.Cols <= 0 || p.Rows <= 0 {
		return fmt.Errorf("play %s: empty terminal %dx%d", name, p.Cols, p.Rows)
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := schedule.NewLoop(p.FPS)
	reg := surface.NewRegistry(p.Cols*2, p.Rows*4, func(w, h int) surface.Surface { return surface.NewBraille(w, h) })
	opts := append([]gallery.Option{gallery.WithVisuals(name)}, p.Opts...)
	g, err := gallery.New(reg, loop, opts...)
	if err != nil {
		return err
	}
	pane, err := g.Pane(name)
	if err != nil {
		return err
	}
	canvas := pane.Surface.(*surface.Braille)
	info, _ := visuals.Lookup(name)

	fmt.Fprint(p.Out, hideCursor)
	defer fmt.Fprint(p.Out, showCursor)

	if err := g.Start(); err != nil {
		return err
	}
	defer g.Stop()

	frame := 0
	render := func() {
		if p.Frames > 0 && frame >= p.Frames {
			return
		}
		frame++
		body := canvas.Plain()
		if p.Color {
			body = canvas.String()
		}
		var b strings.Builder
		b.WriteString(clearScreen)
		b.WriteString(fmt.Sprintf("  %s  frame %d\n", info.Title, frame))
		b.WriteString("  " + strings.Repeat("-", p.Cols) + "\n")
		for _, row := range strings.Split(strings.TrimSuffix(body, "\n"), "\n") {
			b.WriteString("  " + row + "\n")
		}
		b.WriteString("  " + strings.Repeat("-", p.Cols) + "\n")
		fmt.Fprint(p.Out, b.String())
		if p.Frames > 0 && frame >= p.Frames {
			cancel()
		}
	}
	render()
	schedule.Every(loop, render)

	err = loop.Run(ctx)
	if ctx.Err() != nil && p.Frames > 0 && frame >= p.Frames {
		return nil
	}
	return err
}
