// Package gui hosts the gallery in a raylib window: every visualization
// renders into its own raster, shown as a texture in a 4x2 grid.
package gui

import (
	"fmt"
	"io"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/mathviz/internal/export"
	"github.com/san-kum/mathviz/internal/gallery"
	"github.com/san-kum/mathviz/internal/palette"
	"github.com/san-kum/mathviz/internal/schedule"
	"github.com/san-kum/mathviz/internal/surface"
	"github.com/san-kum/mathviz/internal/visuals"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColGrid    = rl.NewColor(30, 30, 30, 255)
)

const (
	gridCols     = 4
	headerHeight = 40
	footerHeight = 28
	gap          = 8
	labelHeight  = 18
)

type Options struct {
	Width, Height int
	FPS           int
	StepDelay     time.Duration
	OutputDir     string
	Visuals       []string
}

type App struct {
	opts     Options
	clock    *schedule.Manual
	resizer  *schedule.Resizer
	gallery  *gallery.Gallery
	views    []*view
	selected int
	paused   bool
	status   string
}

// Layout returns the size of one grid cell's drawing area for a screen
// of w x h pixels showing n panes.
func Layout(w, h, n int) (int, int) {
	if n <= 0 {
		return 0, 0
	}
	cols := min(n, gridCols)
	rows := (n + cols - 1) / cols
	cw := (w - gap*(cols+1)) / cols
	ch := (h-headerHeight-footerHeight-gap*(rows+1))/rows - labelHeight
	return max(cw, 0), max(ch, 0)
}

func NewApp(opts Options) (*App, error) {
	names := opts.Visuals
	if len(names) == 0 {
		names = visuals.Names()
	}
	w, h := Layout(opts.Width, opts.Height, len(names))

	a := &App{opts: opts, clock: schedule.NewManual(), resizer: schedule.NewResizer(w, h)}
	reg := surface.NewRegistry(w, h, func(w, h int) surface.Surface { return surface.NewRaster(w, h) })
	g, err := gallery.New(reg, a.clock, gallery.WithVisuals(names...), gallery.WithStepDelay(opts.StepDelay))
	if err != nil {
		return nil, err
	}
	g.Attach(a.resizer)
	a.gallery = g
	for _, p := range g.Panes() {
		a.views = append(a.views, &view{pane: p, raster: p.Surface.(*surface.Raster)})
	}
	return a, nil
}

func initWindow(opts Options) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), "mathviz")
	fps := opts.FPS
	if fps <= 0 {
		fps = schedule.DefaultFPS
	}
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	initWindow(opts)
	defer rl.CloseWindow()

	app, err := NewApp(opts)
	if err != nil {
		return err
	}
	defer app.unload()
	if err := app.gallery.Start(); err != nil {
		return err
	}
	defer app.gallery.Stop()

	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

// Update handles input, resizes and advances the clock by the last frame
// time. It returns false when the user quits.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return false
	}
	if rl.IsWindowResized() {
		a.resizer.Notify(Layout(rl.GetScreenWidth(), rl.GetScreenHeight(), len(a.views)))
	}

	n := len(a.views)
	switch {
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyL):
		a.selected = (a.selected + 1) % n
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyH):
		a.selected = (a.selected + n - 1) % n
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ):
		a.selected = min(a.selected+gridCols, n-1)
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK):
		a.selected = max(a.selected-gridCols, 0)
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		a.paused = !a.paused
	}
	if rl.IsKeyPressed(rl.KeyR) {
		if err := a.gallery.Restart(); err != nil {
			a.status = err.Error()
		}
	}
	if rl.IsKeyPressed(rl.KeyS) {
		a.status = a.save(a.views[a.selected])
	}

	if !a.paused {
		a.clock.Tick(time.Duration(float64(rl.GetFrameTime()) * float64(time.Second)))
	}
	return true
}

func (a *App) save(v *view) string {
	path, err := export.WriteFile(a.opts.OutputDir, v.pane.Name()+".png", func(w io.Writer) error {
		return export.WritePNG(w, v.raster.Image(), palette.Backdrop)
	})
	if err != nil {
		return err.Error()
	}
	return "saved " + path
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	rl.DrawText("mathviz", gap*2, 10, 24, ColSelect)
	status := "RUNNING"
	col := ColSelect
	if a.paused {
		status, col = "PAUSED", ColTextDim
	}
	sw := int32(rl.GetScreenWidth())
	rl.DrawText(status, sw-rl.MeasureText(status, 16)-gap*2, 14, 16, col)

	cw, ch := a.resizer.Size()
	for i, v := range a.views {
		x := int32(gap + (i%gridCols)*(cw+gap))
		y := int32(headerHeight + gap + (i/gridCols)*(ch+labelHeight+gap))

		label := fmt.Sprintf("%s  %s", v.title(), v.pane.Kind)
		lc := ColText
		if i == a.selected {
			lc = ColSelect
		}
		rl.DrawText(label, x, y, 14, lc)

		v.sync()
		if v.loaded {
			rl.DrawTexture(v.tex, x, y+labelHeight, rl.White)
		}
		border := ColGrid
		if i == a.selected {
			border = ColSelect
		}
		rl.DrawRectangleLines(x-1, y+labelHeight-1, int32(cw)+2, int32(ch)+2, border)
	}

	sh := int32(rl.GetScreenHeight())
	rl.DrawText("[ARROWS] SELECT  [SPACE] PAUSE  [R] RESTART  [S] SAVE PNG  [Q] QUIT", gap*2, sh-20, 14, ColTextDim)
	if a.status != "" {
		rl.DrawText(a.status, sw/2, sh-20, 14, ColText)
	}
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), sw-70, sh-20, 14, ColTextDim)

	rl.EndDrawing()
}

func (a *App) unload() {
	for _, v := range a.views {
		v.unload()
	}
}
