// Package gallery runs a set of visualizations, each on its own named
// surface, according to how it animates: one-shot visuals draw at start
// and on resize, continuous visuals redraw every frame, stepped visuals
// advance on their own delay until they report done.
package gallery

import (
	"errors"
	"fmt"
	"time"

	"github.com/san-kum/mathviz/internal/schedule"
	"github.com/san-kum/mathviz/internal/surface"
	"github.com/san-kum/mathviz/internal/visuals"
)

var ErrRunning = errors.New("gallery: already running")

// Pane binds one visualization to the surface it draws on.
type Pane struct {
	Visual  visuals.Visual
	Surface surface.Surface
	Kind    visuals.Kind
	task    *schedule.Task
}

func (p *Pane) Name() string { return p.Visual.Name() }

// Active reports whether the pane still has scheduled work.
func (p *Pane) Active() bool { return p.task != nil && !p.task.Stopped() }

type Gallery struct {
	registry  *surface.Registry
	sched     schedule.Scheduler
	names     []string
	stepDelay time.Duration
	panes     []*Pane
	tasks     schedule.Group
	running   bool
}

type Option func(*Gallery)

// WithVisuals restricts the gallery to the named visualizations, in the
// given order. Repeated names keep their first position.
func WithVisuals(names ...string) Option {
	return func(g *Gallery) {
		if len(names) == 0 {
			return
		}
		seen := make(map[string]bool, len(names))
		g.names = nil
		for _, name := range names {
			if !seen[name] {
				seen[name] = true
				g.names = append(g.names, name)
			}
		}
	}
}

// WithStepDelay overrides the delay between steps of stepped visuals.
func WithStepDelay(d time.Duration) Option {
	return func(g *Gallery) { g.stepDelay = d }
}

// New registers a surface per visualization on reg and builds each visual.
func New(reg *surface.Registry, sched schedule.Scheduler, opts ...Option) (*Gallery, error) {
	g := &Gallery{registry: reg, sched: sched, names: visuals.Names()}
	for _, opt := range opts {
		opt(g)
	}

	for _, name := range g.names {
		v, err := visuals.New(name)
		if err != nil {
			return nil, fmt.Errorf("build gallery: %w", err)
		}
		if d, ok := v.(interface{ SetDelay(time.Duration) }); ok && g.stepDelay > 0 {
			d.SetDelay(g.stepDelay)
		}
		reg.Register(name)
		s, err := reg.Surface(name)
		if err != nil {
			return nil, fmt.Errorf("build gallery: %w", err)
		}
		g.panes = append(g.panes, &Pane{Visual: v, Surface: s, Kind: visuals.KindOf(v)})
	}
	return g, nil
}

func (g *Gallery) Panes() []*Pane { return g.panes }

func (g *Gallery) Pane(name string) (*Pane, error) {
	for _, p := range g.panes {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", visuals.ErrUnknown, name)
}

func (g *Gallery) Running() bool { return g.running }

// Start draws every pane once and schedules the animated ones.
func (g *Gallery) Start() error {
	if g.running {
		return ErrRunning
	}
	g.running = true
	for _, p := range g.panes {
		g.start(p)
	}
	return nil
}

func (g *Gallery) start(p *Pane) {
	switch v := p.Visual.(type) {
	case visuals.Stepper:
		v.Draw(p.Surface)
		p.task = g.tasks.Add(schedule.Stepped(g.sched, v.Delay, func() bool {
			if !v.Step() {
				return false
			}
			v.Draw(p.Surface)
			return true
		}))
	case visuals.Animated:
		frame := func() {
			v.Draw(p.Surface)
			v.Advance()
		}
		frame()
		p.task = g.tasks.Add(schedule.Every(g.sched, frame))
	default:
		v.Draw(p.Surface)
	}
}

// Resize resizes every surface, then redraws the one-shot and stepped
// panes. Continuous panes pick the new size up on their next frame.
func (g *Gallery) Resize(w, h int) {
	g.registry.Resize(w, h)
	if !g.running {
		return
	}
	for _, p := range g.panes {
		if p.Kind != visuals.Continuous {
			p.Visual.Draw(p.Surface)
		}
	}
}

// Attach makes r drive Resize.
func (g *Gallery) Attach(r *schedule.Resizer) {
	r.Subscribe(g.Resize)
}

// Stop cancels every scheduled pane.
func (g *Gallery) Stop() {
	g.tasks.Stop()
	g.running = false
}

// Restart stops the gallery, resets every visual and starts again.
func (g *Gallery) Restart() error {
	g.Stop()
	for _, p := range g.panes {
		if r, ok := p.Visual.(visuals.Resetter); ok {
			r.Reset()
		}
	}
	return g.Start()
}
