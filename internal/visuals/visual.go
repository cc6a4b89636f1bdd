package visuals

import (
	"errors"
	"fmt"
	"time"

	"github.com/san-kum/mathviz/internal/surface"
)

// ErrUnknown is returned for a name that isn't in the registry.
var ErrUnknown = errors.New("visuals: unknown visualization")

// Visual draws its current state onto a surface. Draw never fails; it does
// nothing when the surface has no area.
type Visual interface {
	Name() string
	Draw(s surface.Surface)
}

// Animated visuals redraw every frame, then advance their own clock.
type Animated interface {
	Visual
	Advance()
}

// Stepper visuals advance one step per Delay until Step reports false.
type Stepper interface {
	Visual
	Step() bool
	Delay() time.Duration
}

// Resetter visuals can return to their initial state.
type Resetter interface {
	Reset()
}

// Kind is how a visual is scheduled.
type Kind int

const (
	OneShot Kind = iota
	Continuous
	Stepped
)

func (k Kind) String() string {
	switch k {
	case OneShot:
		return "one-shot"
	case Continuous:
		return "continuous"
	case Stepped:
		return "stepped"
	}
	return "unknown"
}

// KindOf classifies v by the interfaces it implements.
func KindOf(v Visual) Kind {
	switch v.(type) {
	case Stepper:
		return Stepped
	case Animated:
		return Continuous
	}
	return OneShot
}

// Info describes a registered visualization and builds fresh instances.
type Info struct {
	Name        string
	Title       string
	Description string
	New         func() Visual
}

var registry = []Info{
	{"fractal", "Fractal Tree", "recursive triangle subdivision", func() Visual { return NewFractal() }},
	{"wave", "Sine Wave", "travelling sine wave", func() Visual { return NewWave() }},
	{"mandelbrot", "Mandelbrot Set", "escape-time iteration", func() Visual { return NewMandelbrot() }},
	{"lissajous", "Lissajous Curve", "3:2 parametric figure", func() Visual { return NewLissajous() }},
	{"ulam", "Ulam Spiral", "primes on a square spiral", func() Visual { return NewUlam() }},
	{"sieve", "Sieve of Eratosthenes", "composite elimination", func() Visual { return NewSieve(SieveMax) }},
	{"goldbach", "Goldbach Conjecture", "prime pairs of even numbers", func() Visual { return NewGoldbach() }},
	{"fibonacci", "Fibonacci Spiral", "squares sized by the sequence", func() Visual { return NewFibonacci() }},
}

// Names lists every visualization in drawing order.
func Names() []string {
	names := make([]string, len(registry))
	for i, info := range registry {
		names[i] = info.Name
	}
	return names
}

// Lookup finds the registry entry for name, or wraps ErrUnknown.
func Lookup(name string) (Info, error) {
	for _, info := range registry {
		if info.Name == name {
			return info, nil
		}
	}
	return Info{}, fmt.Errorf("%w: %s", ErrUnknown, name)
}

// New builds a visualization by name in its initial state.
func New(name string) (Visual, error) {
	info, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return info.New(), nil
}

// All builds a fresh instance of every visualization.
func All() []Visual {
	out := make([]Visual, len(registry))
	for i, info := range registry {
		out[i] = info.New()
	}
	return out
}

func wipe(s surface.Surface) {
	w, h := s.Size()
	s.ClearRect(0, 0, float64(w), float64(h))
}
