package visuals

import (
	"math"
	"strconv"
	"time"

	"github.com/san-kum/mathviz/internal/palette"
	"github.com/san-kum/mathviz/internal/surface"
)

const (
	SieveMax     = 200
	SieveColumns = 20
	SieveDelay   = 500 * time.Millisecond
)

// Sieve reveals the Sieve of Eratosthenes one base number per step.
// Candidate[n] is false once n has been struck as a multiple; when the
// sieve is done it is true exactly for the primes in [2, Max].
type Sieve struct {
	Max       int
	Current   int
	Candidate []bool
	Interval  time.Duration
}

func NewSieve(max int) *Sieve {
	if max < 0 {
		max = 0
	}
	s := &Sieve{Max: max, Interval: SieveDelay}
	s.Reset()
	return s
}

func (s *Sieve) Name() string { return "sieve" }

func (s *Sieve) Reset() {
	s.Current = 2
	s.Candidate = make([]bool, s.Max+1)
	for i := range s.Candidate {
		s.Candidate[i] = true
	}
}

// Done reports whether no base number up to √Max is left.
func (s *Sieve) Done() bool { return s.Current*s.Current > s.Max }

// Step strikes the multiples of the current base, if it is still a
// candidate, and moves to the next one. It returns false without touching
// anything once the sieve is done.
func (s *Sieve) Step() bool {
	if s.Done() {
		return false
	}
	if s.Candidate[s.Current] {
		for i := s.Current * s.Current; i <= s.Max; i += s.Current {
			s.Candidate[i] = false
		}
	}
	s.Current++
	return true
}

// Run steps until done and returns the number of steps taken.
func (s *Sieve) Run() int {
	n := 0
	for s.Step() {
		n++
	}
	return n
}

// SetDelay changes the pause between steps; non-positive values restore
// SieveDelay.
func (s *Sieve) SetDelay(d time.Duration) { s.Interval = d }

func (s *Sieve) Delay() time.Duration {
	if s.Interval <= 0 {
		return SieveDelay
	}
	return s.Interval
}

// Primes lists the numbers still marked as candidates from 2 upwards.
func (s *Sieve) Primes() []int {
	out := make([]int, 0)
	for n := 2; n <= s.Max; n++ {
		if s.Candidate[n] {
			out = append(out, n)
		}
	}
	return out
}

func (s *Sieve) Draw(surf surface.Surface) {
	if !surface.Usable(surf) {
		return
	}
	w, h := surf.Size()
	cell := math.Min(float64(w), float64(h)) / SieveColumns

	wipe(surf)
	surf.SetFontSize(cell * 0.6)
	surf.SetTextAlign(surface.AlignCenter)
	for i := 1; i <= s.Max; i++ {
		row := float64((i - 1) / SieveColumns)
		col := float64((i - 1) % SieveColumns)

		switch {
		case !s.Candidate[i]:
			surf.SetFillColor(palette.Charcoal)
		case i == s.Current:
			surf.SetFillColor(palette.Pink)
		default:
			surf.SetFillColor(palette.Green)
		}
		surf.FillRect(col*cell, row*cell, cell-1, cell-1)

		surf.SetFillColor(palette.White)
		surf.FillText(strconv.Itoa(i), col*cell+cell/2, row*cell+cell/2)
	}
}
