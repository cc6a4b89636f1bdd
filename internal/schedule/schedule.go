// Package schedule provides the frame and delay primitives the gallery
// runs its visualizations on.
//
// A [Scheduler] queues callbacks for the next frame or after a minimum
// delay. [Manual] is a deterministic clock advanced by the caller and
// [Loop] drives one from a real ticker. Callbacks always run on the
// goroutine that advances the clock, never concurrently with each other.
package schedule

import (
	"sync/atomic"
	"time"
)

type Scheduler interface {
	// RequestFrame runs fn once, on the next frame.
	RequestFrame(fn func()) *Task
	// After runs fn once, no sooner than d from now.
	After(d time.Duration, fn func()) *Task
}

// Task is a handle to scheduled work. A stopped task never runs again.
type Task struct {
	stopped atomic.Bool
}

func (t *Task) Stop() {
	if t != nil {
		t.stopped.Store(true)
	}
}

func (t *Task) Stopped() bool {
	return t != nil && t.stopped.Load()
}

// Every runs fn once per frame until the returned task is stopped.
func Every(s Scheduler, fn func()) *Task {
	handle := &Task{}
	var frame func()
	frame = func() {
		if handle.Stopped() {
			return
		}
		fn()
		if !handle.Stopped() {
			s.RequestFrame(frame)
		}
	}
	s.RequestFrame(frame)
	return handle
}

// Stepped waits delay(), then runs fn on the following frame, and repeats
// for as long as fn returns true. The delay is read again before each wait.
func Stepped(s Scheduler, delay func() time.Duration, fn func() bool) *Task {
	handle := &Task{}
	var arm func()
	arm = func() {
		s.After(delay(), func() {
			if handle.Stopped() {
				return
			}
			s.RequestFrame(func() {
				if handle.Stopped() {
					return
				}
				if fn() && !handle.Stopped() {
					arm()
					return
				}
				handle.Stop()
			})
		})
	}
	arm()
	return handle
}

// Group stops a set of tasks together.
type Group struct {
	tasks []*Task
}

func (g *Group) Add(t *Task) *Task {
	g.tasks = append(g.tasks, t)
	return t
}

func (g *Group) Len() int { return len(g.tasks) }

func (g *Group) Stop() {
	for _, t := range g.tasks {
		t.Stop()
	}
	g.tasks = nil
}
