package schedule

import (
	"sort"
	"sync"
	"time"
)

type entry struct {
	task *Task
	fn   func()
	due  time.Duration
	seq  uint64
}

// Manual is a Scheduler whose time only moves when Advance is called and
// whose frames only happen when Frame is called. It is safe to schedule
// from any goroutine; callbacks run on the caller of Advance or Frame.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	frames []entry
	timers []entry
	count  int
}

func NewManual() *Manual { return &Manual{} }

func (m *Manual) RequestFrame(fn func()) *Task {
	t := &Task{}
	m.mu.Lock()
	m.seq++
	m.frames = append(m.frames, entry{task: t, fn: fn, seq: m.seq})
	m.mu.Unlock()
	return t
}

func (m *Manual) After(d time.Duration, fn func()) *Task {
	if d < 0 {
		d = 0
	}
	t := &Task{}
	m.mu.Lock()
	m.seq++
	m.timers = append(m.timers, entry{task: t, fn: fn, due: m.now + d, seq: m.seq})
	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].due != m.timers[j].due {
			return m.timers[i].due < m.timers[j].due
		}
		return m.timers[i].seq < m.timers[j].seq
	})
	m.mu.Unlock()
	return t
}

// Now is the time elapsed since the clock was created.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Frames counts the frames run so far.
func (m *Manual) Frames() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

// Pending counts queued callbacks whose tasks are not stopped.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.frames {
		if !e.task.Stopped() {
			n++
		}
	}
	for _, e := range m.timers {
		if !e.task.Stopped() {
			n++
		}
	}
	return n
}

// Frame runs the callbacks requested before the call. Callbacks requested
// while the frame runs wait for the next one. It returns how many ran.
func (m *Manual) Frame() int {
	m.mu.Lock()
	queued := m.frames
	m.frames = nil
	m.count++
	m.mu.Unlock()

	ran := 0
	for _, e := range queued {
		if e.task.Stopped() {
			continue
		}
		e.task.Stop()
		e.fn()
		ran++
	}
	return ran
}

// Advance moves the clock forward by d, firing due timers in deadline
// order. Timers scheduled by a firing timer run in the same call when
// they fall due within d.
func (m *Manual) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	ran := 0
	for {
		m.mu.Lock()
		if len(m.timers) == 0 || m.timers[0].due > target {
			m.now = target
			m.mu.Unlock()
			return ran
		}
		e := m.timers[0]
		m.timers = m.timers[1:]
		m.now = e.due
		m.mu.Unlock()

		if e.task.Stopped() {
			continue
		}
		e.task.Stop()
		e.fn()
		ran++
	}
}

// Tick advances the clock by d and then runs one frame.
func (m *Manual) Tick(d time.Duration) {
	m.Advance(d)
	m.Frame()
}
