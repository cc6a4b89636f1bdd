package schedule

import "sync"

// Resizer fans viewport size changes out to its subscribers.
type Resizer struct {
	mu     sync.Mutex
	width  int
	height int
	subs   []func(w, h int)
}

func NewResizer(w, h int) *Resizer {
	return &Resizer{width: w, height: h}
}

func (r *Resizer) Subscribe(fn func(w, h int)) {
	r.mu.Lock()
	r.subs = append(r.subs, fn)
	r.mu.Unlock()
}

func (r *Resizer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

// Notify records the new size and calls every subscriber in order. It
// reports false, calling nobody, when the size did not change.
func (r *Resizer) Notify(w, h int) bool {
	r.mu.Lock()
	if w == r.width && h == r.height {
		r.mu.Unlock()
		return false
	}
	r.width, r.height = w, h
	subs := append([]func(int, int){}, r.subs...)
	r.mu.Unlock()

	for _, fn := range subs {
		fn(w, h)
	}
	return true
}
