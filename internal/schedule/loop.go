package schedule

import (
	"context"
	"time"
)

const DefaultFPS = 60

// Loop drives a Manual clock from wall time, one frame per tick.
type Loop struct {
	*Manual
	interval time.Duration
}

func NewLoop(fps int) *Loop {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Loop{Manual: NewManual(), interval: time.Second / time.Duration(fps)}
}

func (l *Loop) Interval() time.Duration { return l.interval }

// Run ticks until ctx is done and returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			l.Tick(now.Sub(last))
			last = now
		}
	}
}
