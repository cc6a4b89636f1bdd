package schedule_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mathviz/internal/schedule"
)

var _ = Describe("Manual", func() {
	var clock *schedule.Manual

	BeforeEach(func() {
		clock = schedule.NewManual()
	})

	Describe("RequestFrame", func() {
		It("runs the callback once on the next frame", func() {
			calls := 0
			clock.RequestFrame(func() { calls++ })
			Expect(calls).To(Equal(0))

			Expect(clock.Frame()).To(Equal(1))
			Expect(calls).To(Equal(1))

			clock.Frame()
			Expect(calls).To(Equal(1))
		})

		It("defers callbacks requested during a frame", func() {
			var order []string
			clock.RequestFrame(func() {
				order = append(order, "a")
				clock.RequestFrame(func() { order = append(order, "b") })
			})
			clock.Frame()
			Expect(order).To(Equal([]string{"a"}))
			clock.Frame()
			Expect(order).To(Equal([]string{"a", "b"}))
		})

		It("skips stopped tasks", func() {
			called := false
			task := clock.RequestFrame(func() { called = true })
			task.Stop()
			Expect(clock.Frame()).To(Equal(0))
			Expect(called).To(BeFalse())
		})
	})

	Describe("After", func() {
		It("waits for at least the delay", func() {
			fired := false
			clock.After(500*time.Millisecond, func() { fired = true })

			clock.Advance(499 * time.Millisecond)
			Expect(fired).To(BeFalse())
			clock.Advance(time.Millisecond)
			Expect(fired).To(BeTrue())
			Expect(clock.Now()).To(Equal(500 * time.Millisecond))
		})

		It("fires in deadline order and then scheduling order", func() {
			var order []int
			clock.After(20*time.Millisecond, func() { order = append(order, 3) })
			clock.After(10*time.Millisecond, func() { order = append(order, 1) })
			clock.After(10*time.Millisecond, func() { order = append(order, 2) })

			Expect(clock.Advance(time.Second)).To(Equal(3))
			Expect(order).To(Equal([]int{1, 2, 3}))
		})

		It("runs chained timers that fall inside the same advance", func() {
			var at []time.Duration
			clock.After(10*time.Millisecond, func() {
				at = append(at, clock.Now())
				clock.After(10*time.Millisecond, func() { at = append(at, clock.Now()) })
			})
			clock.Advance(25 * time.Millisecond)
			Expect(at).To(Equal([]time.Duration{10 * time.Millisecond, 20 * time.Millisecond}))
			Expect(clock.Now()).To(Equal(25 * time.Millisecond))
		})

		It("treats negative delays as zero", func() {
			fired := false
			clock.After(-time.Second, func() { fired = true })
			clock.Advance(0)
			Expect(fired).To(BeTrue())
		})
	})

	It("counts frames and pending work", func() {
		clock.RequestFrame(func() {})
		stopped := clock.After(time.Second, func() {})
		clock.After(time.Second, func() {})
		stopped.Stop()
		Expect(clock.Pending()).To(Equal(2))

		clock.Tick(time.Second)
		Expect(clock.Frames()).To(Equal(1))
		Expect(clock.Pending()).To(Equal(0))
	})
})

var _ = Describe("Every", func() {
	It("runs once per frame until stopped", func() {
		clock := schedule.NewManual()
		n := 0
		task := schedule.Every(clock, func() { n++ })

		for range 5 {
			clock.Frame()
		}
		Expect(n).To(Equal(5))

		task.Stop()
		clock.Frame()
		clock.Frame()
		Expect(n).To(Equal(5))
		Expect(clock.Pending()).To(Equal(0))
	})

	It("can stop itself from inside the callback", func() {
		clock := schedule.NewManual()
		n := 0
		var task *schedule.Task
		task = schedule.Every(clock, func() {
			n++
			if n == 3 {
				task.Stop()
			}
		})
		for range 10 {
			clock.Frame()
		}
		Expect(n).To(Equal(3))
	})
})

var _ = Describe("Stepped", func() {
	const delay = 500 * time.Millisecond

	It("waits the delay and then a frame before each step", func() {
		clock := schedule.NewManual()
		steps := 0
		schedule.Stepped(clock, func() time.Duration { return delay }, func() bool {
			steps++
			return true
		})

		clock.Frame()
		Expect(steps).To(Equal(0))

		clock.Advance(delay)
		Expect(steps).To(Equal(0))
		clock.Frame()
		Expect(steps).To(Equal(1))

		clock.Frame()
		Expect(steps).To(Equal(1))
		clock.Tick(delay)
		Expect(steps).To(Equal(2))
	})

	It("stops by itself once the step reports false", func() {
		clock := schedule.NewManual()
		steps := 0
		task := schedule.Stepped(clock, func() time.Duration { return delay }, func() bool {
			steps++
			return steps < 3
		})

		for range 10 {
			clock.Tick(delay)
		}
		Expect(steps).To(Equal(3))
		Expect(task.Stopped()).To(BeTrue())
		Expect(clock.Pending()).To(Equal(0))
	})

	It("does not step after an external stop", func() {
		clock := schedule.NewManual()
		steps := 0
		task := schedule.Stepped(clock, func() time.Duration { return delay }, func() bool {
			steps++
			return true
		})
		clock.Advance(delay)
		task.Stop()
		clock.Frame()
		Expect(steps).To(Equal(0))
	})
})

var _ = Describe("Group", func() {
	It("stops every task it holds", func() {
		clock := schedule.NewManual()
		var g schedule.Group
		a, b := 0, 0
		g.Add(schedule.Every(clock, func() { a++ }))
		g.Add(schedule.Every(clock, func() { b++ }))
		Expect(g.Len()).To(Equal(2))

		clock.Frame()
		g.Stop()
		clock.Frame()
		Expect(a).To(Equal(1))
		Expect(b).To(Equal(1))
		Expect(g.Len()).To(Equal(0))
	})
})

var _ = Describe("Loop", func() {
	It("defaults non-positive rates", func() {
		Expect(schedule.NewLoop(0).Interval()).To(Equal(time.Second / schedule.DefaultFPS))
		Expect(schedule.NewLoop(50).Interval()).To(Equal(20 * time.Millisecond))
	})

	It("runs frames until the context ends", func() {
		loop := schedule.NewLoop(200)
		frames := make(chan struct{}, 100)
		schedule.Every(loop, func() {
			select {
			case frames <- struct{}{}:
			default:
			}
		})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- loop.Run(ctx) }()

		Eventually(frames).Should(Receive())
		cancel()
		Eventually(done).Should(Receive(MatchError(context.Canceled)))
	})
})

var _ = Describe("Resizer", func() {
	It("notifies subscribers only on change", func() {
		r := schedule.NewResizer(800, 600)
		var seen [][2]int
		r.Subscribe(func(w, h int) { seen = append(seen, [2]int{w, h}) })

		Expect(r.Notify(800, 600)).To(BeFalse())
		Expect(r.Notify(1024, 768)).To(BeTrue())
		Expect(seen).To(Equal([][2]int{{1024, 768}}))

		w, h := r.Size()
		Expect(w).To(Equal(1024))
		Expect(h).To(Equal(768))
	})
})
