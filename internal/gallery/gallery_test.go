package gallery_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mathviz/internal/gallery"
	"github.com/san-kum/mathviz/internal/primes"
	"github.com/san-kum/mathviz/internal/schedule"
	"github.com/san-kum/mathviz/internal/surface"
	"github.com/san-kum/mathviz/internal/visuals"
)

func recorders(w, h int) *surface.Registry {
	return surface.NewRegistry(w, h, func(w, h int) surface.Surface {
		return surface.NewRecorder(w, h)
	})
}

func recorderOf(g *gallery.Gallery, name string) *surface.Recorder {
	p, err := g.Pane(name)
	Expect(err).NotTo(HaveOccurred())
	return p.Surface.(*surface.Recorder)
}

var _ = Describe("Gallery", func() {
	var (
		reg   *surface.Registry
		clock *schedule.Manual
		g     *gallery.Gallery
	)

	BeforeEach(func() {
		reg = recorders(400, 300)
		clock = schedule.NewManual()
		var err error
		g, err = gallery.New(reg, clock)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		g.Stop()
	})

	Describe("New", func() {
		It("gives every visualization its own surface", func() {
			Expect(reg.Names()).To(Equal(visuals.Names()))
			Expect(g.Panes()).To(HaveLen(8))
		})

		It("classifies panes", func() {
			kinds := map[string]visuals.Kind{}
			for _, p := range g.Panes() {
				kinds[p.Name()] = p.Kind
			}
			Expect(kinds).To(HaveKeyWithValue("mandelbrot", visuals.OneShot))
			Expect(kinds).To(HaveKeyWithValue("lissajous", visuals.Continuous))
			Expect(kinds).To(HaveKeyWithValue("sieve", visuals.Stepped))
		})

		It("honours a visual filter", func() {
			g, err := gallery.New(recorders(10, 10), clock, gallery.WithVisuals("ulam", "wave"))
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Panes()).To(HaveLen(2))
			Expect(g.Panes()[0].Name()).To(Equal("ulam"))
		})

		It("builds one pane per distinct name", func() {
			reg := recorders(10, 10)
			g, err := gallery.New(reg, clock, gallery.WithVisuals("ulam", "wave", "ulam"))
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Panes()).To(HaveLen(2))
			Expect(reg.Names()).To(Equal([]string{"ulam", "wave"}))
			Expect(g.Panes()[0].Surface).NotTo(BeIdenticalTo(g.Panes()[1].Surface))
		})

		It("rejects unknown visuals", func() {
			_, err := gallery.New(recorders(10, 10), clock, gallery.WithVisuals("julia"))
			Expect(err).To(MatchError(visuals.ErrUnknown))
		})

		It("reports unknown panes", func() {
			_, err := g.Pane("julia")
			Expect(err).To(MatchError(visuals.ErrUnknown))
		})
	})

	Describe("Start", func() {
		BeforeEach(func() {
			Expect(g.Start()).To(Succeed())
		})

		It("draws every pane immediately", func() {
			for _, p := range g.Panes() {
				Expect(p.Surface.(*surface.Recorder).Ops()).NotTo(BeEmpty(), p.Name())
			}
		})

		It("refuses to start twice", func() {
			Expect(g.Start()).To(MatchError(gallery.ErrRunning))
		})

		It("draws one-shot panes once", func() {
			rec := recorderOf(g, "ulam")
			n := len(rec.Ops())
			Expect(rec.Count(surface.OpFillRect)).To(Equal(primes.Count(visuals.UlamMax)))

			for range 5 {
				clock.Tick(visuals.SieveDelay)
			}
			Expect(rec.Ops()).To(HaveLen(n))
		})

		It("advances continuous panes once per frame", func() {
			p, _ := g.Pane("wave")
			wave := p.Visual.(*visuals.Wave)
			Expect(wave.State.Time).To(BeNumerically("~", visuals.WaveTimeStep, 1e-12))

			clock.Frame()
			clock.Frame()
			Expect(wave.State.Time).To(BeNumerically("~", 3*visuals.WaveTimeStep, 1e-12))
			Expect(p.Active()).To(BeTrue())
		})

		It("steps the sieve only after its delay", func() {
			p, _ := g.Pane("sieve")
			sieve := p.Visual.(*visuals.Sieve)
			Expect(sieve.Current).To(Equal(2))

			clock.Frame()
			Expect(sieve.Current).To(Equal(2))

			clock.Advance(visuals.SieveDelay)
			clock.Frame()
			Expect(sieve.Current).To(Equal(3))
		})

		It("lets the sieve finish and stop scheduling", func() {
			p, _ := g.Pane("sieve")
			sieve := p.Visual.(*visuals.Sieve)
			for range 20 {
				clock.Tick(visuals.SieveDelay)
			}
			Expect(sieve.Done()).To(BeTrue())
			Expect(p.Active()).To(BeFalse())
			for n := 2; n <= visuals.SieveMax; n++ {
				Expect(sieve.Candidate[n]).To(Equal(primes.IsPrime(n)), "n=%d", n)
			}
		})
	})

	Describe("Stop", func() {
		It("cancels every loop", func() {
			Expect(g.Start()).To(Succeed())
			p, _ := g.Pane("lissajous")
			liss := p.Visual.(*visuals.Lissajous)
			phase := liss.Phase

			g.Stop()
			Expect(g.Running()).To(BeFalse())
			for range 3 {
				clock.Tick(visuals.SieveDelay)
			}
			Expect(liss.Phase).To(Equal(phase))
			Expect(clock.Pending()).To(Equal(0))
		})

		It("can restart from the initial state", func() {
			Expect(g.Start()).To(Succeed())
			clock.Tick(visuals.SieveDelay)
			Expect(g.Restart()).To(Succeed())

			p, _ := g.Pane("sieve")
			Expect(p.Visual.(*visuals.Sieve).Current).To(Equal(2))
			p, _ = g.Pane("wave")
			Expect(p.Visual.(*visuals.Wave).State.Time).To(BeNumerically("~", visuals.WaveTimeStep, 1e-12))
		})
	})

	Describe("Resize", func() {
		It("resizes every surface and redraws one-shot panes", func() {
			Expect(g.Start()).To(Succeed())
			r := schedule.NewResizer(400, 300)
			g.Attach(r)

			Expect(r.Notify(200, 200)).To(BeTrue())
			w, h := reg.Size()
			Expect([]int{w, h}).To(Equal([]int{200, 200}))

			mandel := recorderOf(g, "mandelbrot")
			Expect(mandel.Count(surface.OpFillRect)).To(Equal(200 * 200))

			sieve := recorderOf(g, "sieve")
			Expect(sieve.Count(surface.OpText)).To(Equal(visuals.SieveMax))

			wave := recorderOf(g, "wave")
			Expect(wave.Ops()).To(BeEmpty())
			clock.Frame()
			Expect(wave.Ops()).NotTo(BeEmpty())
		})

		It("only resizes a gallery that is not running", func() {
			g.Resize(50, 50)
			Expect(recorderOf(g, "fractal").Ops()).To(BeEmpty())
			w, _ := recorderOf(g, "fractal").Size()
			Expect(w).To(Equal(50))
		})

		It("turns a zero-size surface into a no-op", func() {
			Expect(g.Start()).To(Succeed())
			g.Resize(0, 0)
			clock.Frame()
			for _, p := range g.Panes() {
				Expect(p.Surface.(*surface.Recorder).Ops()).To(BeEmpty(), p.Name())
			}
		})
	})
})
