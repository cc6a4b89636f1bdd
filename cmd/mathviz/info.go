package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mathviz/internal/analysis"
	"github.com/san-kum/mathviz/internal/config"
	"github.com/san-kum/mathviz/internal/primes"
	"github.com/san-kum/mathviz/internal/visuals"
	"github.com/spf13/cobra"
)

func intArg(args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", args[0], err)
	}
	return n, nil
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list visualizations",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTITLE\tKIND\tDESCRIPTION")
			for _, v := range visuals.All() {
				info, _ := visuals.Lookup(v.Name())
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Name, info.Title, visuals.KindOf(v), info.Description)
			}
			return w.Flush()
		},
	}
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list surface size presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tNOTE")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%dx%d\t%s\n", name, p.Width, p.Height, p.Note)
			}
			return w.Flush()
		},
	}
}

func initConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "mathviz.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
}

func primesCmd() *cobra.Command {
	var sieve bool
	cmd := &cobra.Command{
		Use:   "primes [n]",
		Short: "list primes up to n (default 200)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := intArg(args, visuals.SieveMax)
			if err != nil {
				return err
			}
			var ps []int
			if sieve {
				s := visuals.NewSieve(n)
				steps := s.Run()
				ps = s.Primes()
				fmt.Printf("sieve finished after %d steps (base %d)\n", steps, s.Current-1)
			} else {
				ps = primes.Upto(n)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', tabwriter.AlignRight)
			for i, p := range ps {
				fmt.Fprintf(w, "%d\t", p)
				if (i+1)%visuals.SieveColumns == 0 {
					fmt.Fprintln(w)
				}
			}
			if len(ps)%visuals.SieveColumns != 0 {
				fmt.Fprintln(w)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("π(%d) = %d\n", n, len(ps))
			return nil
		},
	}
	cmd.Flags().BoolVar(&sieve, "sieve", false, "use the step-by-step sieve instead of trial division")
	return cmd
}

func goldbachCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goldbach [n]",
		Short: "prime pairs of an even number, or of every even number up to 100",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				n, err := intArg(args, 0)
				if err != nil {
					return err
				}
				if n < 4 || n%2 != 0 {
					return fmt.Errorf("goldbach: %d is not an even number >= 4", n)
				}
				printPairs(n, primes.Pairs(n))
				return nil
			}
			for n := 4; n <= visuals.GoldbachMax; n += 2 {
				printPairs(n, primes.Pairs(n))
			}
			return nil
		},
	}
}

func printPairs(n int, pairs []primes.Pair) {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("%d+%d", p.P, p.Q)
	}
	fmt.Printf("%4d  %s\n", n, strings.Join(parts, "  "))
}

func fibCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fib [m]",
		Short: "first m Fibonacci numbers (default 20)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := intArg(args, visuals.FibonacciCount)
			if err != nil {
				return err
			}
			if m > visuals.FibonacciLimit {
				return fmt.Errorf("fib: m must be at most %d, got %d", visuals.FibonacciLimit, m)
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "I\tF(I)")
			for i, f := range visuals.Fibonacci(m) {
				fmt.Fprintf(w, "%d\t%d\n", i, f)
			}
			return w.Flush()
		},
	}
}

func plotCmd() *cobra.Command {
	var n int
	var t float64
	var spectrum bool
	cmd := &cobra.Command{
		Use:   "plot [series]",
		Short: "ascii plot of wave, lissajous, goldbach, primes, fib or escape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, caption, err := series(args[0], n, t)
			if err != nil {
				return err
			}
			if len(data) == 0 {
				return fmt.Errorf("series %q is empty", args[0])
			}
			if spectrum {
				data = analysis.Spectrum(data)
				if len(data) == 0 {
					return fmt.Errorf("series %q too short for a spectrum", args[0])
				}
				caption = fmt.Sprintf("|DFT| of %s, peak at bin %d", caption, analysis.Peak(data))
			}
			graph := asciigraph.Plot(data,
				asciigraph.Height(15),
				asciigraph.Width(80),
				asciigraph.Caption(caption),
			)
			fmt.Println(graph)
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 0, "series length (0 = the visual's default)")
	cmd.Flags().Float64Var(&t, "t", 0, "time or phase for wave and lissajous")
	cmd.Flags().BoolVar(&spectrum, "spectrum", false, "plot the magnitude spectrum instead of the series")
	return cmd
}

func series(name string, n int, t float64) ([]float64, string, error) {
	switch name {
	case "wave":
		n = orDefault(n, config.DefaultWidth)
		pts := visuals.WavePoints(n, 2*int(visuals.WaveAmplitude), t)
		data := make([]float64, len(pts))
		for i, p := range pts {
			data[i] = visuals.WaveAmplitude - p.Y
		}
		return data, fmt.Sprintf("wave at t=%.2f", t), nil
	case "lissajous":
		pts := visuals.LissajousPoints(0, 0, 1, t)
		data := make([]float64, len(pts))
		for i, p := range pts {
			data[i] = p.X
		}
		return data, fmt.Sprintf("lissajous x(t), phase %.2f", t), nil
	case "goldbach":
		n = orDefault(n, visuals.GoldbachMax)
		if n < 4 {
			return nil, "", fmt.Errorf("goldbach: n must be at least 4, got %d", n)
		}
		counts := primes.PairCounts(n)
		var data []float64
		for m := 4; m <= n; m += 2 {
			data = append(data, float64(counts[m]))
		}
		return data, fmt.Sprintf("goldbach pairs of 4..%d", n), nil
	case "primes":
		n = orDefault(n, visuals.UlamMax)
		data := make([]float64, n+1)
		count := 0
		for i := range data {
			if primes.IsPrime(i) {
				count++
			}
			data[i] = float64(count)
		}
		return data, fmt.Sprintf("π(n) for n <= %d", n), nil
	case "fib":
		n = orDefault(n, visuals.FibonacciCount)
		if n > visuals.FibonacciLimit {
			return nil, "", fmt.Errorf("fib: n must be at most %d, got %d", visuals.FibonacciLimit, n)
		}
		fib := visuals.Fibonacci(n)
		data := make([]float64, len(fib))
		for i, f := range fib {
			data[i] = float64(f)
		}
		return data, fmt.Sprintf("F(0..%d)", n-1), nil
	case "escape":
		n = orDefault(n, 200)
		data := make([]float64, n)
		for i := range data {
			cr := -2 + 2.5*float64(i)/float64(n)
			data[i] = float64(visuals.Escape(cr, 0, visuals.MandelbrotIterations))
		}
		return data, "escape time along the real axis, -2..0.5", nil
	}
	return nil, "", fmt.Errorf("unknown series %q", name)
}

func orDefault(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}
