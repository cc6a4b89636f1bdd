package main

import (
	"fmt"
	"log"
	"os"

	"github.com/san-kum/mathviz/internal/compute"
	"github.com/san-kum/mathviz/internal/config"
	"github.com/san-kum/mathviz/internal/gui"
	"github.com/san-kum/mathviz/internal/tui"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	width      int
	height     int
	outDir     string
	workers    int
	fps        int
	theme      string
)

// main registers the commands and runs the terminal gallery when no
// subcommand is given. Errors are logged and exit with status 1.
func main() {
	log.SetFlags(0)
	log.SetPrefix("mathviz: ")

	rootCmd := &cobra.Command{
		Use:           "mathviz",
		Short:         "mathematical visualization gallery",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "surface size preset (see presets)")
	pf.IntVar(&width, "width", config.DefaultWidth, "surface width in pixels")
	pf.IntVar(&height, "height", config.DefaultHeight, "surface height in pixels")
	pf.StringVar(&outDir, "out", config.DefaultOutputDir, "output directory")
	pf.IntVar(&workers, "workers", 0, "mandelbrot worker count (0 = all CPUs)")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "terminal theme")

	tuiCmd := &cobra.Command{
		Use:   "tui [visual]",
		Short: "terminal gallery",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTUI,
	}

	guiCmd := &cobra.Command{
		Use:   "gui [visual...]",
		Short: "windowed gallery",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			names := args
			if len(names) == 0 {
				names = cfg.Visuals
			}
			return gui.Run(gui.Options{
				Width:     cfg.Width,
				Height:    cfg.Height,
				FPS:       cfg.FPS,
				StepDelay: cfg.SieveDelay(),
				OutputDir: cfg.Output.Dir,
				Visuals:   names,
			})
		},
	}

	rootCmd.AddCommand(tuiCmd, guiCmd, playCmd(), renderCmd(), animateCmd(),
		plotCmd(), primesCmd(), goldbachCmd(), fibCmd(), listCmd(), presetsCmd(), initConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

// loadConfig merges defaults, the config file, the preset and explicit
// flags, in that order of increasing precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, fmt.Errorf("%w (available: %v)", err, config.ListPresets())
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("out") {
		cfg.Output.Dir = outDir
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Workers > 0 {
		compute.SetBackend(compute.NewCPUBackendN(cfg.Workers))
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts := tui.Options{
		FPS:       cfg.FPS,
		StepDelay: cfg.SieveDelay(),
		Theme:     cfg.Theme,
		OutputDir: cfg.Output.Dir,
		AltScreen: true,
	}
	if len(args) > 0 {
		opts.Visual = args[0]
	}
	return tui.Run(opts)
}
