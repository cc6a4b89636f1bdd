package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/san-kum/mathviz/internal/config"
	"github.com/san-kum/mathviz/internal/export"
	"github.com/san-kum/mathviz/internal/gallery"
	"github.com/san-kum/mathviz/internal/tui"
	"github.com/san-kum/mathviz/internal/visuals"
	"github.com/spf13/cobra"
)

func renderer(cfg *config.Config) export.Renderer {
	return export.Renderer{
		Width:         cfg.Width,
		Height:        cfg.Height,
		FrameInterval: time.Second / time.Duration(cfg.FPS),
		StepDelay:     cfg.SieveDelay(),
	}
}

func renderCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "render [visual...]",
		Short: "render still images (all visuals by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Output.Format = format
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			names := args
			if len(names) == 0 {
				names = cfg.Visuals
			}
			if len(names) == 0 {
				names = visuals.Names()
			}

			manifest, err := export.LoadManifest(cfg.Output.Dir)
			if err != nil {
				return err
			}
			r := renderer(cfg)
			for _, name := range names {
				file := name + "." + cfg.Output.Format
				start := time.Now()
				path, err := export.WriteFile(cfg.Output.Dir, file, func(w io.Writer) error {
					return r.Still(w, name, cfg.Output.Format)
				})
				if err != nil {
					return err
				}
				manifest.Add(export.Entry{
					Visual: name, File: file, Format: cfg.Output.Format,
					Width: cfg.Width, Height: cfg.Height, Rendered: time.Now().UTC(),
				})
				fmt.Printf("%-12s %s (%s)\n", name, path, time.Since(start).Round(time.Millisecond))
			}
			return manifest.Save(cfg.Output.Dir)
		},
	}
	cmd.Flags().StringVar(&format, "format", config.DefaultFormat, "output format: png or svg")
	return cmd
}

func animateCmd() *cobra.Command {
	var frames, delay int
	cmd := &cobra.Command{
		Use:   "animate [visual]",
		Short: "record an animated GIF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("frames") {
				cfg.GIF.Frames = frames
			}
			if cmd.Flags().Changed("delay") {
				cfg.GIF.DelayCS = delay
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			name := args[0]
			rec := export.NewGIFRecorder(cfg.GIF.DelayCS)
			n, err := renderer(cfg).Animate(rec, name, cfg.GIF.Frames)
			if err != nil {
				return err
			}

			file := name + ".gif"
			path, err := export.WriteFile(cfg.Output.Dir, file, rec.Encode)
			if err != nil {
				return err
			}

			manifest, err := export.LoadManifest(cfg.Output.Dir)
			if err != nil {
				return err
			}
			manifest.Add(export.Entry{
				Visual: name, File: file, Format: "gif", Width: cfg.Width, Height: cfg.Height,
				Frames: n, Rendered: time.Now().UTC(),
			})
			fmt.Printf("%s: %d frames -> %s\n", name, n, path)
			return manifest.Save(cfg.Output.Dir)
		},
	}
	cmd.Flags().IntVar(&frames, "frames", config.DefaultGIFFrames, "maximum frame count")
	cmd.Flags().IntVar(&delay, "delay", config.DefaultGIFDelayCS, "frame delay in 1/100 s")
	return cmd
}

func playCmd() *cobra.Command {
	var frames int
	var color bool
	cmd := &cobra.Command{
		Use:   "play [visual]",
		Short: "stream a visual to the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			p := &tui.Player{
				Out:    os.Stdout,
				Cols:   70,
				Rows:   20,
				FPS:    cfg.FPS,
				Frames: frames,
				Color:  color,
				Opts:   []gallery.Option{gallery.WithStepDelay(cfg.SieveDelay())},
			}
			err = p.Play(ctx, args[0])
			if ctx.Err() != nil {
				return nil
			}
			return err
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 0, "stop after this many frames (0 = until interrupted)")
	cmd.Flags().BoolVar(&color, "color", true, "colored output")
	return cmd
}
