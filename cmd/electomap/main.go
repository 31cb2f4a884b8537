// Package main provides the CLI entry point for electomap.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/okondo/electomap/pkg/electomap"
)

var (
	outDir        string
	fontPath      string
	frameDuration time.Duration
	keepFrames    bool
	states        []string
	quiet         bool
)

func main() {
	defaults := electomap.DefaultOptions()

	rootCmd := &cobra.Command{
		Use:   "electomap [results.xlsx] [boundaries.geojson]",
		Short: "Render per-state electoral result animations",
		Long: `electomap turns a results spreadsheet and a GeoJSON boundary file into one
looping GIF per state: a choropleth map plus a stacked bar chart for every
election year, composited into captioned frames.`,
		Args: cobra.ExactArgs(2),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outDir, "out-dir", "o", ".", "Directory for the output animations")
	rootCmd.Flags().StringVar(&fontPath, "font", "", "TTF/OTF font for captions and chart text")
	rootCmd.Flags().DurationVar(&frameDuration, "frame-duration", defaults.FrameDuration, "Display time per animation frame")
	rootCmd.Flags().BoolVar(&keepFrames, "keep-frames", false, "Also write each composed frame as a PNG")
	rootCmd.Flags().StringSliceVar(&states, "states", defaults.States, "States to render, in order")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	dataPath, geoPath := args[0], args[1]
	for _, path := range []string{dataPath, geoPath} {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", path)
		}
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	opts := electomap.DefaultOptions()
	opts.OutDir = outDir
	opts.FontPath = fontPath
	opts.FrameDuration = frameDuration
	opts.KeepFrames = keepFrames
	opts.States = states

	if !quiet {
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
		bar := progressbar.Default(int64(opts.FrameCount()), "rendering frames")
		opts.Progress = func() { bar.Add(1) }
	}

	start := time.Now()
	if err := electomap.Run(dataPath, geoPath, opts); err != nil {
		return err
	}
	if !quiet {
		opts.Logger.Info("all states done", "elapsed", time.Since(start).Round(time.Millisecond))
	}
	return nil
}
