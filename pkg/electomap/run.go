package electomap

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/okondo/electomap/pkg/electomap/compose"
	"github.com/okondo/electomap/pkg/electomap/parser"
	"github.com/okondo/electomap/pkg/electomap/render"
)

const (
	captionSize = 45
	labelSize   = 24
)

// captionAt is the fixed screen offset of the "{state}, {year}" caption on
// each composed frame.
var captionAt = image.Pt(1100, 50)

// Run executes the whole pipeline: load the boundary collection and results
// table once, then for every configured state filter and classify its rows,
// derive its percentage series, render one map and one chart per year,
// composite them into a captioned frame, and encode the state's frames as
// {state}.gif in the output directory. Fail-fast: the first error aborts
// the run.
func Run(dataPath, geoPath string, opts Options) error {
	log := opts.logger()

	boundaries, err := render.LoadBoundaries(geoPath)
	if err != nil {
		return fmt.Errorf("load boundaries: %w", err)
	}
	table, err := parser.LoadTable(dataPath)
	if err != nil {
		return fmt.Errorf("load results table: %w", err)
	}
	captionFace, err := compose.LoadFace(opts.FontPath, captionSize)
	if err != nil {
		return fmt.Errorf("load caption font: %w", err)
	}
	labelFace, err := compose.LoadFace(opts.FontPath, labelSize)
	if err != nil {
		return fmt.Errorf("load label font: %w", err)
	}
	caption := compose.TextStyle{Face: captionFace, Color: color.Black}

	for _, state := range opts.States {
		colored, err := parser.FilterState(table, state, opts.Palette)
		if err != nil {
			return stageErr(state, 0, "filter", err)
		}
		series, err := parser.StateResults(table, state)
		if err != nil {
			return stageErr(state, 0, "series", err)
		}

		frames := make([]image.Image, 0, len(opts.Years))
		for _, year := range opts.Years {
			mapImg, err := render.MapImage(boundaries, colored, year)
			if err != nil {
				return stageErr(state, year, "map", err)
			}
			highlight := series.YearIndex(year)
			chartImg, err := render.ChartImage(series, highlight, labelFace)
			if err != nil {
				return stageErr(state, year, "chart", err)
			}

			frame := compose.Concat(mapImg, chartImg)
			compose.DrawText(frame, captionAt, fmt.Sprintf("%s, %d", state, year), caption)

			if opts.KeepFrames {
				name := filepath.Join(opts.OutDir, fmt.Sprintf("%s-%d.png", state, year))
				if err := writePNG(name, frame); err != nil {
					return stageErr(state, year, "compose", err)
				}
			}
			frames = append(frames, frame)
			if opts.Progress != nil {
				opts.Progress()
			}
		}

		out := filepath.Join(opts.OutDir, state+".gif")
		if err := writeGIF(out, frames, opts); err != nil {
			return stageErr(state, 0, "encode", err)
		}
		log.Info("state done", "state", state, "animation", out, "frames", len(frames))
	}
	return nil
}

func writeGIF(path string, frames []image.Image, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := compose.EncodeGIF(f, frames, opts.FrameDuration); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
