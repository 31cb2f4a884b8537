// Package electomap renders per-state electoral result animations: a
// choropleth map and a stacked bar chart per election year, composited into
// captioned frames and encoded as one looping GIF per state.
package electomap

import (
	"log/slog"
	"time"

	"github.com/okondo/electomap/pkg/electomap/models"
)

// Options configures a pipeline run. The zero value is not usable; start
// from DefaultOptions.
type Options struct {
	// Palette is the classification color configuration.
	Palette models.Palette
	// States are rendered in order, one animation each.
	States []string
	// Years are the election years rendered per state, in frame order.
	Years []int
	// OutDir receives the {state}.gif outputs. Defaults to the working
	// directory.
	OutDir string
	// FontPath is an optional TTF/OTF file for captions and chart text.
	// Empty falls back to a built-in bitmap face.
	FontPath string
	// FrameDuration is how long each frame is displayed.
	FrameDuration time.Duration
	// KeepFrames writes each composed frame as {state}-{year}.png next to
	// the animation instead of discarding it after encoding.
	KeepFrames bool
	// Logger receives per-state progress. Nil discards.
	Logger *slog.Logger
	// Progress, if set, is called once after every composed frame.
	Progress func()
}

// DefaultOptions returns the standard run configuration: the five states
// and six election years of the source dataset, one second per frame.
func DefaultOptions() Options {
	return Options{
		Palette:       models.DefaultPalette(),
		States:        []string{"El Norte", "Gulfland", "New Texas", "Plainland", "Trinity"},
		Years:         []int{2000, 2004, 2008, 2012, 2016, 2020},
		OutDir:        ".",
		FrameDuration: time.Second,
	}
}

// FrameCount returns the total number of frames a run will compose.
func (o Options) FrameCount() int {
	return len(o.States) * len(o.Years)
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
