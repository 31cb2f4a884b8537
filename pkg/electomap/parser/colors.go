// Package parser loads the results spreadsheet and derives the per-state
// colored tables and percentage series consumed by the renderers.
package parser

import (
	"errors"
	"fmt"
	"math"

	"github.com/okondo/electomap/pkg/electomap/models"
)

// ErrMarginBelowScale indicates a margin whose magnitude is at or below the
// lowest threshold band, for which no ramp color is defined.
var ErrMarginBelowScale = errors.New("margin at or below lowest threshold band")

// ColorFor maps a signed margin to a ramp color. Negative margins use the
// side-A ramp, positive ones side B; the ramp index is chosen by the band
// (Bands[i], Bands[i+1]] containing the magnitude. Magnitudes beyond the
// last band clamp to the darkest ramp color.
func ColorFor(value float64, p models.Palette) (string, error) {
	ramp := p.SideB
	if value < 0 {
		ramp = p.SideA
	}
	mag := math.Abs(value)
	for i := 0; i+1 < len(p.Bands); i++ {
		if p.Bands[i] < mag && mag <= p.Bands[i+1] {
			return ramp[i], nil
		}
	}
	if mag > p.Bands[len(p.Bands)-1] {
		return ramp[len(ramp)-1], nil
	}
	return "", fmt.Errorf("%w: %v", ErrMarginBelowScale, value)
}

// Highlight keeps the classified color for subdivisions owned by the target
// state and turns everything else neutral.
func Highlight(owner, color, target, neutral string) string {
	if owner == target {
		return color
	}
	return neutral
}
