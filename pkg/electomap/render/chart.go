package render

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/okondo/electomap/pkg/electomap/models"
)

// ErrHighlightIndex indicates the requested highlight year is outside the
// chart's segment range.
var ErrHighlightIndex = errors.New("highlight index out of range")

const (
	chartWidth  = 1200
	chartHeight = 1200

	chartMarginLeft   = 60
	chartMarginRight  = 150
	chartMarginTop    = 60
	chartMarginBottom = 60

	// Fraction of each category slot occupied by the bar.
	barFill = 0.8

	labelGap = 18
)

// Accent colors for the highlighted year and muted colors for the rest.
const (
	accentA = "#4389E3"
	accentB = "#CC2F4A"
	mutedA  = "#CBCFDC"
	mutedB  = "#DEB3B3"
)

// ChartImage draws the stacked horizontal bar chart for one state: one row
// per year with the side-A segment first and the side-B segment stacked
// after it, index 0 at the top, year labels on the right, no axes or ticks.
// The highlighted year's segments use the accent colors and carry centered
// percentage annotations rounded to two decimals.
func ChartImage(s *models.Series, highlight int, face font.Face) (image.Image, error) {
	n := s.Len()
	if highlight < 0 || highlight >= n {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrHighlightIndex, highlight, n)
	}

	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(face)

	plotWidth := float64(chartWidth - chartMarginLeft - chartMarginRight)
	plotHeight := float64(chartHeight - chartMarginTop - chartMarginBottom)
	slot := plotHeight / float64(n)
	barHeight := slot * barFill

	for i := 0; i < n; i++ {
		top := chartMarginTop + float64(i)*slot + (slot-barHeight)/2
		widthA := s.SideA[i] / 100 * plotWidth
		widthB := s.SideB[i] / 100 * plotWidth

		colorA, colorB := mutedA, mutedB
		if i == highlight {
			colorA, colorB = accentA, accentB
		}

		dc.SetHexColor(colorA)
		dc.DrawRectangle(chartMarginLeft, top, widthA, barHeight)
		dc.Fill()
		dc.SetHexColor(colorB)
		dc.DrawRectangle(chartMarginLeft+widthA, top, widthB, barHeight)
		dc.Fill()

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(strconv.Itoa(s.Years[i]),
			chartMarginLeft+plotWidth+labelGap, top+barHeight/2, 0, 0.35)

		if i == highlight {
			dc.DrawStringAnchored(formatPercent(s.SideA[i]),
				chartMarginLeft+widthA/2, top+barHeight/2, 0.5, 0.35)
			dc.DrawStringAnchored(formatPercent(s.SideB[i]),
				chartMarginLeft+widthA+widthB/2, top+barHeight/2, 0.5, 0.35)
		}
	}
	return dc.Image(), nil
}

// formatPercent renders a value rounded to two decimals without trailing
// zeros, e.g. 65.7 -> "65.7%".
func formatPercent(v float64) string {
	rounded := math.Round(v*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + "%"
}
