package render

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/project"

	"github.com/okondo/electomap/pkg/electomap/models"
)

// ErrBoundary indicates the boundary collection does not cover a table code.
var ErrBoundary = errors.New("boundary coverage")

// ErrColorColumn indicates a row has no color for the requested year.
var ErrColorColumn = errors.New("missing color column")

const (
	mapWidth  = 1200
	mapHeight = 1200

	// Fixed viewport matching the source visualization: web-mercator
	// centered on Texas at a mapbox-style fractional zoom.
	centerLat = 31.3915
	centerLon = -99.7707
	mapZoom   = 5.75

	borderWidth = 2

	// Half-circumference of the EPSG:3857 world in meters.
	mercatorMax = 20037508.342789244
	tileSize    = 256
)

// MapImage rasterizes the choropleth for one year: every row of the colored
// table is matched to a boundary feature by code and filled with its
// pre-resolved color, with white borders between regions. Rows without a
// matching feature, or without a color for the year, abort the render.
func MapImage(fc *geojson.FeatureCollection, data *models.ColoredTable, year int) (image.Image, error) {
	features := make(map[string]*geojson.Feature, len(fc.Features))
	for _, f := range fc.Features {
		features[featureID(f)] = f
	}

	dc := gg.NewContext(mapWidth, mapHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFillRule(gg.FillRuleEvenOdd)

	for _, row := range data.Rows {
		color, ok := row.Colors[year]
		if !ok {
			return nil, fmt.Errorf("%w: unit %q year %d", ErrColorColumn, row.Unit, year)
		}
		f, ok := features[row.Code]
		if !ok {
			return nil, fmt.Errorf("%w: no feature for code %q (unit %q)", ErrBoundary, row.Code, row.Unit)
		}
		if err := fillFeature(dc, f, color); err != nil {
			return nil, err
		}
	}
	return dc.Image(), nil
}

func fillFeature(dc *gg.Context, f *geojson.Feature, color string) error {
	switch geom := f.Geometry.(type) {
	case orb.Polygon:
		tracePolygon(dc, geom)
	case orb.MultiPolygon:
		for _, poly := range geom {
			tracePolygon(dc, poly)
		}
	default:
		return fmt.Errorf("%w: feature %v has unsupported geometry %T", ErrBoundary, f.ID, f.Geometry)
	}
	dc.SetHexColor(color)
	dc.FillPreserve()
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(borderWidth)
	dc.Stroke()
	return nil
}

func tracePolygon(dc *gg.Context, poly orb.Polygon) {
	for _, ring := range poly {
		dc.NewSubPath()
		for i, pt := range ring {
			x, y := toScreen(pt)
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
	}
}

// toScreen projects a WGS84 point to canvas pixels: mercator meters scaled
// by the zoom level and offset so the fixed center lands mid-canvas.
func toScreen(pt orb.Point) (float64, float64) {
	scale := tileSize * math.Exp2(mapZoom) / (2 * mercatorMax)
	center := project.WGS84.ToMercator(orb.Point{centerLon, centerLat})
	m := project.WGS84.ToMercator(pt)
	x := mapWidth/2 + (m[0]-center[0])*scale
	y := mapHeight/2 - (m[1]-center[1])*scale
	return x, y
}
