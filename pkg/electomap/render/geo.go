// Package render rasterizes the per-year choropleth maps and bar charts.
package render

import (
	"fmt"
	"os"
	"strconv"

	"github.com/paulmach/orb/geojson"
)

// LoadBoundaries reads a GeoJSON feature collection from disk. Feature IDs
// must correspond to the results table's code column.
func LoadBoundaries(path string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// featureID normalizes a feature identifier to the string form used by the
// table's code column. GeoJSON numbers decode as float64, so integral IDs
// are formatted without a fraction.
func featureID(f *geojson.Feature) string {
	id := f.ID
	if id == nil {
		id = f.Properties["id"]
	}
	switch v := id.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
