package models

// Palette holds the full color configuration for margin classification:
// one five-step ramp per side, a neutral color for greyed-out regions, and
// the magnitude bands that select a ramp index.
type Palette struct {
	// SideA is the ramp used for negative margins, lightest first.
	SideA []string
	// SideB is the ramp used for positive margins, lightest first.
	SideB []string
	// Neutral is the color for subdivisions outside the highlighted state.
	Neutral string
	// Bands are the ascending magnitude boundaries. A margin whose absolute
	// value falls in (Bands[i], Bands[i+1]] maps to ramp color i.
	Bands []float64
}

// DefaultPalette returns the standard margin palette.
func DefaultPalette() Palette {
	return Palette{
		SideA:   []string{"#86B6F2", "#4389E3", "#1666CB", "#0645B4", "#002B84"},
		SideB:   []string{"#E27F90", "#CC2F4A", "#D40000", "#AA0000", "#800000"},
		Neutral: "#D6D6D6",
		Bands:   []float64{50, 60, 70, 80, 90, 100},
	}
}
