package models

// Series holds one state's derived two-party percentage series, one value
// per election year. SideA[i] + SideB[i] is always 100 up to floating-point
// rounding.
type Series struct {
	Years []int
	SideA []float64
	SideB []float64
}

// Len returns the number of years in the series.
func (s *Series) Len() int {
	return len(s.Years)
}

// YearIndex returns the index of the given year, or -1 if the series does
// not contain it.
func (s *Series) YearIndex(year int) int {
	for i, y := range s.Years {
		if y == year {
			return i
		}
	}
	return -1
}
