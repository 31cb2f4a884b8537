package parser

import (
	"errors"
	"fmt"

	"github.com/okondo/electomap/pkg/electomap/models"
)

// ErrAggregateRow indicates the table does not contain exactly one aggregate
// row for the requested state.
var ErrAggregateRow = errors.New("aggregate row lookup")

// StateResults derives the two-party percentage series for one state from
// its aggregate row. A negative margin m yields side A |m| and side B 100+m;
// a positive margin yields side A 100-m and side B m, so the two series sum
// to 100 for every year. Exactly one row whose unit equals the state name
// must exist.
func StateResults(t *models.Table, state string) (*models.Series, error) {
	var agg *models.Row
	matches := 0
	for i := range t.Rows {
		if t.Rows[i].Unit == state {
			agg = &t.Rows[i]
			matches++
		}
	}
	if matches != 1 {
		return nil, fmt.Errorf("%w: want exactly one row with unit %q, found %d", ErrAggregateRow, state, matches)
	}

	s := &models.Series{
		Years: append([]int(nil), t.Years...),
		SideA: make([]float64, 0, len(t.Years)),
		SideB: make([]float64, 0, len(t.Years)),
	}
	for _, year := range t.Years {
		margin, ok := agg.Margins[year]
		if !ok {
			return nil, fmt.Errorf("%w: unit %q year %d", ErrYearColumn, state, year)
		}
		if margin < 0 {
			s.SideA = append(s.SideA, -margin)
			s.SideB = append(s.SideB, 100+margin)
		} else {
			s.SideA = append(s.SideA, 100-margin)
			s.SideB = append(s.SideB, margin)
		}
	}
	return s, nil
}
