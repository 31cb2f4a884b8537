package parser

import (
	"errors"
	"fmt"

	"github.com/okondo/electomap/pkg/electomap/models"
)

// ErrYearColumn indicates a row is missing the margin for a year column.
var ErrYearColumn = errors.New("missing year column")

// FilterState selects the rows the map for one state needs: the state's own
// subdivisions plus every state-level aggregate, excluding the target
// state's aggregate itself. Each year margin is classified into a ramp color
// and then neutralized unless the row belongs to the target state. The
// input table is cloned first and never mutated.
func FilterState(t *models.Table, state string, p models.Palette) (*models.ColoredTable, error) {
	cp, err := t.Clone()
	if err != nil {
		return nil, err
	}

	out := &models.ColoredTable{Years: cp.Years}
	for _, row := range cp.Rows {
		if row.State != state && !row.IsState {
			continue
		}
		if row.Unit == state {
			continue
		}

		colors := make(map[int]string, len(cp.Years))
		for _, year := range cp.Years {
			margin, ok := row.Margins[year]
			if !ok {
				return nil, fmt.Errorf("%w: unit %q year %d", ErrYearColumn, row.Unit, year)
			}
			color, err := ColorFor(margin, p)
			if err != nil {
				return nil, fmt.Errorf("unit %q year %d: %w", row.Unit, year, err)
			}
			colors[year] = Highlight(row.State, color, state, p.Neutral)
		}

		out.Rows = append(out.Rows, models.ColoredRow{
			Unit:    row.Unit,
			State:   row.State,
			IsState: row.IsState,
			Code:    row.Code,
			Colors:  colors,
		})
	}
	return out, nil
}
