package parser

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/okondo/electomap/pkg/electomap/models"
	"github.com/xuri/excelize/v2"
)

// ErrSchema indicates the spreadsheet does not match the expected results
// table layout.
var ErrSchema = errors.New("results table schema")

var requiredColumns = []string{"unit", "state", "is_state", "code"}

// LoadTable reads the results table from the first sheet of an xlsx file.
// The header row must contain the unit, state, is_state and code columns;
// every header that parses as an integer is treated as an election year
// column. Other columns (such as a leading row index) are ignored.
func LoadTable(path string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrSchema)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", ErrSchema, sheets[0])
	}

	colIdx := make(map[string]int)
	yearCol := make(map[int]int)
	var years []int
	for i, header := range rows[0] {
		name := strings.TrimSpace(header)
		switch name {
		case "unit", "state", "is_state", "code":
			colIdx[name] = i
		default:
			if year, err := strconv.Atoi(name); err == nil {
				yearCol[year] = i
				years = append(years, year)
			}
		}
	}
	for _, name := range requiredColumns {
		if _, ok := colIdx[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrSchema, name)
		}
	}
	if len(years) == 0 {
		return nil, fmt.Errorf("%w: no year columns found", ErrSchema)
	}
	sort.Ints(years)

	table := &models.Table{Years: years}
	for rowNum, rec := range rows[1:] {
		cell := func(i int) string {
			if i < len(rec) {
				return strings.TrimSpace(rec[i])
			}
			return ""
		}

		unit := cell(colIdx["unit"])
		if unit == "" {
			continue
		}
		row := models.Row{
			Unit:    unit,
			State:   cell(colIdx["state"]),
			IsState: cell(colIdx["is_state"]) == "1",
			Code:    cell(colIdx["code"]),
			Margins: make(map[int]float64, len(years)),
		}
		for _, year := range years {
			raw := cell(yearCol[year])
			margin, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d unit %q year %d: bad margin %q", ErrSchema, rowNum+2, unit, year, raw)
			}
			row.Margins[year] = margin
		}
		table.Rows = append(table.Rows, row)
	}
	if len(table.Rows) == 0 {
		return nil, fmt.Errorf("%w: no data rows", ErrSchema)
	}
	return table, nil
}
