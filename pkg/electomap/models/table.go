package models

import (
	"github.com/tiendc/go-deepcopy"
)

// Row is one subdivision row of the results table. A row either describes a
// county-level unit or, when IsState is set, a state-wide aggregate.
type Row struct {
	// Unit is the subdivision identifier (county or state name).
	Unit string
	// State is the owning state name.
	State string
	// IsState marks a state-level aggregate row.
	IsState bool
	// Code is the join key matching a boundary feature ID.
	Code string
	// Margins holds the signed percentage margin per election year.
	// Negative favors side A, positive favors side B.
	Margins map[int]float64
}

// Table is the full results table as loaded from the source spreadsheet.
type Table struct {
	// Years lists the election year columns in ascending order.
	Years []int
	Rows  []Row
}

// Clone returns a deep copy of the table, so downstream transforms can
// annotate rows without touching the loaded source data.
func (t *Table) Clone() (*Table, error) {
	var cp Table
	if err := deepcopy.Copy(&cp, t); err != nil {
		return nil, err
	}
	return &cp, nil
}

// ColoredRow is a subdivision row after classification: each year's margin
// has been replaced by the hex color the map renderer should fill with.
type ColoredRow struct {
	Unit    string
	State   string
	IsState bool
	Code    string
	Colors  map[int]string
}

// ColoredTable is the per-state filtered and classified table consumed by
// the map renderer.
type ColoredTable struct {
	Years []int
	Rows  []ColoredRow
}
