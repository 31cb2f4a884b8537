package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeFixture builds an xlsx results table in a temp dir. The leading
// unnamed column mimics the row-index column of the source exports.
func writeFixture(t *testing.T, headers []string, records [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, rec := range records {
		for col, v := range rec {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	path := filepath.Join(t.TempDir(), "results.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save fixture: %v", err)
	}
	return path
}

func TestLoadTable(t *testing.T) {
	path := writeFixture(t,
		[]string{"", "unit", "state", "is_state", "code", "2000", "2004"},
		[][]interface{}{
			{0, "Gulfland", "Gulfland", 1, "G0", -58.2, 52.4},
			{1, "Port Arroyo", "Gulfland", 0, "G1", -71.5, -55.0},
		})

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}

	if len(table.Years) != 2 || table.Years[0] != 2000 || table.Years[1] != 2004 {
		t.Errorf("years = %v, want [2000 2004]", table.Years)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}

	agg := table.Rows[0]
	if agg.Unit != "Gulfland" || !agg.IsState || agg.Code != "G0" {
		t.Errorf("aggregate row parsed wrong: %+v", agg)
	}
	if agg.Margins[2000] != -58.2 {
		t.Errorf("margin 2000 = %v, want -58.2", agg.Margins[2000])
	}

	county := table.Rows[1]
	if county.IsState {
		t.Errorf("county row flagged as state aggregate")
	}
	if county.Margins[2004] != -55.0 {
		t.Errorf("margin 2004 = %v, want -55", county.Margins[2004])
	}
}

func TestLoadTableMissingColumn(t *testing.T) {
	path := writeFixture(t,
		[]string{"unit", "state", "code", "2000"},
		[][]interface{}{{"Gulfland", "Gulfland", "G0", -58.2}})

	if _, err := LoadTable(path); !errors.Is(err, ErrSchema) {
		t.Errorf("error = %v, want ErrSchema", err)
	}
}

func TestLoadTableNoYears(t *testing.T) {
	path := writeFixture(t,
		[]string{"unit", "state", "is_state", "code"},
		[][]interface{}{{"Gulfland", "Gulfland", 1, "G0"}})

	if _, err := LoadTable(path); !errors.Is(err, ErrSchema) {
		t.Errorf("error = %v, want ErrSchema", err)
	}
}

func TestLoadTableBadMargin(t *testing.T) {
	path := writeFixture(t,
		[]string{"unit", "state", "is_state", "code", "2000"},
		[][]interface{}{{"Gulfland", "Gulfland", 1, "G0", "n/a"}})

	if _, err := LoadTable(path); !errors.Is(err, ErrSchema) {
		t.Errorf("error = %v, want ErrSchema", err)
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	if _, err := LoadTable(filepath.Join(t.TempDir(), "absent.xlsx")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
