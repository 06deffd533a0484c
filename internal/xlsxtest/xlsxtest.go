// Package xlsxtest builds workbook fixtures for tests.
package xlsxtest

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet is a worksheet to write: a title in A1, a header row just above
// Start, then Rows from column A of row Start. A nil cell stays empty.
type Sheet struct {
	Name  string
	Start int
	Rows  [][]interface{}
}

// Save writes the sheets to a new xlsx file under t.TempDir and returns its path.
func Save(t *testing.T, sheets ...Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for _, s := range sheets {
		if _, err := f.NewSheet(s.Name); err != nil {
			t.Fatalf("NewSheet(%q) failed: %v", s.Name, err)
		}
		f.SetCellValue(s.Name, "A1", s.Name)
		if s.Start > 1 {
			f.SetCellValue(s.Name, "A"+strconv.Itoa(s.Start-1), "Header")
		}
		for i, row := range s.Rows {
			cell, _ := excelize.CoordinatesToCellName(1, s.Start+i)
			r := row
			if err := f.SetSheetRow(s.Name, cell, &r); err != nil {
				t.Fatalf("SetSheetRow(%q, %s) failed: %v", s.Name, cell, err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

// Open saves the sheets and reopens the file; it is closed on test cleanup.
func Open(t *testing.T, sheets ...Sheet) *excelize.File {
	t.Helper()

	f, err := excelize.OpenFile(Save(t, sheets...))
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

// Empty returns the six state sheets with no data rows.
func Empty() []Sheet {
	return []Sheet{
		{Name: "State Overview", Start: 5},
		{Name: "Economic Data", Start: 5},
		{Name: "Health Data", Start: 5},
		{Name: "Industry Data", Start: 5},
		{Name: "Fun Facts", Start: 5},
		{Name: "Source Links", Start: 4},
	}
}

// With returns sheets with the named sheet's rows replaced.
func With(sheets []Sheet, name string, rows ...[]interface{}) []Sheet {
	out := make([]Sheet, len(sheets))
	copy(out, sheets)
	for i := range out {
		if out[i].Name == name {
			out[i].Rows = rows
		}
	}
	return out
}
