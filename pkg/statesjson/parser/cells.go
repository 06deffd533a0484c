// Package parser reads the worksheets of the states workbook into typed records.
package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is a worksheet row with raw (unformatted) cell values.
type Row struct {
	// Sheet is the worksheet the row belongs to.
	Sheet string
	// Num is the 1-based row index.
	Num int
	// Cells holds raw values by 0-based column. Trailing empty cells are absent.
	Cells []string
}

// SheetRows returns the rows of sheetName starting at startRow (1-based).
// Values are read raw so percent-formatted numbers are not rendered as text.
func SheetRows(f *excelize.File, sheetName string, startRow int) ([]Row, error) {
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	var result []Row
	for rowIdx, cells := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		if rowNum < startRow {
			continue
		}
		result = append(result, Row{Sheet: sheetName, Num: rowNum, Cells: cells})
	}
	return result, nil
}

// Value returns the raw value at col, or "" when the cell is absent.
func (r Row) Value(col int) string {
	if col < 0 || col >= len(r.Cells) {
		return ""
	}
	return r.Cells[col]
}

// Blank reports whether the cell at col is absent or whitespace only.
func (r Row) Blank(col int) bool {
	return strings.TrimSpace(r.Value(col)) == ""
}

// String returns the cell text, or nil for a blank cell.
func (r Row) String(col int) *string {
	if r.Blank(col) {
		return nil
	}
	v := r.Value(col)
	return &v
}

// Int coerces the cell to an int, or nil for a blank cell.
func (r Row) Int(col int) (*int, error) {
	if r.Blank(col) {
		return nil, nil
	}
	v, err := parseInt(r.Value(col))
	if err != nil {
		return nil, r.cellError(col, err)
	}
	return &v, nil
}

// Float coerces the cell to a float64, or nil for a blank cell.
func (r Row) Float(col int) (*float64, error) {
	if r.Blank(col) {
		return nil, nil
	}
	v, err := parseFloat(r.Value(col))
	if err != nil {
		return nil, r.cellError(col, err)
	}
	return &v, nil
}

// Percent coerces a percentage cell such as "2.5%" to 2.5, or nil for a blank cell.
func (r Row) Percent(col int) (*float64, error) {
	if r.Blank(col) {
		return nil, nil
	}
	v, err := parsePercent(r.Value(col))
	if err != nil {
		return nil, r.cellError(col, err)
	}
	return &v, nil
}

func (r Row) cellError(col int, err error) error {
	cell, _ := excelize.CoordinatesToCellName(col+1, r.Num)
	return &CellError{Sheet: r.Sheet, Cell: cell, Value: r.Value(col), Err: err}
}
