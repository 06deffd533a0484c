package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Extent describes where data was found in a sheet.
type Extent struct {
	// Range is the bounding box of non-empty cells (e.g. "A5:M54"), empty when none.
	Range string
	// NonEmpty is the number of non-empty cells inside Range.
	NonEmpty int
}

// MeasureRows computes the data extent of rows.
func MeasureRows(rows []Row) Extent {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return Extent{}
	}

	startCell, _ := excelize.CoordinatesToCellName(minCol+1, minRow)
	endCell, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow)
	return Extent{
		Range:    fmt.Sprintf("%s:%s", startCell, endCell),
		NonEmpty: countNonEmptyCells(rows),
	}
}

// findDataBounds finds the bounding box of non-empty cells.
// Rows are 1-based, columns 0-based.
func findDataBounds(rows []Row) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for _, row := range rows {
		for colIdx := range row.Cells {
			if row.Blank(colIdx) {
				continue
			}
			if minRow < 0 || row.Num < minRow {
				minRow = row.Num
			}
			if maxRow < 0 || row.Num > maxRow {
				maxRow = row.Num
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

func countNonEmptyCells(rows []Row) int {
	count := 0
	for _, row := range rows {
		for colIdx := range row.Cells {
			if !row.Blank(colIdx) {
				count++
			}
		}
	}
	return count
}
