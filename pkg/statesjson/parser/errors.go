package parser

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound indicates a required worksheet is missing from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrInvalidNumber indicates a numeric column holds a value that cannot be coerced.
var ErrInvalidNumber = errors.New("invalid number")

// ErrDuplicateKey indicates two rows of a keyed sheet share the same state name.
var ErrDuplicateKey = errors.New("duplicate key")

// CellError reports a coercion failure at a specific cell.
type CellError struct {
	Sheet string
	Cell  string // e.g. "G7"
	Value string
	Err   error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("sheet %q cell %s (%q): %v", e.Sheet, e.Cell, e.Value, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
