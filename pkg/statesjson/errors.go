package statesjson

import (
	"errors"
	"fmt"

	"github.com/ukaji3/statesjson/pkg/statesjson/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrSheetNotFound indicates a required worksheet is missing.
var ErrSheetNotFound = parser.ErrSheetNotFound

// ErrDuplicateState indicates a repeated state name under DuplicateReject.
var ErrDuplicateState = parser.ErrDuplicateKey

// ExtractionError represents an error while reading one worksheet.
type ExtractionError struct {
	SheetName string
	Component string // "overview", "economic", "health", "industry", "fun_facts", "sources"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
