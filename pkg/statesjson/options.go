// Package statesjson merges the worksheets of the 50-states workbook into a
// single document of per-state records plus the global source catalog.
package statesjson

import (
	"io"
	"log/slog"

	"github.com/ukaji3/statesjson/pkg/statesjson/parser"
)

// Default file locations, relative to the working directory.
const (
	DefaultInputPath  = "50_Economies_State_Data.xlsx"
	DefaultOutputPath = "states_data.json"
)

// DuplicatePolicy re-exports parser.DuplicatePolicy.
type DuplicatePolicy = parser.DuplicatePolicy

const (
	// DuplicateLast keeps the later row without notice.
	DuplicateLast = parser.DuplicateLast
	// DuplicateWarn keeps the later row and logs a warning.
	DuplicateWarn = parser.DuplicateWarn
	// DuplicateReject fails extraction on a repeated state name.
	DuplicateReject = parser.DuplicateReject
)

// Options configures extraction behavior.
type Options struct {
	// Duplicates decides how repeated state names in a keyed sheet are handled.
	// Empty means DuplicateWarn.
	Duplicates DuplicatePolicy
	// Logger receives progress and warning events. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Duplicates: DuplicateWarn,
	}
}

func (o Options) readOptions() parser.ReadOptions {
	dup := o.Duplicates
	if dup == "" {
		dup = DuplicateWarn
	}
	return parser.ReadOptions{Duplicates: dup, Logger: o.logger()}
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}
