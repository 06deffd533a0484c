package parser

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DuplicatePolicy decides what happens when a keyed sheet repeats a state name.
type DuplicatePolicy string

const (
	// DuplicateLast keeps the later row without notice.
	DuplicateLast DuplicatePolicy = "last"
	// DuplicateWarn keeps the later row and logs a warning.
	DuplicateWarn DuplicatePolicy = "warn"
	// DuplicateReject fails the read with ErrDuplicateKey.
	DuplicateReject DuplicatePolicy = "reject"
)

// ParseDuplicatePolicy validates a policy name.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch p := DuplicatePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case DuplicateLast, DuplicateWarn, DuplicateReject:
		return p, nil
	case "":
		return DuplicateWarn, nil
	default:
		return "", fmt.Errorf("invalid duplicate policy %q (must be last, warn, or reject)", s)
	}
}

// ReadOptions configures the sheet readers.
type ReadOptions struct {
	Duplicates DuplicatePolicy
	// Logger receives debug and warning events. Nil discards them.
	Logger *slog.Logger
}

func (o ReadOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// keyedSheet describes a sheet whose rows are keyed by state name.
type keyedSheet[T any] struct {
	name     string
	startRow int
	keyCol   int
	build    func(key string, row Row) (T, error)
}

// readKeyed builds one record per row with a non-blank key column.
// Blank-key rows are padding and are skipped.
func readKeyed[T any](f *excelize.File, s keyedSheet[T], opts ReadOptions) (map[string]T, error) {
	rows, err := SheetRows(f, s.name, s.startRow)
	if err != nil {
		return nil, err
	}
	log := opts.logger()

	result := make(map[string]T, len(rows))
	seenAt := make(map[string]int, len(rows))
	for _, row := range rows {
		if row.Blank(s.keyCol) {
			continue
		}
		key := strings.TrimSpace(row.Value(s.keyCol))

		rec, err := s.build(key, row)
		if err != nil {
			return nil, err
		}

		if first, dup := seenAt[key]; dup {
			switch opts.Duplicates {
			case DuplicateReject:
				return nil, fmt.Errorf("%w: sheet %q has %q on rows %d and %d", ErrDuplicateKey, s.name, key, first, row.Num)
			case DuplicateWarn, "":
				log.Warn("duplicate state row, keeping the later one",
					"sheet", s.name, "state", key, "first_row", first, "row", row.Num)
			}
		}
		seenAt[key] = row.Num
		result[key] = rec
	}

	ext := MeasureRows(rows)
	log.Debug("sheet read", "sheet", s.name, "records", len(result), "range", ext.Range, "cells", ext.NonEmpty)
	return result, nil
}
