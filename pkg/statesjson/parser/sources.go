package parser

import (
	"strings"

	"github.com/ukaji3/statesjson/pkg/statesjson/models"
	"github.com/xuri/excelize/v2"
)

// ReadSources reads the "Source Links" sheet in row order. Rows with both
// category and name blank are skipped, as is a repeated header row. IDs are
// assigned 1..N over the retained rows.
func ReadSources(f *excelize.File, opts ReadOptions) ([]models.SourceLink, error) {
	rows, err := SheetRows(f, SheetSources, sourceDataStartRow)
	if err != nil {
		return nil, err
	}
	log := opts.logger()

	result := make([]models.SourceLink, 0, len(rows))
	nextID := 1
	for _, row := range rows {
		if row.Blank(srcCategory) && row.Blank(srcName) {
			continue
		}
		if strings.TrimSpace(row.Value(srcCategory)) == sourceHeaderLabel {
			log.Debug("skipping repeated header row", "sheet", SheetSources, "row", row.Num)
			continue
		}
		result = append(result, models.SourceLink{
			ID:       nextID,
			Category: row.String(srcCategory),
			Name:     row.String(srcName),
			URL:      row.String(srcURL),
		})
		nextID++
	}

	ext := MeasureRows(rows)
	log.Debug("sheet read", "sheet", SheetSources, "records", len(result), "range", ext.Range, "cells", ext.NonEmpty)
	return result, nil
}
