package parser

import (
	"github.com/ukaji3/statesjson/pkg/statesjson/models"
	"github.com/xuri/excelize/v2"
)

// ReadIndustry reads the "Industry Data" sheet keyed by state name.
func ReadIndustry(f *excelize.File, opts ReadOptions) (map[string]models.IndustryRecord, error) {
	return readKeyed(f, keyedSheet[models.IndustryRecord]{
		name:     SheetIndustry,
		startRow: stateDataStartRow,
		keyCol:   indState,
		build: func(_ string, row Row) (models.IndustryRecord, error) {
			return models.IndustryRecord{IndustrySource: row.String(indSource)}, nil
		},
	}, opts)
}
