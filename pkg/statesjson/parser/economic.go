package parser

import (
	"github.com/ukaji3/statesjson/pkg/statesjson/models"
	"github.com/xuri/excelize/v2"
)

// ReadEconomic reads the "Economic Data" sheet keyed by state name.
func ReadEconomic(f *excelize.File, opts ReadOptions) (map[string]models.EconomicRecord, error) {
	return readKeyed(f, keyedSheet[models.EconomicRecord]{
		name:     SheetEconomic,
		startRow: stateDataStartRow,
		keyCol:   ecoState,
		build: func(_ string, row Row) (models.EconomicRecord, error) {
			return models.EconomicRecord{
				TopIndustries:  row.String(ecoTopIndustries),
				MajorEmployers: row.String(ecoMajorEmployers),
				EconomicSource: row.String(ecoSource),
			}, nil
		},
	}, opts)
}
