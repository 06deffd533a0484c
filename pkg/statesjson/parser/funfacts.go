package parser

import (
	"github.com/ukaji3/statesjson/pkg/statesjson/models"
	"github.com/xuri/excelize/v2"
)

// ReadFunFacts reads the "Fun Facts" sheet keyed by state name.
func ReadFunFacts(f *excelize.File, opts ReadOptions) (map[string]models.FunFactsRecord, error) {
	return readKeyed(f, keyedSheet[models.FunFactsRecord]{
		name:     SheetFunFacts,
		startRow: stateDataStartRow,
		keyCol:   ffState,
		build: func(_ string, row Row) (models.FunFactsRecord, error) {
			return models.FunFactsRecord{
				FunFact1:       row.String(ffFact1),
				FunFact1Source: row.String(ffFact1Source),
				FunFact2:       row.String(ffFact2),
				FunFact2Source: row.String(ffFact2Source),
				FunFact3:       row.String(ffFact3),
				FunFact3Source: row.String(ffFact3Source),
			}, nil
		},
	}, opts)
}
