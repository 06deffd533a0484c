package parser

import (
	"github.com/ukaji3/statesjson/pkg/statesjson/models"
	"github.com/xuri/excelize/v2"
)

// ReadHealth reads the "Health Data" sheet keyed by state name.
func ReadHealth(f *excelize.File, opts ReadOptions) (map[string]models.HealthRecord, error) {
	return readKeyed(f, keyedSheet[models.HealthRecord]{
		name:     SheetHealth,
		startRow: stateDataStartRow,
		keyCol:   hlState,
		build: func(_ string, row Row) (models.HealthRecord, error) {
			life, err := row.Float(hlLifeExpectancy)
			if err != nil {
				return models.HealthRecord{}, err
			}
			return models.HealthRecord{
				LifeExpectancy:       life,
				ObesitySource:        row.String(hlObesitySource),
				UninsuredSource:      row.String(hlUninsuredSource),
				LifeExpectancySource: row.String(hlLifeExpectancySource),
			}, nil
		},
	}, opts)
}
