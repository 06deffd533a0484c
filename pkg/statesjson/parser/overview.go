package parser

import (
	"github.com/ukaji3/statesjson/pkg/statesjson/models"
	"github.com/xuri/excelize/v2"
)

// ReadOverview reads the "State Overview" sheet keyed by state name.
// It defines the set of states that appear in the output.
func ReadOverview(f *excelize.File, opts ReadOptions) (map[string]models.StateOverview, error) {
	return readKeyed(f, keyedSheet[models.StateOverview]{
		name:     SheetOverview,
		startRow: stateDataStartRow,
		keyCol:   ovName,
		build:    buildOverview,
	}, opts)
}

func buildOverview(name string, row Row) (models.StateOverview, error) {
	rec := models.StateOverview{
		Name:         name,
		Abbreviation: row.String(ovAbbreviation),
		Capital:      row.String(ovCapital),
		Region:       row.String(ovRegion),
	}

	var err error
	if rec.Rank, err = row.Int(ovRank); err != nil {
		return rec, err
	}
	if rec.Population, err = row.Int(ovPopulation); err != nil {
		return rec, err
	}
	if rec.PopChange, err = row.Percent(ovPopChange); err != nil {
		return rec, err
	}
	if rec.GDP, err = row.Float(ovGDP); err != nil {
		return rec, err
	}
	if rec.GDPPerCapita, err = row.Int(ovGDPPerCapita); err != nil {
		return rec, err
	}
	if rec.MedianIncome, err = row.Int(ovMedianIncome); err != nil {
		return rec, err
	}
	if rec.UnemploymentRate, err = row.Float(ovUnemploymentRate); err != nil {
		return rec, err
	}
	if rec.ObesityRate, err = row.Float(ovObesityRate); err != nil {
		return rec, err
	}
	if rec.UninsuredRate, err = row.Float(ovUninsuredRate); err != nil {
		return rec, err
	}
	return rec, nil
}
