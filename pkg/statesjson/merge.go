package statesjson

import (
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/ukaji3/statesjson/pkg/statesjson/models"
	"github.com/ukaji3/statesjson/pkg/statesjson/parser"
)

// Sheets holds the keyed records of every state sheet.
type Sheets struct {
	Overview map[string]models.StateOverview
	Economic map[string]models.EconomicRecord
	Health   map[string]models.HealthRecord
	Industry map[string]models.IndustryRecord
	FunFacts map[string]models.FunFactsRecord
}

// lookup returns the record for key, or the zero record (all fields nil)
// when the sheet has no row for it, and whether it was found.
func lookup[T any](m map[string]T, key string) (T, bool) {
	rec, ok := m[key]
	return rec, ok
}

// Merge joins the secondary sheets onto the overview states and returns
// one entry per overview state sorted by name. The result is never nil.
func Merge(s Sheets, log *slog.Logger) []models.UnifiedState {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	states := make([]models.UnifiedState, 0, len(s.Overview))
	for name, base := range s.Overview {
		e, ok := lookup(s.Economic, name)
		logMissing(log, ok, parser.SheetEconomic, name)
		h, ok := lookup(s.Health, name)
		logMissing(log, ok, parser.SheetHealth, name)
		ind, ok := lookup(s.Industry, name)
		logMissing(log, ok, parser.SheetIndustry, name)
		f, ok := lookup(s.FunFacts, name)
		logMissing(log, ok, parser.SheetFunFacts, name)

		states = append(states, models.UnifiedState{
			Rank:             base.Rank,
			Name:             base.Name,
			Abbreviation:     base.Abbreviation,
			Capital:          base.Capital,
			Region:           base.Region,
			Population:       base.Population,
			PopChange:        base.PopChange,
			GDP:              base.GDP,
			GDPPerCapita:     base.GDPPerCapita,
			MedianIncome:     base.MedianIncome,
			UnemploymentRate: base.UnemploymentRate,
			ObesityRate:      base.ObesityRate,
			UninsuredRate:    base.UninsuredRate,
			LifeExpectancy:   h.LifeExpectancy,
			TopIndustries:    e.TopIndustries,
			MajorEmployers:   e.MajorEmployers,
			FunFact1:         f.FunFact1,
			FunFact1Source:   f.FunFact1Source,
			FunFact2:         f.FunFact2,
			FunFact2Source:   f.FunFact2Source,
			FunFact3:         f.FunFact3,
			FunFact3Source:   f.FunFact3Source,
			Sources: models.StateSources{
				Economic:       e.EconomicSource,
				Obesity:        h.ObesitySource,
				Uninsured:      h.UninsuredSource,
				LifeExpectancy: h.LifeExpectancySource,
				Industry:       ind.IndustrySource,
			},
		})
	}

	slices.SortFunc(states, func(a, b models.UnifiedState) int {
		return strings.Compare(a.Name, b.Name)
	})
	return states
}

func logMissing(log *slog.Logger, found bool, sheet, state string) {
	if !found {
		log.Debug("no matching row", "sheet", sheet, "state", state)
	}
}
