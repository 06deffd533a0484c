package statesjson

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ukaji3/statesjson/pkg/statesjson/models"
	"github.com/ukaji3/statesjson/pkg/statesjson/parser"
	"github.com/xuri/excelize/v2"
)

// Extract opens the workbook at path and builds the merged document.
func Extract(path string, opts Options) (*models.Document, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	opts.logger().Debug("workbook opened", "path", path, "sheets", f.GetSheetList())
	return ExtractFile(f, opts)
}

// ExtractFile builds the merged document from an open workbook. Every sheet
// is required; a missing secondary row only leaves fields null.
func ExtractFile(f *excelize.File, opts Options) (*models.Document, error) {
	ro := opts.readOptions()

	overview, err := parser.ReadOverview(f, ro)
	if err != nil {
		return nil, NewExtractionError(parser.SheetOverview, "overview", err)
	}
	economic, err := parser.ReadEconomic(f, ro)
	if err != nil {
		return nil, NewExtractionError(parser.SheetEconomic, "economic", err)
	}
	health, err := parser.ReadHealth(f, ro)
	if err != nil {
		return nil, NewExtractionError(parser.SheetHealth, "health", err)
	}
	industry, err := parser.ReadIndustry(f, ro)
	if err != nil {
		return nil, NewExtractionError(parser.SheetIndustry, "industry", err)
	}
	facts, err := parser.ReadFunFacts(f, ro)
	if err != nil {
		return nil, NewExtractionError(parser.SheetFunFacts, "fun_facts", err)
	}
	sources, err := parser.ReadSources(f, ro)
	if err != nil {
		return nil, NewExtractionError(parser.SheetSources, "sources", err)
	}

	states := Merge(Sheets{
		Overview: overview,
		Economic: economic,
		Health:   health,
		Industry: industry,
		FunFacts: facts,
	}, opts.logger())

	return &models.Document{
		States:  states,
		Sources: sources,
	}, nil
}
