package statesjson

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/statesjson/internal/xlsxtest"
	"github.com/ukaji3/statesjson/pkg/statesjson/output"
	"github.com/ukaji3/statesjson/pkg/statesjson/parser"
)

var testlandRow = []interface{}{1, "Testland", "TL", "Testopolis", "West", 1000000, "2.5%", 50.0, 50000, 60000, 3.1, 30.0, 8.0}

func TestExtractTestlandOnly(t *testing.T) {
	path := xlsxtest.Save(t, xlsxtest.With(xlsxtest.Empty(), parser.SheetOverview, testlandRow)...)

	doc, err := Extract(path, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, doc.States, 1)
	require.NotNil(t, doc.Sources)
	require.Empty(t, doc.Sources)

	data, err := output.ToJSON(doc, true)
	require.NoError(t, err)

	var decoded struct {
		States []map[string]interface{} `json:"states"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	tl := decoded.States[0]

	require.Equal(t, "Testland", tl["name"])
	require.Equal(t, "TL", tl["abbreviation"])
	require.Equal(t, "Testopolis", tl["capital"])
	require.Equal(t, "West", tl["region"])
	require.Equal(t, float64(1), tl["rank"])
	require.Equal(t, float64(1000000), tl["population"])
	require.Equal(t, 2.5, tl["popChange"])
	require.Equal(t, 50.0, tl["gdp"])
	require.Equal(t, float64(50000), tl["gdpPerCapita"])
	require.Equal(t, float64(60000), tl["medianIncome"])
	require.Equal(t, 3.1, tl["unemploymentRate"])
	require.Equal(t, 30.0, tl["obesityRate"])
	require.Equal(t, 8.0, tl["uninsuredRate"])

	for _, key := range []string{
		"topIndustries", "majorEmployers", "lifeExpectancy",
		"funFact1", "funFact1Source", "funFact2", "funFact2Source", "funFact3", "funFact3Source",
	} {
		v, present := tl[key]
		require.True(t, present, "%s must be present", key)
		require.Nil(t, v, "%s must be null", key)
	}

	sources, ok := tl["sources"].(map[string]interface{})
	require.True(t, ok)
	for _, key := range []string{"economic", "obesity", "uninsured", "lifeExpectancy", "industry"} {
		v, present := sources[key]
		require.True(t, present, "sources.%s must be present", key)
		require.Nil(t, v, "sources.%s must be null", key)
	}
}

func TestExtractFullWorkbook(t *testing.T) {
	sheets := xlsxtest.Empty()
	sheets = xlsxtest.With(sheets, parser.SheetOverview,
		[]interface{}{2, "Vermont", "VT", "Montpelier", "Northeast", 647000, -0.1, 40.6, 62700, 74000, 2.1, 27.1, 3.9},
		[]interface{}{nil, nil},
		[]interface{}{1, "Alaska", "AK", "Juneau", "West", 733000, "0.3%", 63.6, 86800, 86400, 4.6, 33.1, 11.4},
	)
	sheets = xlsxtest.With(sheets, parser.SheetEconomic,
		[]interface{}{"Alaska", nil, nil, nil, nil, "Oil and gas", "Providence", "https://bea.gov/ak"},
		[]interface{}{"Guam", nil, nil, nil, nil, "Tourism", nil, nil},
	)
	sheets = xlsxtest.With(sheets, parser.SheetHealth,
		[]interface{}{"Vermont", nil, nil, 79.4, "https://cdc.gov/ob", "https://census.gov/un", "https://cdc.gov/le"},
	)
	sheets = xlsxtest.With(sheets, parser.SheetFunFacts,
		[]interface{}{"Alaska", "Biggest state", "https://nps.gov"},
	)
	sheets = xlsxtest.With(sheets, parser.SheetSources,
		[]interface{}{"Economics", "BEA - GDP by State", "https://www.bea.gov"},
		[]interface{}{"Data Category", "Source", "URL"},
		[]interface{}{nil, nil, nil},
		[]interface{}{"Health", "CDC - Obesity", "https://www.cdc.gov"},
	)

	doc, err := Extract(xlsxtest.Save(t, sheets...), DefaultOptions())
	require.NoError(t, err)

	require.Len(t, doc.States, 2)
	require.Equal(t, "Alaska", doc.States[0].Name)
	require.Equal(t, "Vermont", doc.States[1].Name)

	ak := doc.States[0]
	require.Equal(t, 0.3, *ak.PopChange)
	require.Equal(t, "Oil and gas", *ak.TopIndustries)
	require.Equal(t, "https://bea.gov/ak", *ak.Sources.Economic)
	require.Equal(t, "Biggest state", *ak.FunFact1)
	require.Nil(t, ak.LifeExpectancy)
	require.Nil(t, ak.Sources.Obesity)

	vt := doc.States[1]
	require.Equal(t, -0.1, *vt.PopChange)
	require.Equal(t, 79.4, *vt.LifeExpectancy)
	require.Equal(t, "https://cdc.gov/le", *vt.Sources.LifeExpectancy)
	require.Nil(t, vt.TopIndustries)

	require.Len(t, doc.Sources, 2)
	require.Equal(t, 1, doc.Sources[0].ID)
	require.Equal(t, 2, doc.Sources[1].ID)
	require.Equal(t, "Health", *doc.Sources[1].Category)
}

func TestExtractMissingFile(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "nope.xlsx"), DefaultOptions())
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestExtractMissingSheet(t *testing.T) {
	sheets := xlsxtest.Empty()[:4] // no Fun Facts, no Source Links
	_, err := Extract(xlsxtest.Save(t, sheets...), DefaultOptions())
	require.ErrorIs(t, err, ErrSheetNotFound)

	var extErr *ExtractionError
	require.True(t, errors.As(err, &extErr))
	require.Equal(t, parser.SheetFunFacts, extErr.SheetName)
	require.Equal(t, "fun_facts", extErr.Component)
}

func TestExtractInvalidNumberIsFatal(t *testing.T) {
	bad := []interface{}{1, "Testland", "TL", "Testopolis", "West", 1000000, "about 2%"}
	_, err := Extract(xlsxtest.Save(t, xlsxtest.With(xlsxtest.Empty(), parser.SheetOverview, bad)...), DefaultOptions())
	require.ErrorIs(t, err, parser.ErrInvalidNumber)

	var cellErr *parser.CellError
	require.True(t, errors.As(err, &cellErr))
	require.Equal(t, "G5", cellErr.Cell)
}

func TestExtractDuplicatePolicy(t *testing.T) {
	sheets := xlsxtest.With(xlsxtest.Empty(), parser.SheetOverview,
		[]interface{}{1, "Testland", "T1"},
		[]interface{}{2, "Testland", "T2"},
	)
	path := xlsxtest.Save(t, sheets...)

	doc, err := Extract(path, Options{Duplicates: DuplicateLast})
	require.NoError(t, err)
	require.Len(t, doc.States, 1)
	require.Equal(t, "T2", *doc.States[0].Abbreviation)

	_, err = Extract(path, Options{Duplicates: DuplicateReject})
	require.ErrorIs(t, err, ErrDuplicateState)
}
