package parser

// Worksheet names expected in the states workbook.
const (
	SheetOverview = "State Overview"
	SheetEconomic = "Economic Data"
	SheetHealth   = "Health Data"
	SheetIndustry = "Industry Data"
	SheetFunFacts = "Fun Facts"
	SheetSources  = "Source Links"
)

// First data row (1-based) of each sheet. Rows above hold titles and headers.
const (
	stateDataStartRow  = 5
	sourceDataStartRow = 4
)

// sourceHeaderLabel marks a header row repeated inside the source-link data.
const sourceHeaderLabel = "Data Category"

// Column offsets (0-based) of the "State Overview" sheet.
const (
	ovRank = iota
	ovName
	ovAbbreviation
	ovCapital
	ovRegion
	ovPopulation
	ovPopChange
	ovGDP
	ovGDPPerCapita
	ovMedianIncome
	ovUnemploymentRate
	ovObesityRate
	ovUninsuredRate
)

// Column offsets of the "Economic Data" sheet. Columns 1-4 are not exported.
const (
	ecoState          = 0
	ecoTopIndustries  = 5
	ecoMajorEmployers = 6
	ecoSource         = 7
)

// Column offsets of the "Health Data" sheet.
const (
	hlState                = 0
	hlLifeExpectancy       = 3
	hlObesitySource        = 4
	hlUninsuredSource      = 5
	hlLifeExpectancySource = 6
)

// Column offsets of the "Industry Data" sheet.
const (
	indState  = 0
	indSource = 3
)

// Column offsets of the "Fun Facts" sheet.
const (
	ffState = iota
	ffFact1
	ffFact1Source
	ffFact2
	ffFact2Source
	ffFact3
	ffFact3Source
)

// Column offsets of the "Source Links" sheet.
const (
	srcCategory = iota
	srcName
	srcURL
)
