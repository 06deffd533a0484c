// Package models defines the records read from the states workbook and the
// merged document written as JSON.
package models

// StateOverview is one row of the "State Overview" sheet.
type StateOverview struct {
	// Rank is the state's position as listed in the sheet.
	Rank *int `json:"rank"`
	// Name is the state name and the join key for every other sheet.
	Name string `json:"name"`
	// Abbreviation is the two-letter postal code.
	Abbreviation *string `json:"abbreviation"`
	// Capital is the capital city.
	Capital *string `json:"capital"`
	// Region is the census region label.
	Region *string `json:"region"`
	// Population is the total population.
	Population *int `json:"population"`
	// PopChange is the population change in percent, "%" stripped.
	PopChange *float64 `json:"popChange"`
	// GDP is the state GDP in billions.
	GDP *float64 `json:"gdp"`
	// GDPPerCapita is GDP divided by population.
	GDPPerCapita *int `json:"gdpPerCapita"`
	// MedianIncome is the median household income.
	MedianIncome *int `json:"medianIncome"`
	// UnemploymentRate is the unemployment rate in percent.
	UnemploymentRate *float64 `json:"unemploymentRate"`
	// ObesityRate is the adult obesity rate in percent.
	ObesityRate *float64 `json:"obesityRate"`
	// UninsuredRate is the uninsured rate in percent.
	UninsuredRate *float64 `json:"uninsuredRate"`
}

// EconomicRecord is one row of the "Economic Data" sheet.
type EconomicRecord struct {
	TopIndustries  *string `json:"topIndustries"`
	MajorEmployers *string `json:"majorEmployers"`
	EconomicSource *string `json:"economicSource"`
}

// HealthRecord is one row of the "Health Data" sheet.
type HealthRecord struct {
	LifeExpectancy       *float64 `json:"lifeExpectancy"`
	ObesitySource        *string  `json:"obesitySource"`
	UninsuredSource      *string  `json:"uninsuredSource"`
	LifeExpectancySource *string  `json:"lifeExpectancySource"`
}

// IndustryRecord is one row of the "Industry Data" sheet.
type IndustryRecord struct {
	IndustrySource *string `json:"industrySource"`
}

// FunFactsRecord is one row of the "Fun Facts" sheet.
type FunFactsRecord struct {
	FunFact1       *string `json:"funFact1"`
	FunFact1Source *string `json:"funFact1Source"`
	FunFact2       *string `json:"funFact2"`
	FunFact2Source *string `json:"funFact2Source"`
	FunFact3       *string `json:"funFact3"`
	FunFact3Source *string `json:"funFact3Source"`
}

// StateSources collects the per-category source URLs of a state.
type StateSources struct {
	Economic       *string `json:"economic"`
	Obesity        *string `json:"obesity"`
	Uninsured      *string `json:"uninsured"`
	LifeExpectancy *string `json:"lifeExpectancy"`
	Industry       *string `json:"industry"`
}

// UnifiedState is the merged view of a single state across all sheets.
// Fields that have no matching row in a secondary sheet stay nil and
// serialize as JSON null.
type UnifiedState struct {
	Rank             *int     `json:"rank"`
	Name             string   `json:"name"`
	Abbreviation     *string  `json:"abbreviation"`
	Capital          *string  `json:"capital"`
	Region           *string  `json:"region"`
	Population       *int     `json:"population"`
	PopChange        *float64 `json:"popChange"`
	GDP              *float64 `json:"gdp"`
	GDPPerCapita     *int     `json:"gdpPerCapita"`
	MedianIncome     *int     `json:"medianIncome"`
	UnemploymentRate *float64 `json:"unemploymentRate"`
	ObesityRate      *float64 `json:"obesityRate"`
	UninsuredRate    *float64 `json:"uninsuredRate"`
	LifeExpectancy   *float64 `json:"lifeExpectancy"`
	TopIndustries    *string  `json:"topIndustries"`
	MajorEmployers   *string  `json:"majorEmployers"`
	FunFact1         *string  `json:"funFact1"`
	FunFact1Source   *string  `json:"funFact1Source"`
	FunFact2         *string  `json:"funFact2"`
	FunFact2Source   *string  `json:"funFact2Source"`
	FunFact3         *string  `json:"funFact3"`
	FunFact3Source   *string  `json:"funFact3Source"`
	// Sources holds the five source URLs gathered from the secondary sheets.
	Sources StateSources `json:"sources"`
}
