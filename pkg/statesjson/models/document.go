package models

// Document is the top-level JSON document produced by a run.
type Document struct {
	// States is sorted by name ascending.
	States []UnifiedState `json:"states"`
	// Sources keeps the row order of the "Source Links" sheet.
	Sources []SourceLink `json:"sources"`
}
