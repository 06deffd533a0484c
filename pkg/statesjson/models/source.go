package models

// SourceLink is one entry of the global source catalog.
type SourceLink struct {
	// ID is the 1-based position of the row among retained source rows.
	ID int `json:"id"`
	// Category is the data category the source backs (e.g. "Economics").
	Category *string `json:"category"`
	// Name is the display name of the source.
	Name *string `json:"name"`
	// URL is the link to the source.
	URL *string `json:"url"`
}
