// Package output serializes the merged document and prints the run report.
package output

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/ukaji3/statesjson/pkg/statesjson/models"
)

// ToJSON serializes the document. Non-ASCII text and HTML characters are
// written literally; absent values are null.
func ToJSON(doc *models.Document, pretty bool) ([]byte, error) {
	return encode(doc, pretty)
}

// StatesToJSON serializes a slice of state entries.
func StatesToJSON(states []models.UnifiedState, pretty bool) ([]byte, error) {
	if states == nil {
		states = []models.UnifiedState{}
	}
	return encode(states, pretty)
}

// WriteFile writes data to path, replacing any existing file.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

func encode(v interface{}, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
