package output

import (
	"fmt"
	"io"

	"github.com/ukaji3/statesjson/pkg/statesjson/models"
)

// PreviewCount is the number of state entries shown in the report preview.
const PreviewCount = 2

// Summary describes a finished run.
type Summary struct {
	// OutputPath is where the document was written.
	OutputPath string
	// PublishedTo is the object store location, empty when not published.
	PublishedTo string
	// Quiet omits the state preview.
	Quiet bool
}

// Report prints the run summary: counts, destinations and a preview of the
// first entries.
func Report(w io.Writer, doc *models.Document, s Summary) error {
	if _, err := fmt.Fprintf(w, "Total states extracted: %d\n", len(doc.States)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total sources extracted: %d\n", len(doc.Sources)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\nOutput written to: %s\n", s.OutputPath); err != nil {
		return err
	}
	if s.PublishedTo != "" {
		if _, err := fmt.Fprintf(w, "Published to: %s\n", s.PublishedTo); err != nil {
			return err
		}
	}
	if s.Quiet {
		return nil
	}

	preview := doc.States
	if len(preview) > PreviewCount {
		preview = preview[:PreviewCount]
	}
	data, err := StatesToJSON(preview, true)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\n=== First %d state entries ===\n%s", PreviewCount, data)
	return err
}
