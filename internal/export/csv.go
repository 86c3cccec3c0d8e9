// Package export writes the journal in portable formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/julianstephens/laughmeter/internal/models"
)

// Header is the first CSV row.
var Header = []string{"Date", "Mood", "Person", "Location", "Note"}

// WriteCSV writes one row per entry, in the order given, with timestamps
// rendered as RFC 3339 in loc.
func WriteCSV(w io.Writer, entries []models.Entry, loc *time.Location) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range entries {
		row := []string{
			e.Timestamp.In(loc).Format(time.RFC3339),
			string(e.Mood),
			e.Person,
			e.Location,
			e.Note,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write entry %s: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
