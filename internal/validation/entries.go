package validation

import (
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/julianstephens/laughmeter/internal/constants"
	"github.com/julianstephens/laughmeter/internal/models"
)

// ConflictType represents the type of integrity problem
type ConflictType string

const (
	ConflictMissingEntryID   ConflictType = "missing_entry_id"
	ConflictDuplicateEntryID ConflictType = "duplicate_entry_id"
	ConflictUnknownMood      ConflictType = "unknown_mood"
	ConflictFutureTimestamp  ConflictType = "future_timestamp"
	ConflictFieldTooLong     ConflictType = "field_too_long"
	ConflictZeroTimestamp    ConflictType = "zero_timestamp"
)

// futureSlack tolerates small clock differences between devices.
const futureSlack = 5 * time.Minute

// Conflict represents one detected problem in stored entries
type Conflict struct {
	Type        ConflictType
	Description string
	EntryIDs    []string
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}
	report := fmt.Sprintf("Found %d problem(s):\n", len(vr.Conflicts))
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// ValidateEntries checks stored entries for problems the store itself does
// not prevent. Deleted entries are only checked for ID collisions.
func ValidateEntries(entries []models.Entry, now time.Time) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	idCount := make(map[string]int)
	for _, e := range entries {
		if e.ID == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingEntryID,
				Description: fmt.Sprintf("Entry logged at %s has no ID", e.Timestamp.Format(constants.DateTimeFormat)),
			})
			continue
		}
		idCount[e.ID]++
	}
	dupes := make([]string, 0)
	for id, n := range idCount {
		if n > 1 {
			dupes = append(dupes, id)
		}
	}
	sort.Strings(dupes)
	for _, id := range dupes {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictDuplicateEntryID,
			Description: fmt.Sprintf("Entry ID %s is used %d times", id, idCount[id]),
			EntryIDs:    []string{id},
		})
	}

	for _, e := range entries {
		if e.IsDeleted() {
			continue
		}
		if _, ok := constants.ParseMood(string(e.Mood)); !ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownMood,
				Description: fmt.Sprintf("Entry %s has unknown mood %q", e.ID, e.Mood),
				EntryIDs:    []string{e.ID},
			})
		}
		if e.Timestamp.IsZero() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictZeroTimestamp,
				Description: fmt.Sprintf("Entry %s has no timestamp", e.ID),
				EntryIDs:    []string{e.ID},
			})
		} else if e.Timestamp.After(now.Add(futureSlack)) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictFutureTimestamp,
				Description: fmt.Sprintf("Entry %s is dated in the future (%s)", e.ID, e.Timestamp.In(now.Location()).Format(constants.DateTimeFormat)),
				EntryIDs:    []string{e.ID},
			})
		}
		for _, f := range []struct{ name, value string }{{"person", e.Person}, {"location", e.Location}} {
			if utf8.RuneCountInString(f.value) > constants.MaxLabelLength {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictFieldTooLong,
					Description: fmt.Sprintf("Entry %s has a %s longer than %d characters", e.ID, f.name, constants.MaxLabelLength),
					EntryIDs:    []string{e.ID},
				})
			}
		}
		if utf8.RuneCountInString(e.Note) > constants.MaxNoteLength {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictFieldTooLong,
				Description: fmt.Sprintf("Entry %s has a note longer than %d characters", e.ID, constants.MaxNoteLength),
				EntryIDs:    []string{e.ID},
			})
		}
	}
	return result
}
