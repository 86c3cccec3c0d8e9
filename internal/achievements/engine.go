// Package achievements derives badge unlock state from the full entry
// history. Evaluation is a pure function of the entries and an injected
// "now"; nothing here reads the clock or touches storage.
package achievements

import (
	"time"

	"github.com/julianstephens/laughmeter/internal/models"
)

// BadgeStatus is a definition paired with its unlock state for one entry
// collection. It is recomputed on every refresh and never persisted.
type BadgeStatus struct {
	Definition
	Unlocked bool
}

// Evaluate returns one status per badge definition, in definition order.
// Day and hour rules use now's location as the calendar.
func Evaluate(entries []models.Entry, now time.Time) []BadgeStatus {
	return EvaluateDefinitions(definitions, entries, now)
}

// EvaluateDefinitions evaluates an arbitrary table against entries.
func EvaluateDefinitions(defs []Definition, entries []models.Entry, now time.Time) []BadgeStatus {
	l := newLedger(entries, now)
	out := make([]BadgeStatus, 0, len(defs))
	for _, d := range defs {
		out = append(out, BadgeStatus{Definition: d, Unlocked: d.Rule.unlocked(l)})
	}
	return out
}

// NewlyUnlocked returns the badges unlocked in next that were locked or
// missing in prev, in next's order.
func NewlyUnlocked(prev, next []BadgeStatus) []BadgeStatus {
	before := make(map[string]bool, len(prev))
	for _, s := range prev {
		before[s.ID] = s.Unlocked
	}
	var out []BadgeStatus
	for _, s := range next {
		if s.Unlocked && !before[s.ID] {
			out = append(out, s)
		}
	}
	return out
}

// UnlockedCount returns how many statuses are unlocked.
func UnlockedCount(statuses []BadgeStatus) int {
	n := 0
	for _, s := range statuses {
		if s.Unlocked {
			n++
		}
	}
	return n
}
