// Package stats derives the dashboard aggregates shown alongside badges.
// Like the achievement engine, every function here is pure: the clock is
// passed in and the calendar is now's location.
package stats

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/laughmeter/internal/models"
	"github.com/julianstephens/laughmeter/internal/utils"
)

// NoLaughYet is shown when nothing has been logged today.
const NoLaughYet = "None yet"

// WeekDays is the length of the rolling histogram.
const WeekDays = 7

// DayCount is one calendar day and the number of entries on it.
type DayCount struct {
	Day   time.Time
	Count int
}

// Snapshot is the full set of derived aggregates for one refresh.
type Snapshot struct {
	Total      int
	TodayCount int
	// StreakDays is a same-day flag: 1 when anything was logged today.
	StreakDays  int
	TopPerson   string
	TopLocation string
	// Weekly covers now-6 through now, oldest first.
	Weekly      []DayCount
	ByDate      map[string]int
	LastEntryAt *time.Time
	LastLaugh   string
}

// Compute derives a Snapshot from the full entry history.
func Compute(entries []models.Entry, now time.Time) Snapshot {
	loc := now.Location()
	today := utils.StartOfDay(now, loc)

	s := Snapshot{
		Total:     len(entries),
		ByDate:    make(map[string]int),
		LastLaugh: NoLaughYet,
	}

	people := newTally()
	places := newTally()
	var newest *time.Time

	for i := range entries {
		e := &entries[i]
		s.ByDate[utils.DayKey(e.Timestamp, loc)]++
		if utils.SameDay(e.Timestamp, now, loc) {
			s.TodayCount++
		}
		people.add(e.Person)
		places.add(e.Location)
		if newest == nil || e.Timestamp.After(*newest) {
			ts := e.Timestamp
			newest = &ts
		}
	}

	if s.TodayCount > 0 {
		s.StreakDays = 1
	}
	s.TopPerson = people.top
	s.TopLocation = places.top

	s.Weekly = make([]DayCount, 0, WeekDays)
	for i := WeekDays - 1; i >= 0; i-- {
		day := utils.AddDays(today, -i)
		s.Weekly = append(s.Weekly, DayCount{Day: day, Count: s.ByDate[utils.DayKey(day, loc)]})
	}

	if newest != nil {
		s.LastEntryAt = newest
		if utils.SameDay(*newest, now, loc) {
			s.LastLaugh = humanize.RelTime(*newest, now, "ago", "from now")
		}
	}
	return s
}

// tally tracks the most frequent non-empty value. The leader only changes
// when another value strictly exceeds it, so on a tie the value that
// reached the shared count first wins.
type tally struct {
	counts map[string]int
	top    string
	max    int
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	t.counts[value]++
	if n := t.counts[value]; n > t.max {
		t.max = n
		t.top = value
	}
}

// MostFrequent returns the most frequent non-empty value in order, or "".
func MostFrequent(values []string) string {
	t := newTally()
	for _, v := range values {
		t.add(v)
	}
	return t.top
}
