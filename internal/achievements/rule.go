package achievements

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/julianstephens/laughmeter/internal/constants"
	"github.com/julianstephens/laughmeter/internal/models"
	"github.com/julianstephens/laughmeter/internal/utils"
)

// RuleKind selects the predicate a Rule evaluates.
type RuleKind string

const (
	RuleTotal             RuleKind = "total"              // len(entries) >= Threshold
	RuleLoggedToday       RuleKind = "logged_today"       // any entry on now's calendar day
	RulePersonKeyword     RuleKind = "person_keyword"     // person contains any keyword, count >= Threshold
	RuleLocationKeyword   RuleKind = "location_keyword"   // location contains any keyword, count >= Threshold
	RuleSolo              RuleKind = "solo"               // any entry with no person, or a person containing "self"
	RuleHourBand          RuleKind = "hour_band"          // local hour in [FromHour, ToHour), count >= Threshold
	RuleExactHour         RuleKind = "exact_hour"         // any entry with local hour == Hour
	RuleWeekend           RuleKind = "weekend"            // any entry on a Saturday or Sunday
	RuleMoodCount         RuleKind = "mood_count"         // mood == Mood, count >= Threshold
	RuleTodayCount        RuleKind = "today_count"        // entries on now's calendar day >= Threshold
	RuleNoted             RuleKind = "noted"              // non-empty note, count >= Threshold
	RuleContext           RuleKind = "context"            // non-empty person or location, count >= Threshold
	RuleDistinctLocations RuleKind = "distinct_locations" // distinct non-empty locations >= Threshold
)

const soloKeyword = "self"

// Rule is the declarative predicate behind one badge. Only the fields
// relevant to Kind are read.
type Rule struct {
	Kind      RuleKind
	Threshold int
	Keywords  []string
	Mood      constants.Mood
	FromHour  int
	ToHour    int
	Hour      int
}

// facts is the per-entry view shared by every rule in one evaluation.
type facts struct {
	person   string // case folded
	location string // case folded
	rawLoc   string
	mood     constants.Mood
	note     string
	hour     int
	today    bool
	weekend  bool
}

// ledger is built once per evaluation so rules never touch the raw
// entries or the clock themselves.
type ledger struct {
	facts  []facts
	folder cases.Caser
}

func newLedger(entries []models.Entry, now time.Time) *ledger {
	loc := now.Location()
	l := &ledger{
		facts:  make([]facts, 0, len(entries)),
		folder: cases.Fold(),
	}
	for _, e := range entries {
		local := e.Timestamp.In(loc)
		l.facts = append(l.facts, facts{
			person:   l.fold(e.Person),
			location: l.fold(e.Location),
			rawLoc:   strings.TrimSpace(e.Location),
			mood:     e.Mood,
			note:     strings.TrimSpace(e.Note),
			hour:     local.Hour(),
			today:    utils.SameDay(local, now, loc),
			weekend:  utils.IsWeekend(local, loc),
		})
	}
	return l
}

func (l *ledger) fold(s string) string {
	return l.folder.String(strings.TrimSpace(s))
}

func (l *ledger) count(match func(facts) bool) int {
	n := 0
	for _, f := range l.facts {
		if match(f) {
			n++
		}
	}
	return n
}

func (l *ledger) any(match func(facts) bool) bool {
	for _, f := range l.facts {
		if match(f) {
			return true
		}
	}
	return false
}

func (l *ledger) containsAny(value string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(value, l.fold(k)) {
			return true
		}
	}
	return false
}

// inBand reports whether hour falls in [from, to), wrapping past midnight when from > to.
func inBand(hour, from, to int) bool {
	if from <= to {
		return hour >= from && hour < to
	}
	return hour >= from || hour < to
}

func (r Rule) unlocked(l *ledger) bool {
	switch r.Kind {
	case RuleTotal:
		return len(l.facts) >= r.Threshold
	case RuleLoggedToday:
		return l.any(func(f facts) bool { return f.today })
	case RulePersonKeyword:
		return l.count(func(f facts) bool { return l.containsAny(f.person, r.Keywords) }) >= r.Threshold
	case RuleLocationKeyword:
		return l.count(func(f facts) bool { return l.containsAny(f.location, r.Keywords) }) >= r.Threshold
	case RuleSolo:
		return l.any(func(f facts) bool { return f.person == "" || strings.Contains(f.person, soloKeyword) })
	case RuleHourBand:
		return l.count(func(f facts) bool { return inBand(f.hour, r.FromHour, r.ToHour) }) >= r.Threshold
	case RuleExactHour:
		return l.any(func(f facts) bool { return f.hour == r.Hour })
	case RuleWeekend:
		return l.any(func(f facts) bool { return f.weekend })
	case RuleMoodCount:
		return l.count(func(f facts) bool { return f.mood == r.Mood }) >= r.Threshold
	case RuleTodayCount:
		return l.count(func(f facts) bool { return f.today }) >= r.Threshold
	case RuleNoted:
		return l.count(func(f facts) bool { return f.note != "" }) >= r.Threshold
	case RuleContext:
		return l.count(func(f facts) bool { return f.person != "" || f.location != "" }) >= r.Threshold
	case RuleDistinctLocations:
		seen := make(map[string]struct{})
		for _, f := range l.facts {
			if f.rawLoc != "" {
				seen[f.rawLoc] = struct{}{}
			}
		}
		return len(seen) >= r.Threshold
	}
	return false
}
