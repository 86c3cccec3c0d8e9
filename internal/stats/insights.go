package stats

import (
	"time"

	apperrors "github.com/julianstephens/laughmeter/internal/errors"
	"github.com/julianstephens/laughmeter/internal/models"
	"github.com/julianstephens/laughmeter/internal/utils"
)

// RangeKind names an insights period.
type RangeKind string

const (
	RangeWeek   RangeKind = "week"
	RangeMonth  RangeKind = "month"
	RangeYear   RangeKind = "year"
	RangeCustom RangeKind = "custom"
)

// MaxCustomDays bounds a custom range so the per-day chart stays readable.
const MaxCustomDays = 366

// RangeKinds lists the selectable periods in picker order.
var RangeKinds = []RangeKind{RangeWeek, RangeMonth, RangeYear, RangeCustom}

// BucketUnit is the width of one chart bar.
type BucketUnit string

const (
	UnitDay   BucketUnit = "day"
	UnitMonth BucketUnit = "month"
)

// Range selects the period for Insights. Start and End are only read for
// RangeCustom and are inclusive calendar days.
type Range struct {
	Kind  RangeKind
	Start time.Time
	End   time.Time
}

// Bucket is one bar of the insights chart.
type Bucket struct {
	Start time.Time
	Count int
}

// Insight summarizes the entries inside a period.
type Insight struct {
	Kind      RangeKind
	From      time.Time // inclusive
	To        time.Time // exclusive
	Unit      BucketUnit
	Total     int
	Buckets   []Bucket
	TopPerson string
}

// ParseRangeKind validates a period name.
func ParseRangeKind(s string) (RangeKind, error) {
	for _, k := range RangeKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", apperrors.NewInvalidInput("unknown range %q (expected week, month, year or custom)", s)
}

// Insights buckets the entries that fall in r, as seen from now.
func Insights(entries []models.Entry, r Range, now time.Time) (Insight, error) {
	loc := now.Location()
	today := utils.StartOfDay(now, loc)

	in := Insight{Kind: r.Kind, Unit: UnitDay}
	switch r.Kind {
	case RangeWeek:
		in.From, in.To = utils.AddDays(today, -6), utils.AddDays(today, 1)
	case RangeMonth:
		in.From, in.To = utils.AddDays(today, -29), utils.AddDays(today, 1)
	case RangeYear:
		in.Unit = UnitMonth
		thisMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)
		in.From, in.To = thisMonth.AddDate(0, -11, 0), thisMonth.AddDate(0, 1, 0)
	case RangeCustom:
		if r.Start.IsZero() || r.End.IsZero() {
			return Insight{}, apperrors.NewInvalidInput("custom range needs a start and end date")
		}
		start, end := utils.StartOfDay(r.Start, loc), utils.StartOfDay(r.End, loc)
		if end.Before(start) {
			return Insight{}, apperrors.NewInvalidInput("range end %s is before start %s",
				utils.DayKey(end, loc), utils.DayKey(start, loc))
		}
		in.From, in.To = start, utils.AddDays(end, 1)
		if days := len(dayStarts(in.From, in.To)); days > MaxCustomDays {
			return Insight{}, apperrors.NewInvalidInput("custom range spans %d days (max %d)", days, MaxCustomDays)
		}
	default:
		return Insight{}, apperrors.NewInvalidInput("unknown range %q", r.Kind)
	}

	var starts []time.Time
	if in.Unit == UnitMonth {
		for m := in.From; m.Before(in.To); m = m.AddDate(0, 1, 0) {
			starts = append(starts, m)
		}
	} else {
		starts = dayStarts(in.From, in.To)
	}
	in.Buckets = make([]Bucket, len(starts))
	index := make(map[string]int, len(starts))
	for i, s := range starts {
		in.Buckets[i].Start = s
		index[bucketKey(s, in.Unit)] = i
	}

	people := newTally()
	for _, e := range entries {
		ts := e.Timestamp.In(loc)
		if ts.Before(in.From) || !ts.Before(in.To) {
			continue
		}
		in.Total++
		if i, ok := index[bucketKey(ts, in.Unit)]; ok {
			in.Buckets[i].Count++
		}
		people.add(e.Person)
	}
	in.TopPerson = people.top
	return in, nil
}

func dayStarts(from, to time.Time) []time.Time {
	var out []time.Time
	for d := from; d.Before(to); d = utils.AddDays(d, 1) {
		out = append(out, d)
	}
	return out
}

func bucketKey(t time.Time, unit BucketUnit) string {
	if unit == UnitMonth {
		return t.Format("2006-01")
	}
	return t.Format("2006-01-02")
}
