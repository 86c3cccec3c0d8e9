package reports

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/laughmeter/internal/cli"
	apperrors "github.com/julianstephens/laughmeter/internal/errors"
	"github.com/julianstephens/laughmeter/internal/stats"
	"github.com/julianstephens/laughmeter/internal/utils"
)

const monthLayout = "2006-01"

type CalendarCmd struct {
	Month string `arg:"" optional:"" help:"Month to show (YYYY-MM). Defaults to the current month."`
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	loc := ctx.Location()
	now := ctx.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	if c.Month != "" {
		m, err := time.ParseInLocation(monthLayout, c.Month, loc)
		if err != nil {
			return apperrors.NewInvalidInput("invalid month %q, use YYYY-MM", c.Month)
		}
		first = m
	}

	snap, err := ctx.Journal.Refresh()
	if err != nil {
		return err
	}
	ctx.Print(RenderMonth(first, snap.Stats, now))
	return nil
}

// RenderMonth draws a Monday-first month grid. Days with laughs carry a
// dot; today is bracketed.
func RenderMonth(first time.Time, s stats.Snapshot, now time.Time) string {
	loc := first.Location()
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", first.Format("January 2006"))
	b.WriteString(" Mo   Tu   We   Th   Fr   Sa   Su\n")

	// Monday = column 0.
	offset := (int(first.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("     ", offset))

	laughs, days := 0, 0
	col := offset
	for day := first; day.Month() == first.Month(); day = utils.AddDays(day, 1) {
		n := s.ByDate[utils.DayKey(day, loc)]
		if n > 0 {
			laughs += n
			days++
		}
		mark := " "
		if n > 0 {
			mark = "•"
		}
		if utils.SameDay(day, now, loc) {
			fmt.Fprintf(&b, "[%2d]%s", day.Day(), mark)
		} else {
			fmt.Fprintf(&b, " %2d %s", day.Day(), mark)
		}
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n%d laughs on %d days\n", laughs, days)
	return b.String()
}
