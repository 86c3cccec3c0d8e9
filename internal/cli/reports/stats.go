package reports

import (
	"fmt"

	"github.com/julianstephens/laughmeter/internal/cli"
	"github.com/julianstephens/laughmeter/internal/constants"
	"github.com/julianstephens/laughmeter/internal/stats"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	snap, err := ctx.Journal.Refresh()
	if err != nil {
		return err
	}
	s := snap.Stats

	streak := "no laughs yet today"
	if s.StreakDays > 0 {
		streak = fmt.Sprintf("🔥 %d day", s.StreakDays)
	}

	ctx.Printf("Total laughs:  %d\n", s.Total)
	ctx.Printf("Today:         %d\n", s.TodayCount)
	ctx.Printf("Streak:        %s\n", streak)
	ctx.Printf("Top person:    %s\n", orNone(s.TopPerson))
	ctx.Printf("Top location:  %s\n", orNone(s.TopLocation))
	ctx.Printf("Last laugh:    %s\n", s.LastLaugh)

	counts := make([]int, len(s.Weekly))
	for i, d := range s.Weekly {
		counts[i] = d.Count
	}
	top := maxOf(counts)

	ctx.Printf("\nLast %d days:\n", stats.WeekDays)
	for _, d := range s.Weekly {
		ctx.Printf("  %s  %-*s %d\n", d.Day.Format("Mon 01-02"), barWidth, bar(d.Count, top), d.Count)
	}
	return nil
}

func orNone(s string) string {
	if s == "" {
		return constants.NoValue
	}
	return s
}
