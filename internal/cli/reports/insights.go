package reports

import (
	"time"

	"github.com/julianstephens/laughmeter/internal/cli"
	"github.com/julianstephens/laughmeter/internal/constants"
	apperrors "github.com/julianstephens/laughmeter/internal/errors"
	"github.com/julianstephens/laughmeter/internal/stats"
	"github.com/julianstephens/laughmeter/internal/utils"
)

type InsightsCmd struct {
	Range string `arg:"" optional:"" help:"Period: week, month, year or custom." default:"week"`
	From  string `help:"First day of a custom range (YYYY-MM-DD)."`
	To    string `help:"Last day of a custom range (YYYY-MM-DD)."`
}

func (c *InsightsCmd) Run(ctx *cli.Context) error {
	kind, err := stats.ParseRangeKind(c.Range)
	if err != nil {
		return err
	}
	r := stats.Range{Kind: kind}
	if kind == stats.RangeCustom {
		if r.Start, err = parseDay(c.From, ctx); err != nil {
			return err
		}
		if r.End, err = parseDay(c.To, ctx); err != nil {
			return err
		}
	}

	snap, err := ctx.Journal.Refresh()
	if err != nil {
		return err
	}
	in, err := stats.Insights(snap.Entries, r, ctx.Now())
	if err != nil {
		return err
	}

	last := in.To.AddDate(0, 0, -1)
	ctx.Printf("Insights (%s): %s to %s\n", in.Kind, in.From.Format(constants.DateFormat), last.Format(constants.DateFormat))
	ctx.Printf("Total laughs:  %d\n", in.Total)
	ctx.Printf("Top person:    %s\n\n", orNone(in.TopPerson))

	counts := make([]int, len(in.Buckets))
	for i, b := range in.Buckets {
		counts[i] = b.Count
	}
	top := maxOf(counts)

	label := "Mon 01-02"
	if in.Unit == stats.UnitMonth {
		label = "Jan 2006"
	}
	for _, b := range in.Buckets {
		ctx.Printf("  %-9s  %-*s %d\n", b.Start.Format(label), barWidth, bar(b.Count, top), b.Count)
	}
	return nil
}

func parseDay(s string, ctx *cli.Context) (time.Time, error) {
	if s == "" {
		return time.Time{}, apperrors.NewInvalidInput("custom range needs --from and --to")
	}
	t, err := utils.ParseDateInLocation(s, ctx.Location())
	if err != nil {
		return time.Time{}, apperrors.NewInvalidInput("invalid date %q, use YYYY-MM-DD", s)
	}
	return t, nil
}
