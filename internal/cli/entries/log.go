package entries

import (
	"github.com/julianstephens/laughmeter/internal/cli"
	"github.com/julianstephens/laughmeter/internal/constants"
	apperrors "github.com/julianstephens/laughmeter/internal/errors"
	"github.com/julianstephens/laughmeter/internal/journal"
	"github.com/julianstephens/laughmeter/internal/utils"
)

type LogCmd struct {
	Mood     string `short:"m" help:"Mood code or emoji (joy, laugh-tears, touched, dead-funny, smile). Defaults to smile."`
	Person   string `short:"p" help:"Who you laughed with."`
	Location string `short:"l" help:"Where it happened."`
	Note     string `short:"n" help:"A short note."`
	At       string `help:"When it happened (YYYY-MM-DD HH:MM). Defaults to now."`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	// Baseline so the post-log refresh can tell which badges are new.
	if _, err := ctx.Journal.Refresh(); err != nil {
		return err
	}

	in := journal.LogInput{
		Mood:     c.Mood,
		Person:   c.Person,
		Location: c.Location,
		Note:     c.Note,
	}
	if c.At != "" {
		at, err := utils.ParseDateTimeInLocation(c.At, ctx.Location())
		if err != nil {
			return apperrors.NewInvalidInput("%v", err)
		}
		in.At = &at
	}

	id, snap, err := ctx.Journal.Log(in)
	if err != nil {
		return err
	}

	for _, e := range snap.Entries {
		if e.ID == id {
			ctx.Printf("✓ Logged %s at %s (%s)\n", e.Mood.Emoji(), e.Timestamp.In(ctx.Location()).Format(constants.DateTimeFormat), cli.ShortID(id))
			break
		}
	}
	ctx.Printf("Laughs today: %d\n", snap.Stats.TodayCount)
	ctx.Announce(snap)
	return nil
}
