package entries

import (
	"github.com/julianstephens/laughmeter/internal/cli"
	"github.com/julianstephens/laughmeter/internal/constants"
	apperrors "github.com/julianstephens/laughmeter/internal/errors"
	"github.com/julianstephens/laughmeter/internal/models"
)

type EditCmd struct {
	ID     string  `arg:"" help:"Entry ID (or a unique prefix)."`
	Mood   *string `short:"m" help:"New mood code or emoji."`
	Person *string `short:"p" help:"New person. Pass an empty string to clear."`
	Note   *string `short:"n" help:"New note. Pass an empty string to clear."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	patch := models.EntryPatch{Person: c.Person, Note: c.Note}
	if c.Mood != nil {
		mood := constants.Mood(*c.Mood)
		patch.Mood = &mood
	}
	if patch.IsEmpty() {
		return apperrors.NewInvalidInput("nothing to change; pass --mood, --person or --note")
	}

	id, err := ctx.ResolveEntryID(c.ID)
	if err != nil {
		return err
	}
	if _, err := ctx.Journal.Refresh(); err != nil {
		return err
	}
	snap, err := ctx.Journal.Edit(id, patch)
	if err != nil {
		return err
	}

	for _, e := range snap.Entries {
		if e.ID == id {
			ctx.Printf("✓ Updated %s\n", cli.FormatEntry(e, ctx.Location()))
			break
		}
	}
	ctx.Announce(snap)
	return nil
}
