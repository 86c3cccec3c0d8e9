package entries

import (
	"github.com/julianstephens/laughmeter/internal/cli"
)

type DeleteCmd struct {
	ID string `arg:"" help:"Entry ID (or a unique prefix)."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	id, err := ctx.ResolveEntryID(c.ID)
	if err != nil {
		return err
	}
	if _, err := ctx.Journal.Delete(id); err != nil {
		return err
	}
	ctx.Printf("✓ Deleted entry %s. Undo with: laughmeter restore %s\n", cli.ShortID(id), cli.ShortID(id))
	return nil
}

type RestoreCmd struct {
	ID string `arg:"" help:"ID (or a unique prefix) of a deleted entry."`
}

func (c *RestoreCmd) Run(ctx *cli.Context) error {
	id, err := ctx.ResolveEntryID(c.ID)
	if err != nil {
		return err
	}
	if _, err := ctx.Journal.Refresh(); err != nil {
		return err
	}
	snap, err := ctx.Journal.Restore(id)
	if err != nil {
		return err
	}
	ctx.Printf("✓ Restored entry %s\n", cli.ShortID(id))
	ctx.Announce(snap)
	return nil
}
