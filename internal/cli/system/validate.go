package system

import (
	"fmt"

	"github.com/julianstephens/laughmeter/internal/cli"
	"github.com/julianstephens/laughmeter/internal/validation"
)

type ValidateCmd struct {
	Deleted bool `help:"Also check deleted entries."`
}

func (cmd *ValidateCmd) Run(ctx *cli.Context) error {
	getAll := ctx.Store.GetAllEntries
	if cmd.Deleted {
		getAll = ctx.Store.GetAllEntriesIncludingDeleted
	}
	entries, err := getAll()
	if err != nil {
		return fmt.Errorf("failed to load entries: %w", err)
	}

	ctx.Printf("Validating %d entries...\n\n", len(entries))
	result := validation.ValidateEntries(entries, ctx.Now())
	ctx.Println(result.FormatReport())

	// Conflicts are reported, not treated as a command failure.
	return nil
}
