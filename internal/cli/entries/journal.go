package entries

import (
	"fmt"
	"strings"

	"github.com/julianstephens/laughmeter/internal/cli"
	"github.com/julianstephens/laughmeter/internal/models"
)

type JournalCmd struct {
	Limit   int    `short:"n" help:"Show at most this many entries (0 for all)." default:"20"`
	Person  string `short:"p" help:"Only entries with this person (case-insensitive)."`
	Deleted bool   `help:"Include deleted entries."`
}

func (c *JournalCmd) Run(ctx *cli.Context) error {
	var (
		all []models.Entry
		err error
	)
	if c.Deleted {
		all, err = ctx.Store.GetAllEntriesIncludingDeleted()
	} else {
		all, err = ctx.Store.GetAllEntries()
	}
	if err != nil {
		return fmt.Errorf("failed to read entries: %w", err)
	}

	var shown []models.Entry
	for _, e := range all {
		if c.Person != "" && !strings.EqualFold(strings.TrimSpace(e.Person), strings.TrimSpace(c.Person)) {
			continue
		}
		shown = append(shown, e)
	}

	if len(shown) == 0 {
		ctx.Println("No laughs logged yet. Try: laughmeter log --mood joy")
		return nil
	}

	total := len(shown)
	if c.Limit > 0 && len(shown) > c.Limit {
		shown = shown[:c.Limit]
	}
	for _, e := range shown {
		ctx.Println(cli.FormatEntry(e, ctx.Location()))
	}
	if len(shown) < total {
		ctx.Printf("\n… %d more (use --limit 0 to show all)\n", total-len(shown))
	}
	return nil
}
