package reports

import (
	"github.com/julianstephens/laughmeter/internal/achievements"
	"github.com/julianstephens/laughmeter/internal/cli"
)

type BadgesCmd struct {
	Unlocked bool `help:"Only show unlocked badges." xor:"filter"`
	Locked   bool `help:"Only show locked badges." xor:"filter"`
}

func (c *BadgesCmd) Run(ctx *cli.Context) error {
	snap, err := ctx.Journal.Refresh()
	if err != nil {
		return err
	}

	ctx.Printf("Badges: %d/%d unlocked\n\n", achievements.UnlockedCount(snap.Badges), len(snap.Badges))
	for _, b := range snap.Badges {
		if (c.Unlocked && !b.Unlocked) || (c.Locked && b.Unlocked) {
			continue
		}
		mark, icon := "🔒", "  "
		if b.Unlocked {
			mark, icon = "✓ ", b.Icon
		}
		ctx.Printf("%s %s %s: %s\n", mark, icon, b.Title, b.Description)
	}
	return nil
}
