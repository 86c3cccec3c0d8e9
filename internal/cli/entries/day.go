package entries

import (
	"fmt"

	"github.com/julianstephens/laughmeter/internal/cli"
	"github.com/julianstephens/laughmeter/internal/constants"
	apperrors "github.com/julianstephens/laughmeter/internal/errors"
	"github.com/julianstephens/laughmeter/internal/utils"
)

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	loc := ctx.Location()
	day := utils.StartOfDay(ctx.Now(), loc)
	if c.Date != "today" {
		var err error
		day, err = utils.ParseDateInLocation(c.Date, loc)
		if err != nil {
			return apperrors.NewInvalidInput("invalid date format, use YYYY-MM-DD or 'today': %v", err)
		}
	}

	all, err := ctx.Store.GetAllEntries()
	if err != nil {
		return fmt.Errorf("failed to read entries: %w", err)
	}

	ctx.Printf("Laughs on %s:\n\n", day.Format(constants.DateFormat))
	n := 0
	for _, e := range all {
		if !utils.SameDay(e.Timestamp, day, loc) {
			continue
		}
		ctx.Printf("  %s\n", cli.FormatEntry(e, loc))
		n++
	}
	if n == 0 {
		ctx.Println("  Nothing logged")
		return nil
	}
	ctx.Printf("\n%d total\n", n)
	return nil
}
