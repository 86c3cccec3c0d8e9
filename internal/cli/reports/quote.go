package reports

import (
	"github.com/julianstephens/laughmeter/internal/cli"
	"github.com/julianstephens/laughmeter/internal/quotes"
)

type QuoteCmd struct{}

func (c *QuoteCmd) Run(ctx *cli.Context) error {
	ctx.Println(quotes.ForDay(ctx.Now()))
	return nil
}
