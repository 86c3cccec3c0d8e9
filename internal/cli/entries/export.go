package entries

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/laughmeter/internal/cli"
	"github.com/julianstephens/laughmeter/internal/export"
	"github.com/julianstephens/laughmeter/internal/storage"
)

type ExportCmd struct {
	Output string `short:"o" help:"Write CSV to this file instead of stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	all, err := ctx.Store.GetAllEntries()
	if err != nil {
		return fmt.Errorf("failed to read entries: %w", err)
	}

	if c.Output == "" {
		return export.WriteCSV(ctx.Stdout(), all, ctx.Location())
	}

	path := storage.ExpandPath(c.Output)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := export.WriteCSV(f, all, ctx.Location()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	ctx.Printf("✓ Exported %d entries to %s\n", len(all), path)
	return nil
}
