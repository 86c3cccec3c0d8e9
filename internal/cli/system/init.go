package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/laughmeter/internal/cli"
	"github.com/julianstephens/laughmeter/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting the existing journal before initialization."`
	Source string `help:"Journal file (.db or .json) to copy settings and entries from." type:"path"`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()
	if c.Source != "" {
		absPath, _ := filepath.Abs(path)
		absSource, _ := filepath.Abs(storage.ExpandPath(c.Source))
		if absPath == absSource {
			return fmt.Errorf("source and destination are the same: %s", path)
		}
	}

	if c.Force {
		if _, err := os.Stat(path); err == nil {
			// Close first to release the file before deleting it
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing journal: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing journal: %w", err)
			}
			ctx.Printf("Deleted existing journal at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing journal: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized laughmeter storage at: %s\n", path)

	if c.Source != "" {
		ctx.Printf("Importing from: %s\n", c.Source)
		if err := c.importFrom(ctx, storage.New(storage.ExpandPath(c.Source))); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		ctx.Println("Import completed successfully!")
	}
	return nil
}

// importFrom copies settings and every entry, deleted ones included, from
// src into the context store.
func (c *InitCmd) importFrom(ctx *cli.Context, src storage.Provider) error {
	if err := src.Load(); err != nil {
		return fmt.Errorf("failed to load source journal: %w", err)
	}
	defer src.Close()

	settings, err := src.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}
	ctx.Println("  Imported settings")

	entries, err := src.GetAllEntriesIncludingDeleted()
	if err != nil {
		return fmt.Errorf("failed to get entries from source: %w", err)
	}
	for _, e := range entries {
		if err := ctx.Store.AddEntry(e); err != nil {
			return fmt.Errorf("failed to add entry %s: %w", e.ID, err)
		}
	}
	ctx.Printf("  Imported %d entries\n", len(entries))
	return nil
}
