package backups

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/laughmeter/internal/backup"
	"github.com/julianstephens/laughmeter/internal/cli"
	"github.com/julianstephens/laughmeter/internal/constants"
	"github.com/julianstephens/laughmeter/internal/logger"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	info, err := mgr.Create()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	ctx.Printf("✓ Backup created: %s (%s)\n", info.Name, humanize.Bytes(uint64(info.Size)))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		ctx.Println("No backups found.")
		ctx.Printf("Backups are stored in: %s\n", mgr.Dir())
		return nil
	}

	now := ctx.Now()
	ctx.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		ctx.Printf("  %s  %-36s %8s  %s\n",
			b.Timestamp.Format("2006-01-02 15:04:05"),
			b.Name,
			humanize.Bytes(uint64(b.Size)),
			humanize.RelTime(b.Timestamp, now, "ago", "from now"),
		)
	}
	ctx.Printf("\nBackup directory: %s\n", mgr.Dir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	src := mgr.Resolve(c.BackupFile)

	if !c.Yes {
		ctx.Println("⚠️  WARNING: This will replace your current journal with the backup.")
		ctx.Println("A backup of your current journal will be created before restoring.")
		ctx.Printf("\nRestore from: %s\n", src)
		ctx.Printf("Continue? [y/N]: ")

		response, err := bufio.NewReader(ctx.Stdin()).ReadString('\n')
		if err != nil && response == "" {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			ctx.Println("Restore cancelled.")
			return nil
		}
	}

	// Close the current store connection before restoring
	if err := ctx.Store.Close(); err != nil {
		logger.Warn("Failed to close store before restore", "error", err)
	}

	safety, err := mgr.Restore(c.BackupFile)
	if safety != nil {
		ctx.Printf("Created backup of current journal: %s\n", safety.Name)
	}
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	ctx.Println("✓ Journal restored successfully!")
	ctx.Printf("Restart any running %s processes to use the restored journal.\n", constants.AppName)
	return nil
}
