package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/laughmeter/internal/backup"
	"github.com/julianstephens/laughmeter/internal/cli"
	"github.com/julianstephens/laughmeter/internal/constants"
	"github.com/julianstephens/laughmeter/internal/notifier"
	"github.com/julianstephens/laughmeter/internal/storage/sqlite"
	"github.com/julianstephens/laughmeter/internal/utils"
	"github.com/julianstephens/laughmeter/internal/validation"
)

type DoctorCmd struct{}

// healthCheck is one diagnostic. Warnings are reported but never fail the
// run; checks that need the store are skipped when it is unreachable.
type healthCheck struct {
	name     string
	needsDB  bool
	warnOnly bool
	run      func(*cli.Context) error
}

var healthChecks = []healthCheck{
	{name: "Storage reachable", run: checkStoreReachable},
	{name: "Schema version", needsDB: true, run: checkSchemaVersion},
	{name: "Settings valid", needsDB: true, run: checkSettings},
	{name: "Entry integrity", needsDB: true, run: checkEntries},
	{name: "Clock/timezone", needsDB: true, run: checkClockTimezone},
	{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
	{name: "Tray notifier", needsDB: true, warnOnly: true, run: checkTray},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	reachable := true
	for _, hc := range healthChecks {
		if hc.needsDB && !reachable {
			ctx.Printf("⊘ %s: SKIPPED (storage not reachable)\n", hc.name)
			continue
		}
		err := hc.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", hc.name)
		case hc.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", hc.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", hc.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
			if !hc.needsDB {
				reachable = false
			}
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	if s, ok := ctx.Store.(*sqlite.Store); ok {
		db := s.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var one int
		if err := db.QueryRow("SELECT 1").Scan(&one); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	s, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		// JSON journals carry no schema version
		return nil
	}
	st, err := s.SchemaStatus()
	if err != nil {
		return err
	}
	if !st.UpToDate() {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", st.Current, st.Latest)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	return validation.Struct(settings)
}

func checkEntries(ctx *cli.Context) error {
	entries, err := ctx.Store.GetAllEntriesIncludingDeleted()
	if err != nil {
		return fmt.Errorf("failed to get entries: %w", err)
	}
	result := validation.ValidateEntries(entries, ctx.Now())
	if result.HasConflicts() {
		return fmt.Errorf("%s", result.FormatReport())
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if _, err := utils.LoadLocation(settings.Timezone); err != nil {
		return err
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with '%s backup create'", constants.AppName)
	}
	return nil
}

func checkTray(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if !settings.NotificationsEnabled {
		return nil
	}
	if _, err := notifier.New().Locate(); err != nil {
		return fmt.Errorf("notifications are enabled but the tray app is unavailable: %w", err)
	}
	return nil
}
