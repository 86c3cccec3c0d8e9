package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/laughmeter/internal/cli"
	"github.com/julianstephens/laughmeter/internal/cli/backups"
	"github.com/julianstephens/laughmeter/internal/cli/entries"
	"github.com/julianstephens/laughmeter/internal/cli/quickpick"
	"github.com/julianstephens/laughmeter/internal/cli/reports"
	"github.com/julianstephens/laughmeter/internal/cli/settings"
	"github.com/julianstephens/laughmeter/internal/cli/system"
	"github.com/julianstephens/laughmeter/internal/constants"
	apperrors "github.com/julianstephens/laughmeter/internal/errors"
	"github.com/julianstephens/laughmeter/internal/journal"
	"github.com/julianstephens/laughmeter/internal/logger"
	"github.com/julianstephens/laughmeter/internal/storage"
)

// App is the command tree and global flags.
type App struct {
	Version  kong.VersionFlag
	Config   string `help:"Journal path. Paths ending in .json use the single-file JSON store." type:"path" default:"${config_path}" env:"LAUGHMETER_CONFIG"`
	Debug    bool   `help:"Print debug logs to stderr."`
	Timezone string `help:"Timezone for days and streaks (IANA name or Local). Overrides the saved setting."`

	Init     system.InitCmd      `cmd:"" help:"Initialize laughmeter storage."`
	Tui      system.TuiCmd       `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Log      entries.LogCmd      `cmd:"" help:"Log a laugh."`
	Edit     entries.EditCmd     `cmd:"" help:"Edit the mood, person or note of an entry."`
	Delete   entries.DeleteCmd   `cmd:"" help:"Delete an entry."`
	Restore  entries.RestoreCmd  `cmd:"" help:"Restore a deleted entry."`
	Journal  entries.JournalCmd  `cmd:"" help:"List logged laughs, newest first."`
	Day      entries.DayCmd      `cmd:"" help:"Show the laughs logged on one day."`
	Export   entries.ExportCmd   `cmd:"" help:"Export entries as CSV."`
	Calendar reports.CalendarCmd `cmd:"" help:"Show a month calendar of laughs."`
	Stats    reports.StatsCmd    `cmd:"" help:"Show totals, streak and the last seven days."`
	Badges   reports.BadgesCmd   `cmd:"" help:"Show achievement badges."`
	Insights reports.InsightsCmd `cmd:"" help:"Chart laughs over a week, month, year or custom range."`
	Quote    reports.QuoteCmd    `cmd:"" help:"Show the quote of the day."`
	People   struct {
		List   quickpick.ListCmd   `cmd:"" help:"List quick-pick people." default:"1"`
		Add    quickpick.AddCmd    `cmd:"" help:"Add a person to the quick-pick list."`
		Remove quickpick.RemoveCmd `cmd:"" help:"Remove a person from the quick-pick list."`
		Move   quickpick.MoveCmd   `cmd:"" help:"Move a person to another position."`
		Rename quickpick.RenameCmd `cmd:"" help:"Rename a person on the quick-pick list."`
	} `cmd:"" help:"Manage the quick-pick people list."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage journal backups."`
	Notify   system.NotifyCmd   `cmd:"" help:"Send the daily reminder or a custom notification (run hourly from a scheduler)."`
	Doctor   system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Validate system.ValidateCmd `cmd:"" help:"Check stored entries for problems."`
}

// selfLoading commands open (or create) the store themselves.
var selfLoading = map[string]bool{
	"init":   true,
	"doctor": true,
}

func newParser(app *App, opts ...kong.Option) (*kong.Kong, error) {
	return kong.New(app, append([]kong.Option{
		kong.Name(constants.AppName),
		kong.Description("Log laughs, watch your streak and unlock badges"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	}, opts...)...)
}

func main() {
	var app App
	parser, err := newParser(&app)
	if err != nil {
		apperrors.Fatal(err)
	}
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	apperrors.Fatal(app.run(kctx, os.Stdout))
}

// run opens the store for the selected command and executes it, writing
// command output to out.
func (a *App) run(kctx *kong.Context, out io.Writer) error {
	path := storage.ExpandPath(a.Config)
	if err := logger.Init(logger.Config{Debug: a.Debug, ConfigDir: filepath.Dir(path)}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	command := strings.Fields(kctx.Command())[0]
	logger.Debug("Starting", "command", kctx.Command(), "config", path)

	store := storage.New(path)
	var opts []journal.Option
	if !selfLoading[command] {
		if err := store.Load(); err != nil {
			return err
		}
		loc, err := cli.ResolveLocation(a.Timezone, store)
		if err != nil {
			store.Close()
			return err
		}
		opts = append(opts, journal.WithLocation(loc))
	}

	appCtx := cli.NewContext(store, opts...)
	appCtx.Out = out
	err := kctx.Run(appCtx)
	if cerr := store.Close(); cerr != nil {
		logger.Warn("Failed to close store", "error", cerr)
	}
	return err
}
