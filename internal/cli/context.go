package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/laughmeter/internal/backup"
	"github.com/julianstephens/laughmeter/internal/constants"
	apperrors "github.com/julianstephens/laughmeter/internal/errors"
	"github.com/julianstephens/laughmeter/internal/journal"
	"github.com/julianstephens/laughmeter/internal/logger"
	"github.com/julianstephens/laughmeter/internal/models"
	"github.com/julianstephens/laughmeter/internal/notifier"
	"github.com/julianstephens/laughmeter/internal/storage"
	"github.com/julianstephens/laughmeter/internal/utils"
)

// ShortIDLength is how much of an entry ID listings print.
const ShortIDLength = 8

// Notifier sends a desktop notification.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

type Context struct {
	Store    storage.Provider
	Journal  *journal.Service
	Notifier Notifier

	// Out and In default to the process stdio when nil.
	Out io.Writer
	In  io.Reader
}

// NewContext wires a journal service over store.
func NewContext(store storage.Provider, opts ...journal.Option) *Context {
	return &Context{
		Store:    store,
		Journal:  journal.New(store, opts...),
		Notifier: notifier.New(),
	}
}

func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Stdin() io.Reader {
	if c.In == nil {
		return os.Stdin
	}
	return c.In
}

// Printf writes to the command output.
func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

// Print writes s unchanged to the command output.
func (c *Context) Print(s string) {
	fmt.Fprint(c.Stdout(), s)
}

// Println writes a line to the command output.
func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Stdout(), args...)
}

// Location returns the calendar used for day boundaries.
func (c *Context) Location() *time.Location {
	return c.Journal.Location()
}

// Now returns the current time in the calendar location.
func (c *Context) Now() time.Time {
	return c.Journal.Now()
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Announce prints badges the last mutation unlocked and, when enabled,
// sends a notification for each. Notification failures are only logged.
func (c *Context) Announce(snap journal.Snapshot) {
	if len(snap.NewlyUnlocked) == 0 {
		return
	}
	for _, b := range snap.NewlyUnlocked {
		c.Printf("🏆 Achievement unlocked: %s %s (%s)\n", b.Icon, b.Title, b.Description)
	}

	settings, err := c.Journal.Settings()
	if err != nil || !settings.NotificationsEnabled || c.Notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), constants.NotifyTimeout)
	defer cancel()
	for _, b := range snap.NewlyUnlocked {
		if err := c.Notifier.Notify(ctx, notifier.BadgeMessage(b)); err != nil {
			logger.Debug("Badge notification not sent", "badge", b.ID, "error", err)
			return
		}
	}
}

// ResolveLocation picks the calendar: an explicit override wins, then the
// saved timezone setting, then the system zone.
func ResolveLocation(override string, store storage.Provider) (*time.Location, error) {
	if override != "" {
		return utils.LoadLocation(override)
	}
	settings, err := store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to read timezone setting: %w", err)
	}
	return utils.LoadLocation(settings.Timezone)
}

// ResolveEntryID expands a full or abbreviated entry ID. Deleted entries
// are included so restore can find them.
func (c *Context) ResolveEntryID(prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", apperrors.NewInvalidInput("entry id is required")
	}
	entries, err := c.Store.GetAllEntriesIncludingDeleted()
	if err != nil {
		return "", fmt.Errorf("failed to read entries: %w", err)
	}
	var matches []string
	for _, e := range entries {
		if e.ID == prefix {
			return e.ID, nil
		}
		if strings.HasPrefix(e.ID, prefix) {
			matches = append(matches, e.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", apperrors.NewNotFound("entry", prefix)
	case 1:
		return matches[0], nil
	default:
		return "", apperrors.NewConflict("entry id %q is ambiguous (%d matches)", prefix, len(matches))
	}
}

// ShortID abbreviates an entry ID for display.
func ShortID(id string) string {
	if len(id) <= ShortIDLength {
		return id
	}
	return id[:ShortIDLength]
}

// FormatEntry renders one entry as a single listing line.
func FormatEntry(e models.Entry, loc *time.Location) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s", ShortID(e.ID), e.Timestamp.In(loc).Format(constants.DateTimeFormat), e.Mood.Emoji())
	if e.Person != "" {
		fmt.Fprintf(&b, "  with %s", e.Person)
	}
	if e.Location != "" {
		fmt.Fprintf(&b, "  @ %s", e.Location)
	}
	if e.Note != "" {
		fmt.Fprintf(&b, "  %q", e.Note)
	}
	if e.IsDeleted() {
		b.WriteString("  (deleted)")
	}
	return b.String()
}
