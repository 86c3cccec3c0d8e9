package system

import (
	"context"
	"fmt"

	"github.com/julianstephens/laughmeter/internal/cli"
	"github.com/julianstephens/laughmeter/internal/constants"
	"github.com/julianstephens/laughmeter/internal/notifier"
	"github.com/julianstephens/laughmeter/internal/quotes"
)

// NotifyCmd is meant to run hourly from cron or a launch agent. Without a
// message it sends the daily reminder at the configured hour, and only when
// nothing has been logged today.
type NotifyCmd struct {
	Message string `arg:"" optional:"" help:"Send this text instead of the daily reminder."`
	DryRun  bool   `help:"Print notifications to stdout instead of sending them."`
	Force   bool   `help:"Send the reminder regardless of the hour."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Journal.Settings()
	if err != nil {
		return err
	}
	if !settings.NotificationsEnabled {
		if c.DryRun {
			ctx.Println("Notifications are disabled in settings.")
		}
		return nil
	}

	msg := c.Message
	if msg == "" {
		now := ctx.Now()
		if !c.Force && now.Hour() != settings.ReminderHour {
			if c.DryRun {
				ctx.Printf("Not reminder time (reminders fire at %d:00).\n", settings.ReminderHour)
			}
			return nil
		}
		snap, err := ctx.Journal.Refresh()
		if err != nil {
			return err
		}
		if snap.Stats.TodayCount > 0 {
			if c.DryRun {
				ctx.Printf("Already logged %d laughs today; no reminder needed.\n", snap.Stats.TodayCount)
			}
			return nil
		}
		msg = notifier.ReminderMessage(quotes.ForDay(now))
	}

	if c.DryRun {
		ctx.Println("[DryRun] " + msg)
		return nil
	}

	nctx, cancel := context.WithTimeout(context.Background(), constants.NotifyTimeout)
	defer cancel()
	if err := ctx.Notifier.Notify(nctx, msg); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}
