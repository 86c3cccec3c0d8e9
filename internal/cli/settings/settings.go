package settings

import (
	"strings"

	"github.com/julianstephens/laughmeter/internal/cli"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone             *string `help:"IANA timezone for day boundaries, or Local."`
	NotificationsEnabled *bool   `help:"Enable or disable notifications."`
	SoundEnabled         *bool   `help:"Ring the terminal bell when logging in the TUI."`
	ReminderHour         *int    `help:"Hour (1-23) for the daily reminder."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Journal.Settings()
	if err != nil {
		return err
	}

	if c.List {
		people := "(defaults)"
		if settings.People != nil {
			people = strings.Join(settings.People, ", ")
		}
		ctx.Println("Current Settings:")
		ctx.Printf("  Timezone:              %s\n", settings.Timezone)
		ctx.Printf("  Reminder Hour:         %d:00\n", settings.ReminderHour)
		ctx.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		ctx.Printf("  Sound Enabled:         %v\n", settings.SoundEnabled)
		ctx.Printf("  People:                %s\n", people)
		return nil
	}

	updated := false
	if c.Timezone != nil {
		settings.Timezone = strings.TrimSpace(*c.Timezone)
		updated = true
	}
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.SoundEnabled != nil {
		settings.SoundEnabled = *c.SoundEnabled
		updated = true
	}
	if c.ReminderHour != nil {
		settings.ReminderHour = *c.ReminderHour
		updated = true
	}

	if !updated {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}
	if err := ctx.Journal.SaveSettings(settings); err != nil {
		return err
	}
	ctx.Println("Settings updated successfully.")
	return nil
}
