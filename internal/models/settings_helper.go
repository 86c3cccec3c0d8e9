package models

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/julianstephens/laughmeter/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingNotificationsEnabled:
			settings.NotificationsEnabled = value == "true"
		case constants.SettingSoundEnabled:
			settings.SoundEnabled = value == "true"
		case constants.SettingReminderHour:
			hour, err := strconv.Atoi(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing reminder_hour: %w", err)
			}
			settings.ReminderHour = hour
		case constants.SettingPeople:
			people := []string{}
			if err := json.Unmarshal([]byte(value), &people); err != nil {
				return Settings{}, fmt.Errorf("parsing people: %w", err)
			}
			settings.People = people
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
// The people key is omitted while the list has never been saved.
func SettingsToMap(settings Settings) (map[string]string, error) {
	data := map[string]string{
		constants.SettingTimezone:             settings.Timezone,
		constants.SettingNotificationsEnabled: strconv.FormatBool(settings.NotificationsEnabled),
		constants.SettingSoundEnabled:         strconv.FormatBool(settings.SoundEnabled),
		constants.SettingReminderHour:         strconv.Itoa(settings.ReminderHour),
	}
	if settings.People != nil {
		raw, err := json.Marshal(settings.People)
		if err != nil {
			return nil, fmt.Errorf("encoding people: %w", err)
		}
		data[constants.SettingPeople] = string(raw)
	}
	return data, nil
}

// DefaultSettings returns the settings written by a fresh init.
func DefaultSettings() Settings {
	s := Settings{
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
		SoundEnabled:         constants.DefaultSoundEnabled,
	}
	ApplyDefaultSettings(&s)
	return s
}

// ApplyDefaultSettings applies default values to missing settings.
// Booleans are left alone since false is a meaningful saved value, and a
// nil People list is left for people.Seed to resolve.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
	if settings.ReminderHour <= 0 || settings.ReminderHour > 23 {
		settings.ReminderHour = constants.DefaultReminderHour
	}
}
