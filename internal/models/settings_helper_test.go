package models

import (
	"reflect"
	"testing"

	"github.com/julianstephens/laughmeter/internal/constants"
)

func TestSettingsRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
	}{
		{"defaults", DefaultSettings()},
		{"custom people", Settings{Timezone: "Europe/Berlin", ReminderHour: 7, SoundEnabled: true, People: []string{"Mum", "Dad"}}},
		{"saved empty people", Settings{Timezone: "UTC", ReminderHour: 20, People: []string{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := SettingsToMap(tt.settings)
			if err != nil {
				t.Fatalf("SettingsToMap() error = %v", err)
			}
			got, err := MapToSettings(data)
			if err != nil {
				t.Fatalf("MapToSettings() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.settings) {
				t.Errorf("round trip = %+v, want %+v", got, tt.settings)
			}
		})
	}
}

func TestSettingsToMap_OmitsUnsavedPeople(t *testing.T) {
	data, err := SettingsToMap(DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := data[constants.SettingPeople]; ok {
		t.Error("people key written before the list was ever saved")
	}
}

func TestMapToSettings_Errors(t *testing.T) {
	tests := map[string]map[string]string{
		"bad hour":   {constants.SettingReminderHour: "noon"},
		"bad people": {constants.SettingPeople: "Mum,Dad"},
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := MapToSettings(data); err == nil {
				t.Error("MapToSettings() expected error")
			}
		})
	}
}

func TestApplyDefaultSettings(t *testing.T) {
	s := Settings{ReminderHour: 42}
	ApplyDefaultSettings(&s)
	if s.Timezone != constants.DefaultTimezone {
		t.Errorf("Timezone = %q, want %q", s.Timezone, constants.DefaultTimezone)
	}
	if s.ReminderHour != constants.DefaultReminderHour {
		t.Errorf("ReminderHour = %d, want %d", s.ReminderHour, constants.DefaultReminderHour)
	}
	if s.People != nil {
		t.Error("ApplyDefaultSettings seeded people")
	}
}
