package models

// Settings represents application-wide settings
type Settings struct {
	Timezone             string   `json:"timezone" validate:"required,tzname"`            // IANA timezone name, or "Local" for the system timezone
	NotificationsEnabled bool     `json:"notifications_enabled"`                          // whether reminder and badge notifications are sent
	SoundEnabled         bool     `json:"sound_enabled"`                                  // whether the TUI rings the terminal bell on log
	ReminderHour         int      `json:"reminder_hour" validate:"min=1,max=23"`          // local hour (1-23) at which the daily reminder fires
	People               []string `json:"people" validate:"dive,required,max=80,trimmed"` // quick-pick person labels; nil means never saved
}
