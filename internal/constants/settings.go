package constants

const (
	SettingTimezone             = "timezone"
	SettingNotificationsEnabled = "notifications_enabled"
	SettingSoundEnabled         = "sound_enabled"
	SettingReminderHour         = "reminder_hour"
	SettingPeople               = "people"

	DefaultTimezone             = "Local" // Use system local timezone by default
	DefaultNotificationsEnabled = true
	DefaultSoundEnabled         = true
	DefaultReminderHour         = 20
)

// DefaultPeople seeds the quick-pick list the first time settings are created.
var DefaultPeople = []string{"Friends", "Partner", "Family", "Work", "Self"}
