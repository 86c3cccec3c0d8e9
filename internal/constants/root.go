package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "laughmeter"
	DefaultConfigPath = "~/.config/laughmeter/laughmeter.db"
	Version           = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DateTimeFormat is accepted by --at flags and printed in journal listings
	DateTimeFormat = "2006-01-02 15:04"

	// Log rotation
	LogMaxSizeMB  = 5
	LogMaxBackups = 3
	LogMaxAgeDays = 28

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "laughmeter-"

	// Notify constants
	NotifierLockfileName   = "laughmeter-notifier.lock"
	NotificationDurationMs = 5000
	NotifyTimeout          = 3 * time.Second
	TrayAppIdentifier      = "com.julianstephens.laughmeter"
	TrayAppExecutable      = "laughmeter-tray"

	// Validation limits
	MaxLabelLength = 80
	MaxNoteLength  = 500

	// NoValue is printed where a top person or location is unknown
	NoValue = "---"
)

// Session States
const (
	StateHome SessionState = iota
	StateJournal
	StateCalendar
	StateInsights
	StateBadges
	StatePeople
	StateLogForm
	StateEditForm
	StateAddPerson
	StateConfirmDelete
)

// MainStates lists the tabbed views in display order
var MainStates = []SessionState{StateHome, StateJournal, StateCalendar, StateInsights, StateBadges, StatePeople}
