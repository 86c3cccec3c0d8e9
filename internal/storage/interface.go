package storage

import "github.com/julianstephens/laughmeter/internal/models"

// Provider is the entry store. Reads return live entries only unless the
// method says otherwise; deletes are soft and reversible.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Entries
	AddEntry(models.Entry) error
	GetEntry(id string) (models.Entry, error)
	// UpdateEntry applies patch to a live entry and returns the result.
	UpdateEntry(id string, patch models.EntryPatch) (models.Entry, error)
	DeleteEntry(id string) error
	RestoreEntry(id string) error
	// GetAllEntries returns live entries, newest timestamp first.
	GetAllEntries() ([]models.Entry, error)
	GetAllEntriesIncludingDeleted() ([]models.Entry, error)

	// Utils
	GetConfigPath() string
}
