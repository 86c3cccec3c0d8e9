package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/laughmeter/internal/constants"
	apperrors "github.com/julianstephens/laughmeter/internal/errors"
	"github.com/julianstephens/laughmeter/internal/models"
)

// jsonFormatVersion is bumped when the file layout changes.
const jsonFormatVersion = 1

// document is the on-disk layout of the JSON backend. Settings use the same
// key/value encoding as the SQLite settings table.
type document struct {
	Version  int                     `json:"version"`
	Settings map[string]string       `json:"settings"`
	Entries  map[string]models.Entry `json:"entries"`
}

// JSONStore keeps the whole journal in one file and rewrites it on every
// mutation. Suited to small journals and to syncing through a file share.
type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

// Init creates the file with default settings, or loads it if present.
func (s *JSONStore) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	settings, err := models.SettingsToMap(models.DefaultSettings())
	if err != nil {
		return err
	}
	s.doc = &document{
		Version:  jsonFormatVersion,
		Settings: settings,
		Entries:  make(map[string]models.Entry),
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Version > jsonFormatVersion {
		return fmt.Errorf("storage format version (%d) is newer than supported version (%d) - please upgrade the application", doc.Version, jsonFormatVersion)
	}
	if doc.Settings == nil {
		doc.Settings = make(map[string]string)
	}
	if doc.Entries == nil {
		doc.Entries = make(map[string]models.Entry)
	}
	s.doc = doc
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save writes through a temp file so a crash never leaves a truncated journal.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) loaded() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if err := s.loaded(); err != nil {
		return models.Settings{}, err
	}
	if len(s.doc.Settings) == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}
	settings, err := models.MapToSettings(s.doc.Settings)
	if err != nil {
		return models.Settings{}, err
	}
	models.ApplyDefaultSettings(&settings)
	return settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if err := s.loaded(); err != nil {
		return err
	}
	data, err := models.SettingsToMap(settings)
	if err != nil {
		return err
	}
	for k, v := range data {
		s.doc.Settings[k] = v
	}
	return s.save()
}

func (s *JSONStore) AddEntry(e models.Entry) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if e.ID == "" {
		return apperrors.NewInvalidInput("entry id is required")
	}
	if _, exists := s.doc.Entries[e.ID]; exists {
		return apperrors.NewConflict("entry %s already exists", e.ID)
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = e.CreatedAt
	}
	s.doc.Entries[e.ID] = e
	if err := s.save(); err != nil {
		delete(s.doc.Entries, e.ID)
		return err
	}
	return nil
}

func (s *JSONStore) GetEntry(id string) (models.Entry, error) {
	if err := s.loaded(); err != nil {
		return models.Entry{}, err
	}
	e, ok := s.doc.Entries[id]
	if !ok || e.IsDeleted() {
		return models.Entry{}, apperrors.NewNotFound("entry", id)
	}
	return e, nil
}

func (s *JSONStore) UpdateEntry(id string, patch models.EntryPatch) (models.Entry, error) {
	current, err := s.GetEntry(id)
	if err != nil {
		return models.Entry{}, err
	}
	if patch.IsEmpty() {
		return current, nil
	}
	updated := patch.Apply(current)
	updated.UpdatedAt = time.Now()
	s.doc.Entries[id] = updated
	if err := s.save(); err != nil {
		s.doc.Entries[id] = current
		return models.Entry{}, err
	}
	return updated, nil
}

func (s *JSONStore) DeleteEntry(id string) error {
	current, err := s.GetEntry(id)
	if err != nil {
		return err
	}
	now := time.Now()
	deleted := current
	deleted.DeletedAt = &now
	deleted.UpdatedAt = now
	s.doc.Entries[id] = deleted
	if err := s.save(); err != nil {
		s.doc.Entries[id] = current
		return err
	}
	return nil
}

func (s *JSONStore) RestoreEntry(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	current, ok := s.doc.Entries[id]
	if !ok {
		return apperrors.NewNotFound("entry", id)
	}
	if !current.IsDeleted() {
		return apperrors.NewConflict("entry %s is not deleted", id)
	}
	restored := current
	restored.DeletedAt = nil
	restored.UpdatedAt = time.Now()
	s.doc.Entries[id] = restored
	if err := s.save(); err != nil {
		s.doc.Entries[id] = current
		return err
	}
	return nil
}

func (s *JSONStore) GetAllEntries() ([]models.Entry, error) {
	return s.entries(false)
}

func (s *JSONStore) GetAllEntriesIncludingDeleted() ([]models.Entry, error) {
	return s.entries(true)
}

func (s *JSONStore) entries(includeDeleted bool) ([]models.Entry, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	out := make([]models.Entry, 0, len(s.doc.Entries))
	for _, e := range s.doc.Entries {
		if includeDeleted || !e.IsDeleted() {
			out = append(out, e)
		}
	}
	SortNewestFirst(out)
	return out, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
