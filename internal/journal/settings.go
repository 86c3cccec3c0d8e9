package journal

import (
	"fmt"

	"github.com/julianstephens/laughmeter/internal/models"
	"github.com/julianstephens/laughmeter/internal/people"
	"github.com/julianstephens/laughmeter/internal/validation"
)

// Settings loads settings with defaults applied.
func (s *Service) Settings() (models.Settings, error) {
	settings, err := s.store.GetSettings()
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	models.ApplyDefaultSettings(&settings)
	return settings, nil
}

// SaveSettings validates and persists settings.
func (s *Service) SaveSettings(settings models.Settings) error {
	if err := validation.Struct(settings); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// People returns the quick-pick list, seeded with defaults until first saved.
func (s *Service) People() (*people.List, error) {
	settings, err := s.store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load people: %w", err)
	}
	return people.Seed(settings.People, settings.People != nil), nil
}

// SavePeople persists the quick-pick list.
func (s *Service) SavePeople(list *people.List) error {
	settings, err := s.Settings()
	if err != nil {
		return err
	}
	settings.People = list.Names()
	if settings.People == nil {
		settings.People = []string{}
	}
	return s.SaveSettings(settings)
}
