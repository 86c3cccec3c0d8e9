// Package journal is the application service over the entry store. Every
// mutation goes through it and ends in a full refresh: re-read all entries,
// recompute stats and badges, hand back one consistent Snapshot.
package journal

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/laughmeter/internal/achievements"
	"github.com/julianstephens/laughmeter/internal/constants"
	"github.com/julianstephens/laughmeter/internal/logger"
	"github.com/julianstephens/laughmeter/internal/models"
	"github.com/julianstephens/laughmeter/internal/stats"
	"github.com/julianstephens/laughmeter/internal/storage"
	"github.com/julianstephens/laughmeter/internal/validation"
)

// errorBuffer is how many unread refresh failures Errors() holds before
// newer ones are dropped.
const errorBuffer = 8

// Snapshot is the derived view of the journal after one refresh.
type Snapshot struct {
	Entries []models.Entry
	Stats   stats.Snapshot
	Badges  []achievements.BadgeStatus
	// NewlyUnlocked holds badges unlocked by this refresh relative to the
	// previous one. Empty on the first refresh.
	NewlyUnlocked []achievements.BadgeStatus
	RefreshedAt   time.Time
}

// Status records the outcome of the most recent refreshes.
type Status struct {
	LastSuccessAt time.Time
	LastError     error
	LastErrorAt   time.Time
	// Failures counts consecutive failed refreshes.
	Failures int
}

// Healthy reports whether the last refresh succeeded.
func (s Status) Healthy() bool {
	return s.Failures == 0
}

// LogInput describes a new laugh. Empty Mood means the default mood; a nil
// At means now.
type LogInput struct {
	Mood     string `validate:"omitempty,mood"`
	Person   string `validate:"max=80"`
	Location string `validate:"max=80"`
	Note     string `validate:"max=500"`
	At       *time.Time
}

type patchInput struct {
	Mood   string `validate:"omitempty,mood"`
	Person string `validate:"max=80"`
	Note   string `validate:"max=500"`
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.clock = now }
}

// WithLocation sets the calendar used for "today" and day buckets.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// Service serializes mutations and refreshes against one store.
type Service struct {
	mu    sync.Mutex
	store storage.Provider
	clock func() time.Time
	loc   *time.Location

	snap    Snapshot
	hasSnap bool
	status  Status
	errs    chan error
}

// New wraps an opened store.
func New(store storage.Provider, opts ...Option) *Service {
	s := &Service{
		store: store,
		clock: time.Now,
		loc:   time.Local,
		errs:  make(chan error, errorBuffer),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the underlying provider.
func (s *Service) Store() storage.Provider {
	return s.store
}

// Now returns the service clock in its calendar location.
func (s *Service) Now() time.Time {
	return s.clock().In(s.loc)
}

// Location returns the calendar location.
func (s *Service) Location() *time.Location {
	return s.loc
}

// Log validates and appends a new entry, then refreshes. It returns the new
// entry's ID.
func (s *Service) Log(in LogInput) (string, Snapshot, error) {
	in.Mood = strings.TrimSpace(in.Mood)
	in.Person = strings.TrimSpace(in.Person)
	in.Location = strings.TrimSpace(in.Location)
	in.Note = strings.TrimSpace(in.Note)
	if err := validation.Struct(in); err != nil {
		return "", Snapshot{}, err
	}

	mood := constants.DefaultMood
	if in.Mood != "" {
		mood, _ = constants.ParseMood(in.Mood)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	ts := now
	if in.At != nil {
		ts = *in.At
	}
	entry := models.Entry{
		ID:        uuid.New().String(),
		Timestamp: ts,
		Mood:      mood,
		Person:    in.Person,
		Location:  in.Location,
		Note:      in.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.AddEntry(entry); err != nil {
		return "", s.snap, fmt.Errorf("failed to log entry: %w", err)
	}
	logger.Info("Logged entry", "id", entry.ID, "mood", entry.Mood)
	return entry.ID, s.refreshLocked(), nil
}

// Edit changes the mood, person or note of a live entry.
func (s *Service) Edit(id string, patch models.EntryPatch) (Snapshot, error) {
	check := patchInput{}
	if patch.Mood != nil {
		raw := strings.TrimSpace(string(*patch.Mood))
		mood, ok := constants.ParseMood(raw)
		check.Mood = raw
		switch {
		case raw == "":
			mood = constants.DefaultMood
			patch.Mood = &mood
		case ok:
			patch.Mood = &mood
		}
	}
	if patch.Person != nil {
		trimmed := strings.TrimSpace(*patch.Person)
		patch.Person, check.Person = &trimmed, trimmed
	}
	if patch.Note != nil {
		trimmed := strings.TrimSpace(*patch.Note)
		patch.Note, check.Note = &trimmed, trimmed
	}
	if err := validation.Struct(check); err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.store.UpdateEntry(id, patch); err != nil {
		return s.snap, fmt.Errorf("failed to edit entry: %w", err)
	}
	logger.Info("Edited entry", "id", id)
	return s.refreshLocked(), nil
}

// Delete soft-deletes an entry.
func (s *Service) Delete(id string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteEntry(id); err != nil {
		return s.snap, fmt.Errorf("failed to delete entry: %w", err)
	}
	logger.Info("Deleted entry", "id", id)
	return s.refreshLocked(), nil
}

// Restore brings back a soft-deleted entry.
func (s *Service) Restore(id string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.RestoreEntry(id); err != nil {
		return s.snap, fmt.Errorf("failed to restore entry: %w", err)
	}
	logger.Info("Restored entry", "id", id)
	return s.refreshLocked(), nil
}

// Refresh recomputes the snapshot from the store. On failure the previous
// snapshot is returned unchanged along with the error, and the failure is
// recorded in Status and published on Errors.
func (s *Service) Refresh() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refresh(); err != nil {
		return s.snap, err
	}
	return s.snap, nil
}

// Snapshot returns the last good snapshot without touching the store.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Status returns the refresh health.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Errors delivers refresh failures. Sends never block; when nobody reads,
// failures beyond the buffer are dropped (Status still records the latest).
func (s *Service) Errors() <-chan error {
	return s.errs
}

// refreshLocked refreshes after a successful mutation. A failure here does
// not undo the mutation, so it is reported through Status only.
func (s *Service) refreshLocked() Snapshot {
	_ = s.refresh()
	return s.snap
}

func (s *Service) refresh() error {
	entries, err := s.store.GetAllEntries()
	if err != nil {
		err = fmt.Errorf("refresh: %w", err)
		s.status.LastError = err
		s.status.LastErrorAt = s.clock()
		s.status.Failures++
		logger.Warn("Refresh failed, keeping previous snapshot", "error", err, "failures", s.status.Failures)
		select {
		case s.errs <- err:
		default:
		}
		return err
	}

	now := s.Now()
	next := Snapshot{
		Entries:     entries,
		Stats:       stats.Compute(entries, now),
		Badges:      achievements.Evaluate(entries, now),
		RefreshedAt: now,
	}
	if s.hasSnap {
		next.NewlyUnlocked = achievements.NewlyUnlocked(s.snap.Badges, next.Badges)
	}
	s.snap = next
	s.hasSnap = true
	s.status.LastSuccessAt = now
	s.status.Failures = 0
	logger.Debug("Refreshed", "entries", len(entries), "unlocked", achievements.UnlockedCount(next.Badges))
	return nil
}
