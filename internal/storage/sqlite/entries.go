package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/laughmeter/internal/constants"
	apperrors "github.com/julianstephens/laughmeter/internal/errors"
	"github.com/julianstephens/laughmeter/internal/models"
)

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const entryColumns = `id, timestamp, mood, person, location, note, created_at, updated_at, deleted_at`

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.Entry, error) {
	var e models.Entry
	var mood, ts, created, updated string
	var deleted sql.NullString
	if err := row.Scan(&e.ID, &ts, &mood, &e.Person, &e.Location, &e.Note, &created, &updated, &deleted); err != nil {
		return models.Entry{}, err
	}
	e.Mood = constants.Mood(mood)

	var err error
	if e.Timestamp, err = parseTime(ts); err != nil {
		return models.Entry{}, fmt.Errorf("entry %s: bad timestamp %q: %w", e.ID, ts, err)
	}
	if e.CreatedAt, err = parseTime(created); err != nil {
		return models.Entry{}, fmt.Errorf("entry %s: bad created_at %q: %w", e.ID, created, err)
	}
	if e.UpdatedAt, err = parseTime(updated); err != nil {
		return models.Entry{}, fmt.Errorf("entry %s: bad updated_at %q: %w", e.ID, updated, err)
	}
	if deleted.Valid {
		d, err := parseTime(deleted.String)
		if err != nil {
			return models.Entry{}, fmt.Errorf("entry %s: bad deleted_at %q: %w", e.ID, deleted.String, err)
		}
		e.DeletedAt = &d
	}
	return e, nil
}

func (s *Store) AddEntry(e models.Entry) error {
	if e.ID == "" {
		return apperrors.NewInvalidInput("entry id is required")
	}
	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = e.CreatedAt
	}

	var deleted any
	if e.DeletedAt != nil {
		deleted = formatTime(*e.DeletedAt)
	}
	_, err := s.db.Exec(`
		INSERT INTO entries (`+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, formatTime(e.Timestamp), string(e.Mood), e.Person, e.Location, e.Note,
		formatTime(e.CreatedAt), formatTime(e.UpdatedAt), deleted,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperrors.NewConflict("entry %s already exists", e.ID)
		}
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	return nil
}

func (s *Store) GetEntry(id string) (models.Entry, error) {
	row := s.db.QueryRow(`SELECT `+entryColumns+` FROM entries WHERE id = ? AND deleted_at IS NULL`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entry{}, apperrors.NewNotFound("entry", id)
	}
	return e, err
}

func (s *Store) UpdateEntry(id string, patch models.EntryPatch) (models.Entry, error) {
	current, err := s.GetEntry(id)
	if err != nil {
		return models.Entry{}, err
	}
	if patch.IsEmpty() {
		return current, nil
	}

	updated := patch.Apply(current)
	updated.UpdatedAt = time.Now()
	_, err = s.db.Exec(`
		UPDATE entries SET mood = ?, person = ?, note = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		string(updated.Mood), updated.Person, updated.Note, formatTime(updated.UpdatedAt), id,
	)
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to update entry: %w", err)
	}
	return updated, nil
}

func (s *Store) DeleteEntry(id string) error {
	now := formatTime(time.Now())
	res, err := s.db.Exec(`UPDATE entries SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`, now, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.NewNotFound("entry", id)
	}
	return nil
}

func (s *Store) RestoreEntry(id string) error {
	var deleted sql.NullString
	err := s.db.QueryRow(`SELECT deleted_at FROM entries WHERE id = ?`, id).Scan(&deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NewNotFound("entry", id)
	}
	if err != nil {
		return fmt.Errorf("failed to look up entry: %w", err)
	}
	if !deleted.Valid {
		return apperrors.NewConflict("entry %s is not deleted", id)
	}

	if _, err := s.db.Exec(`UPDATE entries SET deleted_at = NULL, updated_at = ? WHERE id = ?`, formatTime(time.Now()), id); err != nil {
		return fmt.Errorf("failed to restore entry: %w", err)
	}
	return nil
}

func (s *Store) GetAllEntries() ([]models.Entry, error) {
	return s.queryEntries(`SELECT ` + entryColumns + ` FROM entries WHERE deleted_at IS NULL ORDER BY timestamp DESC, id DESC`)
}

func (s *Store) GetAllEntriesIncludingDeleted() ([]models.Entry, error) {
	return s.queryEntries(`SELECT ` + entryColumns + ` FROM entries ORDER BY timestamp DESC, id DESC`)
}

func (s *Store) queryEntries(query string) ([]models.Entry, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
