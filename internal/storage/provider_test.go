package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/laughmeter/internal/constants"
	apperrors "github.com/julianstephens/laughmeter/internal/errors"
	"github.com/julianstephens/laughmeter/internal/models"
	"github.com/julianstephens/laughmeter/internal/storage/sqlite"
)

// backends runs fn once per storage implementation.
func backends(t *testing.T, fn func(t *testing.T, store Provider)) {
	for _, name := range []string{"laughmeter.db", "laughmeter.json"} {
		t.Run(filepath.Ext(name), func(t *testing.T) {
			store := New(filepath.Join(t.TempDir(), name))
			if err := store.Init(); err != nil {
				t.Fatalf("failed to initialize test store: %v", err)
			}
			t.Cleanup(func() { store.Close() })
			fn(t, store)
		})
	}
}

func testEntry(id string, ts time.Time) models.Entry {
	return models.Entry{
		ID:        id,
		Timestamp: ts,
		Mood:      constants.MoodJoy,
		Person:    "Friends",
		Location:  "Park",
		Note:      "kite incident",
	}
}

func TestNew_SelectsBackend(t *testing.T) {
	if _, ok := New("/tmp/x/journal.json").(*JSONStore); !ok {
		t.Error("New(.json) did not return a JSONStore")
	}
	if _, ok := New("/tmp/x/journal.JSON").(*JSONStore); !ok {
		t.Error("New(.JSON) did not return a JSONStore")
	}
	if _, ok := New("/tmp/x/journal.db").(*sqlite.Store); !ok {
		t.Error("New(.db) did not return a sqlite store")
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	tests := map[string]string{
		"~/.config/laughmeter/laughmeter.db": "/home/tester/.config/laughmeter/laughmeter.db",
		"/abs/path.db":                        "/abs/path.db",
		"relative.db":                         "relative.db",
		"~other/x.db":                         "~other/x.db",
	}
	for in, want := range tests {
		if got := ExpandPath(in); got != want {
			t.Errorf("ExpandPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestProvider_EntryRoundTrip(t *testing.T) {
	backends(t, func(t *testing.T, store Provider) {
		ts := time.Date(2026, 10, 16, 12, 34, 56, 789000000, time.UTC)
		want := testEntry("e1", ts)
		if err := store.AddEntry(want); err != nil {
			t.Fatalf("AddEntry failed: %v", err)
		}

		got, err := store.GetEntry("e1")
		if err != nil {
			t.Fatalf("GetEntry failed: %v", err)
		}
		if !got.Timestamp.Equal(ts) {
			t.Errorf("Timestamp = %v, want %v", got.Timestamp, ts)
		}
		if got.Mood != want.Mood || got.Person != want.Person || got.Location != want.Location || got.Note != want.Note {
			t.Errorf("got %+v, want %+v", got, want)
		}
		if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
			t.Error("bookkeeping timestamps not set")
		}

		if err := store.AddEntry(want); !apperrors.Is(err, apperrors.ErrConflict) {
			t.Errorf("duplicate AddEntry error = %v, want conflict", err)
		}
		if err := store.AddEntry(models.Entry{Timestamp: ts}); !apperrors.Is(err, apperrors.ErrInvalidInput) {
			t.Errorf("AddEntry without id error = %v, want invalid input", err)
		}
		if _, err := store.GetEntry("missing"); !apperrors.Is(err, apperrors.ErrNotFound) {
			t.Errorf("GetEntry(missing) error = %v, want not found", err)
		}
	})
}

func TestProvider_GetAllEntriesNewestFirst(t *testing.T) {
	backends(t, func(t *testing.T, store Provider) {
		base := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
		for i, id := range []string{"b", "c", "a"} {
			if err := store.AddEntry(testEntry(id, base.Add(time.Duration(i)*time.Hour))); err != nil {
				t.Fatal(err)
			}
		}
		// Same instant as "a": ties order by id descending.
		if err := store.AddEntry(testEntry("z", base.Add(2*time.Hour))); err != nil {
			t.Fatal(err)
		}

		entries, err := store.GetAllEntries()
		if err != nil {
			t.Fatal(err)
		}
		var ids []string
		for _, e := range entries {
			ids = append(ids, e.ID)
		}
		want := []string{"z", "a", "c", "b"}
		if len(ids) != len(want) {
			t.Fatalf("ids = %v, want %v", ids, want)
		}
		for i := range want {
			if ids[i] != want[i] {
				t.Fatalf("ids = %v, want %v", ids, want)
			}
		}
	})
}

func TestProvider_UpdateEntry(t *testing.T) {
	backends(t, func(t *testing.T, store Provider) {
		ts := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
		if err := store.AddEntry(testEntry("e1", ts)); err != nil {
			t.Fatal(err)
		}

		mood := constants.MoodDeadFunny
		empty := ""
		updated, err := store.UpdateEntry("e1", models.EntryPatch{Mood: &mood, Person: &empty})
		if err != nil {
			t.Fatalf("UpdateEntry failed: %v", err)
		}
		if updated.Mood != mood || updated.Person != "" {
			t.Errorf("returned entry = %+v", updated)
		}
		if updated.Note != "kite incident" || updated.Location != "Park" || !updated.Timestamp.Equal(ts) {
			t.Errorf("unpatched fields changed: %+v", updated)
		}

		stored, err := store.GetEntry("e1")
		if err != nil {
			t.Fatal(err)
		}
		if stored.Mood != mood || stored.Person != "" {
			t.Errorf("stored entry = %+v", stored)
		}

		if _, err := store.UpdateEntry("missing", models.EntryPatch{Mood: &mood}); !apperrors.Is(err, apperrors.ErrNotFound) {
			t.Errorf("UpdateEntry(missing) error = %v", err)
		}
	})
}

func TestProvider_SoftDeleteAndRestore(t *testing.T) {
	backends(t, func(t *testing.T, store Provider) {
		ts := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
		for _, id := range []string{"keep", "drop"} {
			if err := store.AddEntry(testEntry(id, ts)); err != nil {
				t.Fatal(err)
			}
		}

		if err := store.DeleteEntry("drop"); err != nil {
			t.Fatalf("DeleteEntry failed: %v", err)
		}
		if _, err := store.GetEntry("drop"); !apperrors.Is(err, apperrors.ErrNotFound) {
			t.Errorf("deleted entry still readable: %v", err)
		}
		live, _ := store.GetAllEntries()
		if len(live) != 1 || live[0].ID != "keep" {
			t.Errorf("live entries = %+v", live)
		}
		all, _ := store.GetAllEntriesIncludingDeleted()
		if len(all) != 2 {
			t.Fatalf("expected 2 entries including deleted, got %d", len(all))
		}
		for _, e := range all {
			if e.ID == "drop" && !e.IsDeleted() {
				t.Error("deleted entry has no deleted_at")
			}
		}

		if err := store.DeleteEntry("drop"); !apperrors.Is(err, apperrors.ErrNotFound) {
			t.Errorf("second delete error = %v, want not found", err)
		}
		mood := constants.MoodSmile
		if _, err := store.UpdateEntry("drop", models.EntryPatch{Mood: &mood}); !apperrors.Is(err, apperrors.ErrNotFound) {
			t.Errorf("editing a deleted entry error = %v, want not found", err)
		}

		if err := store.RestoreEntry("drop"); err != nil {
			t.Fatalf("RestoreEntry failed: %v", err)
		}
		if _, err := store.GetEntry("drop"); err != nil {
			t.Errorf("restored entry not readable: %v", err)
		}
		if err := store.RestoreEntry("drop"); !apperrors.Is(err, apperrors.ErrConflict) {
			t.Errorf("restoring a live entry error = %v, want conflict", err)
		}
		if err := store.RestoreEntry("missing"); !apperrors.Is(err, apperrors.ErrNotFound) {
			t.Errorf("restoring a missing entry error = %v, want not found", err)
		}
	})
}

func TestProvider_Settings(t *testing.T) {
	backends(t, func(t *testing.T, store Provider) {
		settings, err := store.GetSettings()
		if err != nil {
			t.Fatalf("GetSettings failed: %v", err)
		}
		if settings.Timezone != constants.DefaultTimezone || settings.ReminderHour != constants.DefaultReminderHour {
			t.Errorf("defaults = %+v", settings)
		}
		if !settings.NotificationsEnabled || !settings.SoundEnabled {
			t.Errorf("boolean defaults = %+v", settings)
		}
		if settings.People != nil {
			t.Errorf("fresh store has saved people %v, want none", settings.People)
		}

		settings.Timezone = "UTC"
		settings.SoundEnabled = false
		settings.ReminderHour = 9
		settings.People = []string{}
		if err := store.SaveSettings(settings); err != nil {
			t.Fatalf("SaveSettings failed: %v", err)
		}

		got, err := store.GetSettings()
		if err != nil {
			t.Fatal(err)
		}
		if got.Timezone != "UTC" || got.SoundEnabled || got.ReminderHour != 9 {
			t.Errorf("saved settings = %+v", got)
		}
		if got.People == nil || len(got.People) != 0 {
			t.Errorf("an explicitly empty people list was not kept: %#v", got.People)
		}

		got.People = []string{"Ava", "Ben"}
		if err := store.SaveSettings(got); err != nil {
			t.Fatal(err)
		}
		again, _ := store.GetSettings()
		if len(again.People) != 2 || again.People[1] != "Ben" {
			t.Errorf("people = %v", again.People)
		}
	})
}

func TestProvider_PersistsAcrossReopen(t *testing.T) {
	for _, name := range []string{"laughmeter.db", "laughmeter.json"} {
		t.Run(filepath.Ext(name), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			first := New(path)
			if err := first.Init(); err != nil {
				t.Fatal(err)
			}
			if err := first.AddEntry(testEntry("e1", time.Now())); err != nil {
				t.Fatal(err)
			}
			if err := first.DeleteEntry("e1"); err != nil {
				t.Fatal(err)
			}
			first.Close()

			second := New(path)
			if err := second.Load(); err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			defer second.Close()
			all, err := second.GetAllEntriesIncludingDeleted()
			if err != nil {
				t.Fatal(err)
			}
			if len(all) != 1 || !all[0].IsDeleted() {
				t.Errorf("reopened entries = %+v", all)
			}
		})
	}
}

func TestProvider_LoadWithoutInit(t *testing.T) {
	for _, name := range []string{"missing.db", "missing.json"} {
		if err := New(filepath.Join(t.TempDir(), name)).Load(); err == nil {
			t.Errorf("Load(%s) succeeded on a missing store", name)
		}
	}
}

func TestJSONStore_AddEntryRollsBackOnSaveFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "laughmeter.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	// A directory at the temp path makes every write fail.
	if err := os.Mkdir(path+".tmp", 0o700); err != nil {
		t.Fatal(err)
	}

	if err := store.AddEntry(testEntry("e1", time.Now())); err == nil {
		t.Fatal("AddEntry() succeeded with an unwritable journal")
	}
	if _, err := store.GetEntry("e1"); !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetEntry() after failed add error = %v, want not found", err)
	}
	all, err := store.GetAllEntriesIncludingDeleted()
	if err != nil {
		t.Fatalf("GetAllEntriesIncludingDeleted failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("failed add left %d entries in memory", len(all))
	}

	if err := os.Remove(path + ".tmp"); err != nil {
		t.Fatal(err)
	}
	if err := store.AddEntry(testEntry("e2", time.Now())); err != nil {
		t.Fatalf("AddEntry() after recovery error = %v", err)
	}
	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := reopened.GetEntry("e1"); err == nil {
		t.Error("entry from the failed add was persisted by a later save")
	}
}
