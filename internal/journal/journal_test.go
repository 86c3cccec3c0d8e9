package journal

import (
	stderrors "errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/laughmeter/internal/constants"
	apperrors "github.com/julianstephens/laughmeter/internal/errors"
	"github.com/julianstephens/laughmeter/internal/models"
	"github.com/julianstephens/laughmeter/internal/storage"
)

var (
	zone    = time.FixedZone("UTC-5", -5*3600)
	fixedAt = time.Date(2026, 10, 16, 14, 0, 0, 0, zone)
)

func newService(t *testing.T, store storage.Provider) *Service {
	t.Helper()
	return New(store,
		WithClock(func() time.Time { return fixedAt }),
		WithLocation(zone),
	)
}

func setupStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.New(filepath.Join(t.TempDir(), "laughmeter.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// flakyStore fails GetAllEntries while broken is set.
type flakyStore struct {
	storage.Provider
	broken bool
}

var errDiskGone = stderrors.New("disk gone")

func (f *flakyStore) GetAllEntries() ([]models.Entry, error) {
	if f.broken {
		return nil, errDiskGone
	}
	return f.Provider.GetAllEntries()
}

func newlyUnlocked(snap Snapshot) map[string]bool {
	out := make(map[string]bool, len(snap.NewlyUnlocked))
	for _, b := range snap.NewlyUnlocked {
		out[b.ID] = true
	}
	return out
}

func TestLog_DefaultsAndRefresh(t *testing.T) {
	svc := newService(t, setupStore(t))
	if _, err := svc.Refresh(); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	id, snap, err := svc.Log(LogInput{Person: "  Friends ", Note: " kite "})
	if err != nil {
		t.Fatalf("Log() error = %v", err)
	}
	if id == "" {
		t.Fatal("Log() returned empty id")
	}
	if len(snap.Entries) != 1 {
		t.Fatalf("snapshot has %d entries, want 1", len(snap.Entries))
	}
	got := snap.Entries[0]
	if got.ID != id {
		t.Errorf("entry id = %q, want %q", got.ID, id)
	}
	if got.Mood != constants.MoodSmile {
		t.Errorf("mood = %q, want default %q", got.Mood, constants.MoodSmile)
	}
	if got.Person != "Friends" || got.Note != "kite" {
		t.Errorf("fields not trimmed: person=%q note=%q", got.Person, got.Note)
	}
	if !got.Timestamp.Equal(fixedAt) {
		t.Errorf("timestamp = %v, want %v", got.Timestamp, fixedAt)
	}
	if snap.Stats.Total != 1 || snap.Stats.TodayCount != 1 {
		t.Errorf("stats total=%d today=%d, want 1/1", snap.Stats.Total, snap.Stats.TodayCount)
	}
	newly := newlyUnlocked(snap)
	for _, want := range []string{"first_smile", "streak_starter"} {
		if !newly[want] {
			t.Errorf("NewlyUnlocked missing %s", want)
		}
	}

	_, snap, err = svc.Log(LogInput{Mood: "joy"})
	if err != nil {
		t.Fatalf("second Log() error = %v", err)
	}
	if newlyUnlocked(snap)["first_smile"] {
		t.Error("first_smile reported as newly unlocked twice")
	}
}

func TestLog_FirstRefreshAnnouncesNothing(t *testing.T) {
	svc := newService(t, setupStore(t))
	_, snap, err := svc.Log(LogInput{})
	if err != nil {
		t.Fatalf("Log() error = %v", err)
	}
	if len(snap.NewlyUnlocked) != 0 {
		t.Errorf("first refresh NewlyUnlocked = %d badges, want 0", len(snap.NewlyUnlocked))
	}
}

func TestLog_ExplicitTimestampAndEmojiMood(t *testing.T) {
	svc := newService(t, setupStore(t))
	at := fixedAt.Add(-48 * time.Hour)
	_, snap, err := svc.Log(LogInput{Mood: "💀", At: &at})
	if err != nil {
		t.Fatalf("Log() error = %v", err)
	}
	e := snap.Entries[0]
	if e.Mood != constants.MoodDeadFunny {
		t.Errorf("mood = %q, want %q", e.Mood, constants.MoodDeadFunny)
	}
	if !e.Timestamp.Equal(at) {
		t.Errorf("timestamp = %v, want %v", e.Timestamp, at)
	}
	if snap.Stats.TodayCount != 0 {
		t.Errorf("TodayCount = %d, want 0", snap.Stats.TodayCount)
	}
}

func TestLog_Validation(t *testing.T) {
	svc := newService(t, setupStore(t))
	long := make([]byte, 81)
	for i := range long {
		long[i] = 'x'
	}
	tests := []struct {
		name string
		in   LogInput
	}{
		{"unknown mood", LogInput{Mood: "meh"}},
		{"person too long", LogInput{Person: string(long)}},
		{"location too long", LogInput{Location: string(long)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Log(tt.in)
			if !apperrors.Is(err, apperrors.ErrInvalidInput) {
				t.Errorf("Log() error = %v, want invalid input", err)
			}
		})
	}
	snap, _ := svc.Refresh()
	if len(snap.Entries) != 0 {
		t.Errorf("invalid input was stored: %d entries", len(snap.Entries))
	}
}

func TestEdit(t *testing.T) {
	svc := newService(t, setupStore(t))
	id, _, err := svc.Log(LogInput{Mood: "joy", Person: "Work"})
	if err != nil {
		t.Fatalf("Log() error = %v", err)
	}

	mood := constants.MoodTouched
	person := " Partner "
	snap, err := svc.Edit(id, models.EntryPatch{Mood: &mood, Person: &person})
	if err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	e := snap.Entries[0]
	if e.Mood != constants.MoodTouched || e.Person != "Partner" {
		t.Errorf("edited entry = %+v", e)
	}

	blank := constants.Mood("   ")
	snap, err = svc.Edit(id, models.EntryPatch{Mood: &blank})
	if err != nil {
		t.Fatalf("Edit(blank mood) error = %v", err)
	}
	if got := snap.Entries[0].Mood; got != constants.DefaultMood {
		t.Errorf("blank mood stored as %q, want %q", got, constants.DefaultMood)
	}

	bad := constants.Mood("meh")
	if _, err := svc.Edit(id, models.EntryPatch{Mood: &bad}); !apperrors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("Edit(bad mood) error = %v, want invalid input", err)
	}
	if _, err := svc.Edit("missing", models.EntryPatch{Mood: &mood}); !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("Edit(missing) error = %v, want not found", err)
	}
}

func TestDeleteAndRestore(t *testing.T) {
	svc := newService(t, setupStore(t))
	id, _, err := svc.Log(LogInput{})
	if err != nil {
		t.Fatalf("Log() error = %v", err)
	}

	snap, err := svc.Delete(id)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(snap.Entries) != 0 || snap.Stats.Total != 0 {
		t.Errorf("deleted entry still counted: %d entries", len(snap.Entries))
	}
	if _, err := svc.Delete(id); !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want not found", err)
	}

	snap, err = svc.Restore(id)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if len(snap.Entries) != 1 {
		t.Errorf("restored snapshot has %d entries, want 1", len(snap.Entries))
	}
}

func TestRefreshFailureKeepsSnapshot(t *testing.T) {
	store := &flakyStore{Provider: setupStore(t)}
	svc := newService(t, store)
	if _, _, err := svc.Log(LogInput{}); err != nil {
		t.Fatalf("Log() error = %v", err)
	}
	before := svc.Snapshot()

	store.broken = true
	snap, err := svc.Refresh()
	if !stderrors.Is(err, errDiskGone) {
		t.Fatalf("Refresh() error = %v, want %v", err, errDiskGone)
	}
	if len(snap.Entries) != len(before.Entries) || !snap.RefreshedAt.Equal(before.RefreshedAt) {
		t.Error("failed refresh replaced the snapshot")
	}

	status := svc.Status()
	if status.Healthy() || status.Failures != 1 {
		t.Errorf("status = %+v, want one failure", status)
	}
	select {
	case got := <-svc.Errors():
		if !stderrors.Is(got, errDiskGone) {
			t.Errorf("Errors() delivered %v", got)
		}
	default:
		t.Error("Errors() had nothing to deliver")
	}

	// The write still lands; only the derived view is stale.
	_, snap, err = svc.Log(LogInput{Mood: "joy"})
	if err != nil {
		t.Fatalf("Log() during refresh failure error = %v", err)
	}
	if len(snap.Entries) != 1 {
		t.Errorf("stale snapshot has %d entries, want 1", len(snap.Entries))
	}

	store.broken = false
	snap, err = svc.Refresh()
	if err != nil {
		t.Fatalf("Refresh() after recovery error = %v", err)
	}
	if len(snap.Entries) != 2 {
		t.Errorf("recovered snapshot has %d entries, want 2", len(snap.Entries))
	}
	if !svc.Status().Healthy() {
		t.Error("status not healthy after recovery")
	}
}

func TestErrorsNeverBlock(t *testing.T) {
	store := &flakyStore{Provider: setupStore(t), broken: true}
	svc := newService(t, store)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < errorBuffer*3; i++ {
			svc.Refresh()
		}
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Refresh blocked with nobody reading Errors()")
	}
	if got := svc.Status().Failures; got != errorBuffer*3 {
		t.Errorf("Failures = %d, want %d", got, errorBuffer*3)
	}
	if got := len(svc.Errors()); got != errorBuffer {
		t.Errorf("buffered errors = %d, want %d", got, errorBuffer)
	}
}

func TestPeople(t *testing.T) {
	svc := newService(t, setupStore(t))

	list, err := svc.People()
	if err != nil {
		t.Fatalf("People() error = %v", err)
	}
	if list.Len() != len(constants.DefaultPeople) {
		t.Fatalf("fresh list has %d names, want defaults", list.Len())
	}

	for list.Len() > 0 {
		if err := list.Remove(0); err != nil {
			t.Fatal(err)
		}
	}
	if err := svc.SavePeople(list); err != nil {
		t.Fatalf("SavePeople() error = %v", err)
	}
	list, err = svc.People()
	if err != nil {
		t.Fatalf("People() error = %v", err)
	}
	if list.Len() != 0 {
		t.Errorf("saved empty list came back with %d names", list.Len())
	}
}

func TestSaveSettings_Validates(t *testing.T) {
	svc := newService(t, setupStore(t))
	settings, err := svc.Settings()
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}
	settings.Timezone = "Mars/Olympus"
	if err := svc.SaveSettings(settings); !apperrors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("SaveSettings(bad tz) error = %v, want invalid input", err)
	}

	settings.Timezone = "UTC"
	settings.ReminderHour = 9
	if err := svc.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}
	got, _ := svc.Settings()
	if got.ReminderHour != 9 || got.Timezone != "UTC" {
		t.Errorf("settings = %+v", got)
	}
}
