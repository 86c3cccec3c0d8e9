package models

import (
	"testing"
	"time"

	"github.com/julianstephens/laughmeter/internal/constants"
)

func TestEntryPatch_Apply(t *testing.T) {
	base := Entry{
		ID:        "e1",
		Timestamp: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC),
		Mood:      constants.MoodJoy,
		Person:    "Work",
		Location:  "Office",
		Note:      "standup",
	}
	mood := constants.MoodTouched
	empty := ""

	tests := []struct {
		name  string
		patch EntryPatch
		want  Entry
	}{
		{"empty patch", EntryPatch{}, base},
		{"mood only", EntryPatch{Mood: &mood}, func() Entry { e := base; e.Mood = mood; return e }()},
		{"clear person and note", EntryPatch{Person: &empty, Note: &empty}, func() Entry { e := base; e.Person, e.Note = "", ""; return e }()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.patch.Apply(base)
			if got != tt.want {
				t.Errorf("Apply() = %+v, want %+v", got, tt.want)
			}
		})
	}
	if base.Mood != constants.MoodJoy || base.Person != "Work" {
		t.Error("Apply() mutated its input")
	}
}

func TestEntryPatch_IsEmpty(t *testing.T) {
	note := "x"
	if !(EntryPatch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
	if (EntryPatch{Note: &note}).IsEmpty() {
		t.Error("patch with note should not be empty")
	}
}

func TestEntry_IsDeleted(t *testing.T) {
	now := time.Now()
	if (Entry{}).IsDeleted() {
		t.Error("live entry reported deleted")
	}
	if !(Entry{DeletedAt: &now}).IsDeleted() {
		t.Error("deleted entry reported live")
	}
}
