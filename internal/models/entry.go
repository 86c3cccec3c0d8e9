package models

import (
	"time"

	"github.com/julianstephens/laughmeter/internal/constants"
)

// Entry is one logged laugh. Person, Location and Note are optional and
// stored as empty strings when absent.
type Entry struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Mood      constants.Mood `json:"mood"`
	Person    string         `json:"person,omitempty"`
	Location  string         `json:"location,omitempty"`
	Note      string         `json:"note,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt *time.Time     `json:"deleted_at,omitempty"`
}

// IsDeleted reports whether the entry has been soft deleted.
func (e Entry) IsDeleted() bool {
	return e.DeletedAt != nil
}

// EntryPatch carries a partial edit. Nil fields are left unchanged; the
// timestamp and location are fixed at creation.
type EntryPatch struct {
	Mood   *constants.Mood
	Person *string
	Note   *string
}

// IsEmpty reports whether the patch changes nothing.
func (p EntryPatch) IsEmpty() bool {
	return p.Mood == nil && p.Person == nil && p.Note == nil
}

// Apply returns a copy of e with the patch applied.
func (p EntryPatch) Apply(e Entry) Entry {
	if p.Mood != nil {
		e.Mood = *p.Mood
	}
	if p.Person != nil {
		e.Person = *p.Person
	}
	if p.Note != nil {
		e.Note = *p.Note
	}
	return e
}
