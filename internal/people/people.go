// Package people manages the ordered quick-pick list of companions offered
// when logging. The list is plain data on the settings record; entries keep
// whatever person string they were saved with.
package people

import (
	"slices"
	"strings"

	"github.com/julianstephens/laughmeter/internal/constants"
	apperrors "github.com/julianstephens/laughmeter/internal/errors"
)

// List is an ordered set of unique, non-empty labels.
type List struct {
	names []string
}

// Seed returns the saved list when one exists, otherwise the defaults.
// An explicitly saved empty list stays empty.
func Seed(saved []string, ok bool) *List {
	if !ok {
		return &List{names: slices.Clone(constants.DefaultPeople)}
	}
	return &List{names: slices.Clone(saved)}
}

// Names returns a copy of the labels in order.
func (l *List) Names() []string {
	return slices.Clone(l.names)
}

// Len returns the number of labels.
func (l *List) Len() int {
	return len(l.names)
}

// Add appends a label, rejecting blanks and exact duplicates.
func (l *List) Add(name string) error {
	name = strings.TrimSpace(name)
	if err := l.check(name, -1); err != nil {
		return err
	}
	l.names = append(l.names, name)
	return nil
}

// Remove deletes the label at index.
func (l *List) Remove(index int) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.names = slices.Delete(l.names, index, index+1)
	return nil
}

// Move relocates the label at from so that it ends up at index to.
func (l *List) Move(from, to int) error {
	if err := l.checkIndex(from); err != nil {
		return err
	}
	if err := l.checkIndex(to); err != nil {
		return err
	}
	name := l.names[from]
	l.names = slices.Delete(l.names, from, from+1)
	l.names = slices.Insert(l.names, to, name)
	return nil
}

// Rename replaces the label at index.
func (l *List) Rename(index int, name string) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if err := l.check(name, index); err != nil {
		return err
	}
	l.names[index] = name
	return nil
}

// IndexOf returns the position of name, or -1.
func (l *List) IndexOf(name string) int {
	return slices.Index(l.names, strings.TrimSpace(name))
}

func (l *List) check(name string, self int) error {
	if name == "" {
		return apperrors.NewInvalidInput("person name cannot be empty")
	}
	if len(name) > constants.MaxLabelLength {
		return apperrors.NewInvalidInput("person name is longer than %d characters", constants.MaxLabelLength)
	}
	if i := slices.Index(l.names, name); i >= 0 && i != self {
		return apperrors.NewConflict("%q is already in the list", name)
	}
	return nil
}

func (l *List) checkIndex(i int) error {
	if i < 0 || i >= len(l.names) {
		return apperrors.NewInvalidInput("no person at position %d (list has %d)", i+1, len(l.names))
	}
	return nil
}
