package tui

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/laughmeter/internal/constants"
)

func moodOptions() []huh.Option[constants.Mood] {
	opts := make([]huh.Option[constants.Mood], 0, len(constants.Moods))
	for _, mood := range constants.Moods {
		opts = append(opts, huh.NewOption(mood.Emoji()+"  "+string(mood), mood))
	}
	return opts
}

// personOptions offers "nobody", the quick-pick list, and current when it
// is set but no longer on the list.
func personOptions(names []string, current string) []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("Nobody in particular", "")}
	for _, n := range names {
		opts = append(opts, huh.NewOption(n, n))
	}
	if current != "" && !slices.Contains(names, current) {
		opts = append(opts, huh.NewOption(current, current))
	}
	return opts
}

func maxRunes(field string, limit int) func(string) error {
	return func(s string) error {
		if utf8.RuneCountInString(strings.TrimSpace(s)) > limit {
			return fmt.Errorf("%s must be at most %d characters", field, limit)
		}
		return nil
	}
}

// NewLogForm creates the form for logging a laugh
func NewLogForm(fm *LogFormModel, people []string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[constants.Mood]().
				Title("Mood").
				Options(moodOptions()...).
				Value(&fm.Mood),
			huh.NewSelect[string]().
				Title("With").
				Options(personOptions(people, fm.Person)...).
				Value(&fm.Person),
			huh.NewInput().
				Title("Where (optional)").
				CharLimit(constants.MaxLabelLength).
				Value(&fm.Location).
				Validate(maxRunes("location", constants.MaxLabelLength)),
			huh.NewText().
				Title("Note (optional)").
				CharLimit(constants.MaxNoteLength).
				Value(&fm.Note).
				Validate(maxRunes("note", constants.MaxNoteLength)),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewEditForm creates the form for editing an entry. Location and time are
// fixed once logged.
func NewEditForm(fm *EditFormModel, people []string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[constants.Mood]().
				Title("Mood").
				Options(moodOptions()...).
				Value(&fm.Mood),
			huh.NewSelect[string]().
				Title("With").
				Options(personOptions(people, fm.Person)...).
				Value(&fm.Person),
			huh.NewText().
				Title("Note").
				CharLimit(constants.MaxNoteLength).
				Value(&fm.Note).
				Validate(maxRunes("note", constants.MaxNoteLength)),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewPersonForm creates the form for adding a quick-pick person
func NewPersonForm(fm *PersonFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				CharLimit(constants.MaxLabelLength).
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
