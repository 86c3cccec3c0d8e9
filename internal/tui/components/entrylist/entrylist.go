package entrylist

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/laughmeter/internal/constants"
	"github.com/julianstephens/laughmeter/internal/models"
)

type LogEntryMsg struct{}

type EditEntryMsg struct {
	Entry models.Entry
}

type DeleteEntryMsg struct {
	ID string
}

// UndoDeleteMsg asks to restore the most recently deleted entry.
type UndoDeleteMsg struct{}

type Item struct {
	Entry models.Entry
	loc   *time.Location
}

func (i Item) Title() string {
	title := fmt.Sprintf("%s %s", i.Entry.Mood.Emoji(), i.Entry.Timestamp.In(i.loc).Format(constants.DateTimeFormat))
	if i.Entry.Person != "" {
		title += " with " + i.Entry.Person
	}
	return title
}

func (i Item) Description() string {
	var parts []string
	if i.Entry.Location != "" {
		parts = append(parts, "@ "+i.Entry.Location)
	}
	if i.Entry.Note != "" {
		parts = append(parts, i.Entry.Note)
	}
	if len(parts) == 0 {
		return string(i.Entry.Mood)
	}
	return strings.Join(parts, " | ")
}

func (i Item) FilterValue() string {
	return strings.Join([]string{i.Entry.Person, i.Entry.Location, i.Entry.Note}, " ")
}

type KeyMap struct {
	Log    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Undo   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Log: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "log laugh"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
	loc  *time.Location
}

func New(entries []models.Entry, loc *time.Location, width, height int) Model {
	l := list.New(items(entries, loc), list.NewDefaultDelegate(), width, height)
	l.Title = "Journal"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Log, keys.Edit, keys.Delete, keys.Undo}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{list: l, keys: keys, loc: loc}
}

func items(entries []models.Entry, loc *time.Location) []list.Item {
	out := make([]list.Item, len(entries))
	for i, e := range entries {
		out[i] = Item{Entry: e, loc: loc}
	}
	return out
}

// SetEntries replaces the listed entries, keeping the cursor in range.
func (m *Model) SetEntries(entries []models.Entry) {
	m.list.SetItems(items(entries, m.loc))
}

// Selected returns the highlighted entry.
func (m Model) Selected() (models.Entry, bool) {
	if i, ok := m.list.SelectedItem().(Item); ok {
		return i.Entry, true
	}
	return models.Entry{}, false
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.Log):
			return m, func() tea.Msg { return LogEntryMsg{} }
		case key.Matches(msg, m.keys.Undo):
			return m, func() tea.Msg { return UndoDeleteMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if e, ok := m.Selected(); ok {
				return m, func() tea.Msg { return EditEntryMsg{Entry: e} }
			}
		case key.Matches(msg, m.keys.Delete):
			if e, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteEntryMsg{ID: e.ID} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No laughs logged yet.\n  Press 'a' to log one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
