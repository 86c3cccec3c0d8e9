package people

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type AddPersonMsg struct{}

type RemovePersonMsg struct {
	Index int
}

type MovePersonMsg struct {
	From, To int
}

type Item struct {
	Name     string
	Position int
}

func (i Item) Title() string       { return i.Name }
func (i Item) Description() string { return fmt.Sprintf("#%d in the log picker", i.Position+1) }
func (i Item) FilterValue() string { return i.Name }

type KeyMap struct {
	Add      key.Binding
	Remove   key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "move down"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(names []string, width, height int) Model {
	l := list.New(items(names), list.NewDefaultDelegate(), width, height)
	l.Title = "People"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Remove, keys.MoveUp, keys.MoveDown}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{list: l, keys: keys}
}

func items(names []string) []list.Item {
	out := make([]list.Item, len(names))
	for i, n := range names {
		out[i] = Item{Name: n, Position: i}
	}
	return out
}

func (m *Model) SetPeople(names []string) {
	m.list.SetItems(items(names))
}

// Select moves the cursor to index.
func (m *Model) Select(index int) {
	m.list.Select(index)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		i := m.list.Index()
		n := len(m.list.Items())
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddPersonMsg{} }
		case key.Matches(msg, m.keys.Remove):
			if n > 0 {
				return m, func() tea.Msg { return RemovePersonMsg{Index: i} }
			}
			return m, nil
		case key.Matches(msg, m.keys.MoveUp):
			if i > 0 {
				return m, func() tea.Msg { return MovePersonMsg{From: i, To: i - 1} }
			}
			return m, nil
		case key.Matches(msg, m.keys.MoveDown):
			if i < n-1 {
				return m, func() tea.Msg { return MovePersonMsg{From: i, To: i + 1} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No quick-pick people.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
