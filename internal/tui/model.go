package tui

import (
	"context"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/laughmeter/internal/constants"
	"github.com/julianstephens/laughmeter/internal/journal"
	"github.com/julianstephens/laughmeter/internal/logger"
	"github.com/julianstephens/laughmeter/internal/models"
	"github.com/julianstephens/laughmeter/internal/notifier"
	"github.com/julianstephens/laughmeter/internal/people"
	"github.com/julianstephens/laughmeter/internal/tui/components/badges"
	"github.com/julianstephens/laughmeter/internal/tui/components/calendar"
	"github.com/julianstephens/laughmeter/internal/tui/components/entrylist"
	"github.com/julianstephens/laughmeter/internal/tui/components/insights"
	peoplelist "github.com/julianstephens/laughmeter/internal/tui/components/people"
)

// Notifier sends a desktop notification.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

type LogFormModel struct {
	Mood     constants.Mood
	Person   string
	Location string
	Note     string
}

type EditFormModel struct {
	Mood   constants.Mood
	Person string
	Note   string
}

type PersonFormModel struct {
	Name string
}

// refreshErrMsg carries a failure published on the journal's error channel.
type refreshErrMsg struct {
	err error
}

// tickMsg re-evaluates "today" so stats roll over at midnight.
type tickMsg time.Time

const tickInterval = time.Minute

type Model struct {
	journal  *journal.Service
	notifier Notifier
	bell     func()

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	snap     journal.Snapshot
	settings models.Settings
	people   *people.List

	entryList     entrylist.Model
	calendarModel calendar.Model
	insightsModel insights.Model
	badgesModel   badges.Model
	peopleModel   peoplelist.Model

	form       *huh.Form
	logForm    *LogFormModel
	editForm   *EditFormModel
	personForm *PersonFormModel

	editingID       string
	entryToDeleteID string
	lastDeletedID   string
	formError       string // Error message to display for form operations
	toast           string // Latest unlock or undo notice
	quitting        bool
	width           int
	height          int
}

// NewModel loads the journal and builds the tabbed views.
func NewModel(j *journal.Service) (Model, error) {
	snap, err := j.Refresh()
	if err != nil {
		return Model{}, err
	}
	settings, err := j.Settings()
	if err != nil {
		return Model{}, err
	}
	list, err := j.People()
	if err != nil {
		return Model{}, err
	}

	m := Model{
		journal:       j,
		notifier:      notifier.New(),
		bell:          ringBell,
		state:         constants.StateHome,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		settings:      settings,
		people:        list,
		entryList:     entrylist.New(snap.Entries, j.Location(), 0, 0),
		calendarModel: calendar.New(),
		insightsModel: insights.New(),
		badgesModel:   badges.New(0, 0),
		peopleModel:   peoplelist.New(list.Names(), 0, 0),
	}
	m.setSnapshot(snap)
	return m, nil
}

func ringBell() {
	fmt.Fprint(os.Stderr, "\a")
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitForRefreshError(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// waitForRefreshError blocks on the journal's error channel; Update
// re-arms it after each delivery.
func (m Model) waitForRefreshError() tea.Cmd {
	errs := m.journal.Errors()
	return func() tea.Msg {
		return refreshErrMsg{err: <-errs}
	}
}

// setSnapshot pushes a snapshot into every view.
func (m *Model) setSnapshot(snap journal.Snapshot) {
	m.snap = snap
	now := m.journal.Now()
	m.entryList.SetEntries(snap.Entries)
	m.calendarModel.SetData(snap.Stats, now)
	m.insightsModel.SetData(snap.Entries, now)
	m.badgesModel.SetBadges(snap.Badges)
}

// applySnapshot installs the result of a mutation and announces any badges
// it unlocked.
func (m *Model) applySnapshot(snap journal.Snapshot) tea.Cmd {
	m.setSnapshot(snap)
	if len(snap.NewlyUnlocked) == 0 {
		return nil
	}

	last := snap.NewlyUnlocked[len(snap.NewlyUnlocked)-1]
	m.toast = fmt.Sprintf("🏆 Achievement unlocked: %s %s", last.Icon, last.Title)
	if n := len(snap.NewlyUnlocked); n > 1 {
		m.toast += fmt.Sprintf(" (+%d more)", n-1)
	}

	var cmds []tea.Cmd
	if m.settings.SoundEnabled && m.bell != nil {
		bell := m.bell
		cmds = append(cmds, func() tea.Msg {
			bell()
			return nil
		})
	}
	if m.settings.NotificationsEnabled && m.notifier != nil {
		n := m.notifier
		unlocked := slices.Clone(snap.NewlyUnlocked)
		cmds = append(cmds, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), constants.NotifyTimeout)
			defer cancel()
			for _, b := range unlocked {
				if err := n.Notify(ctx, notifier.BadgeMessage(b)); err != nil {
					logger.Debug("Badge notification not sent", "badge", b.ID, "error", err)
					return nil
				}
			}
			return nil
		})
	}
	return tea.Batch(cmds...)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateHome:
		keys = append(keys, m.keys.Log)
	case constants.StateJournal:
		k := entrylist.DefaultKeyMap()
		keys = append(keys, k.Log, k.Edit, k.Delete, k.Undo)
	case constants.StateCalendar:
		keys = append(keys, m.calendarModel.Keys()...)
	case constants.StateInsights:
		keys = append(keys, m.insightsModel.Keys()...)
	case constants.StatePeople:
		k := peoplelist.DefaultKeyMap()
		keys = append(keys, k.Add, k.Remove, k.MoveUp, k.MoveDown)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}

	var actions []key.Binding
	switch m.state {
	case constants.StateHome:
		actions = []key.Binding{m.keys.Log}
	case constants.StateJournal:
		k := entrylist.DefaultKeyMap()
		actions = []key.Binding{k.Log, k.Edit, k.Delete, k.Undo}
	case constants.StateCalendar:
		actions = m.calendarModel.Keys()
	case constants.StateInsights:
		actions = m.insightsModel.Keys()
	case constants.StatePeople:
		k := peoplelist.DefaultKeyMap()
		actions = []key.Binding{k.Add, k.Remove, k.MoveUp, k.MoveDown}
	}

	return [][]key.Binding{global, navigation, actions}
}
