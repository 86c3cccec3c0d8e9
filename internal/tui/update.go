package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/laughmeter/internal/constants"
	"github.com/julianstephens/laughmeter/internal/journal"
	"github.com/julianstephens/laughmeter/internal/models"
	"github.com/julianstephens/laughmeter/internal/people"
	"github.com/julianstephens/laughmeter/internal/tui/components/entrylist"
	peoplelist "github.com/julianstephens/laughmeter/internal/tui/components/people"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		h, v := docStyle.GetFrameSize()
		// Tabs, banner and help take the remaining rows.
		listHeight := msg.Height - 4
		m.entryList.SetSize(msg.Width-h, listHeight-v)
		m.badgesModel.SetSize(msg.Width-h, listHeight-v)
		m.peopleModel.SetSize(msg.Width-h, listHeight-v)
		return m, nil

	case refreshErrMsg:
		// Receiving the message redraws the view, which shows the banner.
		return m, m.waitForRefreshError()

	case tickMsg:
		if snap, err := m.journal.Refresh(); err == nil {
			m.setSnapshot(snap)
		}
		return m, tick()
	}

	// The handlers mutate m, so they must run before m is returned.
	var cmd tea.Cmd
	switch m.state {
	case constants.StateLogForm:
		cmd = m.updateLogForm(msg)
		return m, cmd
	case constants.StateEditForm:
		cmd = m.updateEditForm(msg)
		return m, cmd
	case constants.StateAddPerson:
		cmd = m.updateAddPerson(msg)
		return m, cmd
	case constants.StateConfirmDelete:
		cmd = m.updateConfirmDelete(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case entrylist.LogEntryMsg:
		cmd = m.openLogForm()
		return m, cmd

	case entrylist.EditEntryMsg:
		m.editingID = msg.Entry.ID
		m.editForm = &EditFormModel{
			Mood:   msg.Entry.Mood,
			Person: msg.Entry.Person,
			Note:   msg.Entry.Note,
		}
		m.form = NewEditForm(m.editForm, m.people.Names())
		m.formError = ""
		m.previousState = m.state
		m.state = constants.StateEditForm
		return m, m.form.Init()

	case entrylist.DeleteEntryMsg:
		m.entryToDeleteID = msg.ID
		m.previousState = m.state
		m.state = constants.StateConfirmDelete
		return m, nil

	case entrylist.UndoDeleteMsg:
		if m.lastDeletedID == "" {
			return m, nil
		}
		snap, err := m.journal.Restore(m.lastDeletedID)
		if err != nil {
			m.toast = fmt.Sprintf("Undo failed: %v", err)
			return m, nil
		}
		m.lastDeletedID = ""
		m.toast = "Entry restored."
		cmd = m.applySnapshot(snap)
		return m, cmd

	case peoplelist.AddPersonMsg:
		m.personForm = &PersonFormModel{}
		m.form = NewPersonForm(m.personForm)
		m.formError = ""
		m.previousState = m.state
		m.state = constants.StateAddPerson
		return m, m.form.Init()

	case peoplelist.RemovePersonMsg:
		if err := m.updatePeople(func(l *people.List) error { return l.Remove(msg.Index) }); err != nil {
			m.toast = err.Error()
		}
		return m, nil

	case peoplelist.MovePersonMsg:
		if err := m.updatePeople(func(l *people.List) error { return l.Move(msg.From, msg.To) }); err != nil {
			m.toast = err.Error()
			return m, nil
		}
		m.peopleModel.Select(msg.To)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.switchTab(1)
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.switchTab(-1)
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case m.state == constants.StateHome && key.Matches(msg, m.keys.Log):
			cmd = m.openLogForm()
			return m, cmd
		}
	}

	switch m.state {
	case constants.StateJournal:
		m.entryList, cmd = m.entryList.Update(msg)
	case constants.StateCalendar:
		m.calendarModel, cmd = m.calendarModel.Update(msg)
	case constants.StateInsights:
		m.insightsModel, cmd = m.insightsModel.Update(msg)
	case constants.StateBadges:
		m.badgesModel, cmd = m.badgesModel.Update(msg)
	case constants.StatePeople:
		m.peopleModel, cmd = m.peopleModel.Update(msg)
	}
	return m, cmd
}

// switchTab cycles through the main views.
func (m *Model) switchTab(step int) {
	i := slices.Index(constants.MainStates, m.state)
	if i < 0 {
		return
	}
	n := len(constants.MainStates)
	m.state = constants.MainStates[(i+step+n)%n]
	m.toast = ""
}

func (m *Model) openLogForm() tea.Cmd {
	m.logForm = &LogFormModel{Mood: constants.DefaultMood}
	m.form = NewLogForm(m.logForm, m.people.Names())
	m.formError = ""
	m.previousState = m.state
	m.state = constants.StateLogForm
	return m.form.Init()
}

// updateForm feeds msg to the open form. It reports the form's state
// after the update; esc counts as an abort.
func (m *Model) updateForm(msg tea.Msg) (huh.FormState, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		return huh.StateAborted, nil
	}
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	return m.form.State, cmd
}

// keepFormOpen reports err on the form and lets the user retry.
func (m *Model) keepFormOpen(prefix string, err error) {
	m.formError = fmt.Sprintf("%s: %v", prefix, err)
	m.form.State = huh.StateNormal
}

func (m *Model) closeForm() {
	m.formError = ""
	m.state = m.previousState
}

func (m *Model) updateLogForm(msg tea.Msg) tea.Cmd {
	st, cmd := m.updateForm(msg)
	switch st {
	case huh.StateCompleted:
		return tea.Batch(cmd, m.submitLog())
	case huh.StateAborted:
		m.closeForm()
	}
	return cmd
}

func (m *Model) updateEditForm(msg tea.Msg) tea.Cmd {
	st, cmd := m.updateForm(msg)
	switch st {
	case huh.StateCompleted:
		return tea.Batch(cmd, m.submitEdit())
	case huh.StateAborted:
		m.closeForm()
	}
	return cmd
}

func (m *Model) updateAddPerson(msg tea.Msg) tea.Cmd {
	st, cmd := m.updateForm(msg)
	switch st {
	case huh.StateCompleted:
		m.submitPerson()
	case huh.StateAborted:
		m.closeForm()
	}
	return cmd
}

func (m *Model) submitLog() tea.Cmd {
	_, snap, err := m.journal.Log(journal.LogInput{
		Mood:     string(m.logForm.Mood),
		Person:   m.logForm.Person,
		Location: m.logForm.Location,
		Note:     m.logForm.Note,
	})
	if err != nil {
		m.keepFormOpen("Failed to log laugh", err)
		return nil
	}
	m.closeForm()
	m.toast = ""
	return m.applySnapshot(snap)
}

func (m *Model) submitEdit() tea.Cmd {
	mood := m.editForm.Mood
	person := m.editForm.Person
	note := m.editForm.Note
	snap, err := m.journal.Edit(m.editingID, models.EntryPatch{Mood: &mood, Person: &person, Note: &note})
	if err != nil {
		m.keepFormOpen("Failed to save entry", err)
		return nil
	}
	m.closeForm()
	return m.applySnapshot(snap)
}

func (m *Model) submitPerson() {
	name := strings.TrimSpace(m.personForm.Name)
	if err := m.updatePeople(func(l *people.List) error { return l.Add(name) }); err != nil {
		m.keepFormOpen("Failed to add person", err)
		return
	}
	m.closeForm()
	m.peopleModel.Select(m.people.Len() - 1)
}

func (m *Model) updateConfirmDelete(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(km, m.keys.Confirm):
		snap, err := m.journal.Delete(m.entryToDeleteID)
		m.state = m.previousState
		if err != nil {
			m.toast = fmt.Sprintf("Delete failed: %v", err)
			return nil
		}
		m.lastDeletedID = m.entryToDeleteID
		m.entryToDeleteID = ""
		m.toast = "Entry deleted. Press 'u' to undo."
		return m.applySnapshot(snap)
	case key.Matches(km, m.keys.Cancel):
		m.entryToDeleteID = ""
		m.state = m.previousState
	}
	return nil
}

// updatePeople applies change to a copy of the quick-pick list and saves
// it; the in-memory list only changes once the save succeeds.
func (m *Model) updatePeople(change func(*people.List) error) error {
	next := people.Seed(m.people.Names(), true)
	if err := change(next); err != nil {
		return err
	}
	if err := m.journal.SavePeople(next); err != nil {
		return err
	}
	m.people = next
	m.peopleModel.SetPeople(next.Names())
	return nil
}
