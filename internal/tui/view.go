package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/laughmeter/internal/achievements"
	"github.com/julianstephens/laughmeter/internal/constants"
	"github.com/julianstephens/laughmeter/internal/quotes"
)

var tabTitles = map[constants.SessionState]string{
	constants.StateHome:     "Home",
	constants.StateJournal:  "Journal",
	constants.StateCalendar: "Calendar",
	constants.StateInsights: "Insights",
	constants.StateBadges:   "Badges",
	constants.StatePeople:   "People",
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateHome:
		content = m.viewHome()
	case constants.StateJournal:
		content = docStyle.Render(m.entryList.View())
	case constants.StateCalendar:
		content = docStyle.Render(m.calendarModel.View())
	case constants.StateInsights:
		content = docStyle.Render(m.insightsModel.View())
	case constants.StateBadges:
		content = docStyle.Render(m.badgesModel.View())
	case constants.StatePeople:
		content = docStyle.Render(m.peopleModel.View())
	case constants.StateLogForm, constants.StateEditForm, constants.StateAddPerson:
		content = m.viewForm()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewBanner(),
		content,
		m.help.View(m),
	)
	return ui
}

func (m Model) viewTabs() string {
	var tabs []string
	for _, s := range constants.MainStates {
		active := m.state == s
		if !slices.Contains(constants.MainStates, m.state) {
			active = m.previousState == s
		}
		if active {
			tabs = append(tabs, activeTabStyle.Render(tabTitles[s]))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(tabTitles[s]))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// viewBanner shows a refresh failure, which outranks any toast.
func (m Model) viewBanner() string {
	if st := m.journal.Status(); !st.Healthy() {
		return bannerStyle.Render(fmt.Sprintf("⚠ Could not refresh (%v); showing last saved view", st.LastError))
	}
	if m.toast != "" {
		return toastStyle.Render(m.toast)
	}
	return ""
}

func (m Model) viewHome() string {
	s := m.snap.Stats

	streak := "Log a laugh to start today's streak"
	if s.StreakDays > 0 {
		streak = fmt.Sprintf("🔥 %d day streak", s.StreakDays)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s   %s %s\n",
		bigNumberStyle.Render(fmt.Sprint(s.TodayCount)), labelStyle.Render("laughs today"),
		bigNumberStyle.Render(fmt.Sprint(s.Total)), labelStyle.Render("all time"))
	fmt.Fprintf(&b, "%s\n\n", streak)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Last laugh:  "), s.LastLaugh)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Top person:  "), orNone(s.TopPerson))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Top location:"), orNone(s.TopLocation))
	fmt.Fprintf(&b, "%s %d/%d\n\n", labelStyle.Render("Badges:      "),
		achievements.UnlockedCount(m.snap.Badges), len(m.snap.Badges))

	for _, d := range s.Weekly {
		fmt.Fprintf(&b, "%s %s %d\n", labelStyle.Render(d.Day.Format("Mon")), strings.Repeat("▇", min(d.Count, 30)), d.Count)
	}
	b.WriteString("\n")
	b.WriteString(quoteStyle.Render(quotes.ForDay(m.journal.Now())))
	return docStyle.Render(b.String())
}

func orNone(s string) string {
	if s == "" {
		return constants.NoValue
	}
	return s
}

func (m Model) viewForm() string {
	view := m.form.View()
	if m.formError != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, dangerStyle.Render(m.formError), view)
	}
	return docStyle.Render(view)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this laugh?"),
			warningStyle.Render("You can undo with 'u' right after."),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
