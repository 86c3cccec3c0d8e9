package badges

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/laughmeter/internal/achievements"
)

var (
	lockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().Bold(true)
)

type Model struct {
	viewport viewport.Model
	badges   []achievements.BadgeStatus
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m *Model) SetBadges(badges []achievements.BadgeStatus) {
	m.badges = badges
	m.Render()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

// Render redraws the badge list: unlocked badges in their own color,
// locked ones dimmed.
func (m *Model) Render() {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%d/%d unlocked", achievements.UnlockedCount(m.badges), len(m.badges))))
	b.WriteString("\n\n")
	for _, s := range m.badges {
		if s.Unlocked {
			title := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Bold(true).Render(s.Title)
			fmt.Fprintf(&b, "%s %s\n", s.Icon, title)
		} else {
			fmt.Fprintf(&b, "🔒 %s\n", lockedStyle.Render(s.Title))
		}
		fmt.Fprintf(&b, "   %s\n", descStyle.Render(s.Description))
	}
	m.viewport.SetContent(b.String())
}
