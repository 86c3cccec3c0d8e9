package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/laughmeter/internal/stats"
	"github.com/julianstephens/laughmeter/internal/utils"
)

var (
	monthStyle = lipgloss.NewStyle().Bold(true)

	weekdayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	emptyDayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(5)

	laughDayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true).
			Width(5)

	todayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Bold(true).
			Width(5)
)

type KeyMap struct {
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevMonth: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next month"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "this month"),
		),
	}
}

// Model shows one month at a time. offset is the distance in months from
// the current month.
type Model struct {
	keys   KeyMap
	stats  stats.Snapshot
	now    time.Time
	offset int
}

func New() Model {
	return Model{keys: DefaultKeyMap()}
}

func (m *Model) SetData(s stats.Snapshot, now time.Time) {
	m.stats = s
	m.now = now
}

func (m Model) Keys() []key.Binding {
	return []key.Binding{m.keys.PrevMonth, m.keys.NextMonth, m.keys.Today}
}

// Month returns the first day of the displayed month.
func (m Model) Month() time.Time {
	first := time.Date(m.now.Year(), m.now.Month(), 1, 0, 0, 0, 0, m.now.Location())
	return first.AddDate(0, m.offset, 0)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.PrevMonth):
			m.offset--
		case key.Matches(msg, m.keys.NextMonth):
			m.offset++
		case key.Matches(msg, m.keys.Today):
			m.offset = 0
		}
	}
	return m, nil
}

func (m Model) View() string {
	first := m.Month()
	loc := first.Location()

	var b strings.Builder
	b.WriteString(monthStyle.Render(first.Format("January 2006")))
	b.WriteString("\n")
	b.WriteString(weekdayStyle.Render(" Mo   Tu   We   Th   Fr   Sa   Su"))
	b.WriteString("\n")

	offset := (int(first.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("     ", offset))

	laughs, days := 0, 0
	col := offset
	for day := first; day.Month() == first.Month(); day = utils.AddDays(day, 1) {
		n := m.stats.ByDate[utils.DayKey(day, loc)]
		cell := fmt.Sprintf(" %2d ", day.Day())
		style := emptyDayStyle
		if n > 0 {
			laughs += n
			days++
			style = laughDayStyle
			cell = fmt.Sprintf(" %2d•", day.Day())
		}
		if utils.SameDay(day, m.now, loc) {
			style = todayStyle
		}
		b.WriteString(style.Render(cell))
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n%d laughs on %d days", laughs, days)
	return b.String()
}
