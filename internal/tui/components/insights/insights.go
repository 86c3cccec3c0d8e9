package insights

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/laughmeter/internal/constants"
	"github.com/julianstephens/laughmeter/internal/models"
	"github.com/julianstephens/laughmeter/internal/stats"
)

const barWidth = 30

var (
	headerStyle = lipgloss.NewStyle().Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(8)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

type KeyMap struct {
	NextRange key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextRange: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "change range"),
		),
	}
}

// Model charts one preset range at a time. Custom ranges are only
// available from the command line.
type Model struct {
	keys    KeyMap
	kind    stats.RangeKind
	entries []models.Entry
	now     time.Time
}

func New() Model {
	return Model{keys: DefaultKeyMap(), kind: stats.RangeWeek}
}

func (m *Model) SetData(entries []models.Entry, now time.Time) {
	m.entries = entries
	m.now = now
}

func (m Model) Kind() stats.RangeKind {
	return m.kind
}

func (m Model) Keys() []key.Binding {
	return []key.Binding{m.keys.NextRange}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.NextRange) {
		switch m.kind {
		case stats.RangeWeek:
			m.kind = stats.RangeMonth
		case stats.RangeMonth:
			m.kind = stats.RangeYear
		default:
			m.kind = stats.RangeWeek
		}
	}
	return m, nil
}

func (m Model) View() string {
	in, err := stats.Insights(m.entries, stats.Range{Kind: m.kind}, m.now)
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("This %s: %d laughs", m.kind, in.Total)))
	b.WriteString("\n")
	top := in.TopPerson
	if top == "" {
		top = constants.NoValue
	}
	fmt.Fprintf(&b, "Most laughs with: %s\n\n", top)

	peak := 0
	for _, bk := range in.Buckets {
		peak = max(peak, bk.Count)
	}
	layout := "Mon 02"
	if in.Unit == stats.UnitMonth {
		layout = "Jan"
	}
	for _, bk := range in.Buckets {
		n := 0
		if peak > 0 {
			n = bk.Count * barWidth / peak
			if bk.Count > 0 && n == 0 {
				n = 1
			}
		}
		fmt.Fprintf(&b, "%s %s %d\n", labelStyle.Render(bk.Start.Format(layout)), barStyle.Render(strings.Repeat("█", n)), bk.Count)
	}
	return b.String()
}
