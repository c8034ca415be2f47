// Package daygrid renders the seven day cells of the active week and
// manages the day cursor. Day selection itself lives in the parent model;
// the grid only reports clicks.
package daygrid

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiocentos/bookctl/internal/models"
)

// SelectDayMsg reports that the user activated a day cell.
type SelectDayMsg struct {
	Day models.DaySlot
}

var (
	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(9).
			Align(lipgloss.Center)

	weekendCellStyle = cellStyle.
				Foreground(lipgloss.Color("240")).
				BorderForeground(lipgloss.Color("238"))

	cursorCellStyle = cellStyle.
			BorderForeground(lipgloss.Color("205"))

	selectedCellStyle = cellStyle.
				Foreground(lipgloss.Color("205")).
				BorderForeground(lipgloss.Color("205")).
				Bold(true)

	countStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	noCountStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	fullCellStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select day"),
		),
	}
}

type Model struct {
	days     []models.DaySlot
	cursor   int
	selected string // ISO date of the selected day, if in view
	keys     KeyMap
	width    int
}

func New(days []models.DaySlot) Model {
	return Model{days: days, keys: DefaultKeyMap()}
}

// SetDays replaces the week's days, keeping the cursor in bounds.
func (m *Model) SetDays(days []models.DaySlot) {
	m.days = days
	if m.cursor >= len(days) {
		m.cursor = 0
	}
}

// SetCounts fills in per-day availability counts from backend data.
func (m *Model) SetCounts(counts map[string]int) {
	for i := range m.days {
		if n, ok := counts[m.days[i].Date]; ok {
			m.days[i].AvailableSlots = n
			m.days[i].CountKnown = true
		}
	}
}

// ClearCounts marks every count unknown again, shown as a placeholder.
func (m *Model) ClearCounts() {
	for i := range m.days {
		m.days[i].AvailableSlots = 0
		m.days[i].CountKnown = false
	}
}

// SetSelected highlights the day with the given date; dates outside the
// current week simply match nothing.
func (m *Model) SetSelected(date string) { m.selected = date }

func (m *Model) SetSize(width int) { m.width = width }

func (m Model) CursorDay() models.DaySlot {
	if len(m.days) == 0 {
		return models.DaySlot{}
	}
	return m.days[m.cursor]
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Right):
		if m.cursor < len(m.days)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Select):
		if len(m.days) > 0 {
			day := m.days[m.cursor]
			return m, func() tea.Msg { return SelectDayMsg{Day: day} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.days) == 0 {
		return ""
	}

	cells := make([]string, 0, len(m.days))
	for i, day := range m.days {
		style := cellStyle
		switch {
		case day.Date == m.selected:
			style = selectedCellStyle
		case i == m.cursor:
			style = cursorCellStyle
		case day.IsWeekend:
			style = weekendCellStyle
		}

		content := fmt.Sprintf("%s\n%2d\n%s", shortName(day.DayName), day.DayNumber, m.countLine(day))
		cells = append(cells, style.Render(content))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) countLine(day models.DaySlot) string {
	if day.IsWeekend {
		return noCountStyle.Render("—")
	}
	if !day.CountKnown {
		return noCountStyle.Render("…")
	}
	if day.AvailableSlots == 0 {
		return fullCellStyle.Render("full")
	}
	return countStyle.Render(fmt.Sprintf("%d free", day.AvailableSlots))
}

func shortName(name string) string {
	r := []rune(name)
	if len(r) <= 3 {
		return name
	}
	return string(r[:3])
}
