// Package slotpicker renders the morning/afternoon slot groups for the
// selected day and manages the slot cursor.
package slotpicker

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiocentos/bookctl/internal/models"
)

// SelectTimeMsg reports that the user activated an open slot.
type SelectTimeMsg struct {
	Time string
}

var (
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true)

	slotStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	unavailableSlotStyle = slotStyle.
				Foreground(lipgloss.Color("238")).
				BorderForeground(lipgloss.Color("236"))

	cursorSlotStyle = slotStyle.
			BorderForeground(lipgloss.Color("205"))

	selectedSlotStyle = slotStyle.
				Foreground(lipgloss.Color("205")).
				BorderForeground(lipgloss.Color("205")).
				Bold(true)

	fallbackBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("214")).
				Padding(0, 1)

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev slot"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next slot"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "pick time"),
		),
	}
}

type labels struct {
	Morning   string
	Afternoon string
	Offline   string
	Loading   string
	Empty     string
}

// Labels per display locale; unknown locales fall back to English.
var labelTable = map[string]labels{
	"en": {"Morning", "Afternoon", "offline schedule", "loading availability…", "no slots for this day"},
	"it": {"Mattina", "Pomeriggio", "orari non aggiornati", "caricamento disponibilità…", "nessuno slot per questo giorno"},
	"es": {"Mañana", "Tarde", "horario sin conexión", "cargando disponibilidad…", "sin turnos para este día"},
}

type Model struct {
	morning   []models.TimeSlot
	afternoon []models.TimeSlot
	cursor    int
	selected  string
	fallback  bool
	loading   bool
	keys      KeyMap
	labels    labels
}

func New(locale string) Model {
	l, ok := labelTable[locale]
	if !ok {
		l = labelTable["en"]
	}
	return Model{keys: DefaultKeyMap(), labels: l}
}

// SetSlots installs a day's availability. fallback marks degraded data so
// the view can surface it.
func (m *Model) SetSlots(morning, afternoon []models.TimeSlot, fallback bool) {
	m.morning = morning
	m.afternoon = afternoon
	m.fallback = fallback
	m.loading = false
	m.cursor = 0
}

// SetLoading puts the picker into its fetch-pending state.
func (m *Model) SetLoading() {
	m.morning = nil
	m.afternoon = nil
	m.fallback = false
	m.loading = true
	m.cursor = 0
}

// Clear empties the picker, used when the day selection is dropped.
func (m *Model) Clear() {
	m.morning = nil
	m.afternoon = nil
	m.fallback = false
	m.loading = false
	m.selected = ""
	m.cursor = 0
}

func (m *Model) SetSelected(hhmm string) { m.selected = hhmm }

func (m Model) Fallback() bool { return m.fallback }
func (m Model) Loading() bool  { return m.loading }

func (m Model) all() []models.TimeSlot {
	out := make([]models.TimeSlot, 0, len(m.morning)+len(m.afternoon))
	out = append(out, m.morning...)
	return append(out, m.afternoon...)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	slots := m.all()
	if len(slots) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(slots)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Select):
		slot := slots[m.cursor]
		// Unavailable slots are rendered but not pickable.
		if slot.Available {
			return m, func() tea.Msg { return SelectTimeMsg{Time: slot.Time} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return loadingStyle.Render(m.labels.Loading)
	}

	slots := m.all()
	if len(slots) == 0 {
		return loadingStyle.Render(m.labels.Empty)
	}

	var b strings.Builder

	if m.fallback {
		b.WriteString(fallbackBadgeStyle.Render("⚠ " + m.labels.Offline))
		b.WriteString("\n\n")
	}

	offset := 0
	if len(m.morning) > 0 {
		b.WriteString(headingStyle.Render(m.labels.Morning))
		b.WriteString("\n")
		b.WriteString(m.renderGroup(m.morning, offset))
		b.WriteString("\n")
		offset += len(m.morning)
	}
	if len(m.afternoon) > 0 {
		b.WriteString(headingStyle.Render(m.labels.Afternoon))
		b.WriteString("\n")
		b.WriteString(m.renderGroup(m.afternoon, offset))
	}
	return b.String()
}

func (m Model) renderGroup(slots []models.TimeSlot, offset int) string {
	cells := make([]string, 0, len(slots))
	for i, slot := range slots {
		style := slotStyle
		switch {
		case slot.Time == m.selected:
			style = selectedSlotStyle
		case offset+i == m.cursor:
			style = cursorSlotStyle
		case !slot.Available:
			style = unavailableSlotStyle
		}
		cells = append(cells, style.Render(slot.Time))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
