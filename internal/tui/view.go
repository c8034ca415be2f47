package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/studiocentos/bookctl/internal/constants"
	"github.com/studiocentos/bookctl/internal/locale"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateTour:
		return docStyle.Render(m.viewTour())
	case stateContact:
		return docStyle.Render(m.viewContact())
	case stateSubmitting:
		return docStyle.Render(m.viewSubmitting())
	case stateDone:
		return docStyle.Render(m.viewDone())
	default:
		return docStyle.Render(m.viewBrowse())
	}
}

func (m Model) viewBrowse() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(constants.AppName + " · book a consultation"))
	b.WriteString("\n\n")
	b.WriteString(m.nav.View())
	b.WriteString("\n\n")
	b.WriteString(m.grid.View())
	b.WriteString("\n")

	if m.sel.HasDay() {
		b.WriteString("\n")
		b.WriteString(m.picker.View())
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(dangerStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) viewContact() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("contact details"))
	b.WriteString("\n\n")
	b.WriteString(summaryStyle.Render(m.selectionSummary()))
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(dangerStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	}

	if m.form != nil {
		b.WriteString(m.form.View())
	}
	b.WriteString("\n")
	b.WriteString(statusStyle.Render("esc to go back"))
	return b.String()
}

func (m Model) viewSubmitting() string {
	return fmt.Sprintf("%s submitting booking for %s", m.spin.View(), m.selectionSummary())
}

func (m Model) viewDone() string {
	var b strings.Builder
	b.WriteString(successStyle.Render("✓ booking confirmed"))
	if m.confirmation != "" {
		b.WriteString("\n\n")
		b.WriteString(summaryStyle.Render("scheduled at " + m.confirmation))
	}
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render("press any key to book another, q to quit"))
	return b.String()
}

func (m Model) viewTour() string {
	lines := []string{
		titleStyle.Render("welcome to " + constants.AppName),
		"",
		"Pick a weekday, then a free time slot, and enter your",
		"contact details to book a consultation.",
		"",
		"  [ / ]     page weeks",
		"  ← → ↑ ↓   move around",
		"  enter     select",
		"",
		statusStyle.Render("press any key to start"),
	}
	return tourStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// selectionSummary renders the chosen day and time in the display locale,
// e.g. "lunedì 16 marzo, 10:00".
func (m Model) selectionSummary() string {
	day, err := time.Parse(constants.DateFormat, m.sel.Date())
	if err != nil {
		return m.sel.Date() + ", " + m.sel.Time()
	}
	return fmt.Sprintf("%s %d %s, %s",
		locale.DayName(m.cfg.Locale, day.Weekday()),
		day.Day(),
		locale.MonthName(m.cfg.Locale, day.Month()),
		m.sel.Time(),
	)
}
