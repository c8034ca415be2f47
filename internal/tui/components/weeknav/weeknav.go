// Package weeknav renders the bounded week pager at the top of the
// booking widget.
package weeknav

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/studiocentos/bookctl/internal/models"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(0, 2)

	arrowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	disabledArrowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("238"))
)

type Model struct {
	weeks []models.WeekWindow
	index int
	width int
}

func New(weeks []models.WeekWindow) Model {
	return Model{weeks: weeks}
}

// SetWeeks replaces the window, clamping the active index into the new
// bounds.
func (m *Model) SetWeeks(weeks []models.WeekWindow) {
	m.weeks = weeks
	if m.index >= len(weeks) {
		m.index = len(weeks) - 1
	}
	if m.index < 0 {
		m.index = 0
	}
}

func (m *Model) SetSize(width int) { m.width = width }

func (m Model) Index() int { return m.index }

func (m Model) Active() models.WeekWindow {
	if len(m.weeks) == 0 {
		return models.WeekWindow{}
	}
	return m.weeks[m.index]
}

func (m Model) CanPrev() bool { return m.index > 0 }
func (m Model) CanNext() bool { return m.index < len(m.weeks)-1 }

// Prev pages one week back. Moving past the lower boundary is a no-op.
func (m *Model) Prev() bool {
	if !m.CanPrev() {
		return false
	}
	m.index--
	return true
}

// Next pages one week forward. Moving past the upper boundary is a no-op.
func (m *Model) Next() bool {
	if !m.CanNext() {
		return false
	}
	m.index++
	return true
}

func (m Model) View() string {
	if len(m.weeks) == 0 {
		return ""
	}

	prev := disabledArrowStyle.Render("‹")
	if m.CanPrev() {
		prev = arrowStyle.Render("‹")
	}
	next := disabledArrowStyle.Render("›")
	if m.CanNext() {
		next = arrowStyle.Render("›")
	}

	line := lipgloss.JoinHorizontal(lipgloss.Center,
		prev,
		labelStyle.Render(m.Active().Label),
		next,
	)
	position := fmt.Sprintf(" %d/%d", m.index+1, len(m.weeks))
	return line + disabledArrowStyle.Render(position)
}
