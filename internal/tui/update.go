package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/studiocentos/bookctl/internal/api"
	"github.com/studiocentos/bookctl/internal/constants"
	"github.com/studiocentos/bookctl/internal/models"
	"github.com/studiocentos/bookctl/internal/schedule"
	"github.com/studiocentos/bookctl/internal/tui/components/daygrid"
	"github.com/studiocentos/bookctl/internal/tui/components/slotpicker"
	"github.com/studiocentos/bookctl/internal/tui/handlers"
	"github.com/studiocentos/bookctl/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.nav.SetSize(msg.Width)
		m.grid.SetSize(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case availabilityMsg:
		// Stale response for a day no longer selected; drop it.
		if !m.sel.IsDay(msg.date) {
			return m, nil
		}
		m.picker.SetSlots(msg.result.Morning, msg.result.Afternoon, msg.result.Source == api.SourceFallback)
		return m, nil

	case weekCountsMsg:
		if msg.start == m.activeWeekStart() {
			m.grid.SetCounts(msg.counts)
		}
		return m, nil

	case weekCountsFailedMsg:
		// Placeholders stay; nothing to do.
		return m, nil

	case bookingDoneMsg:
		m.state = stateDone
		m.confirmation = msg.booking.ScheduledAt
		m.errMsg = ""
		m.sel = m.sel.Reset()
		m.grid.SetSelected("")
		m.picker.Clear()
		*m.contact = handlers.ContactFormModel{}
		m.form = nil
		return m, nil

	case bookingFailedMsg:
		// Keep the draft: the selection and contact values survive so the
		// user can retry or pick another slot.
		m.state = stateContact
		m.errMsg = msg.detail
		m.form = handlers.NewContactForm(m.contact)
		return m, m.form.Init()

	case spinner.TickMsg:
		if m.state == stateSubmitting {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.state {
	case stateTour:
		return m.updateTour(msg)
	case stateBrowse:
		return m.updateBrowse(msg)
	case stateContact:
		return m.updateContact(msg)
	case stateSubmitting:
		// Input is ignored while the request is in flight, except quit.
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case stateDone:
		return m.updateDone(msg)
	}
	return m, nil
}

func (m Model) updateTour(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	m.state = stateBrowse
	return m, m.markTourDoneCmd()
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case daygrid.SelectDayMsg:
		return m.applyDayClick(msg.Day)

	case slotpicker.SelectTimeMsg:
		next := m.sel.SelectTime(msg.Time)
		if next == m.sel {
			return m, nil
		}
		m.sel = next
		m.picker.SetSelected(msg.Time)
		m.errMsg = ""
		m.form = handlers.NewContactForm(m.contact)
		m.state = stateContact
		return m, m.form.Init()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			if m.fetchCancel != nil {
				m.fetchCancel()
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.PrevWeek):
			if m.nav.Prev() {
				return m.enterWeek()
			}
			return m, nil

		case key.Matches(msg, m.keys.NextWeek):
			if m.nav.Next() {
				return m.enterWeek()
			}
			return m, nil

		default:
			return m.routeBrowseKey(msg)
		}
	}
	return m, nil
}

// routeBrowseKey splits keys between the day grid and the slot picker.
// Left/right and space always drive the grid; up/down and enter go to the
// picker once a day is selected, so enter picks a time rather than
// reselecting the day under the cursor.
func (m Model) routeBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	toGrid := key.Matches(msg, m.keys.Left) ||
		key.Matches(msg, m.keys.Right) ||
		msg.String() == " " ||
		!m.sel.HasDay()

	if toGrid {
		m.grid, cmd = m.grid.Update(msg)
	} else {
		m.picker, cmd = m.picker.Update(msg)
	}
	return m, cmd
}

func (m Model) applyDayClick(day models.DaySlot) (tea.Model, tea.Cmd) {
	next := m.sel.SelectDay(day)
	if next == m.sel {
		// Weekend click; nothing changes.
		return m, nil
	}
	m.sel = next

	if !next.HasDay() {
		// Toggled off. Cancel any fetch still running for it.
		if m.fetchCancel != nil {
			m.fetchCancel()
			m.fetchCancel = nil
		}
		m.grid.SetSelected("")
		m.picker.Clear()
		return m, nil
	}

	m.grid.SetSelected(next.Date())
	m.picker.Clear()
	m.picker.SetLoading()
	return m, m.fetchAvailabilityCmd(next.Date())
}

// enterWeek refreshes the grid for the newly active week. The selection is
// keyed by date, so a selected day reappears highlighted when its week is
// paged back into view.
func (m Model) enterWeek() (tea.Model, tea.Cmd) {
	week := m.nav.Active()
	m.grid.SetDays(schedule.GenerateDaysOfWeek(week.StartDate, m.cfg.Locale))
	m.grid.SetSelected(m.sel.Date())
	return m, m.fetchWeekCountsCmd(week)
}

func (m Model) updateContact(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			// Back to slot browsing; the chosen time is dropped but the day
			// and typed contact details stay.
			m.sel = m.sel.ClearTime()
			m.picker.SetSelected("")
			m.form = nil
			m.errMsg = ""
			m.state = stateBrowse
			return m, nil
		}
		if keyMsg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
	}

	if m.form == nil {
		m.state = stateBrowse
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		draft := models.BookingDraft{
			Date:  m.sel.Date(),
			Time:  m.sel.Time(),
			Name:  m.contact.Name,
			Email: m.contact.Email,
			Phone: m.contact.Phone,
		}
		if issues := validation.ValidateDraft(draft); len(issues) > 0 {
			m.errMsg = issues[0].Message
			m.form = handlers.NewContactForm(m.contact)
			return m, m.form.Init()
		}
		m.state = stateSubmitting
		m.errMsg = ""
		return m, tea.Batch(m.spin.Tick, m.submitBookingCmd(draft))
	}
	return m, cmd
}

func (m Model) updateDone(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	m.state = stateBrowse
	m.confirmation = ""
	// Counts may have changed now that a slot was taken.
	m.grid.ClearCounts()
	return m, m.fetchWeekCountsCmd(m.nav.Active())
}

func (m Model) activeWeekStart() string {
	return m.nav.Active().StartDate.Format(constants.DateFormat)
}
