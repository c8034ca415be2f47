package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/studiocentos/bookctl/internal/api"
	"github.com/studiocentos/bookctl/internal/constants"
	"github.com/studiocentos/bookctl/internal/logger"
	"github.com/studiocentos/bookctl/internal/models"
	"github.com/studiocentos/bookctl/internal/storage"
)

// availabilityMsg delivers one day's slots. The date tags the message so
// responses for a day the user has already navigated away from can be
// dropped instead of overwriting the current picker.
type availabilityMsg struct {
	date   string
	result api.AvailabilityResult
}

// weekCountsMsg delivers per-day open slot counts for one week, tagged by
// the week's start date.
type weekCountsMsg struct {
	start  string
	counts map[string]int
}

// weekCountsFailedMsg reports that a count fetch failed; the grid keeps its
// unknown placeholders.
type weekCountsFailedMsg struct {
	start string
}

type bookingDoneMsg struct {
	booking models.Booking
}

type bookingFailedMsg struct {
	detail string
}

// fetchAvailabilityCmd starts a slot fetch for the given day, cancelling
// any fetch still in flight so only the latest selection can deliver.
func (m *Model) fetchAvailabilityCmd(date string) tea.Cmd {
	if m.fetchCancel != nil {
		m.fetchCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.fetchCancel = cancel

	client := m.client
	return func() tea.Msg {
		result, err := client.FetchAvailability(ctx, date)
		if err != nil {
			// Only a cancelled context errors here; the fetch was superseded.
			if errors.Is(err, context.Canceled) {
				logger.Debug("availability fetch superseded", "date", date)
			}
			return nil
		}
		return availabilityMsg{date: date, result: result}
	}
}

func (m Model) fetchWeekCountsCmd(week models.WeekWindow) tea.Cmd {
	start := week.StartDate.Format(constants.DateFormat)
	end := week.EndDate().Format(constants.DateFormat)
	client := m.client
	timeout := m.cfg.Timeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		counts, err := client.FetchWeekCounts(ctx, start, end)
		if err != nil {
			logger.Warn("week counts unavailable", "start", start, "error", err)
			return weekCountsFailedMsg{start: start}
		}
		return weekCountsMsg{start: start, counts: counts}
	}
}

func (m Model) submitBookingCmd(draft models.BookingDraft) tea.Cmd {
	client := m.client
	store := m.store
	timeout := m.cfg.Timeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		booking, err := client.SubmitBooking(ctx, draft)
		if err != nil {
			return bookingFailedMsg{detail: err.Error()}
		}

		record := storage.BookingRecord{
			ID:        booking.ID,
			Date:      draft.Date,
			Time:      draft.Time,
			Name:      draft.Name,
			Email:     draft.Email,
			CreatedAt: time.Now(),
		}
		if record.ID == "" {
			record.ID = uuid.New().String()
		}
		if err := store.AddBooking(record); err != nil {
			logger.Warn("failed to record booking locally", "error", err)
		}
		return bookingDoneMsg{booking: booking}
	}
}

func (m Model) markTourDoneCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		if err := store.SetFlag(constants.FlagTourDone, true); err != nil {
			logger.Warn("failed to persist tour flag", "error", err)
		}
		return nil
	}
}
