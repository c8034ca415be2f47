package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiocentos/bookctl/internal/api"
	"github.com/studiocentos/bookctl/internal/config"
	"github.com/studiocentos/bookctl/internal/constants"
	"github.com/studiocentos/bookctl/internal/models"
	"github.com/studiocentos/bookctl/internal/selection"
	"github.com/studiocentos/bookctl/internal/storage"
	"github.com/studiocentos/bookctl/internal/tui/components/daygrid"
	"github.com/studiocentos/bookctl/internal/tui/components/slotpicker"
)

type fakeClient struct {
	counts    map[string]int
	countsErr error
	booking   models.Booking
	submitErr error
	submitted []models.BookingDraft
}

func (f *fakeClient) FetchAvailability(ctx context.Context, date string) (api.AvailabilityResult, error) {
	return api.AvailabilityResult{
		Date:    date,
		Morning: []models.TimeSlot{{Time: "10:00", Period: models.PeriodMorning, Available: true}},
		Source:  api.SourceLive,
	}, nil
}

func (f *fakeClient) FetchWeekCounts(ctx context.Context, startDate, endDate string) (map[string]int, error) {
	return f.counts, f.countsErr
}

func (f *fakeClient) SubmitBooking(ctx context.Context, draft models.BookingDraft) (models.Booking, error) {
	f.submitted = append(f.submitted, draft)
	if f.submitErr != nil {
		return models.Booking{}, f.submitErr
	}
	return f.booking, nil
}

// Wednesday; the first bookable week starts Monday 2026-03-09.
var testNow = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, client BookingClient) Model {
	t.Helper()
	store := storage.NewMemoryStore()
	if err := store.Init(); err != nil {
		t.Fatalf("init store: %v", err)
	}
	if err := store.SetFlag(constants.FlagTourDone, true); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	cfg := &config.Config{
		BackendURL: "http://localhost:9", // never dialed in tests
		Timeout:    time.Second,
		Locale:     "en",
		Timezone:   "Europe/Rome",
		WeekWindow: 4,
	}
	return NewModel(cfg, store, client, testNow)
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		m = next.(Model)
	}
	return m
}

func apply(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func weekdaySlot(m Model, offset int) models.DaySlot {
	d := m.nav.Active().StartDate.AddDate(0, 0, offset)
	return models.DaySlot{
		Date:      d.Format(constants.DateFormat),
		DayName:   "Monday",
		DayNumber: d.Day(),
	}
}

func TestWeekPagingClampsAtBounds(t *testing.T) {
	m := newTestModel(t, &fakeClient{})

	for i := 0; i < 10; i++ {
		m = press(t, m, "]")
	}
	if got := m.WeekIndex(); got != 3 {
		t.Errorf("expected paging to stop at last week 3, got %d", got)
	}

	for i := 0; i < 10; i++ {
		m = press(t, m, "[")
	}
	if got := m.WeekIndex(); got != 0 {
		t.Errorf("expected paging to stop at first week 0, got %d", got)
	}
}

func TestWeekendDayClickIsIgnored(t *testing.T) {
	m := newTestModel(t, &fakeClient{})

	saturday := weekdaySlot(m, 5)
	saturday.IsWeekend = true
	m = apply(t, m, daygrid.SelectDayMsg{Day: saturday})

	if m.Selection().HasDay() {
		t.Errorf("weekend click selected day %q", m.Selection().Date())
	}
}

func TestDayReclickTogglesOff(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	day := weekdaySlot(m, 0)

	m = apply(t, m, daygrid.SelectDayMsg{Day: day})
	if !m.Selection().IsDay(day.Date) {
		t.Fatalf("expected day %s selected", day.Date)
	}
	if !m.picker.Loading() {
		t.Error("expected picker in loading state after day selection")
	}

	m = apply(t, m, daygrid.SelectDayMsg{Day: day})
	if m.Selection().HasDay() {
		t.Error("expected reclick to deselect the day")
	}
	if m.picker.Loading() {
		t.Error("expected picker cleared after deselection")
	}
}

func TestStaleAvailabilityResponseIsDropped(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	dayA := weekdaySlot(m, 0)
	dayB := weekdaySlot(m, 1)

	m = apply(t, m, daygrid.SelectDayMsg{Day: dayA})
	m = apply(t, m, daygrid.SelectDayMsg{Day: dayB})

	// The response for day A arrives after the user moved to day B.
	m = apply(t, m, availabilityMsg{
		date:   dayA.Date,
		result: api.AvailabilityResult{Date: dayA.Date, Source: api.SourceLive},
	})
	if !m.picker.Loading() {
		t.Error("stale response should not populate the picker")
	}

	m = apply(t, m, availabilityMsg{
		date: dayB.Date,
		result: api.AvailabilityResult{
			Date:    dayB.Date,
			Morning: []models.TimeSlot{{Time: "09:00", Period: models.PeriodMorning, Available: true}},
			Source:  api.SourceLive,
		},
	})
	if m.picker.Loading() {
		t.Error("current-day response should populate the picker")
	}
}

func TestFallbackAvailabilityIsMarked(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	day := weekdaySlot(m, 0)

	m = apply(t, m, daygrid.SelectDayMsg{Day: day})
	m = apply(t, m, availabilityMsg{
		date: day.Date,
		result: api.AvailabilityResult{
			Date:    day.Date,
			Morning: []models.TimeSlot{{Time: "09:00", Period: models.PeriodMorning, Available: true}},
			Source:  api.SourceFallback,
		},
	})

	if !m.picker.Fallback() {
		t.Error("picker should surface fallback-sourced availability")
	}
}

func TestWeekCountsTaggedByWeek(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	cursorDate := m.grid.CursorDay().Date

	m = apply(t, m, weekCountsMsg{start: "1999-01-04", counts: map[string]int{cursorDate: 3}})
	if m.grid.CursorDay().CountKnown {
		t.Error("counts for another week must not be applied")
	}

	m = apply(t, m, weekCountsMsg{start: m.activeWeekStart(), counts: map[string]int{cursorDate: 3}})
	day := m.grid.CursorDay()
	if !day.CountKnown || day.AvailableSlots != 3 {
		t.Errorf("expected 3 known slots for %s, got known=%v count=%d", cursorDate, day.CountKnown, day.AvailableSlots)
	}
}

func TestSelectionSurvivesWeekPaging(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	day := weekdaySlot(m, 2)

	m = apply(t, m, daygrid.SelectDayMsg{Day: day})
	m = press(t, m, "]")
	m = press(t, m, "[")

	if !m.Selection().IsDay(day.Date) {
		t.Errorf("selection lost across week paging, got %q", m.Selection().Date())
	}
}

func TestTimeSelectionOpensContactForm(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	day := weekdaySlot(m, 0)

	m = apply(t, m, daygrid.SelectDayMsg{Day: day})
	m = apply(t, m, slotpicker.SelectTimeMsg{Time: "10:00"})

	if m.state != stateContact {
		t.Fatalf("expected contact state, got %d", m.state)
	}
	if m.Selection().State() != selection.StateFull {
		t.Errorf("expected full selection, got %v", m.Selection().State())
	}
	if m.form == nil {
		t.Error("expected contact form to be initialized")
	}
}

func TestBookingFailureKeepsDraft(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	day := weekdaySlot(m, 0)

	m = apply(t, m, daygrid.SelectDayMsg{Day: day})
	m = apply(t, m, slotpicker.SelectTimeMsg{Time: "10:00"})
	m.contact.Name = "Ada Lovelace"
	m.contact.Email = "ada@example.com"
	m.state = stateSubmitting

	m = apply(t, m, bookingFailedMsg{detail: "Slot no longer available"})

	if m.state != stateContact {
		t.Fatalf("expected contact state after failure, got %d", m.state)
	}
	if m.errMsg != "Slot no longer available" {
		t.Errorf("backend detail must be shown verbatim, got %q", m.errMsg)
	}
	if m.Selection().Time() != "10:00" {
		t.Errorf("time selection should survive a failed submit, got %q", m.Selection().Time())
	}
	if m.contact.Name != "Ada Lovelace" {
		t.Errorf("contact details should survive a failed submit, got %q", m.contact.Name)
	}
}

func TestBookingSuccessResetsWidget(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	day := weekdaySlot(m, 0)

	m = apply(t, m, daygrid.SelectDayMsg{Day: day})
	m = apply(t, m, slotpicker.SelectTimeMsg{Time: "10:00"})
	m.contact.Name = "Ada Lovelace"
	m.contact.Email = "ada@example.com"
	m.state = stateSubmitting

	m = apply(t, m, bookingDoneMsg{booking: models.Booking{ID: "b-1", ScheduledAt: day.Date + "T10:00:00"}})

	if m.state != stateDone {
		t.Fatalf("expected done state, got %d", m.state)
	}
	if m.Selection().HasDay() {
		t.Error("selection should be cleared after a successful booking")
	}
	if m.contact.Name != "" || m.contact.Email != "" {
		t.Error("contact details should be cleared after a successful booking")
	}
}

func TestTourShownUntilFlagSet(t *testing.T) {
	store := storage.NewMemoryStore()
	if err := store.Init(); err != nil {
		t.Fatalf("init store: %v", err)
	}
	cfg := &config.Config{
		BackendURL: "http://localhost:9",
		Timeout:    time.Second,
		Locale:     "en",
		Timezone:   "Europe/Rome",
		WeekWindow: 4,
	}
	m := NewModel(cfg, store, &fakeClient{}, testNow)

	if m.state != stateTour {
		t.Fatalf("expected tour on first run, got state %d", m.state)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m = next.(Model)
	if m.state != stateBrowse {
		t.Fatalf("expected browse after dismissing tour, got %d", m.state)
	}
	if cmd != nil {
		cmd() // persist the flag
	}
	if done, err := store.GetFlag(constants.FlagTourDone); err != nil || !done {
		t.Errorf("tour flag not persisted: done=%v err=%v", done, err)
	}
}

func TestEscFromContactKeepsDayDropsTime(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	day := weekdaySlot(m, 0)

	m = apply(t, m, daygrid.SelectDayMsg{Day: day})
	m = apply(t, m, slotpicker.SelectTimeMsg{Time: "10:00"})
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.state != stateBrowse {
		t.Fatalf("expected browse after esc, got %d", m.state)
	}
	if m.Selection().State() != selection.StateDay {
		t.Errorf("expected day-only selection after esc, got %v", m.Selection().State())
	}
	if !m.Selection().IsDay(day.Date) {
		t.Errorf("day selection lost on esc, got %q", m.Selection().Date())
	}
}
