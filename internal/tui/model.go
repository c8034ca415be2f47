package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiocentos/bookctl/internal/api"
	"github.com/studiocentos/bookctl/internal/config"
	"github.com/studiocentos/bookctl/internal/constants"
	"github.com/studiocentos/bookctl/internal/models"
	"github.com/studiocentos/bookctl/internal/schedule"
	"github.com/studiocentos/bookctl/internal/selection"
	"github.com/studiocentos/bookctl/internal/storage"
	"github.com/studiocentos/bookctl/internal/tui/components/daygrid"
	"github.com/studiocentos/bookctl/internal/tui/components/slotpicker"
	"github.com/studiocentos/bookctl/internal/tui/components/weeknav"
	"github.com/studiocentos/bookctl/internal/tui/handlers"
)

type sessionState int

const (
	stateTour sessionState = iota
	stateBrowse
	stateContact
	stateSubmitting
	stateDone
)

// BookingClient is the slice of the API client the widget needs. The real
// *api.Client satisfies it; tests substitute a fake.
type BookingClient interface {
	FetchAvailability(ctx context.Context, date string) (api.AvailabilityResult, error)
	FetchWeekCounts(ctx context.Context, startDate, endDate string) (map[string]int, error)
	SubmitBooking(ctx context.Context, draft models.BookingDraft) (models.Booking, error)
}

type Model struct {
	cfg    *config.Config
	store  storage.Provider
	client BookingClient

	state sessionState
	keys  KeyMap
	help  help.Model
	spin  spinner.Model

	nav    weeknav.Model
	grid   daygrid.Model
	picker slotpicker.Model
	sel    selection.Selection

	form        *huh.Form
	contact     *handlers.ContactFormModel
	fetchCancel context.CancelFunc

	confirmation string
	errMsg       string
	width        int
	height       int
	quitting     bool
}

// NewModel builds the booking widget. now is injected so week generation
// stays deterministic in tests.
func NewModel(cfg *config.Config, store storage.Provider, client BookingClient, now time.Time) Model {
	weeks := schedule.GenerateWeeks(cfg.WeekWindow, cfg.Locale, now)
	nav := weeknav.New(weeks)
	grid := daygrid.New(schedule.GenerateDaysOfWeek(weeks[0].StartDate, cfg.Locale))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	state := stateBrowse
	if done, err := store.GetFlag(constants.FlagTourDone); err != nil || !done {
		state = stateTour
	}

	return Model{
		cfg:     cfg,
		store:   store,
		client:  client,
		state:   state,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		spin:    sp,
		nav:     nav,
		grid:    grid,
		picker:  slotpicker.New(cfg.Locale),
		sel:     selection.None(),
		contact: &handlers.ContactFormModel{},
	}
}

func (m Model) Init() tea.Cmd {
	return m.fetchWeekCountsCmd(m.nav.Active())
}

// Selection exposes the current selection for tests.
func (m Model) Selection() selection.Selection { return m.sel }

// WeekIndex exposes the active week index for tests.
func (m Model) WeekIndex() int { return m.nav.Index() }
