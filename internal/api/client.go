// Package api implements the client for the booking backend. The backend
// contract is fixed: one endpoint for calendar availability and one for
// creating bookings.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/studiocentos/bookctl/internal/constants"
	"github.com/studiocentos/bookctl/internal/logger"
	"github.com/studiocentos/bookctl/internal/models"
	"github.com/studiocentos/bookctl/internal/schedule"
)

// Source tells whether availability data came from the backend or from the
// static degraded-mode fallback.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// AvailabilityResult is the normalized availability for one day.
type AvailabilityResult struct {
	Date      string
	Morning   []models.TimeSlot
	Afternoon []models.TimeSlot
	Source    Source
}

// Slots returns the morning and afternoon groups as one list.
func (r AvailabilityResult) Slots() []models.TimeSlot {
	out := make([]models.TimeSlot, 0, len(r.Morning)+len(r.Afternoon))
	out = append(out, r.Morning...)
	return append(out, r.Afternoon...)
}

// BackendError carries a non-2xx response from the booking endpoint. Detail
// holds the backend's error text verbatim when it sent one.
type BackendError struct {
	Status int
	Detail string
}

func (e *BackendError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("booking request failed with status %d", e.Status)
}

type Client struct {
	baseURL    string
	token      string
	timezone   string
	httpClient *http.Client
}

// New creates a booking backend client. token may be empty for anonymous
// access; timezone is sent with every booking.
func New(baseURL, token, timezone string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		timezone:   timezone,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type availabilityRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type dayAvailability struct {
	Date  string           `json:"date"`
	Slots []models.RawSlot `json:"slots"`
}

type availabilityResponse struct {
	Availability []dayAvailability `json:"availability"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// FetchAvailability returns the slot availability for a single day. Any
// backend failure (transport error, non-2xx, undecodable body) degrades to
// the static fallback list instead of erroring, so the widget never blocks
// on an outage; the result's Source marks the degraded state. A cancelled
// context is the one exception: it returns ctx's error so callers can drop
// stale requests rather than render fallback data for them.
func (c *Client) FetchAvailability(ctx context.Context, date string) (AvailabilityResult, error) {
	byDate, err := c.fetchRange(ctx, date, date)
	if err != nil {
		if ctx.Err() != nil {
			return AvailabilityResult{}, ctx.Err()
		}
		logger.Warn("availability fetch failed, serving fallback slots", "date", date, "error", err)
		return fallbackResult(date), nil
	}

	raw, ok := byDate[date]
	if !ok {
		logger.Warn("availability response missing requested date, serving fallback slots", "date", date)
		return fallbackResult(date), nil
	}

	morning, afternoon := schedule.Partition(schedule.NormalizeSlots(raw))
	return AvailabilityResult{
		Date:      date,
		Morning:   morning,
		Afternoon: afternoon,
		Source:    SourceLive,
	}, nil
}

// FetchWeekCounts returns the number of open slots per day over a date
// range. Unlike the single-day fetch there is no fallback: the caller shows
// a placeholder when counts are unknown.
func (c *Client) FetchWeekCounts(ctx context.Context, startDate, endDate string) (map[string]int, error) {
	byDate, err := c.fetchRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(byDate))
	for date, raw := range byDate {
		counts[date] = schedule.CountAvailable(schedule.NormalizeSlots(raw))
	}
	return counts, nil
}

func (c *Client) fetchRange(ctx context.Context, startDate, endDate string) (map[string][]models.RawSlot, error) {
	body, err := json.Marshal(availabilityRequest{StartDate: startDate, EndDate: endDate})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+constants.AvailabilityPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("availability request failed with status %d", res.StatusCode)
	}

	var decoded availabilityResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode availability response: %w", err)
	}

	byDate := make(map[string][]models.RawSlot, len(decoded.Availability))
	for _, day := range decoded.Availability {
		byDate[day.Date] = day.Slots
	}
	return byDate, nil
}

type bookingRequest struct {
	ClientName      string `json:"client_name"`
	ClientEmail     string `json:"client_email"`
	ClientPhone     string `json:"client_phone,omitempty"`
	ServiceType     string `json:"service_type"`
	ScheduledAt     string `json:"scheduled_at"`
	DurationMinutes int    `json:"duration_minutes"`
	Timezone        string `json:"timezone"`
}

// SubmitBooking creates a booking from a complete draft. The caller is
// responsible for validating the draft first; no request is issued for an
// incomplete one. On a non-2xx response the returned error is a
// *BackendError surfacing the backend's detail text when present.
func (c *Client) SubmitBooking(ctx context.Context, draft models.BookingDraft) (models.Booking, error) {
	if !draft.Complete() {
		return models.Booking{}, fmt.Errorf("booking draft is incomplete")
	}

	payload := bookingRequest{
		ClientName:      draft.Name,
		ClientEmail:     draft.Email,
		ClientPhone:     draft.Phone,
		ServiceType:     constants.ServiceType,
		ScheduledAt:     fmt.Sprintf("%sT%s:00", draft.Date, draft.Time),
		DurationMinutes: constants.BookingDurationMin,
		Timezone:        c.timezone,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return models.Booking{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+constants.BookingsPath, bytes.NewReader(body))
	if err != nil {
		return models.Booking{}, err
	}
	c.setHeaders(req)
	req.Header.Set("X-Request-ID", uuid.New().String())

	res, err := c.httpClient.Do(req)
	if err != nil {
		return models.Booking{}, fmt.Errorf("booking request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		backendErr := &BackendError{Status: res.StatusCode}
		data, _ := io.ReadAll(res.Body)
		var decoded errorResponse
		if json.Unmarshal(data, &decoded) == nil {
			backendErr.Detail = decoded.Detail
		}
		logger.Warn("booking rejected by backend", "status", res.StatusCode, "detail", backendErr.Detail)
		return models.Booking{}, backendErr
	}

	var booking models.Booking
	if err := json.NewDecoder(res.Body).Decode(&booking); err != nil {
		return models.Booking{}, fmt.Errorf("failed to decode booking response: %w", err)
	}

	logger.Info("booking created", "id", booking.ID, "scheduled_at", booking.ScheduledAt)
	return booking, nil
}

// Ping checks backend reachability for diagnostics by requesting a one-day
// availability window.
func (c *Client) Ping(ctx context.Context) error {
	today := time.Now().Format(constants.DateFormat)
	_, err := c.fetchRange(ctx, today, today)
	return err
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func fallbackResult(date string) AvailabilityResult {
	morning, afternoon := schedule.Partition(schedule.FallbackSlots())
	return AvailabilityResult{
		Date:      date,
		Morning:   morning,
		Afternoon: afternoon,
		Source:    SourceFallback,
	}
}
