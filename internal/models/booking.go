package models

import "strings"

// BookingDraft is the in-progress, not-yet-submitted booking request.
type BookingDraft struct {
	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Name  string
	Email string
	Phone string
}

// Complete reports whether all required fields are present. Phone is
// optional.
func (d BookingDraft) Complete() bool {
	return strings.TrimSpace(d.Date) != "" &&
		strings.TrimSpace(d.Time) != "" &&
		strings.TrimSpace(d.Name) != "" &&
		strings.TrimSpace(d.Email) != ""
}

// Booking is the created booking record returned by the backend.
type Booking struct {
	ID              string `json:"id"`
	ClientName      string `json:"client_name"`
	ClientEmail     string `json:"client_email"`
	ClientPhone     string `json:"client_phone,omitempty"`
	ServiceType     string `json:"service_type"`
	ScheduledAt     string `json:"scheduled_at"`
	DurationMinutes int    `json:"duration_minutes"`
	Timezone        string `json:"timezone"`
	Status          string `json:"status,omitempty"`
}
