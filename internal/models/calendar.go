package models

import "time"

// WeekWindow is one displayable week within the bounded navigation window.
// StartDate always falls on a Monday.
type WeekWindow struct {
	Index     int
	StartDate time.Time
	Label     string
}

// EndDate returns the Sunday closing the week.
func (w WeekWindow) EndDate() time.Time {
	return w.StartDate.AddDate(0, 0, 6)
}

// DaySlot is one calendar day within a selected week. Date is the ISO date
// string (YYYY-MM-DD) and serves as the stable identity.
type DaySlot struct {
	Date           string
	DayName        string
	DayNumber      int
	IsWeekend      bool
	AvailableSlots int
	CountKnown     bool
}

// Period buckets time slots by half of day.
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
)

// TimeSlot is one bookable unit within a selected day.
type TimeSlot struct {
	Time      string // HH:MM
	Period    Period
	Available bool
}

// RawSlot is one slot record as returned by the availability endpoint.
// Either Datetime (ISO timestamp) or the legacy Time field identifies the
// slot; records carrying neither are malformed.
type RawSlot struct {
	Datetime  string `json:"datetime,omitempty"`
	Time      string `json:"time,omitempty"`
	Available bool   `json:"available"`
}
