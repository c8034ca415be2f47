// Package schedule implements the pure calendar math behind the booking
// widget: week window generation, day grids, and slot normalization. All
// functions are deterministic given a fixed reference time, which the TUI
// and tests inject.
package schedule

import (
	"time"

	"github.com/studiocentos/bookctl/internal/constants"
	"github.com/studiocentos/bookctl/internal/locale"
	"github.com/studiocentos/bookctl/internal/models"
)

// NextMonday returns the next Monday on or after now, at midnight in
// now's location. A Monday maps to itself.
func NextMonday(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch day.Weekday() {
	case time.Monday:
		return day
	case time.Sunday:
		return day.AddDate(0, 0, 1)
	default:
		return day.AddDate(0, 0, 8-int(day.Weekday()))
	}
}

// GenerateWeeks produces count consecutive week windows starting from the
// next Monday relative to now. Weeks are contiguous and non-overlapping.
func GenerateWeeks(count int, loc string, now time.Time) []models.WeekWindow {
	monday := NextMonday(now)
	weeks := make([]models.WeekWindow, 0, count)
	for i := 0; i < count; i++ {
		start := monday.AddDate(0, 0, i*constants.DaysPerWeek)
		end := start.AddDate(0, 0, 6)
		weeks = append(weeks, models.WeekWindow{
			Index:     i,
			StartDate: start,
			Label:     locale.WeekRangeLabel(loc, start, end),
		})
	}
	return weeks
}

// GenerateDaysOfWeek produces the seven day slots for the week starting at
// weekStart, ordered Monday through Sunday. Saturday and Sunday are flagged
// as weekend and are never selectable. Availability counts start unknown;
// the caller fills them in from backend data.
func GenerateDaysOfWeek(weekStart time.Time, loc string) []models.DaySlot {
	days := make([]models.DaySlot, 0, constants.DaysPerWeek)
	for i := 0; i < constants.DaysPerWeek; i++ {
		d := weekStart.AddDate(0, 0, i)
		wd := d.Weekday()
		days = append(days, models.DaySlot{
			Date:      d.Format(constants.DateFormat),
			DayName:   locale.DayName(loc, wd),
			DayNumber: d.Day(),
			IsWeekend: wd == time.Saturday || wd == time.Sunday,
		})
	}
	return days
}

// datetime layouts accepted from the availability endpoint, tried in order.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// NormalizeSlots converts raw availability records into time slots. The
// HH:MM time is derived from the ISO datetime field when present, falling
// back to the legacy time field. Records carrying neither, or values that
// do not parse, are dropped rather than surfaced as errors.
func NormalizeSlots(raw []models.RawSlot) []models.TimeSlot {
	slots := make([]models.TimeSlot, 0, len(raw))
	for _, r := range raw {
		hhmm, ok := slotTime(r)
		if !ok {
			continue
		}
		slots = append(slots, models.TimeSlot{
			Time:      hhmm,
			Period:    PeriodFor(hhmm),
			Available: r.Available,
		})
	}
	return slots
}

func slotTime(r models.RawSlot) (string, bool) {
	if r.Datetime != "" {
		for _, layout := range datetimeLayouts {
			if t, err := time.Parse(layout, r.Datetime); err == nil {
				return t.Format(constants.TimeFormat), true
			}
		}
		return "", false
	}
	if r.Time != "" {
		if t, err := time.Parse(constants.TimeFormat, r.Time); err == nil {
			return t.Format(constants.TimeFormat), true
		}
		return "", false
	}
	return "", false
}

// PeriodFor buckets an HH:MM time into morning (before noon) or afternoon.
func PeriodFor(hhmm string) models.Period {
	t, err := time.Parse(constants.TimeFormat, hhmm)
	if err == nil && t.Hour() < 12 {
		return models.PeriodMorning
	}
	return models.PeriodAfternoon
}

// Partition splits slots into the morning and afternoon display groups,
// preserving order within each group.
func Partition(slots []models.TimeSlot) (morning, afternoon []models.TimeSlot) {
	for _, s := range slots {
		if s.Period == models.PeriodMorning {
			morning = append(morning, s)
		} else {
			afternoon = append(afternoon, s)
		}
	}
	return morning, afternoon
}

// fallbackTimes is the degraded-mode default shown when the backend cannot
// be reached. It masks outages instead of failing the UI; callers mark the
// result so the degraded state stays visible.
var fallbackTimes = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}

// FallbackSlots returns the static six-slot list, all marked available.
func FallbackSlots() []models.TimeSlot {
	slots := make([]models.TimeSlot, 0, len(fallbackTimes))
	for _, hhmm := range fallbackTimes {
		slots = append(slots, models.TimeSlot{
			Time:      hhmm,
			Period:    PeriodFor(hhmm),
			Available: true,
		})
	}
	return slots
}

// CountAvailable returns the number of open slots in the list.
func CountAvailable(slots []models.TimeSlot) int {
	n := 0
	for _, s := range slots {
		if s.Available {
			n++
		}
	}
	return n
}
