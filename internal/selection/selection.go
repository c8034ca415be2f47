// Package selection models the day/time selection of the booking widget as
// a single state machine value instead of two independently updated fields.
// Day and time are coupled: choosing a new day invalidates any previously
// chosen time, and deselecting the day drops both.
package selection

import "github.com/studiocentos/bookctl/internal/models"

// State identifies the current phase of the selection.
type State int

const (
	// StateNone means nothing is selected. Initial state, and the state
	// reached after a successful submission.
	StateNone State = iota
	// StateDay means a day is selected but no time yet.
	StateDay
	// StateFull means both a day and a time are selected.
	StateFull
)

// Selection is an immutable selection value. The zero value is StateNone.
// Selection is keyed by absolute date, so paging weeks away and back
// preserves it as long as its date reappears in view.
type Selection struct {
	state State
	date  string
	time  string
}

func None() Selection { return Selection{} }

func (s Selection) State() State { return s.state }
func (s Selection) Date() string { return s.date }
func (s Selection) Time() string { return s.time }

// HasDay reports whether a day is currently selected.
func (s Selection) HasDay() bool { return s.state != StateNone }

// IsDay reports whether the given ISO date is the selected day.
func (s Selection) IsDay(date string) bool {
	return s.state != StateNone && s.date == date
}

// SelectDay applies a day click. Weekend days are not selectable and leave
// the selection unchanged. Clicking the already-selected day toggles it
// off, clearing any chosen time with it. Any other day becomes the new
// selection with the time cleared.
func (s Selection) SelectDay(day models.DaySlot) Selection {
	if day.IsWeekend {
		return s
	}
	if s.IsDay(day.Date) {
		return Selection{}
	}
	return Selection{state: StateDay, date: day.Date}
}

// SelectTime sets the chosen time. It is a no-op when no day is selected.
func (s Selection) SelectTime(hhmm string) Selection {
	if s.state == StateNone {
		return s
	}
	return Selection{state: StateFull, date: s.date, time: hhmm}
}

// ClearTime drops the time choice but keeps the day.
func (s Selection) ClearTime() Selection {
	if s.state != StateFull {
		return s
	}
	return Selection{state: StateDay, date: s.date}
}

// Reset returns the empty selection.
func (s Selection) Reset() Selection { return Selection{} }
