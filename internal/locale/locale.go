// Package locale holds the day and month name tables compiled into the
// client for the supported display locales (it, en, es). Every
// date-displaying component goes through this package rather than keeping
// its own tables.
package locale

import (
	"fmt"
	"time"
)

const Fallback = "en"

// Supported reports whether loc is one of the compiled-in locales.
func Supported(loc string) bool {
	_, ok := dayNames[loc]
	return ok
}

// Normalize returns loc if supported, the fallback locale otherwise.
func Normalize(loc string) string {
	if Supported(loc) {
		return loc
	}
	return Fallback
}

// dayNames are indexed by time.Weekday (Sunday = 0).
var dayNames = map[string][7]string{
	"en": {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	"it": {"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato"},
	"es": {"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
}

// monthNames are indexed by time.Month - 1.
var monthNames = map[string][12]string{
	"en": {"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	"it": {"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
		"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre"},
	"es": {"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
}

// DayName returns the localized full weekday name.
func DayName(loc string, wd time.Weekday) string {
	return dayNames[Normalize(loc)][wd]
}

// ShortDayName returns the localized weekday name truncated for grid
// headers (three runes).
func ShortDayName(loc string, wd time.Weekday) string {
	name := []rune(DayName(loc, wd))
	if len(name) <= 3 {
		return string(name)
	}
	return string(name[:3])
}

// MonthName returns the localized month name.
func MonthName(loc string, m time.Month) string {
	return monthNames[Normalize(loc)][m-1]
}

// WeekRangeLabel renders a human-readable start/end range for a week.
// English puts the month first ("March 3 - 9"), Italian and Spanish put
// the day first ("3 - 9 marzo"). Ranges spanning two months name both.
func WeekRangeLabel(loc string, start, end time.Time) string {
	loc = Normalize(loc)
	sameMonth := start.Month() == end.Month() && start.Year() == end.Year()

	if loc == "en" {
		if sameMonth {
			return fmt.Sprintf("%s %d - %d", MonthName(loc, start.Month()), start.Day(), end.Day())
		}
		return fmt.Sprintf("%s %d - %s %d",
			MonthName(loc, start.Month()), start.Day(),
			MonthName(loc, end.Month()), end.Day())
	}

	if sameMonth {
		return fmt.Sprintf("%d - %d %s", start.Day(), end.Day(), MonthName(loc, start.Month()))
	}
	return fmt.Sprintf("%d %s - %d %s",
		start.Day(), MonthName(loc, start.Month()),
		end.Day(), MonthName(loc, end.Month()))
}
