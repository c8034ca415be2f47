package cli

import (
	"fmt"
	"time"

	"github.com/studiocentos/bookctl/internal/api"
	"github.com/studiocentos/bookctl/internal/config"
	"github.com/studiocentos/bookctl/internal/constants"
	"github.com/studiocentos/bookctl/internal/locale"
	"github.com/studiocentos/bookctl/internal/storage"
)

type Context struct {
	Config *config.Config
	Store  storage.Provider
	Client *api.Client
}

// parseDay validates a YYYY-MM-DD argument and rejects weekends, which are
// never bookable.
func parseDay(s string) (time.Time, error) {
	day, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return time.Time{}, fmt.Errorf("%s is a %s; bookings are weekdays only", s, wd)
	}
	return day, nil
}

// formatDay renders a date in the configured display locale, e.g.
// "lunedì 16 marzo 2026".
func formatDay(cfg *config.Config, day time.Time) string {
	return fmt.Sprintf("%s %d %s %d",
		locale.DayName(cfg.Locale, day.Weekday()),
		day.Day(),
		locale.MonthName(cfg.Locale, day.Month()),
		day.Year(),
	)
}
