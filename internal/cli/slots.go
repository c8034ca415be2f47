package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/studiocentos/bookctl/internal/api"
	"github.com/studiocentos/bookctl/internal/constants"
	"github.com/studiocentos/bookctl/internal/models"
	"github.com/studiocentos/bookctl/internal/schedule"
)

type SlotsCmd struct {
	Date string `arg:"" optional:"" help:"Day to inspect (YYYY-MM-DD). Defaults to the next bookable Monday."`
}

func (c *SlotsCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = schedule.NextMonday(time.Now()).Format(constants.DateFormat)
	}
	day, err := parseDay(date)
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), ctx.Config.Timeout)
	defer cancel()

	result, err := ctx.Client.FetchAvailability(reqCtx, date)
	if err != nil {
		return err
	}

	fmt.Printf("Availability for %s\n", formatDay(ctx.Config, day))
	if result.Source == api.SourceFallback {
		fmt.Println("(backend unreachable; showing the standard schedule)")
	}
	fmt.Println()

	printGroup("Morning", result.Morning)
	printGroup("Afternoon", result.Afternoon)

	open := 0
	for _, s := range result.Slots() {
		if s.Available {
			open++
		}
	}
	fmt.Printf("\n%d of %d slots open\n", open, len(result.Slots()))
	return nil
}

func printGroup(heading string, slots []models.TimeSlot) {
	if len(slots) == 0 {
		return
	}
	fmt.Printf("%s:\n", heading)
	for _, s := range slots {
		marker := "✓"
		if !s.Available {
			marker = "✗"
		}
		fmt.Printf("  %s %s\n", marker, s.Time)
	}
}
