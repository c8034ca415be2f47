package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studiocentos/bookctl/internal/models"
	"github.com/studiocentos/bookctl/internal/storage"
	"github.com/studiocentos/bookctl/internal/validation"
)

type BookCmd struct {
	Date  string `arg:"" help:"Booking day (YYYY-MM-DD)."`
	Time  string `arg:"" help:"Slot start time (HH:MM)."`
	Name  string `short:"n" help:"Client name." required:""`
	Email string `short:"e" help:"Client email." required:""`
	Phone string `short:"p" help:"Client phone (optional)."`
}

func (c *BookCmd) Run(ctx *Context) error {
	if _, err := parseDay(c.Date); err != nil {
		return err
	}

	draft := models.BookingDraft{
		Date:  c.Date,
		Time:  c.Time,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
	if issues := validation.ValidateDraft(draft); len(issues) > 0 {
		for _, issue := range issues {
			fmt.Printf("  %s: %s\n", issue.Field, issue.Message)
		}
		return fmt.Errorf("booking request is invalid")
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), ctx.Config.Timeout)
	defer cancel()

	booking, err := ctx.Client.SubmitBooking(reqCtx, draft)
	if err != nil {
		return err
	}

	if err := ctx.Store.Load(); err == nil {
		record := storage.BookingRecord{
			ID:        booking.ID,
			Date:      draft.Date,
			Time:      draft.Time,
			Name:      draft.Name,
			Email:     draft.Email,
			CreatedAt: time.Now(),
		}
		if record.ID == "" {
			record.ID = uuid.New().String()
		}
		if err := ctx.Store.AddBooking(record); err != nil {
			fmt.Printf("Warning: booking confirmed but not recorded locally: %v\n", err)
		}
	}

	fmt.Printf("Booking confirmed: %s at %s", c.Date, c.Time)
	if booking.ID != "" {
		fmt.Printf(" (ID: %s)", booking.ID)
	}
	fmt.Println()
	return nil
}
