package cli

import (
	"fmt"

	"github.com/studiocentos/bookctl/internal/constants"
)

type HistoryCmd struct {
	Limit int `short:"l" help:"Maximum number of bookings to show." default:"20"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	limit := c.Limit
	if limit < 1 {
		limit = constants.DefaultHistoryLimit
	}

	bookings, err := ctx.Store.GetRecentBookings(limit)
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		fmt.Println("No bookings recorded yet.")
		return nil
	}

	fmt.Printf("%-12s %-7s %-24s %s\n", "DATE", "TIME", "NAME", "BOOKED")
	for _, b := range bookings {
		fmt.Printf("%-12s %-7s %-24s %s\n", b.Date, b.Time, b.Name, b.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
