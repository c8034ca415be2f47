package cli

import (
	"errors"
	"fmt"

	"github.com/studiocentos/bookctl/internal/keyring"
)

type TokenSetCmd struct {
	Token string `arg:"" help:"Booking backend API token."`
}

func (c *TokenSetCmd) Run(ctx *Context) error {
	if err := keyring.SetToken(c.Token); err != nil {
		return err
	}
	fmt.Println("API token stored in the OS keyring.")
	return nil
}

type TokenDeleteCmd struct{}

func (c *TokenDeleteCmd) Run(ctx *Context) error {
	if err := keyring.DeleteToken(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No API token stored.")
			return nil
		}
		return err
	}
	fmt.Println("API token removed from the OS keyring.")
	return nil
}
