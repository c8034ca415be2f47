package cli

import (
	"fmt"
	"net/url"
	"time"

	"github.com/studiocentos/bookctl/internal/locale"
)

type SettingsGetCmd struct{}

func (c *SettingsGetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("locale:      %s\n", settings.Locale)
	fmt.Printf("timezone:    %s\n", settings.Timezone)
	if settings.BackendURL != "" {
		fmt.Printf("backend_url: %s\n", settings.BackendURL)
	} else {
		fmt.Printf("backend_url: %s (from config)\n", ctx.Config.BackendURL)
	}
	return nil
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting key (locale|timezone|backend_url)."`
	Value string `arg:"" help:"New value."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	switch c.Key {
	case "locale":
		if !locale.Supported(c.Value) {
			return fmt.Errorf("unsupported locale %q (supported: it, en, es)", c.Value)
		}
		settings.Locale = c.Value
	case "timezone":
		if _, err := time.LoadLocation(c.Value); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", c.Value, err)
		}
		settings.Timezone = c.Value
	case "backend_url":
		u, err := url.Parse(c.Value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid backend URL %q", c.Value)
		}
		settings.BackendURL = c.Value
	default:
		return fmt.Errorf("unknown setting %q (expected locale, timezone or backend_url)", c.Key)
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Printf("Set %s = %s\n", c.Key, c.Value)
	return nil
}
