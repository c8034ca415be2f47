package main

import (
	"errors"

	"github.com/alecthomas/kong"

	"github.com/studiocentos/bookctl/internal/api"
	"github.com/studiocentos/bookctl/internal/cli"
	"github.com/studiocentos/bookctl/internal/config"
	"github.com/studiocentos/bookctl/internal/constants"
	apperrors "github.com/studiocentos/bookctl/internal/errors"
	"github.com/studiocentos/bookctl/internal/keyring"
	"github.com/studiocentos/bookctl/internal/logger"
	"github.com/studiocentos/bookctl/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/bookctl/config.yaml"`
	Db      string `help:"Local storage path." type:"path" default:"~/.config/bookctl/bookctl.db"`

	Init    cli.InitCmd    `cmd:"" help:"Initialize bookctl storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive booking widget." default:"1"`
	Slots   cli.SlotsCmd   `cmd:"" help:"Show slot availability for a day."`
	Book    cli.BookCmd    `cmd:"" help:"Book a consultation slot."`
	History cli.HistoryCmd `cmd:"" help:"Show recently confirmed bookings."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run health checks."`
	Settings struct {
		Get cli.SettingsGetCmd `cmd:"" help:"Show stored settings."`
		Set cli.SettingsSetCmd `cmd:"" help:"Change a stored setting."`
	} `cmd:"" help:"Manage stored settings."`
	Token struct {
		Set    cli.TokenSetCmd    `cmd:"" help:"Store the backend API token."`
		Delete cli.TokenDeleteCmd `cmd:"" help:"Remove the stored API token."`
	} `cmd:"" help:"Manage the backend API token."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Terminal client for booking consultations"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		apperrors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: config.DefaultDir()}); err != nil {
		apperrors.Fatalf("failed to set up logging: %v", err)
	}

	var store storage.Provider
	if CLI.Db == ":memory:" {
		store = storage.NewMemoryStore()
	} else {
		store = storage.NewSQLiteStore(CLI.Db)
	}

	// Stored settings sit between the config file and the environment.
	if loadErr := store.Load(); loadErr == nil {
		if settings, err := store.GetSettings(); err == nil {
			if err := cfg.ApplyOverrides(settings.Locale, settings.Timezone, settings.BackendURL); err != nil {
				apperrors.Fatal(err)
			}
		}
	}

	token, err := keyring.GetToken()
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		logger.Debug("keyring unavailable, proceeding without token", "error", err)
	}

	appCtx := &cli.Context{
		Config: cfg,
		Store:  store,
		Client: api.New(cfg.BackendURL, token, cfg.Timezone, cfg.Timeout),
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
