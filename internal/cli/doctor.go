package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/studiocentos/bookctl/internal/keyring"
	"github.com/studiocentos/bookctl/internal/locale"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: local storage reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Local storage: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Local storage: OK (%s)\n", ctx.Store.GetConfigPath())
	}

	// Check 2: configuration sane
	if err := checkConfig(ctx); err != nil {
		fmt.Printf("❌ Configuration: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Configuration: OK\n")
	}

	// Check 3: backend reachable
	if err := checkBackend(ctx); err != nil {
		fmt.Printf("❌ Backend reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Backend reachable: OK (%s)\n", ctx.Config.BackendURL)
	}

	// Check 4: keyring (warning only, anonymous booking still works)
	if !keyring.IsAvailable() {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   Keyring unavailable; API token cannot be stored\n")
	} else {
		fmt.Printf("✓ OS keyring: OK\n")
	}

	// Check 5: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ System clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ System clock: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkConfig(ctx *Context) error {
	if !locale.Supported(ctx.Config.Locale) {
		return fmt.Errorf("unsupported locale %q", ctx.Config.Locale)
	}
	if _, err := time.LoadLocation(ctx.Config.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", ctx.Config.Timezone, err)
	}
	return nil
}

func checkBackend(ctx *Context) error {
	reqCtx, cancel := context.WithTimeout(context.Background(), ctx.Config.Timeout)
	defer cancel()
	if err := ctx.Client.Ping(reqCtx); err != nil {
		return fmt.Errorf("availability endpoint not responding: %w", err)
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
