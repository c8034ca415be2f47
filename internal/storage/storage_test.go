package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

// providers runs the conformance suite against every Provider backend.
func providers(t *testing.T) map[string]Provider {
	t.Helper()

	sqlite := NewSQLiteStore(filepath.Join(t.TempDir(), "bookctl.db"))
	if err := sqlite.Init(); err != nil {
		t.Fatalf("sqlite Init failed: %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Provider{
		"sqlite": sqlite,
		"memory": NewMemoryStore(),
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			want := Settings{Locale: "es", Timezone: "Europe/Madrid", BackendURL: "http://localhost:8000"}
			if err := store.SaveSettings(want); err != nil {
				t.Fatalf("SaveSettings failed: %v", err)
			}

			got, err := store.GetSettings()
			if err != nil {
				t.Fatalf("GetSettings failed: %v", err)
			}
			if got != want {
				t.Errorf("settings = %+v, want %+v", got, want)
			}
		})
	}
}

func TestFlags(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := store.GetFlag("tour_booking_done"); !errors.Is(err, ErrNotFound) {
				t.Errorf("GetFlag on missing key = %v, want ErrNotFound", err)
			}

			if err := store.SetFlag("tour_booking_done", true); err != nil {
				t.Fatalf("SetFlag failed: %v", err)
			}
			value, err := store.GetFlag("tour_booking_done")
			if err != nil || !value {
				t.Errorf("GetFlag = %v, %v, want true, nil", value, err)
			}

			if err := store.SetFlag("tour_booking_done", false); err != nil {
				t.Fatalf("SetFlag overwrite failed: %v", err)
			}
			value, _ = store.GetFlag("tour_booking_done")
			if value {
				t.Error("flag not overwritten to false")
			}

			if err := store.DeleteFlag("tour_booking_done"); err != nil {
				t.Fatalf("DeleteFlag failed: %v", err)
			}
			if _, err := store.GetFlag("tour_booking_done"); !errors.Is(err, ErrNotFound) {
				t.Errorf("GetFlag after delete = %v, want ErrNotFound", err)
			}
			if err := store.DeleteFlag("tour_booking_done"); !errors.Is(err, ErrNotFound) {
				t.Errorf("DeleteFlag on missing key = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestBookingLog(t *testing.T) {
	base := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 3; i++ {
				record := BookingRecord{
					ID:        string(rune('a' + i)),
					Date:      "2024-03-04",
					Time:      "10:00",
					Name:      "Mario Rossi",
					Email:     "mario@example.com",
					CreatedAt: base.Add(time.Duration(i) * time.Hour),
				}
				if err := store.AddBooking(record); err != nil {
					t.Fatalf("AddBooking failed: %v", err)
				}
			}

			recent, err := store.GetRecentBookings(2)
			if err != nil {
				t.Fatalf("GetRecentBookings failed: %v", err)
			}
			if len(recent) != 2 {
				t.Fatalf("got %d bookings, want 2", len(recent))
			}
			if recent[0].ID != "c" || recent[1].ID != "b" {
				t.Errorf("order = %s,%s, want newest first (c,b)", recent[0].ID, recent[1].ID)
			}
		})
	}
}

func TestSQLiteInitSeedsDefaults(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "bookctl.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.Locale != "it" || settings.Timezone != "Europe/Rome" {
		t.Errorf("default settings = %+v, want it / Europe/Rome", settings)
	}
}

func TestSQLiteLoadWithoutInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Load on uninitialized store should fail")
	}
}
