// Package storage provides the local persistence abstraction for the
// client: user settings, one-shot flags (tour completion and the like),
// and a log of confirmed bookings. Widget code only ever sees the Provider
// interface so persistence can be swapped or faked in tests.
package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Settings are the user-tunable options persisted locally. Values here
// override the config file but are themselves overridden by environment
// variables.
type Settings struct {
	Locale     string
	Timezone   string
	BackendURL string
}

// BookingRecord is one confirmed booking kept in the local log.
type BookingRecord struct {
	ID        string
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
	Name      string
	Email     string
	CreatedAt time.Time
}

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Flags
	GetFlag(key string) (bool, error)
	SetFlag(key string, value bool) error
	DeleteFlag(key string) error

	// Booking log
	AddBooking(BookingRecord) error
	GetRecentBookings(limit int) ([]BookingRecord, error)

	// Utils
	GetConfigPath() string
}
