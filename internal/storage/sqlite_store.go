package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/studiocentos/bookctl/internal/constants"
)

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS flags (
	key   TEXT PRIMARY KEY,
	value INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS bookings (
	id         TEXT PRIMARY KEY,
	date       TEXT NOT NULL,
	time       TEXT NOT NULL,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed default settings on first init.
	settings, err := s.GetSettings()
	if err != nil || settings.Locale == "" {
		defaults := Settings{
			Locale:   constants.DefaultLocale,
			Timezone: constants.DefaultTimezone,
		}
		if err := s.SaveSettings(defaults); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return Settings{}, err
	}
	defer rows.Close()

	var settings Settings
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, err
		}
		switch key {
		case "locale":
			settings.Locale = value
		case "timezone":
			settings.Timezone = value
		case "backend_url":
			settings.BackendURL = value
		}
	}
	return settings, rows.Err()
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	pairs := map[string]string{
		"locale":      settings.Locale,
		"timezone":    settings.Timezone,
		"backend_url": settings.BackendURL,
	}
	for key, value := range pairs {
		_, err := s.db.Exec(
			`INSERT INTO settings (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value,
		)
		if err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}
	return nil
}

func (s *SQLiteStore) GetFlag(key string) (bool, error) {
	var value int
	err := s.db.QueryRow(`SELECT value FROM flags WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return false, ErrNotFound
	}
	if err != nil {
		return false, err
	}
	return value != 0, nil
}

func (s *SQLiteStore) SetFlag(key string, value bool) error {
	v := 0
	if value {
		v = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO flags (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, v,
	)
	return err
}

func (s *SQLiteStore) DeleteFlag(key string) error {
	res, err := s.db.Exec(`DELETE FROM flags WHERE key = ?`, key)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) AddBooking(b BookingRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO bookings (id, date, time, name, email, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		b.ID, b.Date, b.Time, b.Name, b.Email, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record booking: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetRecentBookings(limit int) ([]BookingRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, date, time, name, email, created_at FROM bookings
		 ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []BookingRecord
	for rows.Next() {
		var b BookingRecord
		if err := rows.Scan(&b.ID, &b.Date, &b.Time, &b.Name, &b.Email, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
