package storage

import (
	"sort"
	"sync"
)

// MemoryStore is an in-memory Provider used in tests and as a stand-in
// when no persistence is wanted.
type MemoryStore struct {
	mu       sync.RWMutex
	settings Settings
	flags    map[string]bool
	bookings []BookingRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{flags: make(map[string]bool)}
}

func (m *MemoryStore) Init() error  { return nil }
func (m *MemoryStore) Load() error  { return nil }
func (m *MemoryStore) Close() error { return nil }

func (m *MemoryStore) GetSettings() (Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings, nil
}

func (m *MemoryStore) SaveSettings(s Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = s
	return nil
}

func (m *MemoryStore) GetFlag(key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.flags[key]
	if !ok {
		return false, ErrNotFound
	}
	return value, nil
}

func (m *MemoryStore) SetFlag(key string, value bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[key] = value
	return nil
}

func (m *MemoryStore) DeleteFlag(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.flags[key]; !ok {
		return ErrNotFound
	}
	delete(m.flags, key)
	return nil
}

func (m *MemoryStore) AddBooking(b BookingRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings = append(m.bookings, b)
	return nil
}

func (m *MemoryStore) GetRecentBookings(limit int) ([]BookingRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]BookingRecord, len(m.bookings))
	copy(out, m.bookings)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryStore) GetConfigPath() string { return ":memory:" }
