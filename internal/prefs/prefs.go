// Package prefs defines the persisted user preferences consumed by the
// navigator and the search session.
package prefs

import (
	"errors"
	"sync"

	"github.com/mexm/mydmam-browser/internal/constants"
	"github.com/mexm/mydmam-browser/internal/display"
)

// ErrNotSet is returned by SelectedRealm when no realm was chosen.
var ErrNotSet = errors.New("no realm set")

// Store is a key-value preference store. Setters persist immediately.
type Store interface {
	DisplayMode() display.Mode
	SetDisplayMode(display.Mode) error
	PageSize() int
	SetPageSize(int) error
	SelectedRealm() (string, error)
	// SetSelectedRealm with nil forgets the realm.
	SetSelectedRealm(*string) error
}

// NormalizePageSize applies the stored-value rules: the absolute value is
// kept and zero falls back to the default.
func NormalizePageSize(n int) int {
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return constants.DefaultPageSize
	}
	return n
}

// RealmOrEmpty returns the selected realm, or "" when none is set.
func RealmOrEmpty(s Store) string {
	realm, err := s.SelectedRealm()
	if err != nil {
		return ""
	}
	return realm
}

// CycleDisplayMode advances and persists the display mode.
func CycleDisplayMode(s Store) (display.Mode, error) {
	next := s.DisplayMode().Next()
	return next, s.SetDisplayMode(next)
}

// MemoryStore keeps preferences in memory. Safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	mode     display.Mode
	pageSize int
	realm    *string
}

// NewMemoryStore returns a store holding the defaults.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{mode: display.Simplified, pageSize: constants.DefaultPageSize}
}

func (m *MemoryStore) DisplayMode() display.Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mode
}

func (m *MemoryStore) SetDisplayMode(mode display.Mode) error {
	if !mode.Valid() {
		mode = display.Simplified
	}
	m.mu.Lock()
	m.mode = mode
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) PageSize() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return NormalizePageSize(m.pageSize)
}

func (m *MemoryStore) SetPageSize(n int) error {
	m.mu.Lock()
	m.pageSize = NormalizePageSize(n)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) SelectedRealm() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.realm == nil {
		return "", ErrNotSet
	}
	return *m.realm, nil
}

func (m *MemoryStore) SetSelectedRealm(realm *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if realm == nil {
		m.realm = nil
		return nil
	}
	r := *realm
	m.realm = &r
	return nil
}
