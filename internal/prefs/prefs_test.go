package prefs

import (
	"errors"
	"testing"

	"github.com/mexm/mydmam-browser/internal/display"
)

func TestMemoryStoreDefaults(t *testing.T) {
	s := NewMemoryStore()

	if got := s.DisplayMode(); got != display.Simplified {
		t.Errorf("DisplayMode() = %v, want Simplified", got)
	}
	if got := s.PageSize(); got != 20 {
		t.Errorf("PageSize() = %d, want 20", got)
	}
	if _, err := s.SelectedRealm(); !errors.Is(err, ErrNotSet) {
		t.Errorf("SelectedRealm() error = %v, want ErrNotSet", err)
	}
	if got := RealmOrEmpty(s); got != "" {
		t.Errorf("RealmOrEmpty() = %q, want empty", got)
	}
}

func TestMemoryStorePageSizeIsAbsolute(t *testing.T) {
	tests := []struct {
		set, want int
	}{
		{-50, 50},
		{0, 20},
		{35, 35},
	}

	s := NewMemoryStore()
	for _, tt := range tests {
		if err := s.SetPageSize(tt.set); err != nil {
			t.Fatalf("SetPageSize(%d) error = %v", tt.set, err)
		}
		if got := s.PageSize(); got != tt.want {
			t.Errorf("after SetPageSize(%d): PageSize() = %d, want %d", tt.set, got, tt.want)
		}
	}
}

func TestMemoryStoreRealm(t *testing.T) {
	s := NewMemoryStore()
	realm := "media"

	if err := s.SetSelectedRealm(&realm); err != nil {
		t.Fatalf("SetSelectedRealm() error = %v", err)
	}
	realm = "changed after set"
	got, err := s.SelectedRealm()
	if err != nil {
		t.Fatalf("SelectedRealm() error = %v", err)
	}
	if got != "media" {
		t.Errorf("SelectedRealm() = %q, want %q", got, "media")
	}

	if err := s.SetSelectedRealm(nil); err != nil {
		t.Fatalf("SetSelectedRealm(nil) error = %v", err)
	}
	if _, err := s.SelectedRealm(); !errors.Is(err, ErrNotSet) {
		t.Errorf("SelectedRealm() after clear error = %v, want ErrNotSet", err)
	}
}

func TestCycleDisplayMode(t *testing.T) {
	s := NewMemoryStore()

	for _, want := range []display.Mode{display.Relative, display.FullDateTime, display.Simplified} {
		got, err := CycleDisplayMode(s)
		if err != nil {
			t.Fatalf("CycleDisplayMode() error = %v", err)
		}
		if got != want || s.DisplayMode() != want {
			t.Errorf("CycleDisplayMode() = %v, stored %v; want %v", got, s.DisplayMode(), want)
		}
	}
}

func TestSetInvalidDisplayModeFallsBack(t *testing.T) {
	s := NewMemoryStore()

	if err := s.SetDisplayMode(display.Mode(9)); err != nil {
		t.Fatalf("SetDisplayMode() error = %v", err)
	}
	if got := s.DisplayMode(); got != display.Simplified {
		t.Errorf("DisplayMode() = %v, want Simplified", got)
	}
}
