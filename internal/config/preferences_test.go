package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mexm/mydmam-browser/internal/display"
	"github.com/mexm/mydmam-browser/internal/prefs"
)

func TestPreferencesDefaults(t *testing.T) {
	p, err := OpenPreferences(filepath.Join(t.TempDir(), "preferences.conf"))
	if err != nil {
		t.Fatalf("OpenPreferences() error = %v", err)
	}

	if got := p.DisplayMode(); got != display.Simplified {
		t.Errorf("DisplayMode() = %v, want %v", got, display.Simplified)
	}
	if got := p.PageSize(); got != 20 {
		t.Errorf("PageSize() = %d, want 20", got)
	}
	if _, err := p.SelectedRealm(); !errors.Is(err, prefs.ErrNotSet) {
		t.Errorf("SelectedRealm() error = %v, want ErrNotSet", err)
	}
}

func TestPreferencesPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.conf")

	p, err := OpenPreferences(path)
	if err != nil {
		t.Fatalf("OpenPreferences() error = %v", err)
	}
	realm := "media"
	if err := p.SetSelectedRealm(&realm); err != nil {
		t.Fatalf("SetSelectedRealm() error = %v", err)
	}
	if err := p.SetPageSize(-50); err != nil {
		t.Fatalf("SetPageSize() error = %v", err)
	}
	if err := p.SetDisplayMode(display.FullDateTime); err != nil {
		t.Fatalf("SetDisplayMode() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(raw), "page_size") {
		t.Errorf("preferences file = %q, want page_size key", raw)
	}

	reopened, err := OpenPreferences(path)
	if err != nil {
		t.Fatalf("OpenPreferences() error = %v", err)
	}
	if got, _ := reopened.SelectedRealm(); got != "media" {
		t.Errorf("SelectedRealm() = %q, want %q", got, "media")
	}
	if got := reopened.PageSize(); got != 50 {
		t.Errorf("PageSize() = %d, want 50", got)
	}
	if got := reopened.DisplayMode(); got != display.FullDateTime {
		t.Errorf("DisplayMode() = %v, want %v", got, display.FullDateTime)
	}
}

func TestPreferencesForgetRealm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.conf")
	p, _ := OpenPreferences(path)

	realm := "media"
	_ = p.SetSelectedRealm(&realm)
	if err := p.SetSelectedRealm(nil); err != nil {
		t.Fatalf("SetSelectedRealm(nil) error = %v", err)
	}

	reopened, _ := OpenPreferences(path)
	if _, err := reopened.SelectedRealm(); !errors.Is(err, prefs.ErrNotSet) {
		t.Errorf("SelectedRealm() error = %v, want ErrNotSet", err)
	}
}

func TestPreferencesCycleDisplayMode(t *testing.T) {
	p, _ := OpenPreferences(filepath.Join(t.TempDir(), "preferences.conf"))

	got, err := prefs.CycleDisplayMode(p)
	if err != nil {
		t.Fatalf("CycleDisplayMode() error = %v", err)
	}
	if got != display.Relative {
		t.Errorf("CycleDisplayMode() = %v, want %v", got, display.Relative)
	}
}

func TestPreferencesIgnoreOutOfRangeMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.conf")
	if err := os.WriteFile(path, []byte("[display]\ndate_style = 9\n"), 0600); err != nil {
		t.Fatal(err)
	}

	p, err := OpenPreferences(path)
	if err != nil {
		t.Fatalf("OpenPreferences() error = %v", err)
	}
	if got := p.DisplayMode(); got != display.Simplified {
		t.Errorf("DisplayMode() = %v, want %v", got, display.Simplified)
	}
}
