package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"gopkg.in/ini.v1"

	"github.com/mexm/mydmam-browser/internal/display"
	"github.com/mexm/mydmam-browser/internal/prefs"
)

// PreferenceFile is a prefs.Store persisted as an INI file. Every setter
// rewrites the file.
//
//	[display]
//	date_style = 0
//
//	[navigator]
//	page_size = 20
//
//	[session]
//	realm = media
type PreferenceFile struct {
	path string
	file *ini.File
	mu   sync.Mutex
}

var _ prefs.Store = (*PreferenceFile)(nil)

// OpenPreferences loads the preference file at path (default path when
// empty). A missing file starts empty.
func OpenPreferences(path string) (*PreferenceFile, error) {
	if path == "" {
		var err error
		path, err = DefaultPreferencesPath()
		if err != nil {
			return nil, fmt.Errorf("failed to determine preferences path: %w", err)
		}
	}

	p := &PreferenceFile{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		p.file = ini.Empty()
		return p, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	p.file = f
	return p, nil
}

// Path returns the backing file.
func (p *PreferenceFile) Path() string {
	return p.path
}

func (p *PreferenceFile) DisplayMode() display.Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	mode := display.Mode(p.file.Section("display").Key("date_style").MustInt(int(display.Simplified)))
	if !mode.Valid() {
		return display.Simplified
	}
	return mode
}

func (p *PreferenceFile) SetDisplayMode(mode display.Mode) error {
	if !mode.Valid() {
		mode = display.Simplified
	}
	return p.set("display", "date_style", strconv.Itoa(int(mode)))
}

func (p *PreferenceFile) PageSize() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return prefs.NormalizePageSize(p.file.Section("navigator").Key("page_size").MustInt(0))
}

func (p *PreferenceFile) SetPageSize(n int) error {
	return p.set("navigator", "page_size", strconv.Itoa(prefs.NormalizePageSize(n)))
}

func (p *PreferenceFile) SelectedRealm() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	section := p.file.Section("session")
	if !section.HasKey("realm") {
		return "", prefs.ErrNotSet
	}
	return section.Key("realm").String(), nil
}

func (p *PreferenceFile) SetSelectedRealm(realm *string) error {
	if realm != nil {
		return p.set("session", "realm", *realm)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.file.Section("session").DeleteKey("realm")
	return writeAtomic(p.file, p.path)
}

func (p *PreferenceFile) set(section, key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.file.Section(section).Key(key).SetValue(value)
	return writeAtomic(p.file, p.path)
}
