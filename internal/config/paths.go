package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigDirectory returns the per-user configuration directory.
//   - Windows: %APPDATA%\MyDMAM
//   - Unix: ~/.config/mydmam
func ConfigDirectory() (string, error) {
	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", errors.New("neither APPDATA nor USERPROFILE environment variable set")
			}
			appData = filepath.Join(userProfile, "AppData", "Roaming")
		}
		return filepath.Join(appData, "MyDMAM"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "mydmam"), nil
}

// DefaultConfigPath returns the default path of browser.conf.
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "browser.conf"), nil
}

// DefaultPreferencesPath returns the default path of preferences.conf.
func DefaultPreferencesPath() (string, error) {
	dir, err := ConfigDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "preferences.conf"), nil
}
