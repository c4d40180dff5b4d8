// Package config provides configuration management for the MyDMAM browser.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gopkg.in/ini.v1"

	"github.com/mexm/mydmam-browser/internal/constants"
)

// Config is the browser configuration.
//
// Config file location:
//   - Windows: %APPDATA%\MyDMAM\browser.conf
//   - Unix: ~/.config/mydmam/browser.conf
//
// INI format:
//
//	[server]
//	api_url = http://localhost:8080/api/v1
//	request_timeout_seconds = 10
//	search_cache_seconds = 30
//
//	[proxy]
//	mode = no-proxy
//	host =
//	port = 8080
//	user =
//	no_proxy =
//	warmup = false
//
//	[navigator]
//	max_page_buttons = 10
type Config struct {
	// API settings
	APIBaseURL     string
	RequestTimeout time.Duration
	SearchCacheTTL time.Duration

	// Proxy settings
	ProxyMode     string // "no-proxy", "system", "basic", "ntlm"
	ProxyHost     string
	ProxyPort     int
	ProxyUser     string
	ProxyPassword string // never written to disk
	NoProxy       string // Comma-separated list of hosts to bypass proxy
	ProxyWarmup   bool

	// Navigator
	MaxPageButtons int
}

// Config validation errors
var (
	ErrMissingAPIURL         = errors.New("api_url is required")
	ErrInvalidAPIURL         = errors.New("api_url must be an absolute http(s) URL")
	ErrInvalidPageButtons    = errors.New("max_page_buttons must be a positive even number")
	ErrInvalidProxyMode      = errors.New("proxy mode must be one of no-proxy, system, basic, ntlm")
	ErrInvalidRequestTimeout = errors.New("request_timeout_seconds must be positive")
)

// Default returns a Config holding the built-in defaults.
func Default() *Config {
	return &Config{
		APIBaseURL:     constants.DefaultAPIBaseURL,
		RequestTimeout: constants.DefaultRequestTimeout,
		SearchCacheTTL: constants.DefaultSearchCacheTTL,
		ProxyMode:      "no-proxy",
		ProxyPort:      constants.DefaultProxyPort,
		MaxPageButtons: constants.DefaultMaxPageButtons,
	}
}

// Load reads the configuration file at path (default path when empty).
// A missing file yields the defaults and no error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	iniFile, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filepath.Base(path), err)
	}

	server := iniFile.Section("server")
	cfg.APIBaseURL = server.Key("api_url").MustString(constants.DefaultAPIBaseURL)
	cfg.RequestTimeout = time.Duration(server.Key("request_timeout_seconds").MustInt(int(constants.DefaultRequestTimeout/time.Second))) * time.Second
	cfg.SearchCacheTTL = time.Duration(server.Key("search_cache_seconds").MustInt(int(constants.DefaultSearchCacheTTL/time.Second))) * time.Second

	proxy := iniFile.Section("proxy")
	cfg.ProxyMode = proxy.Key("mode").MustString("no-proxy")
	cfg.ProxyHost = proxy.Key("host").String()
	cfg.ProxyPort = proxy.Key("port").MustInt(constants.DefaultProxyPort)
	cfg.ProxyUser = proxy.Key("user").String()
	cfg.NoProxy = proxy.Key("no_proxy").String()
	cfg.ProxyWarmup = proxy.Key("warmup").MustBool(false)

	nav := iniFile.Section("navigator")
	cfg.MaxPageButtons = nav.Key("max_page_buttons").MustInt(constants.DefaultMaxPageButtons)

	return cfg, nil
}

// Save writes cfg to path (default path when empty). The proxy password is
// not persisted.
func Save(cfg *Config, path string) error {
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to determine config path: %w", err)
		}
	}

	iniFile := ini.Empty()

	server, err := iniFile.NewSection("server")
	if err != nil {
		return fmt.Errorf("failed to create server section: %w", err)
	}
	server.Key("api_url").SetValue(cfg.APIBaseURL)
	server.Key("request_timeout_seconds").SetValue(fmt.Sprintf("%d", int(cfg.RequestTimeout/time.Second)))
	server.Key("search_cache_seconds").SetValue(fmt.Sprintf("%d", int(cfg.SearchCacheTTL/time.Second)))

	proxy, err := iniFile.NewSection("proxy")
	if err != nil {
		return fmt.Errorf("failed to create proxy section: %w", err)
	}
	proxy.Key("mode").SetValue(cfg.ProxyMode)
	proxy.Key("host").SetValue(cfg.ProxyHost)
	proxy.Key("port").SetValue(fmt.Sprintf("%d", cfg.ProxyPort))
	proxy.Key("user").SetValue(cfg.ProxyUser)
	proxy.Key("no_proxy").SetValue(cfg.NoProxy)
	proxy.Key("warmup").SetValue(fmt.Sprintf("%t", cfg.ProxyWarmup))

	nav, err := iniFile.NewSection("navigator")
	if err != nil {
		return fmt.Errorf("failed to create navigator section: %w", err)
	}
	nav.Key("max_page_buttons").SetValue(fmt.Sprintf("%d", cfg.MaxPageButtons))

	return writeAtomic(iniFile, path)
}

// writeAtomic saves through a temporary file and a rename, owner-only.
func writeAtomic(iniFile *ini.File, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := iniFile.SaveTo(tmpPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if runtime.GOOS != "windows" {
		if err := os.Chmod(tmpPath, 0600); err != nil {
			os.Remove(tmpPath)
			return fmt.Errorf("failed to set config permissions: %w", err)
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// MergeWithFlags applies environment variables then flags on top of the
// loaded values. Priority: flags > environment > config file > defaults.
func (c *Config) MergeWithFlags(apiBaseURL, proxyMode string) {
	if env := os.Getenv("MYDMAM_API_URL"); env != "" {
		c.APIBaseURL = env
	}
	if env := os.Getenv("MYDMAM_PROXY_PASSWORD"); env != "" {
		c.ProxyPassword = env
	}

	if apiBaseURL != "" {
		c.APIBaseURL = apiBaseURL
	}
	if proxyMode != "" {
		c.ProxyMode = proxyMode
	}
	c.APIBaseURL = strings.TrimSuffix(strings.TrimSpace(c.APIBaseURL), "/")
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return ErrMissingAPIURL
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidAPIURL
	}
	if c.MaxPageButtons <= 0 || c.MaxPageButtons%2 != 0 {
		return ErrInvalidPageButtons
	}
	if c.RequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}
	switch strings.ToLower(c.ProxyMode) {
	case "", "no-proxy", "system", "basic", "ntlm":
	default:
		return ErrInvalidProxyMode
	}
	return nil
}
