package http

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/mexm/mydmam-browser/internal/config"
	"github.com/mexm/mydmam-browser/internal/logging"
)

// TestProxyFuncWithBypass_EmptyNoProxy verifies that an empty noProxy always routes through proxy.
func TestProxyFuncWithBypass_EmptyNoProxy(t *testing.T) {
	proxyURL, _ := url.Parse("http://proxy.corp:8080")
	proxyFunc := proxyFuncWithBypass(proxyURL, "", logging.Nop())

	req, _ := http.NewRequest("GET", "https://api.example.com/data", nil)
	result, err := proxyFunc(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("expected proxy URL, got nil (direct)")
	}
	if result.Host != "proxy.corp:8080" {
		t.Errorf("expected proxy host proxy.corp:8080, got %s", result.Host)
	}
}

// TestProxyFuncWithBypass_WildcardDomain verifies *.example.com bypasses api.example.com.
func TestProxyFuncWithBypass_WildcardDomain(t *testing.T) {
	proxyURL, _ := url.Parse("http://proxy.corp:8080")
	proxyFunc := proxyFuncWithBypass(proxyURL, "*.example.com", logging.Nop())

	// Subdomain should bypass proxy
	req, _ := http.NewRequest("GET", "https://api.example.com/data", nil)
	result, err := proxyFunc(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Errorf("expected nil (bypass) for api.example.com, got %v", result)
	}
}

// TestProxyFuncWithBypass_ExactDomain verifies example.com bypasses root and subdomains.
func TestProxyFuncWithBypass_ExactDomain(t *testing.T) {
	proxyURL, _ := url.Parse("http://proxy.corp:8080")
	proxyFunc := proxyFuncWithBypass(proxyURL, "example.com", logging.Nop())

	// Root domain should bypass
	req, _ := http.NewRequest("GET", "https://example.com/data", nil)
	result, err := proxyFunc(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Errorf("expected nil (bypass) for example.com, got %v", result)
	}

	// Subdomain should also bypass (httpproxy: a domain without leading dot matches subdomains)
	req2, _ := http.NewRequest("GET", "https://api.example.com/data", nil)
	result2, err := proxyFunc(req2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result2 != nil {
		t.Errorf("expected nil (bypass) for api.example.com, got %v", result2)
	}
}

// TestProxyFuncWithBypass_CIDR verifies IP/CIDR range matching.
func TestProxyFuncWithBypass_CIDR(t *testing.T) {
	proxyURL, _ := url.Parse("http://proxy.corp:8080")
	proxyFunc := proxyFuncWithBypass(proxyURL, "10.0.0.0/8", logging.Nop())

	// IP in range should bypass
	req, _ := http.NewRequest("GET", "http://10.1.2.3:8080/api", nil)
	result, err := proxyFunc(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Errorf("expected nil (bypass) for 10.1.2.3, got %v", result)
	}
}

// TestProxyFuncWithBypass_NonMatchingHost verifies non-matching hosts route through proxy.
func TestProxyFuncWithBypass_NonMatchingHost(t *testing.T) {
	proxyURL, _ := url.Parse("http://proxy.corp:8080")
	proxyFunc := proxyFuncWithBypass(proxyURL, "*.internal.corp,10.0.0.0/8", logging.Nop())

	// External host should use proxy
	req, _ := http.NewRequest("GET", "https://dmam.example.org/api/v1/", nil)
	result, err := proxyFunc(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("expected proxy URL for dmam.example.org, got nil (direct)")
	}
	if result.Host != "proxy.corp:8080" {
		t.Errorf("expected proxy host proxy.corp:8080, got %s", result.Host)
	}
}

// TestProxyFuncWithBypass_MultiplePatterns verifies comma-separated patterns work.
func TestProxyFuncWithBypass_MultiplePatterns(t *testing.T) {
	proxyURL, _ := url.Parse("http://proxy.corp:8080")
	proxyFunc := proxyFuncWithBypass(proxyURL, "*.example.com, 192.168.0.0/16, internal.corp", logging.Nop())

	tests := []struct {
		name       string
		url        string
		wantBypass bool
	}{
		{"wildcard match", "https://api.example.com/data", true},
		{"cidr match", "http://192.168.1.100/api", true},
		{"exact domain match", "https://internal.corp/status", true},
		{"non-match", "https://dmam.example.org/api/v1/", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest("GET", tt.url, nil)
			result, err := proxyFunc(req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantBypass && result != nil {
				t.Errorf("expected bypass (nil) for %s, got %v", tt.url, result)
			}
			if !tt.wantBypass && result == nil {
				t.Errorf("expected proxy for %s, got nil (bypass)", tt.url)
			}
		})
	}
}

func TestBuildProxyURL(t *testing.T) {
	cfg := config.Default()
	cfg.ProxyHost = "proxy.corp"
	cfg.ProxyPort = 0
	cfg.ProxyUser = "jdoe"

	u := buildProxyURL(cfg)
	if u.Host != "proxy.corp:8080" {
		t.Errorf("Host = %q, want %q", u.Host, "proxy.corp:8080")
	}
	if u.User != nil {
		t.Errorf("User = %v, want nil without a password", u.User)
	}

	cfg.ProxyPassword = "pw"
	cfg.ProxyPort = 3128
	u = buildProxyURL(cfg)
	if u.Host != "proxy.corp:3128" {
		t.Errorf("Host = %q, want %q", u.Host, "proxy.corp:3128")
	}
	if pw, ok := u.User.Password(); !ok || pw != "pw" {
		t.Errorf("password = %q, want %q", pw, "pw")
	}
}

func TestNeedsProxyPassword(t *testing.T) {
	tests := []struct {
		mode, user, password string
		want                 bool
	}{
		{"no-proxy", "jdoe", "", false},
		{"system", "jdoe", "", false},
		{"basic", "jdoe", "", true},
		{"NTLM", "jdoe", "", true},
		{"basic", "jdoe", "pw", false},
		{"basic", "", "", false},
	}

	for _, tt := range tests {
		cfg := config.Default()
		cfg.ProxyMode, cfg.ProxyUser, cfg.ProxyPassword = tt.mode, tt.user, tt.password
		if got := NeedsProxyPassword(cfg); got != tt.want {
			t.Errorf("NeedsProxyPassword(%s, %q, %q) = %v, want %v", tt.mode, tt.user, tt.password, got, tt.want)
		}
	}
}

func TestConfigureHTTPClient_Modes(t *testing.T) {
	cfg := config.Default()

	client, err := ConfigureHTTPClient(cfg, logging.Nop())
	if err != nil {
		t.Fatalf("no-proxy: unexpected error: %v", err)
	}
	if client.Timeout != cfg.RequestTimeout {
		t.Errorf("Timeout = %v, want %v", client.Timeout, cfg.RequestTimeout)
	}
	if tr := client.Transport.(*http.Transport); tr.Proxy != nil {
		t.Error("no-proxy transport should not set Proxy")
	}

	cfg.ProxyMode = "basic"
	client, err = ConfigureHTTPClient(cfg, nil)
	if err != nil {
		t.Fatalf("basic without host: unexpected error: %v", err)
	}
	if tr := client.Transport.(*http.Transport); tr.Proxy != nil {
		t.Error("basic mode without host should fall back to direct")
	}

	cfg.ProxyHost = "proxy.corp"
	client, err = ConfigureHTTPClient(cfg, nil)
	if err != nil {
		t.Fatalf("basic: unexpected error: %v", err)
	}
	if tr := client.Transport.(*http.Transport); tr.Proxy == nil {
		t.Error("basic mode with host should set Proxy")
	}

	cfg.ProxyMode = "ntlm"
	client, err = ConfigureHTTPClient(cfg, nil)
	if err != nil {
		t.Fatalf("ntlm: unexpected error: %v", err)
	}
	if _, ok := client.Transport.(*http.Transport); ok {
		t.Error("ntlm mode should wrap the transport")
	}

	cfg.ProxyMode = "socks"
	if _, err := ConfigureHTTPClient(cfg, nil); err == nil {
		t.Error("expected error for unsupported proxy mode")
	}
}

func TestNewAPIClient_HTTP2Toggle(t *testing.T) {
	cfg := config.Default()

	client, err := NewAPIClient(cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr := client.Transport.(*http.Transport); !tr.ForceAttemptHTTP2 {
		t.Error("direct connection should attempt HTTP/2")
	}

	t.Setenv("DISABLE_HTTP2", "true")
	client, err = NewAPIClient(cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr := client.Transport.(*http.Transport); tr.ForceAttemptHTTP2 {
		t.Error("DISABLE_HTTP2 should force HTTP/1.1")
	}
}

func TestNewAPIClient_ProxyDisablesHTTP2(t *testing.T) {
	cfg := config.Default()
	cfg.ProxyMode = "basic"
	cfg.ProxyHost = "proxy.corp"

	client, err := NewAPIClient(cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr := client.Transport.(*http.Transport); tr.ForceAttemptHTTP2 {
		t.Error("proxied connection should stay on HTTP/1.1")
	}
}
