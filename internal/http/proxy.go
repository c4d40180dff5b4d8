package http

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	nethttp "net/http"
	"net/url"
	"strings"

	ntlmssp "github.com/Azure/go-ntlmssp"
	"golang.org/x/net/http/httpproxy"

	"github.com/mexm/mydmam-browser/internal/config"
	"github.com/mexm/mydmam-browser/internal/constants"
	"github.com/mexm/mydmam-browser/internal/logging"
)

// ConfigureHTTPClient builds a client honouring the proxy settings of cfg.
// Every call is bounded by cfg.RequestTimeout.
func ConfigureHTTPClient(cfg *config.Config, logger *logging.Logger) (*nethttp.Client, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}

	transport := &nethttp.Transport{
		DialContext: (&net.Dialer{
			Timeout:   constants.HTTPDialTimeout,
			KeepAlive: constants.HTTPDialKeepAlive,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		MaxIdleConns:          16,
		MaxIdleConnsPerHost:   8,
		IdleConnTimeout:       constants.HTTPIdleConnTimeout,
		TLSHandshakeTimeout:   constants.HTTPTLSHandshakeTimeout,
		ExpectContinueTimeout: constants.HTTPExpectContinueTimeout,
	}

	direct := func() *nethttp.Client {
		transport.Proxy = nil
		return &nethttp.Client{Transport: transport, Timeout: timeout}
	}

	var client *nethttp.Client
	switch strings.ToLower(cfg.ProxyMode) {
	case "no-proxy", "":
		return direct(), nil

	case "system":
		transport.Proxy = nethttp.ProxyFromEnvironment
		client = &nethttp.Client{Transport: transport, Timeout: timeout}

	case "ntlm":
		// An incomplete saved config falls back to a direct connection so the
		// user can still reach the server and fix the settings.
		if cfg.ProxyHost == "" {
			logger.Warn().Msg("Proxy mode is ntlm but host is missing, falling back to no-proxy")
			return direct(), nil
		}
		transport.Proxy = proxyFuncWithBypass(buildProxyURL(cfg), cfg.NoProxy, logger)
		client = &nethttp.Client{
			Transport: ntlmssp.Negotiator{RoundTripper: transport},
			Timeout:   timeout,
		}

	case "basic":
		if cfg.ProxyHost == "" {
			logger.Warn().Msg("Proxy mode is basic but host is missing, falling back to no-proxy")
			return direct(), nil
		}
		if cfg.ProxyUser != "" && cfg.ProxyPassword == "" {
			logger.Warn().Msg("Proxy user configured but password missing, proxy auth disabled until MYDMAM_PROXY_PASSWORD is set")
		}
		transport.Proxy = proxyFuncWithBypass(buildProxyURL(cfg), cfg.NoProxy, logger)
		client = &nethttp.Client{Transport: transport, Timeout: timeout}

	default:
		return nil, fmt.Errorf("unsupported proxy mode: %s", cfg.ProxyMode)
	}

	if cfg.ProxyWarmup && !NeedsProxyPassword(cfg) {
		if err := warmupProxy(client, cfg); err != nil {
			return nil, fmt.Errorf("proxy warmup failed: %w", err)
		}
	}

	return client, nil
}

// buildProxyURL constructs a proxy URL from config
func buildProxyURL(cfg *config.Config) *url.URL {
	port := cfg.ProxyPort
	if port == 0 {
		port = constants.DefaultProxyPort
	}

	proxyURL := &url.URL{
		Scheme: "http",
		Host:   net.JoinHostPort(cfg.ProxyHost, fmt.Sprintf("%d", port)),
	}

	// Credentials only go in when both halves are known; an empty password
	// breaks some proxies.
	if cfg.ProxyUser != "" && cfg.ProxyPassword != "" {
		proxyURL.User = url.UserPassword(cfg.ProxyUser, cfg.ProxyPassword)
	}

	return proxyURL
}

// warmupProxy opens the proxy connection with a realm listing request.
func warmupProxy(client *nethttp.Client, cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), constants.ProxyWarmupTimeout)
	defer cancel()

	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, strings.TrimSuffix(cfg.APIBaseURL, "/")+"/filesystem/list", nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("warmup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("warmup request returned server error: %d", resp.StatusCode)
	}

	return nil
}

// proxyFuncWithBypass returns a proxy function that respects the NoProxy bypass list.
// With an empty noProxy it behaves like nethttp.ProxyURL.
func proxyFuncWithBypass(proxyURL *url.URL, noProxy string, logger *logging.Logger) func(*nethttp.Request) (*url.URL, error) {
	if noProxy == "" {
		return nethttp.ProxyURL(proxyURL)
	}
	cfg := httpproxy.Config{
		HTTPProxy:  proxyURL.String(),
		HTTPSProxy: proxyURL.String(),
		NoProxy:    noProxy,
	}
	proxyFunc := cfg.ProxyFunc()
	return func(req *nethttp.Request) (*url.URL, error) {
		result, err := proxyFunc(req.URL)
		if result == nil {
			logger.Debug().Str("host", req.URL.Host).Msg("Proxy bypass (direct connection)")
		} else {
			logger.Debug().Str("host", req.URL.Host).Str("proxy", result.Host).Msg("Proxied")
		}
		return result, err
	}
}

// NeedsProxyPassword returns true if the proxy configuration requires a password
// but one has not been provided.
func NeedsProxyPassword(cfg *config.Config) bool {
	mode := strings.ToLower(cfg.ProxyMode)
	if mode != "basic" && mode != "ntlm" {
		return false
	}
	return cfg.ProxyUser != "" && cfg.ProxyPassword == ""
}
