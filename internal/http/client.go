// Package http builds the transport used to talk to the MyDMAM server.
package http

import (
	"crypto/tls"
	nethttp "net/http"
	"os"
	"strings"

	"golang.org/x/net/http2"

	"github.com/mexm/mydmam-browser/internal/config"
	"github.com/mexm/mydmam-browser/internal/logging"
)

// NewAPIClient returns the proxy-aware client with HTTP/2 enabled where it
// is safe. Listing and search responses are small JSON documents, so the
// pool stays modest.
//
// HTTP/2 is turned off when:
//   - DISABLE_HTTP2=true is set
//   - a proxy is active (unless FORCE_HTTP2=true)
func NewAPIClient(cfg *config.Config, logger *logging.Logger) (*nethttp.Client, error) {
	client, err := ConfigureHTTPClient(cfg, logger)
	if err != nil {
		return nil, err
	}

	tr, ok := client.Transport.(*nethttp.Transport)
	if !ok {
		// NTLM wraps the transport; leave it on HTTP/1.1.
		return client, nil
	}

	tr.ForceAttemptHTTP2 = true
	_ = http2.ConfigureTransport(tr)

	if os.Getenv("DISABLE_HTTP2") == "true" || (proxyActive(cfg) && os.Getenv("FORCE_HTTP2") != "true") {
		disableHTTP2(tr)
	}

	return client, nil
}

func proxyActive(cfg *config.Config) bool {
	switch strings.ToLower(cfg.ProxyMode) {
	case "no-proxy", "":
		return false
	case "system":
		return os.Getenv("HTTP_PROXY") != "" || os.Getenv("HTTPS_PROXY") != "" ||
			os.Getenv("http_proxy") != "" || os.Getenv("https_proxy") != ""
	default:
		return cfg.ProxyHost != ""
	}
}

func disableHTTP2(tr *nethttp.Transport) {
	tr.ForceAttemptHTTP2 = false
	tr.TLSNextProto = make(map[string]func(string, *tls.Conn) nethttp.RoundTripper)
}
