package constants

import (
	"time"
)

// Navigator defaults
const (
	// DefaultPageSize - entries requested per directory listing page (20)
	DefaultPageSize = 20

	// DefaultMaxPageButtons - page buttons shown before the list is truncated (10)
	// Must be even: half go before the separator, half after.
	DefaultMaxPageButtons = 10
)

// Search defaults
const (
	// SuggestionMinQueryLength - trimmed queries shorter than this never hit the server
	SuggestionMinQueryLength = 3

	// SuggestionLimit - result count requested for search-as-you-type
	SuggestionLimit = 10

	// DefaultSearchCacheTTL - how long an unconstrained GET search stays cached (30 seconds)
	DefaultSearchCacheTTL = 30 * time.Second

	// SearchCacheSize - cached search responses kept before the oldest is evicted
	SearchCacheSize = 128

	// PingPayloadMinLength, PingPayloadMaxLength - server rejects payloads outside this range
	PingPayloadMinLength = 5
	PingPayloadMaxLength = 255
)

// Constraint editor seeds
const (
	// SizeEditorDefaultMax - upper bound offered by the size editor when unset (50 GB)
	SizeEditorDefaultMax int64 = 50 * 1000 * 1000 * 1000
)

// Event System
const (
	// EventBusDefaultBuffer - default buffer size for event channels (1000)
	EventBusDefaultBuffer = 1000

	// EventBusMaxBuffer - maximum buffer size for high-throughput scenarios (5000)
	EventBusMaxBuffer = 5000
)

// HTTP Client Timeouts
const (
	// DefaultRequestTimeout - bound on a single API call (10 seconds)
	// Failures surface as "no data", never as a retry.
	DefaultRequestTimeout = 10 * time.Second

	// HTTPIdleConnTimeout - how long to keep idle connections open (90 seconds)
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPTLSHandshakeTimeout - timeout for TLS handshake (10 seconds)
	HTTPTLSHandshakeTimeout = 10 * time.Second

	// HTTPExpectContinueTimeout - timeout for 100-continue response (1 second)
	HTTPExpectContinueTimeout = 1 * time.Second

	// HTTPDialTimeout - timeout for establishing connection (10 seconds)
	HTTPDialTimeout = 10 * time.Second

	// HTTPDialKeepAlive - keep-alive period for dialer (30 seconds)
	HTTPDialKeepAlive = 30 * time.Second

	// ProxyWarmupTimeout - bound on the optional proxy warmup request (15 seconds)
	ProxyWarmupTimeout = 15 * time.Second

	// DefaultProxyPort - used when a proxy host is configured without a port
	DefaultProxyPort = 8080
)

// API
const (
	// DefaultAPIBaseURL - server root including the API version prefix
	DefaultAPIBaseURL = "http://localhost:8080/api/v1"

	// RequestIDHeader - correlation header attached to every fetch
	RequestIDHeader = "X-Request-ID"
)
