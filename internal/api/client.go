// Package api is the HTTP client for the MyDMAM REST API (/api/v1).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/mexm/mydmam-browser/internal/config"
	"github.com/mexm/mydmam-browser/internal/constants"
	"github.com/mexm/mydmam-browser/internal/http"
	"github.com/mexm/mydmam-browser/internal/logging"
)

// Client represents the MyDMAM API client
type Client struct {
	httpClient *nethttp.Client
	config     *config.Config
	baseURL    string
	logger     *logging.Logger
	cache      *responseCache
}

// NewClient creates a new API client. Requests are attempted once: a
// failed fetch is reported to the caller, which shows "no data".
func NewClient(cfg *config.Config, logger *logging.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIBaseURL) == "" {
		return nil, fmt.Errorf("API base URL is empty: set api_url in the config file or MYDMAM_API_URL")
	}
	if logger == nil {
		logger = logging.Nop()
	}
	logger = logger.Component("api")

	httpClient, err := http.NewAPIClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to configure HTTP client: %w", err)
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = httpClient
	retryClient.RetryMax = 0
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = logging.NewLeveled(logger)

	return &Client{
		httpClient: retryClient.StandardClient(),
		config:     cfg,
		baseURL:    strings.TrimSuffix(cfg.APIBaseURL, "/"),
		logger:     logger,
		cache:      newResponseCache(cfg.SearchCacheTTL),
	}, nil
}

// GetConfig returns the configuration used by this API client
func (c *Client) GetConfig() *config.Config {
	return c.config
}

// BaseURL returns the server root, without trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doRequest performs one HTTP request and returns the raw response.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body interface{}) (*nethttp.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, c.endpoint(path, query), reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(constants.RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Err(err).
			Msg("API call failed")
		return nil, fmt.Errorf("request failed: %w", err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("API call")

	return resp, nil
}

// do performs a request, checks the status and decodes the JSON answer
// into out. It returns the raw body so callers can cache it.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) ([]byte, error) {
	resp, err := c.doRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, fmt.Errorf("failed to decode %s response: %w", path, err)
		}
	}
	return raw, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// ClearCache drops every cached search response.
func (c *Client) ClearCache() {
	c.cache.clear()
}
