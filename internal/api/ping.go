package api

import (
	"context"
	nethttp "net/http"
	"strings"
	"unicode/utf8"

	"github.com/mexm/mydmam-browser/internal/constants"
	"github.com/mexm/mydmam-browser/internal/models"
)

// Ping checks the server is reachable. The answer is "pong: " followed by
// the upper-cased payload.
func (c *Client) Ping(ctx context.Context, payload string) (string, error) {
	n := utf8.RuneCountInString(payload)
	if strings.TrimSpace(payload) == "" || n < constants.PingPayloadMinLength || n > constants.PingPayloadMaxLength {
		return "", ErrInvalidPayload
	}

	var out models.PongResponse
	if _, err := c.do(ctx, nethttp.MethodPost, "/ping", nil, models.PingRequest{Payload: payload}, &out); err != nil {
		return "", err
	}
	return out.Payload, nil
}
