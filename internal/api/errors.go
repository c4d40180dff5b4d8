package api

import (
	"errors"
	"fmt"
	nethttp "net/http"
)

// ErrInvalidPayload is returned by Ping before any request is made.
var ErrInvalidPayload = errors.New("ping payload must be 5 to 255 characters and not blank")

// StatusError is returned for any non-2xx answer.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// IsNotFound reports an unknown realm, storage or hash path.
func IsNotFound(err error) bool {
	return hasStatus(err, nethttp.StatusNotFound)
}

// IsUnprocessable reports a request the server rejected as invalid, such as
// a too short ping payload or malformed constraints.
func IsUnprocessable(err error) bool {
	return hasStatus(err, nethttp.StatusUnprocessableEntity) || hasStatus(err, nethttp.StatusBadRequest)
}

func hasStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}
