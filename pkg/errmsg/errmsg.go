// Package errmsg maps transport failures to the messages shown to editors.
package errmsg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	// MinErrorStatusCode is the lowest HTTP status treated as a failure.
	MinErrorStatusCode = 400

	MessageBadRequest   = "Something is wrong with your input. Please check it and try again."
	MessageUnauthorized = "Your session has expired. Please log in again."
	MessageForbidden    = "You do not have permission to do that."
	MessageNotFound     = "The requested item could not be found."
	MessageRateLimited  = "Too many requests. Please wait a moment and try again."
	MessageServer       = "The server ran into a problem. Please try again later."
	MessageOffline      = "You appear to be offline. Check your connection and try again."
	MessageGeneric      = "Something went wrong. Please try again."
)

// ErrOffline marks failures caused by a missing network connection.
var ErrOffline = errors.New("errmsg: network unavailable")

// HTTPError represents an HTTP API error response.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
	Message    string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP error (%d %s): %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Status)
}

// ForStatus returns the editor-facing message for an HTTP status. Unlisted
// statuses fall back to raw, then to a generic message.
func ForStatus(status int, raw string) string {
	switch status {
	case http.StatusBadRequest:
		return MessageBadRequest
	case http.StatusUnauthorized:
		return MessageUnauthorized
	case http.StatusForbidden:
		return MessageForbidden
	case http.StatusNotFound:
		return MessageNotFound
	case http.StatusTooManyRequests:
		return MessageRateLimited
	case http.StatusInternalServerError, http.StatusServiceUnavailable:
		return MessageServer
	}
	if raw = strings.TrimSpace(raw); raw != "" {
		return raw
	}
	return MessageGeneric
}

// Describe maps an arbitrary error to an editor-facing message.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrOffline) {
		return MessageOffline
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return ForStatus(httpErr.StatusCode, httpErr.Message)
	}
	return ForStatus(0, err.Error())
}

// ParseHTTPError reads a failed response into an *HTTPError. It returns nil
// for successful responses.
func ParseHTTPError(resp *http.Response) error {
	if resp.StatusCode < MinErrorStatusCode {
		return nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    fmt.Sprintf("failed to read error response body: %v", err),
		}
	}
	out := &HTTPError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       string(body),
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		out.Message = payload.Error
		if out.Message == "" {
			out.Message = payload.Message
		}
	}
	if out.Message == "" {
		out.Message = strings.TrimSpace(out.Body)
	}
	return out
}
