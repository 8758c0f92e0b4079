package api

import (
	"errors"
	"fmt"
)

// ErrNoFeatures is returned when a player prediction carries no stat columns
var ErrNoFeatures = errors.New("no features in response")

// NetworkError is returned when the request could not be completed or the
// server answered with a non-success status
type NetworkError struct {
	Op         string
	URL        string
	StatusCode int // zero when the transport failed
	Message    string
	RequestID  string
	Err        error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		if e.Message != "" {
			return fmt.Sprintf("%s: %s returned %d: %s", e.Op, e.URL, e.StatusCode, e.Message)
		}
		return fmt.Sprintf("%s: %s returned %d", e.Op, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsNotFound returns true if the server answered 404.
func (e *NetworkError) IsNotFound() bool {
	return e.StatusCode == 404
}

// ParseError is returned when the body is not the JSON shape we expect
type ParseError struct {
	Op        string
	RequestID string
	Err       error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: malformed response: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Kind classifies err for metrics and logs: "network", "parse" or "other"
func Kind(err error) string {
	var netErr *NetworkError
	var parseErr *ParseError
	switch {
	case errors.As(err, &netErr):
		return "network"
	case errors.As(err, &parseErr):
		return "parse"
	default:
		return "other"
	}
}
