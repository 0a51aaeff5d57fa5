package copilot

import (
	"errors"
	"fmt"
)

var (
	// ErrTokenNotFound is returned when no credential source yields a token.
	ErrTokenNotFound = errors.New("no Copilot credential found in any source")

	// ErrModelNotFound is returned when a requested model id is absent from
	// the cached model catalog.
	ErrModelNotFound = errors.New("model not found in catalog")
)

// HTTPError reports a non-success status code from the Copilot API. The
// response body is retained to aid debugging.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("copilot API request failed: %s", e.Status)
	}
	if e.Body == "" {
		return fmt.Sprintf("copilot API returned %s", e.Status)
	}
	return fmt.Sprintf("copilot API returned %s: %s", e.Status, e.Body)
}

// DecodeError reports a response body that did not match the expected JSON
// schema.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding copilot API response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
