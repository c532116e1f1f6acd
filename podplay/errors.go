package podplay

import (
	"errors"
	"fmt"
)

// ConnectionError indicates the API could not be reached or answered with a
// non-2xx status: DNS failures, refused connections, socket errors and error
// statuses all land here.
type ConnectionError struct {
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("podplay: request to %s failed with status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("podplay: request to %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error, if any.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ConnectionTimeoutError indicates the configured deadline elapsed before a
// response was received. Kept distinct from ConnectionError so callers can
// apply a different retry policy to timeouts.
type ConnectionTimeoutError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *ConnectionTimeoutError) Error() string {
	return fmt.Sprintf("podplay: timeout while connecting to %s", e.URL)
}

// Unwrap returns the underlying deadline error.
func (e *ConnectionTimeoutError) Unwrap() error {
	return e.Err
}

// Timeout reports true so the error satisfies interfaces that probe for
// timeout conditions.
func (e *ConnectionTimeoutError) Timeout() bool {
	return true
}

// APIError indicates the API answered successfully but with an unusable
// payload: a non-JSON content type, an invalid JSON body, or a JSON shape
// that does not match the expected response. ContentType and Body carry the
// raw diagnostic context.
type APIError struct {
	ContentType string
	Body        string
	Err         error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.ContentType != "" {
		return fmt.Sprintf("podplay: unexpected %q response from the API: %s", e.ContentType, truncate(e.Body, 200))
	}
	if e.Err != nil {
		return fmt.Sprintf("podplay: unexpected response payload: %v", e.Err)
	}
	return "podplay: unexpected response from the API"
}

// Unwrap returns the underlying decode error, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// IsConnectionError reports whether err is a ConnectionError.
func IsConnectionError(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}

// IsTimeout reports whether err is a ConnectionTimeoutError.
func IsTimeout(err error) bool {
	var te *ConnectionTimeoutError
	return errors.As(err, &te)
}

// IsAPIError reports whether err is an APIError.
func IsAPIError(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
