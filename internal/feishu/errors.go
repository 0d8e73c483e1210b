package feishu

import (
	"errors"
	"fmt"
)

var (
	// ErrAuth indicates the credential exchange failed or no usable
	// credential was supplied.
	ErrAuth = errors.New("feishu: authentication failed")

	// ErrInvalidInput indicates a required argument was missing or empty.
	// Returned before any network call is made.
	ErrInvalidInput = errors.New("feishu: invalid input")
)

// APIError represents a failed API call: either the platform envelope
// carried a non-zero code, or the HTTP exchange itself failed.
type APIError struct {
	Path       string
	StatusCode int // HTTP status, 0 when the request never completed
	Code       int // platform envelope code, 0 when the failure was transport-level
	Msg        string
	Err        error // underlying transport error, if any
}

func (e *APIError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("feishu: request %s failed: %v", e.Path, e.Err)
	case e.Code != 0:
		return fmt.Sprintf("feishu: %s returned code %d: %s", e.Path, e.Code, e.Msg)
	default:
		return fmt.Sprintf("feishu: %s returned HTTP %d: %s", e.Path, e.StatusCode, e.Msg)
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsRequestError reports whether err originated from a failed API call.
func IsRequestError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsAuthError reports whether err came from credential resolution.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrAuth)
}

// IsInvalidInput reports whether err was caused by missing or empty
// arguments, before any network traffic.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
