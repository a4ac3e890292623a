package article

import (
	"errors"
	"fmt"
	"net/url"
	"os"
)

// ErrorType represents the category of a protocol error.
type ErrorType int

const (
	// ErrTypeNetwork indicates a transport-level failure (connection
	// refused, timeout, DNS, aborted request).
	ErrTypeNetwork ErrorType = iota
	// ErrTypeStatus indicates a response outside the success range.
	ErrTypeStatus
	// ErrTypeParse indicates a malformed response body.
	ErrTypeParse
	// ErrTypeReauth indicates the request was answered by a login wall
	// instead of the wiki endpoint.
	ErrTypeReauth
)

// String returns a human-readable name for the error type.
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeStatus:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeReauth:
		return "Login Required"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// ProtocolError is an error from talking to the wiki server. All
// classification happens at the client boundary; callers only ever see
// one of these or a classified SaveResult, never a raw transport error.
type ProtocolError struct {
	Type       ErrorType
	Message    string
	StatusCode int    // set for ErrTypeStatus
	LoginURL   string // set for ErrTypeReauth
	Err        error  // underlying error, if any
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a transport-level error.
func NewNetworkError(message string, err error) *ProtocolError {
	// Unwrap url.Error so the message carries the interesting part.
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}
	if os.IsTimeout(err) {
		message = message + " (timed out)"
	}
	return &ProtocolError{Type: ErrTypeNetwork, Message: message, Err: err}
}

// NewStatusError creates an error for an unexpected HTTP status.
func NewStatusError(statusCode int) *ProtocolError {
	return &ProtocolError{
		Type:       ErrTypeStatus,
		Message:    fmt.Sprintf("unexpected status code %d", statusCode),
		StatusCode: statusCode,
	}
}

// NewParseError creates an error for a malformed response body.
func NewParseError(message string, err error) *ProtocolError {
	return &ProtocolError{Type: ErrTypeParse, Message: message, Err: err}
}

// NewReauthError creates an error for a request that was redirected to a
// login surface.
func NewReauthError(loginURL string) *ProtocolError {
	return &ProtocolError{
		Type:     ErrTypeReauth,
		Message:  "request was redirected to a login page",
		LoginURL: loginURL,
	}
}

// IsReauthError reports whether err is a login-wall classification.
func IsReauthError(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe) && pe.Type == ErrTypeReauth
}

// IsNetworkError reports whether err is a transport-level failure.
func IsNetworkError(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe) && pe.Type == ErrTypeNetwork
}

// IsStatusError reports whether err is an unexpected-status failure.
func IsStatusError(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe) && pe.Type == ErrTypeStatus
}

// IsParseError reports whether err is a malformed-response failure.
func IsParseError(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe) && pe.Type == ErrTypeParse
}
