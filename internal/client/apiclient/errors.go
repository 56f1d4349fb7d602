package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure kinds. Every error returned by Client.Do wraps exactly one of them.
var (
	ErrTransport             = errors.New("transport failure")
	ErrAuthenticationExpired = errors.New("authentication expired")
	ErrAuthorizationDenied   = errors.New("authorization denied")
	ErrServerFault           = errors.New("server fault")
	ErrMalformedResponse     = errors.New("malformed response")
	ErrRequestRejected       = errors.New("request rejected")
)

// Error describes a failed call. Kind is one of the Err* sentinels above.
type Error struct {
	Kind    error
	Status  int
	Message string
	Method  string
	Path    string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Cause != nil {
		msg = e.Cause.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s %s: %v (%d): %s", e.Method, e.Path, e.Kind, e.Status, msg)
	}
	return fmt.Sprintf("%s %s: %v: %s", e.Method, e.Path, e.Kind, msg)
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// classify maps an HTTP status to a failure kind. It returns nil for 2xx/3xx.
func classify(status int) error {
	switch {
	case status < http.StatusBadRequest:
		return nil
	case status == http.StatusUnauthorized:
		return ErrAuthenticationExpired
	case status == http.StatusForbidden:
		return ErrAuthorizationDenied
	case status >= http.StatusInternalServerError:
		return ErrServerFault
	default:
		return ErrRequestRejected
	}
}

// Message returns the server-provided message of err, or err.Error() when
// err does not carry one.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
