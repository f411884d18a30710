package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-biz-admin/internal/app"
)

// Status sentinels. An [*APIError] matches the one of its status code with
// [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// ErrInvalidBaseURL is returned by NewHTTPAccessLayer for an unusable API URL.
var ErrInvalidBaseURL = errors.New("invalid api base url")

// APIError is the normalized failure of a call.
type APIError struct {
	// Message is what the user was notified with.
	Message string
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int
	// Body is the raw response body, if any.
	Body []byte
	// Err is the transport error, or a *StatusError for HTTP failures.
	Err error
}

func (e *APIError) Error() string {
	return e.Message
}

// Unwrap exposes the status sentinel and the cause.
func (e *APIError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if sentinel := statusSentinel(e.StatusCode); sentinel != nil {
		errs = append(errs, sentinel)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// StatusError is the transport-level error of a response with status >= 400.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf(app.MsgRequestFailedWithStatus, e.StatusCode)
}
