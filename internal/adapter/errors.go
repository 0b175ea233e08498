package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Status sentinels. A [*BackendError] unwraps to the one matching its status
// code so callers can test with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrTransport matches every [*TransportError].
	ErrTransport = errors.New("transport failure")

	// ErrDecodingResponse is returned when a 2xx body cannot be decoded.
	ErrDecodingResponse = errors.New("error decoding response")

	// ErrReadingFile is returned when a file selected for upload cannot be
	// opened.
	ErrReadingFile = errors.New("error reading upload file")
)

// BackendError is a non-2xx reply from the backend.
type BackendError struct {
	StatusCode int
	// Detail is the backend's "detail" message, empty when the body carried
	// none.
	Detail string
}

func (e *BackendError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
}

// Unwrap returns the status sentinel, or nil for unmapped codes.
func (e *BackendError) Unwrap() error {
	return statusSentinel(e.StatusCode)
}

// TransportError is a request that never got a response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is makes every TransportError match [ErrTransport].
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
