package apierr

import (
	"fmt"
	"net/http"
)

// Error carries an HTTP status and a stable machine-readable code alongside
// the underlying cause. Services return it for taxonomy failures; handlers
// unwrap it with errors.As and respond with Status/Code.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Constructors for the failure taxonomy the catalog services use.

// UpstreamUnavailable marks a remote source fetch that failed or returned an
// unusable payload. Surfaced as a gateway failure, never retried.
func UpstreamUnavailable(err error) *Error {
	return New(http.StatusBadGateway, "upstream_unavailable", err)
}

// ConfigurationMissing marks an absent source URL or local sample file.
func ConfigurationMissing(err error) *Error {
	return New(http.StatusInternalServerError, "configuration_missing", err)
}

// InvalidArgument marks caller-supplied input that failed to parse.
func InvalidArgument(code string, err error) *Error {
	return New(http.StatusBadRequest, code, err)
}

// NotFound marks a write aimed at a product identifier absent from the store.
func NotFound(err error) *Error {
	return New(http.StatusNotFound, "not_found", err)
}

// StoreFailure marks a persistence error during a query or write.
func StoreFailure(err error) *Error {
	return New(http.StatusInternalServerError, "store_failure", err)
}
