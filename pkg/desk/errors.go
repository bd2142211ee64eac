package desk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx response from the API. The server reports a
// machine-readable error type plus a human-readable description; validation
// failures additionally carry per-field details.
type APIError struct {
	Status      int                      `json:"-"           yaml:"-"`
	Type        string                   `json:"error"       yaml:"error"`
	Description string                   `json:"description" yaml:"description"`
	Details     map[string][]ErrorDetail `json:"details,omitempty" yaml:"details,omitempty"`

	// Body holds the raw response body for callers that need more than the
	// decoded fields.
	Body []byte `json:"-" yaml:"-"`
}

// ErrorDetail is a single field-level validation failure.
type ErrorDetail struct {
	Type        string `json:"type,omitempty"        yaml:"type,omitempty"`
	Description string `json:"description"           yaml:"description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("API error (status %d)", e.Status)
	}

	if e.Description == "" {
		return fmt.Sprintf("%s (status %d)", e.Type, e.Status)
	}

	return fmt.Sprintf("%s: %s (status %d)", e.Type, e.Description, e.Status)
}

// TransportError represents a failure to complete the HTTP exchange at all:
// connection refused, DNS failure, timeout. The server was never observed to
// respond.
type TransportError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error for %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError represents a 2xx response whose body did not have the expected
// structure: not valid JSON, or missing the envelope key the caller asked
// for. A missing key is always an error, never a silent nil.
type DecodeError struct {
	Key string
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("decoding response envelope %q: %v", e.Key, e.Err)
	}

	return fmt.Sprintf("decoding response: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// PaginationError reports a failure partway through a multi-page fetch.
// PagesFetched counts the pages that were retrieved successfully before the
// failure; their items are never returned as if the fetch had completed.
type PaginationError struct {
	PagesFetched int
	Err          error
}

// Error implements the error interface.
func (e *PaginationError) Error() string {
	return fmt.Sprintf("pagination failed after %d page(s): %v", e.PagesFetched, e.Err)
}

// Unwrap returns the underlying error.
func (e *PaginationError) Unwrap() error {
	return e.Err
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrEndpointRequired   = errors.New("API endpoint or subdomain is required")
	ErrMissingEnvelopeKey = errors.New("expected envelope key not present in response")
	ErrNoMoreItems        = errors.New("no more items")
	ErrInvalidPathSegment = errors.New("invalid path segment type")
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

// ParseAPIError builds an APIError from a non-2xx response body. Bodies that
// are not valid JSON (HTML error pages from proxies, empty 5xx bodies) still
// produce an APIError carrying the status and raw body.
func ParseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		Status: status,
		Body:   body,
	}

	if len(body) > 0 {
		// Best effort: keep the raw body either way.
		_ = json.Unmarshal(body, apiErr)
	}

	return apiErr
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an authentication failure.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is an authorization failure.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsRateLimited checks if the error is a rate limit rejection.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == status
	}

	return false
}
