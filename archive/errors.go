package archive

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrMissingField indicates the response lacked response.numFound
	ErrMissingField = errors.New("search response missing response.numFound")
	// ErrInvalidPage indicates a page number below 1
	ErrInvalidPage = errors.New("page must be at least 1")
)

// APIError represents a non-2xx answer from the search endpoint
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("internet archive API error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("internet archive API error: status %d: %s", e.StatusCode, e.Body)
}

// IsRateLimited checks if the server asked us to slow down
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsServerError checks for a 5xx status
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}
