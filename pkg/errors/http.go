package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that already knows how it should be rendered.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// ErrTooMany is rendered when a client exceeds the rate limit.
var ErrTooMany = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
