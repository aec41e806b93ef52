package automation

import (
	"errors"
	"fmt"
	"net/http"
)

// Static errors that can be wrapped with context.
var (
	ErrInvalidPath          = errors.New("invalid request path")
	ErrInvalidNextLink      = errors.New("invalid continuation link")
	ErrUnsupportedParameter = errors.New("parameter not supported by operation")
	ErrBodyRequired         = errors.New("request body is required")
	ErrUnexpectedBody       = errors.New("operation does not accept a request body")
	ErrNoMorePages          = errors.New("no more pages")
	ErrConfigRequired       = errors.New("config is required")
	ErrCredentialRequired   = errors.New("credential is required")
	ErrTokenRequired        = errors.New("access token is required")
	ErrInvalidEndpoint      = errors.New("invalid endpoint")
	ErrInvalidResourceID    = errors.New("invalid resource id")
	ErrRateLimiterStopped   = errors.New("rate limiter stopped")
)

// ResponseError is returned for any response outside the 2xx range. The body
// is kept verbatim; no structured error code is extracted from it.
type ResponseError struct {
	StatusCode int
	Method     string
	URL        string
	Header     http.Header
	Body       []byte
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
	}

	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// StatusCodeOf returns the HTTP status of a *ResponseError in err's chain, or 0.
func StatusCodeOf(err error) int {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	return StatusCodeOf(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is a 401 response.
func IsUnauthorized(err error) bool {
	return StatusCodeOf(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is a 403 response.
func IsForbidden(err error) bool {
	return StatusCodeOf(err) == http.StatusForbidden
}

// IsConflict checks if the error is a 409 response.
func IsConflict(err error) bool {
	return StatusCodeOf(err) == http.StatusConflict
}
