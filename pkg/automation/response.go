package automation

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response wraps a buffered service response and decodes it on demand.
type Response[T any] struct {
	raw  *RawResponse
	kind ResponseKind
}

// NewResponse wraps raw as a typed response decoded as kind.
func NewResponse[T any](raw *RawResponse, kind ResponseKind) *Response[T] {
	return &Response[T]{raw: raw, kind: kind}
}

// Into decodes the body into T. Text operations return the raw body when T
// is a string. An empty body decodes to the zero value.
func (r *Response[T]) Into() (*T, error) {
	var result T

	if len(r.raw.Body) == 0 {
		return &result, nil
	}

	if r.kind == ResponseText {
		if text, ok := any(&result).(*string); ok {
			*text = string(r.raw.Body)

			return &result, nil
		}
	}

	err := json.Unmarshal(r.raw.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("decoding %T: %w", result, err)
	}

	return &result, nil
}

// StatusCode returns the HTTP status code.
func (r *Response[T]) StatusCode() int {
	return r.raw.StatusCode
}

// Header returns the response headers.
func (r *Response[T]) Header() http.Header {
	return r.raw.Header
}

// Bytes returns the buffered body.
func (r *Response[T]) Bytes() []byte {
	return r.raw.Body
}

// Raw returns the untouched transport response. The body can be read again
// on every call.
func (r *Response[T]) Raw() *http.Response {
	return r.raw.HTTP()
}

// NoContent is the result type of operations whose response carries no body.
type NoContent struct{}
