package automation

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// Executor sends a fully materialized request through the transport pipeline.
// The pipeline attaches authentication, resolves relative URLs against the
// configured endpoint and maps non-2xx statuses to *ResponseError.
type Executor interface {
	Execute(ctx context.Context, req *WireRequest) (*RawResponse, error)
}

// WireRequest is a request ready to be sent. URL is either a path relative to
// the configured endpoint or an absolute URL, and already carries its query.
type WireRequest struct {
	Operation   string
	Method      string
	URL         string
	Headers     http.Header
	Body        []byte
	ContentType string
	Accept      string
	Metadata    map[string]interface{}
}

// RawResponse is a buffered HTTP response.
type RawResponse struct {
	StatusCode   int
	Header       http.Header
	Body         []byte
	HTTPResponse *http.Response
	Error        error
}

// HTTP returns the underlying *http.Response with a body that reads the
// buffered bytes. Each call returns a fresh reader.
func (r *RawResponse) HTTP() *http.Response {
	if r == nil || r.HTTPResponse == nil {
		return nil
	}

	clone := *r.HTTPResponse
	clone.Body = io.NopCloser(bytes.NewReader(r.Body))

	return &clone
}
