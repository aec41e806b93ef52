package automation

import (
	"fmt"
	"net/url"
	"strings"
)

// ParamSet is the set of optional parameters an operation accepts.
type ParamSet uint8

// Optional parameters.
const (
	ParamFilter ParamSet = 1 << iota
	ParamSkip
	ParamTop
	ParamInlineCount
	ParamClientRequestID
)

// ParamPaging is the full OData paging set used by the larger list operations.
const ParamPaging = ParamFilter | ParamSkip | ParamTop | ParamInlineCount

// Has reports whether every parameter in p is part of the set.
func (s ParamSet) Has(p ParamSet) bool {
	return s&p == p
}

// String lists the parameter names in wire order.
func (s ParamSet) String() string {
	names := make([]string, 0, len(paramNames))

	for _, entry := range paramNames {
		if s.Has(entry.param) {
			names = append(names, entry.name)
		}
	}

	return strings.Join(names, ",")
}

var paramNames = []struct {
	param ParamSet
	name  string
}{
	{ParamFilter, "$filter"},
	{ParamSkip, "$skip"},
	{ParamTop, "$top"},
	{ParamInlineCount, "$inlinecount"},
	{ParamClientRequestID, "x-ms-client-request-id"},
}

// BodyKind describes the request payload of an operation.
type BodyKind int

// Body kinds.
const (
	BodyNone BodyKind = iota
	BodyJSON
	BodyText
)

// ResponseKind describes how a response body is decoded.
type ResponseKind int

// Response kinds.
const (
	ResponseJSON ResponseKind = iota
	ResponseText
)

// Operation describes one REST operation of the service.
type Operation struct {
	// Name is "<Client>.<Method>", used in logs, metrics and errors.
	Name string
	// Method is the HTTP verb.
	Method string
	// Path is the URL template; placeholders are written as {name}.
	Path string
	// APIVersion is the fixed api-version the operation was generated against.
	APIVersion string
	// Params is the set of optional parameters the operation accepts.
	Params ParamSet
	// Body is the request payload kind.
	Body BodyKind
	// ContentType applies to BodyText payloads.
	ContentType string
	// Response is the response payload kind.
	Response ResponseKind
	// Accept overrides the default Accept header.
	Accept string
}

// Placeholders returns the template placeholder names in order.
func (o *Operation) Placeholders() []string {
	var names []string

	rest := o.Path
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			return names
		}

		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return names
		}

		names = append(names, rest[start+1:start+end])
		rest = rest[start+end+1:]
	}
}

// Expand substitutes args into the path template in order. Each value is
// path-escaped. The number of args must match the number of placeholders
// and no value may be empty.
func (o *Operation) Expand(args ...string) (string, error) {
	names := o.Placeholders()
	if len(names) != len(args) {
		return "", fmt.Errorf("%w: %s expects %d path parameters, got %d", ErrInvalidPath, o.Name, len(names), len(args))
	}

	path := o.Path

	for i, name := range names {
		if args[i] == "" {
			return "", fmt.Errorf("%w: %s parameter %s is empty", ErrInvalidPath, o.Name, name)
		}

		path = strings.Replace(path, "{"+name+"}", url.PathEscape(args[i]), 1)
	}

	return path, nil
}
