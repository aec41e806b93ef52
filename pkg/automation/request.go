package automation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strconv"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
)

// Request builds and sends exactly one call of an operation. Required path
// parameters are fixed at construction; optional parameters are set through
// the fluent setters. Nothing is sent until Send or Execute.
type Request[T any] struct {
	executor Executor
	op       *Operation
	pathArgs []string

	body    any
	hasBody bool

	filter          *string
	skip            *int32
	top             *int32
	inlineCount     *string
	clientRequestID *string
	used            ParamSet
}

// NewRequest creates a request for op. pathArgs fill the template placeholders in order.
func NewRequest[T any](executor Executor, op *Operation, pathArgs ...string) *Request[T] {
	return &Request[T]{
		executor: executor,
		op:       op,
		pathArgs: pathArgs,
	}
}

// WithBody sets the request payload. JSON operations marshal it; text
// operations expect a string or []byte.
func (r *Request[T]) WithBody(body any) *Request[T] {
	r.body = body
	r.hasBody = true

	return r
}

// Filter sets $filter.
func (r *Request[T]) Filter(filter string) *Request[T] {
	r.filter = &filter
	r.used |= ParamFilter

	return r
}

// Skip sets $skip.
func (r *Request[T]) Skip(skip int32) *Request[T] {
	r.skip = &skip
	r.used |= ParamSkip

	return r
}

// Top sets $top.
func (r *Request[T]) Top(top int32) *Request[T] {
	r.top = &top
	r.used |= ParamTop

	return r
}

// InlineCount sets $inlinecount.
func (r *Request[T]) InlineCount(inlineCount string) *Request[T] {
	r.inlineCount = &inlineCount
	r.used |= ParamInlineCount

	return r
}

// ClientRequestID sets the x-ms-client-request-id header.
func (r *Request[T]) ClientRequestID(id string) *Request[T] {
	r.clientRequestID = &id
	r.used |= ParamClientRequestID

	return r
}

// Operation returns the descriptor this request was built from.
func (r *Request[T]) Operation() *Operation {
	return r.op
}

// URL returns the path and query the request would be sent to.
func (r *Request[T]) URL() (string, error) {
	path, err := r.op.Expand(r.pathArgs...)
	if err != nil {
		return "", err
	}

	return path + "?" + r.Query().Encode(), nil
}

// Query returns the ordered query for the first request.
func (r *Request[T]) Query() Query {
	query := Query{}.Add(constants.QueryAPIVersion, r.op.APIVersion)

	if r.filter != nil {
		query = query.Add(constants.QueryFilter, *r.filter)
	}

	if r.skip != nil {
		query = query.Add(constants.QuerySkip, strconv.FormatInt(int64(*r.skip), 10))
	}

	if r.top != nil {
		query = query.Add(constants.QueryTop, strconv.FormatInt(int64(*r.top), 10))
	}

	if r.inlineCount != nil {
		query = query.Add(constants.QueryInlineCount, *r.inlineCount)
	}

	return query
}

// Send materializes the request and executes it once.
func (r *Request[T]) Send(ctx context.Context) (*Response[T], error) {
	target, err := r.URL()
	if err != nil {
		return nil, err
	}

	return r.send(ctx, target, true)
}

// Execute is Send followed by Into.
func (r *Request[T]) Execute(ctx context.Context) (*T, error) {
	resp, err := r.Send(ctx)
	if err != nil {
		return nil, err
	}

	return resp.Into()
}

// sendTo executes the operation against an absolute continuation URL. The
// payload is not resent.
func (r *Request[T]) sendTo(ctx context.Context, nextLink string) (*Response[T], error) {
	target, err := ContinuationURL(nextLink, r.op.APIVersion)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.op.Name, err)
	}

	return r.send(ctx, target, false)
}

func (r *Request[T]) send(ctx context.Context, target string, withBody bool) (*Response[T], error) {
	unsupported := r.used &^ r.op.Params
	if unsupported != 0 {
		return nil, fmt.Errorf("%w: %s does not accept %s", ErrUnsupportedParameter, r.op.Name, unsupported)
	}

	wire := &WireRequest{
		Operation: r.op.Name,
		Method:    r.op.Method,
		URL:       target,
		Headers:   make(http.Header),
		Accept:    r.op.Accept,
	}

	if r.clientRequestID != nil {
		wire.Headers.Set(constants.HeaderClientRequestID, *r.clientRequestID)
	}

	if withBody {
		err := r.encodeBody(wire)
		if err != nil {
			return nil, err
		}
	}

	raw, err := r.executor.Execute(ctx, wire)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.op.Name, err)
	}

	return &Response[T]{raw: raw, kind: r.op.Response}, nil
}

func (r *Request[T]) encodeBody(wire *WireRequest) error {
	switch r.op.Body {
	case BodyNone:
		if r.hasBody {
			return fmt.Errorf("%w: %s", ErrUnexpectedBody, r.op.Name)
		}

		return nil
	case BodyJSON:
		if !r.hasBody || isNil(r.body) {
			return fmt.Errorf("%w: %s", ErrBodyRequired, r.op.Name)
		}

		data, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("encoding %s body: %w", r.op.Name, err)
		}

		wire.Body = data
		wire.ContentType = constants.ContentTypeJSON

		return nil
	case BodyText:
		if !r.hasBody || isNil(r.body) {
			return fmt.Errorf("%w: %s", ErrBodyRequired, r.op.Name)
		}

		switch content := r.body.(type) {
		case string:
			wire.Body = []byte(content)
		case []byte:
			wire.Body = content
		default:
			return fmt.Errorf("%w: %s expects text content, got %T", ErrUnexpectedBody, r.op.Name, r.body)
		}

		wire.ContentType = r.op.ContentType

		return nil
	}

	return nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
