package automation

import (
	"context"
	"iter"
)

// Page is a list result: one page of items and the link to the next page.
// List results without a continuation field in their schema return "" and
// therefore always yield a single page.
type Page[E any] interface {
	NextPageLink() string
	Values() []E
}

// ListRequest is the builder for a pageable list operation.
type ListRequest[P Page[E], E any] struct {
	req *Request[P]
}

// NewListRequest creates a list request for op.
func NewListRequest[P Page[E], E any](executor Executor, op *Operation, pathArgs ...string) *ListRequest[P, E] {
	return &ListRequest[P, E]{req: NewRequest[P](executor, op, pathArgs...)}
}

// WithBody sets the payload of the first request.
func (l *ListRequest[P, E]) WithBody(body any) *ListRequest[P, E] {
	l.req.WithBody(body)

	return l
}

// Filter sets $filter.
func (l *ListRequest[P, E]) Filter(filter string) *ListRequest[P, E] {
	l.req.Filter(filter)

	return l
}

// Skip sets $skip.
func (l *ListRequest[P, E]) Skip(skip int32) *ListRequest[P, E] {
	l.req.Skip(skip)

	return l
}

// Top sets $top.
func (l *ListRequest[P, E]) Top(top int32) *ListRequest[P, E] {
	l.req.Top(top)

	return l
}

// InlineCount sets $inlinecount.
func (l *ListRequest[P, E]) InlineCount(inlineCount string) *ListRequest[P, E] {
	l.req.InlineCount(inlineCount)

	return l
}

// ClientRequestID sets the x-ms-client-request-id header on every page request.
func (l *ListRequest[P, E]) ClientRequestID(id string) *ListRequest[P, E] {
	l.req.ClientRequestID(id)

	return l
}

// Operation returns the descriptor this request was built from.
func (l *ListRequest[P, E]) Operation() *Operation {
	return l.req.Operation()
}

// URL returns the path and query of the first page request.
func (l *ListRequest[P, E]) URL() (string, error) {
	return l.req.URL()
}

// Send fetches the first page only.
func (l *ListRequest[P, E]) Send(ctx context.Context) (*Response[P], error) {
	return l.req.Send(ctx)
}

// Execute fetches and decodes the first page only.
func (l *ListRequest[P, E]) Execute(ctx context.Context) (*P, error) {
	return l.req.Execute(ctx)
}

// Pager returns a new pager positioned before the first page.
func (l *ListRequest[P, E]) Pager() *Pager[P, E] {
	return &Pager[P, E]{req: l.req}
}

// Pages iterates over every page. Each range starts again from the first page.
func (l *ListRequest[P, E]) Pages(ctx context.Context) iter.Seq2[*P, error] {
	return func(yield func(*P, error) bool) {
		pager := l.Pager()

		for pager.More() {
			page, err := pager.NextPage(ctx)
			if err != nil {
				yield(nil, err)

				return
			}

			if !yield(page, nil) {
				return
			}
		}
	}
}

// All fetches every page and concatenates the items in server order.
func (l *ListRequest[P, E]) All(ctx context.Context) ([]E, error) {
	var items []E

	for page, err := range l.Pages(ctx) {
		if err != nil {
			return items, err
		}

		items = append(items, (*page).Values()...)
	}

	return items, nil
}

// Pager walks the pages of a list operation. The first request carries the
// builder's query; later requests follow the continuation link.
type Pager[P Page[E], E any] struct {
	req     *Request[P]
	next    string
	started bool
	done    bool
}

// More reports whether another page can be fetched. It is true before the
// first page.
func (p *Pager[P, E]) More() bool {
	return !p.done
}

// NextPage fetches the next page.
func (p *Pager[P, E]) NextPage(ctx context.Context) (*P, error) {
	if p.done {
		return nil, ErrNoMorePages
	}

	var (
		resp *Response[P]
		err  error
	)

	if !p.started {
		resp, err = p.req.Send(ctx)
	} else {
		resp, err = p.req.sendTo(ctx, p.next)
	}

	if err != nil {
		return nil, err
	}

	page, err := resp.Into()
	if err != nil {
		return nil, err
	}

	p.started = true
	p.next = (*page).NextPageLink()
	p.done = p.next == ""

	return page, nil
}
