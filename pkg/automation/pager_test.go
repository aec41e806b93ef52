package automation_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

type widgetPage struct {
	Value    []widget `json:"value"`
	NextLink string   `json:"nextLink,omitempty"`
}

func (p widgetPage) NextPageLink() string { return p.NextLink }

func (p widgetPage) Values() []widget { return p.Value }

var listByQuery = &automation.Operation{
	Name:       "Widgets.ListByQuery",
	Method:     http.MethodPost,
	Path:       "/accounts/{accountName}/widgets/query",
	APIVersion: "2019-06-01",
	Body:       automation.BodyJSON,
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestPager(t *testing.T) {
	t.Parallel()

	t.Run("follows links without resending the filter", func(t *testing.T) {
		t.Parallel()

		executor := &fakeExecutor{responses: []*automation.RawResponse{
			jsonResponse(`{"value":[{"name":"a"}],"nextLink":"https://host/accounts/acct/widgets?$skiptoken=1"}`),
			jsonResponse(`{"value":[{"name":"b"}],"nextLink":"https://host/accounts/acct/widgets?api-version=2020-01-13-preview&$skiptoken=2"}`),
			jsonResponse(`{"value":[{"name":"c"}]}`),
		}}

		list := automation.NewListRequest[widgetPage, widget](executor, listWidgets, "acct").Filter("x")

		items, err := list.All(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []widget{{Name: "a"}, {Name: "b"}, {Name: "c"}}, items)

		require.Len(t, executor.requests, 3)
		assert.Equal(t, "/accounts/acct/widgets?api-version=2020-01-13-preview&$filter=x", executor.requests[0].URL)
		assert.Equal(t, "https://host/accounts/acct/widgets?$skiptoken=1&api-version=2020-01-13-preview", executor.requests[1].URL)
		assert.Equal(t, "https://host/accounts/acct/widgets?api-version=2020-01-13-preview&$skiptoken=2", executor.requests[2].URL)
	})

	t.Run("body is only sent with the first page", func(t *testing.T) {
		t.Parallel()

		executor := &fakeExecutor{responses: []*automation.RawResponse{
			jsonResponse(`{"value":[{"name":"a"}],"nextLink":"https://host/next"}`),
			jsonResponse(`{"value":[{"name":"b"}]}`),
		}}

		list := automation.NewListRequest[widgetPage, widget](executor, listByQuery, "acct").
			WithBody(map[string]string{"query": "all"})

		items, err := list.All(context.Background())
		require.NoError(t, err)
		assert.Len(t, items, 2)

		require.Len(t, executor.requests, 2)
		assert.JSONEq(t, `{"query":"all"}`, string(executor.requests[0].Body))
		assert.Nil(t, executor.requests[1].Body)
		assert.Equal(t, "https://host/next?api-version=2019-06-01", executor.requests[1].URL)
	})

	t.Run("pager state", func(t *testing.T) {
		t.Parallel()

		executor := &fakeExecutor{responses: []*automation.RawResponse{
			jsonResponse(`{"value":[]}`),
		}}

		pager := automation.NewListRequest[widgetPage, widget](executor, listWidgets, "acct").Pager()
		assert.True(t, pager.More())

		page, err := pager.NextPage(context.Background())
		require.NoError(t, err)
		assert.Empty(t, page.Value)
		assert.False(t, pager.More())

		_, err = pager.NextPage(context.Background())
		require.ErrorIs(t, err, automation.ErrNoMorePages)
	})

	t.Run("invalid next link", func(t *testing.T) {
		t.Parallel()

		executor := &fakeExecutor{responses: []*automation.RawResponse{
			jsonResponse(`{"value":[{"name":"a"}],"nextLink":"://bad"}`),
		}}

		items, err := automation.NewListRequest[widgetPage, widget](executor, listWidgets, "acct").All(context.Background())
		require.ErrorIs(t, err, automation.ErrInvalidNextLink)
		assert.Len(t, items, 1)
	})

	t.Run("error stops iteration", func(t *testing.T) {
		t.Parallel()

		executor := &fakeExecutor{err: errTransport}

		count := 0

		for page, err := range automation.NewListRequest[widgetPage, widget](executor, listWidgets, "acct").Pages(context.Background()) {
			count++

			assert.Nil(t, page)
			require.ErrorIs(t, err, errTransport)
		}

		assert.Equal(t, 1, count)
	})
}
