package client_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/azure-automation/internal/client"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

const (
	testSubscription = "sub"
	testGroup        = "rg"
	testAccount      = "acct"
	testAccountPath  = "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Automation/automationAccounts/acct"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		c, err := client.New(nil, nil)
		require.ErrorIs(t, err, automation.ErrConfigRequired)
		assert.Nil(t, c)
	})

	t.Run("nil executor", func(t *testing.T) {
		t.Parallel()

		c, err := client.NewWithExecutor(nil)
		require.ErrorIs(t, err, client.ErrExecutorRequired)
		assert.Nil(t, c)
	})

	t.Run("unauthenticated client", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"name":"acct"}`))
		}))
		defer server.Close()

		c, err := client.New(&automation.Config{Endpoint: server.URL}, nil)
		require.NoError(t, err)
		require.NotNil(t, c.Executor())

		account, err := c.AutomationAccounts().Get(testSubscription, testGroup, testAccount).Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "acct", account.Name)
	})
}

func TestDscNodes_ListQuery(t *testing.T) {
	t.Parallel()

	const want = "api-version=2020-01-13-preview&$filter=Name%20eq%20%27foo%27&$skip=10&$top=5"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testAccountPath+"/nodes", r.URL.Path)
		assert.Equal(t, want, r.URL.RawQuery)
		assert.NotContains(t, r.URL.RawQuery, "$inlinecount")
		_, _ = w.Write([]byte(`{"value":[{"name":"foo"}]}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	list := c.DscNodes().ListByAutomationAccount(testSubscription, testGroup, testAccount).
		Filter("Name eq 'foo'").
		Skip(10).
		Top(5)

	target, err := list.URL()
	require.NoError(t, err)
	assert.Equal(t, testAccountPath+"/nodes?"+want, target)

	page, err := list.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Value, 1)
	assert.Equal(t, "foo", page.Value[0].Name)
}

// pagedServer serves three runbook pages. The second link already carries
// api-version, the third does not.
func pagedServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()

	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, http.MethodGet, r.Method)

		switch r.URL.Path {
		case testAccountPath + "/runbooks":
			assert.Equal(t, "api-version=2018-06-30", r.URL.RawQuery)
			_, _ = fmt.Fprintf(w, `{"value":[{"name":"a"},{"name":"b"}],"nextLink":"%s/page2?api-version=2018-06-30&$skiptoken=2"}`, server.URL)
		case "/page2":
			assert.Equal(t, "api-version=2018-06-30&$skiptoken=2", r.URL.RawQuery)
			_, _ = fmt.Fprintf(w, `{"value":[{"name":"c"}],"nextLink":"%s/page3?$skiptoken=3"}`, server.URL)
		case "/page3":
			assert.Equal(t, "$skiptoken=3&api-version=2018-06-30", r.URL.RawQuery)
			_, _ = w.Write([]byte(`{"value":[{"name":"d"}]}`))
		default:
			t.Errorf("unexpected request %s", r.URL)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	return server
}

func names(runbooks []automation.Runbook) []string {
	out := make([]string, 0, len(runbooks))
	for _, runbook := range runbooks {
		out = append(out, runbook.Name)
	}

	return out
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestRunbooks_Pagination(t *testing.T) {
	t.Parallel()

	t.Run("all pages", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32

		server := pagedServer(t, &hits)
		defer server.Close()

		c := newTestClient(t, server.URL)

		items, err := c.Runbooks().ListByAutomationAccount(testSubscription, testGroup, testAccount).All(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c", "d"}, names(items))
		assert.Equal(t, int32(3), hits.Load())
	})

	t.Run("pages restart on every range", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32

		server := pagedServer(t, &hits)
		defer server.Close()

		c := newTestClient(t, server.URL)
		list := c.Runbooks().ListByAutomationAccount(testSubscription, testGroup, testAccount)

		for range 2 {
			count := 0

			for page, err := range list.Pages(context.Background()) {
				require.NoError(t, err)
				assert.NotEmpty(t, page.Value)

				count++
			}

			assert.Equal(t, 3, count)
		}

		assert.Equal(t, int32(6), hits.Load())
	})

	t.Run("stop early", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32

		server := pagedServer(t, &hits)
		defer server.Close()

		c := newTestClient(t, server.URL)

		for page, err := range c.Runbooks().ListByAutomationAccount(testSubscription, testGroup, testAccount).Pages(context.Background()) {
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b"}, names(page.Value))

			break
		}

		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("pager", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32

		server := pagedServer(t, &hits)
		defer server.Close()

		c := newTestClient(t, server.URL)
		pager := c.Runbooks().ListByAutomationAccount(testSubscription, testGroup, testAccount).Pager()

		var got []string

		for pager.More() {
			page, err := pager.NextPage(context.Background())
			require.NoError(t, err)

			got = append(got, names(page.Value)...)
		}

		assert.Equal(t, []string{"a", "b", "c", "d"}, got)

		_, err := pager.NextPage(context.Background())
		require.ErrorIs(t, err, automation.ErrNoMorePages)
	})

	t.Run("first page only", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32

		server := pagedServer(t, &hits)
		defer server.Close()

		c := newTestClient(t, server.URL)

		page, err := c.Runbooks().ListByAutomationAccount(testSubscription, testGroup, testAccount).Execute(context.Background())
		require.NoError(t, err)
		assert.Len(t, page.Value, 2)
		assert.NotEmpty(t, page.NextLink)
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("error on later page", func(t *testing.T) {
		t.Parallel()

		var server *httptest.Server

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/runbooks") {
				_, _ = fmt.Fprintf(w, `{"value":[{"name":"a"}],"nextLink":"%s/gone"}`, server.URL)

				return
			}

			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		c := newTestClient(t, server.URL)

		items, err := c.Runbooks().ListByAutomationAccount(testSubscription, testGroup, testAccount).All(context.Background())
		require.Error(t, err)
		assert.True(t, automation.IsNotFound(err))
		assert.Equal(t, []string{"a"}, names(items))
	})
}

func TestStatistics_SinglePage(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "api-version=2020-01-13-preview&$filter=counterProperty%20eq%20%27New%27", r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"value":[{"counterProperty":"New","counterValue":2},{"counterProperty":"New","counterValue":3}],"nextLink":"https://example.invalid/next"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	items, err := c.Statistics().ListByAutomationAccount(testSubscription, testGroup, testAccount).
		Filter("counterProperty eq 'New'").
		All(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(3), items[1].CounterValue)
	assert.Equal(t, int32(1), hits.Load())
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestRequest_Validation(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	ctx := context.Background()

	t.Run("unsupported parameter", func(t *testing.T) {
		_, err := c.Runbooks().ListByAutomationAccount(testSubscription, testGroup, testAccount).Filter("x").Send(ctx)
		require.ErrorIs(t, err, automation.ErrUnsupportedParameter)
		assert.Contains(t, err.Error(), "$filter")
	})

	t.Run("unsupported request id", func(t *testing.T) {
		_, err := c.Runbooks().Get(testSubscription, testGroup, testAccount, "r").ClientRequestID("id").Send(ctx)
		require.ErrorIs(t, err, automation.ErrUnsupportedParameter)
	})

	t.Run("body required", func(t *testing.T) {
		_, err := c.Runbooks().CreateOrUpdate(testSubscription, testGroup, testAccount, "r", nil).Send(ctx)
		require.ErrorIs(t, err, automation.ErrBodyRequired)
	})

	t.Run("empty path parameter", func(t *testing.T) {
		_, err := c.Runbooks().Get(testSubscription, testGroup, testAccount, "").Send(ctx)
		require.ErrorIs(t, err, automation.ErrInvalidPath)
	})

	assert.Equal(t, int32(0), hits.Load())
}

func TestRequest_PathEscaping(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testAccountPath+"/runbooks/my%20runbook%2F1", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"name":"my runbook/1"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	runbook, err := c.Runbooks().Get(testSubscription, testGroup, testAccount, "my runbook/1").Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "my runbook/1", runbook.Name)
}

func TestTextResponses(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/content"):
			assert.Equal(t, "text/powershell", r.Header.Get("Accept"))
			w.Header().Set("Content-Type", "text/powershell")
			_, _ = w.Write([]byte("Write-Output hello"))
		case strings.HasSuffix(r.URL.Path, "/generateUri"):
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			_, _ = w.Write([]byte(`"https://s1events.azure-automation.net/webhooks?token=abc"`))
		}
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	ctx := context.Background()

	content, err := c.Runbooks().GetContent(testSubscription, testGroup, testAccount, "r").Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Write-Output hello", *content)

	uri, err := c.Webhooks().GenerateURI(testSubscription, testGroup, testAccount).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://s1events.azure-automation.net/webhooks?token=abc", *uri)
}

func TestResponse_Raw(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("x-ms-request-id", "req-1")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	resp, err := c.Jobs().Stop(testSubscription, testGroup, testAccount, "job").Send(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode())
	assert.Equal(t, "req-1", resp.Header().Get("x-ms-request-id"))

	result, err := resp.Into()
	require.NoError(t, err)
	assert.Equal(t, automation.NoContent{}, *result)
}

func TestResponseErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code":"Conflict"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	_, err := c.Credentials().Delete(testSubscription, testGroup, testAccount, "cred").Send(context.Background())
	require.Error(t, err)
	assert.True(t, automation.IsConflict(err))
	assert.Contains(t, err.Error(), "Credentials.Delete")
	assert.Contains(t, err.Error(), `{"code":"Conflict"}`)
}

func TestCatalogue(t *testing.T) {
	t.Parallel()

	operations := client.Catalogue()
	seen := make(map[string]bool, len(operations))

	for _, op := range operations {
		assert.False(t, seen[op.Name], "duplicate operation %s", op.Name)
		seen[op.Name] = true

		assert.NotEmpty(t, op.APIVersion, op.Name)
		assert.True(t, strings.HasPrefix(op.Path, "/subscriptions/") || strings.HasPrefix(op.Path, "/providers/"), op.Name)

		if op.Body == automation.BodyText {
			assert.NotEmpty(t, op.ContentType, op.Name)
		}
	}
}
