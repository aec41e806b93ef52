package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/azure-automation/cmd/automation/commands"
	"github.com/fivetwenty-io/azure-automation/internal/client"
	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

const (
	scopedConfig = "subscription: sub\nresource-group: rg\naccount: acct\n"
	accountPath  = "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Automation/automationAccounts/acct"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), constants.ConfigFilePerm))

	return path
}

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the root command with a config file and bearer token against
// endpoint. Later args override the defaults.
func run(t *testing.T, config, endpoint string, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer

	root := commands.NewRootCommand("1.2.3", "abc123", "2026-01-02")
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	base := []string{
		"--config", writeConfig(t, config),
		"--token", "test-token",
		"--output", "json",
		"--retry-max", "1",
		"--retry-wait", "1ms",
	}
	if endpoint != "" {
		base = append(base, "--endpoint", endpoint)
	}

	root.SetArgs(append(base, args...))

	err := root.ExecuteContext(context.Background())

	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func decodeNames(t *testing.T, output string) []string {
	t.Helper()

	var items []struct {
		Name string `json:"name"`
	}

	require.NoError(t, json.Unmarshal([]byte(output), &items))

	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}

	return out
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	root := commands.NewRootCommand("1.2.3", "abc123", "2026-01-02")
	assert.Equal(t, "azauto", root.Use)
	assert.Equal(t, "1.2.3", root.Version)

	for _, name := range []string{"version", "config", "accounts", "runbooks", "jobs", "dsc-nodes", "schedules", "variables", "webhooks", "operations"} {
		assert.NotNil(t, findSubcommand(root, name), "command %s should exist", name)
	}

	for _, flag := range []string{"config", "subscription", "resource-group", "account", "endpoint", "tenant-id", "client-id", "client-secret", "token", "output", "verbose"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "flag %s should exist", flag)
	}

	dscList := findSubcommand(findSubcommand(root, "dsc-nodes"), "list")
	require.NotNil(t, dscList)

	for _, flag := range []string{"filter", "skip", "top", "inline-count"} {
		assert.NotNil(t, dscList.Flags().Lookup(flag), "flag %s should exist", flag)
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		res := run(t, "", "", "version")
		require.NoError(t, res.err)

		var info map[string]string
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &info))
		assert.Equal(t, map[string]string{"version": "1.2.3", "commit": "abc123", "built": "2026-01-02"}, info)
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		res := run(t, "", "", "version", "--output", "yaml")
		require.NoError(t, res.err)

		var info map[string]string
		require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &info))
		assert.Equal(t, "abc123", info["commit"])
	})

	t.Run("table", func(t *testing.T) {
		t.Parallel()

		res := run(t, "", "", "version", "--output", "table")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "1.2.3")
		assert.Contains(t, res.stdout, "2026-01-02")
	})

	t.Run("unsupported", func(t *testing.T) {
		t.Parallel()

		res := run(t, "", "", "version", "--output", "xml")
		require.ErrorIs(t, res.err, constants.ErrUnsupportedOutput)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestRunbooksCommands(t *testing.T) {
	t.Parallel()

	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.True(t, strings.HasPrefix(r.Header.Get("User-Agent"), "azauto/1.2.3"))

		switch r.URL.Path {
		case accountPath + "/runbooks":
			_, _ = fmt.Fprintf(w, `{"value":[{"name":"a"},{"name":"b"}],"nextLink":"%s/page2?$skiptoken=2"}`, server.URL)
		case "/page2":
			assert.Equal(t, "$skiptoken=2&api-version=2018-06-30", r.URL.RawQuery)
			_, _ = w.Write([]byte(`{"value":[{"name":"c"}]}`))
		case accountPath + "/runbooks/hello":
			_, _ = w.Write([]byte(`{"name":"hello","location":"westeurope","properties":{"runbookType":"PowerShell","state":"Published"}}`))
		case accountPath + "/runbooks/hello/content":
			w.Header().Set("Content-Type", "text/powershell")
			_, _ = w.Write([]byte("Write-Output 'hi'\n"))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"code":"NotFound"}`))
		}
	}))
	t.Cleanup(server.Close)

	t.Run("list pages through every result", func(t *testing.T) {
		t.Parallel()

		res := run(t, scopedConfig, server.URL, "runbooks", "list")
		require.NoError(t, res.err)
		assert.Equal(t, []string{"a", "b", "c"}, decodeNames(t, res.stdout))
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		res := run(t, scopedConfig, server.URL, "runbooks", "get", "hello")
		require.NoError(t, res.err)

		var runbook automation.Runbook
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &runbook))
		assert.Equal(t, "hello", runbook.Name)
		require.NotNil(t, runbook.Properties)
		assert.Equal(t, "Published", runbook.Properties.State)
	})

	t.Run("get as table", func(t *testing.T) {
		t.Parallel()

		res := run(t, scopedConfig, server.URL, "runbooks", "get", "hello", "-o", "table")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "PowerShell")
		assert.Contains(t, res.stdout, constants.NotAvailable)
	})

	t.Run("content", func(t *testing.T) {
		t.Parallel()

		res := run(t, scopedConfig, server.URL, "runbooks", "content", "hello")
		require.NoError(t, res.err)
		assert.Equal(t, "Write-Output 'hi'\n", res.stdout)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		res := run(t, scopedConfig, server.URL, "runbooks", "get", "missing")
		require.Error(t, res.err)
		assert.True(t, automation.IsNotFound(res.err))
		assert.Contains(t, res.err.Error(), "failed to get runbook 'missing'")
	})

	t.Run("missing account", func(t *testing.T) {
		t.Parallel()

		res := run(t, "subscription: sub\nresource-group: rg\n", server.URL, "runbooks", "list")
		require.ErrorIs(t, res.err, constants.ErrNoAccount)
	})
}

func TestAccountsCommands(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "api-version=2020-01-13-preview", r.URL.RawQuery)

		switch r.URL.Path {
		case "/subscriptions/sub/providers/Microsoft.Automation/automationAccounts":
			_, _ = w.Write([]byte(`{"value":[{"name":"one"},{"name":"two"}]}`))
		case "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Automation/automationAccounts":
			_, _ = w.Write([]byte(`{"value":[{"name":"acct"}]}`))
		case accountPath, "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Automation/automationAccounts/other":
			_, _ = fmt.Fprintf(w, `{"name":"%s","properties":{"sku":{"name":"Basic"},"state":"Ok"}}`, filepath.Base(r.URL.Path))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "list by resource group", args: []string{"accounts", "list"}, want: []string{"acct"}},
		{name: "list by subscription", args: []string{"accounts", "list", "--resource-group", ""}, want: []string{"one", "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := run(t, scopedConfig, server.URL, tt.args...)
			require.NoError(t, res.err)
			assert.Equal(t, tt.want, decodeNames(t, res.stdout))
		})
	}

	t.Run("get defaults to configured account", func(t *testing.T) {
		t.Parallel()

		res := run(t, scopedConfig, server.URL, "accounts", "get")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, `"name": "acct"`)
	})

	t.Run("get named account", func(t *testing.T) {
		t.Parallel()

		res := run(t, scopedConfig, server.URL, "accounts", "get", "other", "-o", "table")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "other")
		assert.Contains(t, res.stdout, "Basic")
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestJobsCommands(t *testing.T) {
	t.Parallel()

	type seen struct {
		query     string
		requestID string
	}

	requests := make(chan seen, 16)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests <- seen{query: r.URL.RawQuery, requestID: r.Header.Get(constants.HeaderClientRequestID)}

		switch r.URL.Path {
		case accountPath + "/jobs":
			_, _ = w.Write([]byte(`{"value":[{"name":"job-1","properties":{"status":"Failed","runbook":{"name":"hello"}}}]}`))
		case accountPath + "/jobs/job-1":
			_, _ = w.Write([]byte(`{"name":"job-1","properties":{"jobId":"7f1c","status":"Completed"}}`))
		case accountPath + "/jobs/job-1/output":
			_, _ = w.Write([]byte("hello world"))
		case accountPath + "/jobs/job-1/runbookContent":
			_, _ = w.Write([]byte("Write-Output 'hello world'"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	t.Run("list with filter and request id", func(t *testing.T) {
		res := run(t, scopedConfig, server.URL, "jobs", "list", "--filter", "properties/status eq 'Failed'", "--request-id", "req-1")
		require.NoError(t, res.err)
		assert.Equal(t, []string{"job-1"}, decodeNames(t, res.stdout))

		got := <-requests
		assert.Equal(t, "api-version=2019-06-01&$filter=properties%2Fstatus%20eq%20%27Failed%27", got.query)
		assert.Equal(t, "req-1", got.requestID)
	})

	t.Run("list with generated request id", func(t *testing.T) {
		res := run(t, scopedConfig, server.URL, "jobs", "list", "--new-request-id")
		require.NoError(t, res.err)

		got := <-requests
		assert.Equal(t, "api-version=2019-06-01", got.query)

		_, err := uuid.Parse(got.requestID)
		require.NoError(t, err)
		assert.Contains(t, res.stderr, got.requestID)
	})

	t.Run("get", func(t *testing.T) {
		res := run(t, scopedConfig, server.URL, "jobs", "get", "job-1", "-o", "table")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "7f1c")
		assert.Contains(t, res.stdout, "Completed")

		got := <-requests
		assert.Empty(t, got.requestID)
	})

	t.Run("output", func(t *testing.T) {
		res := run(t, scopedConfig, server.URL, "jobs", "output", "job-1")
		require.NoError(t, res.err)
		assert.Equal(t, "hello world", res.stdout)
		<-requests
	})

	t.Run("runbook content", func(t *testing.T) {
		res := run(t, scopedConfig, server.URL, "jobs", "output", "job-1", "--runbook-content")
		require.NoError(t, res.err)
		assert.Equal(t, "Write-Output 'hello world'", res.stdout)
		<-requests
	})
}

func TestDscNodesList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		wantQuery string
	}{
		{
			name:      "no paging parameters",
			wantQuery: "api-version=2020-01-13-preview",
		},
		{
			name:      "filter skip and top",
			args:      []string{"--filter", "Name eq 'foo'", "--skip", "10", "--top", "5"},
			wantQuery: "api-version=2020-01-13-preview&$filter=Name%20eq%20%27foo%27&$skip=10&$top=5",
		},
		{
			name:      "explicit zero skip",
			args:      []string{"--skip", "0", "--inline-count", "allpages"},
			wantQuery: "api-version=2020-01-13-preview&$skip=0&$inlinecount=allpages",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, accountPath+"/nodes", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				_, _ = w.Write([]byte(`{"value":[{"name":"node-1","properties":{"status":"Compliant","nodeConfiguration":{"name":"web.localhost"}}}]}`))
			}))
			t.Cleanup(server.Close)

			res := run(t, scopedConfig, server.URL, append([]string{"dsc-nodes", "list", "-o", "table"}, tt.args...)...)
			require.NoError(t, res.err)
			assert.Contains(t, res.stdout, "node-1")
			assert.Contains(t, res.stdout, "web.localhost")
		})
	}
}

func TestAssetCommands(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case accountPath + "/schedules":
			_, _ = w.Write([]byte(`{"value":[{"name":"nightly","properties":{"frequency":"Day","interval":1,"isEnabled":true}}]}`))
		case accountPath + "/variables":
			_, _ = w.Write([]byte(`{"value":[{"name":"plain","properties":{"value":"\"visible\""}},{"name":"secret","properties":{"isEncrypted":true}}]}`))
		case accountPath + "/webhooks":
			assert.Equal(t, "api-version=2015-10-31&$filter=properties%2FisEnabled%20eq%20true", r.URL.RawQuery)
			_, _ = w.Write([]byte(`{"value":[{"name":"hook","properties":{"isEnabled":true,"runbook":{"name":"hello"}}}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	t.Run("schedules", func(t *testing.T) {
		t.Parallel()

		res := run(t, scopedConfig, server.URL, "schedules", "list", "-o", "table")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "nightly")
		assert.Contains(t, res.stdout, "Day")
	})

	t.Run("variables mask encrypted values", func(t *testing.T) {
		t.Parallel()

		res := run(t, scopedConfig, server.URL, "variables", "list", "-o", "table")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, `"visible"`)
		assert.Contains(t, res.stdout, constants.Masked)
	})

	t.Run("webhooks", func(t *testing.T) {
		t.Parallel()

		res := run(t, scopedConfig, server.URL, "webhooks", "list", "--filter", "properties/isEnabled eq true")
		require.NoError(t, res.err)
		assert.Equal(t, []string{"hook"}, decodeNames(t, res.stdout))
	})
}

func TestOperationsList(t *testing.T) {
	t.Parallel()

	t.Run("service operations", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/providers/Microsoft.Automation/operations", r.URL.Path)
			_, _ = w.Write([]byte(`{"value":[{"name":"Microsoft.Automation/automationAccounts/read","display":{"resource":"Automation Account","operation":"Get"}}]}`))
		}))
		t.Cleanup(server.Close)

		res := run(t, "", server.URL, "operations", "list")
		require.NoError(t, res.err)
		assert.Equal(t, []string{"Microsoft.Automation/automationAccounts/read"}, decodeNames(t, res.stdout))
	})

	t.Run("catalogue sends nothing", func(t *testing.T) {
		t.Parallel()

		res := run(t, "", "http://127.0.0.1:0", "operations", "list", "--catalogue")
		require.NoError(t, res.err)

		var entries []map[string]string
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &entries))
		require.Len(t, entries, len(client.Catalogue()))
		assert.Equal(t, "AutomationAccounts.Get", entries[0]["name"])
	})
}

func TestConfigCommands(t *testing.T) {
	t.Parallel()

	t.Run("show masks secrets", func(t *testing.T) {
		t.Parallel()

		res := run(t, scopedConfig, "", "config", "show", "--client-secret", "hunter2")
		require.NoError(t, res.err)
		assert.NotContains(t, res.stdout, "hunter2")
		assert.NotContains(t, res.stdout, "test-token")

		var shown commands.Config
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &shown))
		assert.Equal(t, constants.Masked, shown.ClientSecret)
		assert.Equal(t, constants.Masked, shown.Token)
		assert.Equal(t, constants.DefaultEndpoint, shown.Endpoint)
		assert.Equal(t, "acct", shown.Account)
	})

	t.Run("init writes scope without secrets", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "config.yml")

		res := run(t, "", "", "config", "init", "--path", path, "-s", "sub", "-g", "rg", "-A", "acct", "--client-secret", "hunter2")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "hunter2")
		assert.NotContains(t, string(data), "test-token")

		var written commands.Config
		require.NoError(t, yaml.Unmarshal(data, &written))
		assert.Equal(t, "sub", written.Subscription)
		assert.Equal(t, "rg", written.ResourceGroup)
		assert.Equal(t, "acct", written.Account)
	})

	t.Run("missing config file", func(t *testing.T) {
		t.Parallel()

		root := commands.NewRootCommand("1.2.3", "abc123", "2026-01-02")
		root.SetOut(&bytes.Buffer{})
		root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "absent.yml"), "config", "show"})
		require.Error(t, root.Execute())
	})
}

func TestConfigPrecedence(t *testing.T) {
	t.Setenv("AZAUTO_ACCOUNT", "from-env")
	t.Setenv("AZAUTO_RESOURCE_GROUP", "env-rg")

	var (
		mu    sync.Mutex
		paths []string
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()

		_, _ = w.Write([]byte(`{"value":[]}`))
	}))
	t.Cleanup(server.Close)

	res := run(t, scopedConfig, server.URL, "runbooks", "list")
	require.NoError(t, res.err)

	res = run(t, scopedConfig, server.URL, "runbooks", "list", "--account", "from-flag")
	require.NoError(t, res.err)

	mu.Lock()
	defer mu.Unlock()

	assert.Equal(t, []string{
		"/subscriptions/sub/resourceGroups/env-rg/providers/Microsoft.Automation/automationAccounts/from-env/runbooks",
		"/subscriptions/sub/resourceGroups/env-rg/providers/Microsoft.Automation/automationAccounts/from-flag/runbooks",
	}, paths)
}

func TestRetryFlags(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	res := run(t, scopedConfig, server.URL, "runbooks", "list")
	require.Error(t, res.err)

	var responseErr *automation.ResponseError
	require.ErrorAs(t, res.err, &responseErr)
	assert.Equal(t, http.StatusServiceUnavailable, responseErr.StatusCode)
	assert.Equal(t, int32(2), calls.Load())

	res = run(t, scopedConfig, "", "config", "show")
	require.NoError(t, res.err)

	var shown commands.Config
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &shown))
	assert.Equal(t, 1, shown.RetryMax)
	assert.Equal(t, time.Millisecond, shown.RetryWait)
}
