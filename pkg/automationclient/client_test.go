package automationclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/azure-automation/pkg/automation"
	"github.com/fivetwenty-io/azure-automation/pkg/automationclient"
)

type fakeCredential struct {
	mu     sync.Mutex
	scopes [][]string
}

func (f *fakeCredential) GetToken(_ context.Context, options policy.TokenRequestOptions) (azcore.AccessToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.scopes = append(f.scopes, options.Scopes)

	return azcore.AccessToken{Token: "credential-token", ExpiresOn: time.Now().Add(time.Hour)}, nil
}

func accountServer(t *testing.T, wantAuth string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, wantAuth, request.Header.Get("Authorization"))
		assert.Equal(t, "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Automation/automationAccounts/acct", request.URL.Path)
		_, _ = writer.Write([]byte(`{"name":"acct","location":"westeurope"}`))
	}))
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		client, err := automationclient.New(nil)
		require.ErrorIs(t, err, automation.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("default endpoint", func(t *testing.T) {
		t.Parallel()

		client, err := automationclient.New(&automation.Config{})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("incomplete client secret", func(t *testing.T) {
		t.Parallel()

		client, err := automationclient.New(&automation.Config{TenantID: "tenant", ClientID: "client"})
		require.ErrorIs(t, err, automationclient.ErrIncompleteClientSecret)
		assert.Nil(t, client)
	})

	t.Run("credential wins over access token", func(t *testing.T) {
		t.Parallel()

		server := accountServer(t, "Bearer credential-token")
		defer server.Close()

		credential := &fakeCredential{}

		client, err := automationclient.New(&automation.Config{
			Endpoint:    server.URL,
			Credential:  credential,
			AccessToken: "static-token",
		})
		require.NoError(t, err)

		account, err := client.AutomationAccounts().Get("sub", "rg", "acct").Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "westeurope", account.Location)

		require.Len(t, credential.scopes, 1)
		assert.Equal(t, []string{server.URL + "/.default"}, credential.scopes[0])
	})
}

func TestNewWithEndpoint(t *testing.T) {
	t.Parallel()

	server := accountServer(t, "")
	defer server.Close()

	client, err := automationclient.NewWithEndpoint(server.URL)
	require.NoError(t, err)

	_, err = client.AutomationAccounts().Get("sub", "rg", "acct").Send(context.Background())
	require.NoError(t, err)
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	server := accountServer(t, "Bearer test-token")
	defer server.Close()

	client, err := automationclient.NewWithToken(server.URL, "test-token")
	require.NoError(t, err)

	_, err = client.AutomationAccounts().Get("sub", "rg", "acct").Send(context.Background())
	require.NoError(t, err)

	_, err = automationclient.NewWithToken(server.URL, "")
	require.ErrorIs(t, err, automation.ErrTokenRequired)
}

func TestNewWithCredential(t *testing.T) {
	t.Parallel()

	client, err := automationclient.NewWithCredential("https://management.azure.com", &fakeCredential{})
	require.NoError(t, err)
	assert.NotNil(t, client)

	_, err = automationclient.NewWithCredential("https://management.azure.com", nil)
	require.ErrorIs(t, err, automation.ErrCredentialRequired)
}

func TestNewWithClientSecret(t *testing.T) {
	t.Parallel()

	client, err := automationclient.NewWithClientSecret("https://management.azure.com", "tenant", "client-id", "secret")
	require.NoError(t, err)
	assert.NotNil(t, client)
}
