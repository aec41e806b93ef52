package auth_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/fivetwenty-io/azure-automation/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errCredentialUnavailable = errors.New("credential unavailable")

// fakeCredential records every token request.
type fakeCredential struct {
	mu     sync.Mutex
	calls  int
	scopes [][]string
	token  string
	err    error
}

func (f *fakeCredential) GetToken(ctx context.Context, options policy.TokenRequestOptions) (azcore.AccessToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.scopes = append(f.scopes, options.Scopes)

	if f.err != nil {
		return azcore.AccessToken{}, f.err
	}

	return azcore.AccessToken{Token: f.token, ExpiresOn: time.Now().Add(time.Hour)}, nil
}

func TestCredentialTokenManager_GetToken(t *testing.T) {
	t.Parallel()

	t.Run("requests scopes on every call", func(t *testing.T) {
		t.Parallel()

		credential := &fakeCredential{token: "azure-token"}
		scopes := auth.DefaultScopes("https://management.azure.com")
		manager := auth.NewCredentialTokenManager(credential, scopes)

		for range 3 {
			token, err := manager.GetToken(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "azure-token", token)
		}

		assert.Equal(t, 3, credential.calls)
		assert.Equal(t, []string{"https://management.azure.com/.default"}, credential.scopes[0])
		assert.Equal(t, scopes, manager.Scopes())
	})

	t.Run("credential error is wrapped", func(t *testing.T) {
		t.Parallel()

		credential := &fakeCredential{err: errCredentialUnavailable}
		manager := auth.NewCredentialTokenManager(credential, []string{"scope/.default"})

		_, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, errCredentialUnavailable)
	})

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewCredentialTokenManager(&fakeCredential{}, []string{"scope/.default"})

		_, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, auth.ErrEmptyToken)
	})

	t.Run("nil credential", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewCredentialTokenManager(nil, nil)

		_, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, auth.ErrNoCredential)
	})

	t.Run("token carries expiry", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewCredentialTokenManager(&fakeCredential{token: "azure-token"}, []string{"scope/.default"})

		token, err := manager.Token(context.Background())
		require.NoError(t, err)
		assert.True(t, token.Valid())
	})
}
