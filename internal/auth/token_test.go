package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/fivetwenty-io/azure-automation/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_Valid(t *testing.T) {
	t.Parallel()

	tests := getTokenValidityTestCases()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.token.Valid())
		})
	}
}

func getTokenValidityTestCases() []struct {
	name     string
	token    *auth.Token
	expected bool
} {
	return []struct {
		name     string
		token    *auth.Token
		expected bool
	}{
		{
			name:     "nil token",
			token:    nil,
			expected: false,
		},
		{
			name: "empty access token",
			token: &auth.Token{
				AccessToken: "",
			},
			expected: false,
		},
		{
			name: "valid token without expiry",
			token: &auth.Token{
				AccessToken: "test-token",
			},
			expected: true,
		},
		{
			name: "valid token with future expiry",
			token: &auth.Token{
				AccessToken: "test-token",
				ExpiresAt:   time.Now().Add(1 * time.Hour),
			},
			expected: true,
		},
		{
			name: "expired token",
			token: &auth.Token{
				AccessToken: "test-token",
				ExpiresAt:   time.Now().Add(-1 * time.Hour),
			},
			expected: false,
		},
		{
			name: "token expiring within buffer",
			token: &auth.Token{
				AccessToken: "test-token",
				ExpiresAt:   time.Now().Add(15 * time.Second),
			},
			expected: false,
		},
		{
			name: "token expiring just outside buffer",
			token: &auth.Token{
				AccessToken: "test-token",
				ExpiresAt:   time.Now().Add(35 * time.Second),
			},
			expected: true,
		},
	}
}

func TestDefaultScopes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		expected []string
	}{
		{
			name:     "public cloud",
			endpoint: "https://management.azure.com",
			expected: []string{"https://management.azure.com/.default"},
		},
		{
			name:     "trailing slash",
			endpoint: "https://management.chinacloudapi.cn/",
			expected: []string{"https://management.chinacloudapi.cn/.default"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, auth.DefaultScopes(tt.endpoint))
		})
	}
}

func TestStaticTokenManager(t *testing.T) {
	t.Parallel()

	t.Run("returns the token", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewStaticTokenManager("static-token")

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "static-token", token)
	})

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewStaticTokenManager("")

		_, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, auth.ErrStaticTokenMissing)
	})
}
