package auth

import (
	"context"
	"errors"
	"time"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrEmptyToken         = errors.New("credential returned an empty token")
	ErrNoCredential       = errors.New("no credential configured")
	ErrStaticTokenMissing = errors.New("static token is empty")
)

// TokenManager supplies the bearer token attached to each request.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// Token is an access token and its expiry.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Valid reports whether the token is present and not about to expire.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(constants.TokenExpiryBuffer).Before(t.ExpiresAt)
}

// DefaultScopes returns the token scope for a management endpoint.
func DefaultScopes(endpoint string) []string {
	for len(endpoint) > 0 && endpoint[len(endpoint)-1] == '/' {
		endpoint = endpoint[:len(endpoint)-1]
	}

	return []string{endpoint + constants.DefaultScopeSuffix}
}

// StaticTokenManager always returns the same token.
type StaticTokenManager struct {
	token string
}

// NewStaticTokenManager creates a manager for a pre-acquired token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken implements TokenManager.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	if m.token == "" {
		return "", ErrStaticTokenMissing
	}

	return m.token, nil
}
