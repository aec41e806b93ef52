package auth

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

// CredentialTokenManager requests a token from an azcore.TokenCredential on
// every call. It keeps no cache of its own; azidentity credentials cache
// internally.
type CredentialTokenManager struct {
	credential azcore.TokenCredential
	scopes     []string
}

// NewCredentialTokenManager wraps credential. scopes must not be empty;
// use DefaultScopes for the management endpoint.
func NewCredentialTokenManager(credential azcore.TokenCredential, scopes []string) *CredentialTokenManager {
	return &CredentialTokenManager{
		credential: credential,
		scopes:     scopes,
	}
}

// Scopes returns the scopes tokens are requested for.
func (m *CredentialTokenManager) Scopes() []string {
	return m.scopes
}

// GetToken implements TokenManager.
func (m *CredentialTokenManager) GetToken(ctx context.Context) (string, error) {
	token, err := m.Token(ctx)
	if err != nil {
		return "", err
	}

	return token.AccessToken, nil
}

// Token returns the token together with its expiry.
func (m *CredentialTokenManager) Token(ctx context.Context) (*Token, error) {
	if m.credential == nil {
		return nil, ErrNoCredential
	}

	accessToken, err := m.credential.GetToken(ctx, policy.TokenRequestOptions{Scopes: m.scopes})
	if err != nil {
		return nil, fmt.Errorf("acquiring token for %v: %w", m.scopes, err)
	}

	token := &Token{
		AccessToken: accessToken.Token,
		ExpiresAt:   accessToken.ExpiresOn,
	}

	if token.AccessToken == "" {
		return nil, ErrEmptyToken
	}

	return token, nil
}
