// Package automationclient provides the main entry point for creating Azure Automation clients
package automationclient

import (
	"errors"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"github.com/fivetwenty-io/azure-automation/internal/auth"
	"github.com/fivetwenty-io/azure-automation/internal/client"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

// ErrIncompleteClientSecret is returned when only part of the client secret
// triple is configured.
var ErrIncompleteClientSecret = errors.New("tenant id, client id and client secret must be set together")

// New creates a new Azure Automation client. The credential is chosen as
// documented on automation.Config.
func New(config *automation.Config) (automation.Client, error) {
	if config == nil {
		return nil, automation.ErrConfigRequired
	}

	tokenManager, err := tokenManagerFor(config)
	if err != nil {
		return nil, err
	}

	c, err := client.New(config, tokenManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

func tokenManagerFor(config *automation.Config) (auth.TokenManager, error) {
	switch {
	case config.Credential != nil:
		return auth.NewCredentialTokenManager(config.Credential, config.ResolvedScopes()), nil
	case config.AccessToken != "":
		return auth.NewStaticTokenManager(config.AccessToken), nil
	case config.TenantID != "" || config.ClientID != "" || config.ClientSecret != "":
		if config.TenantID == "" || config.ClientID == "" || config.ClientSecret == "" {
			return nil, ErrIncompleteClientSecret
		}

		credential, err := azidentity.NewClientSecretCredential(config.TenantID, config.ClientID, config.ClientSecret,
			&azidentity.ClientSecretCredentialOptions{ClientOptions: clientOptions(config)})
		if err != nil {
			return nil, fmt.Errorf("creating client secret credential: %w", err)
		}

		return auth.NewCredentialTokenManager(credential, config.ResolvedScopes()), nil
	case config.UseDefaultCredential:
		credential, err := azidentity.NewDefaultAzureCredential(&azidentity.DefaultAzureCredentialOptions{
			ClientOptions: clientOptions(config),
			TenantID:      config.TenantID,
		})
		if err != nil {
			return nil, fmt.Errorf("creating default credential: %w", err)
		}

		return auth.NewCredentialTokenManager(credential, config.ResolvedScopes()), nil
	default:
		return nil, nil //nolint:nilnil // no credential means unauthenticated requests
	}
}

func clientOptions(config *automation.Config) azcore.ClientOptions {
	options := azcore.ClientOptions{}
	if config.Cloud != nil {
		options.Cloud = *config.Cloud
	}

	return options
}

// NewWithEndpoint creates a new unauthenticated client.
func NewWithEndpoint(endpoint string) (automation.Client, error) {
	return New(&automation.Config{
		Endpoint: endpoint,
	})
}

// NewWithToken creates a new client that sends a pre-acquired bearer token.
func NewWithToken(endpoint, token string) (automation.Client, error) {
	if token == "" {
		return nil, automation.ErrTokenRequired
	}

	return New(&automation.Config{
		Endpoint:    endpoint,
		AccessToken: token,
	})
}

// NewWithCredential creates a new client that asks credential for a token on
// every request.
func NewWithCredential(endpoint string, credential azcore.TokenCredential) (automation.Client, error) {
	if credential == nil {
		return nil, automation.ErrCredentialRequired
	}

	return New(&automation.Config{
		Endpoint:   endpoint,
		Credential: credential,
	})
}

// NewWithClientSecret creates a new client using a service principal secret.
func NewWithClientSecret(endpoint, tenantID, clientID, clientSecret string) (automation.Client, error) {
	return New(&automation.Config{
		Endpoint:     endpoint,
		TenantID:     tenantID,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}
