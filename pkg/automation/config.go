package automation

import (
	"net/http"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
)

// Config represents client configuration for building an automation.Client.
//
// # Authentication precedence
//
// automationclient.New picks the first credential source that is set:
//  1. Credential: any azcore.TokenCredential supplied by the caller.
//  2. AccessToken: used directly as a static Bearer token.
//  3. TenantID/ClientID/ClientSecret: an azidentity client secret credential.
//  4. UseDefaultCredential: azidentity's DefaultAzureCredential chain.
//  5. No credentials: requests are sent without authentication.
//
// Tokens are requested from the credential on every call. Nothing is cached
// by this library; azidentity credentials keep their own cache.
//
// # Endpoint and scopes
//
// Endpoint defaults to the public Azure Resource Manager endpoint. When Cloud
// is set its ResourceManager service entry takes precedence, which is how
// sovereign clouds are reached. Scopes default to "<endpoint>/.default".
//
// # Retries and timeouts
//
// Retries for transport errors, 429 and 5xx happen inside the HTTP pipeline
// only, tuned by RetryMax/RetryWaitMin/RetryWaitMax. Per-call deadlines come
// from the context passed to Send.
type Config struct {
	// Endpoint: base URL of the management API.
	Endpoint string
	// Cloud: optional cloud configuration; overrides Endpoint when it names
	// a resource manager endpoint.
	Cloud *cloud.Configuration

	// Credential: caller supplied token credential.
	Credential azcore.TokenCredential
	// AccessToken: static bearer token.
	AccessToken string
	// TenantID, ClientID and ClientSecret select the client secret credential.
	TenantID     string
	ClientID     string
	ClientSecret string
	// UseDefaultCredential selects azidentity.NewDefaultAzureCredential.
	UseDefaultCredential bool
	// Scopes: token scopes; empty means "<endpoint>/.default".
	Scopes []string

	// RetryMax: maximum number of retries inside the pipeline. Zero uses the default.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// HTTPTimeout: timeout of the underlying http.Client.
	HTTPTimeout time.Duration
	// HTTPClient: optional base client, e.g. with a custom transport.
	HTTPClient *http.Client
	// UserAgent: overrides the default User-Agent header.
	UserAgent string

	// Debug: enables HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger

	// RequestInterceptors and ResponseInterceptors run around every send.
	RequestInterceptors  []RequestInterceptor
	ResponseInterceptors []ResponseInterceptor
}

// ResolvedEndpoint returns the endpoint requests are sent to, without a
// trailing slash.
func (c *Config) ResolvedEndpoint() string {
	endpoint := c.Endpoint

	if c.Cloud != nil {
		if service, ok := c.Cloud.Services[cloud.ResourceManager]; ok && service.Endpoint != "" {
			endpoint = service.Endpoint
		}
	}

	if endpoint == "" {
		endpoint = constants.DefaultEndpoint
	}

	if !strings.Contains(endpoint, "://") {
		endpoint = "https://" + endpoint
	}

	return strings.TrimRight(endpoint, "/")
}

// ResolvedScopes returns the token scopes.
func (c *Config) ResolvedScopes() []string {
	if len(c.Scopes) > 0 {
		return c.Scopes
	}

	if c.Cloud != nil {
		if service, ok := c.Cloud.Services[cloud.ResourceManager]; ok && service.Audience != "" {
			return []string{strings.TrimRight(service.Audience, "/") + constants.DefaultScopeSuffix}
		}
	}

	return []string{c.ResolvedEndpoint() + constants.DefaultScopeSuffix}
}
