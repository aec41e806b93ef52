package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Endpoints and scopes.
const (
	// DefaultEndpoint is the public Azure Resource Manager endpoint.
	DefaultEndpoint = "https://management.azure.com"

	// DefaultScopeSuffix is appended to the endpoint to form the default token scope.
	DefaultScopeSuffix = "/.default"

	// ProviderNamespace is the resource provider every automation path lives under.
	ProviderNamespace = "Microsoft.Automation"
)

// API versions. Each operation is pinned to the version it was generated against.
const (
	// APIVersion20200113Preview covers accounts, assets, DSC nodes and most account children.
	APIVersion20200113Preview = "2020-01-13-preview"

	// APIVersion20190601 covers jobs, DSC configurations, source control and update management.
	APIVersion20190601 = "2019-06-01"

	// APIVersion20180630 covers runbooks, runbook drafts, test jobs and python2 packages.
	APIVersion20180630 = "2018-06-30"

	// APIVersion20151031 covers webhooks.
	APIVersion20151031 = "2015-10-31"
)

// Query parameter and header names.
const (
	// QueryAPIVersion is the mandatory version query parameter.
	QueryAPIVersion = "api-version"

	// QueryFilter is the OData filter parameter.
	QueryFilter = "$filter"

	// QuerySkip is the OData skip parameter.
	QuerySkip = "$skip"

	// QueryTop is the OData top parameter.
	QueryTop = "$top"

	// QueryInlineCount is the OData inline count parameter.
	QueryInlineCount = "$inlinecount"

	// HeaderClientRequestID carries the caller supplied request id.
	HeaderClientRequestID = "x-ms-client-request-id"
)

// Content types.
const (
	// ContentTypeJSON is used for every JSON request body.
	ContentTypeJSON = "application/json"

	// ContentTypePowerShell is used when replacing runbook draft content.
	ContentTypePowerShell = "text/powershell"

	// ContentTypeText is accepted for content and output downloads.
	ContentTypeText = "text/plain"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// TokenExpiryBuffer treats tokens this close to expiry as expired.
	TokenExpiryBuffer = 30 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// HTTP status codes commonly used.
const (
	// HTTPStatusOK represents a successful HTTP response.
	HTTPStatusOK = 200

	// HTTPStatusMultipleChoices is the first status outside the success range.
	HTTPStatusMultipleChoices = 300
)

// Pagination and display limits.
const (
	// MaxPages bounds paging in the CLI.
	MaxPages = 1000

	// DefaultUserAgent identifies the library on the wire.
	DefaultUserAgent = "azure-automation-go"
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// TimeFormat is the CLI display format for timestamps.
	TimeFormat = "2006-01-02 15:04:05"

	// Masked replaces secrets in displayed configuration.
	Masked = "***"

	// JSONIndent is the indentation of JSON output.
	JSONIndent = "  "
)
