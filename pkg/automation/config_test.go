package automation_test

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

func TestConfig_ResolvedEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		config   automation.Config
		expected string
	}{
		{
			name:     "default",
			config:   automation.Config{},
			expected: "https://management.azure.com",
		},
		{
			name:     "trailing slash",
			config:   automation.Config{Endpoint: "https://example.test/"},
			expected: "https://example.test",
		},
		{
			name:     "missing scheme",
			config:   automation.Config{Endpoint: "example.test"},
			expected: "https://example.test",
		},
		{
			name:     "cloud overrides endpoint",
			config:   automation.Config{Endpoint: "https://example.test", Cloud: &cloud.AzureChina},
			expected: "https://management.chinacloudapi.cn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.config.ResolvedEndpoint())
		})
	}
}

func TestConfig_ResolvedScopes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"https://management.azure.com/.default"}, (&automation.Config{}).ResolvedScopes())
	assert.Equal(t, []string{"custom"}, (&automation.Config{Scopes: []string{"custom"}}).ResolvedScopes())
	assert.Equal(t,
		[]string{"https://management.core.usgovcloudapi.net/.default"},
		(&automation.Config{Cloud: &cloud.AzureGovernment}).ResolvedScopes(),
	)
}
