package automation_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

func TestOperation_Placeholders(t *testing.T) {
	t.Parallel()

	op := &automation.Operation{
		Name: "Jobs.Get",
		Path: "/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/jobs/{jobName}",
	}

	assert.Equal(t, []string{"subscriptionId", "resourceGroupName", "jobName"}, op.Placeholders())
	assert.Empty(t, (&automation.Operation{Path: "/providers/Microsoft.Automation/operations"}).Placeholders())
}

func TestOperation_Expand(t *testing.T) {
	t.Parallel()

	op := &automation.Operation{
		Name:   "Runbooks.Get",
		Method: http.MethodGet,
		Path:   "/accounts/{automationAccountName}/runbooks/{runbookName}",
	}

	tests := []struct {
		name     string
		args     []string
		expected string
		wantErr  bool
	}{
		{
			name:     "plain",
			args:     []string{"acct", "hello"},
			expected: "/accounts/acct/runbooks/hello",
		},
		{
			name:     "escaped",
			args:     []string{"acct", "a b/c?d"},
			expected: "/accounts/acct/runbooks/a%20b%2Fc%3Fd",
		},
		{
			name:    "too few",
			args:    []string{"acct"},
			wantErr: true,
		},
		{
			name:    "too many",
			args:    []string{"acct", "a", "b"},
			wantErr: true,
		},
		{
			name:    "empty value",
			args:    []string{"acct", ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := op.Expand(tt.args...)
			if tt.wantErr {
				require.ErrorIs(t, err, automation.ErrInvalidPath)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParamSet(t *testing.T) {
	t.Parallel()

	assert.True(t, automation.ParamPaging.Has(automation.ParamFilter|automation.ParamTop))
	assert.False(t, automation.ParamPaging.Has(automation.ParamClientRequestID))
	assert.Equal(t, "$filter,$skip,$top,$inlinecount", automation.ParamPaging.String())
	assert.Equal(t, "x-ms-client-request-id", automation.ParamClientRequestID.String())
	assert.Empty(t, automation.ParamSet(0).String())
}
