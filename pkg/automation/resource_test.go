package automation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

const accountID = "/subscriptions/00000000-0000-0000-0000-000000000001/resourceGroups/rg/providers/Microsoft.Automation/automationAccounts/acct"

func TestParseResourceID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		id       string
		expected *automation.ResourceID
	}{
		{
			name: "account",
			id:   accountID,
			expected: &automation.ResourceID{
				SubscriptionID:        "00000000-0000-0000-0000-000000000001",
				ResourceGroupName:     "rg",
				AutomationAccountName: "acct",
				Name:                  "acct",
			},
		},
		{
			name: "runbook",
			id:   accountID + "/runbooks/hello",
			expected: &automation.ResourceID{
				SubscriptionID:        "00000000-0000-0000-0000-000000000001",
				ResourceGroupName:     "rg",
				AutomationAccountName: "acct",
				ResourceType:          "runbooks",
				Name:                  "hello",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := automation.ParseResourceID(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseResourceID_Invalid(t *testing.T) {
	t.Parallel()

	for _, id := range []string{
		"",
		"not-a-resource-id",
		"/subscriptions/00000000-0000-0000-0000-000000000001/resourceGroups/rg/providers/Microsoft.Compute/virtualMachines/vm",
	} {
		_, err := automation.ParseResourceID(id)
		require.ErrorIs(t, err, automation.ErrInvalidResourceID, id)
	}
}
