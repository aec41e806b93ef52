package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var usagesOperations = struct {
	ListByAutomationAccount automation.Operation
}{
	ListByAutomationAccount: automation.Operation{
		Name:       "Usages.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/usages",
		APIVersion: constants.APIVersion20200113Preview,
	},
}

// UsagesClient implements automation.UsagesClient.
type UsagesClient struct {
	executor automation.Executor
}

// NewUsagesClient creates a new usages client.
func NewUsagesClient(executor automation.Executor) *UsagesClient {
	return &UsagesClient{
		executor: executor,
	}
}

// ListByAutomationAccount implements automation.UsagesClient.ListByAutomationAccount.
func (c *UsagesClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.UsageListResult, automation.Usage] {
	return automation.NewListRequest[automation.UsageListResult, automation.Usage](c.executor, &usagesOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}
