package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var keysOperations = struct {
	ListByAutomationAccount automation.Operation
}{
	ListByAutomationAccount: automation.Operation{
		Name:       "Keys.ListByAutomationAccount",
		Method:     http.MethodPost,
		Path:       accountPath + "/listKeys",
		APIVersion: constants.APIVersion20200113Preview,
	},
}

// KeysClient implements automation.KeysClient.
type KeysClient struct {
	executor automation.Executor
}

// NewKeysClient creates a new keys client.
func NewKeysClient(executor automation.Executor) *KeysClient {
	return &KeysClient{
		executor: executor,
	}
}

// ListByAutomationAccount implements automation.KeysClient.ListByAutomationAccount.
func (c *KeysClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.KeyListResult, automation.Key] {
	return automation.NewListRequest[automation.KeyListResult, automation.Key](c.executor, &keysOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}
