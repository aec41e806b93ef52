package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var linkedWorkspaceOperations = struct {
	Get automation.Operation
}{
	Get: automation.Operation{
		Name:       "LinkedWorkspace.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/linkedWorkspace",
		APIVersion: constants.APIVersion20200113Preview,
	},
}

// LinkedWorkspaceClient implements automation.LinkedWorkspaceClient.
type LinkedWorkspaceClient struct {
	executor automation.Executor
}

// NewLinkedWorkspaceClient creates a new linked workspace client.
func NewLinkedWorkspaceClient(executor automation.Executor) *LinkedWorkspaceClient {
	return &LinkedWorkspaceClient{
		executor: executor,
	}
}

// Get implements automation.LinkedWorkspaceClient.Get.
func (c *LinkedWorkspaceClient) Get(subscriptionID, resourceGroupName, automationAccountName string) *automation.Request[automation.LinkedWorkspace] {
	return automation.NewRequest[automation.LinkedWorkspace](c.executor, &linkedWorkspaceOperations.Get, subscriptionID, resourceGroupName, automationAccountName)
}
