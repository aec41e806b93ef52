package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var dscNodesOperations = struct {
	Get                     automation.Operation
	Update                  automation.Operation
	Delete                  automation.Operation
	ListByAutomationAccount automation.Operation
}{
	Get: automation.Operation{
		Name:       "DscNodes.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/nodes/{nodeId}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	Update: automation.Operation{
		Name:       "DscNodes.Update",
		Method:     http.MethodPatch,
		Path:       accountPath + "/nodes/{nodeId}",
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Delete: automation.Operation{
		Name:       "DscNodes.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath + "/nodes/{nodeId}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	ListByAutomationAccount: automation.Operation{
		Name:       "DscNodes.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/nodes",
		APIVersion: constants.APIVersion20200113Preview,
		Params:     automation.ParamPaging,
	},
}

// DscNodesClient implements automation.DscNodesClient.
type DscNodesClient struct {
	executor automation.Executor
}

// NewDscNodesClient creates a new DSC nodes client.
func NewDscNodesClient(executor automation.Executor) *DscNodesClient {
	return &DscNodesClient{
		executor: executor,
	}
}

// Get implements automation.DscNodesClient.Get.
func (c *DscNodesClient) Get(subscriptionID, resourceGroupName, automationAccountName, nodeID string) *automation.Request[automation.DscNode] {
	return automation.NewRequest[automation.DscNode](c.executor, &dscNodesOperations.Get, subscriptionID, resourceGroupName, automationAccountName, nodeID)
}

// Update implements automation.DscNodesClient.Update.
func (c *DscNodesClient) Update(subscriptionID, resourceGroupName, automationAccountName, nodeID string, parameters *automation.DscNodeUpdateParameters) *automation.Request[automation.DscNode] {
	return automation.NewRequest[automation.DscNode](c.executor, &dscNodesOperations.Update, subscriptionID, resourceGroupName, automationAccountName, nodeID).WithBody(parameters)
}

// Delete implements automation.DscNodesClient.Delete.
func (c *DscNodesClient) Delete(subscriptionID, resourceGroupName, automationAccountName, nodeID string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &dscNodesOperations.Delete, subscriptionID, resourceGroupName, automationAccountName, nodeID)
}

// ListByAutomationAccount implements automation.DscNodesClient.ListByAutomationAccount.
func (c *DscNodesClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.DscNodeListResult, automation.DscNode] {
	return automation.NewListRequest[automation.DscNodeListResult, automation.DscNode](c.executor, &dscNodesOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}
