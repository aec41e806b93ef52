package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var hybridRunbookWorkerGroupsOperations = struct {
	Get                     automation.Operation
	Update                  automation.Operation
	Delete                  automation.Operation
	ListByAutomationAccount automation.Operation
}{
	Get: automation.Operation{
		Name:       "HybridRunbookWorkerGroups.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/hybridRunbookWorkerGroups/{hybridRunbookWorkerGroupName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	Update: automation.Operation{
		Name:       "HybridRunbookWorkerGroups.Update",
		Method:     http.MethodPatch,
		Path:       accountPath + "/hybridRunbookWorkerGroups/{hybridRunbookWorkerGroupName}",
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Delete: automation.Operation{
		Name:       "HybridRunbookWorkerGroups.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath + "/hybridRunbookWorkerGroups/{hybridRunbookWorkerGroupName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	ListByAutomationAccount: automation.Operation{
		Name:       "HybridRunbookWorkerGroups.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/hybridRunbookWorkerGroups",
		APIVersion: constants.APIVersion20200113Preview,
		Params:     automation.ParamFilter,
	},
}

// HybridRunbookWorkerGroupsClient implements automation.HybridRunbookWorkerGroupsClient.
type HybridRunbookWorkerGroupsClient struct {
	executor automation.Executor
}

// NewHybridRunbookWorkerGroupsClient creates a new hybrid runbook worker groups client.
func NewHybridRunbookWorkerGroupsClient(executor automation.Executor) *HybridRunbookWorkerGroupsClient {
	return &HybridRunbookWorkerGroupsClient{
		executor: executor,
	}
}

// Get implements automation.HybridRunbookWorkerGroupsClient.Get.
func (c *HybridRunbookWorkerGroupsClient) Get(subscriptionID, resourceGroupName, automationAccountName, hybridRunbookWorkerGroupName string) *automation.Request[automation.HybridRunbookWorkerGroup] {
	return automation.NewRequest[automation.HybridRunbookWorkerGroup](c.executor, &hybridRunbookWorkerGroupsOperations.Get, subscriptionID, resourceGroupName, automationAccountName, hybridRunbookWorkerGroupName)
}

// Update implements automation.HybridRunbookWorkerGroupsClient.Update.
func (c *HybridRunbookWorkerGroupsClient) Update(subscriptionID, resourceGroupName, automationAccountName, hybridRunbookWorkerGroupName string, parameters *automation.HybridRunbookWorkerGroupUpdateParameters) *automation.Request[automation.HybridRunbookWorkerGroup] {
	return automation.NewRequest[automation.HybridRunbookWorkerGroup](c.executor, &hybridRunbookWorkerGroupsOperations.Update, subscriptionID, resourceGroupName, automationAccountName, hybridRunbookWorkerGroupName).WithBody(parameters)
}

// Delete implements automation.HybridRunbookWorkerGroupsClient.Delete.
func (c *HybridRunbookWorkerGroupsClient) Delete(subscriptionID, resourceGroupName, automationAccountName, hybridRunbookWorkerGroupName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &hybridRunbookWorkerGroupsOperations.Delete, subscriptionID, resourceGroupName, automationAccountName, hybridRunbookWorkerGroupName)
}

// ListByAutomationAccount implements automation.HybridRunbookWorkerGroupsClient.ListByAutomationAccount.
func (c *HybridRunbookWorkerGroupsClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.HybridRunbookWorkerGroupsListResult, automation.HybridRunbookWorkerGroup] {
	return automation.NewListRequest[automation.HybridRunbookWorkerGroupsListResult, automation.HybridRunbookWorkerGroup](c.executor, &hybridRunbookWorkerGroupsOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}
