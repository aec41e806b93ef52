package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var connectionTypesOperations = struct {
	Get                     automation.Operation
	CreateOrUpdate          automation.Operation
	Delete                  automation.Operation
	ListByAutomationAccount automation.Operation
}{
	Get: automation.Operation{
		Name:       "ConnectionTypes.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/connectionTypes/{connectionTypeName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	CreateOrUpdate: automation.Operation{
		Name:       "ConnectionTypes.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       accountPath + "/connectionTypes/{connectionTypeName}",
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Delete: automation.Operation{
		Name:       "ConnectionTypes.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath + "/connectionTypes/{connectionTypeName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	ListByAutomationAccount: automation.Operation{
		Name:       "ConnectionTypes.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/connectionTypes",
		APIVersion: constants.APIVersion20200113Preview,
	},
}

// ConnectionTypesClient implements automation.ConnectionTypesClient.
type ConnectionTypesClient struct {
	executor automation.Executor
}

// NewConnectionTypesClient creates a new connection types client.
func NewConnectionTypesClient(executor automation.Executor) *ConnectionTypesClient {
	return &ConnectionTypesClient{
		executor: executor,
	}
}

// Get implements automation.ConnectionTypesClient.Get.
func (c *ConnectionTypesClient) Get(subscriptionID, resourceGroupName, automationAccountName, connectionTypeName string) *automation.Request[automation.ConnectionType] {
	return automation.NewRequest[automation.ConnectionType](c.executor, &connectionTypesOperations.Get, subscriptionID, resourceGroupName, automationAccountName, connectionTypeName)
}

// CreateOrUpdate implements automation.ConnectionTypesClient.CreateOrUpdate.
func (c *ConnectionTypesClient) CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, connectionTypeName string, parameters *automation.ConnectionTypeCreateOrUpdateParameters) *automation.Request[automation.ConnectionType] {
	return automation.NewRequest[automation.ConnectionType](c.executor, &connectionTypesOperations.CreateOrUpdate, subscriptionID, resourceGroupName, automationAccountName, connectionTypeName).WithBody(parameters)
}

// Delete implements automation.ConnectionTypesClient.Delete.
func (c *ConnectionTypesClient) Delete(subscriptionID, resourceGroupName, automationAccountName, connectionTypeName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &connectionTypesOperations.Delete, subscriptionID, resourceGroupName, automationAccountName, connectionTypeName)
}

// ListByAutomationAccount implements automation.ConnectionTypesClient.ListByAutomationAccount.
func (c *ConnectionTypesClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.ConnectionTypeListResult, automation.ConnectionType] {
	return automation.NewListRequest[automation.ConnectionTypeListResult, automation.ConnectionType](c.executor, &connectionTypesOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}
