package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var connectionsOperations = struct {
	Get                     automation.Operation
	CreateOrUpdate          automation.Operation
	Update                  automation.Operation
	Delete                  automation.Operation
	ListByAutomationAccount automation.Operation
}{
	Get: automation.Operation{
		Name:       "Connections.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/connections/{connectionName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	CreateOrUpdate: automation.Operation{
		Name:       "Connections.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       accountPath + "/connections/{connectionName}",
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Update: automation.Operation{
		Name:       "Connections.Update",
		Method:     http.MethodPatch,
		Path:       accountPath + "/connections/{connectionName}",
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Delete: automation.Operation{
		Name:       "Connections.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath + "/connections/{connectionName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	ListByAutomationAccount: automation.Operation{
		Name:       "Connections.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/connections",
		APIVersion: constants.APIVersion20200113Preview,
	},
}

// ConnectionsClient implements automation.ConnectionsClient.
type ConnectionsClient struct {
	executor automation.Executor
}

// NewConnectionsClient creates a new connections client.
func NewConnectionsClient(executor automation.Executor) *ConnectionsClient {
	return &ConnectionsClient{
		executor: executor,
	}
}

// Get implements automation.ConnectionsClient.Get.
func (c *ConnectionsClient) Get(subscriptionID, resourceGroupName, automationAccountName, connectionName string) *automation.Request[automation.Connection] {
	return automation.NewRequest[automation.Connection](c.executor, &connectionsOperations.Get, subscriptionID, resourceGroupName, automationAccountName, connectionName)
}

// CreateOrUpdate implements automation.ConnectionsClient.CreateOrUpdate.
func (c *ConnectionsClient) CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, connectionName string, parameters *automation.ConnectionCreateOrUpdateParameters) *automation.Request[automation.Connection] {
	return automation.NewRequest[automation.Connection](c.executor, &connectionsOperations.CreateOrUpdate, subscriptionID, resourceGroupName, automationAccountName, connectionName).WithBody(parameters)
}

// Update implements automation.ConnectionsClient.Update.
func (c *ConnectionsClient) Update(subscriptionID, resourceGroupName, automationAccountName, connectionName string, parameters *automation.ConnectionUpdateParameters) *automation.Request[automation.Connection] {
	return automation.NewRequest[automation.Connection](c.executor, &connectionsOperations.Update, subscriptionID, resourceGroupName, automationAccountName, connectionName).WithBody(parameters)
}

// Delete implements automation.ConnectionsClient.Delete.
func (c *ConnectionsClient) Delete(subscriptionID, resourceGroupName, automationAccountName, connectionName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &connectionsOperations.Delete, subscriptionID, resourceGroupName, automationAccountName, connectionName)
}

// ListByAutomationAccount implements automation.ConnectionsClient.ListByAutomationAccount.
func (c *ConnectionsClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.ConnectionListResult, automation.Connection] {
	return automation.NewListRequest[automation.ConnectionListResult, automation.Connection](c.executor, &connectionsOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}
