package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var privateEndpointConnectionsOperations = struct {
	Get                     automation.Operation
	CreateOrUpdate          automation.Operation
	Delete                  automation.Operation
	ListByAutomationAccount automation.Operation
}{
	Get: automation.Operation{
		Name:       "PrivateEndpointConnections.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/privateEndpointConnections/{privateEndpointConnectionName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	CreateOrUpdate: automation.Operation{
		Name:       "PrivateEndpointConnections.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       accountPath + "/privateEndpointConnections/{privateEndpointConnectionName}",
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Delete: automation.Operation{
		Name:       "PrivateEndpointConnections.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath + "/privateEndpointConnections/{privateEndpointConnectionName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	ListByAutomationAccount: automation.Operation{
		Name:       "PrivateEndpointConnections.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/privateEndpointConnections",
		APIVersion: constants.APIVersion20200113Preview,
	},
}

// PrivateEndpointConnectionsClient implements automation.PrivateEndpointConnectionsClient.
type PrivateEndpointConnectionsClient struct {
	executor automation.Executor
}

// NewPrivateEndpointConnectionsClient creates a new private endpoint connections client.
func NewPrivateEndpointConnectionsClient(executor automation.Executor) *PrivateEndpointConnectionsClient {
	return &PrivateEndpointConnectionsClient{
		executor: executor,
	}
}

// Get implements automation.PrivateEndpointConnectionsClient.Get.
func (c *PrivateEndpointConnectionsClient) Get(subscriptionID, resourceGroupName, automationAccountName, privateEndpointConnectionName string) *automation.Request[automation.PrivateEndpointConnection] {
	return automation.NewRequest[automation.PrivateEndpointConnection](c.executor, &privateEndpointConnectionsOperations.Get, subscriptionID, resourceGroupName, automationAccountName, privateEndpointConnectionName)
}

// CreateOrUpdate implements automation.PrivateEndpointConnectionsClient.CreateOrUpdate.
func (c *PrivateEndpointConnectionsClient) CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, privateEndpointConnectionName string, parameters *automation.PrivateEndpointConnection) *automation.Request[automation.PrivateEndpointConnection] {
	return automation.NewRequest[automation.PrivateEndpointConnection](c.executor, &privateEndpointConnectionsOperations.CreateOrUpdate, subscriptionID, resourceGroupName, automationAccountName, privateEndpointConnectionName).WithBody(parameters)
}

// Delete implements automation.PrivateEndpointConnectionsClient.Delete.
func (c *PrivateEndpointConnectionsClient) Delete(subscriptionID, resourceGroupName, automationAccountName, privateEndpointConnectionName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &privateEndpointConnectionsOperations.Delete, subscriptionID, resourceGroupName, automationAccountName, privateEndpointConnectionName)
}

// ListByAutomationAccount implements automation.PrivateEndpointConnectionsClient.ListByAutomationAccount.
func (c *PrivateEndpointConnectionsClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.PrivateEndpointConnectionListResult, automation.PrivateEndpointConnection] {
	return automation.NewListRequest[automation.PrivateEndpointConnectionListResult, automation.PrivateEndpointConnection](c.executor, &privateEndpointConnectionsOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}
