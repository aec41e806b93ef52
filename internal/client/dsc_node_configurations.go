package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var dscNodeConfigurationsOperations = struct {
	Get                     automation.Operation
	CreateOrUpdate          automation.Operation
	Delete                  automation.Operation
	ListByAutomationAccount automation.Operation
}{
	Get: automation.Operation{
		Name:       "DscNodeConfigurations.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/nodeConfigurations/{nodeConfigurationName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	CreateOrUpdate: automation.Operation{
		Name:       "DscNodeConfigurations.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       accountPath + "/nodeConfigurations/{nodeConfigurationName}",
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Delete: automation.Operation{
		Name:       "DscNodeConfigurations.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath + "/nodeConfigurations/{nodeConfigurationName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	ListByAutomationAccount: automation.Operation{
		Name:       "DscNodeConfigurations.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/nodeConfigurations",
		APIVersion: constants.APIVersion20200113Preview,
		Params:     automation.ParamPaging,
	},
}

// DscNodeConfigurationsClient implements automation.DscNodeConfigurationsClient.
type DscNodeConfigurationsClient struct {
	executor automation.Executor
}

// NewDscNodeConfigurationsClient creates a new DSC node configurations client.
func NewDscNodeConfigurationsClient(executor automation.Executor) *DscNodeConfigurationsClient {
	return &DscNodeConfigurationsClient{
		executor: executor,
	}
}

// Get implements automation.DscNodeConfigurationsClient.Get.
func (c *DscNodeConfigurationsClient) Get(subscriptionID, resourceGroupName, automationAccountName, nodeConfigurationName string) *automation.Request[automation.DscNodeConfiguration] {
	return automation.NewRequest[automation.DscNodeConfiguration](c.executor, &dscNodeConfigurationsOperations.Get, subscriptionID, resourceGroupName, automationAccountName, nodeConfigurationName)
}

// CreateOrUpdate implements automation.DscNodeConfigurationsClient.CreateOrUpdate.
func (c *DscNodeConfigurationsClient) CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, nodeConfigurationName string, parameters *automation.DscNodeConfigurationCreateOrUpdateParameters) *automation.Request[automation.DscNodeConfiguration] {
	return automation.NewRequest[automation.DscNodeConfiguration](c.executor, &dscNodeConfigurationsOperations.CreateOrUpdate, subscriptionID, resourceGroupName, automationAccountName, nodeConfigurationName).WithBody(parameters)
}

// Delete implements automation.DscNodeConfigurationsClient.Delete.
func (c *DscNodeConfigurationsClient) Delete(subscriptionID, resourceGroupName, automationAccountName, nodeConfigurationName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &dscNodeConfigurationsOperations.Delete, subscriptionID, resourceGroupName, automationAccountName, nodeConfigurationName)
}

// ListByAutomationAccount implements automation.DscNodeConfigurationsClient.ListByAutomationAccount.
func (c *DscNodeConfigurationsClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.DscNodeConfigurationListResult, automation.DscNodeConfiguration] {
	return automation.NewListRequest[automation.DscNodeConfigurationListResult, automation.DscNodeConfiguration](c.executor, &dscNodeConfigurationsOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}
