package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var dscConfigurationsOperations = struct {
	Get                     automation.Operation
	CreateOrUpdate          automation.Operation
	Update                  automation.Operation
	Delete                  automation.Operation
	GetContent              automation.Operation
	ListByAutomationAccount automation.Operation
}{
	Get: automation.Operation{
		Name:       "DscConfigurations.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/configurations/{configurationName}",
		APIVersion: constants.APIVersion20190601,
	},
	CreateOrUpdate: automation.Operation{
		Name:       "DscConfigurations.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       accountPath + "/configurations/{configurationName}",
		APIVersion: constants.APIVersion20190601,
		Body:       automation.BodyJSON,
	},
	Update: automation.Operation{
		Name:       "DscConfigurations.Update",
		Method:     http.MethodPatch,
		Path:       accountPath + "/configurations/{configurationName}",
		APIVersion: constants.APIVersion20190601,
		Body:       automation.BodyJSON,
	},
	Delete: automation.Operation{
		Name:       "DscConfigurations.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath + "/configurations/{configurationName}",
		APIVersion: constants.APIVersion20190601,
	},
	GetContent: automation.Operation{
		Name:       "DscConfigurations.GetContent",
		Method:     http.MethodGet,
		Path:       accountPath + "/configurations/{configurationName}/content",
		APIVersion: constants.APIVersion20190601,
		Response:   automation.ResponseText,
		Accept:     constants.ContentTypePowerShell,
	},
	ListByAutomationAccount: automation.Operation{
		Name:       "DscConfigurations.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/configurations",
		APIVersion: constants.APIVersion20190601,
		Params:     automation.ParamPaging,
	},
}

// DscConfigurationsClient implements automation.DscConfigurationsClient.
type DscConfigurationsClient struct {
	executor automation.Executor
}

// NewDscConfigurationsClient creates a new DSC configurations client.
func NewDscConfigurationsClient(executor automation.Executor) *DscConfigurationsClient {
	return &DscConfigurationsClient{
		executor: executor,
	}
}

// Get implements automation.DscConfigurationsClient.Get.
func (c *DscConfigurationsClient) Get(subscriptionID, resourceGroupName, automationAccountName, configurationName string) *automation.Request[automation.DscConfiguration] {
	return automation.NewRequest[automation.DscConfiguration](c.executor, &dscConfigurationsOperations.Get, subscriptionID, resourceGroupName, automationAccountName, configurationName)
}

// CreateOrUpdate implements automation.DscConfigurationsClient.CreateOrUpdate.
func (c *DscConfigurationsClient) CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, configurationName string, parameters *automation.DscConfigurationCreateOrUpdateParameters) *automation.Request[automation.DscConfiguration] {
	return automation.NewRequest[automation.DscConfiguration](c.executor, &dscConfigurationsOperations.CreateOrUpdate, subscriptionID, resourceGroupName, automationAccountName, configurationName).WithBody(parameters)
}

// Update implements automation.DscConfigurationsClient.Update.
func (c *DscConfigurationsClient) Update(subscriptionID, resourceGroupName, automationAccountName, configurationName string, parameters *automation.DscConfigurationUpdateParameters) *automation.Request[automation.DscConfiguration] {
	return automation.NewRequest[automation.DscConfiguration](c.executor, &dscConfigurationsOperations.Update, subscriptionID, resourceGroupName, automationAccountName, configurationName).WithBody(parameters)
}

// Delete implements automation.DscConfigurationsClient.Delete.
func (c *DscConfigurationsClient) Delete(subscriptionID, resourceGroupName, automationAccountName, configurationName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &dscConfigurationsOperations.Delete, subscriptionID, resourceGroupName, automationAccountName, configurationName)
}

// GetContent implements automation.DscConfigurationsClient.GetContent.
func (c *DscConfigurationsClient) GetContent(subscriptionID, resourceGroupName, automationAccountName, configurationName string) *automation.Request[string] {
	return automation.NewRequest[string](c.executor, &dscConfigurationsOperations.GetContent, subscriptionID, resourceGroupName, automationAccountName, configurationName)
}

// ListByAutomationAccount implements automation.DscConfigurationsClient.ListByAutomationAccount.
func (c *DscConfigurationsClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.DscConfigurationListResult, automation.DscConfiguration] {
	return automation.NewListRequest[automation.DscConfigurationListResult, automation.DscConfiguration](c.executor, &dscConfigurationsOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}
