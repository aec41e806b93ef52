package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var softwareUpdateConfigurationsOperations = struct {
	Create    automation.Operation
	GetByName automation.Operation
	Delete    automation.Operation
	List      automation.Operation
}{
	Create: automation.Operation{
		Name:       "SoftwareUpdateConfigurations.Create",
		Method:     http.MethodPut,
		Path:       accountPath + "/softwareUpdateConfigurations/{softwareUpdateConfigurationName}",
		APIVersion: constants.APIVersion20190601,
		Params:     automation.ParamClientRequestID,
		Body:       automation.BodyJSON,
	},
	GetByName: automation.Operation{
		Name:       "SoftwareUpdateConfigurations.GetByName",
		Method:     http.MethodGet,
		Path:       accountPath + "/softwareUpdateConfigurations/{softwareUpdateConfigurationName}",
		APIVersion: constants.APIVersion20190601,
		Params:     automation.ParamClientRequestID,
	},
	Delete: automation.Operation{
		Name:       "SoftwareUpdateConfigurations.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath + "/softwareUpdateConfigurations/{softwareUpdateConfigurationName}",
		APIVersion: constants.APIVersion20190601,
		Params:     automation.ParamClientRequestID,
	},
	List: automation.Operation{
		Name:       "SoftwareUpdateConfigurations.List",
		Method:     http.MethodGet,
		Path:       accountPath + "/softwareUpdateConfigurations",
		APIVersion: constants.APIVersion20190601,
		Params:     automation.ParamFilter | automation.ParamClientRequestID,
	},
}

// SoftwareUpdateConfigurationsClient implements automation.SoftwareUpdateConfigurationsClient.
type SoftwareUpdateConfigurationsClient struct {
	executor automation.Executor
}

// NewSoftwareUpdateConfigurationsClient creates a new software update configurations client.
func NewSoftwareUpdateConfigurationsClient(executor automation.Executor) *SoftwareUpdateConfigurationsClient {
	return &SoftwareUpdateConfigurationsClient{
		executor: executor,
	}
}

// Create implements automation.SoftwareUpdateConfigurationsClient.Create.
func (c *SoftwareUpdateConfigurationsClient) Create(subscriptionID, resourceGroupName, automationAccountName, softwareUpdateConfigurationName string, parameters *automation.SoftwareUpdateConfiguration) *automation.Request[automation.SoftwareUpdateConfiguration] {
	return automation.NewRequest[automation.SoftwareUpdateConfiguration](c.executor, &softwareUpdateConfigurationsOperations.Create, subscriptionID, resourceGroupName, automationAccountName, softwareUpdateConfigurationName).WithBody(parameters)
}

// GetByName implements automation.SoftwareUpdateConfigurationsClient.GetByName.
func (c *SoftwareUpdateConfigurationsClient) GetByName(subscriptionID, resourceGroupName, automationAccountName, softwareUpdateConfigurationName string) *automation.Request[automation.SoftwareUpdateConfiguration] {
	return automation.NewRequest[automation.SoftwareUpdateConfiguration](c.executor, &softwareUpdateConfigurationsOperations.GetByName, subscriptionID, resourceGroupName, automationAccountName, softwareUpdateConfigurationName)
}

// Delete implements automation.SoftwareUpdateConfigurationsClient.Delete.
func (c *SoftwareUpdateConfigurationsClient) Delete(subscriptionID, resourceGroupName, automationAccountName, softwareUpdateConfigurationName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &softwareUpdateConfigurationsOperations.Delete, subscriptionID, resourceGroupName, automationAccountName, softwareUpdateConfigurationName)
}

// List implements automation.SoftwareUpdateConfigurationsClient.List.
func (c *SoftwareUpdateConfigurationsClient) List(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.SoftwareUpdateConfigurationListResult, automation.SoftwareUpdateConfigurationCollectionItem] {
	return automation.NewListRequest[automation.SoftwareUpdateConfigurationListResult, automation.SoftwareUpdateConfigurationCollectionItem](c.executor, &softwareUpdateConfigurationsOperations.List, subscriptionID, resourceGroupName, automationAccountName)
}
