package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var softwareUpdateConfigurationMachineRunsOperations = struct {
	GetByID automation.Operation
	List    automation.Operation
}{
	GetByID: automation.Operation{
		Name:       "SoftwareUpdateConfigurationMachineRuns.GetByID",
		Method:     http.MethodGet,
		Path:       accountPath + "/softwareUpdateConfigurationMachineRuns/{softwareUpdateConfigurationMachineRunId}",
		APIVersion: constants.APIVersion20190601,
		Params:     automation.ParamClientRequestID,
	},
	List: automation.Operation{
		Name:       "SoftwareUpdateConfigurationMachineRuns.List",
		Method:     http.MethodGet,
		Path:       accountPath + "/softwareUpdateConfigurationMachineRuns",
		APIVersion: constants.APIVersion20190601,
		Params:     automation.ParamFilter | automation.ParamSkip | automation.ParamTop | automation.ParamClientRequestID,
	},
}

// SoftwareUpdateConfigurationMachineRunsClient implements automation.SoftwareUpdateConfigurationMachineRunsClient.
type SoftwareUpdateConfigurationMachineRunsClient struct {
	executor automation.Executor
}

// NewSoftwareUpdateConfigurationMachineRunsClient creates a new software update configuration machine runs client.
func NewSoftwareUpdateConfigurationMachineRunsClient(executor automation.Executor) *SoftwareUpdateConfigurationMachineRunsClient {
	return &SoftwareUpdateConfigurationMachineRunsClient{
		executor: executor,
	}
}

// GetByID implements automation.SoftwareUpdateConfigurationMachineRunsClient.GetByID.
func (c *SoftwareUpdateConfigurationMachineRunsClient) GetByID(subscriptionID, resourceGroupName, automationAccountName, softwareUpdateConfigurationMachineRunID string) *automation.Request[automation.SoftwareUpdateConfigurationMachineRun] {
	return automation.NewRequest[automation.SoftwareUpdateConfigurationMachineRun](c.executor, &softwareUpdateConfigurationMachineRunsOperations.GetByID, subscriptionID, resourceGroupName, automationAccountName, softwareUpdateConfigurationMachineRunID)
}

// List implements automation.SoftwareUpdateConfigurationMachineRunsClient.List.
func (c *SoftwareUpdateConfigurationMachineRunsClient) List(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.SoftwareUpdateConfigurationMachineRunListResult, automation.SoftwareUpdateConfigurationMachineRun] {
	return automation.NewListRequest[automation.SoftwareUpdateConfigurationMachineRunListResult, automation.SoftwareUpdateConfigurationMachineRun](c.executor, &softwareUpdateConfigurationMachineRunsOperations.List, subscriptionID, resourceGroupName, automationAccountName)
}
