package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var softwareUpdateConfigurationRunsOperations = struct {
	GetByID automation.Operation
	List    automation.Operation
}{
	GetByID: automation.Operation{
		Name:       "SoftwareUpdateConfigurationRuns.GetByID",
		Method:     http.MethodGet,
		Path:       accountPath + "/softwareUpdateConfigurationRuns/{softwareUpdateConfigurationRunId}",
		APIVersion: constants.APIVersion20190601,
		Params:     automation.ParamClientRequestID,
	},
	List: automation.Operation{
		Name:       "SoftwareUpdateConfigurationRuns.List",
		Method:     http.MethodGet,
		Path:       accountPath + "/softwareUpdateConfigurationRuns",
		APIVersion: constants.APIVersion20190601,
		Params:     automation.ParamFilter | automation.ParamSkip | automation.ParamTop | automation.ParamClientRequestID,
	},
}

// SoftwareUpdateConfigurationRunsClient implements automation.SoftwareUpdateConfigurationRunsClient.
type SoftwareUpdateConfigurationRunsClient struct {
	executor automation.Executor
}

// NewSoftwareUpdateConfigurationRunsClient creates a new software update configuration runs client.
func NewSoftwareUpdateConfigurationRunsClient(executor automation.Executor) *SoftwareUpdateConfigurationRunsClient {
	return &SoftwareUpdateConfigurationRunsClient{
		executor: executor,
	}
}

// GetByID implements automation.SoftwareUpdateConfigurationRunsClient.GetByID.
func (c *SoftwareUpdateConfigurationRunsClient) GetByID(subscriptionID, resourceGroupName, automationAccountName, softwareUpdateConfigurationRunID string) *automation.Request[automation.SoftwareUpdateConfigurationRun] {
	return automation.NewRequest[automation.SoftwareUpdateConfigurationRun](c.executor, &softwareUpdateConfigurationRunsOperations.GetByID, subscriptionID, resourceGroupName, automationAccountName, softwareUpdateConfigurationRunID)
}

// List implements automation.SoftwareUpdateConfigurationRunsClient.List.
func (c *SoftwareUpdateConfigurationRunsClient) List(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.SoftwareUpdateConfigurationRunListResult, automation.SoftwareUpdateConfigurationRun] {
	return automation.NewListRequest[automation.SoftwareUpdateConfigurationRunListResult, automation.SoftwareUpdateConfigurationRun](c.executor, &softwareUpdateConfigurationRunsOperations.List, subscriptionID, resourceGroupName, automationAccountName)
}
