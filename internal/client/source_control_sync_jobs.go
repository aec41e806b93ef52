package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var sourceControlSyncJobsOperations = struct {
	Create                  automation.Operation
	Get                     automation.Operation
	ListByAutomationAccount automation.Operation
}{
	Create: automation.Operation{
		Name:       "SourceControlSyncJobs.Create",
		Method:     http.MethodPut,
		Path:       accountPath + "/sourceControls/{sourceControlName}/sourceControlSyncJobs/{sourceControlSyncJobId}",
		APIVersion: constants.APIVersion20190601,
		Body:       automation.BodyJSON,
	},
	Get: automation.Operation{
		Name:       "SourceControlSyncJobs.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/sourceControls/{sourceControlName}/sourceControlSyncJobs/{sourceControlSyncJobId}",
		APIVersion: constants.APIVersion20190601,
	},
	ListByAutomationAccount: automation.Operation{
		Name:       "SourceControlSyncJobs.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/sourceControls/{sourceControlName}/sourceControlSyncJobs",
		APIVersion: constants.APIVersion20190601,
		Params:     automation.ParamFilter,
	},
}

// SourceControlSyncJobsClient implements automation.SourceControlSyncJobsClient.
type SourceControlSyncJobsClient struct {
	executor automation.Executor
}

// NewSourceControlSyncJobsClient creates a new source control sync jobs client.
func NewSourceControlSyncJobsClient(executor automation.Executor) *SourceControlSyncJobsClient {
	return &SourceControlSyncJobsClient{
		executor: executor,
	}
}

// Create implements automation.SourceControlSyncJobsClient.Create.
func (c *SourceControlSyncJobsClient) Create(subscriptionID, resourceGroupName, automationAccountName, sourceControlName, sourceControlSyncJobID string, parameters *automation.SourceControlSyncJobCreateParameters) *automation.Request[automation.SourceControlSyncJob] {
	return automation.NewRequest[automation.SourceControlSyncJob](c.executor, &sourceControlSyncJobsOperations.Create, subscriptionID, resourceGroupName, automationAccountName, sourceControlName, sourceControlSyncJobID).WithBody(parameters)
}

// Get implements automation.SourceControlSyncJobsClient.Get.
func (c *SourceControlSyncJobsClient) Get(subscriptionID, resourceGroupName, automationAccountName, sourceControlName, sourceControlSyncJobID string) *automation.Request[automation.SourceControlSyncJobByID] {
	return automation.NewRequest[automation.SourceControlSyncJobByID](c.executor, &sourceControlSyncJobsOperations.Get, subscriptionID, resourceGroupName, automationAccountName, sourceControlName, sourceControlSyncJobID)
}

// ListByAutomationAccount implements automation.SourceControlSyncJobsClient.ListByAutomationAccount.
func (c *SourceControlSyncJobsClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName, sourceControlName string) *automation.ListRequest[automation.SourceControlSyncJobListResult, automation.SourceControlSyncJob] {
	return automation.NewListRequest[automation.SourceControlSyncJobListResult, automation.SourceControlSyncJob](c.executor, &sourceControlSyncJobsOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName, sourceControlName)
}
