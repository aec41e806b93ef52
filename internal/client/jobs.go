package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var jobsOperations = struct {
	Get                     automation.Operation
	Create                  automation.Operation
	GetOutput               automation.Operation
	GetRunbookContent       automation.Operation
	Suspend                 automation.Operation
	Stop                    automation.Operation
	Resume                  automation.Operation
	ListByAutomationAccount automation.Operation
}{
	Get: automation.Operation{
		Name:       "Jobs.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/jobs/{jobName}",
		APIVersion: constants.APIVersion20190601,
		Params:     automation.ParamClientRequestID,
	},
	Create: automation.Operation{
		Name:       "Jobs.Create",
		Method:     http.MethodPut,
		Path:       accountPath + "/jobs/{jobName}",
		APIVersion: constants.APIVersion20190601,
		Params:     automation.ParamClientRequestID,
		Body:       automation.BodyJSON,
	},
	GetOutput: automation.Operation{
		Name:       "Jobs.GetOutput",
		Method:     http.MethodGet,
		Path:       accountPath + "/jobs/{jobName}/output",
		APIVersion: constants.APIVersion20190601,
		Params:     automation.ParamClientRequestID,
		Response:   automation.ResponseText,
		Accept:     constants.ContentTypeText,
	},
	GetRunbookContent: automation.Operation{
		Name:       "Jobs.GetRunbookContent",
		Method:     http.MethodGet,
		Path:       accountPath + "/jobs/{jobName}/runbookContent",
		APIVersion: constants.APIVersion20190601,
		Params:     automation.ParamClientRequestID,
		Response:   automation.ResponseText,
		Accept:     constants.ContentTypePowerShell,
	},
	Suspend: automation.Operation{
		Name:       "Jobs.Suspend",
		Method:     http.MethodPost,
		Path:       accountPath + "/jobs/{jobName}/suspend",
		APIVersion: constants.APIVersion20190601,
		Params:     automation.ParamClientRequestID,
	},
	Stop: automation.Operation{
		Name:       "Jobs.Stop",
		Method:     http.MethodPost,
		Path:       accountPath + "/jobs/{jobName}/stop",
		APIVersion: constants.APIVersion20190601,
		Params:     automation.ParamClientRequestID,
	},
	Resume: automation.Operation{
		Name:       "Jobs.Resume",
		Method:     http.MethodPost,
		Path:       accountPath + "/jobs/{jobName}/resume",
		APIVersion: constants.APIVersion20190601,
		Params:     automation.ParamClientRequestID,
	},
	ListByAutomationAccount: automation.Operation{
		Name:       "Jobs.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/jobs",
		APIVersion: constants.APIVersion20190601,
		Params:     automation.ParamFilter | automation.ParamClientRequestID,
	},
}

// JobsClient implements automation.JobsClient.
type JobsClient struct {
	executor automation.Executor
}

// NewJobsClient creates a new jobs client.
func NewJobsClient(executor automation.Executor) *JobsClient {
	return &JobsClient{
		executor: executor,
	}
}

// Get implements automation.JobsClient.Get.
func (c *JobsClient) Get(subscriptionID, resourceGroupName, automationAccountName, jobName string) *automation.Request[automation.Job] {
	return automation.NewRequest[automation.Job](c.executor, &jobsOperations.Get, subscriptionID, resourceGroupName, automationAccountName, jobName)
}

// Create implements automation.JobsClient.Create.
func (c *JobsClient) Create(subscriptionID, resourceGroupName, automationAccountName, jobName string, parameters *automation.JobCreateParameters) *automation.Request[automation.Job] {
	return automation.NewRequest[automation.Job](c.executor, &jobsOperations.Create, subscriptionID, resourceGroupName, automationAccountName, jobName).WithBody(parameters)
}

// GetOutput implements automation.JobsClient.GetOutput.
func (c *JobsClient) GetOutput(subscriptionID, resourceGroupName, automationAccountName, jobName string) *automation.Request[string] {
	return automation.NewRequest[string](c.executor, &jobsOperations.GetOutput, subscriptionID, resourceGroupName, automationAccountName, jobName)
}

// GetRunbookContent implements automation.JobsClient.GetRunbookContent.
func (c *JobsClient) GetRunbookContent(subscriptionID, resourceGroupName, automationAccountName, jobName string) *automation.Request[string] {
	return automation.NewRequest[string](c.executor, &jobsOperations.GetRunbookContent, subscriptionID, resourceGroupName, automationAccountName, jobName)
}

// Suspend implements automation.JobsClient.Suspend.
func (c *JobsClient) Suspend(subscriptionID, resourceGroupName, automationAccountName, jobName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &jobsOperations.Suspend, subscriptionID, resourceGroupName, automationAccountName, jobName)
}

// Stop implements automation.JobsClient.Stop.
func (c *JobsClient) Stop(subscriptionID, resourceGroupName, automationAccountName, jobName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &jobsOperations.Stop, subscriptionID, resourceGroupName, automationAccountName, jobName)
}

// Resume implements automation.JobsClient.Resume.
func (c *JobsClient) Resume(subscriptionID, resourceGroupName, automationAccountName, jobName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &jobsOperations.Resume, subscriptionID, resourceGroupName, automationAccountName, jobName)
}

// ListByAutomationAccount implements automation.JobsClient.ListByAutomationAccount.
func (c *JobsClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.JobListResult, automation.JobCollectionItem] {
	return automation.NewListRequest[automation.JobListResult, automation.JobCollectionItem](c.executor, &jobsOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}
