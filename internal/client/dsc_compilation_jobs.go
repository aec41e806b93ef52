package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var dscCompilationJobsOperations = struct {
	Create                  automation.Operation
	Get                     automation.Operation
	ListByAutomationAccount automation.Operation
	GetStream               automation.Operation
}{
	Create: automation.Operation{
		Name:       "DscCompilationJobs.Create",
		Method:     http.MethodPut,
		Path:       accountPath + "/compilationjobs/{compilationJobName}",
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Get: automation.Operation{
		Name:       "DscCompilationJobs.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/compilationjobs/{compilationJobName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	ListByAutomationAccount: automation.Operation{
		Name:       "DscCompilationJobs.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/compilationjobs",
		APIVersion: constants.APIVersion20200113Preview,
		Params:     automation.ParamFilter,
	},
	GetStream: automation.Operation{
		Name:       "DscCompilationJobs.GetStream",
		Method:     http.MethodGet,
		Path:       accountPath + "/compilationjobs/{jobId}/streams/{jobStreamId}",
		APIVersion: constants.APIVersion20200113Preview,
	},
}

// DscCompilationJobsClient implements automation.DscCompilationJobsClient.
type DscCompilationJobsClient struct {
	executor automation.Executor
}

// NewDscCompilationJobsClient creates a new DSC compilation jobs client.
func NewDscCompilationJobsClient(executor automation.Executor) *DscCompilationJobsClient {
	return &DscCompilationJobsClient{
		executor: executor,
	}
}

// Create implements automation.DscCompilationJobsClient.Create.
func (c *DscCompilationJobsClient) Create(subscriptionID, resourceGroupName, automationAccountName, compilationJobName string, parameters *automation.DscCompilationJobCreateParameters) *automation.Request[automation.DscCompilationJob] {
	return automation.NewRequest[automation.DscCompilationJob](c.executor, &dscCompilationJobsOperations.Create, subscriptionID, resourceGroupName, automationAccountName, compilationJobName).WithBody(parameters)
}

// Get implements automation.DscCompilationJobsClient.Get.
func (c *DscCompilationJobsClient) Get(subscriptionID, resourceGroupName, automationAccountName, compilationJobName string) *automation.Request[automation.DscCompilationJob] {
	return automation.NewRequest[automation.DscCompilationJob](c.executor, &dscCompilationJobsOperations.Get, subscriptionID, resourceGroupName, automationAccountName, compilationJobName)
}

// ListByAutomationAccount implements automation.DscCompilationJobsClient.ListByAutomationAccount.
func (c *DscCompilationJobsClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.DscCompilationJobListResult, automation.DscCompilationJob] {
	return automation.NewListRequest[automation.DscCompilationJobListResult, automation.DscCompilationJob](c.executor, &dscCompilationJobsOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}

// GetStream implements automation.DscCompilationJobsClient.GetStream.
func (c *DscCompilationJobsClient) GetStream(subscriptionID, resourceGroupName, automationAccountName, jobID, jobStreamID string) *automation.Request[automation.JobStream] {
	return automation.NewRequest[automation.JobStream](c.executor, &dscCompilationJobsOperations.GetStream, subscriptionID, resourceGroupName, automationAccountName, jobID, jobStreamID)
}
