package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var dscCompilationJobStreamsOperations = struct {
	ListByJob automation.Operation
}{
	ListByJob: automation.Operation{
		Name:       "DscCompilationJobStreams.ListByJob",
		Method:     http.MethodGet,
		Path:       accountPath + "/compilationjobs/{jobId}/streams",
		APIVersion: constants.APIVersion20200113Preview,
	},
}

// DscCompilationJobStreamsClient implements automation.DscCompilationJobStreamsClient.
type DscCompilationJobStreamsClient struct {
	executor automation.Executor
}

// NewDscCompilationJobStreamsClient creates a new DSC compilation job streams client.
func NewDscCompilationJobStreamsClient(executor automation.Executor) *DscCompilationJobStreamsClient {
	return &DscCompilationJobStreamsClient{
		executor: executor,
	}
}

// ListByJob implements automation.DscCompilationJobStreamsClient.ListByJob.
func (c *DscCompilationJobStreamsClient) ListByJob(subscriptionID, resourceGroupName, automationAccountName, jobID string) *automation.ListRequest[automation.JobStreamListResult, automation.JobStream] {
	return automation.NewListRequest[automation.JobStreamListResult, automation.JobStream](c.executor, &dscCompilationJobStreamsOperations.ListByJob, subscriptionID, resourceGroupName, automationAccountName, jobID)
}
