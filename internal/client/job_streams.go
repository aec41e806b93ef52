package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var jobStreamsOperations = struct {
	Get       automation.Operation
	ListByJob automation.Operation
}{
	Get: automation.Operation{
		Name:       "JobStreams.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/jobs/{jobName}/streams/{jobStreamId}",
		APIVersion: constants.APIVersion20190601,
		Params:     automation.ParamClientRequestID,
	},
	ListByJob: automation.Operation{
		Name:       "JobStreams.ListByJob",
		Method:     http.MethodGet,
		Path:       accountPath + "/jobs/{jobName}/streams",
		APIVersion: constants.APIVersion20190601,
		Params:     automation.ParamFilter | automation.ParamClientRequestID,
	},
}

// JobStreamsClient implements automation.JobStreamsClient.
type JobStreamsClient struct {
	executor automation.Executor
}

// NewJobStreamsClient creates a new job streams client.
func NewJobStreamsClient(executor automation.Executor) *JobStreamsClient {
	return &JobStreamsClient{
		executor: executor,
	}
}

// Get implements automation.JobStreamsClient.Get.
func (c *JobStreamsClient) Get(subscriptionID, resourceGroupName, automationAccountName, jobName, jobStreamID string) *automation.Request[automation.JobStream] {
	return automation.NewRequest[automation.JobStream](c.executor, &jobStreamsOperations.Get, subscriptionID, resourceGroupName, automationAccountName, jobName, jobStreamID)
}

// ListByJob implements automation.JobStreamsClient.ListByJob.
func (c *JobStreamsClient) ListByJob(subscriptionID, resourceGroupName, automationAccountName, jobName string) *automation.ListRequest[automation.JobStreamListResult, automation.JobStream] {
	return automation.NewListRequest[automation.JobStreamListResult, automation.JobStream](c.executor, &jobStreamsOperations.ListByJob, subscriptionID, resourceGroupName, automationAccountName, jobName)
}
