package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var testJobStreamsOperations = struct {
	Get           automation.Operation
	ListByTestJob automation.Operation
}{
	Get: automation.Operation{
		Name:       "TestJobStreams.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/runbooks/{runbookName}/draft/testJob/streams/{jobStreamId}",
		APIVersion: constants.APIVersion20180630,
	},
	ListByTestJob: automation.Operation{
		Name:       "TestJobStreams.ListByTestJob",
		Method:     http.MethodGet,
		Path:       accountPath + "/runbooks/{runbookName}/draft/testJob/streams",
		APIVersion: constants.APIVersion20180630,
		Params:     automation.ParamFilter,
	},
}

// TestJobStreamsClient implements automation.TestJobStreamsClient.
type TestJobStreamsClient struct {
	executor automation.Executor
}

// NewTestJobStreamsClient creates a new test job streams client.
func NewTestJobStreamsClient(executor automation.Executor) *TestJobStreamsClient {
	return &TestJobStreamsClient{
		executor: executor,
	}
}

// Get implements automation.TestJobStreamsClient.Get.
func (c *TestJobStreamsClient) Get(subscriptionID, resourceGroupName, automationAccountName, runbookName, jobStreamID string) *automation.Request[automation.JobStream] {
	return automation.NewRequest[automation.JobStream](c.executor, &testJobStreamsOperations.Get, subscriptionID, resourceGroupName, automationAccountName, runbookName, jobStreamID)
}

// ListByTestJob implements automation.TestJobStreamsClient.ListByTestJob.
func (c *TestJobStreamsClient) ListByTestJob(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *automation.ListRequest[automation.JobStreamListResult, automation.JobStream] {
	return automation.NewListRequest[automation.JobStreamListResult, automation.JobStream](c.executor, &testJobStreamsOperations.ListByTestJob, subscriptionID, resourceGroupName, automationAccountName, runbookName)
}
