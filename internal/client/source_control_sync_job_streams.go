package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var sourceControlSyncJobStreamsOperations = struct {
	ListBySyncJob automation.Operation
	Get           automation.Operation
}{
	ListBySyncJob: automation.Operation{
		Name:       "SourceControlSyncJobStreams.ListBySyncJob",
		Method:     http.MethodGet,
		Path:       accountPath + "/sourceControls/{sourceControlName}/sourceControlSyncJobs/{sourceControlSyncJobId}/streams",
		APIVersion: constants.APIVersion20190601,
		Params:     automation.ParamFilter,
	},
	Get: automation.Operation{
		Name:       "SourceControlSyncJobStreams.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/sourceControls/{sourceControlName}/sourceControlSyncJobs/{sourceControlSyncJobId}/streams/{streamId}",
		APIVersion: constants.APIVersion20190601,
	},
}

// SourceControlSyncJobStreamsClient implements automation.SourceControlSyncJobStreamsClient.
type SourceControlSyncJobStreamsClient struct {
	executor automation.Executor
}

// NewSourceControlSyncJobStreamsClient creates a new source control sync job streams client.
func NewSourceControlSyncJobStreamsClient(executor automation.Executor) *SourceControlSyncJobStreamsClient {
	return &SourceControlSyncJobStreamsClient{
		executor: executor,
	}
}

// ListBySyncJob implements automation.SourceControlSyncJobStreamsClient.ListBySyncJob.
func (c *SourceControlSyncJobStreamsClient) ListBySyncJob(subscriptionID, resourceGroupName, automationAccountName, sourceControlName, sourceControlSyncJobID string) *automation.ListRequest[automation.SourceControlSyncJobStreamsListBySyncJob, automation.SourceControlSyncJobStream] {
	return automation.NewListRequest[automation.SourceControlSyncJobStreamsListBySyncJob, automation.SourceControlSyncJobStream](c.executor, &sourceControlSyncJobStreamsOperations.ListBySyncJob, subscriptionID, resourceGroupName, automationAccountName, sourceControlName, sourceControlSyncJobID)
}

// Get implements automation.SourceControlSyncJobStreamsClient.Get.
func (c *SourceControlSyncJobStreamsClient) Get(subscriptionID, resourceGroupName, automationAccountName, sourceControlName, sourceControlSyncJobID, streamID string) *automation.Request[automation.SourceControlSyncJobStreamByID] {
	return automation.NewRequest[automation.SourceControlSyncJobStreamByID](c.executor, &sourceControlSyncJobStreamsOperations.Get, subscriptionID, resourceGroupName, automationAccountName, sourceControlName, sourceControlSyncJobID, streamID)
}
