package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var testJobOperations = struct {
	Create  automation.Operation
	Get     automation.Operation
	Resume  automation.Operation
	Stop    automation.Operation
	Suspend automation.Operation
}{
	Create: automation.Operation{
		Name:       "TestJob.Create",
		Method:     http.MethodPut,
		Path:       accountPath + "/runbooks/{runbookName}/draft/testJob",
		APIVersion: constants.APIVersion20180630,
		Body:       automation.BodyJSON,
	},
	Get: automation.Operation{
		Name:       "TestJob.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/runbooks/{runbookName}/draft/testJob",
		APIVersion: constants.APIVersion20180630,
	},
	Resume: automation.Operation{
		Name:       "TestJob.Resume",
		Method:     http.MethodPost,
		Path:       accountPath + "/runbooks/{runbookName}/draft/testJob/resume",
		APIVersion: constants.APIVersion20180630,
	},
	Stop: automation.Operation{
		Name:       "TestJob.Stop",
		Method:     http.MethodPost,
		Path:       accountPath + "/runbooks/{runbookName}/draft/testJob/stop",
		APIVersion: constants.APIVersion20180630,
	},
	Suspend: automation.Operation{
		Name:       "TestJob.Suspend",
		Method:     http.MethodPost,
		Path:       accountPath + "/runbooks/{runbookName}/draft/testJob/suspend",
		APIVersion: constants.APIVersion20180630,
	},
}

// TestJobClient implements automation.TestJobClient.
type TestJobClient struct {
	executor automation.Executor
}

// NewTestJobClient creates a new test job client.
func NewTestJobClient(executor automation.Executor) *TestJobClient {
	return &TestJobClient{
		executor: executor,
	}
}

// Create implements automation.TestJobClient.Create.
func (c *TestJobClient) Create(subscriptionID, resourceGroupName, automationAccountName, runbookName string, parameters *automation.TestJobCreateParameters) *automation.Request[automation.TestJob] {
	return automation.NewRequest[automation.TestJob](c.executor, &testJobOperations.Create, subscriptionID, resourceGroupName, automationAccountName, runbookName).WithBody(parameters)
}

// Get implements automation.TestJobClient.Get.
func (c *TestJobClient) Get(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *automation.Request[automation.TestJob] {
	return automation.NewRequest[automation.TestJob](c.executor, &testJobOperations.Get, subscriptionID, resourceGroupName, automationAccountName, runbookName)
}

// Resume implements automation.TestJobClient.Resume.
func (c *TestJobClient) Resume(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &testJobOperations.Resume, subscriptionID, resourceGroupName, automationAccountName, runbookName)
}

// Stop implements automation.TestJobClient.Stop.
func (c *TestJobClient) Stop(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &testJobOperations.Stop, subscriptionID, resourceGroupName, automationAccountName, runbookName)
}

// Suspend implements automation.TestJobClient.Suspend.
func (c *TestJobClient) Suspend(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &testJobOperations.Suspend, subscriptionID, resourceGroupName, automationAccountName, runbookName)
}
