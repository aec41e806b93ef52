package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var jobSchedulesOperations = struct {
	Get                     automation.Operation
	Create                  automation.Operation
	Delete                  automation.Operation
	ListByAutomationAccount automation.Operation
}{
	Get: automation.Operation{
		Name:       "JobSchedules.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/jobSchedules/{jobScheduleId}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	Create: automation.Operation{
		Name:       "JobSchedules.Create",
		Method:     http.MethodPut,
		Path:       accountPath + "/jobSchedules/{jobScheduleId}",
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Delete: automation.Operation{
		Name:       "JobSchedules.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath + "/jobSchedules/{jobScheduleId}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	ListByAutomationAccount: automation.Operation{
		Name:       "JobSchedules.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/jobSchedules",
		APIVersion: constants.APIVersion20200113Preview,
		Params:     automation.ParamFilter,
	},
}

// JobSchedulesClient implements automation.JobSchedulesClient.
type JobSchedulesClient struct {
	executor automation.Executor
}

// NewJobSchedulesClient creates a new job schedules client.
func NewJobSchedulesClient(executor automation.Executor) *JobSchedulesClient {
	return &JobSchedulesClient{
		executor: executor,
	}
}

// Get implements automation.JobSchedulesClient.Get.
func (c *JobSchedulesClient) Get(subscriptionID, resourceGroupName, automationAccountName, jobScheduleID string) *automation.Request[automation.JobSchedule] {
	return automation.NewRequest[automation.JobSchedule](c.executor, &jobSchedulesOperations.Get, subscriptionID, resourceGroupName, automationAccountName, jobScheduleID)
}

// Create implements automation.JobSchedulesClient.Create.
func (c *JobSchedulesClient) Create(subscriptionID, resourceGroupName, automationAccountName, jobScheduleID string, parameters *automation.JobScheduleCreateParameters) *automation.Request[automation.JobSchedule] {
	return automation.NewRequest[automation.JobSchedule](c.executor, &jobSchedulesOperations.Create, subscriptionID, resourceGroupName, automationAccountName, jobScheduleID).WithBody(parameters)
}

// Delete implements automation.JobSchedulesClient.Delete.
func (c *JobSchedulesClient) Delete(subscriptionID, resourceGroupName, automationAccountName, jobScheduleID string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &jobSchedulesOperations.Delete, subscriptionID, resourceGroupName, automationAccountName, jobScheduleID)
}

// ListByAutomationAccount implements automation.JobSchedulesClient.ListByAutomationAccount.
func (c *JobSchedulesClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.JobScheduleListResult, automation.JobSchedule] {
	return automation.NewListRequest[automation.JobScheduleListResult, automation.JobSchedule](c.executor, &jobSchedulesOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}
