package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var schedulesOperations = struct {
	Get                     automation.Operation
	CreateOrUpdate          automation.Operation
	Update                  automation.Operation
	Delete                  automation.Operation
	ListByAutomationAccount automation.Operation
}{
	Get: automation.Operation{
		Name:       "Schedules.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/schedules/{scheduleName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	CreateOrUpdate: automation.Operation{
		Name:       "Schedules.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       accountPath + "/schedules/{scheduleName}",
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Update: automation.Operation{
		Name:       "Schedules.Update",
		Method:     http.MethodPatch,
		Path:       accountPath + "/schedules/{scheduleName}",
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Delete: automation.Operation{
		Name:       "Schedules.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath + "/schedules/{scheduleName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	ListByAutomationAccount: automation.Operation{
		Name:       "Schedules.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/schedules",
		APIVersion: constants.APIVersion20200113Preview,
	},
}

// SchedulesClient implements automation.SchedulesClient.
type SchedulesClient struct {
	executor automation.Executor
}

// NewSchedulesClient creates a new schedules client.
func NewSchedulesClient(executor automation.Executor) *SchedulesClient {
	return &SchedulesClient{
		executor: executor,
	}
}

// Get implements automation.SchedulesClient.Get.
func (c *SchedulesClient) Get(subscriptionID, resourceGroupName, automationAccountName, scheduleName string) *automation.Request[automation.Schedule] {
	return automation.NewRequest[automation.Schedule](c.executor, &schedulesOperations.Get, subscriptionID, resourceGroupName, automationAccountName, scheduleName)
}

// CreateOrUpdate implements automation.SchedulesClient.CreateOrUpdate.
func (c *SchedulesClient) CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, scheduleName string, parameters *automation.ScheduleCreateOrUpdateParameters) *automation.Request[automation.Schedule] {
	return automation.NewRequest[automation.Schedule](c.executor, &schedulesOperations.CreateOrUpdate, subscriptionID, resourceGroupName, automationAccountName, scheduleName).WithBody(parameters)
}

// Update implements automation.SchedulesClient.Update.
func (c *SchedulesClient) Update(subscriptionID, resourceGroupName, automationAccountName, scheduleName string, parameters *automation.ScheduleUpdateParameters) *automation.Request[automation.Schedule] {
	return automation.NewRequest[automation.Schedule](c.executor, &schedulesOperations.Update, subscriptionID, resourceGroupName, automationAccountName, scheduleName).WithBody(parameters)
}

// Delete implements automation.SchedulesClient.Delete.
func (c *SchedulesClient) Delete(subscriptionID, resourceGroupName, automationAccountName, scheduleName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &schedulesOperations.Delete, subscriptionID, resourceGroupName, automationAccountName, scheduleName)
}

// ListByAutomationAccount implements automation.SchedulesClient.ListByAutomationAccount.
func (c *SchedulesClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.ScheduleListResult, automation.Schedule] {
	return automation.NewListRequest[automation.ScheduleListResult, automation.Schedule](c.executor, &schedulesOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}
