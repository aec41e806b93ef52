package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var activitiesOperations = struct {
	Get          automation.Operation
	ListByModule automation.Operation
}{
	Get: automation.Operation{
		Name:       "Activities.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/modules/{moduleName}/activities/{activityName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	ListByModule: automation.Operation{
		Name:       "Activities.ListByModule",
		Method:     http.MethodGet,
		Path:       accountPath + "/modules/{moduleName}/activities",
		APIVersion: constants.APIVersion20200113Preview,
	},
}

// ActivitiesClient implements automation.ActivitiesClient.
type ActivitiesClient struct {
	executor automation.Executor
}

// NewActivitiesClient creates a new activities client.
func NewActivitiesClient(executor automation.Executor) *ActivitiesClient {
	return &ActivitiesClient{
		executor: executor,
	}
}

// Get implements automation.ActivitiesClient.Get.
func (c *ActivitiesClient) Get(subscriptionID, resourceGroupName, automationAccountName, moduleName, activityName string) *automation.Request[automation.Activity] {
	return automation.NewRequest[automation.Activity](c.executor, &activitiesOperations.Get, subscriptionID, resourceGroupName, automationAccountName, moduleName, activityName)
}

// ListByModule implements automation.ActivitiesClient.ListByModule.
func (c *ActivitiesClient) ListByModule(subscriptionID, resourceGroupName, automationAccountName, moduleName string) *automation.ListRequest[automation.ActivityListResult, automation.Activity] {
	return automation.NewListRequest[automation.ActivityListResult, automation.Activity](c.executor, &activitiesOperations.ListByModule, subscriptionID, resourceGroupName, automationAccountName, moduleName)
}
