package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var sourceControlsOperations = struct {
	Get                     automation.Operation
	CreateOrUpdate          automation.Operation
	Update                  automation.Operation
	Delete                  automation.Operation
	ListByAutomationAccount automation.Operation
}{
	Get: automation.Operation{
		Name:       "SourceControls.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/sourceControls/{sourceControlName}",
		APIVersion: constants.APIVersion20190601,
	},
	CreateOrUpdate: automation.Operation{
		Name:       "SourceControls.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       accountPath + "/sourceControls/{sourceControlName}",
		APIVersion: constants.APIVersion20190601,
		Body:       automation.BodyJSON,
	},
	Update: automation.Operation{
		Name:       "SourceControls.Update",
		Method:     http.MethodPatch,
		Path:       accountPath + "/sourceControls/{sourceControlName}",
		APIVersion: constants.APIVersion20190601,
		Body:       automation.BodyJSON,
	},
	Delete: automation.Operation{
		Name:       "SourceControls.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath + "/sourceControls/{sourceControlName}",
		APIVersion: constants.APIVersion20190601,
	},
	ListByAutomationAccount: automation.Operation{
		Name:       "SourceControls.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/sourceControls",
		APIVersion: constants.APIVersion20190601,
		Params:     automation.ParamFilter,
	},
}

// SourceControlsClient implements automation.SourceControlsClient.
type SourceControlsClient struct {
	executor automation.Executor
}

// NewSourceControlsClient creates a new source controls client.
func NewSourceControlsClient(executor automation.Executor) *SourceControlsClient {
	return &SourceControlsClient{
		executor: executor,
	}
}

// Get implements automation.SourceControlsClient.Get.
func (c *SourceControlsClient) Get(subscriptionID, resourceGroupName, automationAccountName, sourceControlName string) *automation.Request[automation.SourceControl] {
	return automation.NewRequest[automation.SourceControl](c.executor, &sourceControlsOperations.Get, subscriptionID, resourceGroupName, automationAccountName, sourceControlName)
}

// CreateOrUpdate implements automation.SourceControlsClient.CreateOrUpdate.
func (c *SourceControlsClient) CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, sourceControlName string, parameters *automation.SourceControlCreateOrUpdateParameters) *automation.Request[automation.SourceControl] {
	return automation.NewRequest[automation.SourceControl](c.executor, &sourceControlsOperations.CreateOrUpdate, subscriptionID, resourceGroupName, automationAccountName, sourceControlName).WithBody(parameters)
}

// Update implements automation.SourceControlsClient.Update.
func (c *SourceControlsClient) Update(subscriptionID, resourceGroupName, automationAccountName, sourceControlName string, parameters *automation.SourceControlUpdateParameters) *automation.Request[automation.SourceControl] {
	return automation.NewRequest[automation.SourceControl](c.executor, &sourceControlsOperations.Update, subscriptionID, resourceGroupName, automationAccountName, sourceControlName).WithBody(parameters)
}

// Delete implements automation.SourceControlsClient.Delete.
func (c *SourceControlsClient) Delete(subscriptionID, resourceGroupName, automationAccountName, sourceControlName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &sourceControlsOperations.Delete, subscriptionID, resourceGroupName, automationAccountName, sourceControlName)
}

// ListByAutomationAccount implements automation.SourceControlsClient.ListByAutomationAccount.
func (c *SourceControlsClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.SourceControlListResult, automation.SourceControl] {
	return automation.NewListRequest[automation.SourceControlListResult, automation.SourceControl](c.executor, &sourceControlsOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}
