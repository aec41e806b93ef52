package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var runbooksOperations = struct {
	Get                     automation.Operation
	CreateOrUpdate          automation.Operation
	Update                  automation.Operation
	Delete                  automation.Operation
	Publish                 automation.Operation
	GetContent              automation.Operation
	ListByAutomationAccount automation.Operation
}{
	Get: automation.Operation{
		Name:       "Runbooks.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/runbooks/{runbookName}",
		APIVersion: constants.APIVersion20180630,
	},
	CreateOrUpdate: automation.Operation{
		Name:       "Runbooks.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       accountPath + "/runbooks/{runbookName}",
		APIVersion: constants.APIVersion20180630,
		Body:       automation.BodyJSON,
	},
	Update: automation.Operation{
		Name:       "Runbooks.Update",
		Method:     http.MethodPatch,
		Path:       accountPath + "/runbooks/{runbookName}",
		APIVersion: constants.APIVersion20180630,
		Body:       automation.BodyJSON,
	},
	Delete: automation.Operation{
		Name:       "Runbooks.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath + "/runbooks/{runbookName}",
		APIVersion: constants.APIVersion20180630,
	},
	Publish: automation.Operation{
		Name:       "Runbooks.Publish",
		Method:     http.MethodPost,
		Path:       accountPath + "/runbooks/{runbookName}/publish",
		APIVersion: constants.APIVersion20180630,
	},
	GetContent: automation.Operation{
		Name:       "Runbooks.GetContent",
		Method:     http.MethodGet,
		Path:       accountPath + "/runbooks/{runbookName}/content",
		APIVersion: constants.APIVersion20180630,
		Response:   automation.ResponseText,
		Accept:     constants.ContentTypePowerShell,
	},
	ListByAutomationAccount: automation.Operation{
		Name:       "Runbooks.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/runbooks",
		APIVersion: constants.APIVersion20180630,
	},
}

// RunbooksClient implements automation.RunbooksClient.
type RunbooksClient struct {
	executor automation.Executor
}

// NewRunbooksClient creates a new runbooks client.
func NewRunbooksClient(executor automation.Executor) *RunbooksClient {
	return &RunbooksClient{
		executor: executor,
	}
}

// Get implements automation.RunbooksClient.Get.
func (c *RunbooksClient) Get(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *automation.Request[automation.Runbook] {
	return automation.NewRequest[automation.Runbook](c.executor, &runbooksOperations.Get, subscriptionID, resourceGroupName, automationAccountName, runbookName)
}

// CreateOrUpdate implements automation.RunbooksClient.CreateOrUpdate.
func (c *RunbooksClient) CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, runbookName string, parameters *automation.RunbookCreateOrUpdateParameters) *automation.Request[automation.Runbook] {
	return automation.NewRequest[automation.Runbook](c.executor, &runbooksOperations.CreateOrUpdate, subscriptionID, resourceGroupName, automationAccountName, runbookName).WithBody(parameters)
}

// Update implements automation.RunbooksClient.Update.
func (c *RunbooksClient) Update(subscriptionID, resourceGroupName, automationAccountName, runbookName string, parameters *automation.RunbookUpdateParameters) *automation.Request[automation.Runbook] {
	return automation.NewRequest[automation.Runbook](c.executor, &runbooksOperations.Update, subscriptionID, resourceGroupName, automationAccountName, runbookName).WithBody(parameters)
}

// Delete implements automation.RunbooksClient.Delete.
func (c *RunbooksClient) Delete(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &runbooksOperations.Delete, subscriptionID, resourceGroupName, automationAccountName, runbookName)
}

// Publish implements automation.RunbooksClient.Publish.
func (c *RunbooksClient) Publish(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &runbooksOperations.Publish, subscriptionID, resourceGroupName, automationAccountName, runbookName)
}

// GetContent implements automation.RunbooksClient.GetContent.
func (c *RunbooksClient) GetContent(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *automation.Request[string] {
	return automation.NewRequest[string](c.executor, &runbooksOperations.GetContent, subscriptionID, resourceGroupName, automationAccountName, runbookName)
}

// ListByAutomationAccount implements automation.RunbooksClient.ListByAutomationAccount.
func (c *RunbooksClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.RunbookListResult, automation.Runbook] {
	return automation.NewListRequest[automation.RunbookListResult, automation.Runbook](c.executor, &runbooksOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}
