package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var automationAccountsOperations = struct {
	Get                 automation.Operation
	CreateOrUpdate      automation.Operation
	Update              automation.Operation
	Delete              automation.Operation
	ListByResourceGroup automation.Operation
	List                automation.Operation
}{
	Get: automation.Operation{
		Name:       "AutomationAccounts.Get",
		Method:     http.MethodGet,
		Path:       accountPath,
		APIVersion: constants.APIVersion20200113Preview,
	},
	CreateOrUpdate: automation.Operation{
		Name:       "AutomationAccounts.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       accountPath,
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Update: automation.Operation{
		Name:       "AutomationAccounts.Update",
		Method:     http.MethodPatch,
		Path:       accountPath,
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Delete: automation.Operation{
		Name:       "AutomationAccounts.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath,
		APIVersion: constants.APIVersion20200113Preview,
	},
	ListByResourceGroup: automation.Operation{
		Name:       "AutomationAccounts.ListByResourceGroup",
		Method:     http.MethodGet,
		Path:       "/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/Microsoft.Automation/automationAccounts",
		APIVersion: constants.APIVersion20200113Preview,
	},
	List: automation.Operation{
		Name:       "AutomationAccounts.List",
		Method:     http.MethodGet,
		Path:       "/subscriptions/{subscriptionId}/providers/Microsoft.Automation/automationAccounts",
		APIVersion: constants.APIVersion20200113Preview,
	},
}

// AutomationAccountsClient implements automation.AutomationAccountsClient.
type AutomationAccountsClient struct {
	executor automation.Executor
}

// NewAutomationAccountsClient creates a new automation accounts client.
func NewAutomationAccountsClient(executor automation.Executor) *AutomationAccountsClient {
	return &AutomationAccountsClient{
		executor: executor,
	}
}

// Get implements automation.AutomationAccountsClient.Get.
func (c *AutomationAccountsClient) Get(subscriptionID, resourceGroupName, automationAccountName string) *automation.Request[automation.AutomationAccount] {
	return automation.NewRequest[automation.AutomationAccount](c.executor, &automationAccountsOperations.Get, subscriptionID, resourceGroupName, automationAccountName)
}

// CreateOrUpdate implements automation.AutomationAccountsClient.CreateOrUpdate.
func (c *AutomationAccountsClient) CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName string, parameters *automation.AutomationAccountCreateOrUpdateParameters) *automation.Request[automation.AutomationAccount] {
	return automation.NewRequest[automation.AutomationAccount](c.executor, &automationAccountsOperations.CreateOrUpdate, subscriptionID, resourceGroupName, automationAccountName).WithBody(parameters)
}

// Update implements automation.AutomationAccountsClient.Update.
func (c *AutomationAccountsClient) Update(subscriptionID, resourceGroupName, automationAccountName string, parameters *automation.AutomationAccountUpdateParameters) *automation.Request[automation.AutomationAccount] {
	return automation.NewRequest[automation.AutomationAccount](c.executor, &automationAccountsOperations.Update, subscriptionID, resourceGroupName, automationAccountName).WithBody(parameters)
}

// Delete implements automation.AutomationAccountsClient.Delete.
func (c *AutomationAccountsClient) Delete(subscriptionID, resourceGroupName, automationAccountName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &automationAccountsOperations.Delete, subscriptionID, resourceGroupName, automationAccountName)
}

// ListByResourceGroup implements automation.AutomationAccountsClient.ListByResourceGroup.
func (c *AutomationAccountsClient) ListByResourceGroup(subscriptionID, resourceGroupName string) *automation.ListRequest[automation.AutomationAccountListResult, automation.AutomationAccount] {
	return automation.NewListRequest[automation.AutomationAccountListResult, automation.AutomationAccount](c.executor, &automationAccountsOperations.ListByResourceGroup, subscriptionID, resourceGroupName)
}

// List implements automation.AutomationAccountsClient.List.
func (c *AutomationAccountsClient) List(subscriptionID string) *automation.ListRequest[automation.AutomationAccountListResult, automation.AutomationAccount] {
	return automation.NewListRequest[automation.AutomationAccountListResult, automation.AutomationAccount](c.executor, &automationAccountsOperations.List, subscriptionID)
}
