package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var modulesOperations = struct {
	Get                     automation.Operation
	CreateOrUpdate          automation.Operation
	Update                  automation.Operation
	Delete                  automation.Operation
	ListByAutomationAccount automation.Operation
}{
	Get: automation.Operation{
		Name:       "Modules.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/modules/{moduleName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	CreateOrUpdate: automation.Operation{
		Name:       "Modules.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       accountPath + "/modules/{moduleName}",
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Update: automation.Operation{
		Name:       "Modules.Update",
		Method:     http.MethodPatch,
		Path:       accountPath + "/modules/{moduleName}",
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Delete: automation.Operation{
		Name:       "Modules.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath + "/modules/{moduleName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	ListByAutomationAccount: automation.Operation{
		Name:       "Modules.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/modules",
		APIVersion: constants.APIVersion20200113Preview,
	},
}

// ModulesClient implements automation.ModulesClient.
type ModulesClient struct {
	executor automation.Executor
}

// NewModulesClient creates a new modules client.
func NewModulesClient(executor automation.Executor) *ModulesClient {
	return &ModulesClient{
		executor: executor,
	}
}

// Get implements automation.ModulesClient.Get.
func (c *ModulesClient) Get(subscriptionID, resourceGroupName, automationAccountName, moduleName string) *automation.Request[automation.Module] {
	return automation.NewRequest[automation.Module](c.executor, &modulesOperations.Get, subscriptionID, resourceGroupName, automationAccountName, moduleName)
}

// CreateOrUpdate implements automation.ModulesClient.CreateOrUpdate.
func (c *ModulesClient) CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, moduleName string, parameters *automation.ModuleCreateOrUpdateParameters) *automation.Request[automation.Module] {
	return automation.NewRequest[automation.Module](c.executor, &modulesOperations.CreateOrUpdate, subscriptionID, resourceGroupName, automationAccountName, moduleName).WithBody(parameters)
}

// Update implements automation.ModulesClient.Update.
func (c *ModulesClient) Update(subscriptionID, resourceGroupName, automationAccountName, moduleName string, parameters *automation.ModuleUpdateParameters) *automation.Request[automation.Module] {
	return automation.NewRequest[automation.Module](c.executor, &modulesOperations.Update, subscriptionID, resourceGroupName, automationAccountName, moduleName).WithBody(parameters)
}

// Delete implements automation.ModulesClient.Delete.
func (c *ModulesClient) Delete(subscriptionID, resourceGroupName, automationAccountName, moduleName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &modulesOperations.Delete, subscriptionID, resourceGroupName, automationAccountName, moduleName)
}

// ListByAutomationAccount implements automation.ModulesClient.ListByAutomationAccount.
func (c *ModulesClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.ModuleListResult, automation.Module] {
	return automation.NewListRequest[automation.ModuleListResult, automation.Module](c.executor, &modulesOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}
