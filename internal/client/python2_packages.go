package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var python2PackagesOperations = struct {
	Get                     automation.Operation
	CreateOrUpdate          automation.Operation
	Update                  automation.Operation
	Delete                  automation.Operation
	ListByAutomationAccount automation.Operation
}{
	Get: automation.Operation{
		Name:       "Python2Packages.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/python2Packages/{packageName}",
		APIVersion: constants.APIVersion20180630,
	},
	CreateOrUpdate: automation.Operation{
		Name:       "Python2Packages.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       accountPath + "/python2Packages/{packageName}",
		APIVersion: constants.APIVersion20180630,
		Body:       automation.BodyJSON,
	},
	Update: automation.Operation{
		Name:       "Python2Packages.Update",
		Method:     http.MethodPatch,
		Path:       accountPath + "/python2Packages/{packageName}",
		APIVersion: constants.APIVersion20180630,
		Body:       automation.BodyJSON,
	},
	Delete: automation.Operation{
		Name:       "Python2Packages.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath + "/python2Packages/{packageName}",
		APIVersion: constants.APIVersion20180630,
	},
	ListByAutomationAccount: automation.Operation{
		Name:       "Python2Packages.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/python2Packages",
		APIVersion: constants.APIVersion20180630,
	},
}

// Python2PackagesClient implements automation.Python2PackagesClient.
type Python2PackagesClient struct {
	executor automation.Executor
}

// NewPython2PackagesClient creates a new python2 packages client.
func NewPython2PackagesClient(executor automation.Executor) *Python2PackagesClient {
	return &Python2PackagesClient{
		executor: executor,
	}
}

// Get implements automation.Python2PackagesClient.Get.
func (c *Python2PackagesClient) Get(subscriptionID, resourceGroupName, automationAccountName, packageName string) *automation.Request[automation.Module] {
	return automation.NewRequest[automation.Module](c.executor, &python2PackagesOperations.Get, subscriptionID, resourceGroupName, automationAccountName, packageName)
}

// CreateOrUpdate implements automation.Python2PackagesClient.CreateOrUpdate.
func (c *Python2PackagesClient) CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, packageName string, parameters *automation.PythonPackageCreateParameters) *automation.Request[automation.Module] {
	return automation.NewRequest[automation.Module](c.executor, &python2PackagesOperations.CreateOrUpdate, subscriptionID, resourceGroupName, automationAccountName, packageName).WithBody(parameters)
}

// Update implements automation.Python2PackagesClient.Update.
func (c *Python2PackagesClient) Update(subscriptionID, resourceGroupName, automationAccountName, packageName string, parameters *automation.PythonPackageUpdateParameters) *automation.Request[automation.Module] {
	return automation.NewRequest[automation.Module](c.executor, &python2PackagesOperations.Update, subscriptionID, resourceGroupName, automationAccountName, packageName).WithBody(parameters)
}

// Delete implements automation.Python2PackagesClient.Delete.
func (c *Python2PackagesClient) Delete(subscriptionID, resourceGroupName, automationAccountName, packageName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &python2PackagesOperations.Delete, subscriptionID, resourceGroupName, automationAccountName, packageName)
}

// ListByAutomationAccount implements automation.Python2PackagesClient.ListByAutomationAccount.
func (c *Python2PackagesClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.ModuleListResult, automation.Module] {
	return automation.NewListRequest[automation.ModuleListResult, automation.Module](c.executor, &python2PackagesOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}
