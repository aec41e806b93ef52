package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var variablesOperations = struct {
	Get                     automation.Operation
	CreateOrUpdate          automation.Operation
	Update                  automation.Operation
	Delete                  automation.Operation
	ListByAutomationAccount automation.Operation
}{
	Get: automation.Operation{
		Name:       "Variables.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/variables/{variableName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	CreateOrUpdate: automation.Operation{
		Name:       "Variables.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       accountPath + "/variables/{variableName}",
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Update: automation.Operation{
		Name:       "Variables.Update",
		Method:     http.MethodPatch,
		Path:       accountPath + "/variables/{variableName}",
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Delete: automation.Operation{
		Name:       "Variables.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath + "/variables/{variableName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	ListByAutomationAccount: automation.Operation{
		Name:       "Variables.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/variables",
		APIVersion: constants.APIVersion20200113Preview,
	},
}

// VariablesClient implements automation.VariablesClient.
type VariablesClient struct {
	executor automation.Executor
}

// NewVariablesClient creates a new variables client.
func NewVariablesClient(executor automation.Executor) *VariablesClient {
	return &VariablesClient{
		executor: executor,
	}
}

// Get implements automation.VariablesClient.Get.
func (c *VariablesClient) Get(subscriptionID, resourceGroupName, automationAccountName, variableName string) *automation.Request[automation.Variable] {
	return automation.NewRequest[automation.Variable](c.executor, &variablesOperations.Get, subscriptionID, resourceGroupName, automationAccountName, variableName)
}

// CreateOrUpdate implements automation.VariablesClient.CreateOrUpdate.
func (c *VariablesClient) CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, variableName string, parameters *automation.VariableCreateOrUpdateParameters) *automation.Request[automation.Variable] {
	return automation.NewRequest[automation.Variable](c.executor, &variablesOperations.CreateOrUpdate, subscriptionID, resourceGroupName, automationAccountName, variableName).WithBody(parameters)
}

// Update implements automation.VariablesClient.Update.
func (c *VariablesClient) Update(subscriptionID, resourceGroupName, automationAccountName, variableName string, parameters *automation.VariableUpdateParameters) *automation.Request[automation.Variable] {
	return automation.NewRequest[automation.Variable](c.executor, &variablesOperations.Update, subscriptionID, resourceGroupName, automationAccountName, variableName).WithBody(parameters)
}

// Delete implements automation.VariablesClient.Delete.
func (c *VariablesClient) Delete(subscriptionID, resourceGroupName, automationAccountName, variableName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &variablesOperations.Delete, subscriptionID, resourceGroupName, automationAccountName, variableName)
}

// ListByAutomationAccount implements automation.VariablesClient.ListByAutomationAccount.
func (c *VariablesClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.VariableListResult, automation.Variable] {
	return automation.NewListRequest[automation.VariableListResult, automation.Variable](c.executor, &variablesOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}
