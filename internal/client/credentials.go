package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var credentialsOperations = struct {
	Get                     automation.Operation
	CreateOrUpdate          automation.Operation
	Update                  automation.Operation
	Delete                  automation.Operation
	ListByAutomationAccount automation.Operation
}{
	Get: automation.Operation{
		Name:       "Credentials.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/credentials/{credentialName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	CreateOrUpdate: automation.Operation{
		Name:       "Credentials.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       accountPath + "/credentials/{credentialName}",
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Update: automation.Operation{
		Name:       "Credentials.Update",
		Method:     http.MethodPatch,
		Path:       accountPath + "/credentials/{credentialName}",
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Delete: automation.Operation{
		Name:       "Credentials.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath + "/credentials/{credentialName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	ListByAutomationAccount: automation.Operation{
		Name:       "Credentials.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/credentials",
		APIVersion: constants.APIVersion20200113Preview,
	},
}

// CredentialsClient implements automation.CredentialsClient.
type CredentialsClient struct {
	executor automation.Executor
}

// NewCredentialsClient creates a new credentials client.
func NewCredentialsClient(executor automation.Executor) *CredentialsClient {
	return &CredentialsClient{
		executor: executor,
	}
}

// Get implements automation.CredentialsClient.Get.
func (c *CredentialsClient) Get(subscriptionID, resourceGroupName, automationAccountName, credentialName string) *automation.Request[automation.Credential] {
	return automation.NewRequest[automation.Credential](c.executor, &credentialsOperations.Get, subscriptionID, resourceGroupName, automationAccountName, credentialName)
}

// CreateOrUpdate implements automation.CredentialsClient.CreateOrUpdate.
func (c *CredentialsClient) CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, credentialName string, parameters *automation.CredentialCreateOrUpdateParameters) *automation.Request[automation.Credential] {
	return automation.NewRequest[automation.Credential](c.executor, &credentialsOperations.CreateOrUpdate, subscriptionID, resourceGroupName, automationAccountName, credentialName).WithBody(parameters)
}

// Update implements automation.CredentialsClient.Update.
func (c *CredentialsClient) Update(subscriptionID, resourceGroupName, automationAccountName, credentialName string, parameters *automation.CredentialUpdateParameters) *automation.Request[automation.Credential] {
	return automation.NewRequest[automation.Credential](c.executor, &credentialsOperations.Update, subscriptionID, resourceGroupName, automationAccountName, credentialName).WithBody(parameters)
}

// Delete implements automation.CredentialsClient.Delete.
func (c *CredentialsClient) Delete(subscriptionID, resourceGroupName, automationAccountName, credentialName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &credentialsOperations.Delete, subscriptionID, resourceGroupName, automationAccountName, credentialName)
}

// ListByAutomationAccount implements automation.CredentialsClient.ListByAutomationAccount.
func (c *CredentialsClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.CredentialListResult, automation.Credential] {
	return automation.NewListRequest[automation.CredentialListResult, automation.Credential](c.executor, &credentialsOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}
