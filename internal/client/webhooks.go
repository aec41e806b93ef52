package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var webhooksOperations = struct {
	Get                     automation.Operation
	CreateOrUpdate          automation.Operation
	Update                  automation.Operation
	Delete                  automation.Operation
	GenerateURI             automation.Operation
	ListByAutomationAccount automation.Operation
}{
	Get: automation.Operation{
		Name:       "Webhooks.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/webhooks/{webhookName}",
		APIVersion: constants.APIVersion20151031,
	},
	CreateOrUpdate: automation.Operation{
		Name:       "Webhooks.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       accountPath + "/webhooks/{webhookName}",
		APIVersion: constants.APIVersion20151031,
		Body:       automation.BodyJSON,
	},
	Update: automation.Operation{
		Name:       "Webhooks.Update",
		Method:     http.MethodPatch,
		Path:       accountPath + "/webhooks/{webhookName}",
		APIVersion: constants.APIVersion20151031,
		Body:       automation.BodyJSON,
	},
	Delete: automation.Operation{
		Name:       "Webhooks.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath + "/webhooks/{webhookName}",
		APIVersion: constants.APIVersion20151031,
	},
	GenerateURI: automation.Operation{
		Name:       "Webhooks.GenerateURI",
		Method:     http.MethodPost,
		Path:       accountPath + "/webhooks/generateUri",
		APIVersion: constants.APIVersion20151031,
	},
	ListByAutomationAccount: automation.Operation{
		Name:       "Webhooks.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/webhooks",
		APIVersion: constants.APIVersion20151031,
		Params:     automation.ParamFilter,
	},
}

// WebhooksClient implements automation.WebhooksClient.
type WebhooksClient struct {
	executor automation.Executor
}

// NewWebhooksClient creates a new webhooks client.
func NewWebhooksClient(executor automation.Executor) *WebhooksClient {
	return &WebhooksClient{
		executor: executor,
	}
}

// Get implements automation.WebhooksClient.Get.
func (c *WebhooksClient) Get(subscriptionID, resourceGroupName, automationAccountName, webhookName string) *automation.Request[automation.Webhook] {
	return automation.NewRequest[automation.Webhook](c.executor, &webhooksOperations.Get, subscriptionID, resourceGroupName, automationAccountName, webhookName)
}

// CreateOrUpdate implements automation.WebhooksClient.CreateOrUpdate.
func (c *WebhooksClient) CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, webhookName string, parameters *automation.WebhookCreateOrUpdateParameters) *automation.Request[automation.Webhook] {
	return automation.NewRequest[automation.Webhook](c.executor, &webhooksOperations.CreateOrUpdate, subscriptionID, resourceGroupName, automationAccountName, webhookName).WithBody(parameters)
}

// Update implements automation.WebhooksClient.Update.
func (c *WebhooksClient) Update(subscriptionID, resourceGroupName, automationAccountName, webhookName string, parameters *automation.WebhookUpdateParameters) *automation.Request[automation.Webhook] {
	return automation.NewRequest[automation.Webhook](c.executor, &webhooksOperations.Update, subscriptionID, resourceGroupName, automationAccountName, webhookName).WithBody(parameters)
}

// Delete implements automation.WebhooksClient.Delete.
func (c *WebhooksClient) Delete(subscriptionID, resourceGroupName, automationAccountName, webhookName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &webhooksOperations.Delete, subscriptionID, resourceGroupName, automationAccountName, webhookName)
}

// GenerateURI implements automation.WebhooksClient.GenerateURI.
func (c *WebhooksClient) GenerateURI(subscriptionID, resourceGroupName, automationAccountName string) *automation.Request[string] {
	return automation.NewRequest[string](c.executor, &webhooksOperations.GenerateURI, subscriptionID, resourceGroupName, automationAccountName)
}

// ListByAutomationAccount implements automation.WebhooksClient.ListByAutomationAccount.
func (c *WebhooksClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.WebhookListResult, automation.Webhook] {
	return automation.NewListRequest[automation.WebhookListResult, automation.Webhook](c.executor, &webhooksOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}
