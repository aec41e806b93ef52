package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var watchersOperations = struct {
	Get                     automation.Operation
	CreateOrUpdate          automation.Operation
	Update                  automation.Operation
	Delete                  automation.Operation
	Start                   automation.Operation
	Stop                    automation.Operation
	ListByAutomationAccount automation.Operation
}{
	Get: automation.Operation{
		Name:       "Watchers.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/watchers/{watcherName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	CreateOrUpdate: automation.Operation{
		Name:       "Watchers.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       accountPath + "/watchers/{watcherName}",
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Update: automation.Operation{
		Name:       "Watchers.Update",
		Method:     http.MethodPatch,
		Path:       accountPath + "/watchers/{watcherName}",
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Delete: automation.Operation{
		Name:       "Watchers.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath + "/watchers/{watcherName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	Start: automation.Operation{
		Name:       "Watchers.Start",
		Method:     http.MethodPost,
		Path:       accountPath + "/watchers/{watcherName}/start",
		APIVersion: constants.APIVersion20200113Preview,
	},
	Stop: automation.Operation{
		Name:       "Watchers.Stop",
		Method:     http.MethodPost,
		Path:       accountPath + "/watchers/{watcherName}/stop",
		APIVersion: constants.APIVersion20200113Preview,
	},
	ListByAutomationAccount: automation.Operation{
		Name:       "Watchers.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/watchers",
		APIVersion: constants.APIVersion20200113Preview,
		Params:     automation.ParamFilter,
	},
}

// WatchersClient implements automation.WatchersClient.
type WatchersClient struct {
	executor automation.Executor
}

// NewWatchersClient creates a new watchers client.
func NewWatchersClient(executor automation.Executor) *WatchersClient {
	return &WatchersClient{
		executor: executor,
	}
}

// Get implements automation.WatchersClient.Get.
func (c *WatchersClient) Get(subscriptionID, resourceGroupName, automationAccountName, watcherName string) *automation.Request[automation.Watcher] {
	return automation.NewRequest[automation.Watcher](c.executor, &watchersOperations.Get, subscriptionID, resourceGroupName, automationAccountName, watcherName)
}

// CreateOrUpdate implements automation.WatchersClient.CreateOrUpdate.
func (c *WatchersClient) CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, watcherName string, parameters *automation.Watcher) *automation.Request[automation.Watcher] {
	return automation.NewRequest[automation.Watcher](c.executor, &watchersOperations.CreateOrUpdate, subscriptionID, resourceGroupName, automationAccountName, watcherName).WithBody(parameters)
}

// Update implements automation.WatchersClient.Update.
func (c *WatchersClient) Update(subscriptionID, resourceGroupName, automationAccountName, watcherName string, parameters *automation.WatcherUpdateParameters) *automation.Request[automation.Watcher] {
	return automation.NewRequest[automation.Watcher](c.executor, &watchersOperations.Update, subscriptionID, resourceGroupName, automationAccountName, watcherName).WithBody(parameters)
}

// Delete implements automation.WatchersClient.Delete.
func (c *WatchersClient) Delete(subscriptionID, resourceGroupName, automationAccountName, watcherName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &watchersOperations.Delete, subscriptionID, resourceGroupName, automationAccountName, watcherName)
}

// Start implements automation.WatchersClient.Start.
func (c *WatchersClient) Start(subscriptionID, resourceGroupName, automationAccountName, watcherName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &watchersOperations.Start, subscriptionID, resourceGroupName, automationAccountName, watcherName)
}

// Stop implements automation.WatchersClient.Stop.
func (c *WatchersClient) Stop(subscriptionID, resourceGroupName, automationAccountName, watcherName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &watchersOperations.Stop, subscriptionID, resourceGroupName, automationAccountName, watcherName)
}

// ListByAutomationAccount implements automation.WatchersClient.ListByAutomationAccount.
func (c *WatchersClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.WatcherListResult, automation.Watcher] {
	return automation.NewListRequest[automation.WatcherListResult, automation.Watcher](c.executor, &watchersOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}
