package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var privateLinkResourcesOperations = struct {
	List automation.Operation
}{
	List: automation.Operation{
		Name:       "PrivateLinkResources.List",
		Method:     http.MethodGet,
		Path:       accountPath + "/privateLinkResources",
		APIVersion: constants.APIVersion20200113Preview,
	},
}

// PrivateLinkResourcesClient implements automation.PrivateLinkResourcesClient.
type PrivateLinkResourcesClient struct {
	executor automation.Executor
}

// NewPrivateLinkResourcesClient creates a new private link resources client.
func NewPrivateLinkResourcesClient(executor automation.Executor) *PrivateLinkResourcesClient {
	return &PrivateLinkResourcesClient{
		executor: executor,
	}
}

// List implements automation.PrivateLinkResourcesClient.List.
func (c *PrivateLinkResourcesClient) List(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.PrivateLinkResourceListResult, automation.PrivateLinkResource] {
	return automation.NewListRequest[automation.PrivateLinkResourceListResult, automation.PrivateLinkResource](c.executor, &privateLinkResourcesOperations.List, subscriptionID, resourceGroupName, automationAccountName)
}
