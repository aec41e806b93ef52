package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var operationsOperations = struct {
	List automation.Operation
}{
	List: automation.Operation{
		Name:       "Operations.List",
		Method:     http.MethodGet,
		Path:       "/providers/Microsoft.Automation/operations",
		APIVersion: constants.APIVersion20200113Preview,
	},
}

// OperationsClient implements automation.OperationsClient.
type OperationsClient struct {
	executor automation.Executor
}

// NewOperationsClient creates a new operations client.
func NewOperationsClient(executor automation.Executor) *OperationsClient {
	return &OperationsClient{
		executor: executor,
	}
}

// List implements automation.OperationsClient.List.
func (c *OperationsClient) List() *automation.ListRequest[automation.OperationListResult, automation.ProviderOperation] {
	return automation.NewListRequest[automation.OperationListResult, automation.ProviderOperation](c.executor, &operationsOperations.List)
}
