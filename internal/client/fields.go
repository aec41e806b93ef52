package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var fieldsOperations = struct {
	ListByType automation.Operation
}{
	ListByType: automation.Operation{
		Name:       "Fields.ListByType",
		Method:     http.MethodGet,
		Path:       accountPath + "/modules/{moduleName}/types/{typeName}/fields",
		APIVersion: constants.APIVersion20200113Preview,
	},
}

// FieldsClient implements automation.FieldsClient.
type FieldsClient struct {
	executor automation.Executor
}

// NewFieldsClient creates a new fields client.
func NewFieldsClient(executor automation.Executor) *FieldsClient {
	return &FieldsClient{
		executor: executor,
	}
}

// ListByType implements automation.FieldsClient.ListByType.
func (c *FieldsClient) ListByType(subscriptionID, resourceGroupName, automationAccountName, moduleName, typeName string) *automation.ListRequest[automation.TypeFieldListResult, automation.TypeField] {
	return automation.NewListRequest[automation.TypeFieldListResult, automation.TypeField](c.executor, &fieldsOperations.ListByType, subscriptionID, resourceGroupName, automationAccountName, moduleName, typeName)
}
