package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var objectDataTypesOperations = struct {
	ListFieldsByModuleAndType automation.Operation
	ListFieldsByType          automation.Operation
}{
	ListFieldsByModuleAndType: automation.Operation{
		Name:       "ObjectDataTypes.ListFieldsByModuleAndType",
		Method:     http.MethodGet,
		Path:       accountPath + "/modules/{moduleName}/objectDataTypes/{typeName}/fields",
		APIVersion: constants.APIVersion20200113Preview,
	},
	ListFieldsByType: automation.Operation{
		Name:       "ObjectDataTypes.ListFieldsByType",
		Method:     http.MethodGet,
		Path:       accountPath + "/objectDataTypes/{typeName}/fields",
		APIVersion: constants.APIVersion20200113Preview,
	},
}

// ObjectDataTypesClient implements automation.ObjectDataTypesClient.
type ObjectDataTypesClient struct {
	executor automation.Executor
}

// NewObjectDataTypesClient creates a new object data types client.
func NewObjectDataTypesClient(executor automation.Executor) *ObjectDataTypesClient {
	return &ObjectDataTypesClient{
		executor: executor,
	}
}

// ListFieldsByModuleAndType implements automation.ObjectDataTypesClient.ListFieldsByModuleAndType.
func (c *ObjectDataTypesClient) ListFieldsByModuleAndType(subscriptionID, resourceGroupName, automationAccountName, moduleName, typeName string) *automation.ListRequest[automation.TypeFieldListResult, automation.TypeField] {
	return automation.NewListRequest[automation.TypeFieldListResult, automation.TypeField](c.executor, &objectDataTypesOperations.ListFieldsByModuleAndType, subscriptionID, resourceGroupName, automationAccountName, moduleName, typeName)
}

// ListFieldsByType implements automation.ObjectDataTypesClient.ListFieldsByType.
func (c *ObjectDataTypesClient) ListFieldsByType(subscriptionID, resourceGroupName, automationAccountName, typeName string) *automation.ListRequest[automation.TypeFieldListResult, automation.TypeField] {
	return automation.NewListRequest[automation.TypeFieldListResult, automation.TypeField](c.executor, &objectDataTypesOperations.ListFieldsByType, subscriptionID, resourceGroupName, automationAccountName, typeName)
}
