package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var nodeCountInformationOperations = struct {
	Get automation.Operation
}{
	Get: automation.Operation{
		Name:       "NodeCountInformation.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/nodecounts/{countType}",
		APIVersion: constants.APIVersion20200113Preview,
	},
}

// NodeCountInformationClient implements automation.NodeCountInformationClient.
type NodeCountInformationClient struct {
	executor automation.Executor
}

// NewNodeCountInformationClient creates a new node count information client.
func NewNodeCountInformationClient(executor automation.Executor) *NodeCountInformationClient {
	return &NodeCountInformationClient{
		executor: executor,
	}
}

// Get implements automation.NodeCountInformationClient.Get.
func (c *NodeCountInformationClient) Get(subscriptionID, resourceGroupName, automationAccountName, countType string) *automation.Request[automation.NodeCounts] {
	return automation.NewRequest[automation.NodeCounts](c.executor, &nodeCountInformationOperations.Get, subscriptionID, resourceGroupName, automationAccountName, countType)
}
