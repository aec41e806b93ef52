package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var nodeReportsOperations = struct {
	ListByNode automation.Operation
	Get        automation.Operation
	GetContent automation.Operation
}{
	ListByNode: automation.Operation{
		Name:       "NodeReports.ListByNode",
		Method:     http.MethodGet,
		Path:       accountPath + "/nodes/{nodeId}/reports",
		APIVersion: constants.APIVersion20200113Preview,
		Params:     automation.ParamFilter,
	},
	Get: automation.Operation{
		Name:       "NodeReports.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/nodes/{nodeId}/reports/{reportId}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	GetContent: automation.Operation{
		Name:       "NodeReports.GetContent",
		Method:     http.MethodGet,
		Path:       accountPath + "/nodes/{nodeId}/reports/{reportId}/content",
		APIVersion: constants.APIVersion20200113Preview,
	},
}

// NodeReportsClient implements automation.NodeReportsClient.
type NodeReportsClient struct {
	executor automation.Executor
}

// NewNodeReportsClient creates a new node reports client.
func NewNodeReportsClient(executor automation.Executor) *NodeReportsClient {
	return &NodeReportsClient{
		executor: executor,
	}
}

// ListByNode implements automation.NodeReportsClient.ListByNode.
func (c *NodeReportsClient) ListByNode(subscriptionID, resourceGroupName, automationAccountName, nodeID string) *automation.ListRequest[automation.DscNodeReportListResult, automation.DscNodeReport] {
	return automation.NewListRequest[automation.DscNodeReportListResult, automation.DscNodeReport](c.executor, &nodeReportsOperations.ListByNode, subscriptionID, resourceGroupName, automationAccountName, nodeID)
}

// Get implements automation.NodeReportsClient.Get.
func (c *NodeReportsClient) Get(subscriptionID, resourceGroupName, automationAccountName, nodeID, reportID string) *automation.Request[automation.DscNodeReport] {
	return automation.NewRequest[automation.DscNodeReport](c.executor, &nodeReportsOperations.Get, subscriptionID, resourceGroupName, automationAccountName, nodeID, reportID)
}

// GetContent implements automation.NodeReportsClient.GetContent.
func (c *NodeReportsClient) GetContent(subscriptionID, resourceGroupName, automationAccountName, nodeID, reportID string) *automation.Request[automation.DscNodeReportContent] {
	return automation.NewRequest[automation.DscNodeReportContent](c.executor, &nodeReportsOperations.GetContent, subscriptionID, resourceGroupName, automationAccountName, nodeID, reportID)
}
