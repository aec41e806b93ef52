package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var statisticsOperations = struct {
	ListByAutomationAccount automation.Operation
}{
	ListByAutomationAccount: automation.Operation{
		Name:       "Statistics.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/statistics",
		APIVersion: constants.APIVersion20200113Preview,
		Params:     automation.ParamFilter,
	},
}

// StatisticsClient implements automation.StatisticsClient.
type StatisticsClient struct {
	executor automation.Executor
}

// NewStatisticsClient creates a new statistics client.
func NewStatisticsClient(executor automation.Executor) *StatisticsClient {
	return &StatisticsClient{
		executor: executor,
	}
}

// ListByAutomationAccount implements automation.StatisticsClient.ListByAutomationAccount.
func (c *StatisticsClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.StatisticsListResult, automation.Statistics] {
	return automation.NewListRequest[automation.StatisticsListResult, automation.Statistics](c.executor, &statisticsOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}
