package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var agentRegistrationInformationOperations = struct {
	Get           automation.Operation
	RegenerateKey automation.Operation
}{
	Get: automation.Operation{
		Name:       "AgentRegistrationInformation.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/agentRegistrationInformation",
		APIVersion: constants.APIVersion20200113Preview,
	},
	RegenerateKey: automation.Operation{
		Name:       "AgentRegistrationInformation.RegenerateKey",
		Method:     http.MethodPost,
		Path:       accountPath + "/agentRegistrationInformation/regenerateKey",
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
}

// AgentRegistrationInformationClient implements automation.AgentRegistrationInformationClient.
type AgentRegistrationInformationClient struct {
	executor automation.Executor
}

// NewAgentRegistrationInformationClient creates a new agent registration information client.
func NewAgentRegistrationInformationClient(executor automation.Executor) *AgentRegistrationInformationClient {
	return &AgentRegistrationInformationClient{
		executor: executor,
	}
}

// Get implements automation.AgentRegistrationInformationClient.Get.
func (c *AgentRegistrationInformationClient) Get(subscriptionID, resourceGroupName, automationAccountName string) *automation.Request[automation.AgentRegistration] {
	return automation.NewRequest[automation.AgentRegistration](c.executor, &agentRegistrationInformationOperations.Get, subscriptionID, resourceGroupName, automationAccountName)
}

// RegenerateKey implements automation.AgentRegistrationInformationClient.RegenerateKey.
func (c *AgentRegistrationInformationClient) RegenerateKey(subscriptionID, resourceGroupName, automationAccountName string, parameters *automation.AgentRegistrationRegenerateKeyParameter) *automation.Request[automation.AgentRegistration] {
	return automation.NewRequest[automation.AgentRegistration](c.executor, &agentRegistrationInformationOperations.RegenerateKey, subscriptionID, resourceGroupName, automationAccountName).WithBody(parameters)
}
