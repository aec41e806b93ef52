package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var runbookDraftOperations = struct {
	GetContent     automation.Operation
	ReplaceContent automation.Operation
	Get            automation.Operation
	UndoEdit       automation.Operation
}{
	GetContent: automation.Operation{
		Name:       "RunbookDraft.GetContent",
		Method:     http.MethodGet,
		Path:       accountPath + "/runbooks/{runbookName}/draft/content",
		APIVersion: constants.APIVersion20180630,
		Response:   automation.ResponseText,
		Accept:     constants.ContentTypePowerShell,
	},
	ReplaceContent: automation.Operation{
		Name:        "RunbookDraft.ReplaceContent",
		Method:      http.MethodPut,
		Path:        accountPath + "/runbooks/{runbookName}/draft/content",
		APIVersion:  constants.APIVersion20180630,
		Body:        automation.BodyText,
		ContentType: constants.ContentTypePowerShell,
	},
	Get: automation.Operation{
		Name:       "RunbookDraft.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/runbooks/{runbookName}/draft",
		APIVersion: constants.APIVersion20180630,
	},
	UndoEdit: automation.Operation{
		Name:       "RunbookDraft.UndoEdit",
		Method:     http.MethodPost,
		Path:       accountPath + "/runbooks/{runbookName}/draft/undoEdit",
		APIVersion: constants.APIVersion20180630,
	},
}

// RunbookDraftClient implements automation.RunbookDraftClient.
type RunbookDraftClient struct {
	executor automation.Executor
}

// NewRunbookDraftClient creates a new runbook draft client.
func NewRunbookDraftClient(executor automation.Executor) *RunbookDraftClient {
	return &RunbookDraftClient{
		executor: executor,
	}
}

// GetContent implements automation.RunbookDraftClient.GetContent.
func (c *RunbookDraftClient) GetContent(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *automation.Request[string] {
	return automation.NewRequest[string](c.executor, &runbookDraftOperations.GetContent, subscriptionID, resourceGroupName, automationAccountName, runbookName)
}

// ReplaceContent implements automation.RunbookDraftClient.ReplaceContent.
func (c *RunbookDraftClient) ReplaceContent(subscriptionID, resourceGroupName, automationAccountName, runbookName, content string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &runbookDraftOperations.ReplaceContent, subscriptionID, resourceGroupName, automationAccountName, runbookName).WithBody(content)
}

// Get implements automation.RunbookDraftClient.Get.
func (c *RunbookDraftClient) Get(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *automation.Request[automation.RunbookDraft] {
	return automation.NewRequest[automation.RunbookDraft](c.executor, &runbookDraftOperations.Get, subscriptionID, resourceGroupName, automationAccountName, runbookName)
}

// UndoEdit implements automation.RunbookDraftClient.UndoEdit.
func (c *RunbookDraftClient) UndoEdit(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *automation.Request[automation.RunbookDraftUndoEditResult] {
	return automation.NewRequest[automation.RunbookDraftUndoEditResult](c.executor, &runbookDraftOperations.UndoEdit, subscriptionID, resourceGroupName, automationAccountName, runbookName)
}
