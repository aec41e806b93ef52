package client

import (
	"net/http"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

var certificatesOperations = struct {
	Get                     automation.Operation
	CreateOrUpdate          automation.Operation
	Update                  automation.Operation
	Delete                  automation.Operation
	ListByAutomationAccount automation.Operation
}{
	Get: automation.Operation{
		Name:       "Certificates.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/certificates/{certificateName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	CreateOrUpdate: automation.Operation{
		Name:       "Certificates.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       accountPath + "/certificates/{certificateName}",
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Update: automation.Operation{
		Name:       "Certificates.Update",
		Method:     http.MethodPatch,
		Path:       accountPath + "/certificates/{certificateName}",
		APIVersion: constants.APIVersion20200113Preview,
		Body:       automation.BodyJSON,
	},
	Delete: automation.Operation{
		Name:       "Certificates.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath + "/certificates/{certificateName}",
		APIVersion: constants.APIVersion20200113Preview,
	},
	ListByAutomationAccount: automation.Operation{
		Name:       "Certificates.ListByAutomationAccount",
		Method:     http.MethodGet,
		Path:       accountPath + "/certificates",
		APIVersion: constants.APIVersion20200113Preview,
	},
}

// CertificatesClient implements automation.CertificatesClient.
type CertificatesClient struct {
	executor automation.Executor
}

// NewCertificatesClient creates a new certificates client.
func NewCertificatesClient(executor automation.Executor) *CertificatesClient {
	return &CertificatesClient{
		executor: executor,
	}
}

// Get implements automation.CertificatesClient.Get.
func (c *CertificatesClient) Get(subscriptionID, resourceGroupName, automationAccountName, certificateName string) *automation.Request[automation.Certificate] {
	return automation.NewRequest[automation.Certificate](c.executor, &certificatesOperations.Get, subscriptionID, resourceGroupName, automationAccountName, certificateName)
}

// CreateOrUpdate implements automation.CertificatesClient.CreateOrUpdate.
func (c *CertificatesClient) CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, certificateName string, parameters *automation.CertificateCreateOrUpdateParameters) *automation.Request[automation.Certificate] {
	return automation.NewRequest[automation.Certificate](c.executor, &certificatesOperations.CreateOrUpdate, subscriptionID, resourceGroupName, automationAccountName, certificateName).WithBody(parameters)
}

// Update implements automation.CertificatesClient.Update.
func (c *CertificatesClient) Update(subscriptionID, resourceGroupName, automationAccountName, certificateName string, parameters *automation.CertificateUpdateParameters) *automation.Request[automation.Certificate] {
	return automation.NewRequest[automation.Certificate](c.executor, &certificatesOperations.Update, subscriptionID, resourceGroupName, automationAccountName, certificateName).WithBody(parameters)
}

// Delete implements automation.CertificatesClient.Delete.
func (c *CertificatesClient) Delete(subscriptionID, resourceGroupName, automationAccountName, certificateName string) *automation.Request[automation.NoContent] {
	return automation.NewRequest[automation.NoContent](c.executor, &certificatesOperations.Delete, subscriptionID, resourceGroupName, automationAccountName, certificateName)
}

// ListByAutomationAccount implements automation.CertificatesClient.ListByAutomationAccount.
func (c *CertificatesClient) ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *automation.ListRequest[automation.CertificateListResult, automation.Certificate] {
	return automation.NewListRequest[automation.CertificateListResult, automation.Certificate](c.executor, &certificatesOperations.ListByAutomationAccount, subscriptionID, resourceGroupName, automationAccountName)
}
