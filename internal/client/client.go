package client

import (
	"errors"

	"github.com/fivetwenty-io/azure-automation/internal/auth"
	"github.com/fivetwenty-io/azure-automation/internal/http"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

// Static errors for err113 compliance.
var (
	ErrExecutorRequired = errors.New("executor is required")
)

// Client implements the automation.Client interface.
type Client struct {
	executor automation.Executor

	// Resource clients
	automationAccounts                     automation.AutomationAccountsClient
	statistics                             automation.StatisticsClient
	usages                                 automation.UsagesClient
	keys                                   automation.KeysClient
	linkedWorkspace                        automation.LinkedWorkspaceClient
	privateEndpointConnections             automation.PrivateEndpointConnectionsClient
	privateLinkResources                   automation.PrivateLinkResourcesClient
	certificates                           automation.CertificatesClient
	connections                            automation.ConnectionsClient
	connectionTypes                        automation.ConnectionTypesClient
	credentials                            automation.CredentialsClient
	variables                              automation.VariablesClient
	schedules                              automation.SchedulesClient
	jobSchedules                           automation.JobSchedulesClient
	modules                                automation.ModulesClient
	python2Packages                        automation.Python2PackagesClient
	activities                             automation.ActivitiesClient
	objectDataTypes                        automation.ObjectDataTypesClient
	fields                                 automation.FieldsClient
	runbooks                               automation.RunbooksClient
	runbookDraft                           automation.RunbookDraftClient
	testJob                                automation.TestJobClient
	testJobStreams                         automation.TestJobStreamsClient
	jobs                                   automation.JobsClient
	jobStreams                             automation.JobStreamsClient
	hybridRunbookWorkerGroups              automation.HybridRunbookWorkerGroupsClient
	watchers                               automation.WatchersClient
	webhooks                               automation.WebhooksClient
	dscConfigurations                      automation.DscConfigurationsClient
	dscNodes                               automation.DscNodesClient
	nodeReports                            automation.NodeReportsClient
	agentRegistrationInformation           automation.AgentRegistrationInformationClient
	dscNodeConfigurations                  automation.DscNodeConfigurationsClient
	dscCompilationJobs                     automation.DscCompilationJobsClient
	dscCompilationJobStreams               automation.DscCompilationJobStreamsClient
	nodeCountInformation                   automation.NodeCountInformationClient
	softwareUpdateConfigurations           automation.SoftwareUpdateConfigurationsClient
	softwareUpdateConfigurationRuns        automation.SoftwareUpdateConfigurationRunsClient
	softwareUpdateConfigurationMachineRuns automation.SoftwareUpdateConfigurationMachineRunsClient
	sourceControls                         automation.SourceControlsClient
	sourceControlSyncJobs                  automation.SourceControlSyncJobsClient
	sourceControlSyncJobStreams            automation.SourceControlSyncJobStreamsClient
	operations                             automation.OperationsClient
}

// New builds the HTTP pipeline described by config and a client on top of
// it. tokenManager may be nil, in which case requests are unauthenticated.
func New(config *automation.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config == nil {
		return nil, automation.ErrConfigRequired
	}

	return NewWithExecutor(http.NewClient(config.ResolvedEndpoint(), tokenManager, pipelineOptions(config)...))
}

// NewWithExecutor creates a client that sends every request through executor.
func NewWithExecutor(executor automation.Executor) (*Client, error) {
	if executor == nil {
		return nil, ErrExecutorRequired
	}

	return &Client{
		executor: executor,

		automationAccounts:                     NewAutomationAccountsClient(executor),
		statistics:                             NewStatisticsClient(executor),
		usages:                                 NewUsagesClient(executor),
		keys:                                   NewKeysClient(executor),
		linkedWorkspace:                        NewLinkedWorkspaceClient(executor),
		privateEndpointConnections:             NewPrivateEndpointConnectionsClient(executor),
		privateLinkResources:                   NewPrivateLinkResourcesClient(executor),
		certificates:                           NewCertificatesClient(executor),
		connections:                            NewConnectionsClient(executor),
		connectionTypes:                        NewConnectionTypesClient(executor),
		credentials:                            NewCredentialsClient(executor),
		variables:                              NewVariablesClient(executor),
		schedules:                              NewSchedulesClient(executor),
		jobSchedules:                           NewJobSchedulesClient(executor),
		modules:                                NewModulesClient(executor),
		python2Packages:                        NewPython2PackagesClient(executor),
		activities:                             NewActivitiesClient(executor),
		objectDataTypes:                        NewObjectDataTypesClient(executor),
		fields:                                 NewFieldsClient(executor),
		runbooks:                               NewRunbooksClient(executor),
		runbookDraft:                           NewRunbookDraftClient(executor),
		testJob:                                NewTestJobClient(executor),
		testJobStreams:                         NewTestJobStreamsClient(executor),
		jobs:                                   NewJobsClient(executor),
		jobStreams:                             NewJobStreamsClient(executor),
		hybridRunbookWorkerGroups:              NewHybridRunbookWorkerGroupsClient(executor),
		watchers:                               NewWatchersClient(executor),
		webhooks:                               NewWebhooksClient(executor),
		dscConfigurations:                      NewDscConfigurationsClient(executor),
		dscNodes:                               NewDscNodesClient(executor),
		nodeReports:                            NewNodeReportsClient(executor),
		agentRegistrationInformation:           NewAgentRegistrationInformationClient(executor),
		dscNodeConfigurations:                  NewDscNodeConfigurationsClient(executor),
		dscCompilationJobs:                     NewDscCompilationJobsClient(executor),
		dscCompilationJobStreams:               NewDscCompilationJobStreamsClient(executor),
		nodeCountInformation:                   NewNodeCountInformationClient(executor),
		softwareUpdateConfigurations:           NewSoftwareUpdateConfigurationsClient(executor),
		softwareUpdateConfigurationRuns:        NewSoftwareUpdateConfigurationRunsClient(executor),
		softwareUpdateConfigurationMachineRuns: NewSoftwareUpdateConfigurationMachineRunsClient(executor),
		sourceControls:                         NewSourceControlsClient(executor),
		sourceControlSyncJobs:                  NewSourceControlSyncJobsClient(executor),
		sourceControlSyncJobStreams:            NewSourceControlSyncJobStreamsClient(executor),
		operations:                             NewOperationsClient(executor),
	}, nil
}

func pipelineOptions(config *automation.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		opts = append(opts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 || config.RetryWaitMin > 0 || config.RetryWaitMax > 0 {
		opts = append(opts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if len(config.RequestInterceptors) > 0 || len(config.ResponseInterceptors) > 0 {
		chain := automation.NewInterceptorChain()

		for _, interceptor := range config.RequestInterceptors {
			chain.AddRequestInterceptor(interceptor)
		}

		for _, interceptor := range config.ResponseInterceptors {
			chain.AddResponseInterceptor(interceptor)
		}

		opts = append(opts, http.WithInterceptors(chain))
	}

	return opts
}

// Executor returns the pipeline every resource client sends through.
func (c *Client) Executor() automation.Executor {
	return c.executor
}

// AutomationAccounts returns the AutomationAccounts client.
func (c *Client) AutomationAccounts() automation.AutomationAccountsClient {
	return c.automationAccounts
}

// Statistics returns the Statistics client.
func (c *Client) Statistics() automation.StatisticsClient {
	return c.statistics
}

// Usages returns the Usages client.
func (c *Client) Usages() automation.UsagesClient {
	return c.usages
}

// Keys returns the Keys client.
func (c *Client) Keys() automation.KeysClient {
	return c.keys
}

// LinkedWorkspace returns the LinkedWorkspace client.
func (c *Client) LinkedWorkspace() automation.LinkedWorkspaceClient {
	return c.linkedWorkspace
}

// PrivateEndpointConnections returns the PrivateEndpointConnections client.
func (c *Client) PrivateEndpointConnections() automation.PrivateEndpointConnectionsClient {
	return c.privateEndpointConnections
}

// PrivateLinkResources returns the PrivateLinkResources client.
func (c *Client) PrivateLinkResources() automation.PrivateLinkResourcesClient {
	return c.privateLinkResources
}

// Certificates returns the Certificates client.
func (c *Client) Certificates() automation.CertificatesClient {
	return c.certificates
}

// Connections returns the Connections client.
func (c *Client) Connections() automation.ConnectionsClient {
	return c.connections
}

// ConnectionTypes returns the ConnectionTypes client.
func (c *Client) ConnectionTypes() automation.ConnectionTypesClient {
	return c.connectionTypes
}

// Credentials returns the Credentials client.
func (c *Client) Credentials() automation.CredentialsClient {
	return c.credentials
}

// Variables returns the Variables client.
func (c *Client) Variables() automation.VariablesClient {
	return c.variables
}

// Schedules returns the Schedules client.
func (c *Client) Schedules() automation.SchedulesClient {
	return c.schedules
}

// JobSchedules returns the JobSchedules client.
func (c *Client) JobSchedules() automation.JobSchedulesClient {
	return c.jobSchedules
}

// Modules returns the Modules client.
func (c *Client) Modules() automation.ModulesClient {
	return c.modules
}

// Python2Packages returns the Python2Packages client.
func (c *Client) Python2Packages() automation.Python2PackagesClient {
	return c.python2Packages
}

// Activities returns the Activities client.
func (c *Client) Activities() automation.ActivitiesClient {
	return c.activities
}

// ObjectDataTypes returns the ObjectDataTypes client.
func (c *Client) ObjectDataTypes() automation.ObjectDataTypesClient {
	return c.objectDataTypes
}

// Fields returns the Fields client.
func (c *Client) Fields() automation.FieldsClient {
	return c.fields
}

// Runbooks returns the Runbooks client.
func (c *Client) Runbooks() automation.RunbooksClient {
	return c.runbooks
}

// RunbookDraft returns the RunbookDraft client.
func (c *Client) RunbookDraft() automation.RunbookDraftClient {
	return c.runbookDraft
}

// TestJob returns the TestJob client.
func (c *Client) TestJob() automation.TestJobClient {
	return c.testJob
}

// TestJobStreams returns the TestJobStreams client.
func (c *Client) TestJobStreams() automation.TestJobStreamsClient {
	return c.testJobStreams
}

// Jobs returns the Jobs client.
func (c *Client) Jobs() automation.JobsClient {
	return c.jobs
}

// JobStreams returns the JobStreams client.
func (c *Client) JobStreams() automation.JobStreamsClient {
	return c.jobStreams
}

// HybridRunbookWorkerGroups returns the HybridRunbookWorkerGroups client.
func (c *Client) HybridRunbookWorkerGroups() automation.HybridRunbookWorkerGroupsClient {
	return c.hybridRunbookWorkerGroups
}

// Watchers returns the Watchers client.
func (c *Client) Watchers() automation.WatchersClient {
	return c.watchers
}

// Webhooks returns the Webhooks client.
func (c *Client) Webhooks() automation.WebhooksClient {
	return c.webhooks
}

// DscConfigurations returns the DscConfigurations client.
func (c *Client) DscConfigurations() automation.DscConfigurationsClient {
	return c.dscConfigurations
}

// DscNodes returns the DscNodes client.
func (c *Client) DscNodes() automation.DscNodesClient {
	return c.dscNodes
}

// NodeReports returns the NodeReports client.
func (c *Client) NodeReports() automation.NodeReportsClient {
	return c.nodeReports
}

// AgentRegistrationInformation returns the AgentRegistrationInformation client.
func (c *Client) AgentRegistrationInformation() automation.AgentRegistrationInformationClient {
	return c.agentRegistrationInformation
}

// DscNodeConfigurations returns the DscNodeConfigurations client.
func (c *Client) DscNodeConfigurations() automation.DscNodeConfigurationsClient {
	return c.dscNodeConfigurations
}

// DscCompilationJobs returns the DscCompilationJobs client.
func (c *Client) DscCompilationJobs() automation.DscCompilationJobsClient {
	return c.dscCompilationJobs
}

// DscCompilationJobStreams returns the DscCompilationJobStreams client.
func (c *Client) DscCompilationJobStreams() automation.DscCompilationJobStreamsClient {
	return c.dscCompilationJobStreams
}

// NodeCountInformation returns the NodeCountInformation client.
func (c *Client) NodeCountInformation() automation.NodeCountInformationClient {
	return c.nodeCountInformation
}

// SoftwareUpdateConfigurations returns the SoftwareUpdateConfigurations client.
func (c *Client) SoftwareUpdateConfigurations() automation.SoftwareUpdateConfigurationsClient {
	return c.softwareUpdateConfigurations
}

// SoftwareUpdateConfigurationRuns returns the SoftwareUpdateConfigurationRuns client.
func (c *Client) SoftwareUpdateConfigurationRuns() automation.SoftwareUpdateConfigurationRunsClient {
	return c.softwareUpdateConfigurationRuns
}

// SoftwareUpdateConfigurationMachineRuns returns the SoftwareUpdateConfigurationMachineRuns client.
func (c *Client) SoftwareUpdateConfigurationMachineRuns() automation.SoftwareUpdateConfigurationMachineRunsClient {
	return c.softwareUpdateConfigurationMachineRuns
}

// SourceControls returns the SourceControls client.
func (c *Client) SourceControls() automation.SourceControlsClient {
	return c.sourceControls
}

// SourceControlSyncJobs returns the SourceControlSyncJobs client.
func (c *Client) SourceControlSyncJobs() automation.SourceControlSyncJobsClient {
	return c.sourceControlSyncJobs
}

// SourceControlSyncJobStreams returns the SourceControlSyncJobStreams client.
func (c *Client) SourceControlSyncJobStreams() automation.SourceControlSyncJobStreamsClient {
	return c.sourceControlSyncJobStreams
}

// Operations returns the Operations client.
func (c *Client) Operations() automation.OperationsClient {
	return c.operations
}

var _ automation.Client = (*Client)(nil)
