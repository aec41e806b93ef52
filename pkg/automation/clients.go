package automation

// AccountClients provides access to account level clients.
type AccountClients interface {
	AutomationAccounts() AutomationAccountsClient
	Statistics() StatisticsClient
	Usages() UsagesClient
	Keys() KeysClient
	LinkedWorkspace() LinkedWorkspaceClient
	PrivateEndpointConnections() PrivateEndpointConnectionsClient
	PrivateLinkResources() PrivateLinkResourcesClient
}

// AssetClients provides access to shared asset clients.
type AssetClients interface {
	Certificates() CertificatesClient
	Connections() ConnectionsClient
	ConnectionTypes() ConnectionTypesClient
	Credentials() CredentialsClient
	Variables() VariablesClient
	Schedules() SchedulesClient
	JobSchedules() JobSchedulesClient
	Modules() ModulesClient
	Python2Packages() Python2PackagesClient
	Activities() ActivitiesClient
	ObjectDataTypes() ObjectDataTypesClient
	Fields() FieldsClient
}

// ProcessAutomationClients provides access to runbook, job and trigger clients.
type ProcessAutomationClients interface {
	Runbooks() RunbooksClient
	RunbookDraft() RunbookDraftClient
	TestJob() TestJobClient
	TestJobStreams() TestJobStreamsClient
	Jobs() JobsClient
	JobStreams() JobStreamsClient
	HybridRunbookWorkerGroups() HybridRunbookWorkerGroupsClient
	Watchers() WatchersClient
	Webhooks() WebhooksClient
}

// DscClients provides access to state configuration clients.
type DscClients interface {
	DscConfigurations() DscConfigurationsClient
	DscNodes() DscNodesClient
	NodeReports() NodeReportsClient
	AgentRegistrationInformation() AgentRegistrationInformationClient
	DscNodeConfigurations() DscNodeConfigurationsClient
	DscCompilationJobs() DscCompilationJobsClient
	DscCompilationJobStreams() DscCompilationJobStreamsClient
	NodeCountInformation() NodeCountInformationClient
}

// UpdateManagementClients provides access to update management clients.
type UpdateManagementClients interface {
	SoftwareUpdateConfigurations() SoftwareUpdateConfigurationsClient
	SoftwareUpdateConfigurationRuns() SoftwareUpdateConfigurationRunsClient
	SoftwareUpdateConfigurationMachineRuns() SoftwareUpdateConfigurationMachineRunsClient
}

// SourceControlClients provides access to source control clients.
type SourceControlClients interface {
	SourceControls() SourceControlsClient
	SourceControlSyncJobs() SourceControlSyncJobsClient
	SourceControlSyncJobStreams() SourceControlSyncJobStreamsClient
}

// PlatformClients provides access to provider level clients.
type PlatformClients interface {
	Operations() OperationsClient
}

// Client is the root of the library. It is immutable after construction
// and safe for concurrent use; every accessor returns a client sharing
// the same pipeline.
type Client interface {
	AccountClients
	AssetClients
	ProcessAutomationClients
	DscClients
	UpdateManagementClients
	SourceControlClients
	PlatformClients
}

// AutomationAccountsClient manages automation accounts.
type AutomationAccountsClient interface {
	// Get retrieves an automation account.
	Get(subscriptionID, resourceGroupName, automationAccountName string) *Request[AutomationAccount]
	// CreateOrUpdate creates or replaces an automation account.
	CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName string, parameters *AutomationAccountCreateOrUpdateParameters) *Request[AutomationAccount]
	// Update patches an automation account.
	Update(subscriptionID, resourceGroupName, automationAccountName string, parameters *AutomationAccountUpdateParameters) *Request[AutomationAccount]
	// Delete deletes an automation account.
	Delete(subscriptionID, resourceGroupName, automationAccountName string) *Request[NoContent]
	// ListByResourceGroup lists the accounts of a resource group.
	ListByResourceGroup(subscriptionID, resourceGroupName string) *ListRequest[AutomationAccountListResult, AutomationAccount]
	// List lists the accounts of a subscription.
	List(subscriptionID string) *ListRequest[AutomationAccountListResult, AutomationAccount]
}

// StatisticsClient reads account statistics.
type StatisticsClient interface {
	// ListByAutomationAccount lists the job statistics counters of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[StatisticsListResult, Statistics]
}

// UsagesClient reads account usage.
type UsagesClient interface {
	// ListByAutomationAccount lists the usage counters of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[UsageListResult, Usage]
}

// KeysClient reads account access keys.
type KeysClient interface {
	// ListByAutomationAccount lists the access keys of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[KeyListResult, Key]
}

// LinkedWorkspaceClient reads the Log Analytics workspace linked to an account.
type LinkedWorkspaceClient interface {
	// Get retrieves the linked workspace.
	Get(subscriptionID, resourceGroupName, automationAccountName string) *Request[LinkedWorkspace]
}

// PrivateEndpointConnectionsClient manages private endpoint connections.
type PrivateEndpointConnectionsClient interface {
	// Get retrieves the private endpoint connection identified by name.
	Get(subscriptionID, resourceGroupName, automationAccountName, privateEndpointConnectionName string) *Request[PrivateEndpointConnection]
	// CreateOrUpdate creates or replaces a private endpoint connection.
	CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, privateEndpointConnectionName string, parameters *PrivateEndpointConnection) *Request[PrivateEndpointConnection]
	// Delete deletes a private endpoint connection.
	Delete(subscriptionID, resourceGroupName, automationAccountName, privateEndpointConnectionName string) *Request[NoContent]
	// ListByAutomationAccount lists the private endpoint connections of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[PrivateEndpointConnectionListResult, PrivateEndpointConnection]
}

// PrivateLinkResourcesClient reads private link resources.
type PrivateLinkResourcesClient interface {
	// List lists the private link resources of an account.
	List(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[PrivateLinkResourceListResult, PrivateLinkResource]
}

// CertificatesClient manages certificate assets.
type CertificatesClient interface {
	// Get retrieves the certificate identified by name.
	Get(subscriptionID, resourceGroupName, automationAccountName, certificateName string) *Request[Certificate]
	// CreateOrUpdate creates or replaces a certificate.
	CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, certificateName string, parameters *CertificateCreateOrUpdateParameters) *Request[Certificate]
	// Update patches a certificate.
	Update(subscriptionID, resourceGroupName, automationAccountName, certificateName string, parameters *CertificateUpdateParameters) *Request[Certificate]
	// Delete deletes a certificate.
	Delete(subscriptionID, resourceGroupName, automationAccountName, certificateName string) *Request[NoContent]
	// ListByAutomationAccount lists the certificates of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[CertificateListResult, Certificate]
}

// ConnectionsClient manages connection assets.
type ConnectionsClient interface {
	// Get retrieves the connection identified by name.
	Get(subscriptionID, resourceGroupName, automationAccountName, connectionName string) *Request[Connection]
	// CreateOrUpdate creates or replaces a connection.
	CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, connectionName string, parameters *ConnectionCreateOrUpdateParameters) *Request[Connection]
	// Update patches a connection.
	Update(subscriptionID, resourceGroupName, automationAccountName, connectionName string, parameters *ConnectionUpdateParameters) *Request[Connection]
	// Delete deletes a connection.
	Delete(subscriptionID, resourceGroupName, automationAccountName, connectionName string) *Request[NoContent]
	// ListByAutomationAccount lists the connections of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[ConnectionListResult, Connection]
}

// ConnectionTypesClient manages connection types.
type ConnectionTypesClient interface {
	// Get retrieves the connection type identified by name.
	Get(subscriptionID, resourceGroupName, automationAccountName, connectionTypeName string) *Request[ConnectionType]
	// CreateOrUpdate creates or replaces a connection type.
	CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, connectionTypeName string, parameters *ConnectionTypeCreateOrUpdateParameters) *Request[ConnectionType]
	// Delete deletes a connection type.
	Delete(subscriptionID, resourceGroupName, automationAccountName, connectionTypeName string) *Request[NoContent]
	// ListByAutomationAccount lists the connection types of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[ConnectionTypeListResult, ConnectionType]
}

// CredentialsClient manages credential assets.
type CredentialsClient interface {
	// Get retrieves the credential identified by name.
	Get(subscriptionID, resourceGroupName, automationAccountName, credentialName string) *Request[Credential]
	// CreateOrUpdate creates or replaces a credential.
	CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, credentialName string, parameters *CredentialCreateOrUpdateParameters) *Request[Credential]
	// Update patches a credential.
	Update(subscriptionID, resourceGroupName, automationAccountName, credentialName string, parameters *CredentialUpdateParameters) *Request[Credential]
	// Delete deletes a credential.
	Delete(subscriptionID, resourceGroupName, automationAccountName, credentialName string) *Request[NoContent]
	// ListByAutomationAccount lists the credentials of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[CredentialListResult, Credential]
}

// VariablesClient manages variable assets.
type VariablesClient interface {
	// Get retrieves the variable identified by name.
	Get(subscriptionID, resourceGroupName, automationAccountName, variableName string) *Request[Variable]
	// CreateOrUpdate creates or replaces a variable.
	CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, variableName string, parameters *VariableCreateOrUpdateParameters) *Request[Variable]
	// Update patches a variable.
	Update(subscriptionID, resourceGroupName, automationAccountName, variableName string, parameters *VariableUpdateParameters) *Request[Variable]
	// Delete deletes a variable.
	Delete(subscriptionID, resourceGroupName, automationAccountName, variableName string) *Request[NoContent]
	// ListByAutomationAccount lists the variables of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[VariableListResult, Variable]
}

// SchedulesClient manages schedules.
type SchedulesClient interface {
	// Get retrieves the schedule identified by name.
	Get(subscriptionID, resourceGroupName, automationAccountName, scheduleName string) *Request[Schedule]
	// CreateOrUpdate creates or replaces a schedule.
	CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, scheduleName string, parameters *ScheduleCreateOrUpdateParameters) *Request[Schedule]
	// Update patches a schedule.
	Update(subscriptionID, resourceGroupName, automationAccountName, scheduleName string, parameters *ScheduleUpdateParameters) *Request[Schedule]
	// Delete deletes a schedule.
	Delete(subscriptionID, resourceGroupName, automationAccountName, scheduleName string) *Request[NoContent]
	// ListByAutomationAccount lists the schedules of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[ScheduleListResult, Schedule]
}

// JobSchedulesClient links runbooks to schedules.
type JobSchedulesClient interface {
	// Get retrieves a job schedule.
	Get(subscriptionID, resourceGroupName, automationAccountName, jobScheduleID string) *Request[JobSchedule]
	// Create creates a job schedule. The id is chosen by the caller.
	Create(subscriptionID, resourceGroupName, automationAccountName, jobScheduleID string, parameters *JobScheduleCreateParameters) *Request[JobSchedule]
	// Delete deletes a job schedule.
	Delete(subscriptionID, resourceGroupName, automationAccountName, jobScheduleID string) *Request[NoContent]
	// ListByAutomationAccount lists the job schedules of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[JobScheduleListResult, JobSchedule]
}

// ModulesClient manages integration modules.
type ModulesClient interface {
	// Get retrieves the module identified by name.
	Get(subscriptionID, resourceGroupName, automationAccountName, moduleName string) *Request[Module]
	// CreateOrUpdate creates or replaces a module.
	CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, moduleName string, parameters *ModuleCreateOrUpdateParameters) *Request[Module]
	// Update patches a module.
	Update(subscriptionID, resourceGroupName, automationAccountName, moduleName string, parameters *ModuleUpdateParameters) *Request[Module]
	// Delete deletes a module.
	Delete(subscriptionID, resourceGroupName, automationAccountName, moduleName string) *Request[NoContent]
	// ListByAutomationAccount lists the modules of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[ModuleListResult, Module]
}

// Python2PackagesClient manages python 2 packages.
type Python2PackagesClient interface {
	// Get retrieves the python 2 package identified by name.
	Get(subscriptionID, resourceGroupName, automationAccountName, packageName string) *Request[Module]
	// CreateOrUpdate creates or replaces a python 2 package.
	CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, packageName string, parameters *PythonPackageCreateParameters) *Request[Module]
	// Update patches a python 2 package.
	Update(subscriptionID, resourceGroupName, automationAccountName, packageName string, parameters *PythonPackageUpdateParameters) *Request[Module]
	// Delete deletes a python 2 package.
	Delete(subscriptionID, resourceGroupName, automationAccountName, packageName string) *Request[NoContent]
	// ListByAutomationAccount lists the python 2 packages of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[ModuleListResult, Module]
}

// ActivitiesClient reads the activities exported by a module.
type ActivitiesClient interface {
	// Get retrieves one activity of a module.
	Get(subscriptionID, resourceGroupName, automationAccountName, moduleName, activityName string) *Request[Activity]
	// ListByModule lists the activities of a module.
	ListByModule(subscriptionID, resourceGroupName, automationAccountName, moduleName string) *ListRequest[ActivityListResult, Activity]
}

// ObjectDataTypesClient reads the fields of object data types.
type ObjectDataTypesClient interface {
	// ListFieldsByModuleAndType lists the fields of a type defined by a module.
	ListFieldsByModuleAndType(subscriptionID, resourceGroupName, automationAccountName, moduleName, typeName string) *ListRequest[TypeFieldListResult, TypeField]
	// ListFieldsByType lists the fields of a type across modules.
	ListFieldsByType(subscriptionID, resourceGroupName, automationAccountName, typeName string) *ListRequest[TypeFieldListResult, TypeField]
}

// FieldsClient reads the fields of module types.
type FieldsClient interface {
	// ListByType lists the fields of a module type.
	ListByType(subscriptionID, resourceGroupName, automationAccountName, moduleName, typeName string) *ListRequest[TypeFieldListResult, TypeField]
}

// RunbooksClient manages runbooks.
type RunbooksClient interface {
	// Get retrieves the runbook identified by name.
	Get(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *Request[Runbook]
	// CreateOrUpdate creates or replaces a runbook.
	CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, runbookName string, parameters *RunbookCreateOrUpdateParameters) *Request[Runbook]
	// Update patches a runbook.
	Update(subscriptionID, resourceGroupName, automationAccountName, runbookName string, parameters *RunbookUpdateParameters) *Request[Runbook]
	// Delete deletes a runbook.
	Delete(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *Request[NoContent]
	// Publish publishes the draft. The service answers 202 with a Location header that is not polled.
	Publish(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *Request[NoContent]
	// GetContent downloads the published script.
	GetContent(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *Request[string]
	// ListByAutomationAccount lists the runbooks of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[RunbookListResult, Runbook]
}

// RunbookDraftClient manages the draft of a runbook.
type RunbookDraftClient interface {
	// GetContent downloads the draft script.
	GetContent(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *Request[string]
	// ReplaceContent uploads a new draft script.
	ReplaceContent(subscriptionID, resourceGroupName, automationAccountName, runbookName, content string) *Request[NoContent]
	// Get retrieves the draft metadata.
	Get(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *Request[RunbookDraft]
	// UndoEdit discards the draft and restores the published version.
	UndoEdit(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *Request[RunbookDraftUndoEditResult]
}

// TestJobClient runs the draft of a runbook as a test job.
type TestJobClient interface {
	// Create starts a test job.
	Create(subscriptionID, resourceGroupName, automationAccountName, runbookName string, parameters *TestJobCreateParameters) *Request[TestJob]
	// Get retrieves the test job.
	Get(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *Request[TestJob]
	// Resume resumes the test job.
	Resume(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *Request[NoContent]
	// Stop stops the test job.
	Stop(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *Request[NoContent]
	// Suspend suspends the test job.
	Suspend(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *Request[NoContent]
}

// TestJobStreamsClient reads the streams of a test job.
type TestJobStreamsClient interface {
	// Get retrieves one stream record.
	Get(subscriptionID, resourceGroupName, automationAccountName, runbookName, jobStreamID string) *Request[JobStream]
	// ListByTestJob lists the stream records of the test job.
	ListByTestJob(subscriptionID, resourceGroupName, automationAccountName, runbookName string) *ListRequest[JobStreamListResult, JobStream]
}

// JobsClient manages runbook jobs.
type JobsClient interface {
	// Get retrieves a job.
	Get(subscriptionID, resourceGroupName, automationAccountName, jobName string) *Request[Job]
	// Create starts a job. The job name is chosen by the caller.
	Create(subscriptionID, resourceGroupName, automationAccountName, jobName string, parameters *JobCreateParameters) *Request[Job]
	// GetOutput downloads the job output.
	GetOutput(subscriptionID, resourceGroupName, automationAccountName, jobName string) *Request[string]
	// GetRunbookContent downloads the script the job ran.
	GetRunbookContent(subscriptionID, resourceGroupName, automationAccountName, jobName string) *Request[string]
	// Suspend suspends a job.
	Suspend(subscriptionID, resourceGroupName, automationAccountName, jobName string) *Request[NoContent]
	// Stop stops a job.
	Stop(subscriptionID, resourceGroupName, automationAccountName, jobName string) *Request[NoContent]
	// Resume resumes a job.
	Resume(subscriptionID, resourceGroupName, automationAccountName, jobName string) *Request[NoContent]
	// ListByAutomationAccount lists the jobs of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[JobListResult, JobCollectionItem]
}

// JobStreamsClient reads the streams of a job.
type JobStreamsClient interface {
	// Get retrieves one stream record.
	Get(subscriptionID, resourceGroupName, automationAccountName, jobName, jobStreamID string) *Request[JobStream]
	// ListByJob lists the stream records of a job.
	ListByJob(subscriptionID, resourceGroupName, automationAccountName, jobName string) *ListRequest[JobStreamListResult, JobStream]
}

// HybridRunbookWorkerGroupsClient manages hybrid runbook worker groups.
type HybridRunbookWorkerGroupsClient interface {
	// Get retrieves the hybrid runbook worker group identified by name.
	Get(subscriptionID, resourceGroupName, automationAccountName, hybridRunbookWorkerGroupName string) *Request[HybridRunbookWorkerGroup]
	// Update patches a hybrid runbook worker group.
	Update(subscriptionID, resourceGroupName, automationAccountName, hybridRunbookWorkerGroupName string, parameters *HybridRunbookWorkerGroupUpdateParameters) *Request[HybridRunbookWorkerGroup]
	// Delete deletes a hybrid runbook worker group.
	Delete(subscriptionID, resourceGroupName, automationAccountName, hybridRunbookWorkerGroupName string) *Request[NoContent]
	// ListByAutomationAccount lists the hybrid runbook worker groups of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[HybridRunbookWorkerGroupsListResult, HybridRunbookWorkerGroup]
}

// WatchersClient manages watchers.
type WatchersClient interface {
	// Get retrieves the watcher identified by name.
	Get(subscriptionID, resourceGroupName, automationAccountName, watcherName string) *Request[Watcher]
	// CreateOrUpdate creates or replaces a watcher.
	CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, watcherName string, parameters *Watcher) *Request[Watcher]
	// Update patches a watcher.
	Update(subscriptionID, resourceGroupName, automationAccountName, watcherName string, parameters *WatcherUpdateParameters) *Request[Watcher]
	// Delete deletes a watcher.
	Delete(subscriptionID, resourceGroupName, automationAccountName, watcherName string) *Request[NoContent]
	// Start starts a watcher.
	Start(subscriptionID, resourceGroupName, automationAccountName, watcherName string) *Request[NoContent]
	// Stop stops a watcher.
	Stop(subscriptionID, resourceGroupName, automationAccountName, watcherName string) *Request[NoContent]
	// ListByAutomationAccount lists the watchers of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[WatcherListResult, Watcher]
}

// WebhooksClient manages webhooks.
type WebhooksClient interface {
	// Get retrieves the webhook identified by name.
	Get(subscriptionID, resourceGroupName, automationAccountName, webhookName string) *Request[Webhook]
	// CreateOrUpdate creates or replaces a webhook.
	CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, webhookName string, parameters *WebhookCreateOrUpdateParameters) *Request[Webhook]
	// Update patches a webhook.
	Update(subscriptionID, resourceGroupName, automationAccountName, webhookName string, parameters *WebhookUpdateParameters) *Request[Webhook]
	// Delete deletes a webhook.
	Delete(subscriptionID, resourceGroupName, automationAccountName, webhookName string) *Request[NoContent]
	// GenerateURI asks the service for a fresh webhook URI. The URI is only shown once.
	GenerateURI(subscriptionID, resourceGroupName, automationAccountName string) *Request[string]
	// ListByAutomationAccount lists the webhooks of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[WebhookListResult, Webhook]
}

// DscConfigurationsClient manages DSC configurations.
type DscConfigurationsClient interface {
	// Get retrieves the DSC configuration identified by name.
	Get(subscriptionID, resourceGroupName, automationAccountName, configurationName string) *Request[DscConfiguration]
	// CreateOrUpdate creates or replaces a DSC configuration.
	CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, configurationName string, parameters *DscConfigurationCreateOrUpdateParameters) *Request[DscConfiguration]
	// Update patches a DSC configuration.
	Update(subscriptionID, resourceGroupName, automationAccountName, configurationName string, parameters *DscConfigurationUpdateParameters) *Request[DscConfiguration]
	// Delete deletes a DSC configuration.
	Delete(subscriptionID, resourceGroupName, automationAccountName, configurationName string) *Request[NoContent]
	// GetContent downloads the configuration script.
	GetContent(subscriptionID, resourceGroupName, automationAccountName, configurationName string) *Request[string]
	// ListByAutomationAccount lists the configurations of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[DscConfigurationListResult, DscConfiguration]
}

// DscNodesClient manages DSC nodes.
type DscNodesClient interface {
	// Get retrieves the DSC node identified by name.
	Get(subscriptionID, resourceGroupName, automationAccountName, nodeID string) *Request[DscNode]
	// Update patches a DSC node.
	Update(subscriptionID, resourceGroupName, automationAccountName, nodeID string, parameters *DscNodeUpdateParameters) *Request[DscNode]
	// Delete deletes a DSC node.
	Delete(subscriptionID, resourceGroupName, automationAccountName, nodeID string) *Request[NoContent]
	// ListByAutomationAccount lists the DSC nodes of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[DscNodeListResult, DscNode]
}

// NodeReportsClient reads DSC node reports.
type NodeReportsClient interface {
	// ListByNode lists the reports of a node.
	ListByNode(subscriptionID, resourceGroupName, automationAccountName, nodeID string) *ListRequest[DscNodeReportListResult, DscNodeReport]
	// Get retrieves one report.
	Get(subscriptionID, resourceGroupName, automationAccountName, nodeID, reportID string) *Request[DscNodeReport]
	// GetContent retrieves the raw report document.
	GetContent(subscriptionID, resourceGroupName, automationAccountName, nodeID, reportID string) *Request[DscNodeReportContent]
}

// AgentRegistrationInformationClient reads and rotates DSC agent registration keys.
type AgentRegistrationInformationClient interface {
	// Get retrieves the registration endpoint and keys.
	Get(subscriptionID, resourceGroupName, automationAccountName string) *Request[AgentRegistration]
	// RegenerateKey regenerates the primary or secondary key.
	RegenerateKey(subscriptionID, resourceGroupName, automationAccountName string, parameters *AgentRegistrationRegenerateKeyParameter) *Request[AgentRegistration]
}

// DscNodeConfigurationsClient manages compiled node configurations.
type DscNodeConfigurationsClient interface {
	// Get retrieves the DSC node configuration identified by name.
	Get(subscriptionID, resourceGroupName, automationAccountName, nodeConfigurationName string) *Request[DscNodeConfiguration]
	// CreateOrUpdate creates or replaces a DSC node configuration.
	CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, nodeConfigurationName string, parameters *DscNodeConfigurationCreateOrUpdateParameters) *Request[DscNodeConfiguration]
	// Delete deletes a DSC node configuration.
	Delete(subscriptionID, resourceGroupName, automationAccountName, nodeConfigurationName string) *Request[NoContent]
	// ListByAutomationAccount lists the DSC node configurations of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[DscNodeConfigurationListResult, DscNodeConfiguration]
}

// DscCompilationJobsClient manages DSC compilation jobs.
type DscCompilationJobsClient interface {
	// Create starts a compilation job. The service answers 201 and does not wait for completion.
	Create(subscriptionID, resourceGroupName, automationAccountName, compilationJobName string, parameters *DscCompilationJobCreateParameters) *Request[DscCompilationJob]
	// Get retrieves a compilation job.
	Get(subscriptionID, resourceGroupName, automationAccountName, compilationJobName string) *Request[DscCompilationJob]
	// ListByAutomationAccount lists the compilation jobs of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[DscCompilationJobListResult, DscCompilationJob]
	// GetStream retrieves one stream record of a compilation job.
	GetStream(subscriptionID, resourceGroupName, automationAccountName, jobID, jobStreamID string) *Request[JobStream]
}

// DscCompilationJobStreamsClient reads the streams of a compilation job.
type DscCompilationJobStreamsClient interface {
	// ListByJob lists the stream records of a compilation job.
	ListByJob(subscriptionID, resourceGroupName, automationAccountName, jobID string) *ListRequest[JobStreamListResult, JobStream]
}

// NodeCountInformationClient reads DSC node counts.
type NodeCountInformationClient interface {
	// Get counts nodes by CountTypeStatus or CountTypeNodeConfiguration.
	Get(subscriptionID, resourceGroupName, automationAccountName, countType string) *Request[NodeCounts]
}

// SoftwareUpdateConfigurationsClient manages update deployments.
type SoftwareUpdateConfigurationsClient interface {
	// Create creates an update deployment.
	Create(subscriptionID, resourceGroupName, automationAccountName, softwareUpdateConfigurationName string, parameters *SoftwareUpdateConfiguration) *Request[SoftwareUpdateConfiguration]
	// GetByName retrieves an update deployment.
	GetByName(subscriptionID, resourceGroupName, automationAccountName, softwareUpdateConfigurationName string) *Request[SoftwareUpdateConfiguration]
	// Delete deletes an update deployment.
	Delete(subscriptionID, resourceGroupName, automationAccountName, softwareUpdateConfigurationName string) *Request[NoContent]
	// List lists the update deployments of an account. Only one page is returned.
	List(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[SoftwareUpdateConfigurationListResult, SoftwareUpdateConfigurationCollectionItem]
}

// SoftwareUpdateConfigurationRunsClient reads update deployment runs.
type SoftwareUpdateConfigurationRunsClient interface {
	// GetByID retrieves one run.
	GetByID(subscriptionID, resourceGroupName, automationAccountName, softwareUpdateConfigurationRunID string) *Request[SoftwareUpdateConfigurationRun]
	// List lists the runs of an account.
	List(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[SoftwareUpdateConfigurationRunListResult, SoftwareUpdateConfigurationRun]
}

// SoftwareUpdateConfigurationMachineRunsClient reads per machine update runs.
type SoftwareUpdateConfigurationMachineRunsClient interface {
	// GetByID retrieves one machine run.
	GetByID(subscriptionID, resourceGroupName, automationAccountName, softwareUpdateConfigurationMachineRunID string) *Request[SoftwareUpdateConfigurationMachineRun]
	// List lists the machine runs of an account.
	List(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[SoftwareUpdateConfigurationMachineRunListResult, SoftwareUpdateConfigurationMachineRun]
}

// SourceControlsClient manages source control links.
type SourceControlsClient interface {
	// Get retrieves the source control identified by name.
	Get(subscriptionID, resourceGroupName, automationAccountName, sourceControlName string) *Request[SourceControl]
	// CreateOrUpdate creates or replaces a source control.
	CreateOrUpdate(subscriptionID, resourceGroupName, automationAccountName, sourceControlName string, parameters *SourceControlCreateOrUpdateParameters) *Request[SourceControl]
	// Update patches a source control.
	Update(subscriptionID, resourceGroupName, automationAccountName, sourceControlName string, parameters *SourceControlUpdateParameters) *Request[SourceControl]
	// Delete deletes a source control.
	Delete(subscriptionID, resourceGroupName, automationAccountName, sourceControlName string) *Request[NoContent]
	// ListByAutomationAccount lists the source controls of an account.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName string) *ListRequest[SourceControlListResult, SourceControl]
}

// SourceControlSyncJobsClient manages source control sync jobs.
type SourceControlSyncJobsClient interface {
	// Create starts a sync job. The id is chosen by the caller.
	Create(subscriptionID, resourceGroupName, automationAccountName, sourceControlName, sourceControlSyncJobID string, parameters *SourceControlSyncJobCreateParameters) *Request[SourceControlSyncJob]
	// Get retrieves a sync job.
	Get(subscriptionID, resourceGroupName, automationAccountName, sourceControlName, sourceControlSyncJobID string) *Request[SourceControlSyncJobByID]
	// ListByAutomationAccount lists the sync jobs of a source control.
	ListByAutomationAccount(subscriptionID, resourceGroupName, automationAccountName, sourceControlName string) *ListRequest[SourceControlSyncJobListResult, SourceControlSyncJob]
}

// SourceControlSyncJobStreamsClient reads the streams of source control sync jobs.
type SourceControlSyncJobStreamsClient interface {
	// ListBySyncJob lists the stream records of a sync job.
	ListBySyncJob(subscriptionID, resourceGroupName, automationAccountName, sourceControlName, sourceControlSyncJobID string) *ListRequest[SourceControlSyncJobStreamsListBySyncJob, SourceControlSyncJobStream]
	// Get retrieves one stream record.
	Get(subscriptionID, resourceGroupName, automationAccountName, sourceControlName, sourceControlSyncJobID, streamID string) *Request[SourceControlSyncJobStreamByID]
}

// OperationsClient lists the operations of the resource provider.
type OperationsClient interface {
	// List lists every operation the provider exposes.
	List() *ListRequest[OperationListResult, ProviderOperation]
}
