package client

import "github.com/fivetwenty-io/azure-automation/pkg/automation"

// Catalogue returns every operation the resource clients can send, grouped
// by client.
func Catalogue() []*automation.Operation {
	return []*automation.Operation{
		&automationAccountsOperations.Get,
		&automationAccountsOperations.CreateOrUpdate,
		&automationAccountsOperations.Update,
		&automationAccountsOperations.Delete,
		&automationAccountsOperations.ListByResourceGroup,
		&automationAccountsOperations.List,
		&statisticsOperations.ListByAutomationAccount,
		&usagesOperations.ListByAutomationAccount,
		&keysOperations.ListByAutomationAccount,
		&linkedWorkspaceOperations.Get,
		&privateEndpointConnectionsOperations.Get,
		&privateEndpointConnectionsOperations.CreateOrUpdate,
		&privateEndpointConnectionsOperations.Delete,
		&privateEndpointConnectionsOperations.ListByAutomationAccount,
		&privateLinkResourcesOperations.List,
		&certificatesOperations.Get,
		&certificatesOperations.CreateOrUpdate,
		&certificatesOperations.Update,
		&certificatesOperations.Delete,
		&certificatesOperations.ListByAutomationAccount,
		&connectionsOperations.Get,
		&connectionsOperations.CreateOrUpdate,
		&connectionsOperations.Update,
		&connectionsOperations.Delete,
		&connectionsOperations.ListByAutomationAccount,
		&connectionTypesOperations.Get,
		&connectionTypesOperations.CreateOrUpdate,
		&connectionTypesOperations.Delete,
		&connectionTypesOperations.ListByAutomationAccount,
		&credentialsOperations.Get,
		&credentialsOperations.CreateOrUpdate,
		&credentialsOperations.Update,
		&credentialsOperations.Delete,
		&credentialsOperations.ListByAutomationAccount,
		&variablesOperations.Get,
		&variablesOperations.CreateOrUpdate,
		&variablesOperations.Update,
		&variablesOperations.Delete,
		&variablesOperations.ListByAutomationAccount,
		&schedulesOperations.Get,
		&schedulesOperations.CreateOrUpdate,
		&schedulesOperations.Update,
		&schedulesOperations.Delete,
		&schedulesOperations.ListByAutomationAccount,
		&jobSchedulesOperations.Get,
		&jobSchedulesOperations.Create,
		&jobSchedulesOperations.Delete,
		&jobSchedulesOperations.ListByAutomationAccount,
		&modulesOperations.Get,
		&modulesOperations.CreateOrUpdate,
		&modulesOperations.Update,
		&modulesOperations.Delete,
		&modulesOperations.ListByAutomationAccount,
		&python2PackagesOperations.Get,
		&python2PackagesOperations.CreateOrUpdate,
		&python2PackagesOperations.Update,
		&python2PackagesOperations.Delete,
		&python2PackagesOperations.ListByAutomationAccount,
		&activitiesOperations.Get,
		&activitiesOperations.ListByModule,
		&objectDataTypesOperations.ListFieldsByModuleAndType,
		&objectDataTypesOperations.ListFieldsByType,
		&fieldsOperations.ListByType,
		&runbooksOperations.Get,
		&runbooksOperations.CreateOrUpdate,
		&runbooksOperations.Update,
		&runbooksOperations.Delete,
		&runbooksOperations.Publish,
		&runbooksOperations.GetContent,
		&runbooksOperations.ListByAutomationAccount,
		&runbookDraftOperations.GetContent,
		&runbookDraftOperations.ReplaceContent,
		&runbookDraftOperations.Get,
		&runbookDraftOperations.UndoEdit,
		&testJobOperations.Create,
		&testJobOperations.Get,
		&testJobOperations.Resume,
		&testJobOperations.Stop,
		&testJobOperations.Suspend,
		&testJobStreamsOperations.Get,
		&testJobStreamsOperations.ListByTestJob,
		&jobsOperations.Get,
		&jobsOperations.Create,
		&jobsOperations.GetOutput,
		&jobsOperations.GetRunbookContent,
		&jobsOperations.Suspend,
		&jobsOperations.Stop,
		&jobsOperations.Resume,
		&jobsOperations.ListByAutomationAccount,
		&jobStreamsOperations.Get,
		&jobStreamsOperations.ListByJob,
		&hybridRunbookWorkerGroupsOperations.Get,
		&hybridRunbookWorkerGroupsOperations.Update,
		&hybridRunbookWorkerGroupsOperations.Delete,
		&hybridRunbookWorkerGroupsOperations.ListByAutomationAccount,
		&watchersOperations.Get,
		&watchersOperations.CreateOrUpdate,
		&watchersOperations.Update,
		&watchersOperations.Delete,
		&watchersOperations.Start,
		&watchersOperations.Stop,
		&watchersOperations.ListByAutomationAccount,
		&webhooksOperations.Get,
		&webhooksOperations.CreateOrUpdate,
		&webhooksOperations.Update,
		&webhooksOperations.Delete,
		&webhooksOperations.GenerateURI,
		&webhooksOperations.ListByAutomationAccount,
		&dscConfigurationsOperations.Get,
		&dscConfigurationsOperations.CreateOrUpdate,
		&dscConfigurationsOperations.Update,
		&dscConfigurationsOperations.Delete,
		&dscConfigurationsOperations.GetContent,
		&dscConfigurationsOperations.ListByAutomationAccount,
		&dscNodesOperations.Get,
		&dscNodesOperations.Update,
		&dscNodesOperations.Delete,
		&dscNodesOperations.ListByAutomationAccount,
		&nodeReportsOperations.ListByNode,
		&nodeReportsOperations.Get,
		&nodeReportsOperations.GetContent,
		&agentRegistrationInformationOperations.Get,
		&agentRegistrationInformationOperations.RegenerateKey,
		&dscNodeConfigurationsOperations.Get,
		&dscNodeConfigurationsOperations.CreateOrUpdate,
		&dscNodeConfigurationsOperations.Delete,
		&dscNodeConfigurationsOperations.ListByAutomationAccount,
		&dscCompilationJobsOperations.Create,
		&dscCompilationJobsOperations.Get,
		&dscCompilationJobsOperations.ListByAutomationAccount,
		&dscCompilationJobsOperations.GetStream,
		&dscCompilationJobStreamsOperations.ListByJob,
		&nodeCountInformationOperations.Get,
		&softwareUpdateConfigurationsOperations.Create,
		&softwareUpdateConfigurationsOperations.GetByName,
		&softwareUpdateConfigurationsOperations.Delete,
		&softwareUpdateConfigurationsOperations.List,
		&softwareUpdateConfigurationRunsOperations.GetByID,
		&softwareUpdateConfigurationRunsOperations.List,
		&softwareUpdateConfigurationMachineRunsOperations.GetByID,
		&softwareUpdateConfigurationMachineRunsOperations.List,
		&sourceControlsOperations.Get,
		&sourceControlsOperations.CreateOrUpdate,
		&sourceControlsOperations.Update,
		&sourceControlsOperations.Delete,
		&sourceControlsOperations.ListByAutomationAccount,
		&sourceControlSyncJobsOperations.Create,
		&sourceControlSyncJobsOperations.Get,
		&sourceControlSyncJobsOperations.ListByAutomationAccount,
		&sourceControlSyncJobStreamsOperations.ListBySyncJob,
		&sourceControlSyncJobStreamsOperations.Get,
		&operationsOperations.List,
	}
}
