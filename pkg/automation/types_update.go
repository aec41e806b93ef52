package automation

import "time"

// SoftwareUpdateConfiguration is an update deployment.
type SoftwareUpdateConfiguration struct {
	ProxyResource `yaml:",inline"`

	Properties *SoftwareUpdateConfigurationProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type SoftwareUpdateConfigurationProperties struct {
	UpdateConfiguration *UpdateConfiguration              `json:"updateConfiguration,omitempty" yaml:"updateConfiguration,omitempty"`
	ScheduleInfo        *SUCScheduleProperties            `json:"scheduleInfo,omitempty"        yaml:"scheduleInfo,omitempty"`
	ProvisioningState   string                            `json:"provisioningState,omitempty"   yaml:"provisioningState,omitempty"`
	Error               *ErrorResponse                    `json:"error,omitempty"               yaml:"error,omitempty"`
	CreationTime        *time.Time                        `json:"creationTime,omitempty"        yaml:"creationTime,omitempty"`
	CreatedBy           string                            `json:"createdBy,omitempty"           yaml:"createdBy,omitempty"`
	LastModifiedTime    *time.Time                        `json:"lastModifiedTime,omitempty"    yaml:"lastModifiedTime,omitempty"`
	LastModifiedBy      string                            `json:"lastModifiedBy,omitempty"      yaml:"lastModifiedBy,omitempty"`
	Tasks               *SoftwareUpdateConfigurationTasks `json:"tasks,omitempty"               yaml:"tasks,omitempty"`
}

// ErrorResponse is an error embedded in a resource payload.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"    yaml:"code,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// UpdateConfiguration selects the machines and updates of a deployment.
type UpdateConfiguration struct {
	OperatingSystem       string             `json:"operatingSystem,omitempty"       yaml:"operatingSystem,omitempty"`
	Windows               *WindowsProperties `json:"windows,omitempty"               yaml:"windows,omitempty"`
	Linux                 *LinuxProperties   `json:"linux,omitempty"                 yaml:"linux,omitempty"`
	Duration              string             `json:"duration,omitempty"              yaml:"duration,omitempty"`
	AzureVirtualMachines  []string           `json:"azureVirtualMachines,omitempty"  yaml:"azureVirtualMachines,omitempty"`
	NonAzureComputerNames []string           `json:"nonAzureComputerNames,omitempty" yaml:"nonAzureComputerNames,omitempty"`
	Targets               *TargetProperties  `json:"targets,omitempty"               yaml:"targets,omitempty"`
}

type WindowsProperties struct {
	IncludedUpdateClassifications string   `json:"includedUpdateClassifications,omitempty" yaml:"includedUpdateClassifications,omitempty"`
	ExcludedKbNumbers             []string `json:"excludedKbNumbers,omitempty"             yaml:"excludedKbNumbers,omitempty"`
	IncludedKbNumbers             []string `json:"includedKbNumbers,omitempty"             yaml:"includedKbNumbers,omitempty"`
	RebootSetting                 string   `json:"rebootSetting,omitempty"                 yaml:"rebootSetting,omitempty"`
}

type LinuxProperties struct {
	IncludedPackageClassifications string   `json:"includedPackageClassifications,omitempty" yaml:"includedPackageClassifications,omitempty"`
	ExcludedPackageNameMasks       []string `json:"excludedPackageNameMasks,omitempty"       yaml:"excludedPackageNameMasks,omitempty"`
	IncludedPackageNameMasks       []string `json:"includedPackageNameMasks,omitempty"       yaml:"includedPackageNameMasks,omitempty"`
	RebootSetting                  string   `json:"rebootSetting,omitempty"                  yaml:"rebootSetting,omitempty"`
}

type TargetProperties struct {
	AzureQueries    []AzureQueryProperties    `json:"azureQueries,omitempty"    yaml:"azureQueries,omitempty"`
	NonAzureQueries []NonAzureQueryProperties `json:"nonAzureQueries,omitempty" yaml:"nonAzureQueries,omitempty"`
}

type AzureQueryProperties struct {
	Scope       []string               `json:"scope,omitempty"       yaml:"scope,omitempty"`
	Locations   []string               `json:"locations,omitempty"   yaml:"locations,omitempty"`
	TagSettings *TagSettingsProperties `json:"tagSettings,omitempty" yaml:"tagSettings,omitempty"`
}

type TagSettingsProperties struct {
	Tags           map[string][]string `json:"tags,omitempty"           yaml:"tags,omitempty"`
	FilterOperator string              `json:"filterOperator,omitempty" yaml:"filterOperator,omitempty"`
}

type NonAzureQueryProperties struct {
	FunctionAlias string `json:"functionAlias,omitempty" yaml:"functionAlias,omitempty"`
	WorkspaceID   string `json:"workspaceId,omitempty"   yaml:"workspaceId,omitempty"`
}

// SUCScheduleProperties is the schedule of an update deployment.
type SUCScheduleProperties struct {
	StartTime               *time.Time        `json:"startTime,omitempty"               yaml:"startTime,omitempty"`
	StartTimeOffsetMinutes  float64           `json:"startTimeOffsetMinutes,omitempty"  yaml:"startTimeOffsetMinutes,omitempty"`
	ExpiryTime              *time.Time        `json:"expiryTime,omitempty"              yaml:"expiryTime,omitempty"`
	ExpiryTimeOffsetMinutes float64           `json:"expiryTimeOffsetMinutes,omitempty" yaml:"expiryTimeOffsetMinutes,omitempty"`
	IsEnabled               bool              `json:"isEnabled,omitempty"               yaml:"isEnabled,omitempty"`
	NextRun                 *time.Time        `json:"nextRun,omitempty"                 yaml:"nextRun,omitempty"`
	NextRunOffsetMinutes    float64           `json:"nextRunOffsetMinutes,omitempty"    yaml:"nextRunOffsetMinutes,omitempty"`
	Interval                *int64            `json:"interval,omitempty"                yaml:"interval,omitempty"`
	Frequency               string            `json:"frequency,omitempty"               yaml:"frequency,omitempty"`
	TimeZone                string            `json:"timeZone,omitempty"                yaml:"timeZone,omitempty"`
	AdvancedSchedule        *AdvancedSchedule `json:"advancedSchedule,omitempty"        yaml:"advancedSchedule,omitempty"`
	CreationTime            *time.Time        `json:"creationTime,omitempty"            yaml:"creationTime,omitempty"`
	LastModifiedTime        *time.Time        `json:"lastModifiedTime,omitempty"        yaml:"lastModifiedTime,omitempty"`
	Description             string            `json:"description,omitempty"             yaml:"description,omitempty"`
}

type SoftwareUpdateConfigurationTasks struct {
	PreTask  *TaskProperties `json:"preTask,omitempty"  yaml:"preTask,omitempty"`
	PostTask *TaskProperties `json:"postTask,omitempty" yaml:"postTask,omitempty"`
}

type TaskProperties struct {
	Parameters map[string]string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Source     string            `json:"source,omitempty"     yaml:"source,omitempty"`
}

// SoftwareUpdateConfigurationCollectionItem is the summary form returned by list.
type SoftwareUpdateConfigurationCollectionItem struct {
	Name       string                                               `json:"name,omitempty"       yaml:"name,omitempty"`
	ID         string                                               `json:"id,omitempty"         yaml:"id,omitempty"`
	Properties *SoftwareUpdateConfigurationCollectionItemProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type SoftwareUpdateConfigurationCollectionItemProperties struct {
	UpdateConfiguration *UpdateConfiguration              `json:"updateConfiguration,omitempty" yaml:"updateConfiguration,omitempty"`
	Tasks               *SoftwareUpdateConfigurationTasks `json:"tasks,omitempty"               yaml:"tasks,omitempty"`
	Frequency           string                            `json:"frequency,omitempty"           yaml:"frequency,omitempty"`
	StartTime           *time.Time                        `json:"startTime,omitempty"           yaml:"startTime,omitempty"`
	CreationTime        *time.Time                        `json:"creationTime,omitempty"        yaml:"creationTime,omitempty"`
	LastModifiedTime    *time.Time                        `json:"lastModifiedTime,omitempty"    yaml:"lastModifiedTime,omitempty"`
	ProvisioningState   string                            `json:"provisioningState,omitempty"   yaml:"provisioningState,omitempty"`
	NextRun             *time.Time                        `json:"nextRun,omitempty"             yaml:"nextRun,omitempty"`
}

// SoftwareUpdateConfigurationListResult is one page of SoftwareUpdateConfigurationCollectionItem items.
type SoftwareUpdateConfigurationListResult struct {
	Value []SoftwareUpdateConfigurationCollectionItem `json:"value,omitempty" yaml:"value,omitempty"`
}

// NextPageLink implements Page. The schema has no continuation field.
func (r SoftwareUpdateConfigurationListResult) NextPageLink() string {
	return ""
}

// Values implements Page.
func (r SoftwareUpdateConfigurationListResult) Values() []SoftwareUpdateConfigurationCollectionItem {
	return r.Value
}

// UpdateConfigurationNavigation references a deployment by name.
type UpdateConfigurationNavigation struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// SoftwareUpdateConfigurationRun is one execution of a deployment.
type SoftwareUpdateConfigurationRun struct {
	Name       string                                    `json:"name,omitempty"       yaml:"name,omitempty"`
	ID         string                                    `json:"id,omitempty"         yaml:"id,omitempty"`
	Properties *SoftwareUpdateConfigurationRunProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type SoftwareUpdateConfigurationRunProperties struct {
	SoftwareUpdateConfiguration *UpdateConfigurationNavigation       `json:"softwareUpdateConfiguration,omitempty" yaml:"softwareUpdateConfiguration,omitempty"`
	Status                      string                               `json:"status,omitempty"                      yaml:"status,omitempty"`
	ConfiguredDuration          string                               `json:"configuredDuration,omitempty"          yaml:"configuredDuration,omitempty"`
	OsType                      string                               `json:"osType,omitempty"                      yaml:"osType,omitempty"`
	StartTime                   *time.Time                           `json:"startTime,omitempty"                   yaml:"startTime,omitempty"`
	EndTime                     *time.Time                           `json:"endTime,omitempty"                     yaml:"endTime,omitempty"`
	ComputerCount               int32                                `json:"computerCount,omitempty"               yaml:"computerCount,omitempty"`
	FailedCount                 int32                                `json:"failedCount,omitempty"                 yaml:"failedCount,omitempty"`
	CreationTime                *time.Time                           `json:"creationTime,omitempty"                yaml:"creationTime,omitempty"`
	CreatedBy                   string                               `json:"createdBy,omitempty"                   yaml:"createdBy,omitempty"`
	LastModifiedTime            *time.Time                           `json:"lastModifiedTime,omitempty"            yaml:"lastModifiedTime,omitempty"`
	LastModifiedBy              string                               `json:"lastModifiedBy,omitempty"              yaml:"lastModifiedBy,omitempty"`
	Tasks                       *SoftwareUpdateConfigurationRunTasks `json:"tasks,omitempty"                       yaml:"tasks,omitempty"`
}

type SoftwareUpdateConfigurationRunTasks struct {
	PreTask  *SoftwareUpdateConfigurationRunTaskProperties `json:"preTask,omitempty"  yaml:"preTask,omitempty"`
	PostTask *SoftwareUpdateConfigurationRunTaskProperties `json:"postTask,omitempty" yaml:"postTask,omitempty"`
}

type SoftwareUpdateConfigurationRunTaskProperties struct {
	Status string `json:"status,omitempty" yaml:"status,omitempty"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	JobID  string `json:"jobId,omitempty"  yaml:"jobId,omitempty"`
}

// SoftwareUpdateConfigurationRunListResult is one page of SoftwareUpdateConfigurationRun items.
type SoftwareUpdateConfigurationRunListResult struct {
	Value    []SoftwareUpdateConfigurationRun `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string                           `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r SoftwareUpdateConfigurationRunListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r SoftwareUpdateConfigurationRunListResult) Values() []SoftwareUpdateConfigurationRun {
	return r.Value
}

// SoftwareUpdateConfigurationMachineRun is one machine's part of a run.
type SoftwareUpdateConfigurationMachineRun struct {
	Name       string                                   `json:"name,omitempty"       yaml:"name,omitempty"`
	ID         string                                   `json:"id,omitempty"         yaml:"id,omitempty"`
	Properties *UpdateConfigurationMachineRunProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type UpdateConfigurationMachineRunProperties struct {
	TargetComputer              string                         `json:"targetComputer,omitempty"              yaml:"targetComputer,omitempty"`
	TargetComputerType          string                         `json:"targetComputerType,omitempty"          yaml:"targetComputerType,omitempty"`
	SoftwareUpdateConfiguration *UpdateConfigurationNavigation `json:"softwareUpdateConfiguration,omitempty" yaml:"softwareUpdateConfiguration,omitempty"`
	Status                      string                         `json:"status,omitempty"                      yaml:"status,omitempty"`
	OsType                      string                         `json:"osType,omitempty"                      yaml:"osType,omitempty"`
	CorrelationID               string                         `json:"correlationId,omitempty"               yaml:"correlationId,omitempty"`
	SourceComputerID            string                         `json:"sourceComputerId,omitempty"            yaml:"sourceComputerId,omitempty"`
	StartTime                   *time.Time                     `json:"startTime,omitempty"                   yaml:"startTime,omitempty"`
	EndTime                     *time.Time                     `json:"endTime,omitempty"                     yaml:"endTime,omitempty"`
	ConfiguredDuration          string                         `json:"configuredDuration,omitempty"          yaml:"configuredDuration,omitempty"`
	Job                         *JobNavigation                 `json:"job,omitempty"                         yaml:"job,omitempty"`
	CreationTime                *time.Time                     `json:"creationTime,omitempty"                yaml:"creationTime,omitempty"`
	CreatedBy                   string                         `json:"createdBy,omitempty"                   yaml:"createdBy,omitempty"`
	LastModifiedTime            *time.Time                     `json:"lastModifiedTime,omitempty"            yaml:"lastModifiedTime,omitempty"`
	LastModifiedBy              string                         `json:"lastModifiedBy,omitempty"              yaml:"lastModifiedBy,omitempty"`
	Error                       *ErrorResponse                 `json:"error,omitempty"                       yaml:"error,omitempty"`
}

type JobNavigation struct {
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
}

// SoftwareUpdateConfigurationMachineRunListResult is one page of SoftwareUpdateConfigurationMachineRun items.
type SoftwareUpdateConfigurationMachineRunListResult struct {
	Value    []SoftwareUpdateConfigurationMachineRun `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string                                  `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r SoftwareUpdateConfigurationMachineRunListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r SoftwareUpdateConfigurationMachineRunListResult) Values() []SoftwareUpdateConfigurationMachineRun {
	return r.Value
}
