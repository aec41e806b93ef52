package automation

import "time"

// ContentSource is inline or linked configuration content.
type ContentSource struct {
	Hash    *ContentHash `json:"hash,omitempty"    yaml:"hash,omitempty"`
	Type    string       `json:"type,omitempty"    yaml:"type,omitempty"`
	Value   string       `json:"value,omitempty"   yaml:"value,omitempty"`
	Version string       `json:"version,omitempty" yaml:"version,omitempty"`
}

// DscConfiguration is a DSC configuration.
type DscConfiguration struct {
	TrackedResource `yaml:",inline"`

	Etag       string                      `json:"etag,omitempty"       yaml:"etag,omitempty"`
	Properties *DscConfigurationProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type DscConfigurationProperties struct {
	ProvisioningState      string                               `json:"provisioningState,omitempty"      yaml:"provisioningState,omitempty"`
	JobCount               int32                                `json:"jobCount,omitempty"               yaml:"jobCount,omitempty"`
	Parameters             map[string]DscConfigurationParameter `json:"parameters,omitempty"             yaml:"parameters,omitempty"`
	Source                 *ContentSource                       `json:"source,omitempty"                 yaml:"source,omitempty"`
	State                  string                               `json:"state,omitempty"                  yaml:"state,omitempty"`
	LogVerbose             bool                                 `json:"logVerbose,omitempty"             yaml:"logVerbose,omitempty"`
	CreationTime           *time.Time                           `json:"creationTime,omitempty"           yaml:"creationTime,omitempty"`
	LastModifiedTime       *time.Time                           `json:"lastModifiedTime,omitempty"       yaml:"lastModifiedTime,omitempty"`
	NodeConfigurationCount int32                                `json:"nodeConfigurationCount,omitempty" yaml:"nodeConfigurationCount,omitempty"`
	Description            string                               `json:"description,omitempty"            yaml:"description,omitempty"`
}

// DscConfigurationParameter describes one configuration input.
type DscConfigurationParameter struct {
	Type         string `json:"type,omitempty"         yaml:"type,omitempty"`
	IsMandatory  bool   `json:"isMandatory,omitempty"  yaml:"isMandatory,omitempty"`
	Position     int32  `json:"position,omitempty"     yaml:"position,omitempty"`
	DefaultValue string `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
}

// DscConfigurationAssociationProperty references a configuration by name.
type DscConfigurationAssociationProperty struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// DscConfigurationCreateOrUpdateParameters is the CreateOrUpdate payload.
type DscConfigurationCreateOrUpdateParameters struct {
	Properties *DscConfigurationCreateOrUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
	Name       string                                    `json:"name,omitempty"       yaml:"name,omitempty"`
	Location   string                                    `json:"location,omitempty"   yaml:"location,omitempty"`
	Tags       map[string]string                         `json:"tags,omitempty"       yaml:"tags,omitempty"`
}

type DscConfigurationCreateOrUpdateProperties struct {
	LogVerbose  *bool                                `json:"logVerbose,omitempty"  yaml:"logVerbose,omitempty"`
	LogProgress *bool                                `json:"logProgress,omitempty" yaml:"logProgress,omitempty"`
	Source      *ContentSource                       `json:"source,omitempty"      yaml:"source,omitempty"`
	Parameters  map[string]DscConfigurationParameter `json:"parameters,omitempty"  yaml:"parameters,omitempty"`
	Description string                               `json:"description,omitempty" yaml:"description,omitempty"`
}

// DscConfigurationUpdateParameters is the Update payload.
type DscConfigurationUpdateParameters struct {
	Properties *DscConfigurationCreateOrUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
	Name       string                                    `json:"name,omitempty"       yaml:"name,omitempty"`
	Tags       map[string]string                         `json:"tags,omitempty"       yaml:"tags,omitempty"`
}

// DscConfigurationListResult is one page of DscConfiguration items.
type DscConfigurationListResult struct {
	Value      []DscConfiguration `json:"value,omitempty"      yaml:"value,omitempty"`
	NextLink   string             `json:"nextLink,omitempty"   yaml:"nextLink,omitempty"`
	TotalCount int32              `json:"totalCount,omitempty" yaml:"totalCount,omitempty"`
}

// NextPageLink implements Page.
func (r DscConfigurationListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r DscConfigurationListResult) Values() []DscConfiguration {
	return r.Value
}

// DscNode is a node registered with the pull server.
type DscNode struct {
	ProxyResource `yaml:",inline"`

	Properties *DscNodeProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type DscNodeProperties struct {
	LastSeen          *time.Time                                   `json:"lastSeen,omitempty"          yaml:"lastSeen,omitempty"`
	RegistrationTime  *time.Time                                   `json:"registrationTime,omitempty"  yaml:"registrationTime,omitempty"`
	IP                string                                       `json:"ip,omitempty"                yaml:"ip,omitempty"`
	AccountID         string                                       `json:"accountId,omitempty"         yaml:"accountId,omitempty"`
	NodeConfiguration *DscNodeConfigurationAssociationProperty     `json:"nodeConfiguration,omitempty" yaml:"nodeConfiguration,omitempty"`
	Status            string                                       `json:"status,omitempty"            yaml:"status,omitempty"`
	NodeID            string                                       `json:"nodeId,omitempty"            yaml:"nodeId,omitempty"`
	Etag              string                                       `json:"etag,omitempty"              yaml:"etag,omitempty"`
	TotalCount        int32                                        `json:"totalCount,omitempty"        yaml:"totalCount,omitempty"`
	ExtensionHandler  []DscNodeExtensionHandlerAssociationProperty `json:"extensionHandler,omitempty"  yaml:"extensionHandler,omitempty"`
}

// DscNodeConfigurationAssociationProperty references a node configuration by name.
type DscNodeConfigurationAssociationProperty struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

type DscNodeExtensionHandlerAssociationProperty struct {
	Name    string `json:"name,omitempty"    yaml:"name,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// DscNodeUpdateParameters is the Update payload.
type DscNodeUpdateParameters struct {
	NodeID     string                   `json:"nodeId,omitempty"     yaml:"nodeId,omitempty"`
	Properties *DscNodeUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type DscNodeUpdateProperties struct {
	NodeConfiguration *DscNodeConfigurationAssociationProperty `json:"nodeConfiguration,omitempty" yaml:"nodeConfiguration,omitempty"`
}

// DscNodeListResult is one page of DscNode items.
type DscNodeListResult struct {
	Value      []DscNode `json:"value,omitempty"      yaml:"value,omitempty"`
	NextLink   string    `json:"nextLink,omitempty"   yaml:"nextLink,omitempty"`
	TotalCount int32     `json:"totalCount,omitempty" yaml:"totalCount,omitempty"`
}

// NextPageLink implements Page.
func (r DscNodeListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r DscNodeListResult) Values() []DscNode {
	return r.Value
}

// DscNodeReport is one consistency report of a node.
type DscNodeReport struct {
	EndTime              *time.Time            `json:"endTime,omitempty"              yaml:"endTime,omitempty"`
	LastModifiedTime     *time.Time            `json:"lastModifiedTime,omitempty"     yaml:"lastModifiedTime,omitempty"`
	StartTime            *time.Time            `json:"startTime,omitempty"            yaml:"startTime,omitempty"`
	Type                 string                `json:"type,omitempty"                 yaml:"type,omitempty"`
	ReportID             string                `json:"reportId,omitempty"             yaml:"reportId,omitempty"`
	Status               string                `json:"status,omitempty"               yaml:"status,omitempty"`
	RefreshMode          string                `json:"refreshMode,omitempty"          yaml:"refreshMode,omitempty"`
	RebootRequested      string                `json:"rebootRequested,omitempty"      yaml:"rebootRequested,omitempty"`
	ReportFormatVersion  string                `json:"reportFormatVersion,omitempty"  yaml:"reportFormatVersion,omitempty"`
	ConfigurationVersion string                `json:"configurationVersion,omitempty" yaml:"configurationVersion,omitempty"`
	ID                   string                `json:"id,omitempty"                   yaml:"id,omitempty"`
	Errors               []DscReportError      `json:"errors,omitempty"               yaml:"errors,omitempty"`
	Resources            []DscReportResource   `json:"resources,omitempty"            yaml:"resources,omitempty"`
	MetaConfiguration    *DscMetaConfiguration `json:"metaConfiguration,omitempty"    yaml:"metaConfiguration,omitempty"`
	HostName             string                `json:"hostName,omitempty"             yaml:"hostName,omitempty"`
	IPV4Addresses        []string              `json:"iPV4Addresses,omitempty"        yaml:"iPV4Addresses,omitempty"`
	IPV6Addresses        []string              `json:"iPV6Addresses,omitempty"        yaml:"iPV6Addresses,omitempty"`
	NumberOfResources    int32                 `json:"numberOfResources,omitempty"    yaml:"numberOfResources,omitempty"`
	RawErrors            string                `json:"rawErrors,omitempty"            yaml:"rawErrors,omitempty"`
}

type DscReportError struct {
	ErrorSource  string `json:"errorSource,omitempty"  yaml:"errorSource,omitempty"`
	ResourceID   string `json:"resourceId,omitempty"   yaml:"resourceId,omitempty"`
	ErrorCode    string `json:"errorCode,omitempty"    yaml:"errorCode,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty" yaml:"errorMessage,omitempty"`
	Locale       string `json:"locale,omitempty"       yaml:"locale,omitempty"`
	ErrorDetails string `json:"errorDetails,omitempty" yaml:"errorDetails,omitempty"`
}

type DscReportResource struct {
	ResourceID        string                        `json:"resourceId,omitempty"        yaml:"resourceId,omitempty"`
	SourceInfo        string                        `json:"sourceInfo,omitempty"        yaml:"sourceInfo,omitempty"`
	DependsOn         []DscReportResourceNavigation `json:"dependsOn,omitempty"         yaml:"dependsOn,omitempty"`
	ModuleName        string                        `json:"moduleName,omitempty"        yaml:"moduleName,omitempty"`
	ModuleVersion     string                        `json:"moduleVersion,omitempty"     yaml:"moduleVersion,omitempty"`
	ResourceName      string                        `json:"resourceName,omitempty"      yaml:"resourceName,omitempty"`
	Error             string                        `json:"error,omitempty"             yaml:"error,omitempty"`
	Status            string                        `json:"status,omitempty"            yaml:"status,omitempty"`
	DurationInSeconds float64                       `json:"durationInSeconds,omitempty" yaml:"durationInSeconds,omitempty"`
	StartDate         *time.Time                    `json:"startDate,omitempty"         yaml:"startDate,omitempty"`
}

type DscReportResourceNavigation struct {
	ResourceID string `json:"resourceId,omitempty" yaml:"resourceId,omitempty"`
}

// DscMetaConfiguration is the local configuration manager state of a node.
type DscMetaConfiguration struct {
	ConfigurationModeFrequencyMins int32  `json:"configurationModeFrequencyMins,omitempty" yaml:"configurationModeFrequencyMins,omitempty"`
	RebootNodeIfNeeded             bool   `json:"rebootNodeIfNeeded,omitempty"             yaml:"rebootNodeIfNeeded,omitempty"`
	ConfigurationMode              string `json:"configurationMode,omitempty"              yaml:"configurationMode,omitempty"`
	ActionAfterReboot              string `json:"actionAfterReboot,omitempty"              yaml:"actionAfterReboot,omitempty"`
	CertificateID                  string `json:"certificateId,omitempty"                  yaml:"certificateId,omitempty"`
	RefreshFrequencyMins           int32  `json:"refreshFrequencyMins,omitempty"           yaml:"refreshFrequencyMins,omitempty"`
	AllowModuleOverwrite           bool   `json:"allowModuleOverwrite,omitempty"           yaml:"allowModuleOverwrite,omitempty"`
}

// DscNodeReportListResult is one page of DscNodeReport items.
type DscNodeReportListResult struct {
	Value    []DscNodeReport `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string          `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r DscNodeReportListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r DscNodeReportListResult) Values() []DscNodeReport {
	return r.Value
}

// DscNodeReportContent is the raw report document of a node.
type DscNodeReportContent map[string]interface{}

// DscNodeConfiguration is a compiled node configuration.
type DscNodeConfiguration struct {
	ProxyResource `yaml:",inline"`

	Properties *DscNodeConfigurationProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type DscNodeConfigurationProperties struct {
	LastModifiedTime                *time.Time                           `json:"lastModifiedTime,omitempty"                yaml:"lastModifiedTime,omitempty"`
	CreationTime                    *time.Time                           `json:"creationTime,omitempty"                    yaml:"creationTime,omitempty"`
	Configuration                   *DscConfigurationAssociationProperty `json:"configuration,omitempty"                   yaml:"configuration,omitempty"`
	Source                          string                               `json:"source,omitempty"                          yaml:"source,omitempty"`
	NodeCount                       int64                                `json:"nodeCount,omitempty"                       yaml:"nodeCount,omitempty"`
	IncrementNodeConfigurationBuild bool                                 `json:"incrementNodeConfigurationBuild,omitempty" yaml:"incrementNodeConfigurationBuild,omitempty"`
}

// DscNodeConfigurationCreateOrUpdateParameters is the CreateOrUpdate payload.
type DscNodeConfigurationCreateOrUpdateParameters struct {
	Properties *DscNodeConfigurationCreateOrUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
	Name       string                                        `json:"name,omitempty"       yaml:"name,omitempty"`
	Tags       map[string]string                             `json:"tags,omitempty"       yaml:"tags,omitempty"`
}

type DscNodeConfigurationCreateOrUpdateProperties struct {
	Source                          *ContentSource                       `json:"source,omitempty"                          yaml:"source,omitempty"`
	Configuration                   *DscConfigurationAssociationProperty `json:"configuration,omitempty"                   yaml:"configuration,omitempty"`
	IncrementNodeConfigurationBuild *bool                                `json:"incrementNodeConfigurationBuild,omitempty" yaml:"incrementNodeConfigurationBuild,omitempty"`
}

// DscNodeConfigurationListResult is one page of DscNodeConfiguration items.
type DscNodeConfigurationListResult struct {
	Value      []DscNodeConfiguration `json:"value,omitempty"      yaml:"value,omitempty"`
	NextLink   string                 `json:"nextLink,omitempty"   yaml:"nextLink,omitempty"`
	TotalCount int32                  `json:"totalCount,omitempty" yaml:"totalCount,omitempty"`
}

// NextPageLink implements Page.
func (r DscNodeConfigurationListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r DscNodeConfigurationListResult) Values() []DscNodeConfiguration {
	return r.Value
}

// DscCompilationJob compiles a configuration into node configurations.
type DscCompilationJob struct {
	ProxyResource `yaml:",inline"`

	Properties *DscCompilationJobProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type DscCompilationJobProperties struct {
	Configuration          *DscConfigurationAssociationProperty `json:"configuration,omitempty"          yaml:"configuration,omitempty"`
	StartedBy              string                               `json:"startedBy,omitempty"              yaml:"startedBy,omitempty"`
	JobID                  string                               `json:"jobId,omitempty"                  yaml:"jobId,omitempty"`
	CreationTime           *time.Time                           `json:"creationTime,omitempty"           yaml:"creationTime,omitempty"`
	ProvisioningState      string                               `json:"provisioningState,omitempty"      yaml:"provisioningState,omitempty"`
	RunOn                  string                               `json:"runOn,omitempty"                  yaml:"runOn,omitempty"`
	Status                 string                               `json:"status,omitempty"                 yaml:"status,omitempty"`
	StatusDetails          string                               `json:"statusDetails,omitempty"          yaml:"statusDetails,omitempty"`
	StartTime              *time.Time                           `json:"startTime,omitempty"              yaml:"startTime,omitempty"`
	EndTime                *time.Time                           `json:"endTime,omitempty"                yaml:"endTime,omitempty"`
	Exception              string                               `json:"exception,omitempty"              yaml:"exception,omitempty"`
	LastModifiedTime       *time.Time                           `json:"lastModifiedTime,omitempty"       yaml:"lastModifiedTime,omitempty"`
	LastStatusModifiedTime *time.Time                           `json:"lastStatusModifiedTime,omitempty" yaml:"lastStatusModifiedTime,omitempty"`
	Parameters             map[string]string                    `json:"parameters,omitempty"             yaml:"parameters,omitempty"`
}

// DscCompilationJobCreateParameters is the Create payload.
type DscCompilationJobCreateParameters struct {
	Properties *DscCompilationJobCreateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
	Name       string                             `json:"name,omitempty"       yaml:"name,omitempty"`
	Location   string                             `json:"location,omitempty"   yaml:"location,omitempty"`
	Tags       map[string]string                  `json:"tags,omitempty"       yaml:"tags,omitempty"`
}

type DscCompilationJobCreateProperties struct {
	Configuration                   *DscConfigurationAssociationProperty `json:"configuration,omitempty"                   yaml:"configuration,omitempty"`
	Parameters                      map[string]string                    `json:"parameters,omitempty"                      yaml:"parameters,omitempty"`
	IncrementNodeConfigurationBuild *bool                                `json:"incrementNodeConfigurationBuild,omitempty" yaml:"incrementNodeConfigurationBuild,omitempty"`
}

// DscCompilationJobListResult is one page of DscCompilationJob items.
type DscCompilationJobListResult struct {
	Value    []DscCompilationJob `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string              `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r DscCompilationJobListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r DscCompilationJobListResult) Values() []DscCompilationJob {
	return r.Value
}

// AgentRegistration is the information a DSC agent needs to register.
type AgentRegistration struct {
	DscMetaConfiguration string                 `json:"dscMetaConfiguration,omitempty" yaml:"dscMetaConfiguration,omitempty"`
	Endpoint             string                 `json:"endpoint,omitempty"             yaml:"endpoint,omitempty"`
	Keys                 *AgentRegistrationKeys `json:"keys,omitempty"                 yaml:"keys,omitempty"`
	ID                   string                 `json:"id,omitempty"                   yaml:"id,omitempty"`
}

type AgentRegistrationKeys struct {
	Primary   string `json:"primary,omitempty"   yaml:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty" yaml:"secondary,omitempty"`
}

// AgentRegistrationRegenerateKeyParameter selects the key to regenerate.
type AgentRegistrationRegenerateKeyParameter struct {
	KeyName string `json:"keyName,omitempty" yaml:"keyName,omitempty"`
}

// NodeCounts is the node count grouped by status or node configuration.
type NodeCounts struct {
	Value      []NodeCount `json:"value,omitempty"      yaml:"value,omitempty"`
	TotalCount int32       `json:"totalCount,omitempty" yaml:"totalCount,omitempty"`
}

type NodeCount struct {
	Name       string               `json:"name,omitempty"       yaml:"name,omitempty"`
	Properties *NodeCountProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type NodeCountProperties struct {
	Count int32 `json:"count,omitempty" yaml:"count,omitempty"`
}

// Node count groupings accepted by NodeCountInformation.Get.
const (
	CountTypeStatus            = "status"
	CountTypeNodeConfiguration = "nodeconfiguration"
)
