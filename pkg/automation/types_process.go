package automation

import "time"

// RunbookAssociationProperty references a runbook by name.
type RunbookAssociationProperty struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// ContentLink points at content hosted outside the service.
type ContentLink struct {
	URI         string       `json:"uri,omitempty"         yaml:"uri,omitempty"`
	ContentHash *ContentHash `json:"contentHash,omitempty" yaml:"contentHash,omitempty"`
	Version     string       `json:"version,omitempty"     yaml:"version,omitempty"`
}

// ContentHash is a content checksum.
type ContentHash struct {
	Algorithm string `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	Value     string `json:"value,omitempty"     yaml:"value,omitempty"`
}

// Runbook is a runbook.
type Runbook struct {
	TrackedResource `yaml:",inline"`

	Etag       string             `json:"etag,omitempty"       yaml:"etag,omitempty"`
	Properties *RunbookProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type RunbookProperties struct {
	RunbookType        string                      `json:"runbookType,omitempty"        yaml:"runbookType,omitempty"`
	PublishContentLink *ContentLink                `json:"publishContentLink,omitempty" yaml:"publishContentLink,omitempty"`
	State              string                      `json:"state,omitempty"              yaml:"state,omitempty"`
	LogVerbose         bool                        `json:"logVerbose,omitempty"         yaml:"logVerbose,omitempty"`
	LogProgress        bool                        `json:"logProgress,omitempty"        yaml:"logProgress,omitempty"`
	LogActivityTrace   int32                       `json:"logActivityTrace,omitempty"   yaml:"logActivityTrace,omitempty"`
	JobCount           int32                       `json:"jobCount,omitempty"           yaml:"jobCount,omitempty"`
	Parameters         map[string]RunbookParameter `json:"parameters,omitempty"         yaml:"parameters,omitempty"`
	OutputTypes        []string                    `json:"outputTypes,omitempty"        yaml:"outputTypes,omitempty"`
	Draft              *RunbookDraft               `json:"draft,omitempty"              yaml:"draft,omitempty"`
	ProvisioningState  string                      `json:"provisioningState,omitempty"  yaml:"provisioningState,omitempty"`
	LastModifiedBy     string                      `json:"lastModifiedBy,omitempty"     yaml:"lastModifiedBy,omitempty"`
	CreationTime       *time.Time                  `json:"creationTime,omitempty"       yaml:"creationTime,omitempty"`
	LastModifiedTime   *time.Time                  `json:"lastModifiedTime,omitempty"   yaml:"lastModifiedTime,omitempty"`
	Description        string                      `json:"description,omitempty"        yaml:"description,omitempty"`
}

// RunbookParameter describes one runbook input.
type RunbookParameter struct {
	Type         string `json:"type,omitempty"         yaml:"type,omitempty"`
	IsMandatory  bool   `json:"isMandatory,omitempty"  yaml:"isMandatory,omitempty"`
	Position     int32  `json:"position,omitempty"     yaml:"position,omitempty"`
	DefaultValue string `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
}

// RunbookDraft is the editable draft of a runbook.
type RunbookDraft struct {
	InEdit           bool                        `json:"inEdit,omitempty"           yaml:"inEdit,omitempty"`
	DraftContentLink *ContentLink                `json:"draftContentLink,omitempty" yaml:"draftContentLink,omitempty"`
	CreationTime     *time.Time                  `json:"creationTime,omitempty"     yaml:"creationTime,omitempty"`
	LastModifiedTime *time.Time                  `json:"lastModifiedTime,omitempty" yaml:"lastModifiedTime,omitempty"`
	Parameters       map[string]RunbookParameter `json:"parameters,omitempty"       yaml:"parameters,omitempty"`
	OutputTypes      []string                    `json:"outputTypes,omitempty"      yaml:"outputTypes,omitempty"`
}

// RunbookCreateOrUpdateParameters is the CreateOrUpdate payload.
type RunbookCreateOrUpdateParameters struct {
	Properties *RunbookCreateOrUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
	Name       string                           `json:"name,omitempty"       yaml:"name,omitempty"`
	Location   string                           `json:"location,omitempty"   yaml:"location,omitempty"`
	Tags       map[string]string                `json:"tags,omitempty"       yaml:"tags,omitempty"`
}

type RunbookCreateOrUpdateProperties struct {
	LogVerbose         *bool         `json:"logVerbose,omitempty"         yaml:"logVerbose,omitempty"`
	LogProgress        *bool         `json:"logProgress,omitempty"        yaml:"logProgress,omitempty"`
	RunbookType        string        `json:"runbookType,omitempty"        yaml:"runbookType,omitempty"`
	Draft              *RunbookDraft `json:"draft,omitempty"              yaml:"draft,omitempty"`
	PublishContentLink *ContentLink  `json:"publishContentLink,omitempty" yaml:"publishContentLink,omitempty"`
	Description        string        `json:"description,omitempty"        yaml:"description,omitempty"`
	LogActivityTrace   *int32        `json:"logActivityTrace,omitempty"   yaml:"logActivityTrace,omitempty"`
}

// RunbookUpdateParameters is the Update payload.
type RunbookUpdateParameters struct {
	Properties *RunbookUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
	Name       string                   `json:"name,omitempty"       yaml:"name,omitempty"`
	Location   string                   `json:"location,omitempty"   yaml:"location,omitempty"`
	Tags       map[string]string        `json:"tags,omitempty"       yaml:"tags,omitempty"`
}

type RunbookUpdateProperties struct {
	Description      string `json:"description,omitempty"      yaml:"description,omitempty"`
	LogVerbose       *bool  `json:"logVerbose,omitempty"       yaml:"logVerbose,omitempty"`
	LogProgress      *bool  `json:"logProgress,omitempty"      yaml:"logProgress,omitempty"`
	LogActivityTrace *int32 `json:"logActivityTrace,omitempty" yaml:"logActivityTrace,omitempty"`
}

// RunbookListResult is one page of Runbook items.
type RunbookListResult struct {
	Value    []Runbook `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string    `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r RunbookListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r RunbookListResult) Values() []Runbook {
	return r.Value
}

// RunbookDraftUndoEditResult is returned by UndoEdit.
type RunbookDraftUndoEditResult struct {
	StatusCode string `json:"statusCode,omitempty" yaml:"statusCode,omitempty"`
	RequestID  string `json:"requestId,omitempty"  yaml:"requestId,omitempty"`
}

// Job is a runbook job.
type Job struct {
	ProxyResource `yaml:",inline"`

	Properties *JobProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type JobProperties struct {
	Runbook                *RunbookAssociationProperty `json:"runbook,omitempty"                yaml:"runbook,omitempty"`
	StartedBy              string                      `json:"startedBy,omitempty"              yaml:"startedBy,omitempty"`
	RunOn                  string                      `json:"runOn,omitempty"                  yaml:"runOn,omitempty"`
	JobID                  string                      `json:"jobId,omitempty"                  yaml:"jobId,omitempty"`
	CreationTime           *time.Time                  `json:"creationTime,omitempty"           yaml:"creationTime,omitempty"`
	Status                 string                      `json:"status,omitempty"                 yaml:"status,omitempty"`
	StatusDetails          string                      `json:"statusDetails,omitempty"          yaml:"statusDetails,omitempty"`
	StartTime              *time.Time                  `json:"startTime,omitempty"              yaml:"startTime,omitempty"`
	EndTime                *time.Time                  `json:"endTime,omitempty"                yaml:"endTime,omitempty"`
	Exception              string                      `json:"exception,omitempty"              yaml:"exception,omitempty"`
	LastModifiedTime       *time.Time                  `json:"lastModifiedTime,omitempty"       yaml:"lastModifiedTime,omitempty"`
	LastStatusModifiedTime *time.Time                  `json:"lastStatusModifiedTime,omitempty" yaml:"lastStatusModifiedTime,omitempty"`
	Parameters             map[string]string           `json:"parameters,omitempty"             yaml:"parameters,omitempty"`
	ProvisioningState      string                      `json:"provisioningState,omitempty"      yaml:"provisioningState,omitempty"`
}

// JobCollectionItem is the summary form of a job returned by list.
type JobCollectionItem struct {
	ProxyResource `yaml:",inline"`

	Properties *JobCollectionItemProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type JobCollectionItemProperties struct {
	Runbook           *RunbookAssociationProperty `json:"runbook,omitempty"           yaml:"runbook,omitempty"`
	JobID             string                      `json:"jobId,omitempty"             yaml:"jobId,omitempty"`
	CreationTime      *time.Time                  `json:"creationTime,omitempty"      yaml:"creationTime,omitempty"`
	Status            string                      `json:"status,omitempty"            yaml:"status,omitempty"`
	StartTime         *time.Time                  `json:"startTime,omitempty"         yaml:"startTime,omitempty"`
	EndTime           *time.Time                  `json:"endTime,omitempty"           yaml:"endTime,omitempty"`
	LastModifiedTime  *time.Time                  `json:"lastModifiedTime,omitempty"  yaml:"lastModifiedTime,omitempty"`
	ProvisioningState string                      `json:"provisioningState,omitempty" yaml:"provisioningState,omitempty"`
	RunOn             string                      `json:"runOn,omitempty"             yaml:"runOn,omitempty"`
}

// JobCreateParameters is the Create payload.
type JobCreateParameters struct {
	Properties *JobCreateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type JobCreateProperties struct {
	Runbook    *RunbookAssociationProperty `json:"runbook,omitempty"    yaml:"runbook,omitempty"`
	Parameters map[string]string           `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RunOn      string                      `json:"runOn,omitempty"      yaml:"runOn,omitempty"`
}

// JobListResult is one page of JobCollectionItem items.
type JobListResult struct {
	Value    []JobCollectionItem `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string              `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r JobListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r JobListResult) Values() []JobCollectionItem {
	return r.Value
}

// JobStream is one output, progress, warning or error record of a job.
type JobStream struct {
	ID         string               `json:"id,omitempty"         yaml:"id,omitempty"`
	Properties *JobStreamProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type JobStreamProperties struct {
	JobStreamID string                 `json:"jobStreamId,omitempty" yaml:"jobStreamId,omitempty"`
	Time        *time.Time             `json:"time,omitempty"        yaml:"time,omitempty"`
	StreamType  string                 `json:"streamType,omitempty"  yaml:"streamType,omitempty"`
	StreamText  string                 `json:"streamText,omitempty"  yaml:"streamText,omitempty"`
	Summary     string                 `json:"summary,omitempty"     yaml:"summary,omitempty"`
	Value       map[string]interface{} `json:"value,omitempty"       yaml:"value,omitempty"`
}

// JobStreamListResult is one page of JobStream items.
type JobStreamListResult struct {
	Value    []JobStream `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string      `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r JobStreamListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r JobStreamListResult) Values() []JobStream {
	return r.Value
}

// TestJob is the test job of a runbook draft.
type TestJob struct {
	CreationTime           *time.Time        `json:"creationTime,omitempty"           yaml:"creationTime,omitempty"`
	Status                 string            `json:"status,omitempty"                 yaml:"status,omitempty"`
	StatusDetails          string            `json:"statusDetails,omitempty"          yaml:"statusDetails,omitempty"`
	RunOn                  string            `json:"runOn,omitempty"                  yaml:"runOn,omitempty"`
	StartTime              *time.Time        `json:"startTime,omitempty"              yaml:"startTime,omitempty"`
	EndTime                *time.Time        `json:"endTime,omitempty"                yaml:"endTime,omitempty"`
	Exception              string            `json:"exception,omitempty"              yaml:"exception,omitempty"`
	LastModifiedTime       *time.Time        `json:"lastModifiedTime,omitempty"       yaml:"lastModifiedTime,omitempty"`
	LastStatusModifiedTime *time.Time        `json:"lastStatusModifiedTime,omitempty" yaml:"lastStatusModifiedTime,omitempty"`
	Parameters             map[string]string `json:"parameters,omitempty"             yaml:"parameters,omitempty"`
	LogActivityTrace       int32             `json:"logActivityTrace,omitempty"       yaml:"logActivityTrace,omitempty"`
}

// TestJobCreateParameters is the Create payload.
type TestJobCreateParameters struct {
	Parameters map[string]string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RunOn      string            `json:"runOn,omitempty"      yaml:"runOn,omitempty"`
}

// Module is an integration module or a python package.
type Module struct {
	TrackedResource `yaml:",inline"`

	Etag       string            `json:"etag,omitempty"       yaml:"etag,omitempty"`
	Properties *ModuleProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type ModuleProperties struct {
	IsGlobal          bool             `json:"isGlobal,omitempty"          yaml:"isGlobal,omitempty"`
	Version           string           `json:"version,omitempty"           yaml:"version,omitempty"`
	SizeInBytes       int64            `json:"sizeInBytes,omitempty"       yaml:"sizeInBytes,omitempty"`
	ActivityCount     int32            `json:"activityCount,omitempty"     yaml:"activityCount,omitempty"`
	ProvisioningState string           `json:"provisioningState,omitempty" yaml:"provisioningState,omitempty"`
	ContentLink       *ContentLink     `json:"contentLink,omitempty"       yaml:"contentLink,omitempty"`
	Error             *ModuleErrorInfo `json:"error,omitempty"             yaml:"error,omitempty"`
	CreationTime      *time.Time       `json:"creationTime,omitempty"      yaml:"creationTime,omitempty"`
	LastModifiedTime  *time.Time       `json:"lastModifiedTime,omitempty"  yaml:"lastModifiedTime,omitempty"`
	Description       string           `json:"description,omitempty"       yaml:"description,omitempty"`
	IsComposite       bool             `json:"isComposite,omitempty"       yaml:"isComposite,omitempty"`
}

type ModuleErrorInfo struct {
	Code    string `json:"code,omitempty"    yaml:"code,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// ModuleCreateOrUpdateParameters is the CreateOrUpdate payload.
type ModuleCreateOrUpdateParameters struct {
	Properties *ModuleCreateOrUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
	Name       string                          `json:"name,omitempty"       yaml:"name,omitempty"`
	Location   string                          `json:"location,omitempty"   yaml:"location,omitempty"`
	Tags       map[string]string               `json:"tags,omitempty"       yaml:"tags,omitempty"`
}

type ModuleCreateOrUpdateProperties struct {
	ContentLink *ContentLink `json:"contentLink,omitempty" yaml:"contentLink,omitempty"`
}

// ModuleUpdateParameters is the Update payload.
type ModuleUpdateParameters struct {
	Properties *ModuleUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
	Name       string                  `json:"name,omitempty"       yaml:"name,omitempty"`
	Location   string                  `json:"location,omitempty"   yaml:"location,omitempty"`
	Tags       map[string]string       `json:"tags,omitempty"       yaml:"tags,omitempty"`
}

type ModuleUpdateProperties struct {
	ContentLink *ContentLink `json:"contentLink,omitempty" yaml:"contentLink,omitempty"`
}

// ModuleListResult is one page of Module items.
type ModuleListResult struct {
	Value    []Module `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string   `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r ModuleListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r ModuleListResult) Values() []Module {
	return r.Value
}

// PythonPackageCreateParameters is the python2 package CreateOrUpdate payload.
type PythonPackageCreateParameters struct {
	Properties *PythonPackageCreateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
	Tags       map[string]string              `json:"tags,omitempty"       yaml:"tags,omitempty"`
}

type PythonPackageCreateProperties struct {
	ContentLink *ContentLink `json:"contentLink,omitempty" yaml:"contentLink,omitempty"`
}

// PythonPackageUpdateParameters is the python2 package Update payload.
type PythonPackageUpdateParameters struct {
	Tags map[string]string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Activity is a cmdlet exported by a module.
type Activity struct {
	ID         string              `json:"id,omitempty"         yaml:"id,omitempty"`
	Name       string              `json:"name,omitempty"       yaml:"name,omitempty"`
	Properties *ActivityProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type ActivityProperties struct {
	Definition       string                 `json:"definition,omitempty"       yaml:"definition,omitempty"`
	ParameterSets    []ActivityParameterSet `json:"parameterSets,omitempty"    yaml:"parameterSets,omitempty"`
	OutputTypes      []ActivityOutputType   `json:"outputTypes,omitempty"      yaml:"outputTypes,omitempty"`
	CreationTime     *time.Time             `json:"creationTime,omitempty"     yaml:"creationTime,omitempty"`
	LastModifiedTime *time.Time             `json:"lastModifiedTime,omitempty" yaml:"lastModifiedTime,omitempty"`
	Description      string                 `json:"description,omitempty"      yaml:"description,omitempty"`
}

type ActivityParameterSet struct {
	Name       string              `json:"name,omitempty"       yaml:"name,omitempty"`
	Parameters []ActivityParameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

type ActivityParameter struct {
	Name                            string                           `json:"name,omitempty"                            yaml:"name,omitempty"`
	Type                            string                           `json:"type,omitempty"                            yaml:"type,omitempty"`
	IsMandatory                     bool                             `json:"isMandatory,omitempty"                     yaml:"isMandatory,omitempty"`
	IsDynamic                       bool                             `json:"isDynamic,omitempty"                       yaml:"isDynamic,omitempty"`
	Position                        *int64                           `json:"position,omitempty"                        yaml:"position,omitempty"`
	ValueFromPipeline               bool                             `json:"valueFromPipeline,omitempty"               yaml:"valueFromPipeline,omitempty"`
	ValueFromPipelineByPropertyName bool                             `json:"valueFromPipelineByPropertyName,omitempty" yaml:"valueFromPipelineByPropertyName,omitempty"`
	ValueFromRemainingArguments     bool                             `json:"valueFromRemainingArguments,omitempty"     yaml:"valueFromRemainingArguments,omitempty"`
	Description                     string                           `json:"description,omitempty"                     yaml:"description,omitempty"`
	ValidationSet                   []ActivityParameterValidationSet `json:"validationSet,omitempty"                   yaml:"validationSet,omitempty"`
}

type ActivityParameterValidationSet struct {
	MemberValue string `json:"memberValue,omitempty" yaml:"memberValue,omitempty"`
}

type ActivityOutputType struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// ActivityListResult is one page of Activity items.
type ActivityListResult struct {
	Value    []Activity `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string     `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r ActivityListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r ActivityListResult) Values() []Activity {
	return r.Value
}

// TypeField is one field of a module type.
type TypeField struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// TypeFieldListResult is one page of TypeField items.
type TypeFieldListResult struct {
	Value []TypeField `json:"value,omitempty" yaml:"value,omitempty"`
}

// NextPageLink implements Page. The schema has no continuation field.
func (r TypeFieldListResult) NextPageLink() string {
	return ""
}

// Values implements Page.
func (r TypeFieldListResult) Values() []TypeField {
	return r.Value
}

// Watcher runs a script on a schedule to watch for external events.
type Watcher struct {
	TrackedResource `yaml:",inline"`

	Etag       string             `json:"etag,omitempty"       yaml:"etag,omitempty"`
	Properties *WatcherProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type WatcherProperties struct {
	ExecutionFrequencyInSeconds int64             `json:"executionFrequencyInSeconds,omitempty" yaml:"executionFrequencyInSeconds,omitempty"`
	ScriptName                  string            `json:"scriptName,omitempty"                  yaml:"scriptName,omitempty"`
	ScriptParameters            map[string]string `json:"scriptParameters,omitempty"            yaml:"scriptParameters,omitempty"`
	ScriptRunOn                 string            `json:"scriptRunOn,omitempty"                 yaml:"scriptRunOn,omitempty"`
	Status                      string            `json:"status,omitempty"                      yaml:"status,omitempty"`
	CreationTime                *time.Time        `json:"creationTime,omitempty"                yaml:"creationTime,omitempty"`
	LastModifiedTime            *time.Time        `json:"lastModifiedTime,omitempty"            yaml:"lastModifiedTime,omitempty"`
	LastModifiedBy              string            `json:"lastModifiedBy,omitempty"              yaml:"lastModifiedBy,omitempty"`
	Description                 string            `json:"description,omitempty"                 yaml:"description,omitempty"`
}

// WatcherUpdateParameters is the Update payload.
type WatcherUpdateParameters struct {
	Properties *WatcherUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
	Name       string                   `json:"name,omitempty"       yaml:"name,omitempty"`
}

type WatcherUpdateProperties struct {
	ExecutionFrequencyInSeconds *int64 `json:"executionFrequencyInSeconds,omitempty" yaml:"executionFrequencyInSeconds,omitempty"`
}

// WatcherListResult is one page of Watcher items.
type WatcherListResult struct {
	Value    []Watcher `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string    `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r WatcherListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r WatcherListResult) Values() []Watcher {
	return r.Value
}

// Webhook starts a runbook when its URI is called.
type Webhook struct {
	ProxyResource `yaml:",inline"`

	Properties *WebhookProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type WebhookProperties struct {
	IsEnabled        bool                        `json:"isEnabled,omitempty"        yaml:"isEnabled,omitempty"`
	URI              string                      `json:"uri,omitempty"              yaml:"uri,omitempty"`
	ExpiryTime       *time.Time                  `json:"expiryTime,omitempty"       yaml:"expiryTime,omitempty"`
	LastInvokedTime  *time.Time                  `json:"lastInvokedTime,omitempty"  yaml:"lastInvokedTime,omitempty"`
	Parameters       map[string]string           `json:"parameters,omitempty"       yaml:"parameters,omitempty"`
	Runbook          *RunbookAssociationProperty `json:"runbook,omitempty"          yaml:"runbook,omitempty"`
	RunOn            string                      `json:"runOn,omitempty"            yaml:"runOn,omitempty"`
	CreationTime     *time.Time                  `json:"creationTime,omitempty"     yaml:"creationTime,omitempty"`
	LastModifiedTime *time.Time                  `json:"lastModifiedTime,omitempty" yaml:"lastModifiedTime,omitempty"`
	LastModifiedBy   string                      `json:"lastModifiedBy,omitempty"   yaml:"lastModifiedBy,omitempty"`
	Description      string                      `json:"description,omitempty"      yaml:"description,omitempty"`
}

// WebhookCreateOrUpdateParameters is the CreateOrUpdate payload.
type WebhookCreateOrUpdateParameters struct {
	Name       string                           `json:"name,omitempty"       yaml:"name,omitempty"`
	Properties *WebhookCreateOrUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type WebhookCreateOrUpdateProperties struct {
	IsEnabled  *bool                       `json:"isEnabled,omitempty"  yaml:"isEnabled,omitempty"`
	URI        string                      `json:"uri,omitempty"        yaml:"uri,omitempty"`
	ExpiryTime *time.Time                  `json:"expiryTime,omitempty" yaml:"expiryTime,omitempty"`
	Parameters map[string]string           `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Runbook    *RunbookAssociationProperty `json:"runbook,omitempty"    yaml:"runbook,omitempty"`
	RunOn      string                      `json:"runOn,omitempty"      yaml:"runOn,omitempty"`
}

// WebhookUpdateParameters is the Update payload.
type WebhookUpdateParameters struct {
	Name       string                   `json:"name,omitempty"       yaml:"name,omitempty"`
	Properties *WebhookUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type WebhookUpdateProperties struct {
	IsEnabled   *bool             `json:"isEnabled,omitempty"   yaml:"isEnabled,omitempty"`
	RunOn       string            `json:"runOn,omitempty"       yaml:"runOn,omitempty"`
	Parameters  map[string]string `json:"parameters,omitempty"  yaml:"parameters,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
}

// WebhookListResult is one page of Webhook items.
type WebhookListResult struct {
	Value    []Webhook `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string    `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r WebhookListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r WebhookListResult) Values() []Webhook {
	return r.Value
}

// HybridRunbookWorkerGroup is a group of hybrid workers.
type HybridRunbookWorkerGroup struct {
	ID                   string                              `json:"id,omitempty"                   yaml:"id,omitempty"`
	Name                 string                              `json:"name,omitempty"                 yaml:"name,omitempty"`
	HybridRunbookWorkers []HybridRunbookWorker               `json:"hybridRunbookWorkers,omitempty" yaml:"hybridRunbookWorkers,omitempty"`
	Credential           *RunAsCredentialAssociationProperty `json:"credential,omitempty"           yaml:"credential,omitempty"`
	GroupType            string                              `json:"groupType,omitempty"            yaml:"groupType,omitempty"`
}

type HybridRunbookWorker struct {
	Name             string     `json:"name,omitempty"             yaml:"name,omitempty"`
	IP               string     `json:"ip,omitempty"               yaml:"ip,omitempty"`
	RegistrationTime *time.Time `json:"registrationTime,omitempty" yaml:"registrationTime,omitempty"`
	LastSeenDateTime *time.Time `json:"lastSeenDateTime,omitempty" yaml:"lastSeenDateTime,omitempty"`
}

// RunAsCredentialAssociationProperty references a credential by name.
type RunAsCredentialAssociationProperty struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// HybridRunbookWorkerGroupUpdateParameters is the Update payload.
type HybridRunbookWorkerGroupUpdateParameters struct {
	Credential *RunAsCredentialAssociationProperty `json:"credential,omitempty" yaml:"credential,omitempty"`
}

// HybridRunbookWorkerGroupsListResult is one page of HybridRunbookWorkerGroup items.
type HybridRunbookWorkerGroupsListResult struct {
	Value    []HybridRunbookWorkerGroup `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string                     `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r HybridRunbookWorkerGroupsListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r HybridRunbookWorkerGroupsListResult) Values() []HybridRunbookWorkerGroup {
	return r.Value
}
