package automation

import "time"

// SourceControl links an account to a repository.
type SourceControl struct {
	ProxyResource `yaml:",inline"`

	Properties *SourceControlProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type SourceControlProperties struct {
	RepoURL          string     `json:"repoUrl,omitempty"          yaml:"repoUrl,omitempty"`
	Branch           string     `json:"branch,omitempty"           yaml:"branch,omitempty"`
	FolderPath       string     `json:"folderPath,omitempty"       yaml:"folderPath,omitempty"`
	AutoSync         bool       `json:"autoSync,omitempty"         yaml:"autoSync,omitempty"`
	PublishRunbook   bool       `json:"publishRunbook,omitempty"   yaml:"publishRunbook,omitempty"`
	SourceType       string     `json:"sourceType,omitempty"       yaml:"sourceType,omitempty"`
	Description      string     `json:"description,omitempty"      yaml:"description,omitempty"`
	CreationTime     *time.Time `json:"creationTime,omitempty"     yaml:"creationTime,omitempty"`
	LastModifiedTime *time.Time `json:"lastModifiedTime,omitempty" yaml:"lastModifiedTime,omitempty"`
}

// SourceControlSecurityTokenProperties is the repository token. It is write only.
type SourceControlSecurityTokenProperties struct {
	AccessToken  string `json:"accessToken,omitempty"  yaml:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty" yaml:"refreshToken,omitempty"`
	TokenType    string `json:"tokenType,omitempty"    yaml:"tokenType,omitempty"`
}

// SourceControlCreateOrUpdateParameters is the CreateOrUpdate payload.
type SourceControlCreateOrUpdateParameters struct {
	Properties *SourceControlCreateOrUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type SourceControlCreateOrUpdateProperties struct {
	RepoURL        string                                `json:"repoUrl,omitempty"        yaml:"repoUrl,omitempty"`
	Branch         string                                `json:"branch,omitempty"         yaml:"branch,omitempty"`
	FolderPath     string                                `json:"folderPath,omitempty"     yaml:"folderPath,omitempty"`
	AutoSync       *bool                                 `json:"autoSync,omitempty"       yaml:"autoSync,omitempty"`
	PublishRunbook *bool                                 `json:"publishRunbook,omitempty" yaml:"publishRunbook,omitempty"`
	SourceType     string                                `json:"sourceType,omitempty"     yaml:"sourceType,omitempty"`
	SecurityToken  *SourceControlSecurityTokenProperties `json:"securityToken,omitempty"  yaml:"securityToken,omitempty"`
	Description    string                                `json:"description,omitempty"    yaml:"description,omitempty"`
}

// SourceControlUpdateParameters is the Update payload.
type SourceControlUpdateParameters struct {
	Properties *SourceControlUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type SourceControlUpdateProperties struct {
	Branch         string                                `json:"branch,omitempty"         yaml:"branch,omitempty"`
	FolderPath     string                                `json:"folderPath,omitempty"     yaml:"folderPath,omitempty"`
	AutoSync       *bool                                 `json:"autoSync,omitempty"       yaml:"autoSync,omitempty"`
	PublishRunbook *bool                                 `json:"publishRunbook,omitempty" yaml:"publishRunbook,omitempty"`
	SecurityToken  *SourceControlSecurityTokenProperties `json:"securityToken,omitempty"  yaml:"securityToken,omitempty"`
	Description    string                                `json:"description,omitempty"    yaml:"description,omitempty"`
}

// SourceControlListResult is one page of SourceControl items.
type SourceControlListResult struct {
	Value    []SourceControl `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string          `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r SourceControlListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r SourceControlListResult) Values() []SourceControl {
	return r.Value
}

// SourceControlSyncJob is one synchronization from the repository.
type SourceControlSyncJob struct {
	Name       string                          `json:"name,omitempty"       yaml:"name,omitempty"`
	Type       string                          `json:"type,omitempty"       yaml:"type,omitempty"`
	ID         string                          `json:"id,omitempty"         yaml:"id,omitempty"`
	Properties *SourceControlSyncJobProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type SourceControlSyncJobProperties struct {
	SourceControlSyncJobID string     `json:"sourceControlSyncJobId,omitempty" yaml:"sourceControlSyncJobId,omitempty"`
	CreationTime           *time.Time `json:"creationTime,omitempty"           yaml:"creationTime,omitempty"`
	ProvisioningState      string     `json:"provisioningState,omitempty"      yaml:"provisioningState,omitempty"`
	StartTime              *time.Time `json:"startTime,omitempty"              yaml:"startTime,omitempty"`
	EndTime                *time.Time `json:"endTime,omitempty"                yaml:"endTime,omitempty"`
	StartType              string     `json:"syncType,omitempty"               yaml:"syncType,omitempty"`
}

// SourceControlSyncJobByID is the detailed form returned by Get.
type SourceControlSyncJobByID struct {
	ID         string                              `json:"id,omitempty"         yaml:"id,omitempty"`
	Properties *SourceControlSyncJobByIDProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type SourceControlSyncJobByIDProperties struct {
	SourceControlSyncJobID string     `json:"sourceControlSyncJobId,omitempty" yaml:"sourceControlSyncJobId,omitempty"`
	CreationTime           *time.Time `json:"creationTime,omitempty"           yaml:"creationTime,omitempty"`
	ProvisioningState      string     `json:"provisioningState,omitempty"      yaml:"provisioningState,omitempty"`
	StartTime              *time.Time `json:"startTime,omitempty"              yaml:"startTime,omitempty"`
	EndTime                *time.Time `json:"endTime,omitempty"                yaml:"endTime,omitempty"`
	StartType              string     `json:"syncType,omitempty"               yaml:"syncType,omitempty"`
	Exception              string     `json:"exception,omitempty"              yaml:"exception,omitempty"`
}

// SourceControlSyncJobCreateParameters is the Create payload.
type SourceControlSyncJobCreateParameters struct {
	Properties *SourceControlSyncJobCreateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type SourceControlSyncJobCreateProperties struct {
	CommitID string `json:"commitId,omitempty" yaml:"commitId,omitempty"`
}

// SourceControlSyncJobListResult is one page of SourceControlSyncJob items.
type SourceControlSyncJobListResult struct {
	Value    []SourceControlSyncJob `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string                 `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r SourceControlSyncJobListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r SourceControlSyncJobListResult) Values() []SourceControlSyncJob {
	return r.Value
}

// SourceControlSyncJobStream is the summary form of a sync job stream.
type SourceControlSyncJobStream struct {
	ID         string                                `json:"id,omitempty"         yaml:"id,omitempty"`
	Properties *SourceControlSyncJobStreamProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type SourceControlSyncJobStreamProperties struct {
	SourceControlSyncJobStreamID string     `json:"sourceControlSyncJobStreamId,omitempty" yaml:"sourceControlSyncJobStreamId,omitempty"`
	Summary                      string     `json:"summary,omitempty"                      yaml:"summary,omitempty"`
	Time                         *time.Time `json:"time,omitempty"                         yaml:"time,omitempty"`
	StreamType                   string     `json:"streamType,omitempty"                   yaml:"streamType,omitempty"`
}

// SourceControlSyncJobStreamByID is the detailed form returned by Get.
type SourceControlSyncJobStreamByID struct {
	ID         string                                    `json:"id,omitempty"         yaml:"id,omitempty"`
	Properties *SourceControlSyncJobStreamByIDProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type SourceControlSyncJobStreamByIDProperties struct {
	SourceControlSyncJobStreamID string                 `json:"sourceControlSyncJobStreamId,omitempty" yaml:"sourceControlSyncJobStreamId,omitempty"`
	Summary                      string                 `json:"summary,omitempty"                      yaml:"summary,omitempty"`
	Time                         *time.Time             `json:"time,omitempty"                         yaml:"time,omitempty"`
	StreamType                   string                 `json:"streamType,omitempty"                   yaml:"streamType,omitempty"`
	StreamText                   string                 `json:"streamText,omitempty"                   yaml:"streamText,omitempty"`
	Value                        map[string]interface{} `json:"value,omitempty"                        yaml:"value,omitempty"`
}

// SourceControlSyncJobStreamsListBySyncJob is one page of SourceControlSyncJobStream items.
type SourceControlSyncJobStreamsListBySyncJob struct {
	Value    []SourceControlSyncJobStream `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string                       `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r SourceControlSyncJobStreamsListBySyncJob) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r SourceControlSyncJobStreamsListBySyncJob) Values() []SourceControlSyncJobStream {
	return r.Value
}
