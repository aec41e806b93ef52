package automation

import "time"

// Certificate is a certificate asset.
type Certificate struct {
	ProxyResource `yaml:",inline"`

	Properties *CertificateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type CertificateProperties struct {
	Thumbprint       string     `json:"thumbprint,omitempty"       yaml:"thumbprint,omitempty"`
	ExpiryTime       *time.Time `json:"expiryTime,omitempty"       yaml:"expiryTime,omitempty"`
	IsExportable     bool       `json:"isExportable,omitempty"     yaml:"isExportable,omitempty"`
	CreationTime     *time.Time `json:"creationTime,omitempty"     yaml:"creationTime,omitempty"`
	LastModifiedTime *time.Time `json:"lastModifiedTime,omitempty" yaml:"lastModifiedTime,omitempty"`
	Description      string     `json:"description,omitempty"      yaml:"description,omitempty"`
}

// CertificateCreateOrUpdateParameters is the CreateOrUpdate payload.
type CertificateCreateOrUpdateParameters struct {
	Name       string                               `json:"name,omitempty"       yaml:"name,omitempty"`
	Properties *CertificateCreateOrUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type CertificateCreateOrUpdateProperties struct {
	Base64Value  string `json:"base64Value,omitempty"  yaml:"base64Value,omitempty"`
	Description  string `json:"description,omitempty"  yaml:"description,omitempty"`
	Thumbprint   string `json:"thumbprint,omitempty"   yaml:"thumbprint,omitempty"`
	IsExportable *bool  `json:"isExportable,omitempty" yaml:"isExportable,omitempty"`
}

// CertificateUpdateParameters is the Update payload.
type CertificateUpdateParameters struct {
	Name       string                       `json:"name,omitempty"       yaml:"name,omitempty"`
	Properties *CertificateUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type CertificateUpdateProperties struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// CertificateListResult is one page of Certificate items.
type CertificateListResult struct {
	Value    []Certificate `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string        `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r CertificateListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r CertificateListResult) Values() []Certificate {
	return r.Value
}

// Connection is a connection asset.
type Connection struct {
	ProxyResource `yaml:",inline"`

	Properties *ConnectionProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type ConnectionProperties struct {
	ConnectionType        *ConnectionTypeAssociationProperty `json:"connectionType,omitempty"        yaml:"connectionType,omitempty"`
	FieldDefinitionValues map[string]string                  `json:"fieldDefinitionValues,omitempty" yaml:"fieldDefinitionValues,omitempty"`
	CreationTime          *time.Time                         `json:"creationTime,omitempty"          yaml:"creationTime,omitempty"`
	LastModifiedTime      *time.Time                         `json:"lastModifiedTime,omitempty"      yaml:"lastModifiedTime,omitempty"`
	Description           string                             `json:"description,omitempty"           yaml:"description,omitempty"`
}

// ConnectionTypeAssociationProperty references a connection type by name.
type ConnectionTypeAssociationProperty struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// ConnectionCreateOrUpdateParameters is the CreateOrUpdate payload.
type ConnectionCreateOrUpdateParameters struct {
	Name       string                              `json:"name,omitempty"       yaml:"name,omitempty"`
	Properties *ConnectionCreateOrUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type ConnectionCreateOrUpdateProperties struct {
	Description           string                             `json:"description,omitempty"           yaml:"description,omitempty"`
	ConnectionType        *ConnectionTypeAssociationProperty `json:"connectionType,omitempty"        yaml:"connectionType,omitempty"`
	FieldDefinitionValues map[string]string                  `json:"fieldDefinitionValues,omitempty" yaml:"fieldDefinitionValues,omitempty"`
}

// ConnectionUpdateParameters is the Update payload.
type ConnectionUpdateParameters struct {
	Name       string                      `json:"name,omitempty"       yaml:"name,omitempty"`
	Properties *ConnectionUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type ConnectionUpdateProperties struct {
	Description           string            `json:"description,omitempty"           yaml:"description,omitempty"`
	FieldDefinitionValues map[string]string `json:"fieldDefinitionValues,omitempty" yaml:"fieldDefinitionValues,omitempty"`
}

// ConnectionListResult is one page of Connection items.
type ConnectionListResult struct {
	Value    []Connection `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string       `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r ConnectionListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r ConnectionListResult) Values() []Connection {
	return r.Value
}

// ConnectionType describes the fields a connection carries.
type ConnectionType struct {
	ProxyResource `yaml:",inline"`

	Properties *ConnectionTypeProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type ConnectionTypeProperties struct {
	IsGlobal         bool                       `json:"isGlobal,omitempty"         yaml:"isGlobal,omitempty"`
	FieldDefinitions map[string]FieldDefinition `json:"fieldDefinitions,omitempty" yaml:"fieldDefinitions,omitempty"`
	CreationTime     *time.Time                 `json:"creationTime,omitempty"     yaml:"creationTime,omitempty"`
	LastModifiedTime *time.Time                 `json:"lastModifiedTime,omitempty" yaml:"lastModifiedTime,omitempty"`
	Description      string                     `json:"description,omitempty"      yaml:"description,omitempty"`
}

// FieldDefinition describes one connection field.
type FieldDefinition struct {
	IsEncrypted bool   `json:"isEncrypted,omitempty" yaml:"isEncrypted,omitempty"`
	IsOptional  bool   `json:"isOptional,omitempty"  yaml:"isOptional,omitempty"`
	Type        string `json:"type,omitempty"        yaml:"type,omitempty"`
}

// ConnectionTypeCreateOrUpdateParameters is the CreateOrUpdate payload.
type ConnectionTypeCreateOrUpdateParameters struct {
	Name       string                                  `json:"name,omitempty"       yaml:"name,omitempty"`
	Properties *ConnectionTypeCreateOrUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type ConnectionTypeCreateOrUpdateProperties struct {
	IsGlobal         *bool                      `json:"isGlobal,omitempty"         yaml:"isGlobal,omitempty"`
	FieldDefinitions map[string]FieldDefinition `json:"fieldDefinitions,omitempty" yaml:"fieldDefinitions,omitempty"`
}

// ConnectionTypeListResult is one page of ConnectionType items.
type ConnectionTypeListResult struct {
	Value    []ConnectionType `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string           `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r ConnectionTypeListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r ConnectionTypeListResult) Values() []ConnectionType {
	return r.Value
}

// Credential is a credential asset. The password is never returned.
type Credential struct {
	ProxyResource `yaml:",inline"`

	Properties *CredentialProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type CredentialProperties struct {
	UserName         string     `json:"userName,omitempty"         yaml:"userName,omitempty"`
	CreationTime     *time.Time `json:"creationTime,omitempty"     yaml:"creationTime,omitempty"`
	LastModifiedTime *time.Time `json:"lastModifiedTime,omitempty" yaml:"lastModifiedTime,omitempty"`
	Description      string     `json:"description,omitempty"      yaml:"description,omitempty"`
}

// CredentialCreateOrUpdateParameters is the CreateOrUpdate payload.
type CredentialCreateOrUpdateParameters struct {
	Name       string                              `json:"name,omitempty"       yaml:"name,omitempty"`
	Properties *CredentialCreateOrUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type CredentialCreateOrUpdateProperties struct {
	UserName    string `json:"userName,omitempty"    yaml:"userName,omitempty"`
	Password    string `json:"password,omitempty"    yaml:"password,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// CredentialUpdateParameters is the Update payload.
type CredentialUpdateParameters struct {
	Name       string                      `json:"name,omitempty"       yaml:"name,omitempty"`
	Properties *CredentialUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type CredentialUpdateProperties struct {
	UserName    string `json:"userName,omitempty"    yaml:"userName,omitempty"`
	Password    string `json:"password,omitempty"    yaml:"password,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// CredentialListResult is one page of Credential items.
type CredentialListResult struct {
	Value    []Credential `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string       `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r CredentialListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r CredentialListResult) Values() []Credential {
	return r.Value
}

// Variable is a variable asset. Value holds the JSON encoded value.
type Variable struct {
	ProxyResource `yaml:",inline"`

	Properties *VariableProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type VariableProperties struct {
	Value            string     `json:"value,omitempty"            yaml:"value,omitempty"`
	IsEncrypted      bool       `json:"isEncrypted,omitempty"      yaml:"isEncrypted,omitempty"`
	CreationTime     *time.Time `json:"creationTime,omitempty"     yaml:"creationTime,omitempty"`
	LastModifiedTime *time.Time `json:"lastModifiedTime,omitempty" yaml:"lastModifiedTime,omitempty"`
	Description      string     `json:"description,omitempty"      yaml:"description,omitempty"`
}

// VariableCreateOrUpdateParameters is the CreateOrUpdate payload.
type VariableCreateOrUpdateParameters struct {
	Name       string                            `json:"name,omitempty"       yaml:"name,omitempty"`
	Properties *VariableCreateOrUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type VariableCreateOrUpdateProperties struct {
	Value       string `json:"value,omitempty"       yaml:"value,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	IsEncrypted *bool  `json:"isEncrypted,omitempty" yaml:"isEncrypted,omitempty"`
}

// VariableUpdateParameters is the Update payload.
type VariableUpdateParameters struct {
	Name       string                    `json:"name,omitempty"       yaml:"name,omitempty"`
	Properties *VariableUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type VariableUpdateProperties struct {
	Value       string `json:"value,omitempty"       yaml:"value,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// VariableListResult is one page of Variable items.
type VariableListResult struct {
	Value    []Variable `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string     `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r VariableListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r VariableListResult) Values() []Variable {
	return r.Value
}

// Schedule is a schedule asset.
type Schedule struct {
	ProxyResource `yaml:",inline"`

	Properties *ScheduleProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type ScheduleProperties struct {
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

// AdvancedSchedule restricts a weekly or monthly schedule.
type AdvancedSchedule struct {
	WeekDays           []string                            `json:"weekDays,omitempty"           yaml:"weekDays,omitempty"`
	MonthDays          []int32                             `json:"monthDays,omitempty"          yaml:"monthDays,omitempty"`
	MonthlyOccurrences []AdvancedScheduleMonthlyOccurrence `json:"monthlyOccurrences,omitempty" yaml:"monthlyOccurrences,omitempty"`
}

type AdvancedScheduleMonthlyOccurrence struct {
	Occurrence *int32 `json:"occurrence,omitempty" yaml:"occurrence,omitempty"`
	Day        string `json:"day,omitempty"        yaml:"day,omitempty"`
}

// ScheduleCreateOrUpdateParameters is the CreateOrUpdate payload.
type ScheduleCreateOrUpdateParameters struct {
	Name       string                            `json:"name,omitempty"       yaml:"name,omitempty"`
	Properties *ScheduleCreateOrUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type ScheduleCreateOrUpdateProperties struct {
	Description      string            `json:"description,omitempty"      yaml:"description,omitempty"`
	StartTime        *time.Time        `json:"startTime,omitempty"        yaml:"startTime,omitempty"`
	ExpiryTime       *time.Time        `json:"expiryTime,omitempty"       yaml:"expiryTime,omitempty"`
	Interval         *int64            `json:"interval,omitempty"         yaml:"interval,omitempty"`
	Frequency        string            `json:"frequency,omitempty"        yaml:"frequency,omitempty"`
	TimeZone         string            `json:"timeZone,omitempty"         yaml:"timeZone,omitempty"`
	AdvancedSchedule *AdvancedSchedule `json:"advancedSchedule,omitempty" yaml:"advancedSchedule,omitempty"`
}

// ScheduleUpdateParameters is the Update payload.
type ScheduleUpdateParameters struct {
	Name       string                    `json:"name,omitempty"       yaml:"name,omitempty"`
	Properties *ScheduleUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type ScheduleUpdateProperties struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	IsEnabled   *bool  `json:"isEnabled,omitempty"   yaml:"isEnabled,omitempty"`
}

// ScheduleListResult is one page of Schedule items.
type ScheduleListResult struct {
	Value    []Schedule `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string     `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r ScheduleListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r ScheduleListResult) Values() []Schedule {
	return r.Value
}

// JobSchedule links a runbook to a schedule.
type JobSchedule struct {
	ProxyResource `yaml:",inline"`

	Properties *JobScheduleProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type JobScheduleProperties struct {
	JobScheduleID string                       `json:"jobScheduleId,omitempty" yaml:"jobScheduleId,omitempty"`
	Schedule      *ScheduleAssociationProperty `json:"schedule,omitempty"      yaml:"schedule,omitempty"`
	Runbook       *RunbookAssociationProperty  `json:"runbook,omitempty"       yaml:"runbook,omitempty"`
	RunOn         string                       `json:"runOn,omitempty"         yaml:"runOn,omitempty"`
	Parameters    map[string]string            `json:"parameters,omitempty"    yaml:"parameters,omitempty"`
}

// ScheduleAssociationProperty references a schedule by name.
type ScheduleAssociationProperty struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// JobScheduleCreateParameters is the Create payload.
type JobScheduleCreateParameters struct {
	Properties *JobScheduleCreateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type JobScheduleCreateProperties struct {
	Schedule   *ScheduleAssociationProperty `json:"schedule,omitempty"   yaml:"schedule,omitempty"`
	Runbook    *RunbookAssociationProperty  `json:"runbook,omitempty"    yaml:"runbook,omitempty"`
	RunOn      string                       `json:"runOn,omitempty"      yaml:"runOn,omitempty"`
	Parameters map[string]string            `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// JobScheduleListResult is one page of JobSchedule items.
type JobScheduleListResult struct {
	Value    []JobSchedule `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string        `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r JobScheduleListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r JobScheduleListResult) Values() []JobSchedule {
	return r.Value
}
