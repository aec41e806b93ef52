package automation

import "time"

// AutomationAccount is an automation account.
type AutomationAccount struct {
	TrackedResource `yaml:",inline"`

	Etag       string                       `json:"etag,omitempty"       yaml:"etag,omitempty"`
	Identity   *Identity                    `json:"identity,omitempty"   yaml:"identity,omitempty"`
	Properties *AutomationAccountProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// AutomationAccountProperties holds the account settings.
type AutomationAccountProperties struct {
	Sku                        *Sku                        `json:"sku,omitempty"                        yaml:"sku,omitempty"`
	LastModifiedBy             string                      `json:"lastModifiedBy,omitempty"             yaml:"lastModifiedBy,omitempty"`
	State                      string                      `json:"state,omitempty"                      yaml:"state,omitempty"`
	CreationTime               *time.Time                  `json:"creationTime,omitempty"               yaml:"creationTime,omitempty"`
	LastModifiedTime           *time.Time                  `json:"lastModifiedTime,omitempty"           yaml:"lastModifiedTime,omitempty"`
	Description                string                      `json:"description,omitempty"                yaml:"description,omitempty"`
	Encryption                 *EncryptionProperties       `json:"encryption,omitempty"                 yaml:"encryption,omitempty"`
	PrivateEndpointConnections []PrivateEndpointConnection `json:"privateEndpointConnections,omitempty" yaml:"privateEndpointConnections,omitempty"`
	PublicNetworkAccess        *bool                       `json:"publicNetworkAccess,omitempty"        yaml:"publicNetworkAccess,omitempty"`
}

// Sku is the account pricing tier.
type Sku struct {
	Name     string `json:"name,omitempty"     yaml:"name,omitempty"`
	Family   string `json:"family,omitempty"   yaml:"family,omitempty"`
	Capacity *int32 `json:"capacity,omitempty" yaml:"capacity,omitempty"`
}

// Identity is the managed identity of an account.
type Identity struct {
	PrincipalID            string                          `json:"principalId,omitempty"            yaml:"principalId,omitempty"`
	TenantID               string                          `json:"tenantId,omitempty"               yaml:"tenantId,omitempty"`
	Type                   string                          `json:"type,omitempty"                   yaml:"type,omitempty"`
	UserAssignedIdentities map[string]UserAssignedIdentity `json:"userAssignedIdentities,omitempty" yaml:"userAssignedIdentities,omitempty"`
}

// UserAssignedIdentity is one user assigned identity.
type UserAssignedIdentity struct {
	PrincipalID string `json:"principalId,omitempty" yaml:"principalId,omitempty"`
	ClientID    string `json:"clientId,omitempty"    yaml:"clientId,omitempty"`
}

// EncryptionProperties selects the account encryption key.
type EncryptionProperties struct {
	KeyVaultProperties *KeyVaultProperties `json:"keyVaultProperties,omitempty" yaml:"keyVaultProperties,omitempty"`
	KeySource          string              `json:"keySource,omitempty"          yaml:"keySource,omitempty"`
	Identity           *EncryptionIdentity `json:"identity,omitempty"           yaml:"identity,omitempty"`
}

type KeyVaultProperties struct {
	KeyvaultURI string `json:"keyvaultUri,omitempty" yaml:"keyvaultUri,omitempty"`
	KeyName     string `json:"keyName,omitempty"     yaml:"keyName,omitempty"`
	KeyVersion  string `json:"keyVersion,omitempty"  yaml:"keyVersion,omitempty"`
}

type EncryptionIdentity struct {
	UserAssignedIdentity string `json:"userAssignedIdentity,omitempty" yaml:"userAssignedIdentity,omitempty"`
}

// AutomationAccountCreateOrUpdateParameters is the CreateOrUpdate payload.
type AutomationAccountCreateOrUpdateParameters struct {
	Properties *AutomationAccountCreateOrUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
	Name       string                                     `json:"name,omitempty"       yaml:"name,omitempty"`
	Location   string                                     `json:"location,omitempty"   yaml:"location,omitempty"`
	Identity   *Identity                                  `json:"identity,omitempty"   yaml:"identity,omitempty"`
	Tags       map[string]string                          `json:"tags,omitempty"       yaml:"tags,omitempty"`
}

type AutomationAccountCreateOrUpdateProperties struct {
	Sku                 *Sku                  `json:"sku,omitempty"                 yaml:"sku,omitempty"`
	Encryption          *EncryptionProperties `json:"encryption,omitempty"          yaml:"encryption,omitempty"`
	PublicNetworkAccess *bool                 `json:"publicNetworkAccess,omitempty" yaml:"publicNetworkAccess,omitempty"`
}

// AutomationAccountUpdateParameters is the Update payload.
type AutomationAccountUpdateParameters struct {
	Properties *AutomationAccountUpdateProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
	Name       string                             `json:"name,omitempty"       yaml:"name,omitempty"`
	Location   string                             `json:"location,omitempty"   yaml:"location,omitempty"`
	Identity   *Identity                          `json:"identity,omitempty"   yaml:"identity,omitempty"`
	Tags       map[string]string                  `json:"tags,omitempty"       yaml:"tags,omitempty"`
}

type AutomationAccountUpdateProperties struct {
	Sku                 *Sku                  `json:"sku,omitempty"                 yaml:"sku,omitempty"`
	Encryption          *EncryptionProperties `json:"encryption,omitempty"          yaml:"encryption,omitempty"`
	PublicNetworkAccess *bool                 `json:"publicNetworkAccess,omitempty" yaml:"publicNetworkAccess,omitempty"`
}

// AutomationAccountListResult is one page of AutomationAccount items.
type AutomationAccountListResult struct {
	Value    []AutomationAccount `json:"value,omitempty"    yaml:"value,omitempty"`
	NextLink string              `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextPageLink implements Page.
func (r AutomationAccountListResult) NextPageLink() string {
	return r.NextLink
}

// Values implements Page.
func (r AutomationAccountListResult) Values() []AutomationAccount {
	return r.Value
}

// Statistics is one account statistics counter.
type Statistics struct {
	CounterProperty string     `json:"counterProperty,omitempty" yaml:"counterProperty,omitempty"`
	CounterValue    int64      `json:"counterValue,omitempty"    yaml:"counterValue,omitempty"`
	StartTime       *time.Time `json:"startTime,omitempty"       yaml:"startTime,omitempty"`
	EndTime         *time.Time `json:"endTime,omitempty"         yaml:"endTime,omitempty"`
	ID              string     `json:"id,omitempty"              yaml:"id,omitempty"`
}

// StatisticsListResult is one page of Statistics items.
type StatisticsListResult struct {
	Value []Statistics `json:"value,omitempty" yaml:"value,omitempty"`
}

// NextPageLink implements Page. The schema has no continuation field.
func (r StatisticsListResult) NextPageLink() string {
	return ""
}

// Values implements Page.
func (r StatisticsListResult) Values() []Statistics {
	return r.Value
}

// Usage is one account usage counter.
type Usage struct {
	ID             string            `json:"id,omitempty"             yaml:"id,omitempty"`
	Name           *UsageCounterName `json:"name,omitempty"           yaml:"name,omitempty"`
	Unit           string            `json:"unit,omitempty"           yaml:"unit,omitempty"`
	CurrentValue   float64           `json:"currentValue,omitempty"   yaml:"currentValue,omitempty"`
	Limit          int64             `json:"limit,omitempty"          yaml:"limit,omitempty"`
	ThrottleStatus string            `json:"throttleStatus,omitempty" yaml:"throttleStatus,omitempty"`
}

type UsageCounterName struct {
	Value          string `json:"value,omitempty"          yaml:"value,omitempty"`
	LocalizedValue string `json:"localizedValue,omitempty" yaml:"localizedValue,omitempty"`
}

// UsageListResult is one page of Usage items.
type UsageListResult struct {
	Value []Usage `json:"value,omitempty" yaml:"value,omitempty"`
}

// NextPageLink implements Page. The schema has no continuation field.
func (r UsageListResult) NextPageLink() string {
	return ""
}

// Values implements Page.
func (r UsageListResult) Values() []Usage {
	return r.Value
}

// Key is one account access key.
type Key struct {
	KeyName     string `json:"KeyName,omitempty"     yaml:"KeyName,omitempty"`
	Permissions string `json:"Permissions,omitempty" yaml:"Permissions,omitempty"`
	Value       string `json:"Value,omitempty"       yaml:"Value,omitempty"`
}

// KeyListResult is one page of Key items.
type KeyListResult struct {
	Value []Key `json:"keys,omitempty" yaml:"keys,omitempty"`
}

// NextPageLink implements Page. The schema has no continuation field.
func (r KeyListResult) NextPageLink() string {
	return ""
}

// Values implements Page.
func (r KeyListResult) Values() []Key {
	return r.Value
}

// LinkedWorkspace is the Log Analytics workspace linked to an account.
type LinkedWorkspace struct {
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
}
