package automation

// ProviderOperation is one operation exposed by the resource provider.
type ProviderOperation struct {
	Name    string            `json:"name,omitempty"    yaml:"name,omitempty"`
	Display *OperationDisplay `json:"display,omitempty" yaml:"display,omitempty"`
}

type OperationDisplay struct {
	Provider  string `json:"provider,omitempty"  yaml:"provider,omitempty"`
	Resource  string `json:"resource,omitempty"  yaml:"resource,omitempty"`
	Operation string `json:"operation,omitempty" yaml:"operation,omitempty"`
}

// OperationListResult is one page of ProviderOperation items.
type OperationListResult struct {
	Value []ProviderOperation `json:"value,omitempty" yaml:"value,omitempty"`
}

// NextPageLink implements Page. The schema has no continuation field.
func (r OperationListResult) NextPageLink() string {
	return ""
}

// Values implements Page.
func (r OperationListResult) Values() []ProviderOperation {
	return r.Value
}

// PrivateEndpointConnection is a private endpoint attached to an account.
type PrivateEndpointConnection struct {
	ProxyResource `yaml:",inline"`

	Properties *PrivateEndpointConnectionProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type PrivateEndpointConnectionProperties struct {
	PrivateEndpoint                   *PrivateEndpointProperty                   `json:"privateEndpoint,omitempty"                   yaml:"privateEndpoint,omitempty"`
	PrivateLinkServiceConnectionState *PrivateLinkServiceConnectionStateProperty `json:"privateLinkServiceConnectionState,omitempty" yaml:"privateLinkServiceConnectionState,omitempty"`
}

type PrivateEndpointProperty struct {
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
}

type PrivateLinkServiceConnectionStateProperty struct {
	Status          string `json:"status,omitempty"          yaml:"status,omitempty"`
	Description     string `json:"description,omitempty"     yaml:"description,omitempty"`
	ActionsRequired string `json:"actionsRequired,omitempty" yaml:"actionsRequired,omitempty"`
}

// PrivateEndpointConnectionListResult is one page of PrivateEndpointConnection items.
type PrivateEndpointConnectionListResult struct {
	Value []PrivateEndpointConnection `json:"value,omitempty" yaml:"value,omitempty"`
}

// NextPageLink implements Page. The schema has no continuation field.
func (r PrivateEndpointConnectionListResult) NextPageLink() string {
	return ""
}

// Values implements Page.
func (r PrivateEndpointConnectionListResult) Values() []PrivateEndpointConnection {
	return r.Value
}

// PrivateLinkResource is a group that private endpoints can target.
type PrivateLinkResource struct {
	ProxyResource `yaml:",inline"`

	Properties *PrivateLinkResourceProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type PrivateLinkResourceProperties struct {
	GroupID         string   `json:"groupId,omitempty"         yaml:"groupId,omitempty"`
	RequiredMembers []string `json:"requiredMembers,omitempty" yaml:"requiredMembers,omitempty"`
}

// PrivateLinkResourceListResult is one page of PrivateLinkResource items.
type PrivateLinkResourceListResult struct {
	Value []PrivateLinkResource `json:"value,omitempty" yaml:"value,omitempty"`
}

// NextPageLink implements Page. The schema has no continuation field.
func (r PrivateLinkResourceListResult) NextPageLink() string {
	return ""
}

// Values implements Page.
func (r PrivateLinkResourceListResult) Values() []PrivateLinkResource {
	return r.Value
}
