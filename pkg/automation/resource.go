package automation

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
)

// ProxyResource is the envelope shared by child resources.
type ProxyResource struct {
	ID   string `json:"id,omitempty"   yaml:"id,omitempty"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// TrackedResource is a resource with a location and tags.
type TrackedResource struct {
	ProxyResource `yaml:",inline"`

	Location string            `json:"location,omitempty" yaml:"location,omitempty"`
	Tags     map[string]string `json:"tags,omitempty"     yaml:"tags,omitempty"`
}

// ResourceID is the addressing part of an automation resource id.
type ResourceID struct {
	SubscriptionID        string
	ResourceGroupName     string
	AutomationAccountName string
	// ResourceType is the child collection, e.g. "runbooks"; empty for the account.
	ResourceType string
	// Name is the child resource name; for the account it equals AutomationAccountName.
	Name string
}

// ParseResourceID splits a resource id such as
// /subscriptions/S/resourceGroups/R/providers/Microsoft.Automation/automationAccounts/A/runbooks/N
// into the path parameters the resource clients take.
func ParseResourceID(id string) (*ResourceID, error) {
	parsed, err := arm.ParseResourceID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResourceID, err)
	}

	account := parsed
	for account != nil && lastType(account) != "automationAccounts" {
		account = account.Parent
	}

	if account == nil || account.ResourceType.Namespace != constants.ProviderNamespace {
		return nil, fmt.Errorf("%w: %s is not an automation resource", ErrInvalidResourceID, id)
	}

	result := &ResourceID{
		SubscriptionID:        parsed.SubscriptionID,
		ResourceGroupName:     parsed.ResourceGroupName,
		AutomationAccountName: account.Name,
		Name:                  parsed.Name,
	}

	if parsed != account {
		result.ResourceType = lastType(parsed)
	}

	return result, nil
}

func lastType(id *arm.ResourceID) string {
	types := id.ResourceType.Types
	if len(types) == 0 {
		return ""
	}

	return types[len(types)-1]
}
