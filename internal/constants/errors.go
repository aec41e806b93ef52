package constants

import "errors"

// Configuration errors.
var (
	ErrNoSubscription    = errors.New("no subscription configured, use --subscription or AZAUTO_SUBSCRIPTION")
	ErrNoResourceGroup   = errors.New("no resource group configured, use --resource-group or AZAUTO_RESOURCE_GROUP")
	ErrNoAccount         = errors.New("no automation account configured, use --account or AZAUTO_ACCOUNT")
	ErrUnsupportedOutput = errors.New("unsupported output format")
)
