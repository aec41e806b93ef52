package client

// accountPath addresses one automation account. Every account scoped
// operation extends it.
const accountPath = "/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/Microsoft.Automation/automationAccounts/{automationAccountName}"
