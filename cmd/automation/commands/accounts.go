package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

// NewAccountsCommand creates the automation account command group.
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account", "acct"},
		Short:   "Manage automation accounts",
	}

	cmd.AddCommand(newAccountsListCommand())
	cmd.AddCommand(newAccountsGetCommand())

	return cmd
}

func newAccountsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List automation accounts",
		Long:  "List the automation accounts of the resource group, or of the whole subscription when no resource group is set.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, false)
			if err != nil {
				return err
			}

			if s.sub == "" {
				return constants.ErrNoSubscription
			}

			list := s.client.AutomationAccounts().List(s.sub)
			if s.group != "" {
				list = s.client.AutomationAccounts().ListByResourceGroup(s.sub, s.group)
			}

			accounts, err := collect(cmd, list)
			if err != nil {
				return fmt.Errorf("failed to list automation accounts: %w", err)
			}

			rows := make([][]string, 0, len(accounts))
			for _, account := range accounts {
				rows = append(rows, accountRow(account))
			}

			return s.render(cmd, accounts, []string{"Name", "Location", "SKU", "State", "Created"}, rows)
		},
	}
}

func newAccountsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [NAME]",
		Short: "Get automation account details",
		Long:  "Show an automation account. The name defaults to the configured account.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, false)
			if err != nil {
				return err
			}

			name := s.account
			if len(args) == 1 {
				name = args[0]
			}

			switch {
			case s.sub == "":
				return constants.ErrNoSubscription
			case s.group == "":
				return constants.ErrNoResourceGroup
			case name == "":
				return constants.ErrNoAccount
			}

			account, err := s.client.AutomationAccounts().Get(s.sub, s.group, name).Execute(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get automation account '%s': %w", name, err)
			}

			row := accountRow(*account)

			return s.render(cmd, account, []string{"Property", "Value"}, [][]string{
				{"Name", row[0]},
				{"ID", account.ID},
				{"Location", row[1]},
				{"SKU", row[2]},
				{"State", row[3]},
				{"Created", row[4]},
				{"Description", orNA(accountDescription(*account))},
			})
		},
	}
}

func accountRow(account automation.AutomationAccount) []string {
	sku, state, created := constants.NotAvailable, constants.NotAvailable, constants.NotAvailable

	if props := account.Properties; props != nil {
		if props.Sku != nil {
			sku = orNA(props.Sku.Name)
		}

		state = orNA(props.State)
		created = formatTime(props.CreationTime)
	}

	return []string{account.Name, orNA(account.Location), sku, state, created}
}

func accountDescription(account automation.AutomationAccount) string {
	if account.Properties == nil {
		return ""
	}

	return account.Properties.Description
}
