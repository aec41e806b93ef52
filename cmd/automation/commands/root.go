package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the azauto root command with every subcommand attached.
func NewRootCommand(version, commit, date string) *cobra.Command {
	root := &cobra.Command{
		Use:   "azauto",
		Short: "Azure Automation management CLI",
		Long: `A command-line interface for the Azure Automation management API.

Read automation accounts, runbooks, jobs, DSC nodes and account assets.
The subscription, resource group and account can be set with flags,
AZAUTO_* environment variables or $HOME/.azauto/config.yml.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	BindFlags(root)

	root.AddCommand(NewVersionCommand(version, commit, date))
	root.AddCommand(NewConfigCommand())
	root.AddCommand(NewAccountsCommand())
	root.AddCommand(NewRunbooksCommand())
	root.AddCommand(NewJobsCommand())
	root.AddCommand(NewDscNodesCommand())
	root.AddCommand(NewSchedulesCommand())
	root.AddCommand(NewVariablesCommand())
	root.AddCommand(NewWebhooksCommand())
	root.AddCommand(NewOperationsCommand())

	return root
}

// userAgent is sent on every request made by the CLI.
func userAgent(cmd *cobra.Command) string {
	return fmt.Sprintf("azauto/%s", cmd.Root().Version)
}
