package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

// NewRunbooksCommand creates the runbook command group.
func NewRunbooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "runbooks",
		Aliases: []string{"runbook", "rb"},
		Short:   "Manage runbooks",
	}

	cmd.AddCommand(newRunbooksListCommand())
	cmd.AddCommand(newRunbooksGetCommand())
	cmd.AddCommand(newRunbooksContentCommand())

	return cmd
}

func newRunbooksListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List runbooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, true)
			if err != nil {
				return err
			}

			runbooks, err := collect(cmd, s.client.Runbooks().ListByAutomationAccount(s.sub, s.group, s.account))
			if err != nil {
				return fmt.Errorf("failed to list runbooks: %w", err)
			}

			rows := make([][]string, 0, len(runbooks))
			for _, runbook := range runbooks {
				rows = append(rows, runbookRow(runbook))
			}

			return s.render(cmd, runbooks, []string{"Name", "Type", "State", "Last Modified"}, rows)
		},
	}
}

func newRunbooksGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Get runbook details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, true)
			if err != nil {
				return err
			}

			runbook, err := s.client.Runbooks().Get(s.sub, s.group, s.account, args[0]).Execute(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get runbook '%s': %w", args[0], err)
			}

			row := runbookRow(*runbook)
			description := constants.NotAvailable

			if runbook.Properties != nil {
				description = orNA(runbook.Properties.Description)
			}

			return s.render(cmd, runbook, []string{"Property", "Value"}, [][]string{
				{"Name", row[0]},
				{"ID", runbook.ID},
				{"Location", orNA(runbook.Location)},
				{"Type", row[1]},
				{"State", row[2]},
				{"Last Modified", row[3]},
				{"Description", description},
			})
		},
	}
}

func newRunbooksContentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "content NAME",
		Short: "Print the published runbook script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, true)
			if err != nil {
				return err
			}

			content, err := s.client.Runbooks().GetContent(s.sub, s.group, s.account, args[0]).Execute(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get content of runbook '%s': %w", args[0], err)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), *content)

			return err
		},
	}
}

func runbookRow(runbook automation.Runbook) []string {
	row := []string{runbook.Name, constants.NotAvailable, constants.NotAvailable, constants.NotAvailable}

	if props := runbook.Properties; props != nil {
		row[1] = orNA(props.RunbookType)
		row[2] = orNA(props.State)
		row[3] = formatTime(props.LastModifiedTime)
	}

	return row
}
