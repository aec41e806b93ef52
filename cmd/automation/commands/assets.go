package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

// NewSchedulesCommand creates the schedule command group.
func NewSchedulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schedules",
		Aliases: []string{"schedule"},
		Short:   "Inspect schedules",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List schedules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, true)
			if err != nil {
				return err
			}

			schedules, err := collect(cmd, s.client.Schedules().ListByAutomationAccount(s.sub, s.group, s.account))
			if err != nil {
				return fmt.Errorf("failed to list schedules: %w", err)
			}

			rows := make([][]string, 0, len(schedules))
			for _, schedule := range schedules {
				rows = append(rows, scheduleRow(schedule))
			}

			return s.render(cmd, schedules, []string{"Name", "Frequency", "Interval", "Enabled", "Next Run"}, rows)
		},
	})

	return cmd
}

// NewVariablesCommand creates the variable command group.
func NewVariablesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "variables",
		Aliases: []string{"variable", "vars"},
		Short:   "Inspect variables",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List variables",
		Long:  "List the variables of the automation account. Encrypted values are never returned by the service.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, true)
			if err != nil {
				return err
			}

			variables, err := collect(cmd, s.client.Variables().ListByAutomationAccount(s.sub, s.group, s.account))
			if err != nil {
				return fmt.Errorf("failed to list variables: %w", err)
			}

			rows := make([][]string, 0, len(variables))
			for _, variable := range variables {
				rows = append(rows, variableRow(variable))
			}

			return s.render(cmd, variables, []string{"Name", "Value", "Encrypted", "Last Modified"}, rows)
		},
	})

	return cmd
}

// NewWebhooksCommand creates the webhook command group.
func NewWebhooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "webhooks",
		Aliases: []string{"webhook"},
		Short:   "Inspect webhooks",
	}

	var filter string

	list := &cobra.Command{
		Use:   "list",
		Short: "List webhooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, true)
			if err != nil {
				return err
			}

			req := s.client.Webhooks().ListByAutomationAccount(s.sub, s.group, s.account)
			if filter != "" {
				req.Filter(filter)
			}

			webhooks, err := collect(cmd, req)
			if err != nil {
				return fmt.Errorf("failed to list webhooks: %w", err)
			}

			rows := make([][]string, 0, len(webhooks))
			for _, webhook := range webhooks {
				rows = append(rows, webhookRow(webhook))
			}

			return s.render(cmd, webhooks, []string{"Name", "Runbook", "Enabled", "Expires", "Last Invoked"}, rows)
		},
	}

	list.Flags().StringVar(&filter, "filter", "", "OData $filter expression")
	cmd.AddCommand(list)

	return cmd
}

func scheduleRow(schedule automation.Schedule) []string {
	props := schedule.Properties
	if props == nil {
		return []string{schedule.Name, constants.NotAvailable, constants.NotAvailable, constants.NotAvailable, constants.NotAvailable}
	}

	interval := constants.NotAvailable
	if props.Interval != nil {
		interval = strconv.FormatInt(*props.Interval, 10)
	}

	return []string{schedule.Name, orNA(props.Frequency), interval, formatBool(props.IsEnabled), formatTime(props.NextRun)}
}

func variableRow(variable automation.Variable) []string {
	props := variable.Properties
	if props == nil {
		return []string{variable.Name, constants.NotAvailable, constants.NotAvailable, constants.NotAvailable}
	}

	value := orNA(props.Value)
	if props.IsEncrypted {
		value = constants.Masked
	}

	return []string{variable.Name, value, formatBool(props.IsEncrypted), formatTime(props.LastModifiedTime)}
}

func webhookRow(webhook automation.Webhook) []string {
	props := webhook.Properties
	if props == nil {
		return []string{webhook.Name, constants.NotAvailable, constants.NotAvailable, constants.NotAvailable, constants.NotAvailable}
	}

	return []string{webhook.Name, runbookName(props.Runbook), formatBool(props.IsEnabled), formatTime(props.ExpiryTime), formatTime(props.LastInvokedTime)}
}
