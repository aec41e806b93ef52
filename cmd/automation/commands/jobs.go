package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

// NewJobsCommand creates the job command group.
func NewJobsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "jobs",
		Aliases: []string{"job"},
		Short:   "Inspect runbook jobs",
	}

	cmd.PersistentFlags().String("request-id", "", "x-ms-client-request-id to send")
	cmd.PersistentFlags().Bool("new-request-id", false, "send a freshly generated x-ms-client-request-id")

	cmd.AddCommand(newJobsListCommand())
	cmd.AddCommand(newJobsGetCommand())
	cmd.AddCommand(newJobsOutputCommand())

	return cmd
}

// requestID returns the client request id selected by the jobs flags, or ""
// when none was asked for. Generated ids are reported on stderr.
func requestID(cmd *cobra.Command) string {
	id, _ := cmd.Flags().GetString("request-id")
	if id != "" {
		return id
	}

	generate, _ := cmd.Flags().GetBool("new-request-id")
	if !generate {
		return ""
	}

	id = uuid.New().String()
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Client request ID: %s\n", id)

	return id
}

func newJobsListCommand() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		Long:  "List the jobs of the automation account, optionally narrowed with an OData filter such as \"properties/status eq 'Failed'\".",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, true)
			if err != nil {
				return err
			}

			list := s.client.Jobs().ListByAutomationAccount(s.sub, s.group, s.account)
			if filter != "" {
				list.Filter(filter)
			}

			if id := requestID(cmd); id != "" {
				list.ClientRequestID(id)
			}

			jobs, err := collect(cmd, list)
			if err != nil {
				return fmt.Errorf("failed to list jobs: %w", err)
			}

			rows := make([][]string, 0, len(jobs))
			for _, job := range jobs {
				rows = append(rows, jobItemRow(job))
			}

			return s.render(cmd, jobs, []string{"Name", "Runbook", "Status", "Started", "Ended"}, rows)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "OData $filter expression")

	return cmd
}

func newJobsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Get job details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, true)
			if err != nil {
				return err
			}

			req := s.client.Jobs().Get(s.sub, s.group, s.account, args[0])
			if id := requestID(cmd); id != "" {
				req.ClientRequestID(id)
			}

			job, err := req.Execute(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get job '%s': %w", args[0], err)
			}

			return s.render(cmd, job, []string{"Property", "Value"}, jobDetails(*job))
		},
	}
}

func newJobsOutputCommand() *cobra.Command {
	var script bool

	cmd := &cobra.Command{
		Use:   "output NAME",
		Short: "Print the output of a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, true)
			if err != nil {
				return err
			}

			req := s.client.Jobs().GetOutput(s.sub, s.group, s.account, args[0])
			if script {
				req = s.client.Jobs().GetRunbookContent(s.sub, s.group, s.account, args[0])
			}

			if id := requestID(cmd); id != "" {
				req.ClientRequestID(id)
			}

			output, err := req.Execute(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get output of job '%s': %w", args[0], err)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), *output)

			return err
		},
	}

	cmd.Flags().BoolVar(&script, "runbook-content", false, "print the script the job ran instead of its output")

	return cmd
}

func runbookName(runbook *automation.RunbookAssociationProperty) string {
	if runbook == nil {
		return constants.NotAvailable
	}

	return orNA(runbook.Name)
}

func jobItemRow(job automation.JobCollectionItem) []string {
	props := job.Properties
	if props == nil {
		return []string{job.Name, constants.NotAvailable, constants.NotAvailable, constants.NotAvailable, constants.NotAvailable}
	}

	return []string{job.Name, runbookName(props.Runbook), orNA(props.Status), formatTime(props.StartTime), formatTime(props.EndTime)}
}

func jobDetails(job automation.Job) [][]string {
	rows := [][]string{{"Name", job.Name}, {"ID", job.ID}}

	props := job.Properties
	if props == nil {
		return rows
	}

	return append(rows,
		[]string{"Job ID", orNA(props.JobID)},
		[]string{"Runbook", runbookName(props.Runbook)},
		[]string{"Status", orNA(props.Status)},
		[]string{"Status Details", orNA(props.StatusDetails)},
		[]string{"Started By", orNA(props.StartedBy)},
		[]string{"Run On", orNA(props.RunOn)},
		[]string{"Created", formatTime(props.CreationTime)},
		[]string{"Started", formatTime(props.StartTime)},
		[]string{"Ended", formatTime(props.EndTime)},
		[]string{"Exception", orNA(props.Exception)},
	)
}
