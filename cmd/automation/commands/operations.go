package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/azure-automation/internal/client"
	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

// NewOperationsCommand creates the operations command group.
func NewOperationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "operations",
		Short: "List provider operations",
	}

	var catalogue bool

	list := &cobra.Command{
		Use:   "list",
		Short: "List the operations of the Microsoft.Automation provider",
		Long:  "List the operations the service reports, or with --catalogue the operations this client implements. The catalogue needs no credentials.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if catalogue {
				return renderCatalogue(cmd)
			}

			s, err := newSession(cmd, false)
			if err != nil {
				return err
			}

			operations, err := collect(cmd, s.client.Operations().List())
			if err != nil {
				return fmt.Errorf("failed to list operations: %w", err)
			}

			rows := make([][]string, 0, len(operations))
			for _, operation := range operations {
				rows = append(rows, providerOperationRow(operation))
			}

			return s.render(cmd, operations, []string{"Name", "Resource", "Operation"}, rows)
		},
	}

	list.Flags().BoolVar(&catalogue, "catalogue", false, "list the operations implemented by this client")
	cmd.AddCommand(list)

	return cmd
}

func renderCatalogue(cmd *cobra.Command) error {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return err
	}

	type entry struct {
		Name       string `json:"name"       yaml:"name"`
		Method     string `json:"method"     yaml:"method"`
		Path       string `json:"path"       yaml:"path"`
		APIVersion string `json:"apiVersion" yaml:"apiVersion"`
		Params     string `json:"params"     yaml:"params"`
	}

	ops := client.Catalogue()
	entries := make([]entry, 0, len(ops))
	rows := make([][]string, 0, len(ops))

	for _, op := range ops {
		e := entry{Name: op.Name, Method: op.Method, Path: op.Path, APIVersion: op.APIVersion, Params: op.Params.String()}
		entries = append(entries, e)
		rows = append(rows, []string{e.Name, e.Method, e.APIVersion, e.Params})
	}

	return render(cmd.OutOrStdout(), cfg.Output, entries, []string{"Name", "Method", "API Version", "Parameters"}, rows)
}

func providerOperationRow(operation automation.ProviderOperation) []string {
	if operation.Display == nil {
		return []string{operation.Name, constants.NotAvailable, constants.NotAvailable}
	}

	return []string{operation.Name, orNA(operation.Display.Resource), orNA(operation.Display.Operation)}
}
