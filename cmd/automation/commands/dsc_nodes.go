package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

// NewDscNodesCommand creates the DSC node command group.
func NewDscNodesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dsc-nodes",
		Aliases: []string{"dsc-node", "nodes"},
		Short:   "Inspect DSC nodes",
	}

	cmd.AddCommand(newDscNodesListCommand())

	return cmd
}

func newDscNodesListCommand() *cobra.Command {
	var (
		filter      string
		skip        int32
		top         int32
		inlineCount string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List DSC nodes",
		Long:  "List the DSC nodes registered with the automation account. --skip and --top are sent only when set.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, true)
			if err != nil {
				return err
			}

			list := s.client.DscNodes().ListByAutomationAccount(s.sub, s.group, s.account)
			if filter != "" {
				list.Filter(filter)
			}

			if cmd.Flags().Changed("skip") {
				list.Skip(skip)
			}

			if cmd.Flags().Changed("top") {
				list.Top(top)
			}

			if inlineCount != "" {
				list.InlineCount(inlineCount)
			}

			nodes, err := collect(cmd, list)
			if err != nil {
				return fmt.Errorf("failed to list DSC nodes: %w", err)
			}

			rows := make([][]string, 0, len(nodes))
			for _, node := range nodes {
				rows = append(rows, dscNodeRow(node))
			}

			return s.render(cmd, nodes, []string{"Name", "Status", "Node Configuration", "IP", "Last Seen"}, rows)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "OData $filter expression")
	cmd.Flags().Int32Var(&skip, "skip", 0, "number of nodes to skip")
	cmd.Flags().Int32Var(&top, "top", 0, "number of nodes to return per page")
	cmd.Flags().StringVar(&inlineCount, "inline-count", "", "$inlinecount value, e.g. allpages")

	return cmd
}

func dscNodeRow(node automation.DscNode) []string {
	props := node.Properties
	if props == nil {
		return []string{node.Name, constants.NotAvailable, constants.NotAvailable, constants.NotAvailable, constants.NotAvailable}
	}

	configuration := constants.NotAvailable
	if props.NodeConfiguration != nil {
		configuration = orNA(props.NodeConfiguration.Name)
	}

	return []string{node.Name, orNA(props.Status), configuration, orNA(props.IP), formatTime(props.LastSeen)}
}
