// ABOUTME: Graph command prints the routing graph as Mermaid
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/chatroute/internal/core"
	"github.com/harper/chatroute/internal/logging"
)

// NewGraphCmd creates the graph command
func NewGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the routing graph as a Mermaid flowchart",
		Long: `Print the routing graph as a Mermaid flowchart.

The output can be pasted into any Mermaid renderer. No model is contacted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The graph is only inspected, never invoked
			graph, err := core.NewRoutingGraph(nil, logging.Discard())
			if err != nil {
				return fmt.Errorf("building graph: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), graph.Mermaid())
			return nil
		},
	}

	return cmd
}
