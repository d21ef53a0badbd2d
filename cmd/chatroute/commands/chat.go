// ABOUTME: Chat command runs the interactive classify-and-route loop
// ABOUTME: Reads one message per turn until the user types exit
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/chatroute/internal/core"
)

// NewChatCmd creates the chat command
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive session",
		Long: `Start an interactive session.

Each message is classified and answered by either the therapist or the
logical assistant. Type "exit" to quit.`,
		Args: cobra.NoArgs,
		RunE: runChat,
	}

	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	graph, err := core.NewRoutingGraph(a.Model, a.Logger)
	if err != nil {
		return fmt.Errorf("building graph: %w", err)
	}

	loop := core.NewLoop(graph, cmd.InOrStdin(), cmd.OutOrStdout(), a.Logger)
	a.Logger.Debug("session started", "session", loop.SessionID())

	_, err = loop.Run(cmd.Context())
	return err
}
