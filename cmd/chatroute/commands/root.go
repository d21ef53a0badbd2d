// ABOUTME: Root command and global flags for the chatroute CLI
// ABOUTME: Running with no subcommand starts the interactive chat
package commands

import (
	"github.com/spf13/cobra"

	"github.com/harper/chatroute/internal/app"
	"github.com/harper/chatroute/internal/llm/provider"
)

var (
	verbose bool
	quiet   bool
	envFile string

	// newModel is swapped out in tests
	newModel app.ModelFactory = provider.New
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chatroute",
		Short: "Route messages to a therapist or a logical assistant",
		Long: `chatroute classifies each message you type as emotional or logical
and answers it with the matching assistant.

Every turn runs the same graph:

  classifier -> router -> therapist | logical

The classifier asks the model for a strict emotional/logical label. Anything
other than "emotional" is answered by the logical assistant. Type "exit" to
quit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runChat,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")
	cmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment from this file instead of ./.env")

	cmd.AddCommand(NewChatCmd())
	cmd.AddCommand(NewGraphCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func setup(cmd *cobra.Command) (*app.App, error) {
	return app.Setup(app.Options{
		Verbose: verbose,
		Quiet:   quiet,
		Stderr:  cmd.ErrOrStderr(),
		EnvFile: envFile,
	}, newModel)
}
