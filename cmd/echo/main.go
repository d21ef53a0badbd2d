// ABOUTME: Single-shot echo program: one message in, one model reply out
// ABOUTME: Forwards the message verbatim with no routing or system prompt
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harper/chatroute/internal/app"
	"github.com/harper/chatroute/internal/core"
	"github.com/harper/chatroute/internal/llm/provider"
)

// Version information (set by goreleaser)
var version = "dev"

const prompt = "Enter your message: "

var (
	verbose bool
	quiet   bool
	envFile string

	newModel app.ModelFactory = provider.New
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "echo [message]",
		Short: "Send one message to the model and print the reply",
		Long: `Send one message to the model and print the reply.

The message is taken from the argument, or read from a prompt when no
argument is given. It is forwarded as-is.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runEcho,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")
	cmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment from this file instead of ./.env")

	cmd.AddCommand(&cobra.Command{
		Use:   "graph",
		Short: "Print the echo graph as a Mermaid flowchart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := core.NewEchoGraph(nil)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), graph.Mermaid())
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "echo %s\n", version)
		},
	})

	return cmd
}

func runEcho(cmd *cobra.Command, args []string) error {
	a, err := app.Setup(app.Options{
		Verbose: verbose,
		Quiet:   quiet,
		Stderr:  cmd.ErrOrStderr(),
		EnvFile: envFile,
	}, newModel)
	if err != nil {
		return err
	}

	var message string
	if len(args) > 0 {
		message = args[0]
	} else {
		fmt.Fprint(cmd.OutOrStdout(), prompt)
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return fmt.Errorf("reading message: %w", err)
		}
		message = strings.TrimRight(line, "\r\n")
	}

	graph, err := core.NewEchoGraph(a.Model)
	if err != nil {
		return fmt.Errorf("building graph: %w", err)
	}

	reply, err := core.RunOnce(cmd.Context(), graph, message)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), reply)
	return nil
}
