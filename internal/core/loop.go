// ABOUTME: Interactive read-print loop that runs the graph once per user turn
// ABOUTME: Terminates on the exact "exit" sentinel or end of input
package core

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/harper/chatroute/internal/models"
)

// Console strings for the interactive loop
const (
	ExitCommand = "exit"
	Farewell    = "BYE!"
	Prompt      = "Message:"
	ReplyPrefix = "Assistant: "
)

// Invoker runs one pass of a graph over the state
type Invoker interface {
	Invoke(ctx context.Context, s models.State) (models.State, error)
}

// Loop owns the conversation state for one interactive session
type Loop struct {
	graph     Invoker
	in        *bufio.Reader
	out       io.Writer
	logger    *log.Logger
	sessionID string
}

// NewLoop creates a loop reading turns from in and writing replies to out
func NewLoop(graph Invoker, in io.Reader, out io.Writer, logger *log.Logger) *Loop {
	return &Loop{
		graph:     graph,
		in:        bufio.NewReader(in),
		out:       out,
		logger:    logger,
		sessionID: uuid.New().String(),
	}
}

// SessionID identifies this loop in log output
func (l *Loop) SessionID() string {
	return l.sessionID
}

// Run processes turns until the user types exit or input ends.
// It returns the final state; a failed turn aborts the session.
func (l *Loop) Run(ctx context.Context) (models.State, error) {
	state, err := models.NewState()
	if err != nil {
		return state, err
	}
	logger := l.logger.With("session", l.sessionID)

	for turn := 1; ; turn++ {
		fmt.Fprint(l.out, Prompt)
		line, err := readLine(l.in)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(l.out)
			logger.Debug("input closed", "messages", state.Len())
			return state, nil
		}
		if err != nil {
			return state, fmt.Errorf("reading input: %w", err)
		}

		if line == ExitCommand {
			fmt.Fprintln(l.out, Farewell)
			return state, nil
		}

		state, err = l.Turn(ctx, state, line)
		if err != nil {
			logger.Error("turn failed", "turn", turn, "err", err)
			return state, err
		}
		logger.Info("turn complete", "turn", turn, "label", state.Label, "messages", state.Len())

		if last, err := state.Last(); err == nil {
			fmt.Fprintf(l.out, "%s%s\n", ReplyPrefix, last.Content)
		}
	}
}

// Turn appends the user message and runs the graph once. The label from
// the previous turn is cleared first.
func (l *Loop) Turn(ctx context.Context, s models.State, input string) (models.State, error) {
	s = s.WithLabel(models.LabelUnset).Append(models.UserMessage(input))
	return l.graph.Invoke(ctx, s)
}

// readLine returns one line without its line ending. A final line with no
// newline is returned; io.EOF only comes back once nothing is left.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// RunOnce sends a single message through the graph and returns the reply
func RunOnce(ctx context.Context, graph Invoker, message string) (string, error) {
	state, err := models.NewState(models.UserMessage(message))
	if err != nil {
		return "", err
	}
	state, err = graph.Invoke(ctx, state)
	if err != nil {
		return "", err
	}
	last, err := state.Last()
	if err != nil {
		return "", err
	}
	return last.Content, nil
}
