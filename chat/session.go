package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/inference-gateway/groq-mcp-client/agent"
	"github.com/inference-gateway/groq-mcp-client/logger"
)

// Commands understood by the session
const (
	CommandQuit  = "quit"
	CommandModel = "model"
	CommandHelp  = "help"
	CommandClear = "clear"
	CommandTools = "tools"
)

const prompt = "\nQuery: "

const helpText = `
Available commands:
  /help           - Show this help message
  /quit           - Exit the chat loop
  /model <name>   - Change the Groq model
  /clear          - Clear conversation history
  /tools          - List the tools offered by the MCP server
`

// Command is a parsed slash command
type Command struct {
	Name     string
	Argument string
}

var lower = cases.Lower(language.Und)

// ParseCommand recognizes input starting with "/". The command name is
// matched case-insensitively, the argument is everything after the first
// space.
func ParseCommand(input string) (Command, bool) {
	if !strings.HasPrefix(input, "/") {
		return Command{}, false
	}
	name, argument, _ := strings.Cut(input[1:], " ")
	return Command{
		Name:     lower.String(name),
		Argument: strings.TrimSpace(argument),
	}, true
}

// Session is the interactive loop in front of the agent. It owns the
// transcript of the conversation. Replies, help and tool listings go to out;
// command notices are terminal output printed through ancli.
type Session struct {
	agent  agent.Agent
	in     io.Reader
	out    io.Writer
	logger logger.Logger
	conv   agent.Conversation
}

func NewSession(a agent.Agent, in io.Reader, out io.Writer, logger logger.Logger) *Session {
	return &Session{
		agent:  a,
		in:     in,
		out:    out,
		logger: logger,
	}
}

// Conversation returns the transcript of the queries answered so far
func (s *Session) Conversation() agent.Conversation {
	return s.conv
}

// Run reads queries until /quit, end of input or ctx is done. A query in
// flight when ctx is done is abandoned.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("Starting chat loop", "model", s.agent.Model())
	fmt.Fprintln(s.out, "\nWelcome to Groq MCP Client!")
	fmt.Fprintln(s.out, "Type your queries or use /help to see available commands.")

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(s.in)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		fmt.Fprint(s.out, prompt)

		var line string
		select {
		case <-ctx.Done():
			s.logger.Info("Chat loop interrupted")
			return nil
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			s.logger.Info("Input closed, leaving chat loop")
			return nil
		case line = <-lines:
		}

		if !s.Handle(ctx, strings.TrimSpace(line)) {
			return nil
		}
	}
}

// Handle processes one line of input and reports whether the loop should
// continue. A query interrupted by ctx ends the loop.
func (s *Session) Handle(ctx context.Context, input string) bool {
	if input == "" {
		return true
	}

	if cmd, ok := ParseCommand(input); ok {
		return s.handleCommand(ctx, cmd)
	}

	s.logger.Debug("Processing query", "query", input)
	type outcome struct {
		conv  agent.Conversation
		reply agent.Reply
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		conv, reply, err := s.agent.ProcessQuery(ctx, s.conv, input)
		done <- outcome{conv, reply, err}
	}()

	var result outcome
	select {
	case <-ctx.Done():
		s.logger.Info("Query interrupted", "query", input)
		return false
	case result = <-done:
	}

	if result.err != nil {
		var queryErr *agent.QueryError
		if !errors.As(result.err, &queryErr) {
			s.logger.Error("Unexpected error in chat loop", result.err)
		}
		fmt.Fprintf(s.out, "\nError processing query: %v\n", result.err)
		return true
	}

	s.conv = result.conv
	fmt.Fprintf(s.out, "\n%s\n", result.reply.Text)
	return true
}

func (s *Session) handleCommand(ctx context.Context, cmd Command) bool {
	switch cmd.Name {
	case CommandQuit:
		return false
	case CommandModel:
		if cmd.Argument == "" {
			s.logger.Warn("No model specified")
			ancli.PrintWarn("no model specified. Usage: /model <model_name>\n")
			return true
		}
		s.agent.SetModel(cmd.Argument)
		s.logger.Info("Model changed", "model", cmd.Argument)
		ancli.PrintOK(fmt.Sprintf("model changed to: %s\n", cmd.Argument))
	case CommandHelp:
		fmt.Fprint(s.out, helpText)
	case CommandClear:
		s.conv = agent.Conversation{}
		s.logger.Info("Conversation history cleared")
		ancli.PrintOK("conversation history cleared\n")
	case CommandTools:
		s.printTools(ctx)
	default:
		s.logger.Warn("Unknown command", "command", cmd.Name)
		ancli.PrintWarn(fmt.Sprintf("unknown command: %s. Type /help for available commands.\n", cmd.Name))
	}
	return true
}

func (s *Session) printTools(ctx context.Context) {
	tools, err := s.agent.Tools(ctx)
	if err != nil {
		s.logger.Error("Failed to list tools", err)
		ancli.PrintErr(fmt.Sprintf("failed to list tools: %v\n", err))
		return
	}
	if len(tools) == 0 {
		fmt.Fprintln(s.out, "\nThe server offers no tools.")
		return
	}

	fmt.Fprintln(s.out, "\nAvailable tools:")
	for _, tool := range tools {
		if tool.Description == "" {
			fmt.Fprintf(s.out, "  %s\n", tool.Name)
			continue
		}
		fmt.Fprintf(s.out, "  %s - %s\n", tool.Name, tool.Description)
	}
}
