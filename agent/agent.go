package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inference-gateway/groq-mcp-client/logger"
	"github.com/inference-gateway/groq-mcp-client/mcp"
	"github.com/inference-gateway/groq-mcp-client/otel"
	"github.com/inference-gateway/groq-mcp-client/providers"
)

// Completion stages as reported in errors and telemetry
const (
	StageListTools         = "list_tools"
	StageInitialCompletion = "initial"
	StageFinalCompletion   = "final"
)

// Agent answers user queries by letting the model call MCP tools
//
//go:generate mockgen -source=agent.go -destination=../mocks/agent.go -package=mocks
type Agent interface {
	ProcessQuery(ctx context.Context, conv Conversation, query string) (Conversation, Reply, error)
	Tools(ctx context.Context) ([]mcp.ToolDescriptor, error)
	Model() string
	SetModel(model string)
}

// Completer is the retrying completion call used by the agent
type Completer interface {
	Call(ctx context.Context, messages []providers.Message, tools []providers.ChatCompletionTool) (providers.AssistantTurn, error)
	Model() string
	SetModel(model string)
}

// Reply is the outcome of a processed query
type Reply struct {
	// Text is every fragment of the answer joined by newlines
	Text string
	// Tools holds one result per tool call, in the order the model issued them
	Tools []ToolResult
	// Answered is false when the model produced no final answer after tool use
	Answered bool
}

// QueryError aborts a query before any tool ran. The conversation is left
// untouched.
type QueryError struct {
	Stage string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Ensure agentImpl implements Agent interface at compile time
var _ Agent = (*agentImpl)(nil)

type agentImpl struct {
	logger     logger.Logger
	mcpClient  mcp.Client
	completer  Completer
	dispatcher *ToolDispatcher
	telemetry  otel.Telemetry
}

// NewAgent creates a new Agent instance, a nil telemetry records nothing
func NewAgent(logger logger.Logger, mcpClient mcp.Client, completer Completer, telemetry otel.Telemetry) Agent {
	if telemetry == nil {
		telemetry = otel.NoopTelemetry{}
	}
	return &agentImpl{
		logger:     logger,
		mcpClient:  mcpClient,
		completer:  completer,
		dispatcher: NewToolDispatcher(mcpClient, telemetry, logger),
		telemetry:  telemetry,
	}
}

func (a *agentImpl) Model() string {
	return a.completer.Model()
}

func (a *agentImpl) SetModel(model string) {
	a.completer.SetModel(model)
}

func (a *agentImpl) Tools(ctx context.Context) ([]mcp.ToolDescriptor, error) {
	return a.mcpClient.ListTools(ctx)
}

// ProcessQuery runs one query: a completion with the current tools, one
// round of tool calls if the model asks for any, and a final completion
// without tools. On success the returned conversation has the query and
// reply appended; on a *QueryError it is conv unchanged.
func (a *agentImpl) ProcessQuery(ctx context.Context, conv Conversation, query string) (Conversation, Reply, error) {
	queryID := uuid.NewString()
	a.logger.Debug("Agent: Processing query", "query_id", queryID, "model", a.completer.Model())

	history := []providers.Message{providers.NewUserMessage(query)}

	descriptors, err := a.mcpClient.ListTools(ctx)
	if err != nil {
		a.logger.Error("Agent: Failed to list tools", err, "query_id", queryID)
		return conv, Reply{}, &QueryError{Stage: StageListTools, Err: err}
	}
	tools := mcp.ConvertTools(descriptors)

	turn, err := a.complete(ctx, StageInitialCompletion, history, tools)
	if err != nil {
		a.logger.Error("Agent: Initial completion failed", err, "query_id", queryID)
		return conv, Reply{}, &QueryError{Stage: StageInitialCompletion, Err: err}
	}

	var fragments []string
	if text := turn.Text(); text != "" {
		fragments = append(fragments, text)
	}

	withCalls, ok := turn.(providers.WithToolCalls)
	if !ok {
		reply := Reply{Text: strings.Join(fragments, "\n"), Answered: true}
		return conv.With(query, reply.Text), reply, nil
	}

	a.logger.Debug("Agent: Executing tool calls", "query_id", queryID, "count", len(withCalls.Calls))
	history = append(history, withCalls.Message())

	results := make([]ToolResult, 0, len(withCalls.Calls))
	for _, call := range withCalls.Calls {
		result := a.dispatcher.Execute(ctx, call, &history)
		results = append(results, result)
		fragments = append(fragments, result.Text)
	}

	reply := Reply{Tools: results}
	final, err := a.complete(ctx, StageFinalCompletion, history, nil)
	if err != nil {
		a.logger.Error("Agent: Final completion failed, returning tool results only", err, "query_id", queryID)
	} else {
		reply.Answered = true
		if text := final.Text(); text != "" {
			fragments = append(fragments, text)
		}
	}

	reply.Text = strings.Join(fragments, "\n")
	a.logger.Debug("Agent: Query completed", "query_id", queryID, "tools", len(results), "answered", reply.Answered)
	return conv.With(query, reply.Text), reply, nil
}

func (a *agentImpl) complete(ctx context.Context, stage string, history []providers.Message, tools []providers.ChatCompletionTool) (providers.AssistantTurn, error) {
	start := time.Now()
	turn, err := a.completer.Call(ctx, history, tools)
	a.telemetry.RecordCompletion(ctx, a.completer.Model(), stage, time.Since(start), err)
	return turn, err
}
