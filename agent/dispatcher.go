package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/inference-gateway/groq-mcp-client/logger"
	"github.com/inference-gateway/groq-mcp-client/mcp"
	"github.com/inference-gateway/groq-mcp-client/otel"
	"github.com/inference-gateway/groq-mcp-client/providers"
)

// ToolResult is the outcome of a single tool call as shown to the user
type ToolResult struct {
	Text      string
	Succeeded bool
}

// ToolDispatcher runs model issued tool calls against the MCP session
type ToolDispatcher struct {
	client    mcp.Client
	telemetry otel.Telemetry
	logger    logger.Logger
}

// NewToolDispatcher creates a dispatcher, a nil telemetry records nothing
func NewToolDispatcher(client mcp.Client, telemetry otel.Telemetry, logger logger.Logger) *ToolDispatcher {
	if telemetry == nil {
		telemetry = otel.NoopTelemetry{}
	}
	return &ToolDispatcher{
		client:    client,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Execute runs one tool call and appends exactly one tool message answering
// it to history, whether the call succeeded or not. Failures are reported in
// the returned ToolResult and never as an error.
func (d *ToolDispatcher) Execute(ctx context.Context, call providers.ChatCompletionMessageToolCall, history *[]providers.Message) ToolResult {
	name := call.Function.Name

	args, err := parseArguments(call.Function.Arguments)
	if err != nil {
		d.logger.Error("Agent: Failed to parse tool arguments", err, "tool", name, "args", call.Function.Arguments)
		text := fmt.Sprintf("Error parsing arguments for %s: %v", name, err)
		*history = append(*history, providers.NewToolMessage(call.ID, text))
		return ToolResult{Text: text, Succeeded: false}
	}

	d.logger.Debug("Agent: Executing tool call", "id", call.ID, "tool", name, "args", args)
	start := time.Now()
	result, err := d.client.CallTool(ctx, name, args)
	if err != nil {
		d.telemetry.RecordToolCall(ctx, name, false, time.Since(start))
		d.logger.Error("Agent: Failed to execute tool call", err, "tool", name)
		text := fmt.Sprintf("Error executing tool %s: %v", name, err)
		*history = append(*history, providers.NewToolMessage(call.ID, text))
		return ToolResult{Text: text, Succeeded: false}
	}
	d.telemetry.RecordToolCall(ctx, name, true, time.Since(start))

	var content interface{}
	if result != nil {
		content = result.Content
	}
	text := NormalizeResult(content)

	*history = append(*history, providers.NewToolMessage(call.ID, text))
	return ToolResult{
		Text:      fmt.Sprintf("[Tool %s result: %s]", name, text),
		Succeeded: true,
	}
}

// parseArguments decodes the JSON object the model supplied. Models send an
// empty string for tools without parameters, which is read as {}.
func parseArguments(raw string) (map[string]interface{}, error) {
	args := map[string]interface{}{}
	if strings.TrimSpace(raw) == "" {
		return args, nil
	}
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, err
	}
	if args == nil {
		args = map[string]interface{}{}
	}
	return args, nil
}

// NormalizeResult renders tool content as text: strings verbatim, other
// values as JSON, and anything JSON cannot encode through fmt.
func NormalizeResult(content interface{}) string {
	switch v := content.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}

	encoded, err := json.Marshal(content)
	if err != nil {
		return fmt.Sprintf("%v", content)
	}
	return string(encoded)
}
