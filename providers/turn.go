package providers

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse marks a completion response that does not decode into
// an assistant turn. It is retried like any transport failure.
var ErrMalformedResponse = errors.New("malformed completion response")

// AssistantTurn is the decoded assistant reply of a completion. It is either
// TextOnly or WithToolCalls.
type AssistantTurn interface {
	// Text returns the textual content of the turn, possibly empty
	Text() string
	isAssistantTurn()
}

// TextOnly is an assistant turn without tool calls
type TextOnly struct {
	Content string
}

func (t TextOnly) Text() string   { return t.Content }
func (TextOnly) isAssistantTurn() {}

// WithToolCalls is an assistant turn requesting one or more tool calls. The
// calls keep the order the model emitted them in.
type WithToolCalls struct {
	Content string
	Calls   []ChatCompletionMessageToolCall
}

func (t WithToolCalls) Text() string   { return t.Content }
func (WithToolCalls) isAssistantTurn() {}

// Message converts the turn into the assistant history entry that precedes
// the tool results.
func (t WithToolCalls) Message() Message {
	return NewAssistantMessage(t.Content, t.Calls)
}

// DecodeAssistantTurn validates a completion response and converts its first
// choice into an AssistantTurn.
func DecodeAssistantTurn(resp CreateChatCompletionResponse) (AssistantTurn, error) {
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", ErrMalformedResponse)
	}

	msg := resp.Choices[0].Message
	content := ""
	if msg.Content != nil {
		content = *msg.Content
	}

	if msg.ToolCalls == nil || len(*msg.ToolCalls) == 0 {
		return TextOnly{Content: content}, nil
	}

	calls := make([]ChatCompletionMessageToolCall, 0, len(*msg.ToolCalls))
	for i, call := range *msg.ToolCalls {
		if call.ID == "" {
			return nil, fmt.Errorf("%w: tool call %d has no id", ErrMalformedResponse, i)
		}
		if call.Function.Name == "" {
			return nil, fmt.Errorf("%w: tool call %s has no function name", ErrMalformedResponse, call.ID)
		}
		if call.Type == "" {
			call.Type = ChatCompletionToolTypeFunction
		}
		if call.Type != ChatCompletionToolTypeFunction {
			return nil, fmt.Errorf("%w: tool call %s has unsupported type %q", ErrMalformedResponse, call.ID, call.Type)
		}
		calls = append(calls, call)
	}

	return WithToolCalls{Content: content, Calls: calls}, nil
}
