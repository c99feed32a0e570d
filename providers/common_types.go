package providers

// The authentication type of the provider
const (
	AuthTypeBearer = "bearer"
)

// Groq identifiers and endpoints
const (
	GroqID                 = "groq"
	GroqDisplayName        = "Groq"
	GroqDefaultBaseURL     = "https://api.groq.com"
	GroqDefaultModel       = "llama-3.3-70b-versatile"
	GroqChatCompletionsURI = "/openai/v1/chat/completions"
)

// MessageRole is the role of a message author
type MessageRole string

const (
	MessageRoleSystem    MessageRole = "system"
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
	MessageRoleTool      MessageRole = "tool"
)

// ChatCompletionToolType is the type of a tool, only functions are supported
type ChatCompletionToolType string

const (
	ChatCompletionToolTypeFunction ChatCompletionToolType = "function"
)

// ToolChoiceAuto lets the model decide whether to call tools
const ToolChoiceAuto = "auto"

// FinishReason is the reason the model stopped generating tokens
type FinishReason string

const (
	FinishReasonStop      FinishReason = "stop"
	FinishReasonLength    FinishReason = "length"
	FinishReasonToolCalls FinishReason = "tool_calls"
)

// FunctionParameters is the JSON schema of a function's arguments. It is
// passed through to the provider untouched.
type FunctionParameters = interface{}

// FunctionObject declares a callable function
type FunctionObject struct {
	Name        string             `json:"name"`
	Description *string            `json:"description,omitempty"`
	Parameters  FunctionParameters `json:"parameters,omitempty"`
}

// ChatCompletionTool wraps a function declaration in the function-calling envelope
type ChatCompletionTool struct {
	Type     ChatCompletionToolType `json:"type"`
	Function FunctionObject         `json:"function"`
}

// ChatCompletionMessageToolCallFunction is the function the model wants to call
type ChatCompletionMessageToolCallFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ChatCompletionMessageToolCall is a tool call requested by the model
type ChatCompletionMessageToolCall struct {
	ID       string                                `json:"id"`
	Type     ChatCompletionToolType                `json:"type"`
	Function ChatCompletionMessageToolCallFunction `json:"function"`
}

// Message is one entry of the conversation history
type Message struct {
	Role       MessageRole                      `json:"role"`
	Content    string                           `json:"content"`
	ToolCalls  *[]ChatCompletionMessageToolCall `json:"tool_calls,omitempty"`
	ToolCallId *string                          `json:"tool_call_id,omitempty"`
}

// CreateChatCompletionRequest is the body of a chat completion request
type CreateChatCompletionRequest struct {
	Model       string                `json:"model"`
	Messages    []Message             `json:"messages"`
	MaxTokens   *int                  `json:"max_tokens,omitempty"`
	Temperature *float64              `json:"temperature,omitempty"`
	Tools       *[]ChatCompletionTool `json:"tools,omitempty"`
	ToolChoice  *string               `json:"tool_choice,omitempty"`
}

// ChatCompletionResponseMessage is the message of a completion choice. Content
// is nullable on the wire.
type ChatCompletionResponseMessage struct {
	Role      MessageRole                      `json:"role"`
	Content   *string                          `json:"content"`
	ToolCalls *[]ChatCompletionMessageToolCall `json:"tool_calls,omitempty"`
}

// ChatCompletionChoice is one completion alternative
type ChatCompletionChoice struct {
	Index        int                           `json:"index"`
	Message      ChatCompletionResponseMessage `json:"message"`
	FinishReason FinishReason                  `json:"finish_reason"`
}

// CompletionUsage reports token accounting
type CompletionUsage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
}

// CreateChatCompletionResponse is the body of a chat completion response
type CreateChatCompletionResponse struct {
	ID      string                 `json:"id"`
	Object  string                 `json:"object"`
	Created int64                  `json:"created"`
	Model   string                 `json:"model"`
	Choices []ChatCompletionChoice `json:"choices"`
	Usage   *CompletionUsage       `json:"usage,omitempty"`
}

// NewUserMessage creates a user message with text content
func NewUserMessage(content string) Message {
	return Message{
		Role:    MessageRoleUser,
		Content: content,
	}
}

// NewToolMessage creates a tool response message
func NewToolMessage(toolCallID string, content string) Message {
	return Message{
		Role:       MessageRoleTool,
		Content:    content,
		ToolCallId: &toolCallID,
	}
}

// NewAssistantMessage creates an assistant message with optional tool calls
func NewAssistantMessage(content string, toolCalls []ChatCompletionMessageToolCall) Message {
	msg := Message{
		Role:    MessageRoleAssistant,
		Content: content,
	}
	if len(toolCalls) > 0 {
		calls := make([]ChatCompletionMessageToolCall, len(toolCalls))
		copy(calls, toolCalls)
		msg.ToolCalls = &calls
	}
	return msg
}

func intPtr(v int) *int {
	return &v
}

func float64Ptr(v float64) *float64 {
	return &v
}

func stringPtr(v string) *string {
	return &v
}
