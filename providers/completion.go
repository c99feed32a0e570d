package providers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/inference-gateway/groq-mcp-client/logger"
)

// LLMCallError is returned once every completion attempt has failed. It
// unwraps to the error of the last attempt.
type LLMCallError struct {
	Attempts int
	Err      error
}

func (e *LLMCallError) Error() string {
	return fmt.Sprintf("completion failed after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *LLMCallError) Unwrap() error {
	return e.Err
}

// CompletionOptions are the sampling settings sent with every request
type CompletionOptions struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// CompletionCaller issues chat completions under a retry policy. It is the
// only component that talks to the LLM provider. The model may be switched
// while calls are in flight.
type CompletionCaller struct {
	client  ChatCompleter
	policy  RetryPolicy
	logger  logger.Logger
	mu      sync.RWMutex
	options CompletionOptions
}

// NewCompletionCaller creates a caller, an empty model falls back to the Groq default
func NewCompletionCaller(client ChatCompleter, policy RetryPolicy, options CompletionOptions, logger logger.Logger) *CompletionCaller {
	if options.Model == "" {
		options.Model = GroqDefaultModel
	}
	return &CompletionCaller{
		client:  client,
		policy:  policy,
		options: options,
		logger:  logger,
	}
}

// Model returns the model used for subsequent calls
func (c *CompletionCaller) Model() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.options.Model
}

// SetModel switches the model used for subsequent calls
func (c *CompletionCaller) SetModel(model string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.options.Model = model
}

// Call requests a completion for messages. Tools are only advertised when
// present, in which case the model chooses freely whether to use them.
func (c *CompletionCaller) Call(ctx context.Context, messages []Message, tools []ChatCompletionTool) (AssistantTurn, error) {
	c.mu.RLock()
	options := c.options
	c.mu.RUnlock()

	request := buildRequest(options, messages, tools)

	var turn AssistantTurn
	attempts, err := c.policy.Do(ctx, func(ctx context.Context, attempt int) error {
		response, err := c.client.ChatCompletions(ctx, request)
		if err != nil {
			var apiErr *APIError
			if errors.As(err, &apiErr) && apiErr.Permanent() {
				return Permanent(err)
			}
			return err
		}

		decoded, err := DecodeAssistantTurn(response)
		if err != nil {
			return err
		}
		turn = decoded
		return nil
	}, func(attempt int, err error, wait time.Duration) {
		c.logger.Error("Completion attempt failed, retrying", err, "attempt", attempt, "wait", wait.String(), "model", request.Model)
	})
	if err != nil {
		c.logger.Error("Completion call failed", err, "attempts", attempts, "model", request.Model)
		return nil, &LLMCallError{Attempts: attempts, Err: err}
	}

	return turn, nil
}

func buildRequest(options CompletionOptions, messages []Message, tools []ChatCompletionTool) CreateChatCompletionRequest {
	history := make([]Message, len(messages))
	copy(history, messages)

	request := CreateChatCompletionRequest{
		Model:       options.Model,
		Messages:    history,
		Temperature: float64Ptr(options.Temperature),
	}
	if options.MaxTokens > 0 {
		request.MaxTokens = intPtr(options.MaxTokens)
	}
	if len(tools) > 0 {
		declared := make([]ChatCompletionTool, len(tools))
		copy(declared, tools)
		request.Tools = &declared
		request.ToolChoice = stringPtr(ToolChoiceAuto)
	}
	return request
}
