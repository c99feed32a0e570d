package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/inference-gateway/groq-mcp-client/logger"
)

// maxErrorBody caps how much of an error response body is kept
const maxErrorBody = 4096

// ChatCompleter performs a single chat completion round trip
//
//go:generate mockgen -source=groq.go -destination=../mocks/chat_completer.go -package=mocks
type ChatCompleter interface {
	ChatCompletions(ctx context.Context, request CreateChatCompletionRequest) (CreateChatCompletionResponse, error)
}

// APIError is a non-2xx answer from the provider
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API returned status %d: %s", GroqDisplayName, e.StatusCode, e.Body)
}

// Permanent reports whether repeating the request cannot succeed. Rate limits,
// timeouts and server errors are transient; malformed or unauthorized
// requests are not.
func (e *APIError) Permanent() bool {
	switch e.StatusCode {
	case http.StatusBadRequest,
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusUnprocessableEntity:
		return true
	default:
		return false
	}
}

// GroqClient talks to the OpenAI compatible chat completions endpoint of Groq
type GroqClient struct {
	URL        string
	Token      string
	HTTPClient *http.Client
	Logger     logger.Logger
}

var _ ChatCompleter = (*GroqClient)(nil)

// NewGroqClient creates a client for the given base URL
func NewGroqClient(baseURL, token string, timeout time.Duration, logger logger.Logger) *GroqClient {
	if baseURL == "" {
		baseURL = GroqDefaultBaseURL
	}
	return &GroqClient{
		URL:        strings.TrimRight(baseURL, "/"),
		Token:      token,
		HTTPClient: &http.Client{Timeout: timeout},
		Logger:     logger,
	}
}

// ChatCompletions sends the request and decodes the response body
func (c *GroqClient) ChatCompletions(ctx context.Context, request CreateChatCompletionRequest) (CreateChatCompletionResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return CreateChatCompletionResponse{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	c.Logger.Debug("Sending chat completion request", "provider", GroqID, "model", request.Model, "messages", len(request.Messages))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL+GroqChatCompletionsURI, bytes.NewReader(body))
	if err != nil {
		return CreateChatCompletionResponse{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return CreateChatCompletionResponse{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return CreateChatCompletionResponse{}, &APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(errBody)),
		}
	}

	var response CreateChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return CreateChatCompletionResponse{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	c.Logger.Debug("Received chat completion response", "provider", GroqID, "id", response.ID, "choices", len(response.Choices))
	return response, nil
}
