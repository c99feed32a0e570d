package providers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-gateway/groq-mcp-client/logger"
	"github.com/inference-gateway/groq-mcp-client/providers"
)

func TestGroqClient_ChatCompletions(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, providers.GroqChatCompletionsURI, r.URL.Path)
		assert.Equal(t, "Bearer groq123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "llama-3.3-70b-versatile",
			"choices": [{
				"index": 0,
				"message": {
					"role": "assistant",
					"content": null,
					"tool_calls": [{"id": "call_1", "type": "function", "function": {"name": "list_tables", "arguments": "{}"}}]
				},
				"finish_reason": "tool_calls"
			}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	}))
	defer server.Close()

	client := providers.NewGroqClient(server.URL+"/", "groq123", 5*time.Second, logger.NewNoOpLogger())

	tools := []providers.ChatCompletionTool{{
		Type:     providers.ChatCompletionToolTypeFunction,
		Function: providers.FunctionObject{Name: "list_tables"},
	}}
	auto := providers.ToolChoiceAuto
	maxTokens := 1024
	response, err := client.ChatCompletions(context.Background(), providers.CreateChatCompletionRequest{
		Model:      "llama-3.3-70b-versatile",
		Messages:   []providers.Message{providers.NewUserMessage("list my tables")},
		MaxTokens:  &maxTokens,
		Tools:      &tools,
		ToolChoice: &auto,
	})
	require.NoError(t, err)

	assert.Equal(t, "chatcmpl-1", response.ID)
	require.Len(t, response.Choices, 1)
	assert.Nil(t, response.Choices[0].Message.Content)
	require.NotNil(t, response.Choices[0].Message.ToolCalls)
	assert.Equal(t, "list_tables", (*response.Choices[0].Message.ToolCalls)[0].Function.Name)
	require.NotNil(t, response.Usage)
	assert.Equal(t, int64(15), response.Usage.TotalTokens)

	assert.Equal(t, "llama-3.3-70b-versatile", received["model"])
	assert.Equal(t, "auto", received["tool_choice"])
	assert.Equal(t, float64(1024), received["max_tokens"])
	messages := received["messages"].([]interface{})
	require.Len(t, messages, 1)
	assert.Equal(t, map[string]interface{}{"role": "user", "content": "list my tables"}, messages[0])
}

func TestGroqClient_ErrorStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		permanent bool
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, permanent: true},
		{name: "bad request", status: http.StatusBadRequest, permanent: true},
		{name: "rate limited", status: http.StatusTooManyRequests, permanent: false},
		{name: "server error", status: http.StatusBadGateway, permanent: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":{"message":"nope"}}`))
			}))
			defer server.Close()

			client := providers.NewGroqClient(server.URL, "k", time.Second, logger.NewNoOpLogger())
			_, err := client.ChatCompletions(context.Background(), providers.CreateChatCompletionRequest{Model: "m"})

			var apiErr *providers.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Contains(t, apiErr.Body, "nope")
			assert.Equal(t, tt.permanent, apiErr.Permanent())
		})
	}
}

func TestGroqClient_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": [`))
	}))
	defer server.Close()

	client := providers.NewGroqClient(server.URL, "k", time.Second, logger.NewNoOpLogger())
	_, err := client.ChatCompletions(context.Background(), providers.CreateChatCompletionRequest{Model: "m"})

	assert.ErrorIs(t, err, providers.ErrMalformedResponse)
}

func TestGroqClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := providers.NewGroqClient(url, "k", time.Second, logger.NewNoOpLogger())
	_, err := client.ChatCompletions(context.Background(), providers.CreateChatCompletionRequest{Model: "m"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send request")
}
