package mcp

import (
	"github.com/inference-gateway/groq-mcp-client/providers"
)

// ConvertTools maps MCP tool descriptors onto function declarations, one per
// descriptor and in the same order. Schemas are passed through untouched.
func ConvertTools(tools []ToolDescriptor) []providers.ChatCompletionTool {
	converted := make([]providers.ChatCompletionTool, 0, len(tools))
	for _, tool := range tools {
		function := providers.FunctionObject{
			Name:       tool.Name,
			Parameters: tool.InputSchema,
		}
		if tool.Description != "" {
			description := tool.Description
			function.Description = &description
		}
		converted = append(converted, providers.ChatCompletionTool{
			Type:     providers.ChatCompletionToolTypeFunction,
			Function: function,
		})
	}
	return converted
}
