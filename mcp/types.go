package mcp

// ToolDescriptor is a tool advertised by the MCP server
type ToolDescriptor struct {
	Name        string
	Description string
	InputSchema interface{}
}

// CallToolResult is the outcome of a tool invocation. Content is a string when
// the server answered with text only, otherwise a structured rendering of the
// content items.
type CallToolResult struct {
	Content interface{}
}

// ServerParams describes how to launch an MCP server speaking stdio
type ServerParams struct {
	Command string            `yaml:"command"`
	Args    []string          `yaml:"args"`
	Env     map[string]string `yaml:"env"`
}
