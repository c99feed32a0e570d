package dbtools

import (
	"context"
	"fmt"

	mcpgolang "github.com/metoro-io/mcp-golang"
)

// Tool names exposed by the server
const (
	ToolListTables       = "list_tables"
	ToolGetTableSchema   = "get_table_schema"
	ToolExecuteQuery     = "execute_query"
	ToolDescribeDatabase = "describe_database"
)

type NoArguments struct{}

type TableSchemaArguments struct {
	TableName string `json:"table_name" jsonschema:"required,description=The name of the table to get the schema for"`
}

type ExecuteQueryArguments struct {
	SQL string `json:"sql" jsonschema:"required,description=The SQL query to execute"`
}

type tool struct {
	name        string
	description string
	handler     interface{}
}

// tools binds the service methods to MCP handlers. Each handler runs under
// the context of the request it serves.
func tools(svc *Service) []tool {
	return []tool{
		{
			name:        ToolListTables,
			description: "List all available tables in the database. Returns a JSON-encoded list of table names.",
			handler: func(ctx context.Context, args NoArguments) (*mcpgolang.ToolResponse, error) {
				return textResponse(svc.ListTables(ctx)), nil
			},
		},
		{
			name:        ToolGetTableSchema,
			description: "Get the schema for a specific table: its columns and primary keys, JSON-encoded.",
			handler: func(ctx context.Context, args TableSchemaArguments) (*mcpgolang.ToolResponse, error) {
				return textResponse(svc.GetTableSchema(ctx, args.TableName)), nil
			},
		},
		{
			name:        ToolExecuteQuery,
			description: "Execute a read-only SQL query against the database. Returns the rows JSON-encoded.",
			handler: func(ctx context.Context, args ExecuteQueryArguments) (*mcpgolang.ToolResponse, error) {
				return textResponse(svc.ExecuteQuery(ctx, args.SQL)), nil
			},
		},
		{
			name:        ToolDescribeDatabase,
			description: "Get a high-level description of the database including tables, row counts and columns.",
			handler: func(ctx context.Context, args NoArguments) (*mcpgolang.ToolResponse, error) {
				return textResponse(svc.DescribeDatabase(ctx)), nil
			},
		},
	}
}

// Register exposes the service's tools on an MCP server
func Register(server *mcpgolang.Server, svc *Service) error {
	for _, tool := range tools(svc) {
		if err := server.RegisterTool(tool.name, tool.description, tool.handler); err != nil {
			return fmt.Errorf("failed to register tool %s: %w", tool.name, err)
		}
	}
	return nil
}

func textResponse(text string) *mcpgolang.ToolResponse {
	return mcpgolang.NewToolResponse(mcpgolang.NewTextContent(text))
}
