package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"

	mcpgolang "github.com/metoro-io/mcp-golang"
	"github.com/metoro-io/mcp-golang/transport/stdio"

	"github.com/inference-gateway/groq-mcp-client/logger"
)

// ErrNotInitialized is returned when the session is used before Connect
var ErrNotInitialized = errors.New("mcp session is not initialized")

// shutdownGrace is how long the server process may take to exit after its
// stdin is closed
const shutdownGrace = 3 * time.Second

// Client is the MCP session as seen by the orchestrator
//
//go:generate mockgen -source=client.go -destination=../mocks/mcp_client.go -package=mocks
type Client interface {
	// ListTools returns the tools currently advertised by the server
	ListTools(ctx context.Context) ([]ToolDescriptor, error)

	// CallTool invokes a tool by name with already decoded arguments
	CallTool(ctx context.Context, name string, arguments map[string]interface{}) (*CallToolResult, error)

	// Close terminates the session
	Close() error
}

// toolSession is the subset of the mcp-golang client used here
type toolSession interface {
	Initialize(ctx context.Context) (*mcpgolang.InitializeResponse, error)
	ListTools(ctx context.Context, cursor *string) (*mcpgolang.ToolsResponse, error)
	CallTool(ctx context.Context, name string, arguments any) (*mcpgolang.ToolResponse, error)
}

// StdioClient runs an MCP server as a child process and talks JSON-RPC over
// its stdin and stdout
type StdioClient struct {
	Params      ServerParams
	Logger      logger.Logger
	InitTimeout time.Duration

	cmd         *exec.Cmd
	stdin       io.WriteCloser
	transport   *stdio.StdioServerTransport
	session     toolSession
	initialized bool
}

var _ Client = (*StdioClient)(nil)

// NewStdioClient creates a client for the given server, call Connect before use
func NewStdioClient(params ServerParams, initTimeout time.Duration, logger logger.Logger) *StdioClient {
	return &StdioClient{
		Params:      params,
		Logger:      logger,
		InitTimeout: initTimeout,
	}
}

// Connect starts the server process and performs the initialize handshake
func (c *StdioClient) Connect(ctx context.Context) error {
	if c.Params.Command == "" {
		return errors.New("no MCP server command configured")
	}

	c.Logger.Info("Connecting to MCP server", "command", c.Params.Command, "args", c.Params.Args)

	cmd := exec.Command(c.Params.Command, c.Params.Args...)
	cmd.Env = mergeEnv(os.Environ(), c.Params.Env)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("failed to open server stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to open server stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start MCP server: %w", err)
	}

	c.cmd = cmd
	c.stdin = stdin
	c.transport = stdio.NewStdioServerTransportWithIO(stdout, stdin)

	if err := c.initialize(ctx, mcpgolang.NewClient(c.transport)); err != nil {
		c.Logger.Error("Failed to connect to MCP server", err)
		_ = c.Close()
		return err
	}

	tools, err := c.ListTools(ctx)
	if err != nil {
		c.Logger.Error("Failed to list tools after connecting", err)
		_ = c.Close()
		return err
	}

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	c.Logger.Info("Connected to MCP server", "tools", names)
	return nil
}

func (c *StdioClient) initialize(ctx context.Context, session toolSession) error {
	if c.InitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.InitTimeout)
		defer cancel()
	}

	if _, err := session.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize MCP session: %w", err)
	}

	c.session = session
	c.initialized = true
	return nil
}

// IsInitialized returns whether the handshake completed
func (c *StdioClient) IsInitialized() bool {
	return c.initialized
}

// ListTools fetches every page of the server's tool list
func (c *StdioClient) ListTools(ctx context.Context) ([]ToolDescriptor, error) {
	if !c.initialized {
		return nil, ErrNotInitialized
	}

	var (
		tools  []ToolDescriptor
		cursor *string
	)
	for {
		response, err := c.session.ListTools(ctx, cursor)
		if err != nil {
			return nil, fmt.Errorf("failed to list tools: %w", err)
		}
		if response == nil {
			break
		}

		for _, tool := range response.Tools {
			descriptor := ToolDescriptor{
				Name:        tool.Name,
				InputSchema: tool.InputSchema,
			}
			if tool.Description != nil {
				descriptor.Description = *tool.Description
			}
			tools = append(tools, descriptor)
		}

		if response.NextCursor == nil || *response.NextCursor == "" {
			break
		}
		cursor = response.NextCursor
	}

	return tools, nil
}

// CallTool invokes the named tool, errors raised by the server are returned as is
func (c *StdioClient) CallTool(ctx context.Context, name string, arguments map[string]interface{}) (*CallToolResult, error) {
	if !c.initialized {
		return nil, ErrNotInitialized
	}
	if arguments == nil {
		arguments = map[string]interface{}{}
	}

	response, err := c.session.CallTool(ctx, name, arguments)
	if err != nil {
		return nil, fmt.Errorf("tool execution error: %w", err)
	}

	return &CallToolResult{Content: contentValue(response)}, nil
}

// Close stops the transport and waits for the server process to exit
func (c *StdioClient) Close() error {
	c.initialized = false

	var errs []error
	if c.transport != nil {
		if err := c.transport.Close(); err != nil {
			errs = append(errs, err)
		}
		c.transport = nil
	}
	if c.stdin != nil {
		_ = c.stdin.Close()
		c.stdin = nil
	}
	if c.cmd != nil && c.cmd.Process != nil {
		done := make(chan error, 1)
		go func() { done <- c.cmd.Wait() }()

		select {
		case <-done:
		case <-time.After(shutdownGrace):
			c.Logger.Info("MCP server did not exit in time, killing it", "pid", c.cmd.Process.Pid)
			if err := c.cmd.Process.Kill(); err != nil {
				errs = append(errs, err)
			}
			<-done
		}
		c.cmd = nil
	}

	return errors.Join(errs...)
}

// contentValue flattens a tool response. Text-only responses become a single
// string, anything else keeps one map per content item.
func contentValue(response *mcpgolang.ToolResponse) interface{} {
	if response == nil || len(response.Content) == 0 {
		return ""
	}

	texts := make([]string, 0, len(response.Content))
	textOnly := true
	for _, content := range response.Content {
		if content == nil || content.TextContent == nil {
			textOnly = false
			break
		}
		texts = append(texts, content.TextContent.Text)
	}
	if textOnly {
		return strings.Join(texts, "\n")
	}

	items := make([]map[string]interface{}, 0, len(response.Content))
	for _, content := range response.Content {
		if content == nil {
			continue
		}
		item := map[string]interface{}{
			"type": string(content.Type),
		}
		if content.TextContent != nil {
			item["type"] = "text"
			item["text"] = content.TextContent.Text
		}
		if content.ImageContent != nil {
			item["type"] = "image"
			item["mimeType"] = content.ImageContent.MimeType
			item["data"] = content.ImageContent.Data
		}
		items = append(items, item)
	}
	return items
}

func mergeEnv(base []string, extra map[string]string) []string {
	if len(extra) == 0 {
		return base
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(base)+len(extra))
	for _, kv := range base {
		name, _, _ := strings.Cut(kv, "=")
		if _, overridden := extra[name]; overridden {
			continue
		}
		env = append(env, kv)
	}
	for _, k := range keys {
		env = append(env, k+"="+extra[k])
	}
	return env
}
