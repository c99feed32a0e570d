package chat_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/inference-gateway/groq-mcp-client/agent"
	"github.com/inference-gateway/groq-mcp-client/chat"
	"github.com/inference-gateway/groq-mcp-client/logger"
	"github.com/inference-gateway/groq-mcp-client/mcp"
	"github.com/inference-gateway/groq-mcp-client/mocks"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected chat.Command
		ok       bool
	}{
		{input: "/quit", expected: chat.Command{Name: "quit"}, ok: true},
		{input: "/QUIT", expected: chat.Command{Name: "quit"}, ok: true},
		{input: "/model llama-3.1-8b-instant", expected: chat.Command{Name: "model", Argument: "llama-3.1-8b-instant"}, ok: true},
		{input: "/model   spaced  ", expected: chat.Command{Name: "model", Argument: "spaced"}, ok: true},
		{input: "/", expected: chat.Command{Name: ""}, ok: true},
		{input: "list my tables", ok: false},
		{input: " /quit", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, ok := chat.ParseCommand(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, cmd)
		})
	}
}

func newSession(t *testing.T, input string) (*chat.Session, *mocks.MockAgent, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAgent := mocks.NewMockAgent(ctrl)
	mockAgent.EXPECT().Model().Return("llama-3.3-70b-versatile").AnyTimes()

	out := &bytes.Buffer{}
	return chat.NewSession(mockAgent, strings.NewReader(input), out, logger.NewNoOpLogger()), mockAgent, out
}

func TestSession_AnswersQueriesAndKeepsTranscript(t *testing.T) {
	session, mockAgent, out := newSession(t, "hello\n\n   \nlist my tables\n/quit\nnever read\n")

	gomock.InOrder(
		mockAgent.EXPECT().ProcessQuery(gomock.Any(), agent.Conversation{}, "hello").
			Return(agent.Conversation{}.With("hello", "Hi there!"), agent.Reply{Text: "Hi there!", Answered: true}, nil),
		mockAgent.EXPECT().ProcessQuery(gomock.Any(), agent.Conversation{}.With("hello", "Hi there!"), "list my tables").
			DoAndReturn(func(ctx context.Context, conv agent.Conversation, query string) (agent.Conversation, agent.Reply, error) {
				reply := "You have two tables: users and orders."
				return conv.With(query, reply), agent.Reply{Text: reply, Answered: true}, nil
			}),
	)

	require.NoError(t, session.Run(context.Background()))

	assert.Contains(t, out.String(), "Welcome to Groq MCP Client!")
	assert.Contains(t, out.String(), "\nHi there!\n")
	assert.Contains(t, out.String(), "\nYou have two tables: users and orders.\n")
	assert.Equal(t, 4, session.Conversation().Len())
}

func TestSession_QueryErrorIsPrintedAndNotRecorded(t *testing.T) {
	session, mockAgent, out := newSession(t, "list my tables\n")

	mockAgent.EXPECT().ProcessQuery(gomock.Any(), gomock.Any(), "list my tables").
		Return(agent.Conversation{}, agent.Reply{}, &agent.QueryError{Stage: agent.StageListTools, Err: mcp.ErrNotInitialized})

	require.NoError(t, session.Run(context.Background()))

	assert.Contains(t, out.String(), "Error processing query: list_tools failed: mcp session is not initialized")
	assert.Equal(t, 0, session.Conversation().Len())
}

func TestSession_Commands(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		setupMocks func(*mocks.MockAgent)
		contains   []string
	}{
		{
			name:  "model switches the completion model",
			input: "/model llama-3.1-8b-instant\n",
			setupMocks: func(ma *mocks.MockAgent) {
				ma.EXPECT().SetModel("llama-3.1-8b-instant")
			},
		},
		{
			name:  "model without a name changes nothing",
			input: "/model\n",
			setupMocks: func(ma *mocks.MockAgent) {
				ma.EXPECT().SetModel(gomock.Any()).Times(0)
			},
		},
		{
			name:     "help lists the commands",
			input:    "/help\n",
			contains: []string{"/quit", "/model <name>", "/clear", "/tools"},
		},
		{
			name:  "tools are listed with descriptions",
			input: "/tools\n",
			setupMocks: func(ma *mocks.MockAgent) {
				ma.EXPECT().Tools(gomock.Any()).Return([]mcp.ToolDescriptor{
					{Name: "list_tables", Description: "List all tables in the database."},
					{Name: "describe_database"},
				}, nil)
			},
			contains: []string{"Available tools:", "  list_tables - List all tables in the database.\n", "  describe_database\n"},
		},
		{
			name:  "empty tool list",
			input: "/tools\n",
			setupMocks: func(ma *mocks.MockAgent) {
				ma.EXPECT().Tools(gomock.Any()).Return(nil, nil)
			},
			contains: []string{"The server offers no tools."},
		},
		{
			name:  "tool listing failure keeps the loop alive",
			input: "/tools\n/help\n",
			setupMocks: func(ma *mocks.MockAgent) {
				ma.EXPECT().Tools(gomock.Any()).Return(nil, errors.New("broken pipe"))
			},
			contains: []string{"Available commands:"},
		},
		{
			name:     "unknown commands are not sent to the model",
			input:    "/frobnicate\n/help\n",
			contains: []string{"Available commands:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, mockAgent, out := newSession(t, tt.input)
			mockAgent.EXPECT().ProcessQuery(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			if tt.setupMocks != nil {
				tt.setupMocks(mockAgent)
			}

			require.NoError(t, session.Run(context.Background()))
			for _, want := range tt.contains {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestSession_ClearEmptiesTranscript(t *testing.T) {
	session, mockAgent, _ := newSession(t, "hello\n/clear\nagain\n")

	gomock.InOrder(
		mockAgent.EXPECT().ProcessQuery(gomock.Any(), agent.Conversation{}, "hello").
			Return(agent.Conversation{}.With("hello", "Hi"), agent.Reply{Text: "Hi"}, nil),
		mockAgent.EXPECT().ProcessQuery(gomock.Any(), agent.Conversation{}, "again").
			Return(agent.Conversation{}.With("again", "Hi again"), agent.Reply{Text: "Hi again"}, nil),
	)

	require.NoError(t, session.Run(context.Background()))
	assert.Equal(t, 2, session.Conversation().Len())
}

func TestSession_ReturnsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAgent := mocks.NewMockAgent(ctrl)
	mockAgent.EXPECT().Model().Return("llama-3.3-70b-versatile").AnyTimes()

	reader, writer := io.Pipe()
	t.Cleanup(func() { _ = writer.Close() })

	session := chat.NewSession(mockAgent, reader, io.Discard, logger.NewNoOpLogger())
	testboil.ReturnsOnContextCancel(t, func(ctx context.Context) {
		_ = session.Run(ctx)
	}, time.Second)
}

func TestSession_AbandonsQueryOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAgent := mocks.NewMockAgent(ctrl)
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	mockAgent.EXPECT().ProcessQuery(gomock.Any(), gomock.Any(), "slow question").
		DoAndReturn(func(ctx context.Context, conv agent.Conversation, query string) (agent.Conversation, agent.Reply, error) {
			<-release
			return conv.With(query, "late"), agent.Reply{Text: "late"}, nil
		})

	session := chat.NewSession(mockAgent, strings.NewReader(""), io.Discard, logger.NewNoOpLogger())
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	assert.False(t, session.Handle(ctx, "slow question"))
	assert.Equal(t, 0, session.Conversation().Len())
}

func TestSession_InterruptedQueryEndsLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAgent := mocks.NewMockAgent(ctrl)
	mockAgent.EXPECT().Model().Return("llama-3.3-70b-versatile").AnyTimes()
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithCancel(context.Background())
	mockAgent.EXPECT().ProcessQuery(gomock.Any(), gomock.Any(), "slow question").
		DoAndReturn(func(context.Context, agent.Conversation, string) (agent.Conversation, agent.Reply, error) {
			cancel()
			<-release
			return agent.Conversation{}, agent.Reply{}, nil
		})

	out := &bytes.Buffer{}
	session := chat.NewSession(mockAgent, strings.NewReader("slow question\n"), out, logger.NewNoOpLogger())

	require.NoError(t, session.Run(ctx))
	assert.Equal(t, 1, strings.Count(out.String(), "Query: "))
	assert.Equal(t, 0, session.Conversation().Len())
}

func TestSession_WarningsAreLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAgent := mocks.NewMockAgent(ctrl)
	mockAgent.EXPECT().Model().Return("llama-3.3-70b-versatile").AnyTimes()
	mockAgent.EXPECT().SetModel(gomock.Any()).Times(0)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	gomock.InOrder(
		mockLogger.EXPECT().Warn("No model specified"),
		mockLogger.EXPECT().Warn("Unknown command", "command", "frobnicate"),
	)

	session := chat.NewSession(mockAgent, strings.NewReader("/model\n/frobnicate\n"), io.Discard, mockLogger)
	require.NoError(t, session.Run(context.Background()))
}

func TestSession_CommandNoticesStayOffTheReplyStream(t *testing.T) {
	session, mockAgent, out := newSession(t, "hello\n/model llama-3.1-8b-instant\n/clear\n")

	mockAgent.EXPECT().ProcessQuery(gomock.Any(), agent.Conversation{}, "hello").
		Return(agent.Conversation{}.With("hello", "Hi"), agent.Reply{Text: "Hi"}, nil)
	mockAgent.EXPECT().SetModel("llama-3.1-8b-instant")

	require.NoError(t, session.Run(context.Background()))

	assert.Equal(t, 0, session.Conversation().Len())
	assert.NotContains(t, out.String(), "model changed")
	assert.NotContains(t, out.String(), "history cleared")
}
