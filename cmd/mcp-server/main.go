package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	mcpgolang "github.com/metoro-io/mcp-golang"
	"github.com/metoro-io/mcp-golang/transport/stdio"
	"github.com/sethvargo/go-envconfig"

	config "github.com/inference-gateway/groq-mcp-client/config"
	dbtools "github.com/inference-gateway/groq-mcp-client/dbtools"
	l "github.com/inference-gateway/groq-mcp-client/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	var config config.Config
	cfg, err := config.Load(envconfig.OsLookuper())
	if err != nil {
		log.Printf("Config load error: %v", err)
		return 1
	}

	var logger l.Logger
	logger, err = l.NewLogger(cfg.Environment)
	if err != nil {
		log.Printf("Logger init error: %v", err)
		return 1
	}
	if zapLogger, ok := logger.(*l.LoggerZapImpl); ok {
		defer zapLogger.Sync()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	db, dialect, err := dbtools.Open(pingCtx, cfg.Database)
	cancel()
	if err != nil {
		logger.Error("Failed to start MCP server", err, "driver", cfg.Database.Driver)
		return 1
	}
	defer db.Close()
	logger.Info("Successfully connected to database", "driver", cfg.Database.Driver)

	stdin := newEOFReader(os.Stdin)
	server := mcpgolang.NewServer(stdio.NewStdioServerTransportWithIO(stdin, os.Stdout))
	svc := dbtools.NewService(db, dialect, cfg.Database.Name, logger)
	if err := dbtools.Register(server, svc); err != nil {
		logger.Error("Failed to register tools", err)
		return 1
	}

	logger.Info("Starting database MCP server")
	if err := server.Serve(); err != nil {
		logger.Error("Failed to start MCP server", err)
		return 1
	}

	select {
	case <-ctx.Done():
	case <-stdin.done:
		logger.Debug("Client closed stdin")
	}
	logger.Info("Shutting down MCP server")
	return 0
}

// eofReader signals done once the client closes its end of the pipe
type eofReader struct {
	r    io.Reader
	once sync.Once
	done chan struct{}
}

func newEOFReader(r io.Reader) *eofReader {
	return &eofReader{r: r, done: make(chan struct{})}
}

func (e *eofReader) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if err != nil {
		e.once.Do(func() { close(e.done) })
	}
	return n, err
}
