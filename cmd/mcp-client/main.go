package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sethvargo/go-envconfig"

	agent "github.com/inference-gateway/groq-mcp-client/agent"
	api "github.com/inference-gateway/groq-mcp-client/api"
	middlewares "github.com/inference-gateway/groq-mcp-client/api/middlewares"
	chat "github.com/inference-gateway/groq-mcp-client/chat"
	config "github.com/inference-gateway/groq-mcp-client/config"
	l "github.com/inference-gateway/groq-mcp-client/logger"
	mcp "github.com/inference-gateway/groq-mcp-client/mcp"
	otel "github.com/inference-gateway/groq-mcp-client/otel"
	providers "github.com/inference-gateway/groq-mcp-client/providers"
)

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <path_to_server_script|server.yaml>\n", os.Args[0])
		return 1
	}

	var config config.Config
	cfg, err := config.Load(envconfig.OsLookuper())
	if err != nil {
		log.Printf("Config load error: %v", err)
		return 1
	}
	if err := cfg.ValidateClient(); err != nil {
		log.Printf("Config error: %v", err)
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

	params, err := mcp.ResolveServerParams(os.Args[1])
	if err != nil {
		logger.Error("Invalid MCP server", err)
		return 1
	}

	client := mcp.NewStdioClient(params, cfg.MCP.InitTimeout, logger)
	if err := client.Connect(ctx); err != nil {
		logger.Error("Fatal error", err)
		return 1
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Error("Failed to close MCP session", err)
		}
	}()

	var telemetry otel.Telemetry = otel.NoopTelemetry{}
	var metrics http.Handler
	if cfg.EnableTelemetry {
		otelImpl := &otel.OpenTelemetryImpl{}
		if err := otelImpl.Init(cfg); err != nil {
			logger.Error("OpenTelemetry init error", err)
			return 1
		}
		defer func() { _ = otelImpl.Shutdown(context.Background()) }()
		telemetry = otelImpl
		metrics = otelImpl.Handler()
	}

	groq := providers.NewGroqClient(cfg.Groq.URL, cfg.Groq.APIKey, cfg.Groq.Timeout, logger)
	caller := providers.NewCompletionCaller(groq, retryPolicy(cfg.Retry), providers.CompletionOptions{
		Model:       cfg.Groq.Model,
		MaxTokens:   cfg.Groq.MaxTokens,
		Temperature: cfg.Groq.Temperature,
	}, logger)
	a := agent.NewAgent(logger, client, caller, telemetry)

	if cfg.EnableTelemetry {
		server, err := startOpsServer(cfg, logger, a, metrics)
		if err != nil {
			logger.Error("Failed to start telemetry server", err)
			return 1
		}
		defer func() {
			ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(ctxShutdown); err != nil {
				logger.Error("Server Shutdown error", err)
			}
		}()
	}

	session := chat.NewSession(a, os.Stdin, os.Stdout, logger)
	if err := session.Run(ctx); err != nil {
		logger.Error("Chat loop failed", err)
		return 1
	}
	return 0
}

func retryPolicy(cfg *config.RetryConfig) providers.RetryPolicy {
	if cfg == nil {
		return providers.DefaultRetryPolicy()
	}
	return providers.RetryPolicy{
		MaxAttempts: cfg.MaxAttempts,
		WaitMin:     cfg.WaitMin,
		WaitMax:     cfg.WaitMax,
		Multiplier:  cfg.Multiplier,
	}
}

func startOpsServer(cfg config.Config, logger l.Logger, a agent.Agent, metrics http.Handler) (*http.Server, error) {
	gin.SetMode(gin.ReleaseMode)

	loggerMiddleware, err := middlewares.NewLoggerMiddleware(logger)
	if err != nil {
		return nil, err
	}

	router := api.NewRouter(cfg, logger, a)
	server := &http.Server{
		Addr:              cfg.Telemetry.Address,
		Handler:           api.NewEngine(router, metrics, loggerMiddleware.Middleware()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Serving metrics", "address", cfg.Telemetry.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("ListenAndServe error", err)
		}
	}()
	return server, nil
}
