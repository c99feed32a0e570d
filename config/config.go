package config

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Supported database drivers for the tool server
const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverSQLite   = "sqlite"
)

// ErrMissingAPIKey is returned when the Groq API key is not configured
var ErrMissingAPIKey = errors.New("GROQ_API_KEY environment variable is not set")

// Config holds the configuration shared by the client and the tool server.
//
//go:generate go run ../cmd/generate/main.go -type=Env -output=../.env.example
//go:generate go run ../cmd/generate/main.go -type=MD -output=../Configurations.md
type Config struct {
	// General settings
	ApplicationName string `env:"APPLICATION_NAME, default=groq-mcp-client" description:"The name of the application"`
	Environment     string `env:"ENVIRONMENT, default=production" description:"The environment"`
	EnableTelemetry bool   `env:"ENABLE_TELEMETRY, default=false" description:"Enable telemetry"`

	// Groq settings
	Groq *GroqConfig `env:", prefix=GROQ_" description:"Groq configuration"`

	// Retry settings for completion calls
	Retry *RetryConfig `env:", prefix=RETRY_" description:"Retry configuration"`

	// MCP session settings
	MCP *MCPConfig `env:", prefix=MCP_" description:"MCP configuration"`

	// Telemetry settings
	Telemetry *TelemetryConfig `env:", prefix=TELEMETRY_" description:"Telemetry configuration"`

	// Database settings, only read by the tool server
	Database *DatabaseConfig `env:", prefix=DATABASE_" description:"Database configuration"`
}

// Groq configuration
type GroqConfig struct {
	APIKey      string        `env:"API_KEY" type:"secret" description:"Groq API key"`
	URL         string        `env:"API_URL, default=https://api.groq.com" description:"Groq API base URL"`
	Model       string        `env:"MODEL, default=llama-3.3-70b-versatile" description:"Chat completion model"`
	MaxTokens   int           `env:"MAX_TOKENS, default=1024" description:"Maximum tokens per completion"`
	Temperature float64       `env:"TEMPERATURE, default=0.7" description:"Sampling temperature"`
	Timeout     time.Duration `env:"TIMEOUT, default=60s" description:"HTTP timeout per completion attempt"`
}

// Retry configuration
type RetryConfig struct {
	MaxAttempts int           `env:"MAX_ATTEMPTS, default=3" description:"Total completion attempts"`
	WaitMin     time.Duration `env:"WAIT_MIN, default=1s" description:"Lower bound of the backoff delay"`
	WaitMax     time.Duration `env:"WAIT_MAX, default=10s" description:"Upper bound of the backoff delay"`
	Multiplier  float64       `env:"MULTIPLIER, default=2" description:"Backoff growth factor"`
}

// MCP configuration
type MCPConfig struct {
	InitTimeout time.Duration `env:"INIT_TIMEOUT, default=30s" description:"Timeout for the MCP initialize handshake"`
}

// Telemetry configuration
type TelemetryConfig struct {
	Address string `env:"ADDRESS, default=127.0.0.1:9464" description:"Listen address of the metrics endpoint"`
}

// Database configuration
type DatabaseConfig struct {
	Driver   string `env:"DRIVER, default=postgres" description:"Database driver, postgres or sqlite"`
	URL      string `env:"URL" type:"secret" description:"Connection string, overrides the individual settings"`
	Host     string `env:"HOST, default=localhost" description:"Database host"`
	Port     string `env:"PORT, default=5432" description:"Database port"`
	Name     string `env:"NAME, default=postgres" description:"Database name"`
	User     string `env:"USER, default=postgres" description:"Database user"`
	Password string `env:"PASSWORD, default=postgres" type:"secret" description:"Database password"`
}

// Load configuration
func (cfg *Config) Load(lookuper envconfig.Lookuper) (Config, error) {
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   cfg,
		Lookuper: lookuper,
	}); err != nil {
		return Config{}, err
	}

	return *cfg, nil
}

// ValidateClient checks the settings the chat client cannot run without
func (cfg *Config) ValidateClient() error {
	if cfg.Groq == nil || cfg.Groq.APIKey == "" {
		return ErrMissingAPIKey
	}
	if cfg.Retry != nil {
		if cfg.Retry.MaxAttempts < 1 {
			return fmt.Errorf("RETRY_MAX_ATTEMPTS must be at least 1, got %d", cfg.Retry.MaxAttempts)
		}
		if cfg.Retry.WaitMin > cfg.Retry.WaitMax {
			return fmt.Errorf("RETRY_WAIT_MIN (%s) exceeds RETRY_WAIT_MAX (%s)", cfg.Retry.WaitMin, cfg.Retry.WaitMax)
		}
	}
	return nil
}

// DSN returns the data source name for the configured driver
func (d *DatabaseConfig) DSN() (string, error) {
	if d.URL != "" {
		return d.URL, nil
	}

	switch d.Driver {
	case DatabaseDriverPostgres:
		if d.Host == "" || d.Name == "" || d.User == "" {
			return "", errors.New("database connection details not provided, set DATABASE_URL or DATABASE_HOST, DATABASE_NAME, DATABASE_USER and DATABASE_PASSWORD")
		}
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(d.User, d.Password),
			Host:   net.JoinHostPort(d.Host, d.Port),
			Path:   "/" + d.Name,
		}
		return u.String(), nil
	case DatabaseDriverSQLite:
		if d.Name == "" {
			return "", errors.New("DATABASE_NAME must name the sqlite file")
		}
		return d.Name, nil
	default:
		return "", fmt.Errorf("unsupported database driver: %s", d.Driver)
	}
}
