package mdgen_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-gateway/groq-mcp-client/config"
	"github.com/inference-gateway/groq-mcp-client/internal/mdgen"
)

type sampleConfig struct {
	Name   string       `env:"NAME, default=demo" description:"The name"`
	Hidden string       // not configurable
	Store  *sampleStore `env:", prefix=STORE_" description:"Store configuration"`
	Cache  sampleCache  `env:", prefix=CACHE_"`
}

type sampleStore struct {
	URL   string `env:"URL" type:"secret" description:"Connection string"`
	Debug bool   `env:"DEBUG, default=false" description:"Log queries"`
}

type sampleCache struct {
	Size int `env:"SIZE, default=128" description:"Entries kept"`
}

func TestSections(t *testing.T) {
	sections, err := mdgen.Sections(&sampleConfig{})
	require.NoError(t, err)

	assert.Equal(t, []mdgen.Section{
		{
			Title:  "General Settings",
			Fields: []mdgen.Field{{Env: "NAME", Default: "demo", Description: "The name"}},
		},
		{
			Title: "Store Configuration",
			Fields: []mdgen.Field{
				{Env: "STORE_URL", Description: "Connection string", Secret: true},
				{Env: "STORE_DEBUG", Default: "false", Description: "Log queries"},
			},
		},
		{
			Title:  "Cache Configuration",
			Fields: []mdgen.Field{{Env: "CACHE_SIZE", Default: "128", Description: "Entries kept"}},
		},
	}, sections)
}

func TestSections_RejectsNonStructs(t *testing.T) {
	_, err := mdgen.Sections("nope")
	assert.Error(t, err)
}

func TestWriteMarkdown(t *testing.T) {
	sections, err := mdgen.Sections(sampleConfig{})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, mdgen.WriteMarkdown(&sb, "Sample", sections))

	out := sb.String()
	assert.True(t, strings.HasPrefix(out, "# Sample\n\n## General Settings\n"))
	assert.Contains(t, out, "| NAME | `demo` | The name |\n")
	assert.Contains(t, out, "| STORE_URL | `\"\"` | Connection string |\n")
	assert.Contains(t, out, "## Cache Configuration\n")
}

func TestWriteEnvExample(t *testing.T) {
	sections := []mdgen.Section{{
		Title: "Store Configuration",
		Fields: []mdgen.Field{
			{Env: "STORE_URL", Default: "postgres://secret", Secret: true},
			{Env: "STORE_DEBUG", Default: "false"},
		},
	}}

	var sb strings.Builder
	require.NoError(t, mdgen.WriteEnvExample(&sb, sections))
	assert.Equal(t, "# Store Configuration\nSTORE_URL=\nSTORE_DEBUG=false\n", sb.String())
}

func TestGenerateConfigurationsMD_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Configurations.md")
	require.NoError(t, mdgen.GenerateConfigurationsMD(path, "Groq MCP Client Configuration", config.Config{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(data)
	for _, want := range []string{
		"| GROQ_MODEL | `llama-3.3-70b-versatile` | Chat completion model |",
		"| RETRY_MAX_ATTEMPTS | `3` | Total completion attempts |",
		"| MCP_INIT_TIMEOUT | `30s` |",
		"| DATABASE_DRIVER | `postgres` |",
		"## MCP Configuration",
	} {
		assert.Contains(t, out, want)
	}
}

func TestGenerateEnvExample_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.example")
	require.NoError(t, mdgen.GenerateEnvExample(path, &config.Config{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "GROQ_API_KEY=\n")
	assert.Contains(t, string(data), "DATABASE_PASSWORD=\n")
	assert.Contains(t, string(data), "TELEMETRY_ADDRESS=127.0.0.1:9464\n")
}
