package mcp

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ResolveServerParams maps the server argument of the CLI onto launch
// parameters. Python and JavaScript scripts run through their interpreter,
// YAML files are read as ServerParams, anything else is executed directly.
func ResolveServerParams(path string) (ServerParams, error) {
	if strings.TrimSpace(path) == "" {
		return ServerParams{}, errors.New("server path must not be empty")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return ServerParams{Command: "python", Args: []string{path}}, nil
	case ".js":
		return ServerParams{Command: "node", Args: []string{path}}, nil
	case ".yaml", ".yml":
		return LoadServerParams(path)
	default:
		return ServerParams{Command: path}, nil
	}
}

// LoadServerParams reads launch parameters from a YAML file
func LoadServerParams(path string) (ServerParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ServerParams{}, fmt.Errorf("failed to read server config: %w", err)
	}
	return parseServerParams(data)
}

func parseServerParams(data []byte) (ServerParams, error) {
	var params ServerParams
	if err := yaml.Unmarshal(data, &params); err != nil {
		return ServerParams{}, fmt.Errorf("failed to parse server config: %w", err)
	}
	if params.Command == "" {
		return ServerParams{}, errors.New("server config has no command")
	}
	return params, nil
}
