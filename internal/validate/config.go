package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFilename is the name of the configuration file searched for in
// the working directory and its parents.
const ConfigFilename = ".plugincheck.json"

// Config represents the plugincheck configuration file structure.
type Config struct {
	// Enable is a list of check names to enable (e.g., ["all"], ["manifest"])
	Enable []string `json:"enable,omitempty"`

	// Disable is a list of check names or patterns to disable (e.g., ["git*"])
	Disable []string `json:"disable,omitempty"`

	// WarningsAsErrors makes the CLI exit non-zero when warnings are present
	WarningsAsErrors bool `json:"warnings_as_errors,omitempty"`
}

// LoadConfig loads the configuration file from the specified path.
// If path is empty, it searches for .plugincheck.json in the current
// directory and parent directories and returns a default config when no
// file is found.
func LoadConfig(path string) (*Config, error) {
	configPath := path

	if configPath == "" {
		found, err := findConfigFile()
		if err != nil {
			return nil, err
		}
		if found == "" {
			return &Config{}, nil
		}
		configPath = found
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &config, nil
}

// findConfigFile searches for .plugincheck.json in the current directory
// and parent directories. Returns an empty string if no config file is
// found.
func findConfigFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		configPath := filepath.Join(dir, ConfigFilename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", nil
}

// ApplyToRegistry applies the configuration to a registry. Enables are
// applied before disables.
func (c *Config) ApplyToRegistry(registry *Registry) {
	if len(c.Enable) > 0 {
		registry.Enable(c.Enable...)
	}
	if len(c.Disable) > 0 {
		registry.Disable(c.Disable...)
	}
}
