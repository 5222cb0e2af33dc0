// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	ProfilePath string `json:"profile_path,omitempty"` // Path to the user profile store
	JobPath     string `json:"job_path,omitempty"`     // Path to the job description store
	OutputDir   string `json:"output_dir,omitempty"`   // Directory for generated documents
	JobURL      string `json:"job_url,omitempty"`      // URL to ingest a job posting from

	// Behavior
	Model   string `json:"model,omitempty"`   // Generation model identifier
	APIKey  string `json:"api_key,omitempty"` // Gemini API key
	Verbose bool   `json:"verbose,omitempty"` // Print detailed record summaries
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.OutputDir != "" {
		info, err := os.Stat(c.OutputDir)
		if os.IsNotExist(err) {
			return fmt.Errorf("config error: output directory not found: %s", c.OutputDir)
		}
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: output path is not a directory: %s", c.OutputDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ProfilePath == "" {
		result.ProfilePath = defaults.ProfilePath
	}
	if result.JobPath == "" {
		result.JobPath = defaults.JobPath
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Bool fields cannot distinguish unset from false; CLI flags always win
	return result
}
