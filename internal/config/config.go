// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/cv-analyzer/internal/llm"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	File       string `json:"file,omitempty"`        // Storage-relative path of the CV to analyze
	StorageDir string `json:"storage_dir,omitempty"` // Root directory of the CV file store
	Fields     string `json:"fields,omitempty"`      // Path to a JSON file describing custom form fields

	// Job context
	JobTitle string `json:"job_title,omitempty"` // Position the candidate is applying for

	// Behavior
	APIKey        string `json:"api_key,omitempty"`        // Gemini API key or service credential blob
	Model         string `json:"model,omitempty"`          // Override for the standard-tier model
	Verbose       bool   `json:"verbose,omitempty"`        // Print detailed progress information
	MaxConcurrent int    `json:"max_concurrent,omitempty"` // Concurrency bound for batch runs
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.MaxConcurrent < 0 {
		return fmt.Errorf("config error: 'max_concurrent' must be non-negative")
	}

	if c.StorageDir != "" {
		if _, err := os.Stat(c.StorageDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: storage directory not found: %s", c.StorageDir)
		}
	}

	if c.Fields != "" {
		if _, err := os.Stat(c.Fields); os.IsNotExist(err) {
			return fmt.Errorf("config error: fields file not found: %s", c.Fields)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.File == "" {
		result.File = defaults.File
	}
	if result.StorageDir == "" {
		result.StorageDir = defaults.StorageDir
	}
	if result.Fields == "" {
		result.Fields = defaults.Fields
	}
	if result.JobTitle == "" {
		result.JobTitle = defaults.JobTitle
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.MaxConcurrent == 0 {
		result.MaxConcurrent = defaults.MaxConcurrent
	}
	if defaults.Verbose {
		result.Verbose = true
	}

	return result
}

// ResolveAPIKey returns the usable API key for this configuration: the
// explicit config value first, then the GEMINI_API_KEY environment variable.
// Service-account JSON blobs resolve to empty (no direct key material).
func (c *Config) ResolveAPIKey() string {
	if key := llm.ResolveAPIKey(c.APIKey); key != "" {
		return key
	}
	return llm.ResolveAPIKey(os.Getenv("GEMINI_API_KEY"))
}

// ResolveStorageDir returns the file-store root: the explicit config value
// first, then the CV_STORAGE_DIR environment variable, then the current
// directory.
func (c *Config) ResolveStorageDir() string {
	if c.StorageDir != "" {
		return c.StorageDir
	}
	if dir := os.Getenv("CV_STORAGE_DIR"); dir != "" {
		return dir
	}
	return "."
}
