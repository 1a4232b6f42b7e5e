// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Output formats accepted by the report renderer.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Annotator backends for skill extraction. Empty means fallback.
const (
	AnnotatorGemini   = "gemini"
	AnnotatorFallback = "fallback"
)

// DefaultFetchTimeoutSeconds bounds a single job-posting fetch.
const DefaultFetchTimeoutSeconds = 30

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Job       string `json:"job,omitempty"`       // Path to job posting text file
	JobURL    string `json:"job_url,omitempty"`   // URL to fetch the job posting from
	Resume    string `json:"resume,omitempty"`    // Path to resume text file
	Structure string `json:"structure,omitempty"` // Path to resume structure JSON file

	// Output
	Output string `json:"output,omitempty"` // Report destination path; empty means stdout
	Format string `json:"format,omitempty"` // Report format: "text" or "json"

	// Behavior
	Annotator      string `json:"annotator,omitempty"`       // Skill annotator: "gemini" or "fallback"
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key for skill annotation
	Model          string `json:"model,omitempty"`           // Gemini model override
	UseBrowser     bool   `json:"use_browser,omitempty"`     // Use headless browser for SPA job boards
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed debug information
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // Per-fetch timeout in seconds
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
	// Validate mutually exclusive fields
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.Format != "" && c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("config error: 'format' must be %q or %q", FormatText, FormatJSON)
	}

	if c.Annotator != "" && c.Annotator != AnnotatorGemini && c.Annotator != AnnotatorFallback {
		return fmt.Errorf("config error: 'annotator' must be %q or %q", AnnotatorGemini, AnnotatorFallback)
	}

	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}

	// Validate file paths exist (if specified)
	for _, input := range []struct{ name, path string }{
		{"job", c.Job},
		{"resume", c.Resume},
		{"structure", c.Structure},
	} {
		if input.path == "" {
			continue
		}
		if _, err := os.Stat(input.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", input.name, input.path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Structure == "" {
		result.Structure = defaults.Structure
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Annotator == "" {
		result.Annotator = defaults.Annotator
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}

	if result.Format == "" {
		if defaults.Format != "" {
			result.Format = defaults.Format
		} else {
			result.Format = FormatText
		}
	}

	if result.TimeoutSeconds == 0 {
		if defaults.TimeoutSeconds > 0 {
			result.TimeoutSeconds = defaults.TimeoutSeconds
		} else {
			result.TimeoutSeconds = DefaultFetchTimeoutSeconds
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
