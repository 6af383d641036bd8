// Package config provides configuration loading and validation for the
// resume builder server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/rendering"
)

// Config represents the builder configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags or the environment.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Rendering
	ChromePath      string `json:"chrome_path,omitempty"`      // Path to the Chrome/Chromium binary
	DefaultTemplate string `json:"default_template,omitempty"` // Template id applied to fresh documents
	RenderTimeout   int    `json:"render_timeout,omitempty"`   // Per-export render deadline in seconds
	MaxRenders      int    `json:"max_renders,omitempty"`      // Max concurrent browser sessions

	// Persistence
	StateDir    string `json:"state_dir,omitempty"`    // Directory for file-backed working state
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL; overrides StateDir
}

// Defaults returns the configuration used when nothing is specified.
func Defaults() Config {
	return Config{
		Port:            8080,
		DefaultTemplate: rendering.DefaultTemplateID,
		RenderTimeout:   30,
		MaxRenders:      2,
		StateDir:        ".resume-builder",
	}
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

// FromEnv fills unset fields from the environment. Recognized variables:
// PORT, CHROME_PATH, DEFAULT_TEMPLATE, STATE_DIR, DATABASE_URL.
func (c *Config) FromEnv() {
	if c.Port == 0 {
		if p := os.Getenv("PORT"); p != "" {
			var port int
			if _, err := fmt.Sscanf(p, "%d", &port); err == nil {
				c.Port = port
			}
		}
	}
	if c.ChromePath == "" {
		c.ChromePath = os.Getenv("CHROME_PATH")
	}
	if c.DefaultTemplate == "" {
		c.DefaultTemplate = os.Getenv("DEFAULT_TEMPLATE")
	}
	if c.StateDir == "" {
		c.StateDir = os.Getenv("STATE_DIR")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.RenderTimeout < 0 {
		return fmt.Errorf("config error: 'render_timeout' must be non-negative")
	}
	if c.MaxRenders < 0 {
		return fmt.Errorf("config error: 'max_renders' must be non-negative")
	}
	if c.DefaultTemplate != "" && !rendering.IsKnownTemplate(c.DefaultTemplate) {
		return fmt.Errorf("config error: unknown template %q", c.DefaultTemplate)
	}
	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.DefaultTemplate == "" {
		result.DefaultTemplate = defaults.DefaultTemplate
	}
	if result.RenderTimeout == 0 {
		result.RenderTimeout = defaults.RenderTimeout
	}
	if result.MaxRenders == 0 {
		result.MaxRenders = defaults.MaxRenders
	}
	if result.StateDir == "" {
		result.StateDir = defaults.StateDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	return result
}
