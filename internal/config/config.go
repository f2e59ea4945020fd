// Package config provides configuration loading and validation for the
// screening service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the service configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from
// the environment.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Storage
	DatabaseURL   string `json:"database_url,omitempty"`   // PostgreSQL connection URL
	ShortlistPath string `json:"shortlist_path,omitempty"` // SQLite shortlist database file
	UploadDir     string `json:"upload_dir,omitempty"`     // Directory for uploaded resume files

	// Screening
	RolesPath   string `json:"roles_path,omitempty"`    // Optional job-role catalog JSON file
	MaxFileSize int64  `json:"max_file_size,omitempty"` // Upload size limit in bytes

	// Behavior
	APIKey  string `json:"api_key,omitempty"` // Gemini API key
	Verbose bool   `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the built-in configuration values
func Defaults() Config {
	return Config{
		Port:          8000,
		ShortlistPath: "data/shortlisted_candidates.db",
		UploadDir:     "uploads",
		MaxFileSize:   10 << 20, // 10 MB
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

// ApplyEnv fills empty fields from environment variables. Explicit config
// file values win over the environment.
func (c *Config) ApplyEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.Port == 0 {
		if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil && port > 0 {
			c.Port = port
		}
	}
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxFileSize < 0 {
		return fmt.Errorf("config error: 'max_file_size' must be non-negative")
	}
	if c.RolesPath != "" {
		if _, err := os.Stat(c.RolesPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: roles file not found: %s", c.RolesPath)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ShortlistPath == "" {
		result.ShortlistPath = defaults.ShortlistPath
	}
	if result.UploadDir == "" {
		result.UploadDir = defaults.UploadDir
	}
	if result.RolesPath == "" {
		result.RolesPath = defaults.RolesPath
	}
	if result.MaxFileSize == 0 {
		result.MaxFileSize = defaults.MaxFileSize
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Bool fields are not merged; flags always win for bools

	return result
}
