// Package config provides configuration management for the household
// suite. It loads configuration from environment variables, .env files,
// and an optional settings.yaml in the data directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration shared by both apps.
type Config struct {
	// DataDir is the root directory for databases and exports.
	DataDir string
	// DBPath is the key-value database file. A .bolt extension selects
	// the bbolt backend, anything else SQLite.
	DBPath string
	// Currency is the ISO 4217 code used when printing amounts.
	Currency string
	// DefaultSort is the recipe listing order used when no --sort flag
	// is given.
	DefaultSort string
	Debug       bool
}

// Settings is the optional settings.yaml file in the data directory.
type Settings struct {
	Currency    string `yaml:"currency"`
	DefaultSort string `yaml:"default_sort"`
}

// Load loads configuration from environment variables.
// It automatically loads .env from the current directory if available;
// a custom .env path can be passed instead. A settings.yaml in the
// data directory overrides the built-in defaults but not explicit
// environment variables.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Ignore error if no .env exists.
		_ = godotenv.Load()
	}

	dataDir := os.Getenv("HOUSEHOLD_DATA_DIR")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".household")
	}

	config := &Config{
		DataDir:     dataDir,
		DBPath:      getEnvOrDefault("HOUSEHOLD_DB_PATH", filepath.Join(dataDir, "household.db")),
		Currency:    "USD",
		DefaultSort: "name-asc",
		Debug:       os.Getenv("DEBUG") == "true",
	}

	settings, err := loadSettings(filepath.Join(dataDir, "settings.yaml"))
	if err != nil {
		return nil, err
	}
	if settings.Currency != "" {
		config.Currency = settings.Currency
	}
	if settings.DefaultSort != "" {
		config.DefaultSort = settings.DefaultSort
	}

	if v := os.Getenv("HOUSEHOLD_CURRENCY"); v != "" {
		config.Currency = v
	}

	return config, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var missing []string
	if c.DataDir == "" {
		missing = append(missing, "DataDir")
	}
	if c.DBPath == "" {
		missing = append(missing, "DBPath")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v\nPlease check your .env file or environment variables", missing)
	}
	if len(c.Currency) != 3 {
		return fmt.Errorf("invalid currency code: %q (want ISO 4217, e.g. USD)", c.Currency)
	}
	return nil
}

// loadSettings reads the optional yaml file. A missing file yields
// zero-value settings.
func loadSettings(path string) (Settings, error) {
	var s Settings
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return s, nil
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
