// Package pathutil provides centralized path management for the data
// directory, database file, and export locations.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathResolver manages paths under the household data directory.
type PathResolver struct {
	dataDir   string
	dbPath    string
	exportDir string
}

// Config represents the configuration for PathResolver.
type Config struct {
	// DataDir is the root directory for all household data (e.g., ~/.household)
	DataDir string
	// DBPath is the path to the key-value database file
	DBPath string
	// ExportDir is the directory backup files are written to
	ExportDir string
}

// New creates a new PathResolver with the given configuration.
// If DBPath is empty, it defaults to {DataDir}/household.db
// If ExportDir is empty, it defaults to {DataDir}/exports
func New(config Config) *PathResolver {
	dbPath := config.DBPath
	if dbPath == "" {
		dbPath = filepath.Join(config.DataDir, "household.db")
	}

	exportDir := config.ExportDir
	if exportDir == "" {
		exportDir = filepath.Join(config.DataDir, "exports")
	}

	return &PathResolver{
		dataDir:   config.DataDir,
		dbPath:    dbPath,
		exportDir: exportDir,
	}
}

// FromEnv creates a PathResolver from environment variables.
// Expected environment variables:
//   - HOUSEHOLD_DATA_DIR: Root data directory (required)
//   - HOUSEHOLD_DB_PATH: Database file path (optional)
//   - HOUSEHOLD_EXPORT_DIR: Export directory (optional)
func FromEnv() (*PathResolver, error) {
	dataDir := os.Getenv("HOUSEHOLD_DATA_DIR")
	if dataDir == "" {
		return nil, fmt.Errorf("HOUSEHOLD_DATA_DIR environment variable is required")
	}

	return New(Config{
		DataDir:   dataDir,
		DBPath:    os.Getenv("HOUSEHOLD_DB_PATH"),
		ExportDir: os.Getenv("HOUSEHOLD_EXPORT_DIR"),
	}), nil
}

// GetDataDir returns the household data directory.
func (p *PathResolver) GetDataDir() string {
	return p.dataDir
}

// GetDBPath returns the database file path.
func (p *PathResolver) GetDBPath() string {
	return p.dbPath
}

// GetExportDir returns the export directory.
func (p *PathResolver) GetExportDir() string {
	return p.exportDir
}

// GetExportPath returns the path for a named export file.
// Example: ~/.household/exports/recipes-2025-03-13.json
func (p *PathResolver) GetExportPath(filename string) string {
	return filepath.Join(p.exportDir, filename)
}

// EnsureDir creates a directory if it doesn't exist.
// It creates all parent directories as needed (like mkdir -p).
func (p *PathResolver) EnsureDir(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}
	return nil
}

// EnsureParentDir ensures the parent directory of a file exists.
func (p *PathResolver) EnsureParentDir(filePath string) error {
	dir := filepath.Dir(filePath)
	return p.EnsureDir(dir)
}

// FileExists checks if a file exists.
func (p *PathResolver) FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}

// IsDir checks if a path is a directory.
func (p *PathResolver) IsDir(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}
