// Package config provides configuration management for TirthDB.
//
// This package has no I/O dependencies (no file operations, no
// network calls). Validation functions may write user-facing warnings
// via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml
// > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Environment Variables
//
// Use TIRTHDB_ prefix with underscores for nesting:
//
//	TIRTHDB_DATABASE_PATH=./tirthdb.sqlite
//	TIRTHDB_SERVER_PORT=3001
//	TIRTHDB_LOG_LEVEL=info
//	TIRTHDB_JOBS_NUMBER=8
package config

import (
	"fmt"
	"runtime"
)

// Config represents the complete TirthDB configuration.
type Config struct {
	// Database contains SQLite settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Ingest contains settings specific to the ingest command.
	Ingest IngestConfig `mapstructure:"ingest" yaml:"ingest"`

	// Server contains HTTP server settings for the serve command.
	Server ServerConfig `mapstructure:"server" yaml:"server"`

	// Search contains query execution settings.
	Search SearchConfig `mapstructure:"search" yaml:"search"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of source files ingested concurrently.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and logs directories reside.
	// It is set by the CLI during init, there is no default for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// DatabaseConfig contains SQLite settings.
type DatabaseConfig struct {
	// Path is the SQLite database file. Created on first use.
	Path string `mapstructure:"path" yaml:"path"`

	// BatchSize is the number of records committed per transaction
	// during ingestion and vocabulary rebuilds. Larger batches are
	// faster but hold the write lock longer.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// IngestConfig contains settings specific to the ingest command.
type IngestConfig struct {
	// DataDir is the directory holding newline-delimited JSON source
	// files (*.jsonl), one record per line.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	// FileTimeout is the per-file processing deadline in seconds.
	FileTimeout int `mapstructure:"file_timeout" yaml:"file_timeout"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Host is the listen address; empty means all interfaces.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the HTTP listen port.
	Port int `mapstructure:"port" yaml:"port"`
}

// Addr returns the host:port listen address.
func (sc ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", sc.Host, sc.Port)
}

// SearchConfig contains query execution settings.
type SearchConfig struct {
	// QueryTimeout is the per-request query deadline in seconds.
	QueryTimeout int `mapstructure:"query_timeout" yaml:"query_timeout"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Level is the minimum level that is logged:
	// "debug", "info", "warn" or "error".
	Level string `mapstructure:"level" yaml:"level"`

	// Format of the log: "json" or "text".
	Format string `mapstructure:"format" yaml:"format"`

	// Destination of the log: "file", "stdout" or "stderr".
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with default values. The result is always
// valid and usable without further validation.
func New() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:      "tirthdb.sqlite",
			BatchSize: 500,
		},
		Ingest: IngestConfig{
			DataDir:     "atlas-data/wiki",
			FileTimeout: 300,
		},
		Server: ServerConfig{
			Port: 3001,
		},
		Search: SearchConfig{
			QueryTimeout: 5,
		},
		Log: LogConfig{
			Level:       "info",
			Format:      "json",
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}
}
