package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabasePath sets the SQLite database file path.
func OptDatabasePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Path", s) {
			c.Database.Path = s
		}
	}
}

// OptDatabaseBatchSize sets the number of records committed per
// transaction during bulk writes.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptIngestDataDir sets the source directory of *.jsonl files.
func OptIngestDataDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Ingest Data Dir", s) {
			c.Ingest.DataDir = s
		}
	}
}

// OptIngestFileTimeout sets the per-file processing deadline in seconds.
func OptIngestFileTimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("Ingest File Timeout", i) {
			c.Ingest.FileTimeout = i
		}
	}
}

// OptServerHost sets the HTTP listen address. Empty is a valid value
// and means all interfaces, so no validation applies.
func OptServerHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.Server.Host = s
	}
}

// OptServerPort sets the HTTP listen port.
func OptServerPort(i int) Option {
	return func(c *Config) {
		if isValidInt("Server Port", i) {
			c.Server.Port = i
		}
	}
}

// OptSearchQueryTimeout sets the per-request query deadline in seconds.
func OptSearchQueryTimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("Search Query Timeout", i) {
			c.Search.QueryTimeout = i
		}
	}
}

// OptLogLevel sets the minimum logged level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stdout", "stderr".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets how many source files are ingested concurrently.
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the directory where config and logs reside.
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Dir", s) {
			c.HomeDir = s
		}
	}
}
