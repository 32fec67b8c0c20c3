// Package iodb implements database operations for the SQLite index.
// This is an impure I/O package that implements contracts defined in
// pkg/.
package iodb

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/tirthatlas/tirthdb/pkg/config"
	"github.com/tirthatlas/tirthdb/pkg/db"
)

// sqliteOperator implements db.Operator using the pure Go SQLite
// driver.
type sqliteOperator struct {
	db *sql.DB
}

// NewSqliteOperator creates a new database operator (without
// connecting).
func NewSqliteOperator() db.Operator {
	return &sqliteOperator{}
}

// Connect opens the SQLite file, creating it when missing, applies
// pragmas and verifies the connection.
func (s *sqliteOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	handle, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return ConnectionError(cfg.Path, err)
	}

	// SQLite allows one writer; funneling all connections through a
	// single handle avoids SQLITE_BUSY between ingest batches.
	handle.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA busy_timeout = 5000;",
	}
	for _, p := range pragmas {
		if _, err = handle.ExecContext(ctx, p); err != nil {
			handle.Close()
			return ConnectionError(cfg.Path, err)
		}
	}

	if err = handle.PingContext(ctx); err != nil {
		handle.Close()
		return ConnectionError(cfg.Path, err)
	}

	s.db = handle
	return nil
}

// Close releases the database handle.
func (s *sqliteOperator) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// DB returns the underlying handle for specialized operations.
func (s *sqliteOperator) DB() *sql.DB {
	return s.db
}

// TableExists checks if a table exists. Virtual tables register in
// sqlite_master as ordinary tables, so one query covers both.
func (s *sqliteOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if s.db == nil {
		return false, NotConnectedError()
	}

	q := `SELECT count(1) FROM sqlite_master
	      WHERE type = 'table' AND name = ?`
	var n int
	if err := s.db.QueryRowContext(ctx, q, tableName).Scan(&n); err != nil {
		return false, TableCheckError(tableName, err)
	}
	return n > 0, nil
}

// HasTables checks if the database contains any user tables.
func (s *sqliteOperator) HasTables(ctx context.Context) (bool, error) {
	if s.db == nil {
		return false, NotConnectedError()
	}

	q := `SELECT count(1) FROM sqlite_master
	      WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`
	var n int
	if err := s.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return false, QueryTablesError(err)
	}
	return n > 0, nil
}
