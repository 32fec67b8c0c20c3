package db

import (
	"context"
	"database/sql"

	"github.com/tirthatlas/tirthdb/pkg/config"
)

// Operator defines basic database management operations. It provides
// connection lifecycle management and exposes the *sql.DB handle for
// lifecycle components (SchemaManager, Ingestor, Searcher,
// VocabBuilder) to execute their specialized SQL internally.
//
// Design rationale:
// - Keeps the interface minimal to avoid bloat with mixed semantics
// - DB() lets components use transactions and prepared statements
// - SQLite is single-writer; the handle serializes writers itself
type Operator interface {
	// Connect opens the SQLite database, creating the file when
	// missing, and verifies the connection.
	Connect(ctx context.Context, cfg *config.DatabaseConfig) error

	// Close closes the database handle.
	Close() error

	// DB returns the underlying handle for components to execute
	// specialized SQL operations.
	DB() *sql.DB

	// TableExists checks if a table (including virtual tables)
	// exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables at all. Used
	// to give a helpful message when ingest or serve run before
	// create.
	HasTables(ctx context.Context) (bool, error)
}
