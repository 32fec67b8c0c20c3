// Package ioschema implements SchemaManager for the SQLite index.
// The geolocation and text tables are rtree/fts5 virtual tables, so
// schema creation runs raw DDL instead of an ORM migration.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/tirthatlas/tirthdb/pkg/db"
	"github.com/tirthatlas/tirthdb/pkg/schema"
	"github.com/tirthatlas/tirthdb/pkg/tirthdb"
)

// manager implements the tirthdb.SchemaManager interface.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) tirthdb.SchemaManager {
	return &manager{operator: op}
}

// Create creates all index tables that do not exist yet. The DDL is
// idempotent, so running create on an initialized database is a
// no-op.
func (m *manager) Create(ctx context.Context) error {
	handle := m.operator.DB()
	if handle == nil {
		return NotConnectedError()
	}

	for i, stmt := range schema.All() {
		table := schema.TableNames()[i]
		if _, err := handle.ExecContext(ctx, stmt); err != nil {
			return StatementError(table, err)
		}
		slog.Debug("Ensured table", "table", table)
	}

	slog.Info("Schema ready", "tables", schema.TableNames())
	return nil
}
