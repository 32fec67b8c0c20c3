// Package iotesting provides shared helpers for tests that need a
// real SQLite index on disk.
package iotesting

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tirthatlas/tirthdb/internal/iodb"
	"github.com/tirthatlas/tirthdb/internal/ioschema"
	"github.com/tirthatlas/tirthdb/pkg/config"
	"github.com/tirthatlas/tirthdb/pkg/db"
)

// NewDB creates a temporary SQLite database with the full schema
// applied. The database lives in t.TempDir() and is closed when the
// test finishes.
func NewDB(t *testing.T) db.Operator {
	t.Helper()

	ctx := context.Background()
	op := iodb.NewSqliteOperator()
	cfg := &config.DatabaseConfig{
		Path:      filepath.Join(t.TempDir(), "test.sqlite"),
		BatchSize: 100,
	}
	require.NoError(t, op.Connect(ctx, cfg))
	t.Cleanup(func() { op.Close() })

	require.NoError(t, ioschema.NewManager(op).Create(ctx))
	return op
}
