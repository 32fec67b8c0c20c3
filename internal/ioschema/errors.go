package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/tirthatlas/tirthdb/pkg/errcode"
)

// NotConnectedError creates an error for when schema creation is
// attempted without a database connection.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Schema creation attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// StatementError creates an error for a failed DDL statement. A
// failure on the virtual tables usually means the SQLite build lacks
// the rtree or fts5 module.
func StatementError(table string, err error) error {
	msg := `Cannot create table <em>%s</em>

<em>Possible causes:</em>
  - SQLite build without rtree/fts5 support
  - Existing table with an incompatible shape`

	return &gn.Error{
		Code: errcode.SchemaStatementError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("cannot create table %s: %w", table, err),
	}
}
