package iodb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/tirthatlas/tirthdb/pkg/errcode"
)

// ConnectionError creates an error for a failed attempt to open or
// verify the SQLite database.
func ConnectionError(path string, err error) error {
	msg := `Cannot open SQLite database <em>%s</em>

<em>Possible causes:</em>
  - Directory does not exist or is not writable
  - File is not a SQLite database
  - Database is locked by another process`

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot open sqlite database %s: %w", path, err),
	}
}

// NotConnectedError creates an error for operations attempted before
// Connect.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Operation attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableCheckError creates an error for a failed table existence
// check.
func TableCheckError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  "Cannot check if table <em>%s</em> exists",
		Vars: []any{table},
		Err:  fmt.Errorf("cannot check table %s: %w", table, err),
	}
}

// QueryTablesError creates an error for a failed sqlite_master scan.
func QueryTablesError(err error) error {
	return &gn.Error{
		Code: errcode.DBQueryTablesError,
		Msg:  "Cannot list database tables",
		Err:  fmt.Errorf("cannot query sqlite_master: %w", err),
	}
}
