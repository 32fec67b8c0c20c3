package ioingest

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/tirthatlas/tirthdb/pkg/errcode"
)

// NotConnectedError creates an error for when ingestion is attempted
// without a database connection.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Ingestion attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// DirListError creates the only fatal ingestion error: the source
// directory cannot be enumerated at all.
func DirListError(dir string, err error) error {
	msg := `Cannot list source directory <em>%s</em>

<em>How to fix:</em>
  1. Check the directory exists
  2. Point --data-dir (or ingest.data_dir) at the *.jsonl files`

	return &gn.Error{
		Code: errcode.IngestDirListError,
		Msg:  msg,
		Vars: []any{dir},
		Err:  fmt.Errorf("cannot list source directory %s: %w", dir, err),
	}
}

// UpsertError creates an error for a failed index write.
func UpsertError(id int, err error) error {
	return &gn.Error{
		Code: errcode.IngestUpsertError,
		Msg:  "Cannot write record <em>%d</em> to the index",
		Vars: []any{id},
		Err:  fmt.Errorf("cannot upsert record %d: %w", id, err),
	}
}

// CancelledError creates an error for an ingestion run interrupted
// by context cancellation.
func CancelledError(err error) error {
	return &gn.Error{
		Code: errcode.IngestCancelledError,
		Msg:  "Ingestion cancelled",
		Err:  fmt.Errorf("ingestion cancelled: %w", err),
	}
}
