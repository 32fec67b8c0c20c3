package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableCheckError
	DBQueryTablesError
	DBEmptyDatabaseError

	// Schema errors
	SchemaCreateError
	SchemaStatementError

	// Ingest errors
	IngestDirListError
	IngestFileReadError
	IngestParseError
	IngestNormalizationError
	IngestUpsertError
	IngestCancelledError

	// Search errors
	SearchQueryError
	SearchScanError

	// Vocabulary errors
	VocabRebuildError
	VocabLookupError

	// Web server errors
	WebStartError
	WebShutdownError
)
