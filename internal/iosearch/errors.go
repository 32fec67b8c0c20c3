package iosearch

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/tirthatlas/tirthdb/pkg/errcode"
)

// NotConnectedError creates an error for when a search is attempted
// without a database connection.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Search attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// QueryError creates an error for a failed search query.
func QueryError(err error) error {
	return &gn.Error{
		Code: errcode.SearchQueryError,
		Msg:  "Cannot run search query",
		Err:  fmt.Errorf("cannot run search query: %w", err),
	}
}

// ScanError creates an error for a result row that cannot be read
// or decoded.
func ScanError(err error) error {
	return &gn.Error{
		Code: errcode.SearchScanError,
		Msg:  "Cannot read search results",
		Err:  fmt.Errorf("cannot read search results: %w", err),
	}
}
