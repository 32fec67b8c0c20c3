package iovocab

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/tirthatlas/tirthdb/pkg/errcode"
)

// NotConnectedError creates an error for when a vocabulary operation
// is attempted without a database connection.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Vocabulary operation attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// RebuildError creates an error for a failed vocabulary rebuild.
func RebuildError(err error) error {
	return &gn.Error{
		Code: errcode.VocabRebuildError,
		Msg:  "Cannot rebuild vocabulary",
		Err:  fmt.Errorf("cannot rebuild vocabulary: %w", err),
	}
}

// LookupError creates an error for a failed fuzzy lookup.
func LookupError(word string, err error) error {
	return &gn.Error{
		Code: errcode.VocabLookupError,
		Msg:  "Cannot look up <em>%s</em> in the vocabulary",
		Vars: []any{word},
		Err:  fmt.Errorf("cannot look up %q in the vocabulary: %w", word, err),
	}
}
