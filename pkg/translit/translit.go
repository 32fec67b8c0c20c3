// Package translit canonicalizes free text for full-text indexing.
// Non-Latin scripts are approximated with Latin characters so that a
// Devanagari label and its romanization land on the same tokens.
package translit

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// Normalize transliterates s to a Latin approximation and lowercases
// it. Pure and deterministic; already-Latin text only changes case.
func Normalize(s string) string {
	return strings.ToLower(unidecode.Unidecode(s))
}

// NormalizeName prepares a display name (label plus aliases) for the
// lexical index. Commas separating aliases are replaced with spaces
// so they do not glue tokens together.
func NormalizeName(s string) string {
	return Normalize(strings.ReplaceAll(s, ",", " "))
}

// JoinValues joins claim values with single spaces and normalizes the
// result. Empty input yields an empty string, which is stored as-is.
func JoinValues(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return Normalize(strings.Join(vals, " "))
}
