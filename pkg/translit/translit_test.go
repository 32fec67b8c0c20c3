package translit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tirthatlas/tirthdb/pkg/translit"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		msg string
		in  string
		out string
	}{
		{"latin passthrough", "Palitana", "palitana"},
		{"diacritics", "Shri Ādinātha", "shri adinatha"},
		{"empty", "", ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.out, translit.Normalize(v.in), v.msg)
	}
}

func TestNormalizeCrossScript(t *testing.T) {
	// The exact romanization is the transliteration table's business;
	// the contract is lowercase ASCII output for non-Latin input.
	got := translit.Normalize("पालीताणा")
	assert.NotEmpty(t, got)
	assert.Equal(t, strings.ToLower(got), got)
	for _, r := range got {
		assert.Less(t, r, rune(128), "expected ASCII output")
	}
}

func TestNormalizeName(t *testing.T) {
	got := translit.NormalizeName("Shatrunjaya, Palitana Tirth")
	assert.Equal(t, "shatrunjaya  palitana tirth", got)
	assert.NotContains(t, got, ",")
}

func TestJoinValues(t *testing.T) {
	assert.Equal(t, "", translit.JoinValues(nil))
	assert.Equal(t, "q57 q2221", translit.JoinValues([]string{"Q57", "Q2221"}))
}
