package iofs_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tirthatlas/tirthdb/internal/iofs"
	"github.com/tirthatlas/tirthdb/pkg/config"
)

func TestEnsureDirs(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))

	for _, dir := range []string{
		config.ConfigDir(home),
		config.LogDir(home),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// Repeat runs are no-ops.
	assert.NoError(t, iofs.EnsureDirs(home))
}

func TestEnsureConfigFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))
	require.NoError(t, iofs.EnsureConfigFile(home))

	path := config.ConfigFilePath(home)
	doc, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "database:")
	assert.Contains(t, string(doc), "server:")
}

func TestEnsureConfigFileKeepsExisting(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))

	path := config.ConfigFilePath(home)
	require.NoError(t, os.WriteFile(path, []byte("# custom\n"), 0644))
	require.NoError(t, iofs.EnsureConfigFile(home))

	doc, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# custom\n", string(doc))
}
