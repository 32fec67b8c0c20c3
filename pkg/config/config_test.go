package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tirthatlas/tirthdb/pkg/config"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "tirthdb"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(
				tempHome, ".local", "share", "tirthdb", "logs",
			),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t, "tirthdb.sqlite", cfg.Database.Path)
		assert.Equal(t, 500, cfg.Database.BatchSize)
		assert.Equal(t, "atlas-data/wiki", cfg.Ingest.DataDir)
		assert.Equal(t, 300, cfg.Ingest.FileTimeout)
		assert.Equal(t, 3001, cfg.Server.Port)
		assert.Equal(t, 5, cfg.Search.QueryTimeout)

		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})
}

func TestUpdate(t *testing.T) {
	cfg := config.New()

	cfg.Update([]config.Option{
		config.OptDatabasePath("/tmp/atlas.db"),
		config.OptServerPort(8080),
		config.OptLogLevel("debug"),
		config.OptJobsNumber(2),
	})

	assert.Equal(t, "/tmp/atlas.db", cfg.Database.Path)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 2, cfg.JobsNumber)
}

func TestUpdateRejectsInvalid(t *testing.T) {
	cfg := config.New()
	def := config.New()

	cfg.Update([]config.Option{
		config.OptDatabasePath("  "),
		config.OptServerPort(-1),
		config.OptLogLevel("verbose"),
		config.OptLogFormat("xml"),
		config.OptJobsNumber(0),
	})

	// Invalid values are warned about and ignored; the config stays
	// in its prior valid state.
	assert.Equal(t, def.Database.Path, cfg.Database.Path)
	assert.Equal(t, def.Server.Port, cfg.Server.Port)
	assert.Equal(t, def.Log.Level, cfg.Log.Level)
	assert.Equal(t, def.Log.Format, cfg.Log.Format)
	assert.Equal(t, def.JobsNumber, cfg.JobsNumber)
}

func TestToOptionsRoundTrip(t *testing.T) {
	orig := config.New()
	orig.Update([]config.Option{
		config.OptDatabasePath("round.db"),
		config.OptIngestDataDir("/data/wiki"),
		config.OptServerPort(4000),
		config.OptSearchQueryTimeout(10),
		config.OptLogFormat("text"),
	})

	clone := config.New()
	clone.Update(orig.ToOptions())

	assert.Equal(t, orig.Database, clone.Database)
	assert.Equal(t, orig.Ingest, clone.Ingest)
	assert.Equal(t, orig.Server, clone.Server)
	assert.Equal(t, orig.Search, clone.Search)
	assert.Equal(t, orig.Log, clone.Log)
	assert.Equal(t, orig.JobsNumber, clone.JobsNumber)
}

func TestHomeDirRuntimeOnly(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir("/home/u")})
	assert.Equal(t, "/home/u", cfg.HomeDir)

	clone := config.New()
	clone.Update(cfg.ToOptions())
	assert.Empty(t, clone.HomeDir, "HomeDir must not round-trip")
}
