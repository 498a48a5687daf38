package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cityroute.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, config.DefaultWorkers, cfg.Workers)
	assert.Equal(t, "heap", cfg.Frontier)
	assert.Empty(t, cfg.Network)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
network = "city.yaml"
database = "runs.sqlite"
workers = 2
frontier = "linear"

[log]
level = "debug"
file = "logs/cityroute.log"
compress = true

[neo4j]
uri = "bolt://localhost:7687"
username = "neo4j"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "city.yaml", cfg.Network)
	assert.Equal(t, "runs.sqlite", cfg.Database)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "linear", cfg.Frontier)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Compress)
	assert.Equal(t, config.DefaultMaxBackups, cfg.Log.MaxBackups)
	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
	assert.Len(t, cfg.EngineOptions(), 1)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "workers = 2\n[log]\nlevel = \"warn\"\n")
	t.Setenv(config.EnvWorkers, "16")
	t.Setenv(config.EnvLogLevel, "trace")
	t.Setenv(config.EnvDB, "/tmp/runs.sqlite")
	t.Setenv(config.EnvNetwork, "other.toml")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Workers)
	assert.Equal(t, "trace", cfg.Log.Level)
	assert.Equal(t, "/tmp/runs.sqlite", cfg.Database)
	assert.Equal(t, "other.toml", cfg.Network)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"level":    "[log]\nlevel = \"loud\"\n",
		"workers":  "workers = -1\n",
		"frontier": "frontier = \"fibonacci\"\n",
		"neo4j":    "network = \"neo4j\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, body))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	t.Run("env workers", func(t *testing.T) {
		t.Setenv(config.EnvWorkers, "many")
		_, err := config.Load("")
		require.ErrorIs(t, err, config.ErrInvalid)
	})

	t.Run("syntax", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "workers = \n"))
		require.Error(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
	})
}
