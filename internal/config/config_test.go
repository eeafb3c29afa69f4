package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultListenPort, cfg.ListenPort)
	assert.Equal(t, DefaultDBPath, cfg.DBPath)
	assert.Equal(t, DefaultPageSize, cfg.PageSize)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("listen_port: 9090\ndb_path: /tmp/catalog.db\npage_size: 25\n")
	require.NoError(t, os.WriteFile(path, data, 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.ListenPort)
	assert.Equal(t, "/tmp/catalog.db", cfg.DBPath)
	assert.Equal(t, 25, cfg.PageSize)
	// Unset fields keep defaults
	assert.Equal(t, DefaultMaxPageSize, cfg.MaxPageSize)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("STOCKROOM_PORT", "7171")
	t.Setenv("STOCKROOM_DB_PATH", "env.db")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7171, cfg.ListenPort)
	assert.Equal(t, "env.db", cfg.DBPath)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_port: [nope"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_NormalizesBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_conns: -1\npage_size: 0\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxConns)
	assert.Equal(t, DefaultPageSize, cfg.PageSize)
}
