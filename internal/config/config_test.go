package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Addr, cfg.Addr)
	assert.Equal(t, 12, cfg.MobileBatch)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9000\"\ndeck_source: \"https://example.org/cards.json\"\ndesktop_batch: 30\n"), 0o600))
	t.Setenv("BOARDGAME_WEB_DECK", "data/other.json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 30, cfg.DesktopBatch)
	// env wins over the file
	assert.Equal(t, "data/other.json", cfg.DeckSource)
}

func TestPortEnvResolution(t *testing.T) {
	t.Setenv("PORT", "7777")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.Addr)

	t.Setenv("BOARDGAME_WEB_PORT", "8888")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8888", cfg.Addr)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- nope"), 0o600))
	_, err := Load(path)
	assert.Error(t, err)
}
