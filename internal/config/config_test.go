package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/benbeisheim/boardview-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupDefaultsWithoutFile(t *testing.T) {
	cfg, err := Setup(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerPort)
	assert.Equal(t, model.StartingRecord, cfg.InitialRecord)
	assert.Equal(t, 64, cfg.TileSize)
	assert.Equal(t, "assets", cfg.AssetDir)
	assert.Equal(t, "basic", cfg.Theme)
	assert.False(t, cfg.StrictPlacement)
}

func TestSetupReadsFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.env")
	require.NoError(t, os.WriteFile(path, []byte("SERVER_PORT=:9090\nSTRICT_PLACEMENT=true\nTILE_SIZE=48\n"), 0o600))
	t.Setenv("TILE_SIZE", "32")

	cfg, err := Setup(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ServerPort)
	assert.True(t, cfg.StrictPlacement)
	assert.Equal(t, 32, cfg.TileSize)
}

func TestSetupRejectsBadTileSize(t *testing.T) {
	t.Setenv("TILE_SIZE", "0")

	_, err := Setup("")
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	assert.Equal(t, ".env", Path())
	t.Setenv("CONFIG_PATH", "/etc/boardview.env")
	assert.Equal(t, "/etc/boardview.env", Path())
}
