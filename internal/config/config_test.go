package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Setenv("SITE_PORT", "")
	t.Setenv("PORT", "")

	cfg := Default()
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "content/site.json", cfg.Content)
	require.Equal(t, "public/index.html", cfg.Page)
	require.Equal(t, "public/assets", cfg.AssetsDir)
}

func TestDefaultHonorsPortEnv(t *testing.T) {
	t.Setenv("SITE_PORT", "9001")
	require.Equal(t, ":9001", Default().Addr)

	t.Setenv("SITE_PORT", "")
	t.Setenv("PORT", "9002")
	require.Equal(t, ":9002", Default().Addr)
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Setenv("SITE_PORT", "")
	t.Setenv("PORT", "")

	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":3000\"\ncontent: https://example.com/site.json\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":3000", cfg.Addr)
	require.Equal(t, "https://example.com/site.json", cfg.Content)
	// Keys absent from the file keep their defaults.
	require.Equal(t, "public/index.html", cfg.Page)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	t.Setenv("SITE_PORT", "")
	t.Setenv("PORT", "")

	cfg, err := Load("  ")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}
