package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klex-lang/klex/internal/config"
)

func TestLoadFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "klex.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[package]
name = "tokens"
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "tokens", cfg.Package.Name)
	require.Equal(t, 1, cfg.Generate.TabWidth)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestFindWalksUpward(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "klex.toml"), []byte("[package]\nname=\"x\"\n"), 0o644))
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path, ok, err := config.Find(nested)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "klex.toml", filepath.Base(path))
	require.Equal(t, filepath.Clean(root), filepath.Clean(filepath.Dir(path)))
}

func TestFindNotFound(t *testing.T) {
	_, ok, err := config.Find(t.TempDir())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, "lexer", cfg.Package.Name)
	require.Equal(t, 1, cfg.Generate.TabWidth)
}
