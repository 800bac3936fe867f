package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[library]
root = "/media/videos"
extensions = ["mkv", "mp4"]

[tmdb]
token = "secret"
timeout_seconds = 5

[[connectors]]
name = "library"
kind = "library"

[[connectors]]
name = "netflix"
kind = "site"
url = "https://www.netflix.com"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/media/videos", cfg.Library.Root)
	assert.Equal(t, []string{"mkv", "mp4"}, cfg.Library.Extensions)
	assert.Equal(t, "secret", cfg.TMDB.Token)
	assert.Equal(t, 5*time.Second, cfg.TMDB.Timeout())
	require.Len(t, cfg.Connectors, 2)
	assert.Equal(t, "netflix", cfg.Connectors[1].Name)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[library]
root = "/media/videos"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "./data/foyer.db", cfg.Database.Path)
	assert.Equal(t, "./data/posters", cfg.Library.ArtworkDir)
	assert.Equal(t, 4, cfg.Library.Concurrency)
	assert.Equal(t, 10*time.Second, cfg.TMDB.Timeout())
	assert.Equal(t, 3*time.Second, cfg.Player.InactivityTimeout())
	assert.Equal(t, 40.0, cfg.Player.MotionThresholdPX)
	assert.Equal(t, 5*time.Second, cfg.Player.SkipStep())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Contains(t, cfg.Library.Extensions, "mkv")
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("FOYER_TEST_TOKEN", "from-env")
	path := writeConfig(t, `
[library]
root = "/media/videos"

[tmdb]
token = "${FOYER_TEST_TOKEN}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.TMDB.Token)
}

func TestLoad_MissingEnvVar(t *testing.T) {
	path := writeConfig(t, `
[tmdb]
token = "${FOYER_DEFINITELY_UNSET_VAR}"
`)

	_, err := Load(path)
	require.Error(t, err)

	cfgErr, ok := err.(*ConfigError)
	require.True(t, ok)
	assert.True(t, cfgErr.HasErrors())
	assert.Contains(t, cfgErr.Missing, "FOYER_DEFINITELY_UNSET_VAR")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/does/not/exist.toml")
	assert.Error(t, err)
}

func TestEnsureDirs(t *testing.T) {
	root := t.TempDir()
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.Database.Path = filepath.Join(root, "data", "foyer.db")
	cfg.Library.ArtworkDir = filepath.Join(root, "posters")

	require.NoError(t, cfg.EnsureDirs())
	assert.DirExists(t, filepath.Join(root, "data"))
	assert.DirExists(t, filepath.Join(root, "posters"))
}
