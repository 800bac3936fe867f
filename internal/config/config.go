// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Library    LibraryConfig     `toml:"library"`
	Database   DatabaseConfig    `toml:"database"`
	TMDB       TMDBConfig        `toml:"tmdb"`
	Player     PlayerConfig      `toml:"player"`
	Log        LogConfig         `toml:"log"`
	Connectors []ConnectorConfig `toml:"connectors"`
}

// LibraryConfig describes the local media folder and how it is scanned.
type LibraryConfig struct {
	Root        string   `toml:"root"`
	Extensions  []string `toml:"extensions"`
	ArtworkDir  string   `toml:"artwork_dir"`
	Concurrency int      `toml:"concurrency"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

// TMDBConfig configures the remote metadata provider.
type TMDBConfig struct {
	Token          string `toml:"token"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Timeout returns the request timeout as a duration.
func (c TMDBConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// PlayerConfig tunes the playback session heuristics.
type PlayerConfig struct {
	InactivityTimeoutMS int     `toml:"inactivity_timeout_ms"`
	MotionThresholdPX   float64 `toml:"motion_threshold_px"`
	SkipSeconds         int     `toml:"skip_seconds"`
}

// InactivityTimeout returns the controls hide timeout as a duration.
func (c PlayerConfig) InactivityTimeout() time.Duration {
	return time.Duration(c.InactivityTimeoutMS) * time.Millisecond
}

// SkipStep returns the skip distance as a duration.
func (c PlayerConfig) SkipStep() time.Duration {
	return time.Duration(c.SkipSeconds) * time.Second
}

type LogConfig struct {
	Level string `toml:"level"`
}

// ConnectorConfig describes one launch icon and the behavior behind it.
// Kind selects the activator: "library" opens the local catalog, "site"
// launches a kiosk browser at the configured URL.
type ConnectorConfig struct {
	Name    string   `toml:"name"`
	Icon    string   `toml:"icon"`
	Kind    string   `toml:"kind"`
	URL     string   `toml:"url"`
	Browser []string `toml:"browser"`
	Profile string   `toml:"profile"`
	Args    []string `toml:"args"`
}

// Load reads and parses the configuration file. Unresolved environment
// variables are reported through a ConfigError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.Library.Extensions) == 0 {
		c.Library.Extensions = []string{"mp4", "mkv", "avi", "mov", "webm"}
	}
	if c.Library.ArtworkDir == "" {
		c.Library.ArtworkDir = "./data/posters"
	}
	if c.Library.Concurrency == 0 {
		c.Library.Concurrency = 4
	}
	if c.Database.Path == "" {
		c.Database.Path = "./data/foyer.db"
	}
	if c.TMDB.TimeoutSeconds == 0 {
		c.TMDB.TimeoutSeconds = 10
	}
	if c.Player.InactivityTimeoutMS == 0 {
		c.Player.InactivityTimeoutMS = 3000
	}
	if c.Player.MotionThresholdPX == 0 {
		c.Player.MotionThresholdPX = 40
	}
	if c.Player.SkipSeconds == 0 {
		c.Player.SkipSeconds = 5
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// EnsureDirs creates the directories the application needs at startup: the
// database parent and the artwork folder.
func (c *Config) EnsureDirs() error {
	dirs := []string{
		filepath.Dir(c.Database.Path),
		c.Library.ArtworkDir,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
// and reports the names it could not resolve.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) (string, []string) {
	var missing []string
	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1]
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		missing = append(missing, varName)
		return match
	})
	return result, missing
}
