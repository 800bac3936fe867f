package config

import (
	"fmt"
	"os"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

var validConnectorKinds = map[string]bool{
	"library": true, "site": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Library.Root == "" {
		errs = append(errs, "library.root: required")
	} else if _, err := os.Stat(c.Library.Root); os.IsNotExist(err) {
		errs = append(errs, fmt.Sprintf("library.root: warning: directory %q does not exist", c.Library.Root))
	}

	if c.TMDB.Token == "" {
		errs = append(errs, "tmdb.token: required for metadata enrichment")
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if c.Player.MotionThresholdPX < 0 {
		errs = append(errs, fmt.Sprintf("player.motion_threshold_px: must not be negative, got %v", c.Player.MotionThresholdPX))
	}

	seen := make(map[string]bool)
	for i, conn := range c.Connectors {
		if conn.Name == "" {
			errs = append(errs, fmt.Sprintf("connectors[%d].name: required", i))
			continue
		}
		if seen[conn.Name] {
			errs = append(errs, fmt.Sprintf("connectors.%s: duplicate name", conn.Name))
		}
		seen[conn.Name] = true

		if !validConnectorKinds[conn.Kind] {
			errs = append(errs, fmt.Sprintf("connectors.%s.kind: must be one of library, site; got %q", conn.Name, conn.Kind))
		}
		if conn.Kind == "site" && conn.URL == "" {
			errs = append(errs, fmt.Sprintf("connectors.%s.url: required for site connectors", conn.Name))
		}
	}

	return errs
}
