package config

import (
	"fmt"
)

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	// Any logs below this level are ignored.
	Level string `koanf:"level" default:"info"`

	// Format selects the output format: "json" for Cloud Logging,
	// "console" for a human-readable local terminal.
	Format string `koanf:"format" default:"json"`
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate applies the rules that go beyond struct tags.
func (c *LoggingConfig) Validate() error {
	if !validLevels[c.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Level)
	}

	if !validFormats[c.Format] {
		return fmt.Errorf("invalid logging format: %s (must be one of: json, console)", c.Format)
	}

	return nil
}
