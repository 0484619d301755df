package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateMetrics()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateMetrics() error {
	path := c.Metrics.Textfile
	if path == "" {
		return nil
	}
	// node_exporter's textfile collector only reads *.prom files.
	if !strings.EqualFold(filepath.Ext(path), ".prom") {
		return fmt.Errorf("metrics.textfile must end in .prom, got %q", path)
	}
	return nil
}
