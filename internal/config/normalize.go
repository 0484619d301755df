package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeEncoder(); err != nil {
		return err
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return c.normalizeMetrics()
}

func (c *Config) normalizeEncoder() error {
	var err error
	c.Encoder.FFmpegPath = strings.TrimSpace(c.Encoder.FFmpegPath)
	if c.Encoder.FFmpegPath == "" {
		if value, ok := os.LookupEnv(FFmpegEnv); ok {
			c.Encoder.FFmpegPath = strings.TrimSpace(value)
		}
	}
	if c.Encoder.FFmpegPath, err = expandBinary(c.Encoder.FFmpegPath); err != nil {
		return fmt.Errorf("encoder.ffmpeg_path: %w", err)
	}
	if c.Encoder.FFprobePath, err = expandBinary(strings.TrimSpace(c.Encoder.FFprobePath)); err != nil {
		return fmt.Errorf("encoder.ffprobe_path: %w", err)
	}
	if strings.TrimSpace(c.Encoder.ToolsDir) == "" {
		c.Encoder.ToolsDir = defaultToolsDir
	}
	if c.Encoder.ToolsDir, err = expandPath(strings.TrimSpace(c.Encoder.ToolsDir)); err != nil {
		return fmt.Errorf("encoder.tools_dir: %w", err)
	}
	return nil
}

// expandBinary leaves bare command names alone so they resolve via PATH.
func expandBinary(value string) (string, error) {
	if value == "" || !strings.ContainsAny(value, `/\~`) {
		return value, nil
	}
	return expandPath(value)
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeMetrics() error {
	var err error
	if c.Metrics.Textfile, err = expandPath(strings.TrimSpace(c.Metrics.Textfile)); err != nil {
		return fmt.Errorf("metrics.textfile: %w", err)
	}
	return nil
}
