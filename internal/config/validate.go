package config

import (
	"fmt"
	"slices"
)

var ffmpegLogLevels = []string{
	"quiet", "panic", "fatal", "error", "warning", "info", "verbose", "debug", "trace",
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFFmpeg(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateFFmpeg() error {
	if !slices.Contains(ffmpegLogLevels, c.FFmpeg.LogLevel) {
		return fmt.Errorf("ffmpeg.log_level %q is not an ffmpeg log level", c.FFmpeg.LogLevel)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q must be console or json", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be debug, info, warn, or error", c.Logging.Level)
	}
	return nil
}
