// Package config loads, normalizes, and validates ffab configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the FFAB_FFMPEG environment
// fallback for the ffmpeg binary. The Config type centralizes the knobs the
// CLI needs: how the ffmpeg command line is assembled, where chain documents
// live, and how logs are written.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
