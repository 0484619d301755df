// Package config loads, normalizes, and validates vidcompress configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the VIDCOMPRESS_FFMPEG environment fallback. Only
// ambient concerns live here: where the encoder binaries are, how logs are
// written, and where metrics land. The compression policy itself is fixed.
package config
