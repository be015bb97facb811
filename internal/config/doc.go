// Package config loads, normalizes, and validates the reelsort configuration.
//
// Configuration sections by subsystem:
//   - Paths: source roots, destination root, log directory
//   - Library: destination layout names and the default container extension
//   - Scan: recognized video/companion extensions and the sample-name filter
//   - Transfer: chunked-copy tuning for cross-volume moves
//   - Guessers: optional filename-guessing capabilities
//   - Logging: log format and level
//
// Load applies defaults, decodes the TOML file when present, expands paths,
// and validates structural values. Existence of the configured roots is
// checked separately via ValidateRoots so commands can merge flag overrides
// first.
package config
