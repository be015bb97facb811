// Package logging wraps log/slog construction and attribute helpers so every
// component logs with the same shape.
//
// Components receive a *slog.Logger tagged via NewComponentLogger and attach
// structured attributes with the aliases defined here. Construction goes
// through Options/New so the CLI can pick console or JSON output and an
// optional log file without each component caring.
package logging
