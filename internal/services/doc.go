// Package services defines the shared error taxonomy consumed by the
// planning, moving, and cleanup components.
//
// Key responsibilities:
//   - Structured error markers that classify failures (configuration,
//     analysis, move, cleanup) so callers can decide between failing fast
//     and collecting.
//   - The Wrap helper that builds consistent, path-carrying error messages
//     out of component/operation context.
//
// Use these helpers when wiring new component logic so error handling stays
// uniform across the batch lifecycle.
package services
