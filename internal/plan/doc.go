// Package plan turns source directories into an ordered list of planned
// relocations.
//
// The planner is pure: given a descriptor, an extension, and the destination
// root it computes the canonical destination directory and sanitized file
// name. The builder walks the source roots read-only, classifies every
// qualifying video file, and collects per-file analysis warnings without ever
// aborting the scan.
package plan
