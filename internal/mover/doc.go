// Package mover relocates planned items with byte-accurate progress.
//
// Each item is processed independently and strictly in plan order: ensure the
// destination directory, overwrite any existing destination, attempt an
// atomic rename, and fall back to a chunked copy plus source delete only when
// the rename fails because source and destination live on different volumes.
// Companion files sharing the source stem travel immediately after their
// primary file under the destination's new stem. Failures are collected per
// item; one bad item never aborts the batch.
//
// The cleanup sweep runs after a batch and removes source subdirectories
// that no longer contain any video file, deepest first, scoped to the
// configured source roots.
package mover
