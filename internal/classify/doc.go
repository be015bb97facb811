// Package classify turns release filenames into structured media
// descriptors.
//
// Classification runs an ordered chain of heuristics where the first match
// wins: a numbered-franchise movie pattern, series patterns anchored at the
// start of the stem, series patterns anywhere in the stem, any injected
// guesser capabilities, and finally a movie fallback built from the cleaned
// stem. Classify never fails and is deterministic for a given
// (file name, parent directory name) pair.
//
// Guessers are optional collaborators injected at construction. A guesser
// that is unavailable or has no opinion is skipped silently; it can never
// abort classification.
package classify
