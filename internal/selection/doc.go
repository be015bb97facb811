// Package selection models the Category → Show → Season → File hierarchy
// with tri-state checkboxes, independent of any rendering.
//
// The tree is rebuilt from each new plan and discarded once a batch is
// applied. Leaves default to checked; toggling a node pushes the state to
// every descendant and re-aggregates every ancestor. Which items a batch
// moves is decided solely by leaf state — ancestor state is informational.
package selection
