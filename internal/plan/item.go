package plan

import "reelsort/internal/classify"

// Item is one file to relocate. Destination fields are computed once during
// planning and immutable afterwards.
type Item struct {
	SourcePath string
	Type       classify.ContentType

	// Series fields, zero-valued for movies.
	ShowTitle string
	Season    int
	Episodes  []int

	DestFileName string
	DestDir      string
	DestPath     string
}
