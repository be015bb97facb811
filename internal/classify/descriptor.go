package classify

import "fmt"

// ContentType distinguishes the two classification outcomes.
type ContentType int

const (
	Movie ContentType = iota
	Series
)

func (t ContentType) String() string {
	if t == Series {
		return "series"
	}
	return "movie"
}

// Descriptor is the structured classification result.
type Descriptor struct {
	Type ContentType

	// Movie fields.
	Title string
	Year  int // 0 when unknown

	// Series fields.
	ShowTitle    string
	Season       int
	Episodes     []int
	EpisodeTitle string
}

// EpisodeLabel renders the season/episode token: "04x05" for a single
// episode, "04x05-07" for a contiguous multi-episode file.
func (d Descriptor) EpisodeLabel() string {
	if len(d.Episodes) == 0 {
		return fmt.Sprintf("%02dx%02d", d.Season, 1)
	}
	if len(d.Episodes) == 1 {
		return fmt.Sprintf("%02dx%02d", d.Season, d.Episodes[0])
	}
	return fmt.Sprintf("%02dx%02d-%02d", d.Season, d.Episodes[0], d.Episodes[len(d.Episodes)-1])
}
