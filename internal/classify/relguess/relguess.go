// Package relguess adapts the rls release-name parser as an optional
// classification guesser. Unlike the torrent-name guesser it also types
// names, so it can report movie opinions with a release year.
package relguess

import (
	"github.com/moistari/rls"

	"reelsort/internal/classify"
)

// Guesser wraps the rls release-name parser.
type Guesser struct{}

// New returns a release-name guesser.
func New() *Guesser {
	return &Guesser{}
}

// Name identifies the guesser in logs.
func (g *Guesser) Name() string { return "release_name" }

// Available reports whether the parser can be consulted.
func (g *Guesser) Available() bool { return g != nil }

// Guess parses the file name and reports an opinion for names rls types as
// an episode or a movie. Everything else is no opinion.
func (g *Guesser) Guess(fileName string) (classify.Guess, bool) {
	release := rls.ParseString(fileName)

	switch release.Type {
	case rls.Episode:
		guess := classify.Guess{
			Title:   release.Title,
			Season:  release.Series,
			Year:    release.Year,
			Episode: true,
		}
		if release.Episode > 0 {
			guess.Episodes = []int{release.Episode}
		}
		return guess, true
	case rls.Movie:
		return classify.Guess{
			Title: release.Title,
			Year:  release.Year,
			Movie: true,
		}, true
	default:
		return classify.Guess{}, false
	}
}
