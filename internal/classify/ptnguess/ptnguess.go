// Package ptnguess adapts the parse-torrent-name library as an optional
// classification guesser. It only reports an opinion when the parse yields a
// season or episode number.
package ptnguess

import (
	ptn "github.com/middelink/go-parse-torrent-name"

	"reelsort/internal/classify"
)

// Guesser wraps the torrent-name parser.
type Guesser struct{}

// New returns a torrent-name guesser.
func New() *Guesser {
	return &Guesser{}
}

// Name identifies the guesser in logs.
func (g *Guesser) Name() string { return "torrent_name" }

// Available reports whether the parser can be consulted.
func (g *Guesser) Available() bool { return g != nil }

// Guess parses the file name. Parse failures and names without season or
// episode information are reported as no opinion.
func (g *Guesser) Guess(fileName string) (classify.Guess, bool) {
	info, err := ptn.Parse(fileName)
	if err != nil || info == nil {
		return classify.Guess{}, false
	}
	if info.Season <= 0 && info.Episode <= 0 {
		return classify.Guess{}, false
	}

	guess := classify.Guess{
		Title:   info.Title,
		Season:  info.Season,
		Year:    info.Year,
		Episode: true,
	}
	if info.Episode > 0 {
		guess.Episodes = []int{info.Episode}
	}
	return guess, true
}
