package classify

// Guess is the normalized opinion of an external filename guesser. Zero
// numeric fields mean "not reported".
type Guess struct {
	Title        string
	Season       int
	Episodes     []int
	Year         int
	EpisodeTitle string
	// Episode and Movie report the guesser's own typing of the name, when
	// it produces one.
	Episode bool
	Movie   bool
}

// Guesser is an optional title-guessing capability. Implementations fail
// closed: no opinion is reported as ok=false, never as an error.
type Guesser interface {
	// Name identifies the guesser in logs.
	Name() string
	// Available reports whether the capability can be consulted at all.
	Available() bool
	// Guess parses the given file name (extension included) and reports
	// whether it has an opinion.
	Guess(fileName string) (Guess, bool)
}
