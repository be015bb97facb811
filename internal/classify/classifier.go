package classify

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"reelsort/internal/logging"
	"reelsort/internal/textutil"
)

const unknownTitle = "Unknown"

var (
	// Movies shaped like "Franchise NN - Title [tags]".
	numberedFranchise = regexp.MustCompile(`^\s*(.+?)\s+(\d{1,3})\s*[-\x{2013}\x{2014}]\s*([^\[(]+?)\s*(?:\[[^\]]*\]|\([^)]*\))*\s*$`)

	// Series patterns anchored at the start of the stem: "<title> S01E02 ..."
	// and "<title> 01x02 ...".
	seriesWithTitle = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^\s*(.+?)[\s._-]*S(\d{1,2})E(\d{1,3})\b`),
		regexp.MustCompile(`(?i)^\s*(.+?)[\s._-]*(\d{1,2})x(\d{1,3})\b`),
	}

	// Series tokens anywhere in the stem. The surrounding non-alphanumeric
	// requirement keeps resolution tokens like 720p or 1280x720 out.
	seriesAnywhere = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:^|[^A-Za-z0-9])S(\d{1,2})E(\d{1,3})(?:[^A-Za-z0-9]|$)`),
		regexp.MustCompile(`(?i)(?:^|[^A-Za-z0-9])(\d{1,2})x(\d{1,3})(?:[^A-Za-z0-9]|$)`),
	}

	temporadaClause    = regexp.MustCompile(`(?i)^(.+?)\s*-\s*Temporada\b`)
	seasonWordSplit    = regexp.MustCompile(`(?i)\bTemporada\b`)
	parentJunkWords    = regexp.MustCompile(`(?i)\b(Temporada|Completa|DVDRip|HDTV|WEB[- ]?DL|BluRay)\b.*$`)
	trailingSeparators = regexp.MustCompile(`[\s._-]+$`)
	digitRun           = regexp.MustCompile(`\d+`)
)

// Classifier runs the heuristic rule chain, consulting the injected guessers
// only when no local rule matches.
type Classifier struct {
	guessers []Guesser
	logger   *slog.Logger
}

// New builds a classifier. Guessers are consulted in the given order.
func New(logger *slog.Logger, guessers ...Guesser) *Classifier {
	return &Classifier{
		guessers: guessers,
		logger:   logging.NewComponentLogger(logger, "classify"),
	}
}

// Classify turns a file base name plus its parent directory name into a
// descriptor. It never fails: when nothing matches, the cleaned stem becomes
// a movie title.
func (c *Classifier) Classify(fileBaseName, parentDirName string) Descriptor {
	ext := filepath.Ext(fileBaseName)
	stem := strings.TrimSuffix(fileBaseName, ext)
	cleaned := textutil.StripReleaseTags(stem)

	if d, ok := matchNumberedFranchise(cleaned); ok {
		c.logRule(fileBaseName, "numbered_franchise", d)
		return d
	}
	if d, ok := matchSeriesLeading(cleaned, parentDirName); ok {
		c.logRule(fileBaseName, "series_leading_title", d)
		return d
	}
	if d, ok := matchSeriesAnywhere(cleaned, parentDirName); ok {
		c.logRule(fileBaseName, "series_token_anywhere", d)
		return d
	}
	for _, g := range c.guessers {
		if g == nil || !g.Available() {
			continue
		}
		guess, ok := g.Guess(fileBaseName)
		if !ok {
			continue
		}
		if d, ok := descriptorFromGuess(guess, cleaned, parentDirName); ok {
			c.logRule(fileBaseName, "guesser_"+g.Name(), d)
			return d
		}
	}

	d := fallbackMovie(cleaned)
	c.logRule(fileBaseName, "movie_fallback", d)
	return d
}

func (c *Classifier) logRule(name, rule string, d Descriptor) {
	c.logger.Debug("classified file",
		logging.Args(
			logging.String("file", name),
			logging.String("rule", rule),
			logging.String("content_type", d.Type.String()),
		)...)
}

func matchNumberedFranchise(cleaned string) (Descriptor, bool) {
	m := numberedFranchise.FindStringSubmatch(cleaned)
	if m == nil {
		return Descriptor{}, false
	}
	franchise := textutil.BeautifySpaces(m[1])
	num := parseNum(m[2])
	titlePart := textutil.BeautifySpaces(m[3])
	title := textutil.SanitizeFileName(fmt.Sprintf("%s %02d - %s", franchise, num, titlePart))
	return Descriptor{Type: Movie, Title: title}, true
}

func matchSeriesLeading(cleaned, parentDirName string) (Descriptor, bool) {
	for _, rx := range seriesWithTitle {
		m := rx.FindStringSubmatchIndex(cleaned)
		if m == nil {
			continue
		}
		rawTitle := cleaned[m[2]:m[3]]
		rawTitle = seasonWordSplit.Split(rawTitle, 2)[0]
		season := parseNum(cleaned[m[4]:m[5]])
		episode := parseNum(cleaned[m[6]:m[7]])
		show := resolveShowTitle(rawTitle, parentDirName)
		epTitle := textutil.CleanEpisodeTitle(cleaned[m[1]:])
		return seriesDescriptor(show, season, []int{episode}, epTitle), true
	}
	return Descriptor{}, false
}

func matchSeriesAnywhere(cleaned, parentDirName string) (Descriptor, bool) {
	for _, rx := range seriesAnywhere {
		m := rx.FindStringSubmatchIndex(cleaned)
		if m == nil {
			continue
		}
		season := parseNum(cleaned[m[2]:m[3]])
		episode := parseNum(cleaned[m[4]:m[5]])
		prefix := trailingSeparators.ReplaceAllString(cleaned[:m[0]], "")
		show := resolveShowTitle(prefix, parentDirName)
		epTitle := textutil.CleanEpisodeTitle(cleaned[m[1]:])
		return seriesDescriptor(show, season, []int{episode}, epTitle), true
	}
	return Descriptor{}, false
}

func descriptorFromGuess(guess Guess, cleaned, parentDirName string) (Descriptor, bool) {
	hasEpisodeFields := guess.Season > 0 || len(guess.Episodes) > 0
	switch {
	case guess.Episode || hasEpisodeFields:
		title := strings.TrimSpace(guess.Title)
		if title == "" {
			title = cleaned
		}
		for _, rx := range seriesWithTitle {
			if m := rx.FindStringSubmatch(title); m != nil {
				title = m[1]
				break
			}
		}
		show := resolveShowTitle(title, parentDirName)

		season := guess.Season
		if season <= 0 {
			season = 1
		}
		episodes := make([]int, 0, len(guess.Episodes))
		for _, e := range guess.Episodes {
			if e > 0 {
				episodes = append(episodes, e)
			}
		}
		if len(episodes) == 0 {
			episodes = []int{1}
		}

		epTitle := textutil.CleanEpisodeTitle(guess.EpisodeTitle)
		if epTitle == "" {
			epTitle = episodeTitleFromStem(cleaned)
		}
		return seriesDescriptor(show, season, episodes, epTitle), true
	case guess.Movie:
		title := textutil.BeautifySpaces(guess.Title)
		if title == "" {
			title = textutil.BeautifySpaces(cleaned)
		}
		if title == "" {
			title = unknownTitle
		}
		return Descriptor{Type: Movie, Title: title, Year: guess.Year}, true
	default:
		return Descriptor{}, false
	}
}

func fallbackMovie(cleaned string) Descriptor {
	title := textutil.BeautifySpaces(cleaned)
	if title == "" {
		title = unknownTitle
	}
	return Descriptor{Type: Movie, Title: title}
}

func seriesDescriptor(show string, season int, episodes []int, epTitle string) Descriptor {
	return Descriptor{
		Type:         Series,
		ShowTitle:    show,
		Season:       season,
		Episodes:     episodes,
		EpisodeTitle: epTitle,
	}
}

// resolveShowTitle cleans a candidate show title, falling back to the parent
// directory name and finally to "Unknown".
func resolveShowTitle(candidate, parentDirName string) string {
	show := textutil.SanitizeFileName(textutil.BeautifySpaces(candidate))
	if show == "" {
		show = showFromParentDir(parentDirName)
	}
	if show == "" {
		show = unknownTitle
	}
	return show
}

func showFromParentDir(parentDirName string) string {
	parent := textutil.BeautifySpaces(textutil.StripReleaseTags(parentDirName))
	if m := temporadaClause.FindStringSubmatch(parent); m != nil {
		return textutil.SanitizeFileName(textutil.BeautifySpaces(m[1]))
	}
	parent = strings.Trim(parentJunkWords.ReplaceAllString(parent, ""), " -")
	if parent != "" {
		return textutil.SanitizeFileName(parent)
	}
	return ""
}

// episodeTitleFromStem re-derives an episode title from the text following a
// season/episode token found anywhere in the stem.
func episodeTitleFromStem(cleaned string) string {
	for _, rx := range seriesAnywhere {
		if m := rx.FindStringIndex(cleaned); m != nil {
			return textutil.CleanEpisodeTitle(cleaned[m[1]:])
		}
	}
	return ""
}

// parseNum extracts the first integer run from a token. Anything missing,
// unparsable, or non-positive becomes 1.
func parseNum(token string) int {
	m := digitRun.FindString(token)
	if m == "" {
		return 1
	}
	n, err := strconv.Atoi(m)
	if err != nil || n <= 0 {
		return 1
	}
	return n
}
