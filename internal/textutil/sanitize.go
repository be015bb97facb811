package textutil

import (
	"regexp"
	"strings"
)

var (
	trailingTag       = regexp.MustCompile(`\s*(?:\[[^\]]*\]|\([^)]*\))\s*$`)
	fancyDash         = regexp.MustCompile(`\s*[\x{2013}\x{2014}]\s*`)
	whitespaceRun     = regexp.MustCompile(`\s+`)
	trailingDash      = regexp.MustCompile(`\s*[-\x{2013}\x{2014}]\s*$`)
	leadingEpNoise    = regexp.MustCompile(`^[\s.\-_:\x{2013}\x{2014}]+`)
	leadingEpToken    = regexp.MustCompile(`(?i)^(S?\s*\d{1,2}\s*[xE]\s*\d{1,3})(?:\s*[-_.])?\s*`)
	trailingEpToken   = regexp.MustCompile(`(?i)\s*(?:[-_.])?\s*(S?\s*\d{1,2}\s*[xE]\s*\d{1,3})\s*$`)
	invalidNameChars  = strings.NewReplacer("<", "_", ">", "_", ":", "_", "\"", "_", "/", "_", "\\", "_", "|", "_", "?", "_", "*", "_")
	reservedBaseNames = map[string]struct{}{
		"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
		"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
		"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
		"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
		"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
	}
)

// BeautifySpaces turns separator characters into single spaces and drops a
// trailing dash: "The.Show_Name -" becomes "The Show Name".
func BeautifySpaces(text string) string {
	t := strings.NewReplacer("_", " ", ".", " ").Replace(text)
	t = trailingDash.ReplaceAllString(t, "")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(t, " "))
}

// StripReleaseTags removes trailing bracketed or parenthesized release tags
// until none remain, normalizes en/em dashes to " - ", and collapses runs of
// whitespace.
func StripReleaseTags(stem string) string {
	s := stem
	for {
		next := trailingTag.ReplaceAllString(s, "")
		if next == s {
			break
		}
		s = next
	}
	s = fancyDash.ReplaceAllString(s, " - ")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.Trim(s, " -")
}

// CleanEpisodeTitle normalizes the text that follows a season/episode token:
// leading separators go, a duplicated season/episode token at either end goes,
// and release tags are stripped again.
func CleanEpisodeTitle(s string) string {
	s = leadingEpNoise.ReplaceAllString(s, "")
	s = leadingEpToken.ReplaceAllString(s, "")
	s = trailingEpToken.ReplaceAllString(s, "")
	s = StripReleaseTags(s)
	return BeautifySpaces(s)
}

// SanitizeFileName replaces characters illegal on common filesystems with an
// underscore, collapses whitespace, and prefixes reserved device names
// (CON, NUL, COM1, ...) with an underscore so the result is safe as a single
// path segment.
func SanitizeFileName(name string) string {
	name = invalidNameChars.Replace(name)
	name = strings.TrimSpace(whitespaceRun.ReplaceAllString(name, " "))

	base, rest, found := strings.Cut(name, ".")
	if _, reserved := reservedBaseNames[strings.ToUpper(base)]; reserved {
		base = "_" + base
	}
	if found {
		return base + "." + rest
	}
	return base
}
