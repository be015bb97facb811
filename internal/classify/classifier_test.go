package classify

import (
	"reflect"
	"testing"
)

type stubGuesser struct {
	name      string
	available bool
	guess     Guess
	ok        bool
	calls     int
}

func (s *stubGuesser) Name() string    { return s.name }
func (s *stubGuesser) Available() bool { return s.available }
func (s *stubGuesser) Guess(string) (Guess, bool) {
	s.calls++
	return s.guess, s.ok
}

func TestClassifySeriesWithLeadingTitle(t *testing.T) {
	c := New(nil)
	d := c.Classify("Cheers_04x05-Tortilla.mkv", "")

	if d.Type != Series {
		t.Fatalf("Type = %v, want Series", d.Type)
	}
	if d.ShowTitle != "Cheers" {
		t.Errorf("ShowTitle = %q, want Cheers", d.ShowTitle)
	}
	if d.Season != 4 {
		t.Errorf("Season = %d, want 4", d.Season)
	}
	if !reflect.DeepEqual(d.Episodes, []int{5}) {
		t.Errorf("Episodes = %v, want [5]", d.Episodes)
	}
	if d.EpisodeTitle != "Tortilla" {
		t.Errorf("EpisodeTitle = %q, want Tortilla", d.EpisodeTitle)
	}
	if got := d.EpisodeLabel(); got != "04x05" {
		t.Errorf("EpisodeLabel() = %q, want 04x05", got)
	}
}

func TestClassifySxxEyyForm(t *testing.T) {
	c := New(nil)
	d := c.Classify("The.Wire.S03E11.Middle.Ground.720p.mkv", "")

	if d.Type != Series {
		t.Fatalf("Type = %v, want Series", d.Type)
	}
	if d.ShowTitle != "The Wire" {
		t.Errorf("ShowTitle = %q, want The Wire", d.ShowTitle)
	}
	if d.Season != 3 || !reflect.DeepEqual(d.Episodes, []int{11}) {
		t.Errorf("Season/Episodes = %d/%v, want 3/[11]", d.Season, d.Episodes)
	}
	if d.EpisodeTitle != "Middle Ground 720p" {
		t.Errorf("EpisodeTitle = %q", d.EpisodeTitle)
	}
}

func TestClassifyNumberedFranchiseMovie(t *testing.T) {
	c := New(nil)
	d := c.Classify("Shin Chan 01 - La Pelicula.mkv", "")

	if d.Type != Movie {
		t.Fatalf("Type = %v, want Movie", d.Type)
	}
	if d.Title != "Shin Chan 01 - La Pelicula" {
		t.Errorf("Title = %q, want Shin Chan 01 - La Pelicula", d.Title)
	}
	if d.Year != 0 {
		t.Errorf("Year = %d, want 0", d.Year)
	}
}

func TestClassifyFranchiseBeatsSeriesPattern(t *testing.T) {
	// A stem matching both the franchise and a series form resolves as a
	// movie because the franchise rule runs first.
	c := New(nil)
	d := c.Classify("Saga 2 - The 1x01 Story.mkv", "")
	if d.Type != Movie {
		t.Errorf("Type = %v, want Movie (franchise rule wins)", d.Type)
	}
}

func TestClassifyMovieFallback(t *testing.T) {
	c := New(nil)
	d := c.Classify("random.release.720p.mkv", "")

	if d.Type != Movie {
		t.Fatalf("Type = %v, want Movie", d.Type)
	}
	if d.Title != "random release 720p" {
		t.Errorf("Title = %q, want cleaned stem", d.Title)
	}
}

func TestClassifyShowFromParentDir(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		parent string
		want   string
	}{
		{"temporada clause", "4x05.mkv", "Cheers - Temporada 4 Completa", "Cheers"},
		{"junk words stripped", "4x05.mkv", "Cheers Temporada 04 DVDRip", "Cheers"},
		{"no derivable title", "4x05.mkv", "", "Unknown"},
	}

	c := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := c.Classify(tt.file, tt.parent)
			if d.Type != Series {
				t.Fatalf("Type = %v, want Series", d.Type)
			}
			if d.ShowTitle != tt.want {
				t.Errorf("ShowTitle = %q, want %q", d.ShowTitle, tt.want)
			}
		})
	}
}

func TestClassifyStripsReleaseTags(t *testing.T) {
	c := New(nil)
	d := c.Classify("Cheers 04x05 - Tortilla [720p][x265].mkv", "")
	if d.EpisodeTitle != "Tortilla" {
		t.Errorf("EpisodeTitle = %q, want Tortilla", d.EpisodeTitle)
	}
}

func TestClassifyGuesserEpisode(t *testing.T) {
	g := &stubGuesser{
		name:      "stub",
		available: true,
		guess:     Guess{Title: "Some Show", Season: 2, Episodes: []int{3, 4}, Episode: true},
		ok:        true,
	}
	c := New(nil, g)
	d := c.Classify("unparseable-name.mkv", "")

	if d.Type != Series {
		t.Fatalf("Type = %v, want Series", d.Type)
	}
	if d.ShowTitle != "Some Show" {
		t.Errorf("ShowTitle = %q", d.ShowTitle)
	}
	if got := d.EpisodeLabel(); got != "02x03-04" {
		t.Errorf("EpisodeLabel() = %q, want 02x03-04", got)
	}
}

func TestClassifyGuesserMovieWithYear(t *testing.T) {
	g := &stubGuesser{
		name:      "stub",
		available: true,
		guess:     Guess{Title: "Heat", Year: 1995, Movie: true},
		ok:        true,
	}
	c := New(nil, g)
	d := c.Classify("heat.remastered.mkv", "")

	if d.Type != Movie || d.Title != "Heat" || d.Year != 1995 {
		t.Errorf("descriptor = %+v, want Heat (1995) movie", d)
	}
}

func TestClassifyLocalRulesBeatGuessers(t *testing.T) {
	g := &stubGuesser{
		name:      "stub",
		available: true,
		guess:     Guess{Title: "Wrong", Movie: true},
		ok:        true,
	}
	c := New(nil, g)
	d := c.Classify("Cheers_04x05-Tortilla.mkv", "")

	if d.Type != Series || d.ShowTitle != "Cheers" {
		t.Errorf("descriptor = %+v, want local series match", d)
	}
	if g.calls != 0 {
		t.Errorf("guesser consulted %d times, want 0", g.calls)
	}
}

func TestClassifyUnavailableGuesserSkipped(t *testing.T) {
	g := &stubGuesser{name: "stub", available: false}
	c := New(nil, g)
	d := c.Classify("random.release.mkv", "")

	if g.calls != 0 {
		t.Errorf("unavailable guesser consulted %d times, want 0", g.calls)
	}
	if d.Type != Movie {
		t.Errorf("Type = %v, want Movie fallback", d.Type)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := New(nil)
	names := []string{
		"Cheers_04x05-Tortilla.mkv",
		"Shin Chan 01 - La Pelicula.mkv",
		"random.release.720p.mkv",
		"show.s01e02.hdtv.mkv",
	}
	for _, name := range names {
		first := c.Classify(name, "Parent Dir")
		second := c.Classify(name, "Parent Dir")
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Classify(%q) not deterministic: %+v vs %+v", name, first, second)
		}
	}
}

func TestClassifyZeroNumbersClampToOne(t *testing.T) {
	c := New(nil)
	d := c.Classify("show 00x00.mkv", "")
	if d.Type != Series {
		t.Fatalf("Type = %v, want Series", d.Type)
	}
	if d.Season != 1 || !reflect.DeepEqual(d.Episodes, []int{1}) {
		t.Errorf("Season/Episodes = %d/%v, want 1/[1]", d.Season, d.Episodes)
	}
}
