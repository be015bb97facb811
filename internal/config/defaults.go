package config

const (
	defaultLogDir           = "~/.local/share/reelsort/logs"
	defaultMoviesDir        = "Movies"
	defaultSeriesDir        = "Series"
	defaultExtension        = ".mkv"
	defaultSamplePattern    = `(?i)(sample|trailer|\b(rarbg|yts|ettv|eztv)\b)`
	defaultChunkSizeMiB     = 1
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultGuesserTorrent   = true
	defaultGuesserRelease   = true
)

func defaultVideoExtensions() []string {
	return []string{".avi", ".mkv", ".mp4", ".mov", ".wmv", ".flv"}
}

func defaultCompanionExtensions() []string {
	return []string{".srt", ".sub", ".idx", ".nfo", ".jpg", ".jpeg", ".png", ".txt"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Library: Library{
			MoviesDir:        defaultMoviesDir,
			SeriesDir:        defaultSeriesDir,
			DefaultExtension: defaultExtension,
		},
		Scan: Scan{
			VideoExtensions:     defaultVideoExtensions(),
			CompanionExtensions: defaultCompanionExtensions(),
			SamplePattern:       defaultSamplePattern,
		},
		Transfer: Transfer{
			ChunkSizeMiB: defaultChunkSizeMiB,
		},
		Guessers: Guessers{
			TorrentName: defaultGuesserTorrent,
			ReleaseName: defaultGuesserRelease,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
