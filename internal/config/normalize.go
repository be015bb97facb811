package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLibrary()
	c.normalizeScan()
	c.normalizeTransfer()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	sources := make([]string, 0, len(c.Paths.SourceDirs))
	for _, dir := range c.Paths.SourceDirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		expanded, err := expandPath(dir)
		if err != nil {
			return fmt.Errorf("paths.source_dirs: %w", err)
		}
		sources = append(sources, expanded)
	}
	c.Paths.SourceDirs = sources

	if c.Paths.DestinationDir, err = expandPath(strings.TrimSpace(c.Paths.DestinationDir)); err != nil {
		return fmt.Errorf("paths.destination_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLibrary() {
	if strings.TrimSpace(c.Library.MoviesDir) == "" {
		c.Library.MoviesDir = defaultMoviesDir
	}
	if strings.TrimSpace(c.Library.SeriesDir) == "" {
		c.Library.SeriesDir = defaultSeriesDir
	}
	ext := strings.TrimSpace(c.Library.DefaultExtension)
	if ext == "" {
		ext = defaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	c.Library.DefaultExtension = strings.ToLower(ext)
}

func (c *Config) normalizeScan() {
	c.Scan.VideoExtensions = normalizeExtensions(c.Scan.VideoExtensions, defaultVideoExtensions())
	c.Scan.CompanionExtensions = normalizeExtensions(c.Scan.CompanionExtensions, defaultCompanionExtensions())
	if strings.TrimSpace(c.Scan.SamplePattern) == "" {
		c.Scan.SamplePattern = defaultSamplePattern
	}
}

func (c *Config) normalizeTransfer() {
	if c.Transfer.ChunkSizeMiB <= 0 {
		c.Transfer.ChunkSizeMiB = defaultChunkSizeMiB
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func normalizeExtensions(values, fallback []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if !strings.HasPrefix(v, ".") {
			v = "." + v
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
