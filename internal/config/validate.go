package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// Validate ensures the configuration values are structurally usable. It does
// not touch the filesystem; use ValidateRoots for that.
func (c *Config) Validate() error {
	if err := c.validateLibrary(); err != nil {
		return err
	}
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

// ValidateRoots verifies that every configured source root and the
// destination root exist as directories. Commands call this after merging
// flag overrides, before any scan or move starts.
func (c *Config) ValidateRoots() error {
	if len(c.Paths.SourceDirs) == 0 {
		return errors.New("paths.source_dirs: at least one source directory is required")
	}
	for _, dir := range c.Paths.SourceDirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("paths.source_dirs: %q is not an existing directory", dir)
		}
	}
	if c.Paths.DestinationDir == "" {
		return errors.New("paths.destination_dir must be set")
	}
	info, err := os.Stat(c.Paths.DestinationDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("paths.destination_dir: %q is not an existing directory", c.Paths.DestinationDir)
	}
	return nil
}

func (c *Config) validateLibrary() error {
	if c.Library.MoviesDir == "" {
		return errors.New("library.movies_dir must be set")
	}
	if c.Library.SeriesDir == "" {
		return errors.New("library.series_dir must be set")
	}
	return nil
}

func (c *Config) validateScan() error {
	if len(c.Scan.VideoExtensions) == 0 {
		return errors.New("scan.video_extensions must not be empty")
	}
	if _, err := regexp.Compile(c.Scan.SamplePattern); err != nil {
		return fmt.Errorf("scan.sample_pattern: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
