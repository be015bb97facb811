package testsupport

import (
	"path/filepath"
	"testing"

	"reelsort/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// One source root and the destination root are created under the test's
// temp directory.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.SourceDirs = []string{MkDir(t, filepath.Join(base, "source"))}
	cfg.Paths.DestinationDir = MkDir(t, filepath.Join(base, "dest"))
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithSourceDirs replaces the source roots on the test config.
func WithSourceDirs(dirs ...string) ConfigOption {
	return func(c *config.Config) {
		c.Paths.SourceDirs = dirs
	}
}

// WithDestinationDir overrides the destination root on the test config.
func WithDestinationDir(dir string) ConfigOption {
	return func(c *config.Config) {
		c.Paths.DestinationDir = dir
	}
}
