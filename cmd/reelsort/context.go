package main

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"reelsort/internal/classify"
	"reelsort/internal/classify/ptnguess"
	"reelsort/internal/classify/relguess"
	"reelsort/internal/config"
	"reelsort/internal/logging"
	"reelsort/internal/plan"
)

type commandContext struct {
	configFlag  *string
	sourceFlags *[]string
	destFlag    *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string, sourceFlags *[]string, destFlag *string) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		sourceFlags: sourceFlags,
		destFlag:    destFlag,
	}
}

// ensureConfig loads the configuration once and layers the persistent flag
// overrides on top. Filesystem checks are deferred to the commands that
// actually touch the roots.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.sourceFlags != nil && len(*c.sourceFlags) > 0 {
			cfg.Paths.SourceDirs = absAll(*c.sourceFlags)
		}
		if c.destFlag != nil && strings.TrimSpace(*c.destFlag) != "" {
			if abs, err := filepath.Abs(strings.TrimSpace(*c.destFlag)); err == nil {
				cfg.Paths.DestinationDir = abs
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			LogDir: cfg.Paths.LogDir,
		})
	})
	return c.logger, c.loggerErr
}

// newBuilder wires the classifier with the configured guessers and returns a
// plan builder ready to scan.
func (c *commandContext) newBuilder() (*plan.Builder, *config.Config, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, err
	}

	var guessers []classify.Guesser
	if cfg.Guessers.TorrentName {
		guessers = append(guessers, ptnguess.New())
	}
	if cfg.Guessers.ReleaseName {
		guessers = append(guessers, relguess.New())
	}

	classifier := classify.New(logger, guessers...)
	builder, err := plan.NewBuilder(cfg, classifier, logger)
	if err != nil {
		return nil, nil, err
	}
	return builder, cfg, nil
}

func absAll(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if abs, err := filepath.Abs(strings.TrimSpace(p)); err == nil {
			out = append(out, abs)
		}
	}
	return out
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
