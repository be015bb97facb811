package plan

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"reelsort/internal/classify"
	"reelsort/internal/config"
	"reelsort/internal/logging"
	"reelsort/internal/services"
)

// Warning records one file dropped from the plan during analysis.
type Warning struct {
	Path string
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %v", w.Path, w.Err)
}

// Builder scans source roots and produces planned items. It never creates or
// modifies filesystem entries.
type Builder struct {
	classifier *classify.Classifier
	lib        config.Library
	videoExts  map[string]struct{}
	sample     *regexp.Regexp
	logger     *slog.Logger
}

// NewBuilder constructs a plan builder from configuration.
func NewBuilder(cfg *config.Config, classifier *classify.Classifier, logger *slog.Logger) (*Builder, error) {
	sample, err := regexp.Compile(cfg.Scan.SamplePattern)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "plan", "compile sample pattern", cfg.Scan.SamplePattern, err)
	}
	return &Builder{
		classifier: classifier,
		lib:        cfg.Library,
		videoExts:  extensionSet(cfg.Scan.VideoExtensions),
		sample:     sample,
		logger:     logging.NewComponentLogger(logger, "plan"),
	}, nil
}

// Build walks every source root and returns the ordered plan plus per-file
// analysis warnings. A failure on one entry never aborts the scan.
func (b *Builder) Build(sourceRoots []string, destRoot string) ([]Item, []Warning) {
	var items []Item
	var warnings []Warning

	for _, root := range sourceRoots {
		err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				warnings = append(warnings, b.warn(path, walkErr))
				if entry != nil && entry.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			name := entry.Name()
			if entry.IsDir() {
				if path != root && strings.HasPrefix(name, ".") {
					return fs.SkipDir
				}
				return nil
			}
			if strings.HasPrefix(name, ".") {
				return nil
			}
			if _, ok := b.videoExts[strings.ToLower(filepath.Ext(name))]; !ok {
				return nil
			}
			if b.sample.MatchString(name) {
				b.logger.Debug("skipping sample-pattern file", logging.Args(logging.String("path", path))...)
				return nil
			}

			d := b.classifier.Classify(name, filepath.Base(filepath.Dir(path)))
			items = append(items, NewItem(path, d, b.lib, destRoot))
			return nil
		})
		if err != nil {
			warnings = append(warnings, b.warn(root, err))
		}
	}

	b.logger.Info("analysis complete",
		logging.Args(
			logging.Int("planned_items", len(items)),
			logging.Int("warnings", len(warnings)),
		)...)
	return items, warnings
}

func (b *Builder) warn(path string, err error) Warning {
	wrapped := services.Wrap(services.ErrAnalysis, "plan", "scan", path, err)
	b.logger.Warn("skipping unreadable entry",
		logging.Args(logging.String("path", path), logging.Error(err))...)
	return Warning{Path: path, Err: wrapped}
}

func extensionSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		set[strings.ToLower(ext)] = struct{}{}
	}
	return set
}
