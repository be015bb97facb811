package mover

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"reelsort/internal/logging"
	"reelsort/internal/plan"
	"reelsort/internal/services"
)

// Cleanup removes source directories left without any video file after a
// batch. Only directories that contained a moved item and sit strictly
// inside one of the source roots are candidates; the roots themselves are
// never removed. Deletion proceeds deepest first so an emptied child never
// blocks its parent.
func (e *Executor) Cleanup(items []plan.Item, sourceRoots []string) []error {
	roots := make([]string, 0, len(sourceRoots))
	for _, root := range sourceRoots {
		if abs, err := filepath.Abs(root); err == nil {
			roots = append(roots, abs)
		}
	}

	seen := make(map[string]struct{})
	var candidates []string
	for _, item := range items {
		dir, err := filepath.Abs(filepath.Dir(item.SourcePath))
		if err != nil {
			continue
		}
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		candidates = append(candidates, dir)
	}

	// Deepest paths first.
	sort.Slice(candidates, func(i, j int) bool {
		return len(candidates[i]) > len(candidates[j])
	})

	var errs []error
	for _, dir := range candidates {
		if !insideAny(dir, roots) {
			continue
		}
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		if e.containsVideo(dir) {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			errs = append(errs, services.Wrap(services.ErrCleanup, "mover", "remove directory", dir, err))
			continue
		}
		e.logger.Debug("removed emptied source directory", logging.Args(logging.String("dir", dir))...)
	}
	return errs
}

// containsVideo reports whether any file under dir, at any depth, carries a
// recognized video extension. Walk errors count as "contains" so an
// unreadable tree is never deleted.
func (e *Executor) containsVideo(dir string) bool {
	found := false
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if _, ok := e.videoExts[strings.ToLower(filepath.Ext(entry.Name()))]; ok {
			found = true
			return filepath.SkipAll
		}
		return nil
	})
	return found || err != nil
}

// insideAny reports whether dir lies strictly below one of the roots.
func insideAny(dir string, roots []string) bool {
	for _, root := range roots {
		rel, err := filepath.Rel(root, dir)
		if err != nil {
			continue
		}
		if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		return true
	}
	return false
}
