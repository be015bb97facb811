package mover

import (
	"os"
	"path/filepath"
	"testing"

	"reelsort/internal/logging"
	"reelsort/internal/plan"
	"reelsort/internal/testsupport"
)

func movedItem(src string) plan.Item {
	return plan.Item{SourcePath: src}
}

func TestCleanupRemovesDirsWithoutVideos(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	exec := New(cfg, logging.NewNop())

	root := cfg.Paths.SourceDirs[0]
	dir := testsupport.MkDir(t, filepath.Join(root, "Show.S01E01"))
	testsupport.WriteFile(t, filepath.Join(dir, "leftover.txt"), 10)

	errs := exec.Cleanup([]plan.Item{movedItem(filepath.Join(dir, "Show.S01E01.mkv"))}, cfg.Paths.SourceDirs)
	if len(errs) != 0 {
		t.Fatalf("Cleanup returned errors: %v", errs)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("directory without videos should be removed: %v", err)
	}
}

func TestCleanupKeepsDirsWithNestedVideos(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	exec := New(cfg, logging.NewNop())

	root := cfg.Paths.SourceDirs[0]
	dir := testsupport.MkDir(t, filepath.Join(root, "Season.Pack"))
	testsupport.WriteFile(t, filepath.Join(dir, "extras", "sample.mkv"), 10)

	errs := exec.Cleanup([]plan.Item{movedItem(filepath.Join(dir, "episode.mkv"))}, cfg.Paths.SourceDirs)
	if len(errs) != 0 {
		t.Fatalf("Cleanup returned errors: %v", errs)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("directory with a remaining video must survive: %v", err)
	}
}

func TestCleanupNeverRemovesTheRootItself(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	exec := New(cfg, logging.NewNop())

	root := cfg.Paths.SourceDirs[0]
	testsupport.WriteFile(t, filepath.Join(root, "readme.txt"), 5)

	errs := exec.Cleanup([]plan.Item{movedItem(filepath.Join(root, "movie.mkv"))}, cfg.Paths.SourceDirs)
	if len(errs) != 0 {
		t.Fatalf("Cleanup returned errors: %v", errs)
	}
	if _, err := os.Stat(root); err != nil {
		t.Fatalf("source root must never be removed: %v", err)
	}
}

func TestCleanupIgnoresDirsOutsideRoots(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	exec := New(cfg, logging.NewNop())

	outside := testsupport.MkDir(t, filepath.Join(t.TempDir(), "elsewhere"))
	testsupport.WriteFile(t, filepath.Join(outside, "note.txt"), 5)

	errs := exec.Cleanup([]plan.Item{movedItem(filepath.Join(outside, "movie.mkv"))}, cfg.Paths.SourceDirs)
	if len(errs) != 0 {
		t.Fatalf("Cleanup returned errors: %v", errs)
	}
	if _, err := os.Stat(outside); err != nil {
		t.Fatalf("directory outside the roots must be left alone: %v", err)
	}
}

func TestCleanupDeepestFirst(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	exec := New(cfg, logging.NewNop())

	root := cfg.Paths.SourceDirs[0]
	parent := filepath.Join(root, "pack")
	child := testsupport.MkDir(t, filepath.Join(parent, "disc1"))
	testsupport.WriteFile(t, filepath.Join(child, "info.nfo"), 4)

	items := []plan.Item{
		movedItem(filepath.Join(parent, "feature.mkv")),
		movedItem(filepath.Join(child, "episode.mkv")),
	}
	errs := exec.Cleanup(items, cfg.Paths.SourceDirs)
	if len(errs) != 0 {
		t.Fatalf("Cleanup returned errors: %v", errs)
	}
	if _, err := os.Stat(parent); !os.IsNotExist(err) {
		t.Fatalf("parent should be removed once its child is gone: %v", err)
	}
}
