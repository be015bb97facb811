package mover

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"reelsort/internal/config"
	"reelsort/internal/logging"
	"reelsort/internal/plan"
	"reelsort/internal/services"
	"reelsort/internal/textutil"
)

// ProgressFunc receives byte increments as they complete. The callback runs
// synchronously on the moving goroutine and must be cheap; the label names
// the destination file currently being transferred.
type ProgressFunc func(delta int64, label string)

// renameFile is swappable so tests can simulate cross-volume rename errors.
var renameFile = os.Rename

// Executor moves planned items sequentially. One executor per destination
// root; batches must not overlap.
type Executor struct {
	logger        *slog.Logger
	chunkSize     int64
	companionExts map[string]struct{}
	videoExts     map[string]struct{}
}

// New constructs an executor from configuration.
func New(cfg *config.Config, logger *slog.Logger) *Executor {
	return &Executor{
		logger:        logging.NewComponentLogger(logger, "mover"),
		chunkSize:     cfg.ChunkSize(),
		companionExts: extensionSet(cfg.Scan.CompanionExtensions),
		videoExts:     extensionSet(cfg.Scan.VideoExtensions),
	}
}

// TotalBytes computes the progress denominator for a batch: primary file
// sizes plus every discovered companion's size.
func (e *Executor) TotalBytes(items []plan.Item) int64 {
	var total int64
	for _, item := range items {
		total += fileSize(item.SourcePath)
		for _, companion := range e.companions(item.SourcePath) {
			total += fileSize(companion)
		}
	}
	return total
}

// Apply moves every item in order, reporting progress as bytes land. The
// returned errors are per-item; partial success is the expected steady
// state. The context is only consulted between files, so an in-flight file
// always completes or fails on its own.
func (e *Executor) Apply(ctx context.Context, items []plan.Item, progress ProgressFunc) []error {
	if progress == nil {
		progress = func(int64, string) {}
	}

	var errs []error
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			errs = append(errs, services.Wrap(services.ErrMove, "mover", "batch", "canceled before "+item.SourcePath, err))
			break
		}

		if err := e.moveItem(item, progress); err != nil {
			errs = append(errs, err)
			continue
		}
		errs = append(errs, e.moveCompanions(item, progress)...)
	}
	return errs
}

func (e *Executor) moveItem(item plan.Item, progress ProgressFunc) error {
	if err := os.MkdirAll(item.DestDir, 0o755); err != nil {
		return services.Wrap(services.ErrMove, "mover", "create destination dir", item.DestDir, err)
	}
	if err := e.movePath(item.SourcePath, item.DestPath, item.DestFileName, progress); err != nil {
		return services.Wrap(services.ErrMove, "mover", "move", item.SourcePath+" -> "+item.DestPath, err)
	}
	e.logger.Debug("moved file",
		logging.Args(
			logging.String("source", item.SourcePath),
			logging.String("destination", item.DestPath),
		)...)
	return nil
}

// moveCompanions relocates same-stem companion files right after the primary
// so each item's bytes stay contiguous in the progress stream.
func (e *Executor) moveCompanions(item plan.Item, progress ProgressFunc) []error {
	destStem := strings.TrimSuffix(item.DestFileName, filepath.Ext(item.DestFileName))

	var errs []error
	for _, src := range e.companions(item.SourcePath) {
		ext := filepath.Ext(src)
		destName := textutil.SanitizeFileName(destStem + ext)
		destPath := filepath.Join(item.DestDir, destName)
		if err := e.movePath(src, destPath, destName, progress); err != nil {
			errs = append(errs, services.Wrap(services.ErrMove, "mover", "move companion", src+" -> "+destPath, err))
		}
	}
	return errs
}

// companions lists files in the source directory that share the exact stem
// and carry a recognized companion extension.
func (e *Executor) companions(srcVideoPath string) []string {
	srcDir := filepath.Dir(srcVideoPath)
	base := filepath.Base(srcVideoPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil
	}
	var out []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if strings.TrimSuffix(name, ext) != stem {
			continue
		}
		if _, ok := e.companionExts[strings.ToLower(ext)]; !ok {
			continue
		}
		out = append(out, filepath.Join(srcDir, name))
	}
	return out
}

// movePath relocates one file: overwrite the destination, try an atomic
// rename, and fall back to a chunked copy only on a cross-volume error.
func (e *Executor) movePath(src, dst, label string, progress ProgressFunc) error {
	if src == dst {
		return nil
	}
	if _, err := os.Lstat(dst); err == nil {
		// Overwrite semantics; a failed delete surfaces via the rename.
		_ = os.Remove(dst)
	}

	size := fileSize(src)
	err := renameFile(src, dst)
	if err == nil {
		progress(size, label)
		return nil
	}
	if !isCrossDevice(err) {
		return err
	}

	e.logger.Debug("rename crossed volumes, copying",
		logging.Args(logging.String("source", src), logging.String("destination", dst))...)
	if err := copyWithProgress(src, dst, e.chunkSize, label, progress); err != nil {
		return err
	}
	_ = os.Remove(src) // best effort
	return nil
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

func extensionSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		set[strings.ToLower(ext)] = struct{}{}
	}
	return set
}
