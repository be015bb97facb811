package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"reelsort/internal/logging"
	"reelsort/internal/mover"
	"reelsort/internal/selection"
	"reelsort/internal/services"
)

func newApplyCommand(ctx *commandContext) *cobra.Command {
	var moviesOnly bool
	var seriesOnly bool
	var showFilters []string
	var skipCleanup bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Move the planned files into the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			if moviesOnly && seriesOnly {
				return errors.New("--movies-only and --series-only are mutually exclusive")
			}

			builder, cfg, err := ctx.newBuilder()
			if err != nil {
				return err
			}
			if err := cfg.ValidateRoots(); err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			items, warnings := builder.Build(cfg.Paths.SourceDirs, cfg.Paths.DestinationDir)
			printWarnings(out, warnings)

			tree := selection.Build(items)
			applyFilters(tree, moviesOnly, seriesOnly, showFilters)
			selected := tree.SelectedItems()
			if len(selected) == 0 {
				fmt.Fprintln(out, "Nothing selected to move.")
				return nil
			}

			lockPath := filepath.Join(cfg.Paths.LogDir, "reelsort.lock")
			if err := os.MkdirAll(cfg.Paths.LogDir, 0o755); err != nil {
				return fmt.Errorf("ensure log directory: %w", err)
			}
			lock := flock.New(lockPath)
			ok, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire lock: %w", err)
			}
			if !ok {
				return errors.New("another reelsort run is already in progress")
			}
			defer func() { _ = lock.Unlock() }()

			exec := mover.New(cfg, logger)
			total := exec.TotalBytes(selected)
			batchID := uuid.NewString()
			logger.Info("starting move batch",
				logging.Args(
					logging.String("batch_id", batchID),
					logging.Int("files", len(selected)),
					logging.Int64("bytes", total),
				)...)

			progress, finish := newProgress(out, total)
			errs := exec.Apply(cmd.Context(), selected, progress)
			finish()

			if !skipCleanup {
				errs = append(errs, exec.Cleanup(selected, cfg.Paths.SourceDirs)...)
			}

			moved := len(selected) - countMoveFailures(errs)
			fmt.Fprintf(out, "Moved %d of %d file(s), %s\n", moved, len(selected), humanize.Bytes(uint64(total)))

			if len(errs) > 0 {
				for _, err := range errs {
					fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
				}
				logger.Warn("move batch finished with errors",
					logging.Args(logging.String("batch_id", batchID), logging.Int("errors", len(errs)))...)
				return fmt.Errorf("%d error(s) during apply", len(errs))
			}

			logger.Info("move batch complete", logging.Args(logging.String("batch_id", batchID))...)
			return nil
		},
	}

	cmd.Flags().BoolVar(&moviesOnly, "movies-only", false, "Move only movie files")
	cmd.Flags().BoolVar(&seriesOnly, "series-only", false, "Move only series episodes")
	cmd.Flags().StringArrayVar(&showFilters, "show", nil, "Move only the named show (repeatable, implies --series-only)")
	cmd.Flags().BoolVar(&skipCleanup, "skip-cleanup", false, "Leave emptied source directories in place")
	return cmd
}

// applyFilters translates the command flags into selection tree toggles so
// filtering and interactive selection share the same semantics.
func applyFilters(tree *selection.Tree, moviesOnly, seriesOnly bool, shows []string) {
	if len(shows) > 0 {
		seriesOnly = true
	}
	for _, category := range tree.Categories() {
		if moviesOnly && category.Label == "Series" {
			category.Set(false)
		}
		if seriesOnly && category.Label == "Movies" {
			category.Set(false)
		}
	}
	if len(shows) == 0 {
		return
	}

	wanted := make(map[string]struct{}, len(shows))
	for _, s := range shows {
		wanted[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	for _, category := range tree.Categories() {
		if category.Label != "Series" {
			continue
		}
		for _, show := range category.Children() {
			if _, ok := wanted[strings.ToLower(show.Label)]; !ok {
				show.Set(false)
			}
		}
	}
}

// newProgress returns the mover progress callback. On a terminal it drives a
// byte progress bar; otherwise progress is silent and only the summary line
// is printed.
func newProgress(out io.Writer, total int64) (mover.ProgressFunc, func()) {
	if !isTerminal(out) {
		return nil, func() {}
	}

	bar := progressbar.DefaultBytes(total, "moving")
	progress := func(delta int64, label string) {
		bar.Describe(label)
		_ = bar.Add64(delta)
	}
	return progress, func() { _ = bar.Finish() }
}

// countMoveFailures counts errors from the move phase; cleanup errors do not
// affect the moved-file tally.
func countMoveFailures(errs []error) int {
	count := 0
	for _, err := range errs {
		if errors.Is(err, services.ErrMove) {
			count++
		}
	}
	return count
}
