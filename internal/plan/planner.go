package plan

import (
	"fmt"
	"path/filepath"

	"reelsort/internal/classify"
	"reelsort/internal/config"
	"reelsort/internal/textutil"
)

// Plan computes the destination directory and file name for a descriptor.
// Pure: no I/O. Every path segment is sanitized independently; ext defaults
// to the configured extension when empty.
func Plan(d classify.Descriptor, ext string, lib config.Library, destRoot string) (destDir, destFileName string) {
	if ext == "" {
		ext = lib.DefaultExtension
	}

	switch d.Type {
	case classify.Series:
		destDir = filepath.Join(
			destRoot,
			textutil.SanitizeFileName(lib.SeriesDir),
			textutil.SanitizeFileName(d.ShowTitle),
			textutil.SanitizeFileName(fmt.Sprintf("Season %02d", d.Season)),
		)
		base := fmt.Sprintf("%s - %s", d.ShowTitle, d.EpisodeLabel())
		if d.EpisodeTitle != "" {
			base = fmt.Sprintf("%s - %s", base, d.EpisodeTitle)
		}
		destFileName = textutil.SanitizeFileName(base + ext)
	default:
		destDir = filepath.Join(destRoot, textutil.SanitizeFileName(lib.MoviesDir))
		title := d.Title
		if d.Year > 0 {
			title = fmt.Sprintf("%s (%d)", title, d.Year)
		}
		destFileName = textutil.SanitizeFileName(title + ext)
	}
	return destDir, destFileName
}

// NewItem binds a classified source file to its computed destination.
func NewItem(sourcePath string, d classify.Descriptor, lib config.Library, destRoot string) Item {
	destDir, destFileName := Plan(d, filepath.Ext(sourcePath), lib, destRoot)
	return Item{
		SourcePath:   sourcePath,
		Type:         d.Type,
		ShowTitle:    d.ShowTitle,
		Season:       d.Season,
		Episodes:     d.Episodes,
		DestFileName: destFileName,
		DestDir:      destDir,
		DestPath:     filepath.Join(destDir, destFileName),
	}
}
