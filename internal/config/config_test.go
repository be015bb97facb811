package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize() err = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() err = %v", err)
	}
	if cfg.ChunkSize() != 1024*1024 {
		t.Errorf("ChunkSize() = %d, want 1 MiB", cfg.ChunkSize())
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}
	if exists {
		t.Error("Load() exists = true, want false")
	}
	if resolved == "" {
		t.Error("Load() resolved path is empty")
	}
	if cfg.Library.MoviesDir != "Movies" || cfg.Library.SeriesDir != "Series" {
		t.Errorf("default library dirs = %q/%q", cfg.Library.MoviesDir, cfg.Library.SeriesDir)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
[paths]
source_dirs = ["` + filepath.ToSlash(dir) + `"]
destination_dir = "` + filepath.ToSlash(dir) + `"

[library]
default_extension = "MP4"

[scan]
video_extensions = ["MKV", ".Avi"]
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}
	if !exists {
		t.Fatal("Load() exists = false, want true")
	}
	if cfg.Library.DefaultExtension != ".mp4" {
		t.Errorf("DefaultExtension = %q, want .mp4", cfg.Library.DefaultExtension)
	}
	want := []string{".mkv", ".avi"}
	if len(cfg.Scan.VideoExtensions) != len(want) {
		t.Fatalf("VideoExtensions = %v, want %v", cfg.Scan.VideoExtensions, want)
	}
	for i, ext := range want {
		if cfg.Scan.VideoExtensions[i] != ext {
			t.Errorf("VideoExtensions[%d] = %q, want %q", i, cfg.Scan.VideoExtensions[i], ext)
		}
	}
}

func TestLoadRejectsBadSamplePattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[scan]\nsample_pattern = '('\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Error("Load() err = nil, want sample_pattern error")
	}
}

func TestValidateRoots(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Paths.SourceDirs = []string{dir}
	cfg.Paths.DestinationDir = dir

	if err := cfg.ValidateRoots(); err != nil {
		t.Errorf("ValidateRoots() err = %v, want nil", err)
	}

	cfg.Paths.DestinationDir = filepath.Join(dir, "missing")
	if err := cfg.ValidateRoots(); err == nil {
		t.Error("ValidateRoots() err = nil, want destination error")
	}

	cfg.Paths.DestinationDir = dir
	cfg.Paths.SourceDirs = nil
	err := cfg.ValidateRoots()
	if err == nil || !strings.Contains(err.Error(), "source") {
		t.Errorf("ValidateRoots() err = %v, want source error", err)
	}
}

func TestSampleConfigParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(SampleConfig()), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err != nil {
		t.Errorf("Load(sample) err = %v", err)
	}
}
