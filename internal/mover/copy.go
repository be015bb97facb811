package mover

import (
	"io"
	"os"
)

// copyWithProgress streams src to dst in fixed-size chunks, invoking the
// progress callback after every chunk with the chunk's byte count. File
// timestamps are carried over on a best-effort basis.
func copyWithProgress(src, dst string, chunkSize int64, label string, progress ProgressFunc) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	buf := make([]byte, chunkSize)
	for {
		n, readErr := in.Read(buf)
		if n > 0 {
			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				return writeErr
			}
			progress(int64(n), label)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return readErr
		}
	}
	if err := out.Close(); err != nil {
		return err
	}

	// Metadata preservation is best effort; unsupported filesystems are fine.
	_ = os.Chtimes(dst, info.ModTime(), info.ModTime())
	return nil
}
