package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration marks invalid source/destination setup detected before
	// any scan or move starts. These fail the whole operation.
	ErrConfiguration = errors.New("configuration error")
	// ErrAnalysis marks a file that could not be classified or stat'd during
	// planning. The file is dropped; the scan continues.
	ErrAnalysis = errors.New("analysis warning")
	// ErrMove marks a single item (primary or companion) that failed to
	// relocate. Collected; the batch continues.
	ErrMove = errors.New("move error")
	// ErrCleanup marks a source directory that could not be removed after a
	// batch. Collected; never fatal.
	ErrCleanup = errors.New("cleanup error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrMove
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatal reports whether an error must abort the operation before it starts.
// Only configuration errors are fatal; everything else is collected.
func IsFatal(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
