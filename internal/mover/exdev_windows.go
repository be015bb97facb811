//go:build windows

package mover

import (
	"errors"
	"syscall"
)

// ERROR_NOT_SAME_DEVICE is what MoveFile reports for cross-volume renames.
const errorNotSameDevice = syscall.Errno(0x11)

func isCrossDevice(err error) bool {
	return errors.Is(err, errorNotSameDevice)
}
