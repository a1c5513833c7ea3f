//go:build unix

package ioutils

import (
	"errors"
	"syscall"
)

// isEXDEV reports whether a rename failed because source and destination
// are on different devices.
func isEXDEV(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}
