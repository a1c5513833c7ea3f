//go:build !unix

package ioutils

func isEXDEV(err error) bool {
	return false
}
