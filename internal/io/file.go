// Package ioutils provides file system utilities for audiorganizer.
//
// This package contains functions for:
//   - File copying that keeps permissions and modification time
//   - File moving that never replaces a file unless asked to, with a
//     copy+remove fallback across devices
//   - File writing
//   - Directory creation
//
// All functions that accept a context.Context check it before touching
// the file system; a transfer that has started is never interrupted.
package ioutils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// Swapped in tests to simulate cross-device and racing transfers.
var (
	renameFunc = os.Rename
	linkFunc   = os.Link
)

var (
	// ErrDestinationExists is returned when the target file is already
	// present and overwriting was not requested.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrSameFile is returned when source and destination resolve to the
	// same file.
	ErrSameFile = errors.New("source and destination are the same file")
)

// TransferOptions controls CopyFile and MoveFile.
type TransferOptions struct {
	// Overwrite replaces an existing destination file instead of failing
	// with ErrDestinationExists.
	Overwrite bool
}

// CopyFile copies a file from source to destination.
//
// The destination receives the source's permission bits and modification
// time. If the copy fails part way, the incomplete destination is removed.
// Without opts.Overwrite the destination is created exclusively, so a file
// that appears after the existence check is never replaced.
//
// Returns an error if:
//   - ctx is already cancelled
//   - Source file cannot be opened
//   - Destination exists and opts.Overwrite is false (ErrDestinationExists)
//   - Source and destination are the same file (ErrSameFile)
//   - Copy operation fails
//
// Example:
//
//	err := CopyFile(ctx, "/in/song.mp3", "/music/Artist/Album/song.mp3", TransferOptions{})
func CopyFile(ctx context.Context, src, dst string, opts TransferOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if err := checkDestination(srcInfo, dst, opts); err != nil {
		return err
	}

	return copyContents(src, dst, srcInfo, !opts.Overwrite)
}

// MoveFile relocates a file from source to destination.
//
// With opts.Overwrite a plain rename is attempted first. Otherwise the
// destination is hard linked to the source and the source unlinked, which
// fails instead of replacing a file created after the existence check.
// When neither works (different devices, no hard link support) the file is
// copied (see CopyFile) and the source is removed once the copy is
// complete.
//
// Example:
//
//	err := MoveFile(ctx, "/in/song.mp3", "/music/Artist/Album/song.mp3", TransferOptions{})
func MoveFile(ctx context.Context, src, dst string, opts TransferOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if err := checkDestination(srcInfo, dst, opts); err != nil {
		return err
	}

	if !opts.Overwrite {
		return linkAndRemove(src, dst, srcInfo)
	}

	err = renameFunc(src, dst)
	if err == nil {
		return nil
	}
	if !isEXDEV(err) {
		return err
	}
	return copyAndRemove(src, dst, srcInfo, false)
}

// CheckDestination reports the error CopyFile or MoveFile would return for
// the destination without touching either file.
//
// Example:
//
//	if err := CheckDestination("/in/song.mp3", dst, TransferOptions{}); errors.Is(err, ErrDestinationExists) {
//	    log.Printf("%s would collide", dst)
//	}
func CheckDestination(src, dst string, opts TransferOptions) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	return checkDestination(srcInfo, dst, opts)
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Example:
//
//	playlistContent := []byte("#EXTM3U\n...")
//	err := WriteFile(ctx, "/music/Artist/Album/Album.m3u", playlistContent)
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/music/Artist/Album")
//	// Creates /music, /music/Artist, and /music/Artist/Album if needed
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// checkDestination enforces the overwrite policy and refuses to transfer a
// file onto itself.
func checkDestination(srcInfo os.FileInfo, dst string, opts TransferOptions) error {
	dstInfo, err := os.Stat(dst)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if os.SameFile(srcInfo, dstInfo) {
		return fmt.Errorf("%w: %s", ErrSameFile, dst)
	}
	if dstInfo.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrDestinationExists, dst)
	}
	if !opts.Overwrite {
		return fmt.Errorf("%w: %s", ErrDestinationExists, dst)
	}
	return nil
}

// linkAndRemove moves src without ever replacing dst.
func linkAndRemove(src, dst string, srcInfo os.FileInfo) error {
	err := linkFunc(src, dst)
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("%w: %s", ErrDestinationExists, dst)
	}
	if err != nil {
		return copyAndRemove(src, dst, srcInfo, true)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("remove source after link: %w", err)
	}
	return nil
}

func copyAndRemove(src, dst string, srcInfo os.FileInfo, exclusive bool) error {
	if err := copyContents(src, dst, srcInfo, exclusive); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("remove source after copy: %w", err)
	}
	return nil
}

// copyContents writes src to dst. With exclusive set an existing dst is
// reported as ErrDestinationExists and left alone.
func copyContents(src, dst string, srcInfo os.FileInfo, exclusive bool) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	flag := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if exclusive {
		flag = os.O_CREATE | os.O_WRONLY | os.O_EXCL
	}
	out, err := os.OpenFile(dst, flag, srcInfo.Mode().Perm())
	if exclusive && errors.Is(err, os.ErrExist) {
		return fmt.Errorf("%w: %s", ErrDestinationExists, dst)
	}
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = out.Close()
			_ = os.Remove(dst)
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	if err = out.Close(); err != nil {
		return err
	}

	// O_TRUNC keeps the old mode of an overwritten file.
	if err = os.Chmod(dst, srcInfo.Mode().Perm()); err != nil {
		return err
	}
	mtime := srcInfo.ModTime()
	return os.Chtimes(dst, mtime, mtime)
}
