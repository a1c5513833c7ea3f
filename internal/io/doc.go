// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Copying and moving files into the organized tree
//   - Directory creation
//   - Writing sidecar files (playlists, cover art)
//   - Cover art resizing and JPEG conversion
//
// # File Operations
//
//	// Copy a file, keeping mode and modification time
//	err := ioutils.CopyFile(ctx, "/in/song.mp3", "/music/A/B/song.mp3", ioutils.TransferOptions{})
//
//	// Move a file (hard link+unlink, or copy+remove across devices)
//	err := ioutils.MoveFile(ctx, "/in/song.mp3", "/music/A/B/song.mp3", ioutils.TransferOptions{})
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/music/A/B")
//
// An existing destination file is reported as ErrDestinationExists unless
// TransferOptions.Overwrite is set, including one created by another
// process after the check. CheckDestination runs the same check alone.
//
// # Cover Art
//
//	svc := ioutils.NewCoverArtService()
//	jpeg, _ := svc.PrepareCover(ctx, pictureData, 1000)
package ioutils
