// Package model defines the core data structures used throughout
// audiorganizer.
//
// # Track
//
// Track represents one MP3 file from the source directory together with
// the tags read from it and the destination computed from those tags:
//
//	track := model.NewTrack("/in/song.mp3", model.TagPair{Artist: "A/B", Album: "C:D"}, cfg)
//	fmt.Println(track.DestPath) // "/music/A-B/C-D/song.mp3"
//
// # Album
//
// Album groups the tracks organized into one destination directory and
// carries the sidecar paths (playlist, cover art) for that directory:
//
//	album := model.NewAlbum(track, cfg)
//	fmt.Println(album.PlaylistPath)
//
// # Path Sanitizing
//
// SanitizePathSegment turns any label into a single safe path segment.
// SafePathSegment does the same but never returns an empty segment:
//
//	model.SanitizePathSegment(`AC/DC`)      // "AC-DC"
//	model.SafePathSegment("...", "Unknown") // "Unknown"
package model
