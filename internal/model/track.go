package model

import (
	"path/filepath"
	"strings"
)

// TagPair holds the two tag fields used to place a file.
//
// An empty field means the tag was absent (or blank) in the file.
type TagPair struct {
	// Artist is the performer label (ID3 TPE1).
	Artist string

	// Album is the release label (ID3 TALB).
	Album string
}

// WithDefaults returns a copy of the pair where blank fields are replaced
// by the given placeholders.
func (p TagPair) WithDefaults(unknownArtist, unknownAlbum string) TagPair {
	if strings.TrimSpace(p.Artist) == "" {
		p.Artist = unknownArtist
	}
	if strings.TrimSpace(p.Album) == "" {
		p.Album = unknownAlbum
	}
	return p
}

// PathConfig holds the settings used to compute destination paths.
//
// Example configuration:
//
//	cfg := &PathConfig{
//	    DestRoot:      "/home/user/Music",
//	    UnknownArtist: "Unknown Artist",
//	    UnknownAlbum:  "Unknown Album",
//	}
type PathConfig struct {
	// DestRoot is the directory under which artist folders are created.
	DestRoot string

	// UnknownArtist replaces a missing artist tag.
	UnknownArtist string

	// UnknownAlbum replaces a missing album tag.
	UnknownAlbum string

	// NormalizeUnicode converts labels to NFC before sanitizing, so that
	// composed and decomposed spellings share a directory.
	NormalizeUnicode bool

	// PlaylistFormat determines the playlist file type and extension.
	PlaylistFormat PlaylistFormat

	// CoverArtFileName is the file name used for extracted cover art.
	CoverArtFileName string
}

// Track represents a single MP3 file being organized.
//
// The destination is computed by NewTrack from the file's tags:
//
//	track := NewTrack("/in/01.mp3", TagPair{Artist: "Artist", Album: "Album"}, cfg)
//	// track.DestDir  = "/music/Artist/Album"
//	// track.DestPath = "/music/Artist/Album/01.mp3"
type Track struct {
	// SourcePath is the file's current location.
	SourcePath string

	// FileName is the base name of SourcePath. It is reused verbatim at
	// the destination.
	FileName string

	// Tags are the resolved labels (placeholders already applied).
	Tags TagPair

	// ArtistDir and AlbumDir are the sanitized path segments.
	ArtistDir string
	AlbumDir  string

	// DestDir is DestRoot/ArtistDir/AlbumDir.
	DestDir string

	// DestPath is DestDir/FileName.
	DestPath string
}

// NewTrack creates a Track with computed destination paths.
//
// Blank tags are replaced by the configured placeholders, then each label
// is turned into a path segment with SafePathSegment using its placeholder
// as fallback.
func NewTrack(sourcePath string, tags TagPair, cfg *PathConfig) *Track {
	tags = tags.WithDefaults(cfg.UnknownArtist, cfg.UnknownAlbum)
	if cfg.NormalizeUnicode {
		tags.Artist = normalizeLabel(tags.Artist)
		tags.Album = normalizeLabel(tags.Album)
	}

	track := &Track{
		SourcePath: sourcePath,
		FileName:   filepath.Base(sourcePath),
		Tags:       tags,
		ArtistDir:  SafePathSegment(tags.Artist, cfg.UnknownArtist),
		AlbumDir:   SafePathSegment(tags.Album, cfg.UnknownAlbum),
	}
	track.DestDir = filepath.Join(cfg.DestRoot, track.ArtistDir, track.AlbumDir)
	track.DestPath = filepath.Join(track.DestDir, track.FileName)

	return track
}
