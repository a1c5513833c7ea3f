package model

import "path/filepath"

// Album groups the tracks organized into one destination directory.
//
// Album is built from the first track that lands in a directory; later
// tracks for the same DestDir are appended to Tracks. Sidecar paths
// (playlist, cover art) are computed once, when the album is created.
type Album struct {
	// Artist is the artist label of the first track.
	Artist string

	// Title is the album label of the first track.
	Title string

	// Path is the album directory (Track.DestDir).
	Path string

	// Tracks are the files organized into Path during this run, in
	// processing order.
	Tracks []*Track

	// PlaylistPath is the computed local file path for the playlist file.
	PlaylistPath string

	// ArtworkPath is the computed local file path for the cover art.
	ArtworkPath string
}

// NewAlbum creates an Album for the directory of track and records track
// as its first entry.
func NewAlbum(track *Track, cfg *PathConfig) *Album {
	album := &Album{
		Artist: track.Tags.Artist,
		Title:  track.Tags.Album,
		Path:   track.DestDir,
		Tracks: []*Track{track},
	}

	album.PlaylistPath = filepath.Join(album.Path, track.AlbumDir+cfg.PlaylistFormat.Extension())

	coverName := cfg.CoverArtFileName
	if coverName == "" {
		coverName = "cover.jpg"
	}
	album.ArtworkPath = filepath.Join(album.Path, coverName)

	return album
}

// PlaylistFormat represents supported playlist file formats.
type PlaylistFormat int

const (
	// PlaylistFormatM3U creates .m3u playlist files (most widely supported).
	PlaylistFormatM3U PlaylistFormat = iota

	// PlaylistFormatPLS creates .pls playlist files (used by Winamp).
	PlaylistFormatPLS

	// PlaylistFormatWPL creates .wpl playlist files (Windows Media Player).
	PlaylistFormatWPL

	// PlaylistFormatZPL creates .zpl playlist files (Zune Media Player).
	PlaylistFormatZPL
)

// Extension returns the file extension for the playlist format, including the dot.
func (pf PlaylistFormat) Extension() string {
	switch pf {
	case PlaylistFormatPLS:
		return ".pls"
	case PlaylistFormatWPL:
		return ".wpl"
	case PlaylistFormatZPL:
		return ".zpl"
	default:
		return ".m3u"
	}
}
