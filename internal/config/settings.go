package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/handiism/audiorganizer/internal/model"
)

// Placeholders used when a file carries no artist or album tag.
const (
	DefaultUnknownArtist = "Unknown Artist"
	DefaultUnknownAlbum  = "Unknown Album"
)

// AudioExtension is the file extension selected from the source directory.
// It is compared case-insensitively.
const AudioExtension = ".mp3"

// Mode selects how files are transferred into the destination tree.
type Mode string

const (
	// ModeMove relocates the file, removing it from the source directory.
	ModeMove Mode = "move"

	// ModeCopy duplicates the file and leaves the original in place.
	ModeCopy Mode = "copy"
)

// ErrInvalidMode is returned by ParseMode for values other than copy or move.
var ErrInvalidMode = errors.New("mode must be one of: copy, move")

// ParseMode converts a command-line value into a Mode.
// An empty value yields ModeMove.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeMove:
		return ModeMove, nil
	case ModeCopy:
		return ModeCopy, nil
	default:
		return "", fmt.Errorf("%w (got %q)", ErrInvalidMode, s)
	}
}

// Verb returns the past-tense action reported for a transferred file.
func (m Mode) Verb() string {
	if m == ModeCopy {
		return "Copied"
	}
	return "Moved"
}

// Settings holds all configuration options for one run.
type Settings struct {
	// Source and destination
	SourceDir string
	DestDir   string // empty means SourceDir
	Mode      Mode
	DryRun    bool
	Overwrite bool

	// Placeholders for missing tags
	UnknownArtist string
	UnknownAlbum  string

	// Labels are NFC-normalized before sanitizing
	NormalizeUnicode bool

	// Playlist settings
	CreatePlaylist bool
	PlaylistFormat string // m3u, pls, wpl, zpl
	M3UExtended    bool

	// Cover art settings
	SaveCoverArt     bool
	CoverArtMaxSize  int
	CoverArtFileName string
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Mode: ModeMove,

		UnknownArtist: DefaultUnknownArtist,
		UnknownAlbum:  DefaultUnknownAlbum,

		CreatePlaylist: false,
		PlaylistFormat: "m3u",
		M3UExtended:    true,

		SaveCoverArt:     false,
		CoverArtMaxSize:  1000,
		CoverArtFileName: "cover.jpg",
	}
}

// Destination returns the root of the artist/album tree.
func (s *Settings) Destination() string {
	if s.DestDir != "" {
		return s.DestDir
	}
	return s.SourceDir
}

// Validate checks that the settings describe a runnable organization.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.SourceDir) == "" {
		return errors.New("source directory is required")
	}
	if s.Mode != ModeCopy && s.Mode != ModeMove {
		return fmt.Errorf("%w (got %q)", ErrInvalidMode, s.Mode)
	}
	if model.SanitizePathSegment(s.UnknownArtist) == "" {
		return fmt.Errorf("unknown-artist placeholder %q is empty after sanitizing", s.UnknownArtist)
	}
	if model.SanitizePathSegment(s.UnknownAlbum) == "" {
		return fmt.Errorf("unknown-album placeholder %q is empty after sanitizing", s.UnknownAlbum)
	}
	if _, err := parsePlaylistFormat(s.PlaylistFormat); err != nil {
		return err
	}
	if s.SaveCoverArt && s.CoverArtMaxSize < 0 {
		return fmt.Errorf("cover art size must not be negative (got %d)", s.CoverArtMaxSize)
	}
	return nil
}

// ToPathConfig converts settings to PathConfig.
func (s *Settings) ToPathConfig() *model.PathConfig {
	pf, err := parsePlaylistFormat(s.PlaylistFormat)
	if err != nil {
		pf = model.PlaylistFormatM3U
	}

	return &model.PathConfig{
		DestRoot:         s.Destination(),
		UnknownArtist:    s.UnknownArtist,
		UnknownAlbum:     s.UnknownAlbum,
		NormalizeUnicode: s.NormalizeUnicode,
		PlaylistFormat:   pf,
		CoverArtFileName: s.CoverArtFileName,
	}
}

func parsePlaylistFormat(s string) (model.PlaylistFormat, error) {
	switch strings.ToLower(s) {
	case "", "m3u":
		return model.PlaylistFormatM3U, nil
	case "pls":
		return model.PlaylistFormatPLS, nil
	case "wpl":
		return model.PlaylistFormatWPL, nil
	case "zpl":
		return model.PlaylistFormatZPL, nil
	default:
		return 0, fmt.Errorf("unsupported playlist format %q", s)
	}
}
