package model

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizePathSegment(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Normal Artist", "Normal Artist"},
		{"AC/DC", "AC-DC"},
		{"C:D", "C-D"},
		{`a<b>c:d"e/f\g|h?i*j`, "a-b-c-d-e-f-g-h-i-j"},
		{"trailing dots...", "trailing dots"},
		{"...leading dots", "leading dots"},
		{"  padded  ", "padded"},
		{" . mixed . ", "mixed"},
		{"inner. dots. kept", "inner. dots. kept"},
		{"Sigur Rós", "Sigur Rós"},
		{"坂本龍一", "坂本龍一"},
		{"...", ""},
		{"..", ""},
		{"", ""},
		{"???", "---"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SanitizePathSegment(tt.input)
			if got != tt.want {
				t.Errorf("SanitizePathSegment(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizePathSegment_NoReservedOrEdgeChars(t *testing.T) {
	inputs := []string{
		`<>:"/\|?*`,
		" .a/b. ",
		"?. leading",
		"trailing .?",
		"*.*",
		"Artist: The \"Best\" Of / Vol. 2?",
	}

	for _, in := range inputs {
		got := SanitizePathSegment(in)
		if strings.ContainsAny(got, ReservedChars) {
			t.Errorf("SanitizePathSegment(%q) = %q still contains a reserved character", in, got)
		}
		if got != "" && (strings.HasPrefix(got, ".") || strings.HasPrefix(got, " ") ||
			strings.HasSuffix(got, ".") || strings.HasSuffix(got, " ")) {
			t.Errorf("SanitizePathSegment(%q) = %q has leading/trailing period or space", in, got)
		}
	}
}

func TestSanitizePathSegment_Idempotent(t *testing.T) {
	inputs := []string{"Plain", "A/B", " x. ", "Sigur Rós", "a..b", "-?-"}

	for _, in := range inputs {
		once := SanitizePathSegment(in)
		twice := SanitizePathSegment(once)
		if once != twice {
			t.Errorf("not idempotent for %q: once %q, twice %q", in, once, twice)
		}
	}
}

func TestSafePathSegment_Fallback(t *testing.T) {
	if got := SafePathSegment("...", "Unknown Artist"); got != "Unknown Artist" {
		t.Errorf("SafePathSegment(...) = %q, want fallback", got)
	}
	if got := SafePathSegment("Real", "Unknown Artist"); got != "Real" {
		t.Errorf("SafePathSegment(Real) = %q, want Real", got)
	}
}

func testPathConfig(root string) *PathConfig {
	return &PathConfig{
		DestRoot:      root,
		UnknownArtist: "Unknown Artist",
		UnknownAlbum:  "Unknown Album",
	}
}

func TestTrack_PathComputation(t *testing.T) {
	root := filepath.Join("music")
	track := NewTrack(filepath.Join("in", "01 Song.mp3"), TagPair{Artist: "A/B", Album: "C:D"}, testPathConfig(root))

	if track.FileName != "01 Song.mp3" {
		t.Errorf("FileName = %q", track.FileName)
	}
	wantDir := filepath.Join(root, "A-B", "C-D")
	if track.DestDir != wantDir {
		t.Errorf("DestDir = %q, want %q", track.DestDir, wantDir)
	}
	if track.DestPath != filepath.Join(wantDir, "01 Song.mp3") {
		t.Errorf("DestPath = %q", track.DestPath)
	}
	if track.Tags.Artist != "A/B" {
		t.Errorf("Tags.Artist should keep the raw label, got %q", track.Tags.Artist)
	}
}

func TestTrack_MissingTagsUsePlaceholders(t *testing.T) {
	tests := []struct {
		name string
		tags TagPair
	}{
		{"empty", TagPair{}},
		{"blank", TagPair{Artist: "   ", Album: "\t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track := NewTrack("x.mp3", tt.tags, testPathConfig("root"))
			want := filepath.Join("root", "Unknown Artist", "Unknown Album")
			if track.DestDir != want {
				t.Errorf("DestDir = %q, want %q", track.DestDir, want)
			}
		})
	}
}

func TestTrack_EmptySegmentUsesPlaceholder(t *testing.T) {
	track := NewTrack("x.mp3", TagPair{Artist: "..", Album: " . "}, testPathConfig("root"))

	if track.ArtistDir != "Unknown Artist" || track.AlbumDir != "Unknown Album" {
		t.Errorf("got %q/%q, want placeholders", track.ArtistDir, track.AlbumDir)
	}
}

func TestTrack_NormalizeUnicode(t *testing.T) {
	decomposed := "Beyonce\u0301"
	cfg := testPathConfig("root")

	raw := NewTrack("x.mp3", TagPair{Artist: decomposed, Album: "B"}, cfg)
	if raw.ArtistDir != decomposed {
		t.Errorf("without normalization the label must be kept, got %q", raw.ArtistDir)
	}

	cfg.NormalizeUnicode = true
	nfc := NewTrack("x.mp3", TagPair{Artist: decomposed, Album: "B"}, cfg)
	if nfc.ArtistDir != "Beyonc\u00e9" {
		t.Errorf("ArtistDir = %q, want composed form", nfc.ArtistDir)
	}
}

func TestAlbum_SidecarPaths(t *testing.T) {
	cfg := testPathConfig("root")
	cfg.PlaylistFormat = PlaylistFormatPLS
	track := NewTrack("x.mp3", TagPair{Artist: "Artist", Album: "Best: Of"}, cfg)

	album := NewAlbum(track, cfg)

	if album.Path != track.DestDir {
		t.Errorf("Path = %q, want %q", album.Path, track.DestDir)
	}
	if album.PlaylistPath != filepath.Join(track.DestDir, "Best- Of.pls") {
		t.Errorf("PlaylistPath = %q", album.PlaylistPath)
	}
	if album.ArtworkPath != filepath.Join(track.DestDir, "cover.jpg") {
		t.Errorf("ArtworkPath = %q", album.ArtworkPath)
	}
	if len(album.Tracks) != 1 || album.Tracks[0] != track {
		t.Error("album should start with the given track")
	}
}

func TestPlaylistFormat_Extension(t *testing.T) {
	tests := []struct {
		format PlaylistFormat
		want   string
	}{
		{PlaylistFormatM3U, ".m3u"},
		{PlaylistFormatPLS, ".pls"},
		{PlaylistFormatWPL, ".wpl"},
		{PlaylistFormatZPL, ".zpl"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.Extension(); got != tt.want {
				t.Errorf("Extension() = %q, want %q", got, tt.want)
			}
		})
	}
}
