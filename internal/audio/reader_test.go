package audio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/audiorganizer/internal/model"
)

// fakeMP3 is a frame sync followed by padding; the id3v2 library only
// cares about the tag in front of it.
var fakeMP3 = append([]byte{0xff, 0xfb, 0x90, 0x64}, make([]byte, 1024)...)

func writeUntagged(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, fakeMP3, 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestID3Reader_RoundTrip(t *testing.T) {
	path := writeUntagged(t, t.TempDir(), "song.mp3")

	want := model.TagPair{Artist: "A/B", Album: "C:D"}
	if err := NewTagger(nil).WriteTags(path, want, nil); err != nil {
		t.Fatalf("WriteTags: %v", err)
	}

	got, err := NewID3Reader().ReadTags(path)
	if err != nil {
		t.Fatalf("ReadTags: %v", err)
	}
	if got != want {
		t.Errorf("ReadTags = %+v, want %+v", got, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasSuffix(data, fakeMP3) {
		t.Error("audio data should be kept after tagging")
	}
}

func TestID3Reader_UnicodeLabels(t *testing.T) {
	path := writeUntagged(t, t.TempDir(), "song.mp3")

	want := model.TagPair{Artist: "Sigur Rós", Album: "坂本龍一"}
	if err := NewTagger(nil).WriteTags(path, want, nil); err != nil {
		t.Fatalf("WriteTags: %v", err)
	}

	got, err := NewID3Reader().ReadTags(path)
	if err != nil {
		t.Fatalf("ReadTags: %v", err)
	}
	if got != want {
		t.Errorf("ReadTags = %+v, want %+v", got, want)
	}
}

func TestID3Reader_NoTag(t *testing.T) {
	path := writeUntagged(t, t.TempDir(), "bare.mp3")

	got, err := NewID3Reader().ReadTags(path)
	if err != nil {
		t.Fatalf("ReadTags on untagged file: %v", err)
	}
	if got != (model.TagPair{}) {
		t.Errorf("ReadTags = %+v, want empty pair", got)
	}
}

func TestID3Reader_UnsupportedVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.mp3")
	// ID3v2.2 header, which the library refuses to parse.
	header := []byte{'I', 'D', '3', 2, 0, 0, 0, 0, 0, 10}
	if err := os.WriteFile(path, append(header, make([]byte, 32)...), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := NewID3Reader().ReadTags(path); err == nil {
		t.Error("expected error for unsupported tag version")
	}
}

func TestID3Reader_MissingFile(t *testing.T) {
	_, err := NewID3Reader().ReadTags(filepath.Join(t.TempDir(), "missing.mp3"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want ErrNotExist", err)
	}
}

func TestID3Reader_CoverArt(t *testing.T) {
	path := writeUntagged(t, t.TempDir(), "cover.mp3")
	artwork := []byte("\xff\xd8\xff\xe0 fake jpeg")

	if err := NewTagger(nil).WriteTags(path, model.TagPair{Artist: "A", Album: "B"}, artwork); err != nil {
		t.Fatalf("WriteTags: %v", err)
	}

	got, mime, err := NewID3Reader().ReadCoverArt(path)
	if err != nil {
		t.Fatalf("ReadCoverArt: %v", err)
	}
	if !bytes.Equal(got, artwork) {
		t.Errorf("picture = %q, want %q", got, artwork)
	}
	if mime != "image/jpeg" {
		t.Errorf("mime = %q", mime)
	}
}

func TestID3Reader_NoCoverArt(t *testing.T) {
	path := writeUntagged(t, t.TempDir(), "plain.mp3")

	if _, _, err := NewID3Reader().ReadCoverArt(path); !errors.Is(err, ErrNoCoverArt) {
		t.Errorf("error = %v, want ErrNoCoverArt", err)
	}
}

func TestTagger_EmptyAction(t *testing.T) {
	path := writeUntagged(t, t.TempDir(), "song.mp3")
	if err := NewTagger(nil).WriteTags(path, model.TagPair{Artist: "A", Album: "B"}, nil); err != nil {
		t.Fatalf("WriteTags: %v", err)
	}

	clear := NewTagger(&TagConfig{Artist: TagEmpty, Album: TagDoNotModify, Artwork: TagDoNotModify})
	if err := clear.WriteTags(path, model.TagPair{}, nil); err != nil {
		t.Fatalf("WriteTags clear: %v", err)
	}

	got, err := NewID3Reader().ReadTags(path)
	if err != nil {
		t.Fatalf("ReadTags: %v", err)
	}
	if got.Artist != "" || got.Album != "B" {
		t.Errorf("ReadTags = %+v, want artist cleared and album kept", got)
	}
}

func TestFirstValue(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Single", "Single"},
		{"First\x00Second", "First"},
		{"  padded ", "padded"},
		{"", ""},
		{"\x00Second", ""},
	}

	for _, tt := range tests {
		if got := firstValue(tt.input); got != tt.want {
			t.Errorf("firstValue(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
