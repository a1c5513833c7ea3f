package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/audiorganizer/internal/model"
)

// id3Header builds a bare ID3v2.3 header announcing size bytes of frames.
func id3Header(size int, flags byte) []byte {
	return []byte{'I', 'D', '3', 3, 0, flags,
		byte(size>>21) & 0x7F, byte(size>>14) & 0x7F, byte(size>>7) & 0x7F, byte(size) & 0x7F}
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestCheckMPEG(t *testing.T) {
	text := []byte("this is a text file, not an MPEG stream")

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{"bare frame", fakeMP3, false},
		{"mpeg2 layer3 sync", []byte{0xff, 0xf3, 0x40, 0xc4}, false},
		{"tag then frame", concat(id3Header(20, 0), make([]byte, 20), fakeMP3), false},
		{"tag with footer then frame", concat(id3Header(20, id3FlagFooter), make([]byte, 30), fakeMP3), false},
		{"large tag then frame", concat(id3Header(300, 0), make([]byte, 300), fakeMP3), false},
		{"text", text, true},
		{"empty", nil, true},
		{"single byte", []byte{0xff}, true},
		{"half sync", []byte{0xff, 0x1b, 0x90}, true},
		{"tag then text", concat(id3Header(20, 0), make([]byte, 20), text), true},
		{"tag past end of file", concat(id3Header(4096, 0), fakeMP3), true},
		{"text with id3v1 trailer", concat(text, id3v1("Song", "Artist", "Album")), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "file.mp3")
			if err := os.WriteFile(path, tt.data, 0644); err != nil {
				t.Fatalf("write: %v", err)
			}

			err := CheckMPEG(path)
			if tt.wantErr {
				if !errors.Is(err, ErrNotMPEG) {
					t.Errorf("CheckMPEG = %v, want ErrNotMPEG", err)
				}
				return
			}
			if err != nil {
				t.Errorf("CheckMPEG = %v, want nil", err)
			}
		})
	}
}

func TestCheckMPEG_TaggedByTagger(t *testing.T) {
	path := writeUntagged(t, t.TempDir(), "song.mp3")
	artwork := []byte("\xff\xd8\xff\xe0 fake jpeg")
	if err := NewTagger(nil).WriteTags(path, model.TagPair{Artist: "A", Album: "B"}, artwork); err != nil {
		t.Fatalf("WriteTags: %v", err)
	}

	if err := CheckMPEG(path); err != nil {
		t.Errorf("CheckMPEG on tagged file: %v", err)
	}
}

func TestCheckMPEG_MissingFile(t *testing.T) {
	err := CheckMPEG(filepath.Join(t.TempDir(), "missing.mp3"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want ErrNotExist", err)
	}
}

func TestReaders_RejectNonMPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.mp3")
	if err := os.WriteFile(path, []byte("shopping list\n- eggs\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	readers := map[string]TagReader{
		"id3v2":    NewID3Reader(),
		"generic":  NewGenericReader(),
		"fallback": NewReader(),
	}
	for name, reader := range readers {
		t.Run(name, func(t *testing.T) {
			if _, err := reader.ReadTags(path); !errors.Is(err, ErrNotMPEG) {
				t.Errorf("ReadTags = %v, want ErrNotMPEG", err)
			}
		})
	}
}

func TestFallbackReader_NotMPEGIsFinal(t *testing.T) {
	secondary := stubReader{tags: model.TagPair{Artist: "C", Album: "D"}}

	got, err := NewFallbackReader(stubReader{err: ErrNotMPEG}, secondary).ReadTags("x.mp3")
	if !errors.Is(err, ErrNotMPEG) {
		t.Fatalf("error = %v, want ErrNotMPEG", err)
	}
	if got != (model.TagPair{}) {
		t.Errorf("ReadTags = %+v, want empty pair", got)
	}
}
