package audio

import (
	"errors"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/handiism/audiorganizer/internal/model"
)

// ErrNoCoverArt is returned by ReadCoverArt when the file has no
// attached picture.
var ErrNoCoverArt = errors.New("no cover art in tag")

// TagReader reads the artist and album labels of an audio file.
//
// Implementations return empty fields for absent tags; substituting
// placeholders is left to the caller.
type TagReader interface {
	ReadTags(path string) (model.TagPair, error)
}

// ID3Reader reads ID3v2 tags from MP3 files.
//
// Files without an ID3v2 tag are not an error: both fields come back
// empty. Tags that cannot be parsed (unsupported version, truncated
// frames) are reported as errors, and so are files that are not MPEG
// audio at all (ErrNotMPEG).
//
// Example:
//
//	reader := NewID3Reader()
//	tags, err := reader.ReadTags("/in/song.mp3")
//	if err != nil {
//	    log.Printf("Failed to read %s: %v", path, err)
//	}
type ID3Reader struct{}

// NewID3Reader creates a new ID3Reader.
func NewID3Reader() *ID3Reader {
	return &ID3Reader{}
}

// ReadTags returns the first value of the lead artist (TPE1) and album
// (TALB) frames.
func (r *ID3Reader) ReadTags(path string) (model.TagPair, error) {
	if err := CheckMPEG(path); err != nil {
		return model.TagPair{}, err
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return model.TagPair{}, err
	}
	defer tag.Close()

	return model.TagPair{
		Artist: firstValue(tag.Artist()),
		Album:  firstValue(tag.Album()),
	}, nil
}

// ReadCoverArt returns the picture data and MIME type of the front cover.
// If no front cover is present, the first attached picture is used.
func (r *ID3Reader) ReadCoverArt(path string) ([]byte, string, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, "", err
	}
	defer tag.Close()

	var fallback *id3v2.PictureFrame
	for _, f := range tag.GetFrames(tag.CommonID("Attached picture")) {
		pic, ok := f.(id3v2.PictureFrame)
		if !ok || len(pic.Picture) == 0 {
			continue
		}
		if pic.PictureType == id3v2.PTFrontCover {
			return pic.Picture, pic.MimeType, nil
		}
		if fallback == nil {
			fallback = &pic
		}
	}

	if fallback == nil {
		return nil, "", ErrNoCoverArt
	}
	return fallback.Picture, fallback.MimeType, nil
}

// firstValue returns the first entry of a multi-valued ID3v2.4 text
// frame. Values are separated by NUL bytes.
func firstValue(text string) string {
	if i := strings.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}
