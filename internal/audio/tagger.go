package audio

import (
	"github.com/bogem/id3v2"
	"github.com/handiism/audiorganizer/internal/model"
)

// TagEditAction defines how to handle an individual ID3 field.
type TagEditAction int

const (
	// TagEmpty removes the frame.
	TagEmpty TagEditAction = iota

	// TagModify sets the frame to the supplied value.
	TagModify

	// TagDoNotModify leaves the existing frame unchanged.
	TagDoNotModify
)

// TagConfig holds tagging configuration for each ID3 field.
type TagConfig struct {
	// Artist controls the TPE1 (Lead artist) frame.
	Artist TagEditAction

	// Album controls the TALB (Album title) frame.
	Album TagEditAction

	// Artwork controls the APIC (Attached picture) frame.
	Artwork TagEditAction
}

// DefaultTagConfig returns a configuration that writes every field.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		Artist:  TagModify,
		Album:   TagModify,
		Artwork: TagModify,
	}
}

// Tagger writes ID3 tags to MP3 files.
//
// It is the write-side counterpart of ID3Reader and is used to retag
// files and to build tagged fixtures.
//
// Example:
//
//	tagger := NewTagger(nil)
//	err := tagger.WriteTags(path, model.TagPair{Artist: "A", Album: "B"}, nil)
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// WriteTags writes artist, album and optional JPEG artwork to the file at
// path. A file without a tag gets a new ID3v2.4 tag prepended; the audio
// data is kept as it is.
func (t *Tagger) WriteTags(path string, tags model.TagPair, artwork []byte) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	applyTextFrame(tag, t.config.Artist, "Artist", tags.Artist, tag.SetArtist)
	applyTextFrame(tag, t.config.Album, "Album/Movie/Show title", tags.Album, tag.SetAlbum)

	switch t.config.Artwork {
	case TagEmpty:
		tag.DeleteFrames(tag.CommonID("Attached picture"))
	case TagModify:
		if artwork != nil {
			t.updateArtwork(tag, artwork)
		}
	}

	return tag.Save()
}

// applyTextFrame deletes or sets the text frame with the given common name.
// An empty value on TagModify removes the frame instead of writing a blank
// one.
func applyTextFrame(tag *id3v2.Tag, action TagEditAction, name, value string, set func(string)) {
	switch action {
	case TagEmpty:
		tag.DeleteFrames(tag.CommonID(name))
	case TagModify:
		if value == "" {
			tag.DeleteFrames(tag.CommonID(name))
			return
		}
		set(value)
	}
}

// updateArtwork embeds cover art as an attached picture frame.
func (t *Tagger) updateArtwork(tag *id3v2.Tag, artwork []byte) {
	tag.DeleteFrames(tag.CommonID("Attached picture"))

	pic := id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	}
	tag.AddAttachedPicture(pic)
}
