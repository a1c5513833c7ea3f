package audio

import (
	"errors"
	"fmt"
	"os"

	"github.com/dhowden/tag"
	"github.com/handiism/audiorganizer/internal/model"
)

// GenericReader reads tags with github.com/dhowden/tag, which also
// understands ID3v1 trailers and ID3v2.2 headers.
type GenericReader struct{}

// NewGenericReader creates a new GenericReader.
func NewGenericReader() *GenericReader {
	return &GenericReader{}
}

// ReadTags returns the artist and album of the file at path. A file with
// no recognizable tag yields an empty pair, unless it is not MPEG audio.
func (r *GenericReader) ReadTags(path string) (model.TagPair, error) {
	if err := CheckMPEG(path); err != nil {
		return model.TagPair{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return model.TagPair{}, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if errors.Is(err, tag.ErrNoTagsFound) {
		return model.TagPair{}, nil
	}
	if err != nil {
		return model.TagPair{}, err
	}

	return model.TagPair{
		Artist: firstValue(m.Artist()),
		Album:  firstValue(m.Album()),
	}, nil
}

// ReadCoverArt returns the embedded picture, if any.
func (r *GenericReader) ReadCoverArt(path string) ([]byte, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if errors.Is(err, tag.ErrNoTagsFound) {
		return nil, "", ErrNoCoverArt
	}
	if err != nil {
		return nil, "", err
	}

	pic := m.Picture()
	if pic == nil || len(pic.Data) == 0 {
		return nil, "", ErrNoCoverArt
	}
	return pic.Data, pic.MIMEType, nil
}

// FallbackReader asks a primary reader first and consults the secondary
// one when the primary fails or finds neither artist nor album.
//
// Example:
//
//	reader := NewReader() // ID3v2 first, then ID3v1/ID3v2.2
//	tags, err := reader.ReadTags(path)
type FallbackReader struct {
	primary   TagReader
	secondary TagReader
}

// NewFallbackReader chains two readers.
func NewFallbackReader(primary, secondary TagReader) *FallbackReader {
	return &FallbackReader{primary: primary, secondary: secondary}
}

// NewReader returns the reader used by the front ends: ID3Reader backed
// by GenericReader.
func NewReader() *FallbackReader {
	return NewFallbackReader(NewID3Reader(), NewGenericReader())
}

// ReadTags implements TagReader.
//
// If the primary reader fails and the secondary succeeds, the secondary
// result is used. If both fail, the primary error is returned. An empty
// primary result is replaced by the secondary one unless that fails.
// ErrNotMPEG from the primary reader is final.
func (r *FallbackReader) ReadTags(path string) (model.TagPair, error) {
	tags, err := r.primary.ReadTags(path)
	if err == nil && (tags.Artist != "" || tags.Album != "") {
		return tags, nil
	}
	if errors.Is(err, ErrNotMPEG) {
		return model.TagPair{}, err
	}

	alt, altErr := r.secondary.ReadTags(path)
	if altErr != nil {
		if err != nil {
			return model.TagPair{}, fmt.Errorf("%w (fallback: %v)", err, altErr)
		}
		return tags, nil
	}
	return alt, nil
}

// ReadCoverArt tries the primary reader and then the secondary one, for
// readers that can extract pictures.
func (r *FallbackReader) ReadCoverArt(path string) ([]byte, string, error) {
	err := ErrNoCoverArt
	for _, reader := range []TagReader{r.primary, r.secondary} {
		covers, ok := reader.(interface {
			ReadCoverArt(path string) ([]byte, string, error)
		})
		if !ok {
			continue
		}
		data, mime, coverErr := covers.ReadCoverArt(path)
		if coverErr == nil {
			return data, mime, nil
		}
		if !errors.Is(coverErr, ErrNoCoverArt) {
			err = coverErr
		}
	}
	return nil, "", err
}
