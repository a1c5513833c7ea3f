package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotMPEG is returned when a file does not start with an MPEG audio
// frame, optionally preceded by an ID3v2 tag.
var ErrNotMPEG = errors.New("not an MPEG audio stream")

const (
	id3HeaderSize = 10
	id3FlagFooter = 0x10
)

// CheckMPEG reports whether the file at path looks like MPEG audio: the
// first byte after the ID3v2 tag (or the first byte of the file when
// there is none) must be a frame sync, 0xFF followed by three set bits.
//
// Example:
//
//	if err := CheckMPEG("/in/notes.mp3"); errors.Is(err, ErrNotMPEG) {
//	    log.Printf("Skipping %s: %v", path, err)
//	}
func CheckMPEG(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	offset, err := audioOffset(f)
	if err != nil {
		return err
	}

	var sync [2]byte
	if _, err := f.ReadAt(sync[:], offset); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %s", ErrNotMPEG, path)
		}
		return err
	}
	if sync[0] != 0xFF || sync[1]&0xE0 != 0xE0 {
		return fmt.Errorf("%w: %s", ErrNotMPEG, path)
	}
	return nil
}

// audioOffset returns the position of the first byte after the ID3v2
// tag at the start of r, or 0 when there is no tag.
func audioOffset(r io.ReaderAt) (int64, error) {
	var header [id3HeaderSize]byte
	n, err := r.ReadAt(header[:], 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, err
	}
	if n < id3HeaderSize || string(header[:3]) != "ID3" {
		return 0, nil
	}

	// The size is syncsafe: four bytes of seven bits each.
	size := int64(header[6]&0x7F)<<21 |
		int64(header[7]&0x7F)<<14 |
		int64(header[8]&0x7F)<<7 |
		int64(header[9]&0x7F)

	offset := id3HeaderSize + size
	if header[5]&id3FlagFooter != 0 {
		offset += id3HeaderSize
	}
	return offset, nil
}
