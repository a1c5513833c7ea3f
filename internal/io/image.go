package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// CoverArtService turns embedded pictures into folder cover files.
//
// Pictures found in ID3 APIC frames come in whatever format the tagger
// used (usually JPEG or PNG) and at any size. PrepareCover scales them
// down to a maximum edge length and re-encodes them as JPEG.
//
// Example usage:
//
//	svc := NewCoverArtService()
//	jpegBytes, err := svc.PrepareCover(ctx, picture, 1000)
type CoverArtService struct {
	quality int
}

// NewCoverArtService creates a new CoverArtService encoding at JPEG quality 90.
func NewCoverArtService() *CoverArtService {
	return &CoverArtService{quality: 90}
}

// PrepareCover decodes data, shrinks it to fit within maxSize x maxSize
// (aspect ratio preserved) and returns it encoded as JPEG.
//
// A maxSize of 0 disables resizing; the picture is only re-encoded.
// Pictures already within bounds are never scaled up.
//
// Example:
//
//	// A 1500x1000 picture with maxSize 1000 becomes 1000x666
//	cover, err := svc.PrepareCover(ctx, data, 1000)
func (s *CoverArtService) PrepareCover(ctx context.Context, data []byte, maxSize int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	if maxSize > 0 {
		img = fitWithin(img, maxSize)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: s.quality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// fitWithin scales img so that neither edge exceeds maxSize.
func fitWithin(img image.Image, maxSize int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= maxSize && height <= maxSize {
		return img
	}

	if width >= height {
		height = height * maxSize / width
		width = maxSize
	} else {
		width = width * maxSize / height
		height = maxSize
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
