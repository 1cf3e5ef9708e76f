package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
)

const jpegQuality = 90

type ImageProcessor struct {
	MaxSize  int64 // bytes
	MaxWidth int   // longest edge after normalization
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{
		MaxSize:  5 * 1024 * 1024,
		MaxWidth: 1600,
	}
}

func (p *ImageProcessor) Validate(data []byte) error {
	if int64(len(data)) > p.MaxSize {
		return fmt.Errorf("image exceeds %dMB", p.MaxSize/(1024*1024))
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("not an image: %w", err)
	}
	return nil
}

// Normalize re-encodes any supported input (jpeg/png/gif) as a JPEG so
// every stored asset has a single format, downscaling oversized images.
func (p *ImageProcessor) Normalize(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > p.MaxWidth || bounds.Dy() > p.MaxWidth {
		img = imaging.Fit(img, p.MaxWidth, p.MaxWidth, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("cannot encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
