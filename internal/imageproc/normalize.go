// Package imageproc prepares attachment images for embedding in exported documents.
package imageproc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// Embeddable encodings.
const (
	FormatJPEG = "JPG"
	FormatPNG  = "PNG"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// Image is a decoded, orientation-corrected image ready for embedding.
type Image struct {
	Data   []byte
	Format string
	Width  int
	Height int
}

// Normalize decodes a JPEG or PNG, applies the EXIF orientation and
// re-encodes it in the same format.
func Normalize(data []byte) (*Image, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	if format != "jpeg" && format != "png" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s image: %w", format, err)
	}

	out := &Image{Format: FormatPNG}
	encoding := imaging.PNG
	var opts []imaging.EncodeOption
	if format == "jpeg" {
		out.Format = FormatJPEG
		encoding = imaging.JPEG
		opts = append(opts, imaging.JPEGQuality(90))
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, encoding, opts...); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	bounds := img.Bounds()
	out.Data = buf.Bytes()
	out.Width = bounds.Dx()
	out.Height = bounds.Dy()
	return out, nil
}

// LoadLogo reads and normalizes the footer logo.
func LoadLogo(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read logo: %w", err)
	}
	return Normalize(data)
}
