// Package codec decodes and encodes the raster files a document is loaded
// from and saved to.
//
// Decoding sniffs the content rather than trusting the file name, so a
// mislabelled file still opens. Encoding picks the format from the file
// extension.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("codec: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("codec: empty data")
)

// Format is an image encoding.
type Format int

// Supported formats. WebP can be decoded but not encoded.
const (
	None Format = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
	WebP
)

// DefaultJPEGQuality is used when Options.Quality is zero.
const DefaultJPEGQuality = 90

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case GIF:
		return "gif"
	case TIFF:
		return "tiff"
	case BMP:
		return "bmp"
	case WebP:
		return "webp"
	default:
		return "none"
	}
}

// ExtToFormat returns the Format for a file extension, with or without the
// leading dot.
func ExtToFormat(ext string) (Format, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	case "webp":
		return WebP, nil
	case "":
		return None, fmt.Errorf("%w: empty extension", ErrUnsupportedFormat)
	}
	return None, fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
}

// Sniff detects the format of encoded image data from its header.
func Sniff(data []byte) (Format, error) {
	if len(data) == 0 {
		return None, ErrEmptyData
	}
	if !filetype.IsImage(data) {
		return None, ErrUnsupportedFormat
	}
	kind, err := filetype.Match(data)
	if err != nil {
		return None, fmt.Errorf("codec: sniff: %w", err)
	}
	return ExtToFormat(kind.Extension)
}

// Open decodes the image stored at path.
func Open(path string) (image.Image, Format, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, None, fmt.Errorf("codec: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Read(f)
}

// Read decodes an image, detecting the format from the content.
func Read(r io.Reader) (image.Image, Format, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, None, fmt.Errorf("codec: read: %w", err)
	}
	return Decode(data)
}

// Decode decodes an in-memory image, detecting the format from the content.
func Decode(data []byte) (image.Image, Format, error) {
	format, err := Sniff(data)
	if err != nil {
		return nil, None, err
	}
	r := bytes.NewReader(data)

	var img image.Image
	switch format {
	case PNG:
		img, err = png.Decode(r)
	case JPEG:
		img, err = jpeg.Decode(r)
	case GIF:
		img, err = gif.Decode(r)
	case TIFF:
		img, err = tiff.Decode(r)
	case BMP:
		img, err = bmp.Decode(r)
	case WebP:
		img, err = webp.Decode(r)
	default:
		return nil, None, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, None, fmt.Errorf("codec: decode %s: %w", format, err)
	}
	return img, format, nil
}

// Options control encoding.
type Options struct {
	// Quality is the JPEG quality, 1-100. Zero means DefaultJPEGQuality.
	Quality int
}

// Save encodes img to path, choosing the format from the extension.
func Save(img image.Image, path string, opts Options) error {
	format, err := ExtToFormat(filepath.Ext(path))
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("codec: create file: %w", err)
	}
	if err := Write(f, img, format, opts); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Write encodes img to w in the given format.
func Write(w io.Writer, img image.Image, format Format, opts Options) error {
	var err error
	switch format {
	case PNG:
		err = png.Encode(w, img)
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality(opts.Quality)})
	case GIF:
		err = gif.Encode(w, img, nil)
	case TIFF:
		err = tiff.Encode(w, img, nil)
	case BMP:
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: cannot encode %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("codec: encode %s: %w", format, err)
	}
	return nil
}

func jpegQuality(q int) int {
	if q == 0 {
		return DefaultJPEGQuality
	}
	return min(max(q, 1), 100)
}
