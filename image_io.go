package creatum

import (
	"fmt"

	"github.com/creatumlibre/creatum/internal/codec"
)

// LoadImage decodes the image file at path into a pixmap. PNG, JPEG, GIF,
// TIFF, BMP and WebP are recognised from the file content.
func LoadImage(path string) (*Pixmap, error) {
	img, _, err := codec.Open(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// SaveImage encodes pm to path in the format named by the extension.
// quality applies to JPEG only; zero selects the default.
func SaveImage(pm *Pixmap, path string, quality int) error {
	if pm == nil {
		return ErrNilPixmap
	}
	if err := codec.Save(pm.ToImage(), path, codec.Options{Quality: quality}); err != nil {
		return fmt.Errorf("creatum: save %s: %w", path, err)
	}
	return nil
}

// LoadBaseImageFile opens path and makes it the stack's base layer.
func (s *Stack) LoadBaseImageFile(path string) error {
	pm, err := LoadImage(path)
	if err != nil {
		return err
	}
	return s.LoadBaseImage(pm)
}
