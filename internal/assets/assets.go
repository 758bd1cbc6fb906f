package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"github.com/anthonynsimon/bild/clone"
	"github.com/hack-pad/hackpadfs"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrEmptyAtlas is returned when the atlas has no bytes or decodes to an empty image.
var ErrEmptyAtlas = errors.New("assets: empty atlas")

// DecodeAtlas decodes encoded image bytes (PNG, JPEG, GIF, BMP or WebP) into RGBA pixels ready for upload.
func DecodeAtlas(data []byte) (*image.RGBA, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyAtlas
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("assets: decode atlas: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, format, ErrEmptyAtlas
	}
	return clone.AsRGBA(img), format, nil
}

// LoadAtlas reads and decodes the atlas at path. Any error here is fatal to the caller; there is no
// fallback texture.
func LoadAtlas(fsys hackpadfs.FS, path string) (*image.RGBA, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	img, _, err := DecodeAtlas(data)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", path, err)
	}
	return img, nil
}
