package photo

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	// Decoders for every supported input format. JPEG, PNG, and GIF come
	// from the standard library; BMP, TIFF, and WebP from golang.org/x/image.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// supportedExtensions lists the file extensions accepted as input,
// lowercase with leading dot.
var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// Supported reports whether the file extension is an accepted image format.
func Supported(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// SupportedExtensions returns the accepted extensions, sorted.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(supportedExtensions))
	for ext := range supportedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Verify checks that the file decodes as an image and returns its
// dimensions. Only the header is decoded, so this is cheap even for
// large files.
func Verify(path string) (width, height int, err error) {
	if !Supported(path) {
		return 0, 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided photo path
	if err != nil {
		return 0, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %v", ErrDecode, filepath.Base(path), err)
	}

	return cfg.Width, cfg.Height, nil
}

// Load verifies every photo in the batch before any work is spent on it.
// A photo that fails to verify fails the whole batch; there is no silent
// skipping.
func Load(photos []Photo) error {
	for i := range photos {
		if !photos[i].Rotation.Valid() {
			return fmt.Errorf("%w: %s has %d", ErrInvalidRotation, photos[i].Path, photos[i].Rotation)
		}
		if _, _, err := Verify(photos[i].Path); err != nil {
			return err
		}
	}
	return nil
}
