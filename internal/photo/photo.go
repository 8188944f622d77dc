// Package photo loads and normalizes photographs for document layout.
//
// Normalization follows a fixed sequence: EXIF auto-orientation, the
// user's rotation in 90 degree steps, transparency flattened onto white,
// then a Lanczos resize to the target width. The result is re-encoded as
// JPEG at the configured quality.
package photo

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors for photo operations.
var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrDecode            = errors.New("failed to decode image")
	ErrInvalidRotation   = errors.New("rotation must be 0, 90, 180, or 270")
)

// Rotation is a clockwise rotation in degrees, restricted to 90° steps.
type Rotation int

// Valid rotations.
const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// Valid reports whether r is one of the four supported rotations.
func (r Rotation) Valid() bool {
	switch r {
	case Rotate0, Rotate90, Rotate180, Rotate270:
		return true
	}
	return false
}

// ParseRotation normalizes an arbitrary degree value into a Rotation.
// Negative values rotate counter-clockwise (-90 == 270).
func ParseRotation(degrees int) (Rotation, error) {
	d := degrees % 360
	if d < 0 {
		d += 360
	}
	r := Rotation(d)
	if !r.Valid() {
		return Rotate0, fmt.Errorf("%w: got %d", ErrInvalidRotation, degrees)
	}
	return r, nil
}

// Photo is a single photograph queued for layout.
type Photo struct {
	Path     string
	Rotation Rotation
	Caption  string // optional override for the generated caption
}

// Stem returns the base file name without its extension, used for captions.
func (p Photo) Stem() string {
	base := filepath.Base(p.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
