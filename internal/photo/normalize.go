package photo

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// NormalizeOptions controls how a photo is prepared for the document.
// JPEG quality is a property of the encode step, see EncodeJPEG.
type NormalizeOptions struct {
	TargetWidth int      // output width in pixels (height keeps aspect ratio)
	Rotation    Rotation // user rotation, clockwise
}

// Normalize opens and prepares a photo for insertion into the document:
// EXIF orientation applied, user rotation applied, transparency flattened
// onto white, resized to the target width with Lanczos resampling.
func Normalize(path string, opts NormalizeOptions) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	img = flattenOnWhite(img)
	img = rotate(img, opts.Rotation)

	if opts.TargetWidth > 0 {
		img = imaging.Resize(img, opts.TargetWidth, 0, imaging.Lanczos)
	}

	return img, nil
}

// rotate applies a clockwise rotation. The imaging library rotates
// counter-clockwise, so 90° clockwise maps to Rotate270 and vice versa.
func rotate(img image.Image, r Rotation) image.Image {
	switch r {
	case Rotate90:
		return imaging.Rotate270(img)
	case Rotate180:
		return imaging.Rotate180(img)
	case Rotate270:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

// flattenOnWhite composites the image over an opaque white background,
// matching what a printed page shows for transparent regions.
func flattenOnWhite(img image.Image) image.Image {
	bounds := img.Bounds()
	bg := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}

// EncodeJPEG re-encodes the normalized image as JPEG at the given quality.
func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}
	return buf.Bytes(), nil
}
