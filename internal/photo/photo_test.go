package photo_test

import (
	"errors"
	"testing"

	"phototable/internal/photo"
)

// ---------------------------------------------------------------------------
// TestParseRotation - Degree normalization
// ---------------------------------------------------------------------------

func TestParseRotation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		degrees int
		want    photo.Rotation
		wantErr bool
	}{
		{"zero", 0, photo.Rotate0, false},
		{"quarter turn", 90, photo.Rotate90, false},
		{"half turn", 180, photo.Rotate180, false},
		{"three quarters", 270, photo.Rotate270, false},
		{"full turn wraps", 360, photo.Rotate0, false},
		{"over full turn", 450, photo.Rotate90, false},
		{"negative quarter", -90, photo.Rotate270, false},
		{"negative half", -180, photo.Rotate180, false},
		{"not a step", 45, 0, true},
		{"close but wrong", 91, 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := photo.ParseRotation(tt.degrees)
			if tt.wantErr {
				if !errors.Is(err, photo.ErrInvalidRotation) {
					t.Fatalf("errors.Is(err, ErrInvalidRotation) = false, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseRotation(%d) = %v, want %v", tt.degrees, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRotationValid - Supported rotation values
// ---------------------------------------------------------------------------

func TestRotationValid(t *testing.T) {
	t.Parallel()

	for _, r := range []photo.Rotation{photo.Rotate0, photo.Rotate90, photo.Rotate180, photo.Rotate270} {
		if !r.Valid() {
			t.Errorf("Rotation(%d).Valid() = false, want true", r)
		}
	}
	for _, r := range []photo.Rotation{-90, 45, 100, 360} {
		if r.Valid() {
			t.Errorf("Rotation(%d).Valid() = true, want false", r)
		}
	}
}

// ---------------------------------------------------------------------------
// TestStem - Caption file name extraction
// ---------------------------------------------------------------------------

func TestStem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"/photos/IMG_0042.jpg", "IMG_0042"},
		{"holiday.jpeg", "holiday"},
		{"/a/b/archive.tar.gz", "archive.tar"},
		{"noext", "noext"},
	}

	for _, tt := range tests {
		tt := tt
		p := photo.Photo{Path: tt.path}
		if got := p.Stem(); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
