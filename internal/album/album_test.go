package album_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"phototable/internal/album"
	"phototable/internal/photo"
)

const manifestYAML = `
title: Kitchen Renovation
preamble: notes.md
photos:
  - path: before.jpg
    caption: Before demolition
  - path: during.png
    rotation: 90
  - path: /abs/after.jpg
`

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestLoad - Manifest parsing and path resolution
// ---------------------------------------------------------------------------

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("full manifest", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeManifest(t, dir, "kitchen.yaml", manifestYAML)

		a, err := album.Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Title != "Kitchen Renovation" {
			t.Errorf("Title = %q", a.Title)
		}
		if a.Dir != dir {
			t.Errorf("Dir = %q, want %q", a.Dir, dir)
		}
		if len(a.Photos) != 3 {
			t.Fatalf("len(Photos) = %d, want 3", len(a.Photos))
		}
		if a.Photos[0].Caption != "Before demolition" {
			t.Errorf("Photos[0].Caption = %q", a.Photos[0].Caption)
		}
		if a.Photos[1].Rotation != 90 {
			t.Errorf("Photos[1].Rotation = %d, want 90", a.Photos[1].Rotation)
		}
		if got := a.PreamblePath(); got != filepath.Join(dir, "notes.md") {
			t.Errorf("PreamblePath() = %q", got)
		}
	})

	t.Run("title defaults to file stem", func(t *testing.T) {
		t.Parallel()

		path := writeManifest(t, t.TempDir(), "trip-2024.yaml", "photos:\n  - path: a.jpg")
		a, err := album.Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Title != "trip-2024" {
			t.Errorf("Title = %q, want trip-2024", a.Title)
		}
	})

	t.Run("missing manifest", func(t *testing.T) {
		t.Parallel()

		_, err := album.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, album.ErrManifestNotFound) {
			t.Errorf("errors.Is(err, ErrManifestNotFound) = false, got: %v", err)
		}
	})

	t.Run("empty photo list", func(t *testing.T) {
		t.Parallel()

		path := writeManifest(t, t.TempDir(), "empty.yaml", "title: Empty\nphotos: []")
		_, err := album.Load(path)
		if !errors.Is(err, album.ErrEmptyAlbum) {
			t.Errorf("errors.Is(err, ErrEmptyAlbum) = false, got: %v", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		path := writeManifest(t, t.TempDir(), "bad.yaml", "photos:\n  - path: a.jpg\nwatermark: x")
		_, err := album.Load(path)
		if !errors.Is(err, album.ErrManifestParse) {
			t.Errorf("errors.Is(err, ErrManifestParse) = false, got: %v", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestFromDirectory - Sorted, supported images only
// ---------------------------------------------------------------------------

func TestFromDirectory(t *testing.T) {
	t.Parallel()

	t.Run("collects and sorts images", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		for _, name := range []string{"b.jpg", "a.png", "c.gif", "notes.txt", "doc.pdf"} {
			if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600); err != nil {
				t.Fatal(err)
			}
		}
		if err := os.Mkdir(filepath.Join(dir, "subdir.jpg"), 0o750); err != nil {
			t.Fatal(err)
		}

		a, err := album.FromDirectory(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Title != filepath.Base(dir) {
			t.Errorf("Title = %q, want %q", a.Title, filepath.Base(dir))
		}
		want := []string{"a.png", "b.jpg", "c.gif"}
		if len(a.Photos) != len(want) {
			t.Fatalf("len(Photos) = %d, want %d: %+v", len(a.Photos), len(want), a.Photos)
		}
		for i, w := range want {
			if a.Photos[i].Path != w {
				t.Errorf("Photos[%d].Path = %q, want %q", i, a.Photos[i].Path, w)
			}
		}
	})

	t.Run("no images", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
		_, err := album.FromDirectory(dir)
		if !errors.Is(err, album.ErrEmptyAlbum) {
			t.Errorf("errors.Is(err, ErrEmptyAlbum) = false, got: %v", err)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := album.FromDirectory(filepath.Join(t.TempDir(), "nope"))
		if err == nil {
			t.Error("expected error, got nil")
		}
	})
}

// ---------------------------------------------------------------------------
// TestFromFiles - Argument order preserved
// ---------------------------------------------------------------------------

func TestFromFiles(t *testing.T) {
	t.Parallel()

	t.Run("keeps order", func(t *testing.T) {
		t.Parallel()

		a, err := album.FromFiles([]string{"z.jpg", "a.jpg", "m.png"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"z.jpg", "a.jpg", "m.png"}
		for i, w := range want {
			if a.Photos[i].Path != w {
				t.Errorf("Photos[%d].Path = %q, want %q", i, a.Photos[i].Path, w)
			}
		}
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()

		if _, err := album.FromFiles(nil); !errors.Is(err, album.ErrEmptyAlbum) {
			t.Errorf("errors.Is(err, ErrEmptyAlbum) = false, got: %v", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestToPhotos - Relative resolution and rotation validation
// ---------------------------------------------------------------------------

func TestToPhotos(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative paths against dir", func(t *testing.T) {
		t.Parallel()

		a := &album.Album{
			Dir: "/albums/kitchen",
			Photos: []album.Entry{
				{Path: "before.jpg", Rotation: -90, Caption: "Before"},
				{Path: "/abs/after.jpg"},
			},
		}
		photos, err := a.ToPhotos()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if photos[0].Path != filepath.Join("/albums/kitchen", "before.jpg") {
			t.Errorf("photos[0].Path = %q", photos[0].Path)
		}
		if photos[0].Rotation != photo.Rotate270 {
			t.Errorf("photos[0].Rotation = %v, want 270", photos[0].Rotation)
		}
		if photos[0].Caption != "Before" {
			t.Errorf("photos[0].Caption = %q", photos[0].Caption)
		}
		if photos[1].Path != "/abs/after.jpg" {
			t.Errorf("photos[1].Path = %q, want absolute unchanged", photos[1].Path)
		}
	})

	t.Run("invalid rotation", func(t *testing.T) {
		t.Parallel()

		a := &album.Album{Photos: []album.Entry{{Path: "x.jpg", Rotation: 45}}}
		if _, err := a.ToPhotos(); !errors.Is(err, photo.ErrInvalidRotation) {
			t.Errorf("errors.Is(err, ErrInvalidRotation) = false, got: %v", err)
		}
	})
}
