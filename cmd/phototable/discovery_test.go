package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"phototable/internal/album"
	"phototable/internal/config"
	"phototable/internal/settings"
)

// writeFiles creates empty files with the given names under dir.
func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestResolveJobs - Input forms and output mapping
// ---------------------------------------------------------------------------

func TestResolveJobs(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	noSettings := settings.Default()

	t.Run("directory argument", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, "a.jpg", "b.png")

		jobs, err := resolveJobs([]string{dir}, "", cfg, noSettings)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(jobs) != 1 {
			t.Fatalf("len(jobs) = %d, want 1", len(jobs))
		}
		if jobs[0].Album.Title != filepath.Base(dir) {
			t.Errorf("Title = %q", jobs[0].Album.Title)
		}
		wantOut := filepath.Join(dir, filepath.Base(dir)+".pdf")
		if jobs[0].OutputPath != wantOut {
			t.Errorf("OutputPath = %q, want %q", jobs[0].OutputPath, wantOut)
		}
	})

	t.Run("bare image files form one document", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, "z.jpg", "a.png")

		jobs, err := resolveJobs([]string{
			filepath.Join(dir, "z.jpg"),
			filepath.Join(dir, "a.png"),
		}, "", cfg, noSettings)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(jobs) != 1 {
			t.Fatalf("len(jobs) = %d, want 1", len(jobs))
		}
		// Argument order preserved, not sorted
		if jobs[0].Album.Photos[0].Path != filepath.Join(dir, "z.jpg") {
			t.Errorf("Photos[0].Path = %q", jobs[0].Album.Photos[0].Path)
		}
	})

	t.Run("manifest argument", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		manifest := filepath.Join(dir, "trip.yaml")
		if err := os.WriteFile(manifest, []byte("photos:\n  - path: a.jpg"), 0o600); err != nil {
			t.Fatal(err)
		}

		jobs, err := resolveJobs([]string{manifest}, "", cfg, noSettings)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(jobs) != 1 || jobs[0].Album.Title != "trip" {
			t.Errorf("jobs = %+v", jobs)
		}
	})

	t.Run("directories and manifests mix", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, "a.jpg")
		manifest := filepath.Join(dir, "extra.yaml")
		if err := os.WriteFile(manifest, []byte("photos:\n  - path: b.jpg"), 0o600); err != nil {
			t.Fatal(err)
		}

		jobs, err := resolveJobs([]string{dir, manifest}, "", cfg, noSettings)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(jobs) != 2 {
			t.Errorf("len(jobs) = %d, want 2", len(jobs))
		}
	})

	t.Run("images cannot mix with directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, "a.jpg")

		_, err := resolveJobs([]string{dir, filepath.Join(dir, "a.jpg")}, "", cfg, noSettings)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("errors.Is(err, ErrInvalidInput) = false, got: %v", err)
		}
	})

	t.Run("single pdf output for multiple documents", func(t *testing.T) {
		t.Parallel()

		dirA := t.TempDir()
		dirB := t.TempDir()
		writeFiles(t, dirA, "a.jpg")
		writeFiles(t, dirB, "b.jpg")

		_, err := resolveJobs([]string{dirA, dirB}, "combined.pdf", cfg, noSettings)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("errors.Is(err, ErrInvalidInput) = false, got: %v", err)
		}
	})

	t.Run("unsupported argument", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, "notes.txt")

		_, err := resolveJobs([]string{filepath.Join(dir, "notes.txt")}, "", cfg, noSettings)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("errors.Is(err, ErrInvalidInput) = false, got: %v", err)
		}
	})

	t.Run("no arguments falls back to last input dir", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, "a.jpg")
		st := settings.Default()
		st.LastInputDir = dir

		jobs, err := resolveJobs(nil, "", cfg, st)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(jobs) != 1 || jobs[0].Album.Dir != dir {
			t.Errorf("jobs = %+v", jobs)
		}
	})

	t.Run("no arguments and no history", func(t *testing.T) {
		t.Parallel()

		_, err := resolveJobs(nil, "", cfg, settings.Default())
		if !errors.Is(err, ErrNoInput) {
			t.Errorf("errors.Is(err, ErrNoInput) = false, got: %v", err)
		}
	})

	t.Run("missing argument", func(t *testing.T) {
		t.Parallel()

		_, err := resolveJobs([]string{filepath.Join(t.TempDir(), "nope")}, "", cfg, noSettings)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("errors.Is(err, os.ErrNotExist) = false, got: %v", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolveOutputPath - Destination priority
// ---------------------------------------------------------------------------

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	a := &album.Album{Title: "Kitchen", Dir: "/albums/kitchen"}

	t.Run("explicit pdf file wins", func(t *testing.T) {
		t.Parallel()

		if got := resolveOutputPath(a, "/out/custom.pdf", config.DefaultConfig()); got != "/out/custom.pdf" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("output directory", func(t *testing.T) {
		t.Parallel()

		if got := resolveOutputPath(a, "/out", config.DefaultConfig()); got != filepath.Join("/out", "Kitchen.pdf") {
			t.Errorf("got %q", got)
		}
	})

	t.Run("config default dir", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.DefaultDir = "/srv/pdfs"
		if got := resolveOutputPath(a, "", cfg); got != filepath.Join("/srv/pdfs", "Kitchen.pdf") {
			t.Errorf("got %q", got)
		}
	})

	t.Run("next to the album", func(t *testing.T) {
		t.Parallel()

		if got := resolveOutputPath(a, "", config.DefaultConfig()); got != filepath.Join("/albums/kitchen", "Kitchen.pdf") {
			t.Errorf("got %q", got)
		}
	})

	t.Run("file list album uses first photo dir", func(t *testing.T) {
		t.Parallel()

		fl := &album.Album{Title: "Picks", Photos: []album.Entry{{Path: "/photos/best/a.jpg"}}}
		if got := resolveOutputPath(fl, "", config.DefaultConfig()); got != filepath.Join("/photos/best", "Picks.pdf") {
			t.Errorf("got %q", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestSanitizeFilename - Titles become safe file names
// ---------------------------------------------------------------------------

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain", "Kitchen", "Kitchen"},
		{"spaces kept", "Summer Trip 2024", "Summer Trip 2024"},
		{"slashes replaced", "before/after", "before-after"},
		{"backslashes replaced", `a\b`, "a-b"},
		{"colons replaced", "site: north", "site- north"},
		{"empty falls back", "", "phototable"},
		{"whitespace only falls back", "   ", "phototable"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := sanitizeFilename(tt.title); got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
