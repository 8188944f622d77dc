package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"phototable/internal/album"
	"phototable/internal/config"
	"phototable/internal/photo"
	"phototable/internal/settings"
)

// Sentinel errors for input discovery.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrInvalidInput = errors.New("invalid input")
)

// DocumentJob is one document to generate: an album and its output path.
type DocumentJob struct {
	Album      *album.Album
	OutputPath string
}

// resolveJobs turns positional arguments into document jobs.
//
// Three input forms are accepted:
//   - image files only: one document containing them in argument order
//   - directories: one document per directory, images sorted by name
//   - album manifests (.yaml/.yml): one document per manifest
//
// Directories and manifests may be mixed; bare image files cannot be
// combined with either. With no arguments the last used input directory
// from settings is tried.
func resolveJobs(args []string, flagOutput string, cfg *config.Config, st settings.Settings) ([]DocumentJob, error) {
	if len(args) == 0 {
		if st.LastInputDir == "" {
			return nil, ErrNoInput
		}
		args = []string{st.LastInputDir}
	}

	albums, err := resolveAlbums(args)
	if err != nil {
		return nil, err
	}

	if flagOutput != "" && strings.HasSuffix(flagOutput, ".pdf") && len(albums) > 1 {
		return nil, fmt.Errorf("%w: cannot write %d documents to a single file %s",
			ErrInvalidInput, len(albums), flagOutput)
	}

	jobs := make([]DocumentJob, len(albums))
	for i, a := range albums {
		jobs[i] = DocumentJob{
			Album:      a,
			OutputPath: resolveOutputPath(a, flagOutput, cfg),
		}
	}
	return jobs, nil
}

// resolveAlbums builds one album per directory or manifest argument, or a
// single album from bare image files.
func resolveAlbums(args []string) ([]*album.Album, error) {
	var imageFiles []string
	var albums []*album.Album

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		switch {
		case info.IsDir():
			a, err := album.FromDirectory(arg)
			if err != nil {
				return nil, err
			}
			albums = append(albums, a)
		case isManifest(arg):
			a, err := album.Load(arg)
			if err != nil {
				return nil, err
			}
			albums = append(albums, a)
		case photo.Supported(arg):
			imageFiles = append(imageFiles, arg)
		default:
			return nil, fmt.Errorf("%w: %s (expected an image, directory, or album manifest; supported images: %s)",
				ErrInvalidInput, arg, strings.Join(photo.SupportedExtensions(), ", "))
		}
	}

	if len(imageFiles) > 0 {
		if len(albums) > 0 {
			return nil, fmt.Errorf("%w: cannot mix image files with directories or manifests", ErrInvalidInput)
		}
		a, err := album.FromFiles(imageFiles)
		if err != nil {
			return nil, err
		}
		albums = append(albums, a)
	}

	return albums, nil
}

// isManifest reports whether the path looks like an album manifest.
func isManifest(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// resolveOutputPath determines the PDF output path for an album.
// Priority: -o file > -o dir > config output.defaultDir > next to the input.
func resolveOutputPath(a *album.Album, flagOutput string, cfg *config.Config) string {
	if strings.HasSuffix(flagOutput, ".pdf") {
		return flagOutput
	}

	name := sanitizeFilename(a.Title) + ".pdf"

	if flagOutput != "" {
		return filepath.Join(flagOutput, name)
	}
	if cfg != nil && cfg.Output.DefaultDir != "" {
		return filepath.Join(cfg.Output.DefaultDir, name)
	}
	return filepath.Join(albumDir(a), name)
}

// albumDir returns the directory the album's output defaults to: the album
// directory, or the first photo's directory for file-list albums.
func albumDir(a *album.Album) string {
	if a.Dir != "" {
		return a.Dir
	}
	if len(a.Photos) > 0 {
		return filepath.Dir(a.Photos[0].Path)
	}
	return "."
}

// sanitizeFilename replaces path separators in a title so it is safe as a
// file name component.
func sanitizeFilename(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "phototable"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '-'
		}
		return r
	}, title)
}
