// Package album describes one document's worth of photos.
//
// An album comes from either a YAML manifest (per-photo rotation and
// caption overrides, optional Markdown preamble) or a plain directory
// (every supported image, lexically sorted, no rotation).
package album

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"phototable/internal/photo"
	"phototable/internal/yamlutil"
)

// Sentinel errors for album operations.
var (
	ErrEmptyAlbum       = errors.New("album contains no photos")
	ErrManifestParse    = errors.New("failed to parse album manifest")
	ErrManifestNotFound = errors.New("album manifest not found")
)

// Album is one document's photo list plus optional metadata.
type Album struct {
	Title    string  `yaml:"title"`
	Preamble string  `yaml:"preamble"` // path to a Markdown file
	Photos   []Entry `yaml:"photos"`

	// Dir is the directory relative paths resolve against. Not part of
	// the manifest.
	Dir string `yaml:"-"`
}

// Entry is one photo line in a manifest.
type Entry struct {
	Path     string `yaml:"path"`
	Rotation int    `yaml:"rotation"` // clockwise degrees, 90° steps
	Caption  string `yaml:"caption"`  // optional override
}

// Load reads an album manifest from a YAML file. Relative photo and
// preamble paths resolve against the manifest's directory.
func Load(path string) (*Album, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided manifest path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("reading album manifest: %w", err)
	}

	var a Album
	if err := yamlutil.UnmarshalStrict(data, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestParse, err)
	}
	if len(a.Photos) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyAlbum, path)
	}

	a.Dir = filepath.Dir(path)
	if a.Title == "" {
		base := filepath.Base(path)
		a.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return &a, nil
}

// FromDirectory builds an album from every supported image directly in
// dir, sorted by name. Subdirectories are not descended into.
func FromDirectory(dir string) (*Album, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	var photos []Entry
	for _, e := range entries {
		if e.IsDir() || !photo.Supported(e.Name()) {
			continue
		}
		photos = append(photos, Entry{Path: e.Name()})
	}
	sort.Slice(photos, func(i, j int) bool { return photos[i].Path < photos[j].Path })

	if len(photos) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyAlbum, dir)
	}

	return &Album{
		Title:  filepath.Base(dir),
		Photos: photos,
		Dir:    dir,
	}, nil
}

// FromFiles builds an album directly from image file paths, keeping the
// given order.
func FromFiles(paths []string) (*Album, error) {
	if len(paths) == 0 {
		return nil, ErrEmptyAlbum
	}
	photos := make([]Entry, len(paths))
	for i, p := range paths {
		photos[i] = Entry{Path: p}
	}
	return &Album{Title: "phototable", Photos: photos}, nil
}

// ToPhotos converts the album entries into verified-ready photo values,
// resolving relative paths and validating rotations.
func (a *Album) ToPhotos() ([]photo.Photo, error) {
	photos := make([]photo.Photo, len(a.Photos))
	for i, e := range a.Photos {
		rot, err := photo.ParseRotation(e.Rotation)
		if err != nil {
			return nil, fmt.Errorf("photo %s: %w", e.Path, err)
		}
		photos[i] = photo.Photo{
			Path:     a.resolve(e.Path),
			Rotation: rot,
			Caption:  e.Caption,
		}
	}
	return photos, nil
}

// PreamblePath returns the resolved preamble path, or "" if none is set.
func (a *Album) PreamblePath() string {
	if a.Preamble == "" {
		return ""
	}
	return a.resolve(a.Preamble)
}

func (a *Album) resolve(path string) string {
	if a.Dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(a.Dir, path)
}
