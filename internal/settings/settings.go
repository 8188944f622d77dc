// Package settings persists user preferences between runs: last input
// directory, orientation, table widths, and JPEG quality. This is the only
// state the tool keeps.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"phototable/internal/yamlutil"
)

// Defaults mirror the document generation defaults.
const (
	DefaultOrientation      = "portrait"
	DefaultWidthPortraitCm  = 16.0
	DefaultWidthLandscapeCm = 24.0
	DefaultJPEGQuality      = 85
)

const (
	dirPermissions  = 0o750
	filePermissions = 0o600
)

// Settings holds the persisted user preferences.
type Settings struct {
	LastInputDir          string  `yaml:"lastInputDir"`
	Orientation           string  `yaml:"orientation"`
	TableWidthPortraitCm  float64 `yaml:"tableWidthPortraitCm"`
	TableWidthLandscapeCm float64 `yaml:"tableWidthLandscapeCm"`
	JPEGQuality           int     `yaml:"jpegQuality"`
}

// Default returns settings for a first run.
func Default() Settings {
	return Settings{
		Orientation:           DefaultOrientation,
		TableWidthPortraitCm:  DefaultWidthPortraitCm,
		TableWidthLandscapeCm: DefaultWidthLandscapeCm,
		JPEGQuality:           DefaultJPEGQuality,
	}
}

// TableWidthCm returns the persisted table width for the given orientation.
func (s Settings) TableWidthCm(orientation string) float64 {
	if orientation == "landscape" {
		return s.TableWidthLandscapeCm
	}
	return s.TableWidthPortraitCm
}

// DefaultPath returns the standard settings file location under the user
// config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "phototable", "settings.yaml"), nil
}

// Load reads settings from path. A missing file is not an error: defaults
// are returned so a first run works without any setup.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- settings path is derived from UserConfigDir
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("reading settings: %w", err)
	}

	s := Default()
	if err := yamlutil.Unmarshal(data, &s); err != nil {
		// A corrupt settings file should not block the tool.
		return Default(), fmt.Errorf("parsing settings: %w", err)
	}
	return s, nil
}

// Save writes settings atomically: temp file in the target directory, then
// rename. A crash mid-write never corrupts the previous settings.
func Save(path string, s Settings) error {
	data, err := yamlutil.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "settings-*.yaml")
	if err != nil {
		return fmt.Errorf("creating temp settings file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing settings file: %w", err)
	}
	if err := os.Chmod(tmpPath, filePermissions); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing settings: %w", err)
	}
	return nil
}
