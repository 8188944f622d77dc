// Package config loads document generation configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"phototable/internal/fileutil"
	"phototable/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds all configuration for document generation. Zero values mean
// "use the library default"; validation happens when the values reach the
// generation service.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Page    PageConfig    `yaml:"page"`
	Table   TableConfig   `yaml:"table"`
	Caption CaptionConfig `yaml:"caption"`
	Footer  FooterConfig  `yaml:"footer"`
	Style   StyleConfig   `yaml:"style"`
	Quality int           `yaml:"quality"` // JPEG quality (0 = default)
	Assets  AssetsConfig  `yaml:"assets"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the input
}

// PageConfig defines paper options.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "a4", "letter", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	MarginCm    float64 `yaml:"marginCm"`
}

// TableConfig defines photo table dimensions per orientation.
type TableConfig struct {
	WidthPortraitCm  float64 `yaml:"widthPortraitCm"`
	WidthLandscapeCm float64 `yaml:"widthLandscapeCm"`
	RowsPortrait     int     `yaml:"rowsPortrait"`
	RowsLandscape    int     `yaml:"rowsLandscape"`
}

// CaptionConfig defines caption rendering options.
type CaptionConfig struct {
	Template   string `yaml:"template"` // {number} and {filename} placeholders
	FontFamily string `yaml:"fontFamily"`
	FontSizePt int    `yaml:"fontSizePt"`
}

// FooterConfig defines page footer options.
type FooterConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Position       string `yaml:"position"` // "left", "center", "right"
	ShowPageNumber bool   `yaml:"showPageNumber"`
	Date           string `yaml:"date"` // "auto", "auto:FORMAT", or literal
	Text           string `yaml:"text"`
}

// StyleConfig selects the table style sheet.
type StyleConfig struct {
	Name string `yaml:"name"` // asset style name (empty = "plain")
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = use embedded assets
}

// DefaultConfig returns a neutral configuration. All values defer to the
// library defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's a config name searched in standard locations.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard
// locations: current directory first, then the user config directory.
// Tries extensions in order: .yaml, .yml.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "phototable", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
