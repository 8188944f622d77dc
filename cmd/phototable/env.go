package main

import (
	"io"
	"os"
	"time"

	"phototable/internal/assets"
	"phototable/internal/settings"
)

// Environment holds injectable dependencies for testability:
// I/O, time, asset loading, and the settings file location.
type Environment struct {
	Now          func() time.Time
	Stdout       io.Writer
	Stderr       io.Writer
	AssetLoader  assets.Loader
	SettingsPath func() (string, error)
}

// DefaultEnv returns the production environment with embedded assets.
func DefaultEnv() *Environment {
	return &Environment{
		Now:          time.Now,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		AssetLoader:  assets.NewEmbeddedLoader(),
		SettingsPath: settings.DefaultPath,
	}
}
