package main

import (
	"errors"
	"os"

	"phototable"
	"phototable/internal/album"
	"phototable/internal/assets"
	"phototable/internal/config"
	"phototable/internal/dateutil"
	"phototable/internal/photo"
)

// Exit codes for the phototable CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful generation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, undecodable photo
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, phototable.ErrBrowserConnect) ||
		errors.Is(err, phototable.ErrPageCreate) ||
		errors.Is(err, phototable.ErrPageLoad) ||
		errors.Is(err, phototable.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadPreamble) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, album.ErrManifestNotFound) ||
		errors.Is(err, photo.ErrDecode) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, album.ErrManifestParse) ||
		errors.Is(err, album.ErrEmptyAlbum) ||
		errors.Is(err, photo.ErrUnsupportedFormat) ||
		errors.Is(err, photo.ErrInvalidRotation) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, phototable.ErrNoPhotos) ||
		errors.Is(err, phototable.ErrInvalidPageSize) ||
		errors.Is(err, phototable.ErrInvalidOrientation) ||
		errors.Is(err, phototable.ErrInvalidMargin) ||
		errors.Is(err, phototable.ErrInvalidTableWidth) ||
		errors.Is(err, phototable.ErrTableTooWide) ||
		errors.Is(err, phototable.ErrInvalidRowsPerPage) ||
		errors.Is(err, phototable.ErrInvalidFontSize) ||
		errors.Is(err, phototable.ErrInvalidQuality) ||
		errors.Is(err, phototable.ErrInvalidFooterPosition) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidInput) {
		return ExitUsage
	}

	return ExitGeneral
}
