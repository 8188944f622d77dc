package phototable

import "errors"

// Sentinel errors for library operations.
var (
	ErrNoPhotos       = errors.New("no photos to generate from")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Table settings validation errors.
	ErrInvalidTableWidth  = errors.New("invalid table width")
	ErrTableTooWide       = errors.New("table wider than printable page area")
	ErrInvalidRowsPerPage = errors.New("invalid rows per page")

	// Caption settings validation errors.
	ErrInvalidFontSize = errors.New("invalid caption font size")

	// Image processing validation errors.
	ErrInvalidQuality = errors.New("invalid JPEG quality")

	// Footer validation errors.
	ErrInvalidFooterPosition = errors.New("invalid footer position")
)
