package phototable

import (
	"fmt"
	"strings"
	"time"
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in centimeters.
const (
	MinMarginCm     = 0.5
	MaxMarginCm     = 5.0
	DefaultMarginCm = 1.0
)

// JPEG quality bounds.
const (
	MinQuality     = 1
	MaxQuality     = 100
	DefaultQuality = 85
)

// Table defaults. The grid is always two columns; rows per page depend on
// the page orientation.
const (
	DefaultTableWidthPortraitCm  = 16.0
	DefaultTableWidthLandscapeCm = 24.0
	DefaultRowsPortrait          = 4
	DefaultRowsLandscape         = 2
	MaxRowsPerPage               = 10
)

// Caption defaults.
const (
	DefaultCaptionTemplate = "Fig. {number}. {filename}"
	DefaultFontFamily      = `'Times New Roman', serif`
	DefaultFontSizePt      = 10
	MinFontSizePt          = 4
	MaxFontSizePt          = 72
)

// Normalized photo widths in pixels, chosen per page orientation.
const (
	targetWidthPortraitPx  = 400
	targetWidthLandscapePx = 600
)

// paperSizesCm maps page size names to portrait dimensions in centimeters.
var paperSizesCm = map[string][2]float64{
	PageSizeA4:     {21.0, 29.7},
	PageSizeLetter: {21.59, 27.94},
	PageSizeLegal:  {21.59, 35.56},
}

// PageSettings configures paper dimensions.
type PageSettings struct {
	Size        string  // "a4", "letter", "legal"
	Orientation string  // "portrait", "landscape"
	MarginCm    float64 // applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		MarginCm:    DefaultMarginCm,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}
	if _, ok := paperSizesCm[strings.ToLower(p.Size)]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}
	switch strings.ToLower(p.Orientation) {
	case OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}
	if p.MarginCm < MinMarginCm || p.MarginCm > MaxMarginCm {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.MarginCm, MinMarginCm, MaxMarginCm)
	}
	return nil
}

// landscape reports whether the page is landscape-oriented.
func (p *PageSettings) landscape() bool {
	return strings.ToLower(p.Orientation) == OrientationLandscape
}

// paperCm returns the page dimensions in centimeters, orientation applied.
func (p *PageSettings) paperCm() (width, height float64) {
	dims := paperSizesCm[strings.ToLower(p.Size)]
	if p.landscape() {
		return dims[1], dims[0]
	}
	return dims[0], dims[1]
}

// printableWidthCm returns the page width minus both margins.
func (p *PageSettings) printableWidthCm() float64 {
	w, _ := p.paperCm()
	return w - 2*p.MarginCm
}

// TableSettings configures the photo grid.
type TableSettings struct {
	WidthCm     float64 // total table width in centimeters
	RowsPerPage int     // 0 = derive from orientation
}

// Validate checks table settings against the page they must fit on.
// Returns nil if t is nil (nil means use defaults).
func (t *TableSettings) Validate(page *PageSettings) error {
	if t == nil {
		return nil
	}
	if t.WidthCm <= 0 {
		return fmt.Errorf("%w: %.2f", ErrInvalidTableWidth, t.WidthCm)
	}
	if t.RowsPerPage < 0 || t.RowsPerPage > MaxRowsPerPage {
		return fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidRowsPerPage, t.RowsPerPage, MaxRowsPerPage)
	}
	if page != nil {
		if printable := page.printableWidthCm(); t.WidthCm > printable {
			return fmt.Errorf("%w: %.2fcm exceeds %.2fcm", ErrTableTooWide, t.WidthCm, printable)
		}
	}
	return nil
}

// CaptionSettings configures per-photo captions.
type CaptionSettings struct {
	Template   string // {number} and {filename} placeholders
	FontFamily string
	FontSizePt int
}

// Validate checks caption settings.
// Returns nil if c is nil (nil means use defaults).
func (c *CaptionSettings) Validate() error {
	if c == nil {
		return nil
	}
	if c.FontSizePt != 0 && (c.FontSizePt < MinFontSizePt || c.FontSizePt > MaxFontSizePt) {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidFontSize, c.FontSizePt, MinFontSizePt, MaxFontSizePt)
	}
	return nil
}

// Footer configures the PDF footer rendered by Chrome.
type Footer struct {
	Position       string // "left", "center", "right" (default: "right")
	ShowPageNumber bool
	Date           string
	Text           string
}

// Validate checks that footer settings are valid.
// Returns nil if f is nil (nil means no footer).
func (f *Footer) Validate() error {
	if f == nil {
		return nil
	}
	switch strings.ToLower(f.Position) {
	case "", "left", "center", "right":
		return nil
	default:
		return fmt.Errorf("%w: %q (must be left, center, or right)", ErrInvalidFooterPosition, f.Position)
	}
}

// PhotoInput is one photograph in generation order.
type PhotoInput struct {
	Path     string
	Rotation int    // clockwise degrees, 90° steps
	Caption  string // optional override for the generated caption
}

// ProgressFunc reports batch progress after each photo is processed.
type ProgressFunc func(done, total int)

// Input contains generation parameters.
type Input struct {
	Photos     []PhotoInput     // photos in cell order (required)
	Title      string           // document title (optional)
	Preamble   string           // Markdown rendered above the table (optional)
	CSS        string           // table style sheet (optional, default style applies)
	Page       *PageSettings    // nil = defaults
	Table      *TableSettings   // nil = defaults for the page orientation
	Caption    *CaptionSettings // nil = defaults
	Footer     *Footer          // nil = no footer
	Quality    int              // JPEG quality, 0 = DefaultQuality
	HTMLOnly   bool             // skip PDF rendering, return HTML only
	OnProgress ProgressFunc     // optional progress callback
}

// Result holds the generated document.
type Result struct {
	PDF        []byte
	HTML       []byte
	PhotoCount int
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 60 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("phototable: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}
