package phototable

import (
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"strings"

	"phototable/internal/assets"
	"phototable/internal/layout"
	"phototable/internal/photo"
	"phototable/internal/pipeline"
)

// Service orchestrates the photo table pipeline: load, normalize, paginate,
// compose HTML, render PDF.
type Service struct {
	cfg          serviceConfig
	assetLoader  assets.Loader
	preamble     pipeline.PreambleConverter
	composer     pipeline.TableComposer
	pdfConverter pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:         serviceConfig{timeout: defaultTimeout},
		assetLoader: assets.NewEmbeddedLoader(),
		preamble:    pipeline.NewGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdfConverter == nil {
		s.pdfConverter = newRodConverter(s.cfg.timeout)
	}

	return s
}

// WithAssetLoader overrides the embedded asset loader, e.g. with a
// filesystem loader pointing at a custom asset directory.
func WithAssetLoader(loader assets.Loader) Option {
	return func(s *Service) {
		s.assetLoader = loader
	}
}

// resolved holds input settings with all defaults applied.
type resolved struct {
	page        PageSettings
	tableWidth  float64
	rowsPerPage int
	caption     CaptionSettings
	quality     int
	targetWidth int
}

// Generate runs the full pipeline and returns the document.
// The context cancels the batch cooperatively: it is checked before each
// photo and between pipeline stages.
func (s *Service) Generate(ctx context.Context, input Input) (*Result, error) {
	res, err := s.resolveInput(input)
	if err != nil {
		return nil, err
	}

	// Verify every photo up front so a bad file fails before any work.
	photos := make([]photo.Photo, len(input.Photos))
	for i, in := range input.Photos {
		rot, err := photo.ParseRotation(in.Rotation)
		if err != nil {
			return nil, fmt.Errorf("photo %s: %w", in.Path, err)
		}
		photos[i] = photo.Photo{Path: in.Path, Rotation: rot, Caption: in.Caption}
	}
	if err := photo.Load(photos); err != nil {
		return nil, err
	}

	// Normalize each photo and embed it as a JPEG data URI.
	total := len(photos)
	srcs := make([]template.URL, total)
	for i := range photos {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		img, err := photo.Normalize(photos[i].Path, photo.NormalizeOptions{
			TargetWidth: res.targetWidth,
			Rotation:    photos[i].Rotation,
		})
		if err != nil {
			return nil, fmt.Errorf("normalizing %s: %w", photos[i].Path, err)
		}

		jpeg, err := photo.EncodeJPEG(img, res.quality)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", photos[i].Path, err)
		}
		srcs[i] = jpegDataURI(jpeg)

		if input.OnProgress != nil {
			input.OnProgress(i+1, total)
		}
	}

	pages, err := layout.Paginate(photos, layout.Settings{
		RowsPerPage:     res.rowsPerPage,
		CaptionTemplate: res.caption.Template,
	})
	if err != nil {
		return nil, err
	}

	// Convert the Markdown preamble, if any.
	var preambleHTML template.HTML
	if input.Preamble != "" {
		preambleHTML, err = s.preamble.ToHTML(ctx, input.Preamble)
		if err != nil {
			return nil, err
		}
	}

	css, err := s.resolveCSS(input.CSS)
	if err != nil {
		return nil, err
	}

	composer, err := s.tableComposer()
	if err != nil {
		return nil, err
	}

	htmlContent, err := composer.ComposeHTML(ctx, &pipeline.TableData{
		Title:         input.Title,
		Preamble:      preambleHTML,
		CSS:           template.CSS(css), // #nosec G203 -- style sheet from assets or config
		FontFamily:    res.caption.FontFamily,
		FontSizePt:    res.caption.FontSizePt,
		TableWidthCm:  res.tableWidth,
		ColumnWidthCm: res.tableWidth / layout.Columns,
		Pages:         pipeline.BuildPages(pages, srcs),
	})
	if err != nil {
		return nil, err
	}

	result := &Result{HTML: []byte(htmlContent), PhotoCount: total}
	if input.HTMLOnly {
		return result, nil
	}

	pdfBytes, err := s.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{
		Page:   &res.page,
		Footer: toFooterData(input.Footer),
	})
	if err != nil {
		return nil, err
	}
	result.PDF = pdfBytes

	return result, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdfConverter != nil {
		return s.pdfConverter.Close()
	}
	return nil
}

// resolveInput validates the input and applies defaults.
func (s *Service) resolveInput(input Input) (*resolved, error) {
	if len(input.Photos) == 0 {
		return nil, ErrNoPhotos
	}
	if err := input.Page.Validate(); err != nil {
		return nil, err
	}
	if err := input.Caption.Validate(); err != nil {
		return nil, err
	}
	if err := input.Footer.Validate(); err != nil {
		return nil, err
	}
	if input.Quality != 0 && (input.Quality < MinQuality || input.Quality > MaxQuality) {
		return nil, fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidQuality, input.Quality, MinQuality, MaxQuality)
	}

	res := &resolved{
		page:    *DefaultPageSettings(),
		quality: DefaultQuality,
		caption: CaptionSettings{
			Template:   DefaultCaptionTemplate,
			FontFamily: DefaultFontFamily,
			FontSizePt: DefaultFontSizePt,
		},
	}

	if input.Page != nil {
		res.page = *input.Page
		res.page.Size = strings.ToLower(res.page.Size)
		res.page.Orientation = strings.ToLower(res.page.Orientation)
	}

	if res.page.landscape() {
		res.tableWidth = DefaultTableWidthLandscapeCm
		res.rowsPerPage = DefaultRowsLandscape
		res.targetWidth = targetWidthLandscapePx
	} else {
		res.tableWidth = DefaultTableWidthPortraitCm
		res.rowsPerPage = DefaultRowsPortrait
		res.targetWidth = targetWidthPortraitPx
	}

	if err := input.Table.Validate(&res.page); err != nil {
		return nil, err
	}
	if input.Table != nil {
		res.tableWidth = input.Table.WidthCm
		if input.Table.RowsPerPage > 0 {
			res.rowsPerPage = input.Table.RowsPerPage
		}
	}

	// The default width can exceed the printable area too, e.g. a 16cm
	// table on an a4 portrait page with 5cm margins.
	if printable := res.page.printableWidthCm(); res.tableWidth > printable {
		return nil, fmt.Errorf("%w: %.2fcm exceeds %.2fcm", ErrTableTooWide, res.tableWidth, printable)
	}

	if input.Caption != nil {
		if input.Caption.Template != "" {
			res.caption.Template = input.Caption.Template
		}
		if input.Caption.FontFamily != "" {
			res.caption.FontFamily = input.Caption.FontFamily
		}
		if input.Caption.FontSizePt != 0 {
			res.caption.FontSizePt = input.Caption.FontSizePt
		}
	}

	if input.Quality != 0 {
		res.quality = input.Quality
	}

	return res, nil
}

// resolveCSS returns the explicit style sheet, or the default style from
// the asset loader when none is given.
func (s *Service) resolveCSS(css string) (string, error) {
	if css != "" {
		return css, nil
	}
	return s.assetLoader.LoadStyle(assets.DefaultStyle)
}

// tableComposer lazily builds the composer from the loaded template, so a
// custom asset loader set via options is honored.
func (s *Service) tableComposer() (pipeline.TableComposer, error) {
	if s.composer != nil {
		return s.composer, nil
	}

	tmplContent, err := s.assetLoader.LoadTemplate(assets.DefaultTemplate)
	if err != nil {
		return nil, err
	}
	composer, err := pipeline.NewTemplateComposer(tmplContent)
	if err != nil {
		return nil, err
	}
	s.composer = composer
	return composer, nil
}

// jpegDataURI embeds JPEG bytes as a data URI for the <img> src attribute.
func jpegDataURI(jpeg []byte) template.URL {
	// #nosec G203 -- content is JPEG bytes we just encoded
	return template.URL("data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(jpeg))
}

// footerData is the internal footer representation passed to the renderer.
type footerData struct {
	Position       string
	ShowPageNumber bool
	Date           string
	Text           string
}

// toFooterData converts the public Footer type to internal footerData.
func toFooterData(f *Footer) *footerData {
	if f == nil {
		return nil
	}
	return &footerData{
		Position:       f.Position,
		ShowPageNumber: f.ShowPageNumber,
		Date:           f.Date,
		Text:           f.Text,
	}
}
