package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	"phototable"
	"phototable/internal/assets"
	"phototable/internal/config"
	"phototable/internal/dateutil"
	"phototable/internal/fileutil"
	"phototable/internal/settings"
)

// Sentinel errors for generate operations.
var (
	ErrReadPreamble       = errors.New("failed to read preamble file")
	ErrWritePDF           = errors.New("failed to write PDF file")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// generateParams groups parameters shared across the batch.
type generateParams struct {
	css          string
	page         *phototable.PageSettings
	table        *phototable.TableSettings
	caption      *phototable.CaptionSettings
	footer       *phototable.Footer
	quality      int
	title        string
	preamblePath string // global preamble, album manifests override it
	htmlOutput   bool
	htmlOnly     bool
	quiet        bool
	verbose      bool
}

// runGenerateCmd executes the generate command and returns an exit code.
func runGenerateCmd(args []string, env *Environment) int {
	flags, positional, err := parseGenerateFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.common.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	if err := validateWorkers(flags.workers); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	// Load configuration
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			fmt.Fprintln(env.Stderr, err)
			return exitCodeFor(err)
		}
	}

	// A custom asset directory replaces the embedded assets for both the
	// table template and the named styles.
	loader := env.AssetLoader
	if basePath := resolveAssetBasePath(flags, cfg); basePath != "" {
		loader, err = assets.NewFilesystemLoader(basePath)
		if err != nil {
			fmt.Fprintln(env.Stderr, err)
			return exitCodeFor(err)
		}
	}

	opts := []phototable.Option{phototable.WithAssetLoader(loader)}
	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			fmt.Fprintf(env.Stderr, "invalid timeout %q (use Go durations like 30s or 2m)\n", flags.timeout)
			return ExitUsage
		}
		opts = append(opts, phototable.WithTimeout(d))
	}

	poolSize := phototable.ResolvePoolSize(flags.workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", poolSize)
	}
	pool := newServicePool(poolSize, opts...)
	defer func() { _ = pool.Close() }()

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runGenerate(ctx, positional, flags, cfg, loader, pool, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runGenerate orchestrates the generation process.
func runGenerate(ctx context.Context, positional []string, flags *generateFlags, cfg *config.Config, loader assets.Loader, pool Pool, env *Environment) error {
	// Load persisted preferences: last input directory, orientation,
	// table widths, quality. A corrupt file falls back to defaults.
	settingsPath, pathErr := env.SettingsPath()
	st := settings.Default()
	if pathErr == nil {
		var err error
		st, err = settings.Load(settingsPath)
		if err != nil && !flags.common.quiet {
			fmt.Fprintf(env.Stderr, "Warning: %v (using defaults)\n", err)
		}
	}

	jobs, err := resolveJobs(positional, flags.output, cfg, st)
	if err != nil {
		return err
	}

	params, err := buildParams(flags, cfg, st, loader, env)
	if err != nil {
		return err
	}

	results := generateBatch(ctx, pool, jobs, params, env)

	failedCount := printResults(results, params.quiet, params.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d document(s) failed", failedCount)
	}

	// Remember the working setup for the next run. Persistence failures
	// never fail a successful generation.
	if pathErr == nil {
		if err := persistSettings(settingsPath, st, jobs, params); err != nil && !flags.common.quiet {
			fmt.Fprintf(env.Stderr, "Warning: could not save settings: %v\n", err)
		}
	}

	return nil
}

// buildParams resolves the effective generation parameters.
// Priority: CLI flags > config file > persisted settings > defaults.
func buildParams(flags *generateFlags, cfg *config.Config, st settings.Settings, loader assets.Loader, env *Environment) (*generateParams, error) {
	page := buildPageSettings(flags, cfg, st)
	table := buildTableSettings(flags, cfg, st, page)

	footer, err := buildFooterData(flags, cfg, env.Now)
	if err != nil {
		return nil, err
	}

	css, err := resolveCSSContent(flags.style.name, cfg, loader)
	if err != nil {
		return nil, err
	}

	quality := st.JPEGQuality
	if cfg.Quality != 0 {
		quality = cfg.Quality
	}
	if flags.quality != 0 {
		quality = flags.quality
	}

	return &generateParams{
		css:          css,
		page:         page,
		table:        table,
		caption:      buildCaptionSettings(flags, cfg),
		footer:       footer,
		quality:      quality,
		title:        flags.title,
		preamblePath: flags.preamble,
		htmlOutput:   flags.outputMode.html,
		htmlOnly:     flags.outputMode.htmlOnly,
		quiet:        flags.common.quiet,
		verbose:      flags.common.verbose,
	}, nil
}

// buildPageSettings creates phototable.PageSettings from flags, config, and
// persisted settings. Orientation falls back to the last used one.
func buildPageSettings(flags *generateFlags, cfg *config.Config, st settings.Settings) *phototable.PageSettings {
	ps := &phototable.PageSettings{
		Size:        cfg.Page.Size,
		Orientation: cfg.Page.Orientation,
		MarginCm:    cfg.Page.MarginCm,
	}

	// CLI flags override config
	if flags.page.size != "" {
		ps.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		ps.Orientation = flags.page.orientation
	}
	if flags.page.margin > 0 {
		ps.MarginCm = flags.page.margin
	}

	// Apply defaults
	if ps.Size == "" {
		ps.Size = phototable.PageSizeA4
	}
	if ps.Orientation == "" {
		ps.Orientation = st.Orientation
	}
	if ps.Orientation == "" {
		ps.Orientation = phototable.OrientationPortrait
	}
	if ps.MarginCm == 0 {
		ps.MarginCm = phototable.DefaultMarginCm
	}

	ps.Size = strings.ToLower(ps.Size)
	ps.Orientation = strings.ToLower(ps.Orientation)

	return ps
}

// buildTableSettings creates phototable.TableSettings from flags, config,
// and persisted settings. Width and rows default per orientation.
func buildTableSettings(flags *generateFlags, cfg *config.Config, st settings.Settings, page *phototable.PageSettings) *phototable.TableSettings {
	landscape := page.Orientation == phototable.OrientationLandscape

	ts := &phototable.TableSettings{}

	if landscape {
		ts.WidthCm = cfg.Table.WidthLandscapeCm
		ts.RowsPerPage = cfg.Table.RowsLandscape
	} else {
		ts.WidthCm = cfg.Table.WidthPortraitCm
		ts.RowsPerPage = cfg.Table.RowsPortrait
	}

	if ts.WidthCm == 0 {
		ts.WidthCm = st.TableWidthCm(page.Orientation)
	}

	// CLI flags override config and settings
	if flags.table.width > 0 {
		ts.WidthCm = flags.table.width
	}
	if flags.table.rows > 0 {
		ts.RowsPerPage = flags.table.rows
	}

	// Apply defaults
	if ts.WidthCm == 0 {
		if landscape {
			ts.WidthCm = phototable.DefaultTableWidthLandscapeCm
		} else {
			ts.WidthCm = phototable.DefaultTableWidthPortraitCm
		}
	}
	if ts.RowsPerPage == 0 {
		if landscape {
			ts.RowsPerPage = phototable.DefaultRowsLandscape
		} else {
			ts.RowsPerPage = phototable.DefaultRowsPortrait
		}
	}

	return ts
}

// buildCaptionSettings creates phototable.CaptionSettings from flags and config.
func buildCaptionSettings(flags *generateFlags, cfg *config.Config) *phototable.CaptionSettings {
	cs := &phototable.CaptionSettings{
		Template:   cfg.Caption.Template,
		FontFamily: cfg.Caption.FontFamily,
		FontSizePt: cfg.Caption.FontSizePt,
	}

	// CLI flags override config
	if flags.caption.template != "" {
		cs.Template = flags.caption.template
	}
	if flags.caption.font != "" {
		cs.FontFamily = flags.caption.font
	}
	if flags.caption.fontSize > 0 {
		cs.FontSizePt = flags.caption.fontSize
	}

	return cs
}

// buildFooterData creates phototable.Footer from flags and config,
// resolving "auto" dates against the injected clock.
func buildFooterData(flags *generateFlags, cfg *config.Config, now func() time.Time) (*phototable.Footer, error) {
	if flags.footer.disabled {
		return nil, nil
	}

	hasFlags := flags.footer.position != "" || flags.footer.text != "" ||
		flags.footer.date != "" || flags.footer.pageNumber
	if !hasFlags && !cfg.Footer.Enabled {
		return nil, nil
	}

	f := &phototable.Footer{
		Position:       cfg.Footer.Position,
		ShowPageNumber: cfg.Footer.ShowPageNumber,
		Date:           cfg.Footer.Date,
		Text:           cfg.Footer.Text,
	}

	// CLI flags override config
	if flags.footer.position != "" {
		f.Position = flags.footer.position
	}
	if flags.footer.text != "" {
		f.Text = flags.footer.text
	}
	if flags.footer.date != "" {
		f.Date = flags.footer.date
	}
	if flags.footer.pageNumber {
		f.ShowPageNumber = true
	}

	// Resolve "auto" and "auto:FORMAT" once for the entire batch
	if f.Date != "" {
		resolved, err := dateutil.ResolveDate(f.Date, now())
		if err != nil {
			return nil, fmt.Errorf("invalid footer date: %w", err)
		}
		f.Date = resolved
	}

	return f, nil
}

// resolveAssetBasePath returns the custom asset directory, if any.
func resolveAssetBasePath(flags *generateFlags, cfg *config.Config) string {
	if flags.style.assetPath != "" {
		return flags.style.assetPath
	}
	return cfg.Assets.BasePath
}

// resolveCSSContent resolves the table style sheet.
// Priority: CSS file path (read directly) > style name (via loader) >
// config style name. An empty result means the library default applies.
func resolveCSSContent(styleFlag string, cfg *config.Config, loader assets.Loader) (string, error) {
	name := styleFlag
	if name == "" {
		name = cfg.Style.Name
	}
	if name == "" {
		return "", nil
	}

	// A path with a separator or .css extension is read as a file.
	if isCSSFile(name) {
		content, err := os.ReadFile(name) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("reading style sheet: %w", err)
		}
		return string(content), nil
	}

	return loader.LoadStyle(name)
}

// isCSSFile reports whether the style argument is a file path rather than
// an asset style name.
func isCSSFile(s string) bool {
	return fileutil.IsFilePath(s) || strings.HasSuffix(s, ".css")
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > phototable.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, phototable.MaxPoolSize)
	}
	return nil
}

// persistSettings saves the effective setup for the next run.
func persistSettings(path string, st settings.Settings, jobs []DocumentJob, params *generateParams) error {
	if len(jobs) > 0 {
		st.LastInputDir = albumDir(jobs[0].Album)
	}
	st.Orientation = params.page.Orientation
	if params.page.Orientation == phototable.OrientationLandscape {
		st.TableWidthLandscapeCm = params.table.WidthCm
	} else {
		st.TableWidthPortraitCm = params.table.WidthCm
	}
	st.JPEGQuality = params.quality

	return settings.Save(path, st)
}
