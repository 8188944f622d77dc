package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds paper layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64 // cm
}

// tableFlags holds photo table flags.
type tableFlags struct {
	width float64 // cm
	rows  int
}

// captionFlags holds caption rendering flags.
type captionFlags struct {
	template string
	font     string
	fontSize int
}

// footerFlags holds footer-related flags.
type footerFlags struct {
	position   string
	date       string
	text       string
	pageNumber bool
	disabled   bool
}

// styleFlags holds style and asset flags.
type styleFlags struct {
	name      string // style name or CSS file path
	assetPath string // override asset directory
}

// outputFlags holds output mode flags for debugging.
type outputFlags struct {
	html     bool // output HTML alongside PDF
	htmlOnly bool // output HTML only, skip PDF
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common     commonFlags
	output     string
	workers    int
	timeout    string
	title      string
	preamble   string
	quality    int
	page       pageFlags
	table      tableFlags
	caption    captionFlags
	footer     footerFlags
	style      styleFlags
	outputMode outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing and progress")
}

// addPageFlags adds paper layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: a4, letter, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in cm (0.5-5.0)")
}

// addTableFlags adds table flags to a FlagSet.
func addTableFlags(fs *flag.FlagSet, f *tableFlags) {
	fs.Float64Var(&f.width, "table-width", 0, "table width in cm (0 = per-orientation default)")
	fs.IntVar(&f.rows, "rows", 0, "rows per page (0 = 4 portrait / 2 landscape)")
}

// addCaptionFlags adds caption flags to a FlagSet.
func addCaptionFlags(fs *flag.FlagSet, f *captionFlags) {
	fs.StringVar(&f.template, "caption", "", "caption template with {number} and {filename}")
	fs.StringVar(&f.font, "caption-font", "", "caption font family")
	fs.IntVar(&f.fontSize, "caption-size", 0, "caption font size in pt")
}

// addFooterFlags adds footer flags to a FlagSet.
func addFooterFlags(fs *flag.FlagSet, f *footerFlags) {
	fs.StringVar(&f.position, "footer-position", "", "footer position: left, center, right")
	fs.StringVar(&f.date, "footer-date", "", "footer date (\"auto\" = today)")
	fs.StringVar(&f.text, "footer-text", "", "custom footer text")
	fs.BoolVar(&f.pageNumber, "footer-page-number", false, "show page numbers in footer")
	fs.BoolVar(&f.disabled, "no-footer", false, "disable footer")
}

// addStyleFlags adds style and asset flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.name, "style", "", "table style name or CSS file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.html, "html", false, "output HTML alongside PDF")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output HTML only, skip PDF")
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	f := &generateFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF rendering timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.title, "title", "", "document title")
	fs.StringVar(&f.preamble, "preamble", "", "Markdown file rendered above the table")
	fs.IntVar(&f.quality, "quality", 0, "JPEG quality (1-100)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addTableFlags(fs, &f.table)
	addCaptionFlags(fs, &f.caption)
	addFooterFlags(fs, &f.footer)
	addStyleFlags(fs, &f.style)
	addOutputFlags(fs, &f.outputMode)

	fs.Usage = func() { printGenerateUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
