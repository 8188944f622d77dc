// Package layout paginates photos into a fixed two-column grid.
//
// The grid is deterministic: photos fill cells left-to-right, top-to-bottom
// in input order, numbering runs continuously across pages, and the last
// page may be partially filled.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"phototable/internal/photo"
)

// Columns is fixed at two for both page orientations.
const Columns = 2

// Caption filename truncation bounds. Filenames longer than maxFilenameRunes
// are cut to truncatedRunes and suffixed with "...".
const (
	maxFilenameRunes = 35
	truncatedRunes   = 32
)

// DefaultCaptionTemplate numbers each photo and names its source file.
const DefaultCaptionTemplate = "Fig. {number}. {filename}"

// Sentinel errors for layout operations.
var (
	ErrNoPhotos           = errors.New("no photos to lay out")
	ErrInvalidRowsPerPage = errors.New("rows per page must be between 1 and 10")
)

// Settings controls pagination and captioning.
type Settings struct {
	RowsPerPage     int
	CaptionTemplate string // empty means DefaultCaptionTemplate
}

// Cell is one photo placed in the grid.
type Cell struct {
	Number     int // 1-based, continuous across pages
	PhotoIndex int // index into the input photo slice
	Caption    string
}

// Row is one table row of up to Columns cells.
type Row struct {
	Cells []Cell
}

// Page is one output page of rows.
type Page struct {
	Rows []Row
}

// Paginate lays photos into pages of RowsPerPage rows and Columns columns.
func Paginate(photos []photo.Photo, s Settings) ([]Page, error) {
	if len(photos) == 0 {
		return nil, ErrNoPhotos
	}
	if s.RowsPerPage < 1 || s.RowsPerPage > 10 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRowsPerPage, s.RowsPerPage)
	}

	template := s.CaptionTemplate
	if template == "" {
		template = DefaultCaptionTemplate
	}

	perPage := s.RowsPerPage * Columns
	pageCount := (len(photos) + perPage - 1) / perPage

	pages := make([]Page, 0, pageCount)
	var page Page
	var row Row

	for i, p := range photos {
		row.Cells = append(row.Cells, Cell{
			Number:     i + 1,
			PhotoIndex: i,
			Caption:    Caption(template, i+1, p),
		})

		if len(row.Cells) == Columns {
			page.Rows = append(page.Rows, row)
			row = Row{}
		}
		if len(page.Rows) == s.RowsPerPage {
			pages = append(pages, page)
			page = Page{}
		}
	}

	if len(row.Cells) > 0 {
		page.Rows = append(page.Rows, row)
	}
	if len(page.Rows) > 0 {
		pages = append(pages, page)
	}

	return pages, nil
}

// Caption renders the caption for one photo. An explicit per-photo caption
// wins over the template. Template placeholders: {number}, {filename}.
func Caption(template string, number int, p photo.Photo) string {
	if p.Caption != "" {
		return p.Caption
	}

	name := TruncateFilename(p.Stem())
	out := strings.ReplaceAll(template, "{number}", fmt.Sprintf("%d", number))
	out = strings.ReplaceAll(out, "{filename}", name)
	return out
}

// TruncateFilename shortens names longer than 35 runes to 32 runes plus
// an ellipsis, keeping captions to a single line.
func TruncateFilename(name string) string {
	runes := []rune(name)
	if len(runes) <= maxFilenameRunes {
		return name
	}
	return string(runes[:truncatedRunes]) + "..."
}
