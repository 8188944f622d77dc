package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"phototable/internal/layout"
)

// ErrComposeHTML indicates the table template failed to render.
var ErrComposeHTML = errors.New("table HTML composition failed")

// TableData is everything the table template needs to produce the final
// HTML document.
type TableData struct {
	Title         string
	Preamble      template.HTML // optional, empty means no preamble section
	CSS           template.CSS  // style sheet appended to the base styles
	FontFamily    string
	FontSizePt    int
	TableWidthCm  float64
	ColumnWidthCm float64
	Pages         []PageData
}

// PageData is one output page of table rows.
type PageData struct {
	Rows []RowData
	Last bool // suppresses the trailing page break
}

// RowData is one table row.
type RowData struct {
	Cells []CellData
}

// CellData is one captioned photo cell.
type CellData struct {
	ImageSrc template.URL // data URI of the normalized JPEG
	Caption  string
}

// TableComposer abstracts HTML assembly from paginated photo data.
type TableComposer interface {
	ComposeHTML(ctx context.Context, data *TableData) (string, error)
}

// TemplateComposer renders TableData through an html/template document
// template.
type TemplateComposer struct {
	tmpl *template.Template
}

// NewTemplateComposer parses the document template content.
func NewTemplateComposer(tmplContent string) (*TemplateComposer, error) {
	tmpl, err := template.New("table").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing table template: %w", err)
	}
	return &TemplateComposer{tmpl: tmpl}, nil
}

// tableView wraps TableData with pre-formatted CSS lengths. Widths are
// formatted here so the template stays free of printf gymnastics and
// html/template's CSS value filter sees a plain length token.
type tableView struct {
	*TableData
	TableWidth  template.CSS
	ColumnWidth template.CSS
	FontFamily  template.CSS
}

// ComposeHTML renders the full HTML document.
func (c *TemplateComposer) ComposeHTML(ctx context.Context, data *TableData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	view := tableView{
		TableData:   data,
		TableWidth:  cssLength(data.TableWidthCm),
		ColumnWidth: cssLength(data.ColumnWidthCm),
		FontFamily:  template.CSS(data.FontFamily), // #nosec G203 -- font family comes from config, not user content
	}

	var buf bytes.Buffer
	if err := c.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %v", ErrComposeHTML, err)
	}

	return buf.String(), nil
}

// cssLength formats a centimeter value as a CSS length token.
func cssLength(cm float64) template.CSS {
	// #nosec G203 -- numeric value formatted locally
	return template.CSS(fmt.Sprintf("%.2fcm", cm))
}

// BuildPages converts layout pages plus per-photo image sources into
// template page data. srcs is indexed by the photo index recorded in
// each layout cell.
func BuildPages(pages []layout.Page, srcs []template.URL) []PageData {
	out := make([]PageData, len(pages))
	for i, page := range pages {
		rows := make([]RowData, len(page.Rows))
		for j, row := range page.Rows {
			cells := make([]CellData, len(row.Cells))
			for k, cell := range row.Cells {
				cells[k] = CellData{
					ImageSrc: srcs[cell.PhotoIndex],
					Caption:  cell.Caption,
				}
			}
			rows[j] = RowData{Cells: cells}
		}
		out[i] = PageData{Rows: rows, Last: i == len(pages)-1}
	}
	return out
}

// Compile-time interface check.
var _ TableComposer = (*TemplateComposer)(nil)
