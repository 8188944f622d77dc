package phototable

// Notes:
// - rodRenderer is not exercised against a real browser here; the conversion
//   path is tested through a fake renderer.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"math"
	"os"
	"strings"
	"testing"
)

const floatTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

// ---------------------------------------------------------------------------
// TestBuildPDFOptions - Metric geometry converted to Chrome inches
// ---------------------------------------------------------------------------

func TestBuildPDFOptions(t *testing.T) {
	t.Parallel()

	t.Run("a4 portrait defaults", func(t *testing.T) {
		t.Parallel()

		opts := buildPDFOptions(&pdfOptions{
			Page: &PageSettings{Size: "a4", Orientation: "portrait", MarginCm: 1},
		})

		if !almostEqual(*opts.PaperWidth, 21.0/cmPerInch) {
			t.Errorf("PaperWidth = %v, want %v", *opts.PaperWidth, 21.0/cmPerInch)
		}
		if !almostEqual(*opts.PaperHeight, 29.7/cmPerInch) {
			t.Errorf("PaperHeight = %v, want %v", *opts.PaperHeight, 29.7/cmPerInch)
		}
		if !almostEqual(*opts.MarginTop, 1.0/cmPerInch) {
			t.Errorf("MarginTop = %v, want %v", *opts.MarginTop, 1.0/cmPerInch)
		}
		if !almostEqual(*opts.MarginBottom, 1.0/cmPerInch) {
			t.Errorf("MarginBottom = %v, want %v", *opts.MarginBottom, 1.0/cmPerInch)
		}
		if !opts.PrintBackground {
			t.Error("PrintBackground = false, want true")
		}
		if opts.DisplayHeaderFooter {
			t.Error("DisplayHeaderFooter = true without a footer")
		}
	})

	t.Run("landscape swaps dimensions", func(t *testing.T) {
		t.Parallel()

		opts := buildPDFOptions(&pdfOptions{
			Page: &PageSettings{Size: "a4", Orientation: "landscape", MarginCm: 1},
		})
		if !almostEqual(*opts.PaperWidth, 29.7/cmPerInch) {
			t.Errorf("PaperWidth = %v, want %v", *opts.PaperWidth, 29.7/cmPerInch)
		}
		if !almostEqual(*opts.PaperHeight, 21.0/cmPerInch) {
			t.Errorf("PaperHeight = %v, want %v", *opts.PaperHeight, 21.0/cmPerInch)
		}
	})

	t.Run("nil options fall back to defaults", func(t *testing.T) {
		t.Parallel()

		opts := buildPDFOptions(nil)
		if !almostEqual(*opts.PaperWidth, 21.0/cmPerInch) {
			t.Errorf("PaperWidth = %v, want a4 default", *opts.PaperWidth)
		}
	})

	t.Run("footer widens bottom margin", func(t *testing.T) {
		t.Parallel()

		opts := buildPDFOptions(&pdfOptions{
			Page:   &PageSettings{Size: "a4", Orientation: "portrait", MarginCm: 1},
			Footer: &footerData{ShowPageNumber: true},
		})
		want := 1.0/cmPerInch + footerMarginExtraInches
		if !almostEqual(*opts.MarginBottom, want) {
			t.Errorf("MarginBottom = %v, want %v", *opts.MarginBottom, want)
		}
		if !opts.DisplayHeaderFooter {
			t.Error("DisplayHeaderFooter = false with a footer")
		}
		if opts.HeaderTemplate != "<span></span>" {
			t.Errorf("HeaderTemplate = %q, want empty span", opts.HeaderTemplate)
		}
		if !strings.Contains(opts.FooterTemplate, "pageNumber") {
			t.Errorf("FooterTemplate missing page number span: %q", opts.FooterTemplate)
		}
	})
}

// ---------------------------------------------------------------------------
// TestBuildFooterTemplate - Content joining, escaping, alignment
// ---------------------------------------------------------------------------

func TestBuildFooterTemplate(t *testing.T) {
	t.Parallel()

	t.Run("nil data", func(t *testing.T) {
		t.Parallel()

		if got := buildFooterTemplate(nil); got != "<span></span>" {
			t.Errorf("got %q, want empty span", got)
		}
	})

	t.Run("empty data", func(t *testing.T) {
		t.Parallel()

		if got := buildFooterTemplate(&footerData{}); got != "<span></span>" {
			t.Errorf("got %q, want empty span", got)
		}
	})

	t.Run("page number spans", func(t *testing.T) {
		t.Parallel()

		got := buildFooterTemplate(&footerData{ShowPageNumber: true})
		if !strings.Contains(got, `<span class="pageNumber"></span>/<span class="totalPages"></span>`) {
			t.Errorf("missing page number markup: %q", got)
		}
	})

	t.Run("parts joined with separator", func(t *testing.T) {
		t.Parallel()

		got := buildFooterTemplate(&footerData{
			ShowPageNumber: true,
			Date:           "2024-03-07",
			Text:           "Site survey",
		})
		if !strings.Contains(got, `</span> - 2024-03-07 - Site survey`) {
			t.Errorf("parts not joined as expected: %q", got)
		}
	})

	t.Run("escapes user text", func(t *testing.T) {
		t.Parallel()

		got := buildFooterTemplate(&footerData{Text: `<b>"bold"</b>`})
		if strings.Contains(got, "<b>") {
			t.Errorf("text not escaped: %q", got)
		}
		if !strings.Contains(got, "&lt;b&gt;") {
			t.Errorf("expected escaped markup: %q", got)
		}
	})

	t.Run("alignment", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			position string
			want     string
		}{
			{"", "text-align: right"},
			{"left", "text-align: left"},
			{"center", "text-align: center"},
			{"Center", "text-align: center"},
			{"right", "text-align: right"},
		}
		for _, tt := range tests {
			got := buildFooterTemplate(&footerData{Text: "x", Position: tt.position})
			if !strings.Contains(got, tt.want) {
				t.Errorf("position %q: got %q, want %q", tt.position, got, tt.want)
			}
		}
	})
}

// ---------------------------------------------------------------------------
// TestSandboxDisabled - Launcher sandbox opt-out signals
// ---------------------------------------------------------------------------

func TestSandboxDisabled(t *testing.T) {
	clear := func(t *testing.T) {
		t.Setenv("ROD_NO_SANDBOX", "")
		t.Setenv("CI", "")
		t.Setenv("ROD_BROWSER_BIN", "")
	}

	t.Run("no signals", func(t *testing.T) {
		clear(t)
		if sandboxDisabled() {
			t.Error("sandboxDisabled() = true with no signals set")
		}
	})

	t.Run("explicit opt-out", func(t *testing.T) {
		clear(t)
		t.Setenv("ROD_NO_SANDBOX", "1")
		if !sandboxDisabled() {
			t.Error("sandboxDisabled() = false with ROD_NO_SANDBOX=1")
		}
	})

	t.Run("opt-out requires 1", func(t *testing.T) {
		clear(t)
		t.Setenv("ROD_NO_SANDBOX", "true")
		if sandboxDisabled() {
			t.Error("sandboxDisabled() = true with ROD_NO_SANDBOX=true")
		}
	})

	t.Run("ci environment", func(t *testing.T) {
		clear(t)
		t.Setenv("CI", "true")
		if !sandboxDisabled() {
			t.Error("sandboxDisabled() = false with CI=true")
		}
	})

	t.Run("preinstalled browser", func(t *testing.T) {
		clear(t)
		t.Setenv("ROD_BROWSER_BIN", "/usr/bin/chromium")
		if !sandboxDisabled() {
			t.Error("sandboxDisabled() = false with ROD_BROWSER_BIN set")
		}
	})
}

// ---------------------------------------------------------------------------
// TestRodConverterToPDF - Temp file plumbing around the renderer
// ---------------------------------------------------------------------------

// fakeRenderer captures the HTML file it is asked to render.
type fakeRenderer struct {
	gotPath    string
	gotContent string
	gotOpts    *pdfOptions
	pdf        []byte
	err        error
}

func (f *fakeRenderer) RenderFromFile(_ context.Context, filePath string, opts *pdfOptions) ([]byte, error) {
	f.gotPath = filePath
	f.gotOpts = opts
	content, err := os.ReadFile(filePath) // #nosec G304 -- temp file created by the converter
	if err != nil {
		return nil, err
	}
	f.gotContent = string(content)
	if f.err != nil {
		return nil, f.err
	}
	return f.pdf, nil
}

func TestRodConverterToPDF(t *testing.T) {
	t.Parallel()

	t.Run("renders through a temp file", func(t *testing.T) {
		t.Parallel()

		fake := &fakeRenderer{pdf: []byte("%PDF-fake")}
		c := &rodConverter{renderer: fake}

		opts := &pdfOptions{Page: DefaultPageSettings()}
		pdf, err := c.ToPDF(context.Background(), "<html>photos</html>", opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(pdf) != "%PDF-fake" {
			t.Errorf("pdf = %q", pdf)
		}
		if fake.gotContent != "<html>photos</html>" {
			t.Errorf("rendered content = %q", fake.gotContent)
		}
		if !strings.HasSuffix(fake.gotPath, ".html") {
			t.Errorf("temp path = %q, want .html suffix", fake.gotPath)
		}
		if fake.gotOpts != opts {
			t.Error("options not forwarded to the renderer")
		}
		if _, err := os.Stat(fake.gotPath); !os.IsNotExist(err) {
			t.Errorf("temp file not cleaned up: %s", fake.gotPath)
		}
	})

	t.Run("temp file removed on renderer error", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("render failed")
		fake := &fakeRenderer{err: wantErr}
		c := &rodConverter{renderer: fake}

		_, err := c.ToPDF(context.Background(), "<html></html>", nil)
		if !errors.Is(err, wantErr) {
			t.Errorf("err = %v, want %v", err, wantErr)
		}
		if _, err := os.Stat(fake.gotPath); !os.IsNotExist(err) {
			t.Errorf("temp file not cleaned up: %s", fake.gotPath)
		}
	})

	t.Run("close without renderer closer", func(t *testing.T) {
		t.Parallel()

		c := &rodConverter{renderer: &fakeRenderer{}}
		if err := c.Close(); err != nil {
			t.Errorf("Close() = %v, want nil", err)
		}
	})
}
