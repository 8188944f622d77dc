// Package phototable assembles batches of photographs into page-formatted
// PDF documents: a fixed-width two-column table, one captioned photo per
// cell, paginated into a fixed number of rows per page.
//
// # Quick Start
//
// Create a service, generate a document, and close when done:
//
//	svc := phototable.New()
//	defer svc.Close()
//
//	result, err := svc.Generate(ctx, phototable.Input{
//	    Photos: []phototable.PhotoInput{
//	        {Path: "scene/DSC_0001.jpg"},
//	        {Path: "scene/DSC_0002.jpg", Rotation: 90},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("table.pdf", result.PDF, 0644)
//
// The result contains both the PDF bytes (result.PDF) and the intermediate
// HTML (result.HTML) for debugging. Use Input.HTMLOnly to skip PDF
// generation.
//
// # Generation Pipeline
//
// Each document goes through these stages:
//
//  1. Load: every photo is verified to decode before any work starts
//  2. Normalize: EXIF orientation, user rotation (90° steps), transparency
//     flattened onto white, Lanczos resize, JPEG re-encode
//  3. Paginate: two columns, rows per page derived from the orientation
//     (4 portrait / 2 landscape), numbering continuous across pages
//  4. Compose: table HTML with per-cell captions, optional Markdown
//     preamble via Goldmark
//  5. Render: PDF via headless Chrome (go-rod) with paper size,
//     orientation, margins, and optional footer
//
// Progress is reported through Input.OnProgress after each photo, and the
// context cancels a batch cooperatively between photos and stages.
//
// # Parallel Processing
//
// For rendering several documents at once, use ServicePool to manage
// multiple browser instances:
//
//	pool := phototable.NewServicePool(4)
//	defer pool.Close()
//
//	svc := pool.Acquire()
//	defer pool.Release(svc)
//	result, err := svc.Generate(ctx, input)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library downloads a
// managed Chromium on first run (~/.cache/rod/browser/). For containers
// and CI, set ROD_NO_SANDBOX=1 and optionally ROD_BROWSER_BIN.
package phototable
