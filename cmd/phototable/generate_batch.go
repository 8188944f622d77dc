package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"phototable"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// GenerationResult holds the outcome of a single document.
type GenerationResult struct {
	Title      string
	OutputPath string
	PhotoCount int
	Err        error
	Duration   time.Duration
}

// generateBatch processes documents concurrently using the service pool.
func generateBatch(ctx context.Context, pool Pool, jobs []DocumentJob, params *generateParams, env *Environment) []GenerationResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(jobs) {
		concurrency = len(jobs)
	}

	results := make([]GenerationResult, len(jobs))
	var wg sync.WaitGroup
	work := make(chan int, len(jobs))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			svc := pool.Acquire()
			defer pool.Release(svc)

			for idx := range work {
				if ctx.Err() != nil {
					results[idx] = GenerationResult{
						Title: jobs[idx].Album.Title,
						Err:   ctx.Err(),
					}
					continue
				}
				results[idx] = generateDocument(ctx, svc, jobs[idx], params, env)
			}
		}()
	}

	for i := range jobs {
		work <- i
	}
	close(work)

	wg.Wait()
	return results
}

// generateDocument processes a single document and returns the result.
func generateDocument(ctx context.Context, svc Generator, job DocumentJob, params *generateParams, env *Environment) GenerationResult {
	start := time.Now()
	result := GenerationResult{
		Title:      job.Album.Title,
		OutputPath: job.OutputPath,
	}

	photos, err := job.Album.ToPhotos()
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	inputs := make([]phototable.PhotoInput, len(photos))
	for i, p := range photos {
		inputs[i] = phototable.PhotoInput{
			Path:     p.Path,
			Rotation: int(p.Rotation),
			Caption:  p.Caption,
		}
	}

	preamble, err := readPreamble(job, params)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	title := params.title
	if title == "" {
		title = job.Album.Title
	}

	var progress phototable.ProgressFunc
	if params.verbose {
		progress = func(done, total int) {
			fmt.Fprintf(env.Stderr, "%s: photo %d/%d\n", job.Album.Title, done, total)
		}
	}

	outDir := filepath.Dir(job.OutputPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	genResult, err := svc.Generate(ctx, phototable.Input{
		Photos:     inputs,
		Title:      title,
		Preamble:   preamble,
		CSS:        params.css,
		Page:       params.page,
		Table:      params.table,
		Caption:    params.caption,
		Footer:     params.footer,
		Quality:    params.quality,
		HTMLOnly:   params.htmlOnly,
		OnProgress: progress,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	result.PhotoCount = genResult.PhotoCount

	// Write HTML output if requested (--html or --html-only)
	if params.htmlOnly || params.htmlOutput {
		htmlPath := htmlOutputPath(job.OutputPath)
		// #nosec G306 -- HTML files are meant to be readable
		if err := os.WriteFile(htmlPath, genResult.HTML, filePermissions); err != nil {
			result.Err = fmt.Errorf("failed to write HTML file: %w", err)
			result.Duration = time.Since(start)
			return result
		}
		// For --html-only, the HTML file is the output
		if params.htmlOnly {
			result.OutputPath = htmlPath
			result.Duration = time.Since(start)
			return result
		}
	}

	// #nosec G306 -- PDFs are meant to be readable
	if err := os.WriteFile(job.OutputPath, genResult.PDF, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePDF, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// readPreamble loads the Markdown preamble for a job. A preamble declared
// in the album manifest wins over the --preamble flag.
func readPreamble(job DocumentJob, params *generateParams) (string, error) {
	path := job.Album.PreamblePath()
	if path == "" {
		path = params.preamblePath
	}
	if path == "" {
		return "", nil
	}

	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadPreamble, err)
	}
	return string(content), nil
}

// htmlOutputPath swaps the .pdf extension for .html.
func htmlOutputPath(pdfPath string) string {
	return strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath)) + ".html"
}

// printResults outputs generation results using the environment writers.
// Returns the number of failed documents.
func printResults(results []GenerationResult, quiet, verbose bool, env *Environment) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.Title, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d photos, %v)\n",
				r.Title, r.OutputPath, r.PhotoCount, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
