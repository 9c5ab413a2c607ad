package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	xml2pdf "github.com/alnah/go-xml2pdf"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrReadXML         = errors.New("failed to read XML file")
	ErrWritePDF        = errors.New("failed to write PDF file")
	ErrCreateOutputDir = errors.New("failed to create output directory")
)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire(ctx context.Context) (*xml2pdf.Converter, error)
	Release(*xml2pdf.Converter)
	Size() int
}

// Compile-time interface implementation check.
var _ Pool = (*xml2pdf.ConverterPool)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently using the converter pool.
// Results are returned in input order.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire(ctx)
			if err != nil {
				// Converter creation failed, mark remaining jobs as failed
				for idx := range jobs {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       err,
					}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv *xml2pdf.Converter, f FileToConvert, params *conversionParams) (result ConversionResult) {
	start := params.now()
	result = ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	defer func() { result.Duration = params.now().Sub(start) }()

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadXML, err)
		return result
	}

	pdf, err := convertXML(ctx, conv, content, params)
	if err != nil {
		result.Err = err
		return result
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
		return result
	}

	// #nosec G306 -- PDFs are meant to be readable
	if err := os.WriteFile(f.OutputPath, pdf, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePDF, err)
		return result
	}

	return result
}

// convertXML renders content with the configured layout.
func convertXML(ctx context.Context, conv *xml2pdf.Converter, content []byte, params *conversionParams) ([]byte, error) {
	if params.layout == layoutReport {
		doc, err := xml2pdf.ParseXML(content)
		if err != nil {
			return nil, err
		}
		return conv.ConvertReport(ctx, doc)
	}

	b, err := conv.NewBuilder(string(content))
	if err != nil {
		return nil, err
	}
	defer b.Close()

	b.SetCustomFont(params.font)
	return b.Build(ctx)
}

// printResults outputs conversion results and returns the failure count
// with the first failure.
func printResults(results []ConversionResult, quiet, verbose bool, renderer string, env *Environment) (int, error) {
	var failed, succeeded int
	var first error

	for _, r := range results {
		if r.Err != nil {
			failed++
			if first == nil {
				first = r.Err
			}
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err, renderer, ""))
			continue
		}
		succeeded++

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed, first
}
