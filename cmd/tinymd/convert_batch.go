package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tinymd "github.com/alnah/go-tinymd"
	"github.com/alnah/go-tinymd/internal/fileutil"
)

// dirPermissions applies to output directories created for a run.
const dirPermissions = 0o750 // rwxr-x---: owner full, group read+execute

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	ConvertFile(ctx context.Context, inputPath, outputPath string) (*tinymd.Result, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*tinymd.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Lines      int
	Fragments  int
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently with at most workers goroutines.
// Results are returned in the order of files.
func convertBatch(ctx context.Context, conv CLIConverter, files []FileToConvert, workers int) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := max(1, min(workers, len(files)))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx])
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
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	if outDir := filepath.Dir(f.OutputPath); !fileutil.DirExists(outDir) {
		if err := os.MkdirAll(outDir, dirPermissions); err != nil {
			result.Err = fmt.Errorf("%w: creating output directory: %w", tinymd.ErrWriteOutput, err)
			result.Duration = time.Since(start)
			return result
		}
	}

	res, err := conv.ConvertFile(ctx, f.InputPath, f.OutputPath)
	result.Duration = time.Since(start)
	if err != nil {
		result.Err = err
		return result
	}

	result.Lines = res.Lines
	result.Fragments = len(res.Fragments)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// firstError returns the error of the first failed result, in input order.
func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// failureMessage formats a failed result, leaving out the input path when
// the error already starts with it.
func failureMessage(r ConversionResult) string {
	msg := r.Err.Error()
	if strings.HasPrefix(msg, r.InputPath+":") {
		return msg
	}
	return r.InputPath + ": " + msg
}

// printResultsWithWriter outputs conversion results using the provided writers.
// Returns the number of failures.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s%s\n", failureMessage(r), hintFor(r.Err))
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d lines, %v)\n",
				r.InputPath, r.OutputPath, r.Lines, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
