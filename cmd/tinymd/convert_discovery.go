package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	tinymd "github.com/alnah/go-tinymd"
)

// markdownExtension selects files during directory discovery.
const markdownExtension = ".md"

// Sentinel errors for file discovery.
var (
	ErrNoInput      = errors.New("no markdown files found")
	ErrOutputNotDir = errors.New("output must be a directory when input is a directory")
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all markdown files to convert.
// A file input is converted whatever its extension; a directory input is
// walked recursively for *.md files.
func discoverFiles(inputPath, output string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", tinymd.ErrReadInput, err)
	}

	if !info.IsDir() {
		outPath, err := resolveOutputPath(inputPath, output, "")
		if err != nil {
			return nil, err
		}
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	if isHTMLPath(output) {
		return nil, fmt.Errorf("%w: %s", ErrOutputNotDir, output)
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || filepath.Ext(path) != markdownExtension {
			return nil
		}
		outPath, err := resolveOutputPath(path, output, inputPath)
		if err != nil {
			return err
		}
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the HTML output path for a markdown file.
// With no output, the name is derived beside the source by tinymd.OutputPath.
func resolveOutputPath(inputPath, output, baseInputDir string) (string, error) {
	if output == "" {
		return tinymd.OutputPath(inputPath)
	}

	if isHTMLPath(output) {
		return output, nil
	}

	name, err := tinymd.OutputPath(filepath.Base(inputPath))
	if err != nil {
		return "", err
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(output, filepath.Dir(relPath), name), nil
		}
	}

	return filepath.Join(output, name), nil
}

// isHTMLPath reports whether path names an HTML file rather than a directory.
func isHTMLPath(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), tinymd.HTMLExtension)
}
