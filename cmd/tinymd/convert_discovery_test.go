package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tinymd "github.com/alnah/go-tinymd"
)

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		inputPath    string
		output       string
		baseInputDir string
		want         string
		wantErr      error
	}{
		{
			name:      "no output derives beside source",
			inputPath: filepath.Join("docs", "readme.md"),
			want:      filepath.Join("docs", "readme.html"),
		},
		{
			name:      "no output keeps literal three byte cut",
			inputPath: "notes.txt",
			want:      "notes..html",
		},
		{
			name:      "explicit html file",
			inputPath: "readme.md",
			output:    filepath.Join("out", "index.html"),
			want:      filepath.Join("out", "index.html"),
		},
		{
			name:      "output directory",
			inputPath: filepath.Join("docs", "readme.md"),
			output:    "site",
			want:      filepath.Join("site", "readme.html"),
		},
		{
			name:         "output directory keeps relative layout",
			inputPath:    filepath.Join("docs", "guide", "intro.md"),
			output:       "site",
			baseInputDir: "docs",
			want:         filepath.Join("site", "guide", "intro.html"),
		},
		{
			name:      "name too short",
			inputPath: "ab",
			wantErr:   tinymd.ErrInvalidInputName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveOutputPath(tt.inputPath, tt.output, tt.baseInputDir)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	t.Run("single file with any extension", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeFile(t, dir, "notes.txt", "x\n")

		files, err := discoverFiles(input, "")
		if err != nil {
			t.Fatalf("discoverFiles() error = %v", err)
		}
		if len(files) != 1 || files[0].OutputPath != filepath.Join(dir, "notes..html") {
			t.Errorf("files = %+v", files)
		}
	})

	t.Run("directory walk selects md files in order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "b.md", "")
		writeFile(t, dir, "a.md", "")
		writeFile(t, dir, "c.markdown", "")
		writeFile(t, dir, "nested/d.md", "")

		files, err := discoverFiles(dir, "")
		if err != nil {
			t.Fatalf("discoverFiles() error = %v", err)
		}

		want := []FileToConvert{
			{filepath.Join(dir, "a.md"), filepath.Join(dir, "a.html")},
			{filepath.Join(dir, "b.md"), filepath.Join(dir, "b.html")},
			{filepath.Join(dir, "nested", "d.md"), filepath.Join(dir, "nested", "d.html")},
		}
		if len(files) != len(want) {
			t.Fatalf("got %d files, want %d: %+v", len(files), len(want), files)
		}
		for i := range want {
			if files[i] != want[i] {
				t.Errorf("files[%d] = %+v, want %+v", i, files[i], want[i])
			}
		}
	})

	t.Run("directory with html output rejected", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(t.TempDir(), "out.html")
		if !errors.Is(err, ErrOutputNotDir) {
			t.Errorf("error = %v, want ErrOutputNotDir", err)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(filepath.Join(t.TempDir(), "missing.md"), "")
		if !errors.Is(err, tinymd.ErrReadInput) || !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want ErrReadInput wrapping ErrNotExist", err)
		}
	})
}
