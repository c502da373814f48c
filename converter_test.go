package tinymd

// Notes:
// - Convert is tested through the public contract: fragments, counters, and
//   sentinel errors. Transducer details are covered in internal/pipeline.
// - The logger test uses a bytes.Buffer handler to check structured fields.
// - Write failures are triggered with a missing output directory; disk-full
//   conditions are platform-specific and not tested.

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestConvert - Full pass over in-memory input
// ---------------------------------------------------------------------------

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		opts        []Option
		input       string
		want        []string
		wantLines   int
		wantDropped int
	}{
		{
			name:  "round trip scenario",
			input: "# Title\nHello world\n\n# Next\n",
			want: []string{
				"\n<h1>Title</h1>\n",
				"\n<p>Hello world</p>\n",
				"\n<p></p>\n",
				"\n<h1>Next</h1>\n",
			},
			wantLines: 4,
		},
		{
			name:      "empty document",
			input:     "",
			want:      nil,
			wantLines: 0,
		},
		{
			name:      "crlf line endings",
			input:     "# A\r\nb\r\n",
			want:      []string{"\n<h1>A</h1>\n", "\n<p>b</p>\n"},
			wantLines: 2,
		},
		{
			name:      "no trailing newline",
			input:     "last line",
			want:      []string{"\n<p>last line</p>\n"},
			wantLines: 1,
		},
		{
			name:        "semantic filter drops blank lines",
			opts:        []Option{WithFilterPolicy(FilterSemantic)},
			input:       "# Title\n\n   \nbody\n",
			want:        []string{"\n<h1>Title</h1>\n", "\n<p>body</p>\n"},
			wantLines:   4,
			wantDropped: 2,
		},
		{
			name:      "filter none keeps blank lines",
			opts:      []Option{WithFilterPolicy(FilterNone)},
			input:     "\n\n",
			want:      []string{"\n<p></p>\n", "\n<p></p>\n"},
			wantLines: 2,
		},
		{
			name:      "clamp renders bare marker",
			opts:      []Option{WithHeadingPolicy(HeadingClamp)},
			input:     "#\ntext\n",
			want:      []string{"\n<h1></h1>\n", "\n<p>text</p>\n"},
			wantLines: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv := NewConverter(tt.opts...)
			result, err := conv.ConvertString(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Convert() unexpected error: %v", err)
			}

			if len(result.Fragments) != len(tt.want) {
				t.Fatalf("got %d fragments %q, want %d %q", len(result.Fragments), result.Fragments, len(tt.want), tt.want)
			}
			for i := range tt.want {
				if result.Fragments[i] != tt.want[i] {
					t.Errorf("fragment %d = %q, want %q", i, result.Fragments[i], tt.want[i])
				}
			}
			if result.Lines != tt.wantLines {
				t.Errorf("Lines = %d, want %d", result.Lines, tt.wantLines)
			}
			if result.Dropped != tt.wantDropped {
				t.Errorf("Dropped = %d, want %d", result.Dropped, tt.wantDropped)
			}
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantLine string
	}{
		{"bare heading marker", "# ok\n#\n", ErrHeadingTooShort, "line 2"},
		{"split rune in heading", "#é\n", ErrHeadingTooShort, "line 1"},
		{"invalid utf8", "fine\n\xc3\x28\n", ErrLineDecode, "line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := NewConverter().ConvertString(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantLine) {
				t.Errorf("error %q should mention %q", err, tt.wantLine)
			}
			if result != nil {
				t.Errorf("result = %+v on error, want nil", result)
			}
		})
	}
}

func TestConvert_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewConverter().ConvertString(ctx, "# Title\n")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestResult_HTML(t *testing.T) {
	t.Parallel()

	result, err := NewConverter().ConvertString(context.Background(), "# Title\nHello world\n\n# Next")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "\n<h1>Title</h1>\n\n<p>Hello world</p>\n\n<p></p>\n\n<h1>Next</h1>\n"
	if got := string(result.HTML()); got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
	if got := string((&Result{}).HTML()); got != "" {
		t.Errorf("empty Result HTML() = %q, want empty", got)
	}
}

// ---------------------------------------------------------------------------
// TestConvertFile - File in, file out
// ---------------------------------------------------------------------------

func TestConvertFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "notes.md")
	if err := os.WriteFile(input, []byte("# Title\nHello world\n\n# Next\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := NewConverter().ConvertFile(context.Background(), input, "")
	if err != nil {
		t.Fatalf("ConvertFile() unexpected error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "notes.html"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.Equal(got, result.HTML()) {
		t.Errorf("file content %q != concatenated fragments %q", got, result.HTML())
	}
	want := "\n<h1>Title</h1>\n\n<p>Hello world</p>\n\n<p></p>\n\n<h1>Next</h1>\n"
	if string(got) != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
}

func TestConvertFile_ExplicitOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "in.md")
	output := filepath.Join(dir, "custom.html")
	if err := os.WriteFile(input, []byte("body"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewConverter().ConvertFile(context.Background(), input, output); err != nil {
		t.Fatalf("ConvertFile() unexpected error: %v", err)
	}
	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(got) != "\n<p>body</p>\n" {
		t.Errorf("content = %q", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "in.html")); !os.IsNotExist(err) {
		t.Error("derived output should not be written when output path is given")
	}
}

func TestConvertFile_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		_, err := NewConverter().ConvertFile(context.Background(), filepath.Join(dir, "nope.md"), "")
		if !errors.Is(err, ErrReadInput) {
			t.Errorf("error = %v, want ErrReadInput", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want wrapped os.ErrNotExist", err)
		}
	})

	t.Run("heading failure leaves no output", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "bad.md")
		if err := os.WriteFile(input, []byte("# fine\n#\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := NewConverter().ConvertFile(context.Background(), input, "")
		if !errors.Is(err, ErrHeadingTooShort) {
			t.Fatalf("error = %v, want ErrHeadingTooShort", err)
		}
		if _, statErr := os.Stat(filepath.Join(dir, "bad.html")); !os.IsNotExist(statErr) {
			t.Error("output file exists after failed pass")
		}
	})

	t.Run("unwritable output", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "ok.md")
		if err := os.WriteFile(input, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := NewConverter().ConvertFile(context.Background(), input, filepath.Join(dir, "missing", "ok.html"))
		if !errors.Is(err, ErrWriteOutput) {
			t.Errorf("error = %v, want ErrWriteOutput", err)
		}
	})

	t.Run("underivable output name", func(t *testing.T) {
		t.Parallel()

		_, err := NewConverter().ConvertFile(context.Background(), "md", "")
		if !errors.Is(err, ErrInvalidInputName) {
			t.Errorf("error = %v, want ErrInvalidInputName", err)
		}
	})
}

func TestConvertFile_Logging(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "log.md")
	if err := os.WriteFile(input, []byte("# T\n\nbody\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	conv := NewConverter(WithLogger(logger), WithFilterPolicy(FilterSemantic))
	if _, err := conv.ConvertFile(context.Background(), input, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"starting pass", "pass complete", "lines=3", "fragments=2", "dropped=1", "filter=semantic", "heading=strict",
		"input=" + input, "output=" + filepath.Join(dir, "log.html"),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestWithLogger_NilIgnored(t *testing.T) {
	t.Parallel()

	conv := NewConverter(WithLogger(nil))
	if conv.logger == nil {
		t.Fatal("logger is nil after WithLogger(nil)")
	}
}
