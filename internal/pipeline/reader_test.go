package pipeline

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func readAll(t *testing.T, r *LineReader) []string {
	t.Helper()
	var lines []string
	for r.Next() {
		lines = append(lines, r.Text())
	}
	return lines
}

func TestLineReader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty input", "", nil},
		{"single line no newline", "abc", []string{"abc"}},
		{"trailing newline adds no line", "abc\n", []string{"abc"}},
		{"blank lines kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"crlf stripped", "a\r\nb\r\n", []string{"a", "b"}},
		{"only newline", "\n", []string{""}},
		{"final carriage return kept", "abc\r", []string{"abc\r"}},
		{"lone carriage return kept", "a\rb\n", []string{"a\rb"}},
		{"crlf then final line", "a\r\nb", []string{"a", "b"}},
		{"double carriage return keeps one", "a\r\r\n", []string{"a\r"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewLineReader(strings.NewReader(tt.input))
			got := readAll(t, r)
			if err := r.Err(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines %q, want %d lines %q", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i+1, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLineReader_Number(t *testing.T) {
	t.Parallel()

	r := NewLineReader(strings.NewReader("a\nb\nc"))
	for want := 1; r.Next(); want++ {
		if r.Number() != want {
			t.Errorf("Number() = %d, want %d", r.Number(), want)
		}
	}
}

func TestLineReader_InvalidUTF8(t *testing.T) {
	t.Parallel()

	r := NewLineReader(strings.NewReader("ok\nbad \xff\xfe\nnever"))
	got := readAll(t, r)

	if len(got) != 1 || got[0] != "ok" {
		t.Errorf("lines before error = %q, want [ok]", got)
	}
	err := r.Err()
	if !errors.Is(err, ErrLineDecode) {
		t.Fatalf("Err() = %v, want ErrLineDecode", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q should name line 2", err)
	}
	if r.Next() {
		t.Error("Next() = true after error, want false")
	}
}

func TestLineReader_LongLine(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 2<<20)
	r := NewLineReader(strings.NewReader(long + "\nnext\n"))
	got := readAll(t, r)

	if err := r.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2", len(got))
	}
	if got[0] != long {
		t.Errorf("line 1 has %d bytes, want %d", len(got[0]), len(long))
	}
	if got[1] != "next" {
		t.Errorf("line 2 = %q, want next", got[1])
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestLineReader_ReadError(t *testing.T) {
	t.Parallel()

	r := NewLineReader(failingReader{})
	if r.Next() {
		t.Fatal("Next() = true, want false")
	}
	err := r.Err()
	if !errors.Is(err, ErrReadInput) {
		t.Errorf("Err() = %v, want ErrReadInput", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Err() = %v, want wrapped io.ErrUnexpectedEOF", err)
	}
}
