package tinymd

import (
	"fmt"
	"unicode/utf8"
)

// markdownSuffixLen is the length of the ".md" suffix OutputPath removes.
const markdownSuffixLen = 3

// HTMLExtension is appended to derived output names.
const HTMLExtension = ".html"

// OutputPath derives the HTML path for a Markdown input by dropping the last
// three bytes of the path and appending ".html": "notes.md" becomes
// "notes.html". The suffix is not checked, so "notes.txt" also becomes
// "notes.html". Paths shorter than three bytes, or whose cut would split a
// UTF-8 character, return ErrInvalidInputName.
func OutputPath(inputPath string) (string, error) {
	if len(inputPath) < markdownSuffixLen {
		return "", fmt.Errorf("%w: %q is shorter than a %d-character extension",
			ErrInvalidInputName, inputPath, markdownSuffixLen)
	}

	cut := len(inputPath) - markdownSuffixLen
	if !utf8.RuneStart(inputPath[cut]) {
		return "", fmt.Errorf("%w: %q does not end in a 3-character extension",
			ErrInvalidInputName, inputPath)
	}

	return inputPath[:cut] + HTMLExtension, nil
}
