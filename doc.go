// Package tinymd converts a minimal Markdown dialect to HTML, one line at a time.
//
// Only two constructs are recognized. A line whose first character is '#'
// becomes an <h1> whose text is the line minus its first two characters
// (the marker and the space after it). Every other line, including an empty
// one, becomes its own <p>. Text is copied through unescaped.
//
// # Quick Start
//
//	conv := tinymd.NewConverter()
//
//	result, err := conv.ConvertFile(ctx, "notes.md", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(result.Fragments), "fragments written")
//
// An empty output path derives the name from the input by replacing its
// three-character ".md" suffix with ".html" (see OutputPath). The file is
// written through a temporary file and a rename, so a failed run never leaves
// a partial document behind.
//
// # Fragments
//
// Each input line yields exactly one fragment, and every fragment closes the
// tag it opens:
//
//	"# Title"     -> "\n<h1>Title</h1>\n"
//	"Hello world" -> "\n<p>Hello world</p>\n"
//	""            -> "\n<p></p>\n"
//
// # Policies
//
// A heading line too short to slice its marker from (just "#") fails with
// ErrHeadingTooShort under HeadingStrict, the default. HeadingClamp renders
// it as an empty heading instead.
//
// FilterLiteral, the default, drops only the exact fragment "\n<p></p>",
// which no input line produces; empty lines are kept for byte-compatible
// output. FilterSemantic drops every fragment with no visible text, and
// FilterNone keeps everything.
//
//	conv := tinymd.NewConverter(
//	    tinymd.WithHeadingPolicy(tinymd.HeadingClamp),
//	    tinymd.WithFilterPolicy(tinymd.FilterSemantic),
//	    tinymd.WithLogger(slog.Default()),
//	)
//
// # Concurrency
//
// A Converter holds only immutable options and may be shared by goroutines;
// each call to Convert runs its own single-threaded pass.
package tinymd
