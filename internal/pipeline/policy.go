package pipeline

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HeadingPolicy controls how a heading line whose marker prefix cannot be
// sliced off ("#", or "#" followed by a multi-byte rune) is handled.
type HeadingPolicy int

const (
	// HeadingStrict fails the pass with ErrHeadingTooShort.
	HeadingStrict HeadingPolicy = iota
	// HeadingClamp renders the heading with whatever body remains
	// after the prefix, dropping a partially sliced rune.
	HeadingClamp
)

// Heading policy names as accepted in configuration.
const (
	HeadingStrictName = "strict"
	HeadingClampName  = "clamp"
)

func (p HeadingPolicy) String() string {
	switch p {
	case HeadingStrict:
		return HeadingStrictName
	case HeadingClamp:
		return HeadingClampName
	default:
		return fmt.Sprintf("HeadingPolicy(%d)", int(p))
	}
}

// ParseHeadingPolicy resolves a configuration name. Empty means strict.
// Comparison is case-insensitive.
func ParseHeadingPolicy(name string) (HeadingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", HeadingStrictName:
		return HeadingStrict, nil
	case HeadingClampName:
		return HeadingClamp, nil
	default:
		return HeadingStrict, fmt.Errorf("%w: %q (must be %s or %s)",
			ErrInvalidHeadingPolicy, name, HeadingStrictName, HeadingClampName)
	}
}

// FilterPolicy decides which fragments are dropped from the output.
type FilterPolicy int

const (
	// FilterLiteral drops only the exact fragment "\n<p></p>". An empty input
	// line renders as "\n<p></p>\n" and is therefore kept; this narrow match is
	// preserved for byte-compatible output.
	FilterLiteral FilterPolicy = iota
	// FilterSemantic drops any fragment with no text left after tags and
	// whitespace are stripped.
	FilterSemantic
	// FilterNone keeps every fragment.
	FilterNone
)

// Filter policy names as accepted in configuration.
const (
	FilterLiteralName  = "literal"
	FilterSemanticName = "semantic"
	FilterNoneName     = "none"
)

// blankParagraph is the only fragment FilterLiteral drops.
const blankParagraph = "\n<p></p>"

func (p FilterPolicy) String() string {
	switch p {
	case FilterLiteral:
		return FilterLiteralName
	case FilterSemantic:
		return FilterSemanticName
	case FilterNone:
		return FilterNoneName
	default:
		return fmt.Sprintf("FilterPolicy(%d)", int(p))
	}
}

// Keep reports whether fragment belongs in the output.
func (p FilterPolicy) Keep(fragment string) bool {
	switch p {
	case FilterNone:
		return true
	case FilterSemantic:
		return hasVisibleText(fragment)
	default:
		return fragment != blankParagraph
	}
}

// ParseFilterPolicy resolves a configuration name. Empty means literal.
func ParseFilterPolicy(name string) (FilterPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FilterLiteralName:
		return FilterLiteral, nil
	case FilterSemanticName:
		return FilterSemantic, nil
	case FilterNoneName:
		return FilterNone, nil
	default:
		return FilterLiteral, fmt.Errorf("%w: %q (must be %s, %s or %s)",
			ErrInvalidFilterPolicy, name, FilterLiteralName, FilterSemanticName, FilterNoneName)
	}
}

// hasVisibleText parses fragment as body content and reports whether any
// non-whitespace text remains. Line text is unescaped, so "< >" or "<3" is
// text, not markup, just as a browser reads it.
// A fragment that fails to parse is kept.
func hasVisibleText(fragment string) bool {
	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return true
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return strings.TrimSpace(b.String()) != ""
}
