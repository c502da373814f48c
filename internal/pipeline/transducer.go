package pipeline

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Markup emitted by the transducer. Opening tags start on a fresh line and
// closing tags end one, so every fragment reads as its own block.
const (
	headingMarker  = '#'
	headingPrefix  = 2 // marker plus the conventional space
	paragraphOpen  = "\n<p>"
	paragraphClose = "</p>\n"
	headingOpen    = "\n<h1>"
	headingClose   = "</h1>\n"
)

// Transducer maps one input line at a time to an HTML fragment.
// It is not safe for concurrent use; create one per pass.
type Transducer struct {
	state   State
	heading HeadingPolicy
}

// NewTransducer returns a transducer in the NoTagOpen state.
func NewTransducer(heading HeadingPolicy) *Transducer {
	return &Transducer{heading: heading}
}

// State returns the tag currently left open. Between calls to Transduce
// this is always NoTagOpen.
func (t *Transducer) State() State {
	return t.state
}

// Reset returns the transducer to its initial state.
func (t *Transducer) Reset() {
	t.state = NoTagOpen
}

// Transduce renders line as a heading when it starts with '#', and as
// paragraph text otherwise. Whatever tag the line opens is closed before
// returning. On error the state is left untouched.
func (t *Transducer) Transduce(line string) (string, error) {
	var b strings.Builder

	if len(line) > 0 && line[0] == headingMarker {
		body, err := t.headingBody(line)
		if err != nil {
			return "", err
		}
		t.close(&b)
		t.state = HeadingOpen
		b.WriteString(headingOpen)
		b.WriteString(body)
	} else {
		if t.state != ParagraphOpen {
			t.close(&b)
			t.state = ParagraphOpen
			b.WriteString(paragraphOpen)
		}
		b.WriteString(line)
	}

	t.close(&b)
	return b.String(), nil
}

// close emits the end tag for the open state, if any.
func (t *Transducer) close(b *strings.Builder) {
	b.WriteString(t.state.closingTag())
	t.state = NoTagOpen
}

// headingBody strips the two-byte marker prefix from line.
func (t *Transducer) headingBody(line string) (string, error) {
	switch {
	case len(line) == headingPrefix:
		return "", nil
	case len(line) > headingPrefix && utf8.RuneStart(line[headingPrefix]):
		return line[headingPrefix:], nil
	}

	if t.heading != HeadingClamp {
		if len(line) < headingPrefix {
			return "", fmt.Errorf("%w: %q", ErrHeadingTooShort, line)
		}
		return "", fmt.Errorf("%w: marker prefix splits a multi-byte character in %q", ErrHeadingTooShort, line)
	}

	if len(line) < headingPrefix {
		return "", nil
	}
	i := headingPrefix
	for i < len(line) && !utf8.RuneStart(line[i]) {
		i++
	}
	return line[i:], nil
}
