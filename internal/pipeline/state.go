package pipeline

// State records which tag, if any, the transducer has left open.
// Only one tag can be open at a time.
type State int

const (
	NoTagOpen State = iota
	ParagraphOpen
	HeadingOpen
)

func (s State) String() string {
	switch s {
	case NoTagOpen:
		return "none"
	case ParagraphOpen:
		return "paragraph"
	case HeadingOpen:
		return "heading"
	default:
		return "unknown"
	}
}

// closingTag returns the end tag that closes s, or "" when nothing is open.
func (s State) closingTag() string {
	switch s {
	case ParagraphOpen:
		return paragraphClose
	case HeadingOpen:
		return headingClose
	default:
		return ""
	}
}
