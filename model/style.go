package model

// StyleKind tells paragraph styles from character (run) styles.
type StyleKind int

const (
	// KindRun is the default kind, used for character styles and for any
	// style whose type is missing or not recognized.
	KindRun StyleKind = iota
	// KindParagraph marks a paragraph style.
	KindParagraph
)

// String returns the OOXML name of the kind.
func (k StyleKind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	default:
		return "character"
	}
}

// Justification is paragraph alignment. JustifyLeft is both an explicit
// value and the "not set" sentinel.
type Justification int

const (
	JustifyLeft Justification = iota
	JustifyCenter
	JustifyRight
	JustifyBoth
)

// String returns the CSS-style name of the alignment.
func (j Justification) String() string {
	switch j {
	case JustifyCenter:
		return "center"
	case JustifyRight:
		return "right"
	case JustifyBoth:
		return "justify"
	default:
		return "left"
	}
}

// ParseJustification maps a w:jc value. "both" is justified; anything
// unrecognized, including "left", "start" and the empty string, maps to
// JustifyLeft.
func ParseJustification(s string) Justification {
	switch s {
	case "center":
		return JustifyCenter
	case "right":
		return JustifyRight
	case "both":
		return JustifyBoth
	default:
		return JustifyLeft
	}
}

// Tab is a paragraph tab stop.
type Tab struct {
	Position  float64 // points
	Alignment byte    // first letter of w:val, upper-cased: L, C, R, D...
	Leader    string  // dot, hyphen, underscore...
}

// Style is a style record. Values read from styles.xml are unresolved; the
// docx package merges them along the basedOn chain into resolved styles of
// the same shape.
//
// Every field has an "unset" value that the cascade treats as "no opinion":
// false for flags, DefaultColor for colors, "" for strings, 0 for numbers,
// JustifyLeft for alignment and nil for tabs.
type Style struct {
	ID      string
	Name    string
	BasedOn string
	Kind    StyleKind

	// Character properties
	Bold        bool
	Italic      bool
	Underline   bool
	Strike      bool
	Subscript   bool
	Superscript bool
	Color       Color
	BackColor   Color
	FontFamily  string
	FontSize    float64 // points
	Lang        string

	// Numbering
	Level        int
	Numbered     bool
	NumberFormat string // decimal, upperRoman, lowerLetter...
	NumberStyle  string

	// Spacing
	LineSpacing           float64 // multiplier
	SpaceBefore           float64 // points
	SpaceAfter            float64 // points
	SpaceBetweenSameStyle bool

	// Alignment and direction
	Justification  Justification
	RightDirection bool

	// Indentation, in points
	IndentLeft      float64
	IndentRight     float64
	IndentFirstLine float64

	Tabs []Tab
}

// DefaultStyle returns the built-in default: nothing set.
func DefaultStyle() Style {
	return Style{
		Color:     DefaultColor,
		BackColor: DefaultColor,
	}
}

// Clone returns a copy of s that shares no slices with it.
func (s Style) Clone() Style {
	s.Tabs = cloneTabs(s.Tabs)
	return s
}

func cloneTabs(tabs []Tab) []Tab {
	if len(tabs) == 0 {
		return nil
	}
	out := make([]Tab, len(tabs))
	copy(out, tabs)
	return out
}
