package model

import "strings"

// NoteKind says which note map a reference run points into.
type NoteKind int

const (
	NoteNone NoteKind = iota
	NoteFootnote
	NoteEndnote
)

// String returns "footnote", "endnote" or "".
func (k NoteKind) String() string {
	switch k {
	case NoteFootnote:
		return "footnote"
	case NoteEndnote:
		return "endnote"
	default:
		return ""
	}
}

// Run is the smallest unit of uniformly formatted text in a paragraph.
//
// A run that references a footnote or endnote carries only NoteID and
// NoteKind; its text stays empty and consumers look the note up through
// Document.Note.
type Run struct {
	Text    string
	StyleID string
	Lang    string

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

	NoteID   int
	NoteKind NoteKind
}

// NewRun returns an empty run with unset colors.
func NewRun() Run {
	return Run{Color: DefaultColor, BackColor: DefaultColor}
}

// IsNoteReference reports whether the run stands for a footnote or endnote
// reference mark.
func (r Run) IsNoteReference() bool {
	return r.NoteKind != NoteNone && r.NoteID != 0
}

// SameFormatting reports whether r and o would render identically, which
// is the condition for merging adjacent runs.
func (r Run) SameFormatting(o Run) bool {
	return r.StyleID == o.StyleID &&
		r.Lang == o.Lang &&
		r.Bold == o.Bold &&
		r.Italic == o.Italic &&
		r.Underline == o.Underline &&
		r.Strike == o.Strike &&
		r.Subscript == o.Subscript &&
		r.Superscript == o.Superscript &&
		r.Color == o.Color &&
		r.BackColor == o.BackColor &&
		r.FontFamily == o.FontFamily &&
		r.FontSize == o.FontSize
}

// Paragraph is a resolved paragraph: its style id, the effective paragraph
// attributes after the cascade and direct formatting, and its runs.
type Paragraph struct {
	StyleID string

	Level        int
	Numbered     bool
	NumberFormat string
	NumberStyle  string

	Justification  Justification
	RightDirection bool

	LineSpacing           float64 // multiplier, 1.0 when nothing sets it
	SpaceBefore           float64
	SpaceAfter            float64
	SpaceBetweenSameStyle bool

	IndentLeft      float64
	IndentRight     float64
	IndentFirstLine float64

	Tabs []Tab
	Runs []Run
}

// Text returns the concatenated text of the paragraph's runs. Note
// references contribute nothing.
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Note is a footnote or endnote body.
type Note struct {
	ID         int
	Paragraphs []Paragraph
}
