package model

import "strings"

// Document is a fully resolved word-processing document.
//
// Styles holds the unresolved style table as read from styles.xml, keyed by
// style id. Footnotes and Endnotes are keyed by note id; runs reference them
// through Run.NoteID and Run.NoteKind.
type Document struct {
	Paragraphs []Paragraph
	Styles     map[string]Style
	Footnotes  map[int]Note
	Endnotes   map[int]Note
}

// NewDocument creates an empty document with non-nil maps.
func NewDocument() *Document {
	return &Document{
		Paragraphs: make([]Paragraph, 0),
		Styles:     make(map[string]Style),
		Footnotes:  make(map[int]Note),
		Endnotes:   make(map[int]Note),
	}
}

// Note returns the note a reference run points at. The second result is
// false when r is not a reference or the id is missing from the note map.
func (d *Document) Note(r Run) (Note, bool) {
	if !r.IsNoteReference() {
		return Note{}, false
	}

	var notes map[int]Note
	switch r.NoteKind {
	case NoteFootnote:
		notes = d.Footnotes
	case NoteEndnote:
		notes = d.Endnotes
	}

	n, ok := notes[r.NoteID]
	return n, ok
}

// IsEmpty reports whether the document has no content at all.
func (d *Document) IsEmpty() bool {
	return len(d.Paragraphs) == 0 && len(d.Footnotes) == 0 && len(d.Endnotes) == 0
}

// Text returns the document body text, one paragraph per line.
func (d *Document) Text() string {
	lines := make([]string, len(d.Paragraphs))
	for i, p := range d.Paragraphs {
		lines[i] = p.Text()
	}
	return strings.Join(lines, "\n")
}
