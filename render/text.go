package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/minidock/model"
)

// TextOptions controls the plain-text projection.
type TextOptions struct {
	// NoteMarkers inserts [^n] markers at reference runs and appends the
	// note bodies after the document text.
	NoteMarkers bool
}

// Text returns the document as plain text, one paragraph per line, in
// Unicode normalization form C.
func Text(doc *model.Document, opts TextOptions) string {
	if doc == nil {
		return ""
	}

	var sb strings.Builder
	for i, p := range doc.Paragraphs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writeParagraphText(&sb, p, opts.NoteMarkers)
	}

	if opts.NoteMarkers {
		writeNotesText(&sb, "Footnotes", doc.Footnotes, "[^%d]: ")
		writeNotesText(&sb, "Endnotes", doc.Endnotes, "[^e%d]: ")
	}

	return norm.NFC.String(sb.String())
}

func writeParagraphText(sb *strings.Builder, p model.Paragraph, markers bool) {
	for _, r := range p.Runs {
		if r.IsNoteReference() {
			if markers {
				sb.WriteString(noteMarker(r))
			}
			continue
		}
		sb.WriteString(r.Text)
	}
}

func writeNotesText(sb *strings.Builder, title string, notes map[int]model.Note, prefix string) {
	if len(notes) == 0 {
		return
	}

	if sb.Len() > 0 {
		sb.WriteString("\n\n")
	}
	sb.WriteString(title)
	sb.WriteString(":")

	for _, n := range sortedNotes(notes) {
		var body strings.Builder
		for i, p := range n.Paragraphs {
			if i > 0 {
				body.WriteByte(' ')
			}
			writeParagraphText(&body, p, true)
		}

		sb.WriteByte('\n')
		fmt.Fprintf(sb, prefix, n.ID)
		sb.WriteString(strings.TrimSpace(body.String()))
	}
}
