// Package render projects a resolved document into plain text, HTML and
// Markdown.
//
// The model keeps footnote and endnote bodies apart from the runs that
// reference them. Every projection here does the linking itself through
// Document.Note, which is the pattern other consumers are expected to
// follow.
package render

import (
	"fmt"
	"sort"

	"github.com/tsawler/minidock/model"
)

// noteMarker returns the inline marker for a reference run: [^3] for a
// footnote, [^e3] for an endnote.
func noteMarker(r model.Run) string {
	if r.NoteKind == model.NoteEndnote {
		return fmt.Sprintf("[^e%d]", r.NoteID)
	}
	return fmt.Sprintf("[^%d]", r.NoteID)
}

// noteAnchor returns the fragment id of a note body.
func noteAnchor(kind model.NoteKind, id int) string {
	if kind == model.NoteEndnote {
		return fmt.Sprintf("en-%d", id)
	}
	return fmt.Sprintf("fn-%d", id)
}

// sortedNotes returns the notes of m ordered by id.
func sortedNotes(m map[int]model.Note) []model.Note {
	notes := make([]model.Note, 0, len(m))
	for _, n := range m {
		notes = append(notes, n)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })
	return notes
}

// headingLevel maps Word's built-in heading style ids to an HTML heading
// level, or 0 for ordinary paragraphs.
func headingLevel(styleID string) int {
	switch styleID {
	case "Title", "Heading1", "heading1":
		return 1
	case "Subtitle", "Heading2", "heading2":
		return 2
	case "Heading3", "heading3":
		return 3
	case "Heading4", "heading4":
		return 4
	case "Heading5", "heading5":
		return 5
	case "Heading6", "Heading7", "Heading8", "Heading9", "heading6", "heading7", "heading8", "heading9":
		return 6
	default:
		return 0
	}
}
