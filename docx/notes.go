package docx

import (
	"github.com/tsawler/minidock/internal/xmltree"
	"github.com/tsawler/minidock/model"
)

// ExtractNotes parses a footnotes or endnotes part into notes keyed by id.
// Separator entries and entries without a numeric id are skipped. The
// paragraphs are built with b, so they share its style table and cache.
// The returned map is never nil.
func ExtractNotes(data []byte, kind model.NoteKind, b *Builder) map[int]model.Note {
	notes := make(map[int]model.Note)

	var elem string
	switch kind {
	case model.NoteFootnote:
		elem = "footnote"
	case model.NoteEndnote:
		elem = "endnote"
	default:
		return notes
	}
	if b == nil {
		b = NewBuilder(nil, nil, nil)
	}

	root, err := xmltree.Parse(data)
	if err != nil {
		b.logger.Debug("notes part unreadable", "kind", kind.String(), "error", err)
		return notes
	}
	if !root.Is(elem + "s") {
		b.logger.Debug("unexpected notes root", "kind", kind.String(), "root", root.Name())
		return notes
	}

	for _, n := range root.Children(elem) {
		switch t, _ := n.Attr("type"); t {
		case "separator", "continuationSeparator":
			continue
		}

		v, _ := n.Attr("id")
		id, ok := parseInt(v)
		if !ok {
			b.logger.Debug("skipping note without id", "kind", kind.String())
			continue
		}
		if _, dup := notes[id]; dup {
			b.logger.Debug("duplicate note id", "kind", kind.String(), "id", id)
			continue
		}

		notes[id] = model.Note{ID: id, Paragraphs: b.blocks(n, nil)}
	}
	return notes
}
