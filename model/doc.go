// Package model provides the in-memory representation of an extracted
// word-processing document.
//
// The docx package produces these types; renderers, converters and indexers
// consume them without touching XML.
//
// # Document Structure
//
// A [Document] holds the body as an ordered list of [Paragraph] values, the
// style table read from the package, and the footnote and endnote maps:
//
//	doc := model.NewDocument()
//	for _, p := range doc.Paragraphs {
//	    fmt.Println(p.StyleID, p.Text())
//	}
//
// Each [Paragraph] carries its effective numbering, alignment, spacing,
// indentation and tab stops, plus an ordered list of [Run] values with
// their effective character formatting.
//
// # Notes
//
// Footnote and endnote references are runs with a non-zero NoteID and no
// text. The note bodies are not inlined; use [Document.Note] to look one up:
//
//	for _, r := range p.Runs {
//	    if n, ok := doc.Note(r); ok {
//	        fmt.Println(r.NoteKind, n.ID, len(n.Paragraphs))
//	    }
//	}
//
// # Unset Values
//
// Formatting fields use sentinel values for "not set": false, "", 0,
// [DefaultColor] (opaque black) and [JustifyLeft]. [DefaultStyle] and
// [NewRun] return values with every field unset.
package model
