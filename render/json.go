package render

import (
	"encoding/json"
	"fmt"

	"github.com/tsawler/minidock/model"
)

// DocumentJSON is the JSON schema shared by the command-line tool and the
// HTTP service. Notes are listed in id order and empty lists encode as [].
type DocumentJSON struct {
	Paragraphs []ParagraphJSON `json:"paragraphs"`
	Footnotes  []NoteJSON      `json:"footnotes"`
	Endnotes   []NoteJSON      `json:"endnotes"`
}

// ParagraphJSON is a paragraph with its effective attributes.
type ParagraphJSON struct {
	Style         string    `json:"style"`
	Text          string    `json:"text"`
	Justification string    `json:"justification"`
	Level         int       `json:"level,omitempty"`
	Numbered      bool      `json:"numbered,omitempty"`
	NumberFormat  string    `json:"number_format,omitempty"`
	RightToLeft   bool      `json:"rtl,omitempty"`
	LineSpacing   float64   `json:"line_spacing"`
	SpaceBefore   float64   `json:"space_before,omitempty"`
	SpaceAfter    float64   `json:"space_after,omitempty"`
	IndentLeft    float64   `json:"indent_left,omitempty"`
	IndentRight   float64   `json:"indent_right,omitempty"`
	IndentFirst   float64   `json:"indent_first_line,omitempty"`
	Tabs          []TabJSON `json:"tabs,omitempty"`
	Runs          []RunJSON `json:"runs"`
}

// TabJSON is a tab stop. Alignment is the letter form: L, C, R, D...
type TabJSON struct {
	Position  float64 `json:"position"`
	Alignment string  `json:"alignment,omitempty"`
	Leader    string  `json:"leader,omitempty"`
}

// RunJSON is a run. A note reference carries only Note. Colors are RRGGBB
// hex and omitted when unset.
type RunJSON struct {
	Text        string   `json:"text,omitempty"`
	Style       string   `json:"style,omitempty"`
	Lang        string   `json:"lang,omitempty"`
	Bold        bool     `json:"bold,omitempty"`
	Italic      bool     `json:"italic,omitempty"`
	Underline   bool     `json:"underline,omitempty"`
	Strike      bool     `json:"strike,omitempty"`
	Subscript   bool     `json:"subscript,omitempty"`
	Superscript bool     `json:"superscript,omitempty"`
	Color       string   `json:"color,omitempty"`
	BackColor   string   `json:"back_color,omitempty"`
	Font        string   `json:"font,omitempty"`
	Size        float64  `json:"size,omitempty"`
	Note        *NoteRef `json:"note,omitempty"`
}

// NoteRef points a run at a footnote or endnote.
type NoteRef struct {
	ID   int    `json:"id"`
	Kind string `json:"kind"`
}

// NoteJSON is a footnote or endnote body.
type NoteJSON struct {
	ID         int             `json:"id"`
	Paragraphs []ParagraphJSON `json:"paragraphs"`
}

// NewDocumentJSON converts doc to the shared schema. A nil doc yields
// empty lists.
func NewDocumentJSON(doc *model.Document) DocumentJSON {
	if doc == nil {
		doc = model.NewDocument()
	}
	return DocumentJSON{
		Paragraphs: paragraphsJSON(doc.Paragraphs),
		Footnotes:  notesJSON(doc.Footnotes),
		Endnotes:   notesJSON(doc.Endnotes),
	}
}

// JSON returns the document as indented JSON in the DocumentJSON schema.
func JSON(doc *model.Document) (string, error) {
	data, err := json.MarshalIndent(NewDocumentJSON(doc), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding json: %w", err)
	}
	return string(data), nil
}

func paragraphsJSON(paras []model.Paragraph) []ParagraphJSON {
	out := make([]ParagraphJSON, 0, len(paras))
	for _, p := range paras {
		pj := ParagraphJSON{
			Style:         p.StyleID,
			Text:          p.Text(),
			Justification: p.Justification.String(),
			Level:         p.Level,
			Numbered:      p.Numbered,
			NumberFormat:  p.NumberFormat,
			RightToLeft:   p.RightDirection,
			LineSpacing:   p.LineSpacing,
			SpaceBefore:   p.SpaceBefore,
			SpaceAfter:    p.SpaceAfter,
			IndentLeft:    p.IndentLeft,
			IndentRight:   p.IndentRight,
			IndentFirst:   p.IndentFirstLine,
			Runs:          make([]RunJSON, 0, len(p.Runs)),
		}
		for _, t := range p.Tabs {
			tj := TabJSON{Position: t.Position, Leader: t.Leader}
			if t.Alignment != 0 {
				tj.Alignment = string(rune(t.Alignment))
			}
			pj.Tabs = append(pj.Tabs, tj)
		}
		for _, r := range p.Runs {
			pj.Runs = append(pj.Runs, newRunJSON(r))
		}
		out = append(out, pj)
	}
	return out
}

func newRunJSON(r model.Run) RunJSON {
	if r.IsNoteReference() {
		return RunJSON{Note: &NoteRef{ID: r.NoteID, Kind: r.NoteKind.String()}}
	}

	rj := RunJSON{
		Text:        r.Text,
		Style:       r.StyleID,
		Lang:        r.Lang,
		Bold:        r.Bold,
		Italic:      r.Italic,
		Underline:   r.Underline,
		Strike:      r.Strike,
		Subscript:   r.Subscript,
		Superscript: r.Superscript,
		Font:        r.FontFamily,
		Size:        r.FontSize,
	}
	if !r.Color.IsDefault() {
		rj.Color = r.Color.Hex()
	}
	if !r.BackColor.IsDefault() {
		rj.BackColor = r.BackColor.Hex()
	}
	return rj
}

func notesJSON(notes map[int]model.Note) []NoteJSON {
	out := make([]NoteJSON, 0, len(notes))
	for _, n := range sortedNotes(notes) {
		out = append(out, NoteJSON{ID: n.ID, Paragraphs: paragraphsJSON(n.Paragraphs)})
	}
	return out
}
