package docx

import (
	"log/slog"
	"strings"

	"github.com/tsawler/minidock/internal/xmltree"
	"github.com/tsawler/minidock/model"
)

// DefaultParagraphStyle is the style id of a paragraph without w:pStyle.
const DefaultParagraphStyle = "Normal"

// Builder turns w:p elements into model paragraphs, resolving styles
// through a shared table and cache.
type Builder struct {
	table  StyleTable
	cache  *Cache
	logger *slog.Logger
}

// NewBuilder creates a Builder. A nil cache gets a fresh one and a nil
// logger falls back to slog.Default.
func NewBuilder(table StyleTable, cache *Cache, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	if cache == nil {
		cache = newCache(logger, nil)
	}
	return &Builder{table: table, cache: cache, logger: logger}
}

// BuildBody parses the main document part and returns the paragraphs of
// w:body in document order. Tables are skipped.
func (b *Builder) BuildBody(data []byte) []model.Paragraph {
	root, err := xmltree.Parse(data)
	if err != nil {
		b.logger.Debug("document part unreadable", "error", err)
		return nil
	}

	body := root.Child("body")
	if body == nil {
		b.logger.Debug("document part has no body", "root", root.Name())
		return nil
	}
	return b.blocks(body, nil)
}

// blocks collects the paragraphs among n's block-level children.
func (b *Builder) blocks(n *xmltree.Node, out []model.Paragraph) []model.Paragraph {
	for _, el := range n.Elements() {
		switch el.Name() {
		case "p":
			out = append(out, b.BuildParagraph(el))
		case "sdt":
			out = b.blocks(el.Child("sdtContent"), out)
		case "customXml":
			out = b.blocks(el, out)
		}
	}
	return out
}

// BuildParagraph resolves a single w:p element.
func (b *Builder) BuildParagraph(p *xmltree.Node) model.Paragraph {
	pPr := p.Child("pPr")

	styleID := DefaultParagraphStyle
	if v, ok := pPr.ChildAttr("pStyle", "val"); ok && v != "" {
		styleID = v
	}

	style := Resolve(b.table, b.cache, styleID)
	direct := model.DefaultStyle()
	parseParagraphProps(pPr, &direct)
	mergeStyle(&style, direct)

	para := paragraphFromStyle(styleID, style)
	para.Runs = coalesce(b.runs(p, styleID, nil))
	return para
}

func paragraphFromStyle(styleID string, s model.Style) model.Paragraph {
	p := model.Paragraph{
		StyleID:               styleID,
		Level:                 s.Level,
		Numbered:              s.Numbered,
		NumberFormat:          s.NumberFormat,
		NumberStyle:           s.NumberStyle,
		Justification:         s.Justification,
		RightDirection:        s.RightDirection,
		LineSpacing:           s.LineSpacing,
		SpaceBefore:           s.SpaceBefore,
		SpaceAfter:            s.SpaceAfter,
		SpaceBetweenSameStyle: s.SpaceBetweenSameStyle,
		IndentLeft:            s.IndentLeft,
		IndentRight:           s.IndentRight,
		IndentFirstLine:       s.IndentFirstLine,
		Tabs:                  s.Tabs,
	}
	if p.LineSpacing == 0 {
		p.LineSpacing = 1.0
	}
	return p
}

// runs walks the inline content of n in document order. Runs inside
// deletions are dropped; runs wrapped in hyperlinks, insertions and
// similar containers are kept.
func (b *Builder) runs(n *xmltree.Node, paraStyle string, out []model.Run) []model.Run {
	for _, el := range n.Elements() {
		switch el.Name() {
		case "r":
			out = append(out, b.buildRun(el, paraStyle))
		case "hyperlink", "ins", "moveTo", "smartTag", "customXml", "fldSimple", "dir", "bdo":
			out = b.runs(el, paraStyle, out)
		case "sdt":
			out = b.runs(el.Child("sdtContent"), paraStyle, out)
		}
	}
	return out
}

func (b *Builder) buildRun(r *xmltree.Node, paraStyle string) model.Run {
	if id, kind, ok := noteReference(r); ok {
		run := model.NewRun()
		run.NoteID = id
		run.NoteKind = kind
		return run
	}

	rPr := r.Child("rPr")
	styleID := paraStyle
	if v, ok := rPr.ChildAttr("rStyle", "val"); ok && v != "" {
		styleID = v
	}

	style := Resolve(b.table, b.cache, styleID)
	direct := model.DefaultStyle()
	parseRunProps(rPr, &direct)
	mergeStyle(&style, direct)

	run := runFromStyle(styleID, style)
	run.Text = runText(r)
	return run
}

// noteReference reports the note a run refers to, if any.
func noteReference(r *xmltree.Node) (int, model.NoteKind, bool) {
	for _, el := range r.Elements() {
		var kind model.NoteKind
		switch el.Name() {
		case "footnoteReference":
			kind = model.NoteFootnote
		case "endnoteReference":
			kind = model.NoteEndnote
		default:
			continue
		}

		v, _ := el.Attr("id")
		if id, ok := parseInt(v); ok && id != 0 {
			return id, kind, true
		}
	}
	return 0, model.NoteNone, false
}

func runFromStyle(styleID string, s model.Style) model.Run {
	return model.Run{
		StyleID:     styleID,
		Lang:        s.Lang,
		Bold:        s.Bold,
		Italic:      s.Italic,
		Underline:   s.Underline,
		Strike:      s.Strike,
		Subscript:   s.Subscript,
		Superscript: s.Superscript,
		Color:       s.Color,
		BackColor:   s.BackColor,
		FontFamily:  s.FontFamily,
		FontSize:    s.FontSize,
	}
}

// runText concatenates the text-bearing children of a run.
func runText(r *xmltree.Node) string {
	var sb strings.Builder
	for _, el := range r.Elements() {
		switch el.Name() {
		case "t":
			if v, _ := el.Attr("space"); v == "preserve" {
				sb.WriteString(el.Text())
			} else {
				sb.WriteString(strings.Trim(el.Text(), " "))
			}
		case "tab":
			sb.WriteByte('\t')
		case "br", "cr":
			sb.WriteByte('\n')
		case "noBreakHyphen":
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

// coalesce merges adjacent runs with identical formatting. Note
// references never merge, since a merged run could carry only one id.
func coalesce(runs []model.Run) []model.Run {
	if len(runs) == 0 {
		return nil
	}

	out := make([]model.Run, 0, len(runs))
	for _, r := range runs {
		if n := len(out); n > 0 {
			last := &out[n-1]
			if !last.IsNoteReference() && !r.IsNoteReference() && last.SameFormatting(r) {
				last.Text += r.Text
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
