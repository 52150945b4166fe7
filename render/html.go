package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/language"

	"github.com/tsawler/minidock/model"
)

// HTML returns the document as an HTML fragment: one block element per
// paragraph, inline elements for run formatting, and footnote and endnote
// sections linked from their reference marks.
func HTML(doc *model.Document) (string, error) {
	root := element("div", attr("class", "document"))
	if doc == nil {
		return renderNode(root)
	}

	appendBlocks(root, doc.Paragraphs)
	appendNotes(root, "footnotes", "Footnotes", model.NoteFootnote, doc.Footnotes)
	appendNotes(root, "endnotes", "Endnotes", model.NoteEndnote, doc.Endnotes)

	return renderNode(root)
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", fmt.Errorf("rendering html: %w", err)
	}
	return buf.String(), nil
}

func element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// appendBlocks adds paragraphs to parent, grouping consecutive numbered
// paragraphs into lists.
func appendBlocks(parent *html.Node, paras []model.Paragraph) {
	var list *html.Node
	for _, p := range paras {
		if !p.Numbered {
			list = nil
			parent.AppendChild(paragraphNode(p))
			continue
		}

		tag := "ul"
		if p.NumberFormat != "" {
			tag = "ol"
		}
		if list == nil || list.Data != tag {
			list = element(tag)
			parent.AppendChild(list)
		}
		li := element("li", paragraphAttrs(p)...)
		appendRuns(li, p.Runs)
		list.AppendChild(li)
	}
}

func paragraphNode(p model.Paragraph) *html.Node {
	tag := "p"
	if lvl := headingLevel(p.StyleID); lvl > 0 {
		tag = "h" + strconv.Itoa(lvl)
	}
	n := element(tag, paragraphAttrs(p)...)
	appendRuns(n, p.Runs)
	return n
}

func paragraphAttrs(p model.Paragraph) []html.Attribute {
	var attrs []html.Attribute
	if p.StyleID != "" {
		attrs = append(attrs, attr("data-style", p.StyleID))
	}
	if p.RightDirection {
		attrs = append(attrs, attr("dir", "rtl"))
	}

	var css []string
	if p.Justification != model.JustifyLeft {
		css = append(css, "text-align:"+p.Justification.String())
	}
	css = appendPoints(css, "margin-left", p.IndentLeft)
	css = appendPoints(css, "margin-right", p.IndentRight)
	css = appendPoints(css, "text-indent", p.IndentFirstLine)
	css = appendPoints(css, "margin-top", p.SpaceBefore)
	css = appendPoints(css, "margin-bottom", p.SpaceAfter)
	if p.LineSpacing > 0 && p.LineSpacing != 1 {
		css = append(css, "line-height:"+formatFloat(p.LineSpacing))
	}
	if len(css) > 0 {
		attrs = append(attrs, attr("style", strings.Join(css, ";")))
	}
	return attrs
}

func appendPoints(css []string, prop string, v float64) []string {
	if v == 0 {
		return css
	}
	return append(css, prop+":"+formatFloat(v)+"pt")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func appendRuns(parent *html.Node, runs []model.Run) {
	for _, r := range runs {
		if r.IsNoteReference() {
			parent.AppendChild(noteRefNode(r))
			continue
		}
		if r.Text == "" {
			continue
		}
		parent.AppendChild(runNode(r))
	}
}

// runNode wraps the run text in one inline element per set flag, inside a
// span that carries colors, font and language.
func runNode(r model.Run) *html.Node {
	inner := textWithBreaks(r.Text)

	wrap := func(tag string) {
		n := element(tag)
		n.AppendChild(inner)
		inner = n
	}
	if r.Subscript {
		wrap("sub")
	}
	if r.Superscript {
		wrap("sup")
	}
	if r.Strike {
		wrap("s")
	}
	if r.Underline {
		wrap("u")
	}
	if r.Italic {
		wrap("i")
	}
	if r.Bold {
		wrap("b")
	}

	attrs := spanAttrs(r)
	if len(attrs) == 0 {
		return inner
	}
	span := element("span", attrs...)
	span.AppendChild(inner)
	return span
}

// textWithBreaks turns line breaks inside a run into <br> elements. The
// result is a single node so callers can wrap it.
func textWithBreaks(s string) *html.Node {
	lines := strings.Split(s, "\n")
	if len(lines) == 1 {
		return text(s)
	}

	span := element("span")
	for i, line := range lines {
		if i > 0 {
			span.AppendChild(element("br"))
		}
		if line != "" {
			span.AppendChild(text(line))
		}
	}
	return span
}

func spanAttrs(r model.Run) []html.Attribute {
	var attrs []html.Attribute
	if lang := canonicalLang(r.Lang); lang != "" {
		attrs = append(attrs, attr("lang", lang))
	}

	var css []string
	if !r.Color.IsDefault() {
		css = append(css, "color:#"+r.Color.Hex())
	}
	if !r.BackColor.IsDefault() {
		css = append(css, "background-color:#"+r.BackColor.Hex())
	}
	if r.FontFamily != "" {
		css = append(css, "font-family:"+strconv.Quote(r.FontFamily))
	}
	css = appendPoints(css, "font-size", r.FontSize)
	if len(css) > 0 {
		attrs = append(attrs, attr("style", strings.Join(css, ";")))
	}
	return attrs
}

// canonicalLang normalizes a BCP 47 tag such as "en-us" to "en-US".
// Tags that do not parse are passed through unchanged.
func canonicalLang(s string) string {
	if s == "" {
		return ""
	}
	tag, err := language.Parse(s)
	if err != nil {
		return s
	}
	return tag.String()
}

func noteRefNode(r model.Run) *html.Node {
	anchor := noteAnchor(r.NoteKind, r.NoteID)
	label := strconv.Itoa(r.NoteID)
	if r.NoteKind == model.NoteEndnote {
		label = "e" + label
	}

	a := element("a", attr("href", "#"+anchor), attr("id", anchor+"-ref"))
	a.AppendChild(text(label))
	sup := element("sup", attr("class", "note-ref"))
	sup.AppendChild(a)
	return sup
}

func appendNotes(parent *html.Node, class, title string, kind model.NoteKind, notes map[int]model.Note) {
	if len(notes) == 0 {
		return
	}

	section := element("section", attr("class", class))
	h := element("h2")
	h.AppendChild(text(title))
	section.AppendChild(h)

	for _, n := range sortedNotes(notes) {
		anchor := noteAnchor(kind, n.ID)
		div := element("div", attr("id", anchor), attr("class", "note"))
		appendBlocks(div, n.Paragraphs)
		section.AppendChild(div)
	}
	parent.AppendChild(section)
}
