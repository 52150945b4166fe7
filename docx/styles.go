package docx

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/tsawler/minidock/internal/xmltree"
	"github.com/tsawler/minidock/model"
)

// StyleTable maps style ids to the unresolved styles declared in
// word/styles.xml.
type StyleTable map[string]model.Style

// BuildStyleTable parses the styles part. Entries without a w:styleId are
// skipped and, when an id is declared twice, the first declaration wins.
// Empty or malformed input yields an empty table.
func BuildStyleTable(data []byte, logger *slog.Logger) StyleTable {
	if logger == nil {
		logger = slog.Default()
	}

	table := make(StyleTable)
	root, err := xmltree.Parse(data)
	if err != nil {
		logger.Debug("styles part unreadable", "error", err)
		return table
	}

	for _, n := range root.Children("style") {
		id, ok := n.Attr("styleId")
		if !ok || id == "" {
			logger.Debug("skipping style without id")
			continue
		}
		if _, dup := table[id]; dup {
			logger.Debug("duplicate style id", "style", id)
			continue
		}
		table[id] = parseStyle(id, n)
	}
	return table
}

func parseStyle(id string, n *xmltree.Node) model.Style {
	s := model.DefaultStyle()
	s.ID = id

	if t, _ := n.Attr("type"); t == "paragraph" {
		s.Kind = model.KindParagraph
	}
	s.Name, _ = n.ChildAttr("name", "val")
	s.BasedOn, _ = n.ChildAttr("basedOn", "val")

	parseRunProps(n.Child("rPr"), &s)
	parseParagraphProps(n.Child("pPr"), &s)
	return s
}

// toggle reports whether an on/off child element is present and on.
func toggle(parent *xmltree.Node, local string) bool {
	n := parent.Child(local)
	if n == nil {
		return false
	}
	return isToggleOn(n.Attr("val"))
}

// parseRunProps copies the character properties set in rPr onto s. A nil
// rPr leaves s untouched.
func parseRunProps(rPr *xmltree.Node, s *model.Style) {
	if rPr == nil {
		return
	}

	s.Bold = toggle(rPr, "b")
	s.Italic = toggle(rPr, "i")
	if u := rPr.Child("u"); u != nil {
		s.Underline = isUnderlineOn(u.Attr("val"))
	}
	s.Strike = toggle(rPr, "strike")
	s.Subscript = toggle(rPr, "subscript")
	s.Superscript = toggle(rPr, "superscript")

	switch v, _ := rPr.ChildAttr("vertAlign", "val"); v {
	case "subscript":
		s.Subscript = true
	case "superscript":
		s.Superscript = true
	}

	if v, ok := rPr.ChildAttr("color", "val"); ok {
		if c, ok := model.ParseColor(v); ok {
			s.Color = c
		}
	}
	if v, ok := rPr.ChildAttr("shd", "fill"); ok {
		if c, ok := model.ParseColor(v); ok {
			s.BackColor = c
		}
	}

	fonts := rPr.Child("rFonts")
	if v, ok := fonts.Attr("ascii"); ok && v != "" {
		s.FontFamily = v
	} else if v, ok := fonts.Attr("hAnsi"); ok {
		s.FontFamily = v
	}

	if v, ok := rPr.ChildAttr("sz", "val"); ok {
		if size, ok := parseHalfPoints(v); ok {
			s.FontSize = size
		}
	}
	if v, ok := rPr.ChildAttr("lang", "val"); ok {
		s.Lang = v
	}
}

// parseParagraphProps copies the paragraph properties set in pPr onto s.
func parseParagraphProps(pPr *xmltree.Node, s *model.Style) {
	if pPr == nil {
		return
	}

	if v, ok := pPr.ChildAttr("outlineLvl", "val"); ok {
		if lvl, ok := parseInt(v); ok {
			s.Level = lvl
		}
	}

	if numPr := pPr.Child("numPr"); numPr != nil {
		s.Numbered = true
		// Only the presence of a numbering instance is recorded; the
		// definitions in numbering.xml are not expanded.
		if numPr.Has("numId") {
			s.NumberFormat = "decimal"
		}
		if v, ok := numPr.ChildAttr("ilvl", "val"); ok {
			if lvl, ok := parseInt(v); ok {
				s.Level = lvl
			}
		}
		if v, ok := numPr.ChildAttr("numStyle", "val"); ok {
			s.NumberStyle = v
		}
	}

	if sp := pPr.Child("spacing"); sp != nil {
		if v, ok := sp.Attr("line"); ok {
			if f, ok := parseLineUnits(v); ok {
				s.LineSpacing = f
			}
		}
		if v, ok := sp.Attr("before"); ok {
			if f, ok := parseTwips(v); ok {
				s.SpaceBefore = f
			}
		}
		if v, ok := sp.Attr("after"); ok {
			if f, ok := parseTwips(v); ok {
				s.SpaceAfter = f
			}
		}
		if rule, _ := sp.Attr("lineRule"); rule == "exact" {
			s.SpaceBetweenSameStyle = true
		}
	}

	if ind := pPr.Child("ind"); ind != nil {
		if f, ok := twipsAttr(ind, "left", "start"); ok {
			s.IndentLeft = f
		}
		if f, ok := twipsAttr(ind, "right", "end"); ok {
			s.IndentRight = f
		}
		if f, ok := twipsAttr(ind, "firstLine"); ok {
			s.IndentFirstLine = f
		}
	}

	if v, ok := pPr.ChildAttr("jc", "val"); ok {
		s.Justification = model.ParseJustification(v)
	}

	for _, tab := range pPr.Child("tabs").Children("tab") {
		if t, ok := parseTab(tab); ok {
			s.Tabs = append(s.Tabs, t)
		}
	}

	s.RightDirection = toggle(pPr, "bidi")
}

// twipsAttr reads the first of names that is present on n.
func twipsAttr(n *xmltree.Node, names ...string) (float64, bool) {
	for _, name := range names {
		if v, ok := n.Attr(name); ok {
			return parseTwips(v)
		}
	}
	return 0, false
}

// parseTab reads a w:tab stop. Stops with w:val="clear" remove an
// inherited stop rather than add one, so they are dropped.
func parseTab(n *xmltree.Node) (model.Tab, bool) {
	val, _ := n.Attr("val")
	if val == "clear" {
		return model.Tab{}, false
	}

	var t model.Tab
	if v, ok := n.Attr("pos"); ok {
		t.Position, _ = parseTwips(v)
	}
	if val != "" {
		t.Alignment = byte(unicode.ToUpper(rune(val[0])))
	}
	t.Leader, _ = n.Attr("leader")
	t.Leader = strings.TrimSpace(t.Leader)
	return t, true
}
