package docx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tsawler/minidock/model"
)

// parseOne builds a table from a single style body declared with id "S".
func parseOne(t *testing.T, styleType, body string) model.Style {
	t.Helper()

	table := BuildStyleTable(stylesXML(`<w:style w:type="`+styleType+`" w:styleId="S">`+body+`</w:style>`), nil)
	s, ok := table["S"]
	if !ok {
		t.Fatal("style S not in table")
	}
	return s
}

func TestBuildStyleTable(t *testing.T) {
	data := stylesXML(`
<w:style w:type="paragraph" w:styleId="Normal">
  <w:name w:val="Normal"/>
  <w:pPr><w:spacing w:after="160" w:line="276" w:lineRule="auto"/></w:pPr>
  <w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri"/><w:sz w:val="24"/></w:rPr>
</w:style>
<w:style w:type="paragraph" w:styleId="Heading1">
  <w:name w:val="heading 1"/>
  <w:basedOn w:val="Normal"/>
  <w:pPr><w:outlineLvl w:val="1"/><w:jc w:val="both"/></w:pPr>
  <w:rPr><w:b/><w:color w:val="FF0000"/></w:rPr>
</w:style>
<w:style w:type="character" w:styleId="Emphasis">
  <w:rPr><w:i/></w:rPr>
</w:style>
<w:style w:type="paragraph">
  <w:name w:val="no id"/>
</w:style>`)

	table := BuildStyleTable(data, nil)
	if len(table) != 3 {
		t.Fatalf("len(table) = %d, want 3", len(table))
	}

	normal := model.DefaultStyle()
	normal.ID = "Normal"
	normal.Name = "Normal"
	normal.Kind = model.KindParagraph
	normal.FontFamily = "Calibri"
	normal.FontSize = 12
	normal.SpaceAfter = 8
	normal.LineSpacing = 276.0 / 240

	heading := model.DefaultStyle()
	heading.ID = "Heading1"
	heading.Name = "heading 1"
	heading.BasedOn = "Normal"
	heading.Kind = model.KindParagraph
	heading.Level = 1
	heading.Justification = model.JustifyBoth
	heading.Bold = true
	heading.Color = model.Color{R: 255, A: 255}

	emphasis := model.DefaultStyle()
	emphasis.ID = "Emphasis"
	emphasis.Italic = true

	want := StyleTable{"Normal": normal, "Heading1": heading, "Emphasis": emphasis}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("BuildStyleTable() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildStyleTable_Empty(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"whitespace", []byte("   \n")},
		{"malformed", []byte("<w:styles><w:style")},
		{"no styles", stylesXML("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := BuildStyleTable(tt.data, nil)
			if table == nil {
				t.Fatal("BuildStyleTable() returned nil")
			}
			if len(table) != 0 {
				t.Errorf("len(table) = %d, want 0", len(table))
			}
		})
	}
}

func TestBuildStyleTable_DuplicateID(t *testing.T) {
	table := BuildStyleTable(stylesXML(`
<w:style w:styleId="Dup"><w:rPr><w:b/></w:rPr></w:style>
<w:style w:styleId="Dup"><w:rPr><w:i/></w:rPr></w:style>`), nil)

	s := table["Dup"]
	if !s.Bold || s.Italic {
		t.Errorf("Bold, Italic = %v, %v; want first declaration to win", s.Bold, s.Italic)
	}
}

func TestBuildStyleTable_Kind(t *testing.T) {
	tests := []struct {
		styleType string
		want      model.StyleKind
	}{
		{"paragraph", model.KindParagraph},
		{"character", model.KindRun},
		{"table", model.KindRun},
		{"", model.KindRun},
	}

	for _, tt := range tests {
		t.Run(tt.styleType, func(t *testing.T) {
			if got := parseOne(t, tt.styleType, "").Kind; got != tt.want {
				t.Errorf("Kind = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseRunProps_Toggles(t *testing.T) {
	tests := []struct {
		name string
		rPr  string
		get  func(model.Style) bool
		want bool
	}{
		{"bold bare", `<w:b/>`, func(s model.Style) bool { return s.Bold }, true},
		{"bold true", `<w:b w:val="true"/>`, func(s model.Style) bool { return s.Bold }, true},
		{"bold 1", `<w:b w:val="1"/>`, func(s model.Style) bool { return s.Bold }, true},
		{"bold 0", `<w:b w:val="0"/>`, func(s model.Style) bool { return s.Bold }, false},
		{"bold false", `<w:b w:val="false"/>`, func(s model.Style) bool { return s.Bold }, false},
		{"italic off", `<w:i w:val="off"/>`, func(s model.Style) bool { return s.Italic }, false},
		{"underline single", `<w:u w:val="single"/>`, func(s model.Style) bool { return s.Underline }, true},
		{"underline none", `<w:u w:val="none"/>`, func(s model.Style) bool { return s.Underline }, false},
		{"underline bare", `<w:u/>`, func(s model.Style) bool { return s.Underline }, true},
		{"bold none is not an off value", `<w:b w:val="none"/>`, func(s model.Style) bool { return s.Bold }, true},
		{"strike", `<w:strike/>`, func(s model.Style) bool { return s.Strike }, true},
		{"subscript element", `<w:subscript/>`, func(s model.Style) bool { return s.Subscript }, true},
		{"superscript element", `<w:superscript/>`, func(s model.Style) bool { return s.Superscript }, true},
		{"vertAlign subscript", `<w:vertAlign w:val="subscript"/>`, func(s model.Style) bool { return s.Subscript }, true},
		{"vertAlign superscript", `<w:vertAlign w:val="superscript"/>`, func(s model.Style) bool { return s.Superscript }, true},
		{"vertAlign baseline", `<w:vertAlign w:val="baseline"/>`, func(s model.Style) bool { return s.Superscript || s.Subscript }, false},
		{"absent", ``, func(s model.Style) bool { return s.Bold }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := parseOne(t, "character", "<w:rPr>"+tt.rPr+"</w:rPr>")
			if got := tt.get(s); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseRunProps_NonFiniteSize(t *testing.T) {
	for _, v := range []string{"Inf", "-Inf", "NaN", "0x1p6", "1e3"} {
		t.Run(v, func(t *testing.T) {
			s := parseOne(t, "character", `<w:rPr><w:sz w:val="`+v+`"/></w:rPr>`)
			if s.FontSize != 0 {
				t.Errorf("FontSize = %v, want unset", s.FontSize)
			}
		})
	}
}

func TestParseRunProps_Values(t *testing.T) {
	s := parseOne(t, "character", `<w:rPr>
  <w:color w:val="00FF0080"/>
  <w:shd w:val="clear" w:color="auto" w:fill="FFFF00"/>
  <w:rFonts w:hAnsi="Arial"/>
  <w:sz w:val="21"/>
  <w:lang w:val="fr-FR"/>
</w:rPr>`)

	if want := (model.Color{G: 255, A: 128}); s.Color != want {
		t.Errorf("Color = %+v, want %+v", s.Color, want)
	}
	if want := (model.Color{R: 255, G: 255, A: 255}); s.BackColor != want {
		t.Errorf("BackColor = %+v, want %+v", s.BackColor, want)
	}
	if s.FontFamily != "Arial" {
		t.Errorf("FontFamily = %q, want Arial (hAnsi fallback)", s.FontFamily)
	}
	if s.FontSize != 10.5 {
		t.Errorf("FontSize = %v, want 10.5", s.FontSize)
	}
	if s.Lang != "fr-FR" {
		t.Errorf("Lang = %q, want fr-FR", s.Lang)
	}
}

func TestParseRunProps_Unset(t *testing.T) {
	s := parseOne(t, "character", `<w:rPr>
  <w:color w:val="auto"/>
  <w:shd w:fill="nothex"/>
  <w:sz w:val="big"/>
</w:rPr>`)

	if !s.Color.IsDefault() {
		t.Errorf("Color = %+v, want default", s.Color)
	}
	if !s.BackColor.IsDefault() {
		t.Errorf("BackColor = %+v, want default", s.BackColor)
	}
	if s.FontSize != 0 {
		t.Errorf("FontSize = %v, want 0", s.FontSize)
	}
}

func TestParseParagraphProps(t *testing.T) {
	s := parseOne(t, "paragraph", `<w:pPr>
  <w:numPr><w:ilvl w:val="2"/><w:numId w:val="5"/></w:numPr>
  <w:spacing w:before="240" w:after="120" w:line="480" w:lineRule="exact"/>
  <w:ind w:start="720" w:end="360" w:firstLine="180"/>
  <w:jc w:val="center"/>
  <w:tabs>
    <w:tab w:val="center" w:pos="4680" w:leader="dot"/>
    <w:tab w:val="clear" w:pos="720"/>
    <w:tab w:val="right" w:pos="9360"/>
  </w:tabs>
  <w:bidi/>
</w:pPr>`)

	want := model.DefaultStyle()
	want.ID = "S"
	want.Kind = model.KindParagraph
	want.Numbered = true
	want.Level = 2
	want.NumberFormat = "decimal"
	want.SpaceBefore = 12
	want.SpaceAfter = 6
	want.LineSpacing = 2
	want.SpaceBetweenSameStyle = true
	want.IndentLeft = 36
	want.IndentRight = 18
	want.IndentFirstLine = 9
	want.Justification = model.JustifyCenter
	want.Tabs = []model.Tab{
		{Position: 234, Alignment: 'C', Leader: "dot"},
		{Position: 468, Alignment: 'R'},
	}
	want.RightDirection = true

	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("paragraph properties mismatch (-want +got):\n%s", diff)
	}
}

func TestParseParagraphProps_NumStyle(t *testing.T) {
	s := parseOne(t, "paragraph", `<w:pPr><w:numPr><w:numStyle w:val="Bullets"/></w:numPr></w:pPr>`)

	if !s.Numbered {
		t.Error("Numbered = false, want true")
	}
	if s.NumberFormat != "" {
		t.Errorf("NumberFormat = %q, want empty without numId", s.NumberFormat)
	}
	if s.NumberStyle != "Bullets" {
		t.Errorf("NumberStyle = %q, want Bullets", s.NumberStyle)
	}
}

func TestParseParagraphProps_Justification(t *testing.T) {
	tests := []struct {
		val  string
		want model.Justification
	}{
		{"both", model.JustifyBoth},
		{"center", model.JustifyCenter},
		{"right", model.JustifyRight},
		{"left", model.JustifyLeft},
		{"start", model.JustifyLeft},
		{"distribute", model.JustifyLeft},
	}

	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			s := parseOne(t, "paragraph", `<w:pPr><w:jc w:val="`+tt.val+`"/></w:pPr>`)
			if s.Justification != tt.want {
				t.Errorf("Justification = %v, want %v", s.Justification, tt.want)
			}
		})
	}
}
