package docx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tsawler/minidock/model"
)

// buildBody parses body content against the given style definitions.
func buildBody(t *testing.T, styles, body string) []model.Paragraph {
	t.Helper()

	table := BuildStyleTable(stylesXML(styles), nil)
	return NewBuilder(table, NewCache(), nil).BuildBody(documentXML(body))
}

// onlyParagraph asserts there is exactly one paragraph and returns it.
func onlyParagraph(t *testing.T, paras []model.Paragraph) model.Paragraph {
	t.Helper()

	if len(paras) != 1 {
		t.Fatalf("got %d paragraphs, want 1", len(paras))
	}
	return paras[0]
}

func TestBuildParagraph_DefaultStyle(t *testing.T) {
	p := onlyParagraph(t, buildBody(t, "", paragraph("", textRun("", "plain"))))

	if p.StyleID != DefaultParagraphStyle {
		t.Errorf("StyleID = %q, want %q", p.StyleID, DefaultParagraphStyle)
	}
	if p.LineSpacing != 1.0 {
		t.Errorf("LineSpacing = %v, want 1.0", p.LineSpacing)
	}
	if p.Justification != model.JustifyLeft {
		t.Errorf("Justification = %v, want left", p.Justification)
	}
	if len(p.Runs) != 1 || p.Runs[0].StyleID != DefaultParagraphStyle {
		t.Errorf("Runs = %+v, want one run styled %q", p.Runs, DefaultParagraphStyle)
	}
}

func TestBuildParagraph_StyleAttributes(t *testing.T) {
	styles := `
<w:style w:type="paragraph" w:styleId="Normal">
  <w:pPr><w:spacing w:line="360"/></w:pPr>
</w:style>
<w:style w:type="paragraph" w:styleId="Quote">
  <w:basedOn w:val="Normal"/>
  <w:pPr><w:jc w:val="both"/><w:ind w:left="720"/><w:tabs><w:tab w:val="left" w:pos="1440"/></w:tabs></w:pPr>
</w:style>`

	body := paragraph(`<w:pStyle w:val="Quote"/><w:jc w:val="left"/><w:ind w:right="360"/><w:tabs><w:tab w:val="right" w:pos="2880"/></w:tabs>`,
		textRun("", "quoted"))

	p := onlyParagraph(t, buildBody(t, styles, body))

	if p.StyleID != "Quote" {
		t.Errorf("StyleID = %q, want Quote", p.StyleID)
	}
	if p.LineSpacing != 1.5 {
		t.Errorf("LineSpacing = %v, want 1.5 inherited from Normal", p.LineSpacing)
	}
	if p.Justification != model.JustifyBoth {
		t.Errorf("Justification = %v, want justify (direct left does not reset)", p.Justification)
	}
	if p.IndentLeft != 36 || p.IndentRight != 18 {
		t.Errorf("IndentLeft, IndentRight = %v, %v; want 36, 18", p.IndentLeft, p.IndentRight)
	}
	want := []model.Tab{{Position: 72, Alignment: 'L'}, {Position: 144, Alignment: 'R'}}
	if diff := cmp.Diff(want, p.Tabs); diff != "" {
		t.Errorf("Tabs mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildParagraph_DirectOverride(t *testing.T) {
	styles := `<w:style w:type="paragraph" w:styleId="Centered"><w:pPr><w:jc w:val="center"/></w:pPr></w:style>`
	body := paragraph(`<w:pStyle w:val="Centered"/><w:jc w:val="right"/><w:bidi/>`, textRun("", "x"))

	p := onlyParagraph(t, buildBody(t, styles, body))
	if p.Justification != model.JustifyRight {
		t.Errorf("Justification = %v, want right", p.Justification)
	}
	if !p.RightDirection {
		t.Error("RightDirection = false, want true")
	}
}

func TestBuildParagraph_UnknownStyle(t *testing.T) {
	body := paragraph(`<w:pStyle w:val="NoSuchStyle123"/>`, textRun("", "text"))

	p := onlyParagraph(t, buildBody(t, "", body))
	if p.StyleID != "NoSuchStyle123" {
		t.Errorf("StyleID = %q, want NoSuchStyle123", p.StyleID)
	}
	if len(p.Runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(p.Runs))
	}

	r := p.Runs[0]
	if r.Bold || r.Italic || r.FontSize != 0 || r.FontFamily != "" || !r.Color.IsDefault() {
		t.Errorf("run has formatting from an unknown style: %+v", r)
	}
}

func TestBuildRun_Precedence(t *testing.T) {
	styles := `<w:style w:type="paragraph" w:styleId="Normal"><w:rPr><w:sz w:val="24"/><w:b/></w:rPr></w:style>`
	body := paragraph("", textRun(`<w:sz w:val="28"/>`, "big")+textRun("", "plain"))

	p := onlyParagraph(t, buildBody(t, styles, body))
	if len(p.Runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(p.Runs))
	}
	if got := p.Runs[0].FontSize; got != 14 {
		t.Errorf("direct run FontSize = %v, want 14", got)
	}
	if got := p.Runs[1].FontSize; got != 12 {
		t.Errorf("styled run FontSize = %v, want 12", got)
	}
	for i, r := range p.Runs {
		if !r.Bold {
			t.Errorf("run %d Bold = false, want true from paragraph style", i)
		}
	}
}

func TestBuildRun_CharacterStyle(t *testing.T) {
	styles := `
<w:style w:type="paragraph" w:styleId="Normal"><w:rPr><w:rFonts w:ascii="Calibri"/></w:rPr></w:style>
<w:style w:type="character" w:styleId="Strong"><w:rPr><w:b/><w:color w:val="0000FF"/></w:rPr></w:style>`
	body := paragraph("", textRun(`<w:rStyle w:val="Strong"/><w:i/>`, "strong"))

	r := onlyParagraph(t, buildBody(t, styles, body)).Runs[0]
	if r.StyleID != "Strong" {
		t.Errorf("StyleID = %q, want Strong", r.StyleID)
	}
	if !r.Bold || !r.Italic {
		t.Errorf("Bold, Italic = %v, %v; want true, true", r.Bold, r.Italic)
	}
	if want := (model.Color{B: 255, A: 255}); r.Color != want {
		t.Errorf("Color = %+v, want %+v", r.Color, want)
	}
}

func TestBuildRun_Text(t *testing.T) {
	tests := []struct {
		name string
		run  string
		want string
	}{
		{"trimmed", `<w:r><w:t>  padded  </w:t></w:r>`, "padded"},
		{"preserved", `<w:r><w:t xml:space="preserve">  padded  </w:t></w:r>`, "  padded  "},
		{"several t", `<w:r><w:t>one</w:t><w:t xml:space="preserve"> two</w:t></w:r>`, "one two"},
		{"tab", `<w:r><w:t>a</w:t><w:tab/><w:t>b</w:t></w:r>`, "a\tb"},
		{"break", `<w:r><w:t>a</w:t><w:br/><w:t>b</w:t></w:r>`, "a\nb"},
		{"carriage return", `<w:r><w:t>a</w:t><w:cr/><w:t>b</w:t></w:r>`, "a\nb"},
		{"no break hyphen", `<w:r><w:t>e</w:t><w:noBreakHyphen/><w:t>mail</w:t></w:r>`, "e-mail"},
		{"no text", `<w:r><w:rPr><w:b/></w:rPr></w:r>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := onlyParagraph(t, buildBody(t, "", paragraph("", tt.run)))
			if got := p.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildParagraph_Coalescing(t *testing.T) {
	body := paragraph("", `<w:r><w:t xml:space="preserve">Hello </w:t></w:r><w:r><w:t>World</w:t></w:r>`)

	p := onlyParagraph(t, buildBody(t, "", body))
	if len(p.Runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(p.Runs))
	}
	if p.Runs[0].Text != "Hello World" {
		t.Errorf("Text = %q, want %q", p.Runs[0].Text, "Hello World")
	}
}

func TestBuildParagraph_NoCoalescingAcrossFormatting(t *testing.T) {
	body := paragraph("", textRun("<w:b/>", "bold")+textRun("", " plain")+textRun("<w:b/>", " bold"))

	p := onlyParagraph(t, buildBody(t, "", body))
	if len(p.Runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(p.Runs))
	}
	for i := 1; i < len(p.Runs); i++ {
		if p.Runs[i-1].SameFormatting(p.Runs[i]) {
			t.Errorf("runs %d and %d have identical formatting but were not merged", i-1, i)
		}
	}
}

func TestBuildParagraph_NoteReferences(t *testing.T) {
	body := paragraph("",
		textRun("", "See")+
			`<w:r><w:rPr><w:rStyle w:val="FootnoteReference"/></w:rPr><w:footnoteReference w:id="1"/></w:r>`+
			`<w:r><w:footnoteReference w:id="2"/></w:r>`+
			`<w:r><w:endnoteReference w:id="1"/></w:r>`+
			textRun("", "."))

	p := onlyParagraph(t, buildBody(t, "", body))

	type ref struct {
		Text string
		ID   int
		Kind model.NoteKind
	}
	var got []ref
	for _, r := range p.Runs {
		got = append(got, ref{r.Text, r.NoteID, r.NoteKind})
	}

	want := []ref{
		{"See", 0, model.NoteNone},
		{"", 1, model.NoteFootnote},
		{"", 2, model.NoteFootnote},
		{"", 1, model.NoteEndnote},
		{".", 0, model.NoteNone},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}

	if r := p.Runs[1]; r.StyleID != "" || r.Bold || !r.Color.IsDefault() {
		t.Errorf("note reference carries formatting: %+v", r)
	}
}

func TestBuildParagraph_InlineContainers(t *testing.T) {
	body := paragraph("",
		textRun("", "a")+
			`<w:hyperlink r:id="rId5">`+textRun("<w:u/>", "b")+`</w:hyperlink>`+
			`<w:ins w:id="1" w:author="x">`+textRun("<w:i/>", "c")+`</w:ins>`+
			`<w:del w:id="2" w:author="x"><w:r><w:delText>gone</w:delText></w:r></w:del>`+
			`<w:sdt><w:sdtPr/><w:sdtContent>`+textRun("<w:strike/>", "d")+`</w:sdtContent></w:sdt>`+
			`<w:smartTag>`+textRun("<w:b/>", "e")+`</w:smartTag>`+
			`<w:bookmarkStart w:id="0" w:name="x"/>`+
			textRun("", "f"))

	p := onlyParagraph(t, buildBody(t, "", body))

	var texts []string
	for _, r := range p.Runs {
		texts = append(texts, r.Text)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e", "f"}, texts); diff != "" {
		t.Errorf("run order mismatch (-want +got):\n%s", diff)
	}
	if !p.Runs[1].Underline {
		t.Error("hyperlink run lost its formatting")
	}
}

func TestBuildBody_Blocks(t *testing.T) {
	body := paragraph("", textRun("", "first")) +
		`<w:tbl><w:tr><w:tc>` + paragraph("", textRun("", "cell")) + `</w:tc></w:tr></w:tbl>` +
		`<w:sdt><w:sdtContent>` + paragraph("", textRun("", "second")) + `</w:sdtContent></w:sdt>` +
		paragraph("", "") +
		`<w:sectPr/>`

	paras := buildBody(t, "", body)

	var texts []string
	for _, p := range paras {
		texts = append(texts, p.Text())
	}
	if diff := cmp.Diff([]string{"first", "second", ""}, texts); diff != "" {
		t.Errorf("paragraphs mismatch (-want +got):\n%s", diff)
	}
	if paras[2].Runs != nil {
		t.Errorf("empty paragraph Runs = %v, want nil", paras[2].Runs)
	}
}

func TestBuildBody_Unreadable(t *testing.T) {
	b := NewBuilder(nil, nil, nil)

	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"malformed", []byte("<w:document><w:body><w:p>")},
		{"no body", []byte(`<w:document ` + wNS + `/>`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.BuildBody(tt.data); len(got) != 0 {
				t.Errorf("BuildBody() = %d paragraphs, want 0", len(got))
			}
		})
	}
}

func TestCoalesce(t *testing.T) {
	plain := model.NewRun()
	bold := model.NewRun()
	bold.Bold = true
	note := model.NewRun()
	note.NoteID = 3
	note.NoteKind = model.NoteFootnote

	with := func(r model.Run, text string) model.Run {
		r.Text = text
		return r
	}

	tests := []struct {
		name string
		in   []model.Run
		want []string
	}{
		{"empty", nil, nil},
		{"single", []model.Run{with(plain, "a")}, []string{"a"}},
		{"same", []model.Run{with(plain, "a"), with(plain, "b"), with(plain, "c")}, []string{"abc"}},
		{"alternating", []model.Run{with(plain, "a"), with(bold, "b"), with(plain, "c")}, []string{"a", "b", "c"}},
		{"notes", []model.Run{with(plain, "a"), note, note, with(plain, "b")}, []string{"a", "", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, r := range coalesce(tt.in) {
				got = append(got, r.Text)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("coalesce() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
