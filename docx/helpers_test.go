package docx

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/minidock/archive"
)

const wNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`

// stylesXML wraps style definitions in a w:styles root.
func stylesXML(styles string) []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles ` + wNS + `>` + styles + `</w:styles>`)
}

// documentXML wraps block content in w:document/w:body.
func documentXML(body string) []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document ` + wNS + `><w:body>` + body + `</w:body></w:document>`)
}

// footnotesXML wraps footnote definitions in a w:footnotes root.
func footnotesXML(notes string) []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:footnotes ` + wNS + `>` + notes + `</w:footnotes>`)
}

// endnotesXML wraps endnote definitions in a w:endnotes root.
func endnotesXML(notes string) []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:endnotes ` + wNS + `>` + notes + `</w:endnotes>`)
}

// buildPackage returns a zip holding parts.
func buildPackage(t *testing.T, parts archive.Map) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	contentTypes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="xml" ContentType="application/xml"/>
</Types>`
	w, err := zw.Create("[Content_Types].xml")
	if err != nil {
		t.Fatalf("creating content types: %v", err)
	}
	w.Write([]byte(contentTypes))

	for name, data := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
		w.Write(data)
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

// createTestDOCX writes a package to a temp file and returns its path.
func createTestDOCX(t *testing.T, parts archive.Map) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.docx")
	if err := os.WriteFile(path, buildPackage(t, parts), 0o644); err != nil {
		t.Fatalf("writing package: %v", err)
	}
	return path
}

// paragraph wraps runs in a w:p with an optional pPr.
func paragraph(pPr, runs string) string {
	if pPr != "" {
		pPr = "<w:pPr>" + pPr + "</w:pPr>"
	}
	return "<w:p>" + pPr + runs + "</w:p>"
}

// textRun is a run with optional rPr and a preserved w:t.
func textRun(rPr, text string) string {
	if rPr != "" {
		rPr = "<w:rPr>" + rPr + "</w:rPr>"
	}
	return `<w:r>` + rPr + `<w:t xml:space="preserve">` + text + `</w:t></w:r>`
}
