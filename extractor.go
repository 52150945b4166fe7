package minidock

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tsawler/minidock/archive"
	"github.com/tsawler/minidock/docx"
	"github.com/tsawler/minidock/format"
	"github.com/tsawler/minidock/model"
	"github.com/tsawler/minidock/render"
)

// Extractor provides a fluent interface for extracting content from a
// word-processing package. Each configuration method returns a new
// Extractor instance, making it safe for concurrent use and allowing
// method chaining.
type Extractor struct {
	// Source; exactly one is set
	filename string
	data     []byte
	hasData  bool
	source   archive.Source

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		data:     e.data,
		hasData:  e.hasData,
		source:   e.source,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Logger sets the structured logger used while parsing. The default is
// slog.Default().
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	doc, _, err := minidock.Open("doc.docx").Logger(logger).Document()
func (e *Extractor) Logger(l *slog.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = l
	return newExt
}

// NoteMarkers makes Text insert [^n] markers at footnote and endnote
// references and append the note bodies.
//
// Example:
//
//	text, _, err := minidock.Open("doc.docx").NoteMarkers().Text()
func (e *Extractor) NoteMarkers() *Extractor {
	newExt := e.clone()
	newExt.options.noteMarkers = true
	return newExt
}

// MaxMemberSize caps the uncompressed size of each package part. Parts
// over the cap are treated as missing.
func (e *Extractor) MaxMemberSize(n int64) *Extractor {
	newExt := e.clone()
	if n <= 0 {
		newExt.err = fmt.Errorf("invalid max member size: %d", n)
		return newExt
	}
	newExt.options.maxMemberSize = n
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Document parses the package and returns the resolved document model.
// Input that cannot be read yields an empty Document and a Warning; the
// error is reserved for misuse such as a missing source.
//
// Example:
//
//	doc, warnings, err := minidock.Open("document.docx").Document()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range doc.Paragraphs {
//	    fmt.Println(p.StyleID, p.Text())
//	}
func (e *Extractor) Document() (*model.Document, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	src, closeFn, warnings, err := e.open()
	if err != nil {
		return nil, nil, err
	}
	defer closeFn()

	if src == nil {
		return model.NewDocument(), warnings, nil
	}

	var cycles []string
	doc := docx.Read(src,
		docx.WithLogger(e.options.log()),
		docx.WithCycleHandler(func(id string) { cycles = append(cycles, id) }),
	)

	for _, id := range cycles {
		warnings = append(warnings, Warning{
			Code:    WarnStyleCycle,
			Message: fmt.Sprintf("style %q is part of a basedOn cycle", id),
		})
	}
	if doc.IsEmpty() {
		warnings = append(warnings, Warning{Code: WarnNoContent, Message: "package has no readable content"})
	}
	return doc, warnings, nil
}

// Paragraphs returns the body paragraphs.
func (e *Extractor) Paragraphs() ([]model.Paragraph, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return nil, nil, err
	}
	return doc.Paragraphs, warnings, nil
}

// Text extracts plain text, one paragraph per line.
//
// Example:
//
//	text, warnings, err := minidock.Open("document.docx").Text()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", minidock.FormatWarnings(warnings))
//	}
func (e *Extractor) Text() (string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", nil, err
	}
	return render.Text(doc, render.TextOptions{NoteMarkers: e.options.noteMarkers}), warnings, nil
}

// HTML renders the document as an HTML fragment.
func (e *Extractor) HTML() (string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", nil, err
	}
	h, err := render.HTML(doc)
	if err != nil {
		return "", warnings, err
	}
	return h, warnings, nil
}

// Markdown renders the document as CommonMark.
//
// Example:
//
//	md, _, err := minidock.Open("document.docx").Markdown()
func (e *Extractor) Markdown() (string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", nil, err
	}
	md, err := render.Markdown(doc)
	if err != nil {
		return "", warnings, err
	}
	return md, warnings, nil
}

// JSON renders the document in the render.DocumentJSON schema, the same
// one the HTTP service returns.
func (e *Extractor) JSON() (string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", nil, err
	}
	js, err := render.JSON(doc)
	if err != nil {
		return "", warnings, err
	}
	return js, warnings, nil
}

// open resolves the configured source. A nil Source with warnings means
// the input was unreadable; the returned close function is always safe to
// call.
func (e *Extractor) open() (archive.Source, func(), []Warning, error) {
	noop := func() {}

	if e.source != nil {
		return e.source, noop, nil, nil
	}

	var opts []archive.Option
	if e.options.maxMemberSize > 0 {
		opts = append(opts, archive.WithMaxMemberSize(e.options.maxMemberSize))
	}

	var (
		a        *archive.Archive
		err      error
		warnings []Warning
	)
	switch {
	case e.hasData:
		a, err = archive.FromBytes(e.data, opts...)
	case e.filename != "":
		if f := format.Detect(e.filename); f == format.Unknown || f == format.OtherZip {
			warnings = append(warnings, Warning{
				Code:    WarnExtension,
				Message: fmt.Sprintf("%s does not have a word-processing extension", e.filename),
			})
		}
		a, err = archive.Open(e.filename, opts...)
	default:
		return nil, noop, nil, errors.New("no source specified")
	}

	if err != nil {
		e.options.log().Warn("cannot open package", "error", err)
		return nil, noop, append(warnings, openWarning(err)), nil
	}
	return a, func() { a.Close() }, warnings, nil
}
