// Package docx builds a resolved document model from the parts of a
// WordprocessingML package.
//
// The pipeline reads word/styles.xml into a StyleTable, resolves styles
// along their basedOn chains through a per-parse Cache, and builds the
// paragraphs of word/document.xml together with the notes of
// word/footnotes.xml and word/endnotes.xml. Nothing in this package keeps
// state between parses, so distinct documents can be read concurrently.
//
// Malformed or missing input never produces an error here: a missing part
// reads as empty, unreadable XML yields an empty result for that part, and
// unknown style references resolve to the default style.
package docx

import (
	"log/slog"

	"github.com/tsawler/minidock/archive"
	"github.com/tsawler/minidock/model"
)

// Option configures Read.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	onCycle     func(styleID string)
	archiveOpts []archive.Option
}

// WithLogger sets the logger. The default is slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCycleHandler registers fn to be called with the style id each time
// a basedOn cycle is cut.
func WithCycleHandler(fn func(styleID string)) Option {
	return func(o *options) {
		o.onCycle = fn
	}
}

// WithArchiveOptions passes options through to archive.Open and
// archive.FromBytes in ReadFile and ReadBytes.
func WithArchiveOptions(opts ...archive.Option) Option {
	return func(o *options) {
		o.archiveOpts = append(o.archiveOpts, opts...)
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Read builds a Document from the parts in src. A nil src, or one without
// word/document.xml, yields an empty Document: styles and notes are only
// read alongside a main document part.
func Read(src archive.Source, opts ...Option) *model.Document {
	o := buildOptions(opts)
	doc := model.NewDocument()
	if src == nil {
		return doc
	}

	body, ok := src.Member(archive.DocumentPart)
	if !ok {
		o.logger.Debug("part missing", "part", archive.DocumentPart)
		return doc
	}

	part := func(name string) []byte {
		data, ok := src.Member(name)
		if !ok {
			o.logger.Debug("part missing", "part", name)
		}
		return data
	}

	table := BuildStyleTable(part(archive.StylesPart), o.logger)
	cache := newCache(o.logger, o.onCycle)
	b := NewBuilder(table, cache, o.logger)

	doc.Styles = table
	doc.Footnotes = ExtractNotes(part(archive.FootnotesPart), model.NoteFootnote, b)
	doc.Endnotes = ExtractNotes(part(archive.EndnotesPart), model.NoteEndnote, b)
	doc.Paragraphs = b.BuildBody(body)

	o.logger.Debug("document read",
		"paragraphs", len(doc.Paragraphs),
		"styles", len(table),
		"resolved", cache.Len(),
		"footnotes", len(doc.Footnotes),
		"endnotes", len(doc.Endnotes))
	return doc
}

// ReadFile opens the package at path and reads it. An archive that cannot
// be opened yields an empty Document; the reason is logged at Warn level.
func ReadFile(path string, opts ...Option) *model.Document {
	o := buildOptions(opts)
	a, err := archive.Open(path, o.archiveOpts...)
	if err != nil {
		o.logger.Warn("cannot open package", "path", path, "error", err)
		return model.NewDocument()
	}
	defer a.Close()
	return Read(a, opts...)
}

// ReadBytes reads a package held in memory. Unreadable input yields an
// empty Document; the reason is logged at Warn level.
func ReadBytes(data []byte, opts ...Option) *model.Document {
	o := buildOptions(opts)
	a, err := archive.FromBytes(data, o.archiveOpts...)
	if err != nil {
		o.logger.Warn("cannot open package", "error", err)
		return model.NewDocument()
	}
	defer a.Close()
	return Read(a, opts...)
}
