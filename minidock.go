// Package minidock provides a fluent API for extracting structured content
// from word-processing (.docx) files.
//
// Basic usage:
//
//	text, warnings, err := minidock.Open("document.docx").Text()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", minidock.FormatWarnings(warnings))
//	}
//
// With options:
//
//	md, _, err := minidock.Open("report.docx").
//	    Logger(logger).
//	    NoteMarkers().
//	    Markdown()
//
// The resolved model is available through Document. For finer control
// over parsing, the lower-level docx and archive packages are also
// available.
package minidock

import (
	"github.com/tsawler/minidock/archive"
)

// Open returns an Extractor for the package at filename. Nothing is read
// until a terminal operation such as Text or Document is called.
//
// Example:
//
//	text, warnings, err := minidock.Open("document.docx").Text()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBytes returns an Extractor for a package held in memory.
//
// Example:
//
//	data, _ := os.ReadFile("document.docx")
//	doc, warnings, err := minidock.FromBytes(data).Document()
func FromBytes(data []byte) *Extractor {
	return &Extractor{
		data:    data,
		hasData: true,
		options: defaultOptions(),
	}
}

// FromSource returns an Extractor over parts the caller already holds,
// such as an opened archive.Archive. The caller keeps ownership of src.
func FromSource(src archive.Source) *Extractor {
	return &Extractor{
		source:  src,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	cfg := minidock.Must(config.Load("minidock.yaml"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to a terminal operation and
// panics if the error is non-nil. It discards warnings and returns just
// the value.
//
// Example:
//
//	text := minidock.MustText(minidock.Open("document.docx").Text())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
