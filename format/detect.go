// Package format detects whether an input is a WordprocessingML package.
package format

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/tsawler/minidock/archive"
)

// Format represents a detected input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// DOCX indicates an OOXML WordprocessingML package (.docx, .docm, .dotx, .dotm).
	DOCX
	// DOC indicates a legacy binary Word document (.doc, .dot).
	DOC
	// Encrypted indicates a password-protected OOXML package.
	Encrypted
	// OtherZip indicates a ZIP archive that is not a word-processing package.
	OtherZip
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case DOCX:
		return "DOCX"
	case DOC:
		return "DOC"
	case Encrypted:
		return "Encrypted"
	case OtherZip:
		return "ZIP"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case DOCX, Encrypted:
		return ".docx"
	case DOC:
		return ".doc"
	case OtherZip:
		return ".zip"
	default:
		return ""
	}
}

// Supported reports whether the format can be read.
func (f Format) Supported() bool {
	return f == DOCX
}

// Detect determines the format from the filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".docx", ".docm", ".dotx", ".dotm":
		return DOCX
	case ".doc", ".dot":
		return DOC
	case ".zip":
		return OtherZip
	default:
		return Unknown
	}
}

var (
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}
	cfbMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// DetectFromMagic checks leading magic bytes. A ZIP signature alone is not
// enough to tell a word-processing package from any other archive, so it
// reports OtherZip; use DetectFromReader to look inside.
func DetectFromMagic(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return OtherZip
	case bytes.HasPrefix(data, cfbMagic):
		return DOC
	default:
		return Unknown
	}
}

// DetectFromReader inspects the content to determine the format. It opens
// ZIP archives to look for the main document part and compound files to
// tell encrypted packages from legacy documents.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, len(cfbMagic))
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	switch DetectFromMagic(magic) {
	case OtherZip:
		return detectZIPFormat(r, size)
	case DOC:
		return detectCompoundFormat(r), nil
	default:
		return Unknown, nil
	}
}

// detectZIPFormat reports DOCX when the archive holds word/document.xml.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	for _, f := range zr.File {
		if strings.EqualFold(f.Name, archive.DocumentPart) {
			return DOCX, nil
		}
	}
	return OtherZip, nil
}

// detectCompoundFormat classifies an OLE file from its stream names.
func detectCompoundFormat(r io.ReaderAt) Format {
	err := archive.ClassifyCompound(r)
	switch {
	case errors.Is(err, archive.ErrEncrypted):
		return Encrypted
	case errors.Is(err, archive.ErrLegacyDocument):
		return DOC
	default:
		return Unknown
	}
}
