// Package archive reads named members out of a word-processing package.
//
// A package is a ZIP container. Inputs that are OLE compound files instead
// (password-protected OOXML, legacy binary .doc) are recognized and
// reported with a specific error rather than a generic ZIP failure.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/richardlehane/mscfb"
)

// Member names read from a WordprocessingML package.
const (
	DocumentPart  = "word/document.xml"
	StylesPart    = "word/styles.xml"
	FootnotesPart = "word/footnotes.xml"
	EndnotesPart  = "word/endnotes.xml"
)

// DefaultMaxMemberSize bounds the uncompressed size of a single member.
const DefaultMaxMemberSize = 256 << 20

var (
	// ErrNotZip means the input is neither a ZIP archive nor a recognized
	// compound file.
	ErrNotZip = errors.New("archive: not a zip package")
	// ErrEncrypted means the input is a password-protected OOXML package.
	ErrEncrypted = errors.New("archive: encrypted package")
	// ErrLegacyDocument means the input is a binary Word 97-2003 document.
	ErrLegacyDocument = errors.New("archive: legacy binary word document")
	// ErrMemberTooLarge means a member exceeded the size limit.
	ErrMemberTooLarge = errors.New("archive: member too large")
)

// cfbMagic is the OLE compound file signature.
var cfbMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// Source yields named member bytes. A missing member reports false.
type Source interface {
	Member(name string) ([]byte, bool)
}

// Archive is an opened package.
type Archive struct {
	file    *os.File
	zr      *zip.Reader
	maxSize int64
}

// Option configures an Archive.
type Option func(*Archive)

// WithMaxMemberSize overrides DefaultMaxMemberSize. Values <= 0 are ignored.
func WithMaxMemberSize(n int64) Option {
	return func(a *Archive) {
		if n > 0 {
			a.maxSize = n
		}
	}
}

// Open opens the package at path. The returned Archive must be closed.
func Open(path string, opts ...Option) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening package: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening package: %w", err)
	}

	a, err := newArchive(f, info.Size(), opts)
	if err != nil {
		f.Close()
		return nil, err
	}
	a.file = f
	return a, nil
}

// FromBytes opens a package held in memory.
func FromBytes(data []byte, opts ...Option) (*Archive, error) {
	return newArchive(bytes.NewReader(data), int64(len(data)), opts)
}

func newArchive(r io.ReaderAt, size int64, opts []Option) (*Archive, error) {
	head := make([]byte, len(cfbMagic))
	n, _ := r.ReadAt(head, 0)
	if n == len(cfbMagic) && bytes.Equal(head, cfbMagic) {
		return nil, ClassifyCompound(r)
	}

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotZip, err)
	}

	a := &Archive{zr: zr, maxSize: DefaultMaxMemberSize}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// ClassifyCompound looks at the stream names of an OLE compound file to
// tell an encrypted OOXML package (ErrEncrypted) from a legacy .doc
// (ErrLegacyDocument). Anything else wraps ErrNotZip.
func ClassifyCompound(r io.ReaderAt) error {
	doc, err := mscfb.New(r)
	if err != nil {
		return fmt.Errorf("%w: compound file: %v", ErrNotZip, err)
	}

	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		switch entry.Name {
		case "EncryptedPackage", "EncryptionInfo":
			return ErrEncrypted
		case "WordDocument":
			return ErrLegacyDocument
		}
	}
	return fmt.Errorf("%w: unrecognized compound file", ErrNotZip)
}

// Close releases the underlying file, if any. It is safe to call more than
// once.
func (a *Archive) Close() error {
	if a == nil || a.file == nil {
		return nil
	}
	err := a.file.Close()
	a.file = nil
	return err
}

// Names lists the members in archive order.
func (a *Archive) Names() []string {
	names := make([]string, 0, len(a.zr.File))
	for _, f := range a.zr.File {
		names = append(names, f.Name)
	}
	return names
}

// Member returns the bytes of the named member. Names are matched exactly
// first, then case-insensitively, since some producers write "Word/".
func (a *Archive) Member(name string) ([]byte, bool) {
	data, err := a.ReadMember(name)
	if err != nil {
		return nil, false
	}
	return data, true
}

// ReadMember is Member with the failure reason.
func (a *Archive) ReadMember(name string) ([]byte, error) {
	f := a.find(name)
	if f == nil {
		return nil, fmt.Errorf("member not found: %s", name)
	}
	if f.UncompressedSize64 > uint64(a.maxSize) {
		return nil, fmt.Errorf("%w: %s (%d bytes)", ErrMemberTooLarge, name, f.UncompressedSize64)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, a.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if int64(len(data)) > a.maxSize {
		return nil, fmt.Errorf("%w: %s", ErrMemberTooLarge, name)
	}
	return data, nil
}

func (a *Archive) find(name string) *zip.File {
	for _, f := range a.zr.File {
		if f.Name == name {
			return f
		}
	}
	for _, f := range a.zr.File {
		if strings.EqualFold(f.Name, name) {
			return f
		}
	}
	return nil
}

// Map is an in-memory Source, handy for tests and for callers that already
// hold the parts.
type Map map[string][]byte

// Member implements Source.
func (m Map) Member(name string) ([]byte, bool) {
	data, ok := m[name]
	return data, ok
}
