package minidock

import (
	"errors"
	"strings"

	"github.com/tsawler/minidock/archive"
)

// WarningCode classifies a Warning.
type WarningCode string

// Warning codes.
const (
	// WarnUnreadable means the input could not be opened as a package.
	WarnUnreadable WarningCode = "unreadable"
	// WarnEncrypted means the input is a password-protected package.
	WarnEncrypted WarningCode = "encrypted"
	// WarnLegacyFormat means the input is a binary Word 97-2003 file.
	WarnLegacyFormat WarningCode = "legacy-format"
	// WarnExtension means the file name does not look like a
	// word-processing package. Reading is still attempted.
	WarnExtension WarningCode = "extension"
	// WarnStyleCycle means a basedOn chain looped and was cut.
	WarnStyleCycle WarningCode = "style-cycle"
	// WarnNoContent means the package opened but yielded nothing.
	WarnNoContent WarningCode = "no-content"
)

// Warning is a non-fatal problem found while extracting. Extraction still
// returns a result, which may be empty or imperfect.
type Warning struct {
	Code    WarningCode
	Message string
}

// String returns "code: message".
func (w Warning) String() string {
	return string(w.Code) + ": " + w.Message
}

// FormatWarnings joins warnings into a single line.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// openWarning turns an archive error into a Warning.
func openWarning(err error) Warning {
	switch {
	case errors.Is(err, archive.ErrEncrypted):
		return Warning{Code: WarnEncrypted, Message: "package is password protected"}
	case errors.Is(err, archive.ErrLegacyDocument):
		return Warning{Code: WarnLegacyFormat, Message: "binary .doc files are not supported"}
	default:
		return Warning{Code: WarnUnreadable, Message: err.Error()}
	}
}
