// Package skillerr provides structured error types for skillctl.
package skillerr

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error codes for skillctl operations.
const (
	// Source resolution errors
	CodeSourceNotFound    = "SRC_001" // Source string matches nothing
	CodeAcquisitionFailed = "SRC_002" // Clone/download/transport failure

	// Archive extraction errors
	CodePathTraversal          = "ARC_001" // Entry path escapes extraction root
	CodeUnsafeLinkEntry        = "ARC_002" // Symlink or hard link entry
	CodeTooManyEntries         = "ARC_003" // Entry count limit exceeded
	CodeExtractedSizeExceeded  = "ARC_004" // Decompressed byte limit exceeded
	CodeUnsupportedContentType = "ARC_005" // Content-Type not in allow-list

	// Skill root location errors
	CodeNoSkillFound          = "LOC_001" // No SKILL.md in the tree
	CodeAmbiguousSkillArchive = "LOC_002" // Multiple skill directories found

	// Validation errors
	CodeInvalidFrontmatter = "VAL_001" // SKILL.md frontmatter unparsable

	// Scan errors
	CodeExternalScanLaunchFailed = "SCAN_001" // External scanner failed to run
)

// Error is the structured error type for skillctl operations.
type Error struct {
	Code    string         `json:"code"`              // Error code (e.g., "ARC_001")
	Message string         `json:"message"`           // Human-readable message
	Details map[string]any `json:"details,omitempty"` // Context (path, source, etc.)
	Cause   error          `json:"-"`                 // Wrapped error (not serialized)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

// MarshalJSON implements json.Marshaler with cause error message.
func (e *Error) MarshalJSON() ([]byte, error) {
	type alias Error
	aux := struct {
		*alias
		CauseMsg string `json:"cause,omitempty"`
	}{
		alias: (*alias)(e),
	}
	if e.Cause != nil {
		aux.CauseMsg = e.Cause.Error()
	}
	return json.Marshal(aux)
}

// New creates a new Error.
func New(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new Error with formatted message.
func Newf(code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with an Error.
func Wrap(code, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted Error.
func Wrapf(code string, err error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// --- Source Errors ---

// SourceNotFound creates an error for an unrecognized source string.
func SourceNotFound(source string) *Error {
	return Newf(CodeSourceNotFound, "source not found: %s", source).
		WithDetail("source", source)
}

// AcquisitionFailed creates an error for a failed clone or download.
func AcquisitionFailed(source string, err error) *Error {
	return Wrapf(CodeAcquisitionFailed, err, "failed to acquire source %s", source).
		WithDetail("source", source)
}

// --- Extraction Errors ---

// PathTraversal creates an error for an escaping archive entry path.
func PathTraversal(entry string) *Error {
	return Newf(CodePathTraversal, "unsafe archive path: %s", entry).
		WithDetail("entry", entry)
}

// UnsafeLinkEntry creates an error for a link archive entry.
func UnsafeLinkEntry(entry string) *Error {
	return Newf(CodeUnsafeLinkEntry, "archive contains link entry: %s", entry).
		WithDetail("entry", entry)
}

// TooManyEntries creates an error for an archive over the entry limit.
func TooManyEntries(count, limit int) *Error {
	return Newf(CodeTooManyEntries, "archive has too many entries (%d, limit %d)", count, limit).
		WithDetail("count", count).
		WithDetail("limit", limit)
}

// ExtractedSizeExceeded creates an error for a decompression over the byte limit.
func ExtractedSizeExceeded(limit int64) *Error {
	return Newf(CodeExtractedSizeExceeded, "extracted data exceeds limit (%d bytes)", limit).
		WithDetail("limit", limit)
}

// UnsupportedContentType creates an error for a disallowed Content-Type.
func UnsupportedContentType(contentType string) *Error {
	return Newf(CodeUnsupportedContentType, "unsupported content-type for archive: %s", contentType).
		WithDetail("content_type", contentType)
}

// --- Locator Errors ---

// NoSkillFound creates an error for a tree without a SKILL.md.
func NoSkillFound() *Error {
	return New(CodeNoSkillFound, "archive did not contain a SKILL.md file")
}

// AmbiguousSkillArchive creates an error for a tree with multiple skill dirs.
func AmbiguousSkillArchive() *Error {
	return New(CodeAmbiguousSkillArchive, "archive contains multiple SKILL.md files; use an archive with a single skill")
}

// --- Validation Errors ---

// InvalidFrontmatter creates an error for unparsable SKILL.md frontmatter.
func InvalidFrontmatter(reason string) *Error {
	return Newf(CodeInvalidFrontmatter, "invalid frontmatter: %s", reason).
		WithDetail("reason", reason)
}

// --- Scan Errors ---

// ExternalScanLaunchFailed creates an error for a scanner that failed to run.
func ExternalScanLaunchFailed(tool string, err error) *Error {
	return Wrapf(CodeExternalScanLaunchFailed, err, "failed to run external scanner %s", tool).
		WithDetail("tool", tool)
}

// HasCode checks if an error is an Error with the given code.
// It handles wrapped errors by unwrapping to find an Error.
func HasCode(err error, code string) bool {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Code == code
	}
	return false
}

// Code returns the error code if err is an Error, empty string otherwise.
// It handles wrapped errors by unwrapping to find an Error.
func Code(err error) string {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Code
	}
	return ""
}
