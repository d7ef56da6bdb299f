package extractor

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Format identifies a supported document type.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatTXT  Format = "txt"
)

// ErrorPrefix starts every rendered failure. Callers outside this module
// check results with IsError instead of an error channel.
const ErrorPrefix = "Error"

// BatchErrorKey is the single key of a batch whose folder could not be read.
const BatchErrorKey = "error"

var (
	ErrBackendUnavailable = errors.New("extraction backend not available")
	ErrEmptyContent       = errors.New("no text content found")
	ErrUndecodable        = errors.New("no encoding could decode the file")
	ErrFileTooLarge       = errors.New("file too large")
)

// Result is the outcome of extracting one file: text on success, Err on
// failure. It renders to a plain string with String.
type Result struct {
	Text string
	Err  error
}

// Failed reports whether extraction did not produce text.
func (r Result) Failed() bool {
	return r.Err != nil
}

// String renders the result for callers that only deal in strings. Failures
// always start with ErrorPrefix.
func (r Result) String() string {
	if r.Err == nil {
		return r.Text
	}
	msg := r.Err.Error()
	if !strings.HasPrefix(msg, ErrorPrefix) {
		msg = ErrorPrefix + ": " + msg
	}
	return msg
}

// Batch maps a file name (unique within one folder) to its result.
type Batch map[string]Result

// Texts renders every result to its string form.
func (b Batch) Texts() map[string]string {
	out := make(map[string]string, len(b))
	for name, r := range b {
		out[name] = r.String()
	}
	return out
}

// Failures counts the failed entries.
func (b Batch) Failures() int {
	n := 0
	for _, r := range b {
		if r.Failed() {
			n++
		}
	}
	return n
}

// IsError reports whether a rendered result or summary is a failure.
func IsError(s string) bool {
	return strings.HasPrefix(s, ErrorPrefix)
}

// ExtractError is a parse, decode or empty-content failure for one file.
type ExtractError struct {
	Format Format
	Path   string
	Err    error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("Error extracting text from %s %s: %v", strings.ToUpper(string(e.Format)), e.Path, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }

// UnavailableError reports a configured backend that cannot run here.
type UnavailableError struct {
	Format  Format
	Backend string
	Path    string
	Hint    string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("Error: %s backend %q not available. Cannot extract text from %s. %s",
		strings.ToUpper(string(e.Format)), e.Backend, e.Path, e.Hint)
}

func (e *UnavailableError) Unwrap() error { return ErrBackendUnavailable }

// ProcessError is an unexpected failure while handling one batch entry.
type ProcessError struct {
	Name string
	Err  error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("Error processing %s: %v", e.Name, e.Err)
}

func (e *ProcessError) Unwrap() error { return e.Err }

// FolderError reports a batch folder that does not exist or cannot be read.
type FolderError struct {
	Path string
	Err  error
}

func (e *FolderError) Error() string {
	if errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("Error: folder not found: %s (%v)", e.Path, e.Err)
	}
	return fmt.Sprintf("Error: cannot read folder: %s (%v)", e.Path, e.Err)
}

func (e *FolderError) Unwrap() error { return e.Err }

// Detect returns the format for a file name by case-insensitive suffix.
func Detect(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF, true
	case ".docx":
		return FormatDOCX, true
	case ".txt":
		return FormatTXT, true
	default:
		return "", false
	}
}

// Supported reports whether the file name has a supported extension.
func Supported(path string) bool {
	_, ok := Detect(path)
	return ok
}

// SupportedFormats returns all supported formats.
func SupportedFormats() []Format {
	return []Format{FormatPDF, FormatDOCX, FormatTXT}
}
