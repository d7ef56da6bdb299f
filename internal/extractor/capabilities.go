package extractor

import (
	"github.com/nguyentantai21042004/docsum/pkg/executor"
)

// BackendDisabled turns a format off; every file of that format then fails
// with the backend-unavailable error.
const BackendDisabled = "disabled"

// Backend describes one way of extracting a format.
type Backend struct {
	Format Format
	Name   string
	Binary string // external CLI, empty for in-process backends
	Hint   string
}

var backends = []Backend{
	{Format: FormatPDF, Name: "native"},
	{Format: FormatPDF, Name: "pdfcpu"},
	{Format: FormatPDF, Name: "pdftotext", Binary: "pdftotext",
		Hint: "Install poppler-utils (apt install poppler-utils, brew install poppler) or set extractor.pdf_backend to \"native\"."},
	{Format: FormatDOCX, Name: "native"},
	{Format: FormatDOCX, Name: "pandoc", Binary: "pandoc",
		Hint: "Install pandoc (https://pandoc.org/installing.html) or set extractor.docx_backend to \"native\"."},
	{Format: FormatTXT, Name: "native"},
}

func lookupBackend(f Format, name string) (Backend, bool) {
	for _, b := range backends {
		if b.Format == f && b.Name == name {
			return b, true
		}
	}
	return Backend{}, false
}

// BackendStatus is one row of a capability report.
type BackendStatus struct {
	Backend
	Available bool
	Location  string
}

// Capabilities records which backends can run in this process. It is
// resolved once at startup and injected into the extractor.
type Capabilities struct {
	statuses []BackendStatus
}

// DetectCapabilities probes PATH for every CLI backend.
func DetectCapabilities(exec executor.Executor) Capabilities {
	var caps Capabilities
	for _, b := range backends {
		st := BackendStatus{Backend: b, Available: true}
		if b.Binary != "" {
			loc, err := exec.LookPath(b.Binary)
			st.Available = err == nil
			st.Location = loc
		}
		caps.statuses = append(caps.statuses, st)
	}
	return caps
}

// Available reports whether the named backend can extract the format.
func (c Capabilities) Available(f Format, name string) bool {
	for _, st := range c.statuses {
		if st.Format == f && st.Name == name {
			return st.Available
		}
	}
	return false
}

// Statuses lists every known backend with its availability.
func (c Capabilities) Statuses() []BackendStatus {
	return append([]BackendStatus(nil), c.statuses...)
}
