package executor

import "context"

// Executor runs external commands. Extraction backends that shell out to
// CLI tools (pdftotext, pandoc) go through it.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	LookPath(name string) (string, error)
}
