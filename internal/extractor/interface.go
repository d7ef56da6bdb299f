package extractor

import "context"

// Extractor turns documents on disk into plain text. No method panics or
// returns a Go error: every failure is carried in the Result.
type Extractor interface {
	// Extract dispatches on the file extension.
	Extract(ctx context.Context, path string) Result
	ExtractPDF(ctx context.Context, path string) Result
	ExtractDOCX(ctx context.Context, path string) Result
	ExtractTXT(ctx context.Context, path string) Result
	// ExtractBatch extracts every supported regular file directly inside
	// folder, keyed by file name.
	ExtractBatch(ctx context.Context, folder string) Batch
}
