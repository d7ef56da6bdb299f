package report

import "context"

// Writer persists a batch of summaries to the output directory.
type Writer interface {
	// Write renders every entry without an error and counts the rest as
	// skipped.
	Write(ctx context.Context, summaries map[string]Entry) (Stats, error)
}

// Entry is one document's summary, or the error that prevented it.
type Entry struct {
	Summary string
	Err     error
}

// Stats describes one Write call.
type Stats struct {
	Written int
	Skipped int
	Files   []string
}
