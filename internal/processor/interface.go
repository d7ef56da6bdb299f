package processor

import (
	"context"

	"github.com/nguyentantai21042004/docsum/internal/report"
)

// Processor runs documents through extract, summarize and report.
type Processor interface {
	// Process handles a single document and archives it when configured.
	Process(ctx context.Context, path string) error
	// ProcessFolder handles every supported document directly inside folder.
	ProcessFolder(ctx context.Context, folder string) (Run, error)
}

// Run is the outcome of one ProcessFolder call.
type Run struct {
	ID        string
	Summaries map[string]string
	Failures  int
	Report    report.Stats
}
