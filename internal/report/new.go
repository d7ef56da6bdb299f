package report

import (
	"fmt"
	"time"

	"github.com/nguyentantai21042004/docsum/internal/config"
	"github.com/nguyentantai21042004/docsum/internal/logger"
)

const (
	FormatMarkdown = "markdown"
	FormatDOCX     = "docx"
	FormatBoth     = "both"
)

type implWriter struct {
	outputDir string
	markdown  bool
	docx      bool
	logger    logger.Logger
	now       func() time.Time
}

// New creates a Writer that renders into outputDir in the configured format.
func New(cfg config.ReportConfig, outputDir string, log logger.Logger) (Writer, error) {
	w := &implWriter{
		outputDir: outputDir,
		logger:    log,
		now:       time.Now,
	}

	switch cfg.Format {
	case "", FormatMarkdown:
		w.markdown = true
	case FormatDOCX:
		w.docx = true
	case FormatBoth:
		w.markdown, w.docx = true, true
	default:
		return nil, fmt.Errorf("unknown report format %q", cfg.Format)
	}

	return w, nil
}
