package extractor

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/docsum/internal/config"
	"github.com/nguyentantai21042004/docsum/internal/logger"
	"github.com/nguyentantai21042004/docsum/pkg/executor"
)

type extractFunc func(ctx context.Context, path string) (string, error)

type implExtractor struct {
	caps        Capabilities
	executor    executor.Executor
	logger      logger.Logger
	maxFileSize int64

	pdfBackend  string
	docxBackend string
	encodings   []namedDecoder

	pdf  extractFunc
	docx extractFunc
}

// New creates an Extractor. Unknown backend or encoding names are
// configuration errors; known backends that are unavailable only fail the
// files that need them.
func New(cfg config.ExtractorConfig, caps Capabilities, exec executor.Executor, log logger.Logger) (Extractor, error) {
	e := &implExtractor{
		caps:        caps,
		executor:    exec,
		logger:      log,
		maxFileSize: cfg.MaxFileSize,
		pdfBackend:  cfg.PDFBackend,
		docxBackend: cfg.DOCXBackend,
	}

	switch cfg.PDFBackend {
	case "native":
		e.pdf = extractPDFNative
	case "pdfcpu":
		e.pdf = extractPDFCPU
	case "pdftotext":
		e.pdf = e.extractPDFToText
	case BackendDisabled:
	default:
		return nil, fmt.Errorf("unknown pdf backend %q", cfg.PDFBackend)
	}

	switch cfg.DOCXBackend {
	case "native":
		e.docx = extractDOCXNative
	case "pandoc":
		e.docx = e.extractDOCXPandoc
	case BackendDisabled:
	default:
		return nil, fmt.Errorf("unknown docx backend %q", cfg.DOCXBackend)
	}

	decoders, err := resolveEncodings(cfg.Encodings)
	if err != nil {
		return nil, err
	}
	e.encodings = decoders

	return e, nil
}
