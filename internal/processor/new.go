package processor

import (
	"github.com/nguyentantai21042004/docsum/internal/config"
	"github.com/nguyentantai21042004/docsum/internal/extractor"
	"github.com/nguyentantai21042004/docsum/internal/logger"
	"github.com/nguyentantai21042004/docsum/internal/report"
	"github.com/nguyentantai21042004/docsum/internal/summarizer"
)

type implProcessor struct {
	cfg        *config.Config
	opts       summarizer.Options
	extractor  extractor.Extractor
	summarizer summarizer.Summarizer
	writer     report.Writer
	logger     logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, ext extractor.Extractor, sum summarizer.Summarizer, w report.Writer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		opts:       summarizer.OptionsFromConfig(cfg.Summarizer),
		extractor:  ext,
		summarizer: sum,
		writer:     w,
		logger:     log,
	}
}
